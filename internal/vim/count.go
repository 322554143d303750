package vim

import "strconv"

// maxCount caps the numeric prefix. Larger counts behave like this one; every
// counted operation already stops at buffer or line bounds long before.
const maxCount = 1 << 20

// isCountDigit reports whether key extends the count buffer given its current contents.
// A leading '0' is not a count: it is the start-of-line motion.
func isCountDigit(key string, count string) bool {
	if len(key) != 1 || key[0] < '0' || key[0] > '9' {
		return false
	}
	return count != "" || key != "0"
}

// countValue parses a count buffer, returning 1 when it is empty.
func countValue(count string) int {
	if count == "" {
		return 1
	}
	n, err := strconv.Atoi(count)
	if err != nil || n > maxCount {
		return maxCount
	}
	if n <= 0 {
		return 1
	}
	return n
}
