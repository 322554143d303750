package lesson

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/vimtutor/internal/log"
)

//go:embed lessons/*.yaml
var builtinFS embed.FS

// Catalog is the ordered set of lessons: the built-ins plus any lessons from
// the user directory, which replace built-ins with the same ID.
type Catalog struct {
	mu      sync.RWMutex
	userDir string
	lessons []Lesson
	index   map[string]int
}

// Load builds a catalog. userDir may be empty or missing.
func Load(userDir string) (*Catalog, error) {
	c := &Catalog{userDir: userDir}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Builtin returns a catalog of the embedded lessons only.
func Builtin() (*Catalog, error) {
	return Load("")
}

// Reload re-reads every lesson source. On error the previous lessons stay in
// place.
func (c *Catalog) Reload() error {
	byID := make(map[string]Lesson)

	builtins, err := fs.Glob(builtinFS, "lessons/*.yaml")
	if err != nil {
		return fmt.Errorf("listing built-in lessons: %w", err)
	}
	for _, name := range builtins {
		data, err := builtinFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("reading %s: %w", name, err)
		}
		if err := decodeInto(byID, data, "builtin"); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	userCount := 0
	if c.userDir != "" {
		n, err := loadUserDir(byID, c.userDir)
		if err != nil {
			log.ErrorErr(log.CatLesson, "Failed to load user lessons", err, "dir", c.userDir)
			return err
		}
		userCount = n
	}

	lessons := make([]Lesson, 0, len(byID))
	for _, l := range byID {
		lessons = append(lessons, l)
	}
	slices.SortFunc(lessons, less)

	index := make(map[string]int, len(lessons))
	for i, l := range lessons {
		index[l.ID] = i
	}

	c.mu.Lock()
	c.lessons = lessons
	c.index = index
	c.mu.Unlock()

	log.Info(log.CatLesson, "Lessons loaded", "total", len(lessons), "user_files", userCount)
	return nil
}

func loadUserDir(byID map[string]Lesson, dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading lesson dir %s: %w", dir, err)
	}

	n := 0
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path) //nolint:gosec // G304: files from the configured lesson dir
		if err != nil {
			return n, fmt.Errorf("reading %s: %w", path, err)
		}
		if err := decodeInto(byID, data, path); err != nil {
			return n, fmt.Errorf("%s: %w", path, err)
		}
		n++
	}
	return n, nil
}

func decodeInto(byID map[string]Lesson, data []byte, source string) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f chapterFile
	if err := dec.Decode(&f); err != nil {
		return fmt.Errorf("decoding lessons: %w", err)
	}
	if f.Chapter <= 0 {
		return errors.New("chapter must be a positive number")
	}

	for _, l := range f.Lessons {
		l.Chapter = f.Chapter
		l.ChapterTitle = f.Title
		l.Source = source
		if l.ID == "" {
			l.ID = strconv.Itoa(f.Chapter) + "." + strconv.Itoa(l.Number)
		} else {
			chapter, number, err := parseID(l.ID)
			if err != nil {
				return err
			}
			if chapter != f.Chapter {
				return fmt.Errorf("lesson %s is not in chapter %d", l.ID, f.Chapter)
			}
			l.Number = number
		}
		if l.Number <= 0 {
			return fmt.Errorf("lesson %q: number must be positive", l.Title)
		}
		if err := l.validate(); err != nil {
			return err
		}
		if prev, ok := byID[l.ID]; ok && prev.Source == source {
			return fmt.Errorf("duplicate lesson id %s", l.ID)
		}
		byID[l.ID] = l
	}
	return nil
}

// All returns every lesson in order.
func (c *Catalog) All() []Lesson {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.lessons)
}

// Len returns the number of lessons.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.lessons)
}

// Get returns the lesson with the given ID.
func (c *Catalog) Get(id string) (Lesson, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.index[id]
	if !ok {
		return Lesson{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return c.lessons[i], nil
}

// Index returns the position of id in All, or -1.
func (c *Catalog) Index(id string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i, ok := c.index[id]; ok {
		return i
	}
	return -1
}

// First returns the first lesson.
func (c *Catalog) First() Lesson {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.lessons) == 0 {
		return Lesson{}
	}
	return c.lessons[0]
}

// Next returns the lesson after id. ok is false on the last lesson or an
// unknown id.
func (c *Catalog) Next(id string) (Lesson, bool) {
	return c.offset(id, 1)
}

// Prev returns the lesson before id. ok is false on the first lesson or an
// unknown id.
func (c *Catalog) Prev(id string) (Lesson, bool) {
	return c.offset(id, -1)
}

func (c *Catalog) offset(id string, delta int) (Lesson, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.index[id]
	if !ok {
		return Lesson{}, false
	}
	j := i + delta
	if j < 0 || j >= len(c.lessons) {
		return Lesson{}, false
	}
	return c.lessons[j], true
}

// Chapters returns the chapter numbers with their titles, in order.
func (c *Catalog) Chapters() []Chapter {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []Chapter
	for _, l := range c.lessons {
		if len(out) == 0 || out[len(out)-1].Number != l.Chapter {
			out = append(out, Chapter{Number: l.Chapter, Title: l.ChapterTitle})
		}
		out[len(out)-1].LessonIDs = append(out[len(out)-1].LessonIDs, l.ID)
	}
	return out
}

// Chapter groups lesson IDs under a chapter heading.
type Chapter struct {
	Number    int
	Title     string
	LessonIDs []string
}

// UserDir returns the override directory, possibly empty.
func (c *Catalog) UserDir() string {
	return c.userDir
}
