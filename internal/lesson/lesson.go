// Package lesson loads the tutor's lessons and checks a buffer against a
// lesson's target.
package lesson

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrNotFound is returned when a lesson ID is not in the catalog.
var ErrNotFound = errors.New("lesson not found")

// Lesson is a single exercise: a starting buffer and the buffer the learner
// should produce from it.
type Lesson struct {
	ID           string   `yaml:"id"`
	Chapter      int      `yaml:"-"`
	ChapterTitle string   `yaml:"-"`
	Number       int      `yaml:"number"`
	Title        string   `yaml:"title"`
	Subtitle     string   `yaml:"subtitle"`
	Instructions string   `yaml:"instructions"` // markdown
	Task         string   `yaml:"task"`
	Initial      []string `yaml:"initial"`
	Target       []string `yaml:"target"`
	Hints        []string `yaml:"hints"`
	Keys         []string `yaml:"keys"`

	CompleteOn CompleteOn `yaml:"complete_on"`

	// Source is "builtin" or the path of the user file that defined the lesson.
	Source string `yaml:"-"`
}

// CompleteOn lists completion conditions other than matching the target.
type CompleteOn struct {
	// CursorOn completes the lesson when the cursor rests on this character.
	CursorOn string `yaml:"cursor_on"`
	// Commands complete the lesson when entered on the command line.
	Commands []string `yaml:"commands"`
}

// chapterFile is the on-disk shape of one lessons/*.yaml file.
type chapterFile struct {
	Chapter int      `yaml:"chapter"`
	Title   string   `yaml:"title"`
	Lessons []Lesson `yaml:"lessons"`
}

// HasTarget reports whether the lesson completes by matching a buffer.
func (l Lesson) HasTarget() bool {
	return len(l.Target) > 0
}

// CompletesOnCommand reports whether entering cmd on the command line
// completes the lesson.
func (l Lesson) CompletesOnCommand(cmd string) bool {
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return false
	}
	return slices.Contains(l.CompleteOn.Commands, fields[0])
}

// Heading returns "1.2 Title" for list views.
func (l Lesson) Heading() string {
	return l.ID + " " + l.Title
}

func (l Lesson) validate() error {
	if l.Title == "" {
		return fmt.Errorf("lesson %s: title is required", l.ID)
	}
	if len(l.Initial) == 0 {
		return fmt.Errorf("lesson %s: initial buffer is required", l.ID)
	}
	if !l.HasTarget() && l.CompleteOn.CursorOn == "" && len(l.CompleteOn.Commands) == 0 {
		return fmt.Errorf("lesson %s: needs a target or a complete_on condition", l.ID)
	}
	if n := len([]rune(l.CompleteOn.CursorOn)); n > 1 {
		return fmt.Errorf("lesson %s: complete_on.cursor_on must be a single character", l.ID)
	}
	return nil
}

// parseID splits "2.10" into (2, 10).
func parseID(id string) (chapter, number int, err error) {
	c, n, ok := strings.Cut(id, ".")
	if !ok {
		return 0, 0, fmt.Errorf("invalid lesson id %q", id)
	}
	if chapter, err = strconv.Atoi(c); err != nil {
		return 0, 0, fmt.Errorf("invalid lesson id %q: %w", id, err)
	}
	if number, err = strconv.Atoi(n); err != nil {
		return 0, 0, fmt.Errorf("invalid lesson id %q: %w", id, err)
	}
	return chapter, number, nil
}

func less(a, b Lesson) int {
	if a.Chapter != b.Chapter {
		return a.Chapter - b.Chapter
	}
	return a.Number - b.Number
}
