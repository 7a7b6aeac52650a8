// Package model defines the data structures shared by the lox front-end,
// evaluator and command line.
package model

import (
	"fmt"
	"strings"
)

// Path represents a file system path.
type Path string

// Source ids of text that does not come from a file.
const (
	// ReplSourceID names lines typed in the REPL.
	ReplSourceID = "<repl>"
	// ExprSourceID names expressions passed on the command line.
	ExprSourceID = "<expr>"
)

// Source is an immutable lox source text. All offsets and lengths handed out
// by a Source count characters (runes), not bytes.
type Source struct {
	id      string
	content string
	lines   []string
	runes   []rune
}

// NewSource creates a source given its origin id (usually a file path) and
// content. Lines are split on "\n" so that joining them back with "\n"
// reconstructs the content: "a\n" has the lines "a" and "".
func NewSource(id, content string) *Source {
	return &Source{
		id:      id,
		content: content,
		lines:   strings.Split(content, "\n"),
		runes:   []rune(content),
	}
}

// ID returns the origin name of the source.
func (s *Source) ID() string {
	return s.id
}

// Content returns the whole source text.
func (s *Source) Content() string {
	return s.content
}

// Len returns the number of characters in the source.
func (s *Source) Len() int {
	return len(s.runes)
}

// At returns the character at offset, false when offset is out of bounds.
func (s *Source) At(offset int) (rune, bool) {
	if offset < 0 || offset >= len(s.runes) {
		return 0, false
	}

	return s.runes[offset], true
}

// LineCount returns the number of lines in the line table.
func (s *Source) LineCount() int {
	return len(s.lines)
}

// Line returns the i-th (0-based) line of the line table.
func (s *Source) Line(i int) string {
	return s.lines[i]
}

// Lines returns a copy of the line table.
func (s *Source) Lines() []string {
	lines := make([]string, len(s.lines))
	copy(lines, s.lines)

	return lines
}

// Location returns the span of length characters starting at offset. It fails
// when the span does not fit in the source.
func (s *Source) Location(offset, length int) (Location, error) {
	if offset < 0 || length < 0 {
		return Location{}, fmt.Errorf("invalid location %d+%d in %s", offset, length, s.id)
	}

	if offset+length > len(s.runes) {
		return Location{}, fmt.Errorf("location %d+%d out of bounds in %s (%d characters)", offset, length, s.id, len(s.runes))
	}

	return Location{Source: s, Offset: offset, Length: length}, nil
}

// Location is a valid, in-bounds span of a Source.
type Location struct {
	Source *Source
	Offset int
	Length int
}

// End returns the offset right after the span.
func (l Location) End() int {
	return l.Offset + l.Length
}

// Text returns the characters covered by the location.
func (l Location) Text() string {
	if l.Source == nil {
		return ""
	}

	return string(l.Source.runes[l.Offset:l.End()])
}

func (l Location) String() string {
	id := ""
	if l.Source != nil {
		id = l.Source.id
	}

	return fmt.Sprintf("%s:%d+%d", id, l.Offset, l.Length)
}
