// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package parco

import (
	"fmt"
	"sort"
	"strings"

	"go4.org/mem"
)

// A LineCol describes the line number and column offset of a location
// in source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// A Location describes the complete location of a range of source
// text, including the line and column offsets of its first and
// just-past-last positions.
type Location struct {
	Span[int]
	First, Last LineCol
}

// A Source indexes a source input so that integer-offset spans can be
// reported as lines and columns and their text excerpted for
// messages. The text is held as a read-only view and never copied
// except by Text. A Source is cheap to share and safe for concurrent
// readers.
type Source struct {
	text  mem.RO
	lines []int // byte offset of the start of each line
}

// NewSource constructs a Source indexing text.
func NewSource(text string) *Source {
	lines := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, i+1)
		}
	}
	return &Source{text: mem.S(text), lines: lines}
}

// Len reports the length of the source text in bytes.
func (s *Source) Len() int { return s.text.Len() }

// Text returns a copy of the text covered by span. It panics if span
// does not fall within the source.
func (s *Source) Text(span Span[int]) string {
	s.check(span)
	return s.text.SliceFrom(span.Pos).SliceTo(span.End - span.Pos).StringCopy()
}

// Location reports the full location of span within the source. It
// panics if span does not fall within the source.
func (s *Source) Location(span Span[int]) Location {
	s.check(span)
	return Location{
		Span:  span,
		First: s.lineCol(span.Pos),
		Last:  s.lineCol(span.End),
	}
}

// LineText returns the text of the 1-based line number, without its
// trailing newline, or "" if the line does not exist.
func (s *Source) LineText(line int) string {
	if line < 1 || line > len(s.lines) {
		return ""
	}
	end := s.text.Len()
	if line < len(s.lines) {
		end = s.lines[line] - 1 // before the terminating newline
	}
	pos := s.lines[line-1]
	return s.text.SliceFrom(pos).SliceTo(end - pos).StringCopy()
}

func (s *Source) lineCol(off int) LineCol {
	i := sort.Search(len(s.lines), func(i int) bool { return s.lines[i] > off }) - 1
	return LineCol{Line: i + 1, Column: off - s.lines[i]}
}

func (s *Source) check(span Span[int]) {
	if span.Pos < 0 || span.End > s.text.Len() || span.End < span.Pos {
		panic(fmt.Sprintf("span %v is outside the source (length %d)", span, s.text.Len()))
	}
}

// Describe renders err's message followed by the line and column of
// its span in the source, a convenience for one-line diagnostics:
//
//	found '}' at 6..7 but ']' was expected (line 1, column 6)
func Describe[T any](s *Source, err Error[T, int]) string {
	loc := s.Location(err.Span())
	var sb strings.Builder
	sb.WriteString(err.Error())
	fmt.Fprintf(&sb, " (line %d, column %d)", loc.First.Line, loc.First.Column)
	return sb.String()
}
