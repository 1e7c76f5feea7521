// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package parco

import (
	"cmp"
	"fmt"
)

// A Span describes a contiguous span of a source input, generic over
// any totally ordered position type.
type Span[P cmp.Ordered] struct {
	Pos P // the start position (inclusive)
	End P // the end position (exclusive)
}

// NewSpan constructs the span from pos to end. It panics if end is
// before pos; callers are expected to order positions by construction.
func NewSpan[P cmp.Ordered](pos, end P) Span[P] {
	if end < pos {
		panic(fmt.Sprintf("span positions are misordered (%v > %v)", pos, end))
	}
	return Span[P]{Pos: pos, End: end}
}

// Union returns the smallest span containing both s and o.
func (s Span[P]) Union(o Span[P]) Span[P] {
	return Span[P]{Pos: min(s.Pos, o.Pos), End: max(s.End, o.End)}
}

// Inner returns the span strictly between s and o, which must not
// overlap and must be in order (s entirely before o). It panics
// otherwise: callers only invoke Inner on spans already known to be
// ordered, so a violation is a programming error rather than a
// recoverable condition.
func (s Span[P]) Inner(o Span[P]) Span[P] {
	if s.End > o.Pos {
		panic(fmt.Sprintf("spans %v and %v overlap or are misordered", s, o))
	}
	return Span[P]{Pos: s.End, End: o.Pos}
}

// Contains reports whether p falls within s.
func (s Span[P]) Contains(p P) bool { return s.Pos <= p && p < s.End }

func (s Span[P]) String() string { return fmt.Sprintf("%v..%v", s.Pos, s.End) }
