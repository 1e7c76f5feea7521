// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package combi implements a minimal backtracking combinator engine
// over slices of tokens, serving as the host for the failure
// reporting and label propagation defined by the parco package.
//
// A Parser consumes tokens from an Input and either produces a value
// or records its failure in the input's error accumulator; failures
// are never panicked or unwound through the call structure. The
// engine tracks a single best alternative failure across the branches
// it explores, plus an ordered list of secondary diagnostics, and
// Run surfaces the best failure as an ordinary Go error.
//
// Combinators that explore alternatives checkpoint the input with
// Save and rewind it with Restore; rewinding moves only the cursor,
// never the diagnostics already recorded.
package combi

import (
	"errors"

	"github.com/creachadair/parco"
)

// A Parser consumes tokens from in and either returns a value or
// records its failure in the input's error accumulator. A Parser must
// report false if and only if it recorded (or left in place) a
// failure describing why it did not match.
//
// T is the token type, O the output type, and E the error type the
// grammar runs with.
type Parser[T, O any, E parco.Error[T, int]] interface {
	Parse(in *Input[T, E]) (O, bool)
}

// Func is a function with the signature of the Parse method, allowing
// ordinary functions to serve as parsers.
type Func[T, O any, E parco.Error[T, int]] func(in *Input[T, E]) (O, bool)

// Parse satisfies the Parser interface by calling f.
func (f Func[T, O, E]) Parse(in *Input[T, E]) (O, bool) { return f(in) }

// An Input is a cursor over a token slice together with the error
// accumulator for the run. Each parse run owns one Input; the engine
// is single-threaded and an Input must not be shared across
// concurrent runs.
type Input[T any, E parco.Error[T, int]] struct {
	newErr parco.NewError[T, int, E]
	toks   []T
	pos    int
	errs   Errors[T, E]
}

// NewInput constructs an Input reading toks, constructing failures
// with newErr.
func NewInput[T any, E parco.Error[T, int]](newErr parco.NewError[T, int, E], toks []T) *Input[T, E] {
	return &Input[T, E]{newErr: newErr, toks: toks}
}

// Pos reports the current cursor position, a 0-based token offset.
func (in *Input[T, E]) Pos() int { return in.pos }

// AtEnd reports whether the input is exhausted.
func (in *Input[T, E]) AtEnd() bool { return in.pos >= len(in.toks) }

// Next consumes and returns the next token, or reports ok=false at
// the end of input.
func (in *Input[T, E]) Next() (_ T, ok bool) {
	if in.pos >= len(in.toks) {
		var zero T
		return zero, false
	}
	t := in.toks[in.pos]
	in.pos++
	return t, true
}

// Peek returns the next token without consuming it, or reports
// ok=false at the end of input.
func (in *Input[T, E]) Peek() (_ T, ok bool) {
	if in.pos >= len(in.toks) {
		var zero T
		return zero, false
	}
	return in.toks[in.pos], true
}

// A Mark is a checkpoint of an Input: the cursor position plus a
// snapshot of how many secondary diagnostics had been recorded.
type Mark struct {
	pos  int
	errs int
}

// Save returns a checkpoint of the current input state.
func (in *Input[T, E]) Save() Mark {
	return Mark{pos: in.pos, errs: in.errs.SecondaryCount()}
}

// Restore rewinds the cursor to m. Diagnostics recorded since m are
// deliberately kept; rewinding is a matching decision, not an
// erasure of what was observed.
func (in *Input[T, E]) Restore(m Mark) { in.pos = m.pos }

// Errors returns the error accumulator for the run.
func (in *Input[T, E]) Errors() *Errors[T, E] { return &in.errs }

// Fail records a failure at position pos where each token of expected
// would have been acceptable. The token at pos is reported as found,
// or the end of input if the input is exhausted there. The failure is
// offered to the best-alternative slot.
func (in *Input[T, E]) Fail(pos int, expected []T) {
	var found *T
	end := pos
	if pos < len(in.toks) {
		t := in.toks[pos]
		found = &t
		end = pos + 1
	}
	in.errs.AddAlt(pos, in.newErr(parco.NewSpan(pos, end), expected, found))
}

// Run parses toks with p, constructing failures with newErr, and
// returns p's output. If the parse fails, Run returns the best
// alternative failure discovered across all branches explored.
func Run[T, O any, E parco.Error[T, int]](p Parser[T, O, E], newErr parco.NewError[T, int, E], toks []T) (O, error) {
	in := NewInput(newErr, toks)
	out, ok := p.Parse(in)
	if !ok {
		if alt := in.errs.Alt(); alt != nil {
			return out, alt.Err
		}
		return out, errors.New("parse failed without a diagnostic")
	}
	return out, nil
}

// RunSimple is shorthand for Run with the default parco.Simple error
// implementation.
func RunSimple[T comparable, O any](p Parser[T, O, *parco.Simple[T, int]], toks []T) (O, error) {
	return Run(p, parco.NewSimple[T, int], toks)
}
