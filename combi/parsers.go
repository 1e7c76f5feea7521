// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package combi

import "github.com/creachadair/parco"

// Just returns a parser matching exactly the token want. On failure
// it reports want as the only expected token.
func Just[T comparable, E parco.Error[T, int]](want T) Parser[T, T, E] {
	return just[T, E]{want: want}
}

type just[T comparable, E parco.Error[T, int]] struct{ want T }

func (p just[T, E]) Parse(in *Input[T, E]) (T, bool) {
	m := in.Save()
	got, ok := in.Next()
	if ok && got == p.want {
		return got, true
	}
	in.Restore(m)
	in.Fail(m.pos, []T{p.want})
	var zero T
	return zero, false
}

// OneOf returns a parser matching any one of the given tokens. On
// failure it reports the whole set as expected, in the given order.
func OneOf[T comparable, E parco.Error[T, int]](toks ...T) Parser[T, T, E] {
	return oneOf[T, E]{toks: toks}
}

type oneOf[T comparable, E parco.Error[T, int]] struct{ toks []T }

func (p oneOf[T, E]) Parse(in *Input[T, E]) (T, bool) {
	m := in.Save()
	got, ok := in.Next()
	if ok {
		for _, want := range p.toks {
			if got == want {
				return got, true
			}
		}
	}
	in.Restore(m)
	in.Fail(m.pos, p.toks)
	var zero T
	return zero, false
}

// Seq returns a parser matching each of ps in order, collecting their
// outputs. It fails where the first non-matching element fails.
func Seq[T, O any, E parco.Error[T, int]](ps ...Parser[T, O, E]) Parser[T, []O, E] {
	return seq[T, O, E]{ps: ps}
}

type seq[T, O any, E parco.Error[T, int]] struct{ ps []Parser[T, O, E] }

func (p seq[T, O, E]) Parse(in *Input[T, E]) ([]O, bool) {
	outs := make([]O, 0, len(p.ps))
	for _, q := range p.ps {
		out, ok := q.Parse(in)
		if !ok {
			return nil, false
		}
		outs = append(outs, out)
	}
	return outs, true
}

// Choice returns a parser trying each of ps in order at the same
// position, returning the output of the first that matches. The
// failures of rejected alternatives compete in the accumulator, so a
// failed Choice reports the branch that made the most progress, with
// same-position branches merged.
func Choice[T, O any, E parco.Error[T, int]](ps ...Parser[T, O, E]) Parser[T, O, E] {
	return choice[T, O, E]{ps: ps}
}

type choice[T, O any, E parco.Error[T, int]] struct{ ps []Parser[T, O, E] }

func (p choice[T, O, E]) Parse(in *Input[T, E]) (O, bool) {
	for _, q := range p.ps {
		m := in.Save()
		if out, ok := q.Parse(in); ok {
			return out, true
		}
		in.Restore(m)
	}
	var zero O
	return zero, false
}

// Map returns a parser that matches p and transforms its output with
// f. Failures pass through unchanged.
func Map[T, A, B any, E parco.Error[T, int]](p Parser[T, A, E], f func(A) B) Parser[T, B, E] {
	return Func[T, B, E](func(in *Input[T, E]) (B, bool) {
		out, ok := p.Parse(in)
		if !ok {
			var zero B
			return zero, false
		}
		return f(out), true
	})
}

// Repeat returns a parser matching p zero or more times, collecting
// the outputs. It always succeeds, stopping at the first failure of p
// (whose diagnostics remain recorded) or as soon as p stops consuming
// input.
func Repeat[T, O any, E parco.Error[T, int]](p Parser[T, O, E]) Parser[T, []O, E] {
	return Func[T, []O, E](func(in *Input[T, E]) ([]O, bool) {
		var outs []O
		for {
			m := in.Save()
			out, ok := p.Parse(in)
			if !ok {
				in.Restore(m)
				return outs, true
			}
			outs = append(outs, out)
			if in.Pos() == m.pos {
				return outs, true // matched nothing; stop rather than spin
			}
		}
	})
}

// Full returns a parser matching p followed by the end of input. The
// end check fails with an empty expected set, rendering as "end of
// input was expected".
func Full[T, O any, E parco.Error[T, int]](p Parser[T, O, E]) Parser[T, O, E] {
	return Func[T, O, E](func(in *Input[T, E]) (O, bool) {
		out, ok := p.Parse(in)
		if !ok {
			return out, false
		}
		if !in.AtEnd() {
			in.Fail(in.Pos(), nil)
			var zero O
			return zero, false
		}
		return out, true
	})
}

// Validate returns a parser that matches p and then applies check to
// its output together with the span p consumed. If check reports a
// diagnostic, it is recorded as a secondary error at the current
// position and the parse continues as if p had succeeded cleanly.
func Validate[T, O any, E parco.Error[T, int]](p Parser[T, O, E], check func(out O, span parco.Span[int]) (E, bool)) Parser[T, O, E] {
	return Func[T, O, E](func(in *Input[T, E]) (O, bool) {
		start := in.Pos()
		out, ok := p.Parse(in)
		if !ok {
			return out, false
		}
		if err, bad := check(out, parco.NewSpan(start, in.Pos())); bad {
			in.Errors().AddSecondary(in.Pos(), err)
		}
		return out, true
	})
}
