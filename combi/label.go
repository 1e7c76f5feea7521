// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package combi

import "github.com/creachadair/parco"

// A Labelled parser wraps an inner parser with a human-readable name
// for the construct it matches, and rewrites the failures the inner
// parser produces so that messages speak in grammar-author vocabulary
// instead of raw token lists. It never changes whether matching
// succeeds, only how failures are described, and it produces no
// failures of its own.
//
// A failure at the wrapper's own starting position is relabeled
// outright: the inner parser contributed no information beyond
// wanting the named construct, so the label replaces its expected
// set. In context mode (see AsContext), a failure strictly after the
// starting position keeps its detail and is annotated as having
// occurred inside the named construct, spanning from the wrapper's
// start to the failure point.
//
// A Labelled parser holds no mutable state and is a pure
// configuration value; it may be reused and shared freely.
type Labelled[T, O any, E parco.Error[T, int]] struct {
	parser    Parser[T, O, E]
	label     string
	isContext bool
}

// Label returns p wrapped with the given label.
func Label[T, O any, E parco.Error[T, int]](label string, p Parser[T, O, E]) Labelled[T, O, E] {
	return Labelled[T, O, E]{parser: p, label: label}
}

// AsContext returns a copy of p that additionally annotates failures
// occurring partway through the labeled construct, including every
// secondary diagnostic recorded inside it. Context annotation
// requires the error type to implement parco.ContextError; other
// error types pass through unmodified.
func (p Labelled[T, O, E]) AsContext() Labelled[T, O, E] {
	p.isContext = true
	return p
}

// Parse runs the inner parser with the best-alternative slot detached
// so that its failures can be observed in isolation, then restores
// the slot and re-offers the (possibly rewritten) inner failure to
// the engine's normal selection. The combinator is transparent to the
// engine's accumulation invariants apart from the rewrites it applies.
func (p Labelled[T, O, E]) Parse(in *Input[T, E]) (O, bool) {
	before := in.Save()
	oldAlt := in.Errors().TakeAlt()

	out, ok := p.parser.Parse(in)

	newAlt := in.Errors().TakeAlt()
	in.Errors().PutAlt(oldAlt)

	if newAlt != nil {
		switch {
		case newAlt.Pos == before.pos:
			newAlt.Err.Relabel(p.label)
		case p.isContext && newAlt.Pos > before.pos:
			if ce, isCtx := any(newAlt.Err).(parco.ContextError[T, int]); isCtx {
				ce.InContext(p.label, parco.NewSpan(before.pos, newAlt.Pos))
			}
		}
		in.Errors().AddAlt(newAlt.Pos, newAlt.Err)
	}

	if p.isContext {
		sec := in.Errors().SecondarySince(before.errs)
		for i := range sec {
			if ce, isCtx := any(sec[i].Err).(parco.ContextError[T, int]); isCtx {
				ce.InContext(p.label, parco.NewSpan(before.pos, sec[i].Pos))
			}
		}
	}
	return out, ok
}
