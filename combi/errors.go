// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package combi

import "github.com/creachadair/parco"

// A Located pairs a failure with the cursor position at which it was
// recorded.
type Located[E any] struct {
	Pos int
	Err E
}

// Errors accumulates the failures of a parse run: a single slot for
// the current best alternative failure, plus an ordered list of
// secondary diagnostics. The accumulator is owned by one run and is
// not safe for concurrent use.
//
// The zero value is ready for use.
type Errors[T any, E parco.Error[T, int]] struct {
	alt       *Located[E]
	secondary []Located[E]
}

// Alt returns the current best alternative failure, or nil if none
// has been recorded.
func (es *Errors[T, E]) Alt() *Located[E] { return es.alt }

// AddAlt offers a candidate failure at pos to the best-alternative
// slot. A candidate strictly farther along the input than the current
// holder replaces it; at equal positions the holder absorbs the
// candidate's expected patterns via Merge; an earlier candidate is
// discarded. The policy is deterministic: the failure reflecting the
// most progress wins.
func (es *Errors[T, E]) AddAlt(pos int, err E) {
	switch {
	case es.alt == nil || pos > es.alt.Pos:
		es.alt = &Located[E]{Pos: pos, Err: err}
	case pos == es.alt.Pos:
		es.alt.Err.Merge(err)
	}
}

// TakeAlt detaches and returns the best-alternative slot, leaving it
// empty. Combinators that need to observe the failures of an inner
// parser in isolation take the slot before running it and put the old
// value back afterward.
func (es *Errors[T, E]) TakeAlt() *Located[E] {
	alt := es.alt
	es.alt = nil
	return alt
}

// PutAlt overwrites the best-alternative slot with alt, which may be
// nil. Unlike AddAlt it applies no selection policy; it is the
// restore half of the TakeAlt discipline.
func (es *Errors[T, E]) PutAlt(alt *Located[E]) { es.alt = alt }

// AddSecondary appends a diagnostic recorded at pos to the secondary
// list. Secondary failures do not compete for the best-alternative
// slot; they are retained, in recording order, for reporting.
func (es *Errors[T, E]) AddSecondary(pos int, err E) {
	es.secondary = append(es.secondary, Located[E]{Pos: pos, Err: err})
}

// SecondaryCount reports how many secondary diagnostics have been
// recorded.
func (es *Errors[T, E]) SecondaryCount() int { return len(es.secondary) }

// SecondarySince returns the secondary diagnostics recorded at or
// after count n, in recording order. The result aliases the
// accumulator's storage, so annotations applied to its entries are
// visible in later queries.
func (es *Errors[T, E]) SecondarySince(n int) []Located[E] {
	if n >= len(es.secondary) {
		return nil
	}
	return es.secondary[n:]
}

// Secondary returns all secondary diagnostics in recording order. The
// result aliases the accumulator's storage.
func (es *Errors[T, E]) Secondary() []Located[E] { return es.secondary }
