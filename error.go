// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package parco

import "cmp"

// An Error is a parse failure record. Implementations describe a
// conflict between what a parser expected at a span of the input and
// the token it actually found, and cooperate with the engine's
// best-failure selection by merging with sibling failures and by
// being relabeled with grammar-author vocabulary.
//
// T is the token type and P the position type of the input.
//
// An Error is a self-contained value: merging and relabeling update
// the receiver in place, and the engine stores and returns errors
// without sharing them across runs.
type Error[T any, P cmp.Ordered] interface {
	error

	// Span reports the primary span the failure originated at.
	Span() Span[P]

	// Merge absorbs the expected patterns of other, appending them
	// after the receiver's own in order. The receiver keeps its span
	// and found token. Callers must only merge errors describing the
	// same failure point; implementations need not verify this.
	Merge(other Error[T, P])

	// Relabel replaces the entire expected set with the single named
	// pattern label. The replacement is lossy by design: once a
	// human-meaningful label exists, raw token lists are noise.
	Relabel(label string)
}

// A ContextError is an Error that can additionally record the named
// enclosing construct a failure occurred inside, typically as an
// ordered breadcrumb trail used when rendering the message. The
// interface is optional: the Labelled combinator probes for it by
// type assertion and skips context annotation when it is absent.
type ContextError[T any, P cmp.Ordered] interface {
	Error[T, P]

	// InContext records that the failure occurred within the construct
	// named label, which covers span (from the construct's start to
	// the failure point).
	InContext(label string, span Span[P])
}

// A NewError function constructs a failure record for a conflict at
// span, where each token of expected would have been acceptable and
// found was seen instead. An empty expected list means nothing at all
// was acceptable (for example, the end of input was expected). A nil
// found means the input ended. The result's Span must report span
// unchanged.
//
// The engine is handed a NewError for the error type a grammar uses,
// keeping construction independent of any concrete implementation.
type NewError[T any, P cmp.Ordered, E Error[T, P]] func(span Span[P], expected []T, found *T) E

// ExpectedLabel constructs a failure at span reporting that the
// construct named label was expected and found was seen instead. It
// is derived from the NewError and Relabel primitives and works with
// any error type.
func ExpectedLabel[T any, P cmp.Ordered, E Error[T, P]](newErr NewError[T, P, E], span Span[P], label string, found *T) E {
	err := newErr(span, nil, found)
	err.Relabel(label)
	return err
}
