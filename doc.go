// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package parco implements failure reporting for backtracking
// combinator parsers: spans locating failures in source text, a
// pluggable error contract, and a default error implementation.
//
// # Spans
//
// The Span type records a half-open interval of positions of any
// totally ordered type. Spans are immutable values supporting Union
// (the smallest span containing both operands) and Inner (the span
// strictly between two ordered, non-overlapping spans). Misusing the
// algebra on misordered or overlapping spans is a programming error
// and panics.
//
// # Errors
//
// A parse failure is any type implementing the Error interface: it
// reports its span, merges with sibling failures at the same
// location, and can be relabeled with a human-readable name for the
// construct that was expected. The engine constructs failures through
// a NewError function, so grammars may substitute their own error
// types without the engine knowing about them.
//
// An error type may additionally implement ContextError to record
// that a failure occurred inside a named enclosing construct. The
// extension is optional and discovered by type assertion; error types
// that do not implement it simply do not accumulate context.
//
// # The default implementation
//
// Simple is a ready-made Error and ContextError implementation. It
// records an ordered list of expected Patterns, each either a named
// syntactic category or one concrete token, along with the token
// actually found (or nothing, if the input ended). Its message takes
// the form
//
//	found 'x' at 0..1 but one of 'y', 'z' was expected
//
// with one "; inside <label> at <span>" clause per recorded context.
//
// # Locations
//
// A Source indexes input text so that integer-offset spans can be
// reported as line and column positions, and so that the text a span
// covers can be excerpted into a message.
//
// The combi subpackage provides the minimal parsing engine this
// package is defined against, along with the Labelled combinator that
// rewrites failures with grammar-author vocabulary.
package parco
