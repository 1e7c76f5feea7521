// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package parco

import (
	"cmp"
	"fmt"
	"strings"
)

// A Pattern describes an expected input in an error message: either a
// named syntactic category ("expression", "digit") or one concrete
// token. Patterns are immutable values compared structurally.
type Pattern[T comparable] struct {
	name  string
	tok   T
	isTok bool
}

// Labelled returns the pattern naming the syntactic category name.
func Labelled[T comparable](name string) Pattern[T] { return Pattern[T]{name: name} }

// Token returns the pattern expecting exactly the token tok.
func Token[T comparable](tok T) Pattern[T] { return Pattern[T]{tok: tok, isTok: true} }

// IsToken reports whether p expects one concrete token rather than a
// named category.
func (p Pattern[T]) IsToken() bool { return p.isTok }

// Tok reports the concrete token p expects, if it expects one.
func (p Pattern[T]) Tok() (T, bool) { return p.tok, p.isTok }

// Name reports the category name p carries, or "" for a token pattern.
func (p Pattern[T]) Name() string { return p.name }

// Equal reports whether p and q are structurally equal.
func (p Pattern[T]) Equal(q Pattern[T]) bool { return p == q }

// String renders a category name verbatim and a token in quotes.
func (p Pattern[T]) String() string {
	if p.isTok {
		return "'" + tokenString(p.tok) + "'"
	}
	return p.name
}

// tokenString renders a token for an error message. Runes and strings
// render as their text, types with a String method use it, and
// anything else falls back to fmt.Sprint.
func tokenString(tok any) string {
	switch t := tok.(type) {
	case rune:
		return string(t)
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// A Context records that a failure occurred inside the construct
// named Label, which covers Span of the input.
type Context[P cmp.Ordered] struct {
	Label string
	Span  Span[P]
}

// A Simple is a ready-made parse failure carrying an ordered list of
// expected patterns, the token actually found, and the contexts the
// failure occurred inside. It implements Error and ContextError and
// may be used with any comparable token type; grammars needing richer
// failures substitute their own implementation.
//
// The zero value is not useful; construct values with NewSimple.
type Simple[T comparable, P cmp.Ordered] struct {
	span     Span[P]
	expected []Pattern[T]
	found    *T
	context  []Context[P]
}

// NewSimple constructs a failure at span where each token of expected
// would have been acceptable and found was seen instead. A nil found
// means the input ended. NewSimple is assignable to the NewError
// function type.
func NewSimple[T comparable, P cmp.Ordered](span Span[P], expected []T, found *T) *Simple[T, P] {
	var pats []Pattern[T]
	if len(expected) != 0 {
		pats = make([]Pattern[T], len(expected))
		for i, tok := range expected {
			pats[i] = Token(tok)
		}
	}
	return &Simple[T, P]{span: span, expected: pats, found: found}
}

// Span reports the span the failure originated at.
func (e *Simple[T, P]) Span() Span[P] { return e.span }

// Expected returns the expected patterns in insertion order. The
// slice is shared with e and must not be modified.
func (e *Simple[T, P]) Expected() []Pattern[T] { return e.expected }

// Found reports the token found instead of an expected pattern, or
// ok=false if the input ended.
func (e *Simple[T, P]) Found() (_ T, ok bool) {
	if e.found == nil {
		var zero T
		return zero, false
	}
	return *e.found, true
}

// Contexts returns the recorded enclosing contexts, outermost last.
// The slice is shared with e and must not be modified.
func (e *Simple[T, P]) Contexts() []Context[P] { return e.context }

// Merge absorbs the expected patterns of other, which must be a
// *Simple describing the same failure point. Merge panics if other
// has a different concrete type; mixing error implementations within
// one parse is a programming error.
func (e *Simple[T, P]) Merge(other Error[T, P]) {
	o, ok := other.(*Simple[T, P])
	if !ok {
		panic(fmt.Sprintf("merge of mismatched error type %T", other))
	}
	e.expected = append(e.expected, o.expected...)
}

// Relabel replaces the expected set with the single category label.
func (e *Simple[T, P]) Relabel(label string) {
	e.expected = []Pattern[T]{Labelled[T](label)}
}

// InContext records that the failure occurred inside the construct
// named label covering span.
func (e *Simple[T, P]) InContext(label string, span Span[P]) {
	e.context = append(e.context, Context[P]{Label: label, Span: span})
}

// Error renders the failure, for example:
//
//	found '}' at 6..7 but one of ',', ']' was expected; inside array at 0..7
//
// A failure at the end of input begins "the input ended", and one
// with no expected patterns ends "but end of input was expected".
func (e *Simple[T, P]) Error() string {
	var sb strings.Builder
	if e.found != nil {
		fmt.Fprintf(&sb, "found '%s' at %v ", tokenString(*e.found), e.span)
	} else {
		sb.WriteString("the input ended ")
	}
	switch len(e.expected) {
	case 0:
		sb.WriteString("but end of input was expected")
	case 1:
		fmt.Fprintf(&sb, "but %v was expected", e.expected[0])
	default:
		parts := make([]string, len(e.expected))
		for i, p := range e.expected {
			parts[i] = p.String()
		}
		fmt.Fprintf(&sb, "but one of %s was expected", strings.Join(parts, ", "))
	}
	for _, c := range e.context {
		fmt.Fprintf(&sb, "; inside %s at %v", c.Label, c.Span)
	}
	return sb.String()
}

func (e *Simple[T, P]) String() string { return e.Error() }
