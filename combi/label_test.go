// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package combi_test

import (
	"testing"

	"github.com/creachadair/parco"
	"github.com/creachadair/parco/combi"
	"github.com/google/go-cmp/cmp"
)

func TestLabelDirectRelabel(t *testing.T) {
	p := combi.Label("digit", digits())

	// The wrapped parser fails at the wrapper's own starting position,
	// so the label fully replaces the raw token expectations.
	_, err := combi.RunSimple[rune, rune](p, []rune("a"))
	if err == nil {
		t.Fatal("Run: got nil error, want failure")
	}
	se, ok := err.(serr)
	if !ok {
		t.Fatalf("Run error has type %T, want %T", err, se)
	}
	want := []parco.Pattern[rune]{parco.Labelled[rune]("digit")}
	if diff := cmp.Diff(want, se.Expected()); diff != "" {
		t.Errorf("Expected (-want, +got):\n%s", diff)
	}
	if got, want := err.Error(), "found 'a' at 0..1 but digit was expected"; got != want {
		t.Errorf("Message: got %q, want %q", got, want)
	}
}

func parens() combi.Labelled[rune, []rune, serr] {
	return combi.Label("parenthesized", combi.Seq(
		combi.Just[rune, serr]('('),
		combi.Just[rune, serr]('1'),
		combi.Just[rune, serr](')'),
	))
}

func TestLabelContextWrap(t *testing.T) {
	// The parser matches "(" and "1" before failing, so in context
	// mode the failure keeps its detail and gains a breadcrumb from
	// the wrapper's start to the failure point.
	_, err := combi.RunSimple[rune, []rune](parens().AsContext(), []rune("(1"))
	if err == nil {
		t.Fatal("Run: got nil error, want failure")
	}
	se, ok := err.(serr)
	if !ok {
		t.Fatalf("Run error has type %T, want %T", err, se)
	}

	wantExp := []parco.Pattern[rune]{parco.Token(')')}
	if diff := cmp.Diff(wantExp, se.Expected()); diff != "" {
		t.Errorf("Expected (-want, +got):\n%s", diff)
	}
	wantCtx := []parco.Context[int]{{Label: "parenthesized", Span: parco.NewSpan(0, 2)}}
	if diff := cmp.Diff(wantCtx, se.Contexts()); diff != "" {
		t.Errorf("Contexts (-want, +got):\n%s", diff)
	}
	const wantMsg = "the input ended but ')' was expected; inside parenthesized at 0..2"
	if got := err.Error(); got != wantMsg {
		t.Errorf("Message: got %q, want %q", got, wantMsg)
	}
}

func TestLabelWithoutContext(t *testing.T) {
	// Without AsContext, a failure past the starting position is left
	// entirely alone: no relabeling, no breadcrumb.
	_, err := combi.RunSimple[rune, []rune](parens(), []rune("(1"))
	if err == nil {
		t.Fatal("Run: got nil error, want failure")
	}
	se := err.(serr)

	wantExp := []parco.Pattern[rune]{parco.Token(')')}
	if diff := cmp.Diff(wantExp, se.Expected()); diff != "" {
		t.Errorf("Expected (-want, +got):\n%s", diff)
	}
	if len(se.Contexts()) != 0 {
		t.Errorf("Contexts: got %v, want none", se.Contexts())
	}
}

func TestLabelMergesWithSiblings(t *testing.T) {
	// A relabeled failure re-enters the engine's normal selection and
	// merges with a sibling branch's failure at the same position.
	p := combi.Choice(combi.Just[rune, serr]('x'), combi.Label("digit", digits()))

	_, err := combi.RunSimple[rune, rune](p, []rune("a"))
	if err == nil {
		t.Fatal("Run: got nil error, want failure")
	}
	se := err.(serr)

	want := []parco.Pattern[rune]{parco.Token('x'), parco.Labelled[rune]("digit")}
	if diff := cmp.Diff(want, se.Expected()); diff != "" {
		t.Errorf("Expected (-want, +got):\n%s", diff)
	}
	const wantMsg = "found 'a' at 0..1 but one of 'x', digit was expected"
	if got := err.Error(); got != wantMsg {
		t.Errorf("Message: got %q, want %q", got, wantMsg)
	}
}

func TestLabelRestoresOuterAlt(t *testing.T) {
	// A labeled parser that succeeds must leave the outer
	// best-alternative slot exactly as it found it.
	in := combi.NewInput(parco.NewSimple[rune, int], []rune("5"))
	outer := parco.NewSimple(parco.NewSpan(0, 1), []rune{'q'}, ptrRune('5'))
	in.Errors().AddAlt(0, outer)

	if _, ok := combi.Label("digit", digits()).Parse(in); !ok {
		t.Fatal("Parse: unexpectedly failed")
	}
	alt := in.Errors().Alt()
	if alt == nil || alt.Err != outer || alt.Pos != 0 {
		t.Errorf("Alt after labeled run: got %+v, want the outer failure at 0", alt)
	}
	want := []parco.Pattern[rune]{parco.Token('q')}
	if diff := cmp.Diff(want, outer.Expected()); diff != "" {
		t.Errorf("Outer expected (-want, +got):\n%s", diff)
	}
}

func warn(label string) func(rune, parco.Span[int]) (serr, bool) {
	return func(_ rune, span parco.Span[int]) (serr, bool) {
		return parco.ExpectedLabel(parco.NewSimple[rune, int], span, label, nil), true
	}
}

func TestSecondaryContextScoping(t *testing.T) {
	// One diagnostic is recorded before the context region is entered
	// and one inside it; only the inside one gets the breadcrumb.
	first := combi.Validate(combi.Just[rune, serr]('a'), warn("first"))
	inner := combi.Validate(combi.Just[rune, serr]('b'), warn("second"))
	p := combi.Seq(first, combi.Label("bee", inner).AsContext())

	in := combi.NewInput(parco.NewSimple[rune, int], []rune("ab"))
	if _, ok := p.Parse(in); !ok {
		t.Fatal("Parse: unexpectedly failed")
	}

	sec := in.Errors().Secondary()
	if len(sec) != 2 {
		t.Fatalf("Secondary: got %d diagnostics, want 2", len(sec))
	}
	if got := sec[0].Err.Contexts(); len(got) != 0 {
		t.Errorf("First diagnostic contexts: got %v, want none", got)
	}
	wantCtx := []parco.Context[int]{{Label: "bee", Span: parco.NewSpan(1, 2)}}
	if diff := cmp.Diff(wantCtx, sec[1].Err.Contexts()); diff != "" {
		t.Errorf("Second diagnostic contexts (-want, +got):\n%s", diff)
	}
	if got, want := sec[1].Err.Error(), "the input ended but second was expected; inside bee at 1..2"; got != want {
		t.Errorf("Second diagnostic message: got %q, want %q", got, want)
	}
}

func ptrRune(r rune) *rune { return &r }
