package linebreak

import "testing"

func TestMatchAtomClass(t *testing.T) {
	p := newClass(SP)
	get := func(i int) (tok, bool) {
		if i == 0 {
			return tok{class: SP}, true
		}
		return tok{}, false
	}
	ok, n := matchAtom(p, get, 0)
	if !ok || n != 1 {
		t.Fatalf("expected match consuming 1, got ok=%v n=%d", ok, n)
	}
}

func TestMatchAtomNotModifier(t *testing.T) {
	rules := MustParseRules([]RawRule{{Name: "t", Pattern: "^SP × any"}})
	get := func(i int) (tok, bool) {
		if i == 0 {
			return tok{class: OP}, true
		}
		return tok{}, false
	}
	ok := matchPattern(rules[0].Before, get)
	if !ok {
		t.Error("expected ^SP to match a non-SP token")
	}
	getSP := func(i int) (tok, bool) {
		if i == 0 {
			return tok{class: SP}, true
		}
		return tok{}, false
	}
	if matchPattern(rules[0].Before, getSP) {
		t.Error("expected ^SP not to match an SP token")
	}
}

func TestMatchAtomStarModifier(t *testing.T) {
	rules := MustParseRules([]RawRule{{Name: "t", Pattern: "OP SP* × any"}})
	// Stream (closest to break first): SP, SP, OP, <end>
	toks := []tok{{class: SP}, {class: SP}, {class: OP}}
	get := func(i int) (tok, bool) {
		if i < len(toks) {
			return toks[i], true
		}
		return tok{}, false
	}
	if !matchPattern(rules[0].Before, get) {
		t.Error("expected OP SP* to match OP followed by two spaces")
	}
}

func TestMatchAtomGC(t *testing.T) {
	p := newGC(Pi)
	get := func(i int) (tok, bool) {
		if i == 0 {
			return tok{class: QU, gc: Pi}, true
		}
		return tok{}, false
	}
	ok, n := matchAtom(p, get, 0)
	if !ok || n != 1 {
		t.Fatalf("expected gc(Pi) to match a Pi token, got ok=%v n=%d", ok, n)
	}
	getPf := func(i int) (tok, bool) {
		if i == 0 {
			return tok{class: QU, gc: Pf}, true
		}
		return tok{}, false
	}
	if ok, _ := matchAtom(p, getPf, 0); ok {
		t.Error("expected gc(Pi) not to match a Pf token")
	}
}

func TestIsBreakAtGCAtomPopulatedFromText(t *testing.T) {
	rules := MustParseRules([]RawRule{
		{Name: "no-break-quote-before-pi", Pattern: "QU × gc(Pi)"},
		{Name: "default", Pattern: "any ÷ any"},
	})
	table := mustTable(t, "v17")
	// U+2018 LEFT SINGLE QUOTATION MARK is class QU, General_Category Pi.
	ts := newTextState("‘‘", table, nil)
	if bt := isBreakAt(ts, nil, rules, 1); bt != Forbidden {
		t.Errorf("expected Forbidden between a QU token and a token carrying gc(Pi), got %v", bt)
	}
}

func TestIsBreakAtSimpleRuleSet(t *testing.T) {
	rules := MustParseRules([]RawRule{
		{Name: "no-break-before-op", Pattern: "any × OP"},
		{Name: "default", Pattern: "any ÷ any"},
	})
	table := mustTable(t, "v17")
	ts := newTextState("a(b", table, nil) // AL, OP, AL
	if bt := isBreakAt(ts, nil, rules, 1); bt != Forbidden {
		t.Errorf("expected Forbidden before OP, got %v", bt)
	}
	if bt := isBreakAt(ts, nil, rules, 2); bt != Allowed {
		t.Errorf("expected Allowed after OP, got %v", bt)
	}
}

func TestIsBreakAtSideEffectSwitchesView(t *testing.T) {
	rules := DefaultRules()
	table := mustTable(t, "v17")
	ts := newTextState("a"+"́"+"b", table, nil) // AL, CM, AL
	// position 1 is strictly between 'a' and the combining mark: always forbidden.
	if bt := isBreakAt(ts, nil, rules, 1); bt != Forbidden {
		t.Errorf("expected Forbidden immediately before a combining mark, got %v", bt)
	}
	// position 2 is between the mark and 'b': LB9 fails there and switches to
	// the collapsed view, where 'a' and 'b' are adjacent and LB28 forbids the
	// break. Without the switch LB31 would allow it.
	if bt := isBreakAt(ts, nil, rules, 2); bt != Forbidden {
		t.Errorf("expected Forbidden between the combining mark and 'b', got %v", bt)
	}
}
