package linebreak

import "testing"

func TestLocaleFromStringEastAsian(t *testing.T) {
	lc := LocaleFromString("zh-Hant")
	if !lc.EastAsian {
		t.Error("expected zh-Hant to resolve as an East Asian locale")
	}
	crit := lc.Criterion()
	if got := crit(AI, GCUnknown); got != ID {
		t.Errorf("expected AI to resolve to ID under an East Asian locale, got %v", got)
	}
}

func TestLocaleFromStringLatin(t *testing.T) {
	lc := LocaleFromString("en-US")
	if lc.EastAsian {
		t.Error("expected en-US not to resolve as an East Asian locale")
	}
	crit := lc.Criterion()
	if got := crit(AI, GCUnknown); got != AL {
		t.Errorf("expected AI to resolve to AL under a Latin locale, got %v", got)
	}
}

func TestNilLocaleCriterionFallsBackToDefault(t *testing.T) {
	var lc *LocaleCriterion
	crit := lc.Criterion()
	if got := crit(CJ, GCUnknown); got != NS {
		t.Errorf("expected the nil-safe fallback to behave like ResolveDefault, got %v", got)
	}
}
