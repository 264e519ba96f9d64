package linebreak

import "testing"

func TestClassFromStringRoundTrip(t *testing.T) {
	for _, name := range []string{"AL", "HL", "NU", "SP", "HH", "CJ", "B2"} {
		c, ok := ClassFromString(name)
		if !ok {
			t.Fatalf("expected %q to resolve", name)
		}
		if c.String() != name {
			t.Errorf("round trip failed for %q: got %q", name, c.String())
		}
	}
}

func TestClassFromStringUnknown(t *testing.T) {
	if _, ok := ClassFromString("ZZ"); ok {
		t.Error("expected ZZ not to resolve to a class")
	}
}

func TestGCFromStringRoundTrip(t *testing.T) {
	for _, name := range []string{"Lu", "Ll", "Mn", "Mc", "Cn"} {
		g, ok := GCFromString(name)
		if !ok {
			t.Fatalf("expected %q to resolve", name)
		}
		if g.String() != name {
			t.Errorf("round trip failed for %q: got %q", name, g.String())
		}
	}
}

func TestResolveDefault(t *testing.T) {
	tests := []struct {
		raw  LineBreakClass
		gc   GeneralCategory
		want LineBreakClass
	}{
		{AI, GCUnknown, AL},
		{SG, GCUnknown, AL},
		{XX, GCUnknown, AL},
		{SA, Mn, CM},
		{SA, Mc, CM},
		{SA, Lo, AL},
		{CJ, GCUnknown, NS},
		{AL, GCUnknown, AL},
	}
	for _, tt := range tests {
		if got := ResolveDefault(tt.raw, tt.gc); got != tt.want {
			t.Errorf("ResolveDefault(%v, %v) = %v, want %v", tt.raw, tt.gc, got, tt.want)
		}
	}
}
