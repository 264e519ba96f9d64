package linebreak

import "testing"

func TestIterateSimpleSentence(t *testing.T) {
	c, err := NewChecker()
	if err != nil {
		t.Fatal(err)
	}
	c.SetText("a b")
	segs := c.Iterate()
	if len(segs) == 0 {
		t.Fatal("expected at least one segment")
	}
	var joined string
	for _, s := range segs {
		joined += s.Text
	}
	if joined != "a b" {
		t.Errorf("expected segments to reconstruct the original text, got %q", joined)
	}
	last := segs[len(segs)-1]
	if last.BreakType != Mandatory {
		t.Errorf("expected the final segment to carry Mandatory (end of text), got %v", last.BreakType)
	}
}

func TestIterateIndexIsBreakPosition(t *testing.T) {
	c, err := NewChecker()
	if err != nil {
		t.Fatal(err)
	}
	c.SetText("Hello, breaker")
	segs := c.Iterate()
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d: %+v", len(segs), segs)
	}
	if segs[0].Index != 7 {
		t.Errorf("expected first segment's Index to be the break position 7, got %d", segs[0].Index)
	}
	if segs[1].Index != 14 {
		t.Errorf("expected last segment's Index to be the text length 14, got %d", segs[1].Index)
	}
	if last := segs[len(segs)-1]; last.Index != len(c.Text()) {
		t.Errorf("invariant violated: last Index (%d) != text length (%d)", last.Index, len(c.Text()))
	}
}

func TestIterateEmptyText(t *testing.T) {
	c, err := NewChecker()
	if err != nil {
		t.Fatal(err)
	}
	c.SetText("")
	if segs := c.Iterate(); len(segs) != 0 {
		t.Errorf("expected no segments for empty text, got %v", segs)
	}
}

func TestIterateHardLineBreak(t *testing.T) {
	c, err := NewChecker()
	if err != nil {
		t.Fatal(err)
	}
	c.SetText("a\nb")
	segs := c.Iterate()
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments split at the mandatory break, got %d: %+v", len(segs), segs)
	}
	if segs[0].Text != "a\n" || segs[0].BreakType != Mandatory {
		t.Errorf("expected first segment %q/Mandatory, got %q/%v", "a\n", segs[0].Text, segs[0].BreakType)
	}
	if segs[1].Text != "b" {
		t.Errorf("expected second segment %q, got %q", "b", segs[1].Text)
	}
}
