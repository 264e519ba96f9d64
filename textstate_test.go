package linebreak

import (
	"testing"

	"github.com/npillmayer/linebreak/internal/ucd"
)

func mustTable(t *testing.T, key string) *ucd.ClassTable {
	t.Helper()
	tbl, err := ucd.LoadClassTable(key)
	if err != nil {
		t.Fatal(err)
	}
	return tbl
}

func TestTextStateSurrogateOffsets(t *testing.T) {
	table := mustTable(t, "v17")
	// U+1F600 (grinning face) needs a UTF-16 surrogate pair; 'a' does not.
	ts := newTextState("a\U0001F600b", table, nil)
	if len(ts.codePoints) != 3 {
		t.Fatalf("expected 3 code points, got %d", len(ts.codePoints))
	}
	want := []int{0, 1, 3, 4}
	for i, w := range want {
		if ts.offsetsSurrogates[i] != w {
			t.Errorf("offsetsSurrogates[%d] = %d, want %d", i, ts.offsetsSurrogates[i], w)
		}
	}
	if !ts.isSurrogateInterior(2) {
		t.Error("expected code-unit position 2 to be inside the surrogate pair")
	}
	if ts.isSurrogateInterior(1) || ts.isSurrogateInterior(3) {
		t.Error("expected positions 1 and 3 not to be surrogate-interior")
	}
}

func TestCombiningSequenceCollapsesAfterBase(t *testing.T) {
	table := mustTable(t, "v17")
	// 'a' (AL) followed by U+0301 (combining acute, CM) collapses to one
	// WoCS entry owned by 'a'.
	ts := newTextState("áb", table, nil)
	if len(ts.classesWoCS) != 2 {
		t.Fatalf("expected 2 entries in the collapsed view, got %d: %v", len(ts.classesWoCS), ts.classesWoCS)
	}
	if ts.owner[0] != 0 || ts.owner[1] != 0 || ts.owner[2] != 1 {
		t.Errorf("unexpected owner mapping: %v", ts.owner)
	}
}

func TestCombiningMarkAtStartBecomesAL(t *testing.T) {
	table := mustTable(t, "v17")
	// a CM with nothing before it (start of text) synthesises an AL entry
	// instead of being silently dropped.
	ts := newTextState("́a", table, nil)
	if len(ts.classesWoCS) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(ts.classesWoCS))
	}
	if ts.classesWoCS[0] != AL {
		t.Errorf("expected the leading CM to resolve to AL in the collapsed view, got %v", ts.classesWoCS[0])
	}
}

func TestCombiningMarkAfterSpaceBecomesAL(t *testing.T) {
	table := mustTable(t, "v17")
	ts := newTextState("a ́b", table, nil)
	// classes: AL, SP, CM, AL -- the CM follows SP, an absorber, so it
	// synthesises its own AL entry rather than merging into SP.
	if len(ts.classesWoCS) != 4 {
		t.Fatalf("expected 4 entries, got %d: %v", len(ts.classesWoCS), ts.classesWoCS)
	}
	if ts.classesWoCS[2] != AL {
		t.Errorf("expected a synthesised AL entry after SP, got %v", ts.classesWoCS[2])
	}
}
