package linebreak

import "testing"

func TestEastAsianSetContains(t *testing.T) {
	set, err := loadEastAsianSet("v17")
	if err != nil {
		t.Fatal(err)
	}
	if !set.contains(0x4E2D) {
		t.Error("expected a CJK ideograph to be East-Asian-wide")
	}
	if set.contains('a') {
		t.Error("expected an ASCII letter not to be East-Asian-wide")
	}
}

func TestEastAsianSetNilReceiverIsSafe(t *testing.T) {
	var set *eastAsianSet
	if set.contains('a') {
		t.Error("expected a nil set to contain nothing")
	}
}
