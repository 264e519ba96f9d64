package ucd

import "testing"

func TestLoadClassTableMemoises(t *testing.T) {
	t1, err := LoadClassTable("v17")
	if err != nil {
		t.Fatal(err)
	}
	t2, err := LoadClassTable("v17")
	if err != nil {
		t.Fatal(err)
	}
	if t1 != t2 {
		t.Error("expected LoadClassTable to return the memoised table on second call")
	}
}

func TestClassTableLookup(t *testing.T) {
	table, err := LoadClassTable("v17")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		cp    rune
		class string
		gc    string
	}{
		{'a', "AL", "Ll"},
		{'A', "AL", "Lu"},
		{'0', "NU", "Nd"},
		{' ', "SP", "Zs"},
		{'\n', "LF", "Cc"},
		{'\r', "CR", "Cc"},
		{'(', "OP", "Ps"},
		{')', "CL", "Pe"},
		{0x05BE, "HH", "Pd"},
	}
	for _, tt := range tests {
		class, gc, ok := table.Lookup(tt.cp)
		if !ok {
			t.Errorf("Lookup(%q): not found", tt.cp)
			continue
		}
		if class != tt.class || gc != tt.gc {
			t.Errorf("Lookup(%q) = (%s, %s), want (%s, %s)", tt.cp, class, gc, tt.class, tt.gc)
		}
	}
}

func TestClassTableLookupMiss(t *testing.T) {
	table, err := LoadClassTable("v17")
	if err != nil {
		t.Fatal(err)
	}
	if _, _, ok := table.Lookup(0x110000); ok {
		t.Error("expected out-of-range code point to miss")
	}
}

func TestV16TreatsHHCodepointAsBA(t *testing.T) {
	table, err := LoadClassTable("v16")
	if err != nil {
		t.Fatal(err)
	}
	class, _, ok := table.Lookup(0x05BE)
	if !ok || class != "BA" {
		t.Errorf("v16 Lookup(U+05BE) = %s, ok=%v; want BA", class, ok)
	}
}

func TestEastAsianTable(t *testing.T) {
	table, err := LoadEastAsianTable("v17")
	if err != nil {
		t.Fatal(err)
	}
	if !table.Contains(0x4E2D) { // 中, CJK ideograph
		t.Error("expected CJK ideograph to be East-Asian-wide")
	}
	if table.Contains('a') {
		t.Error("expected ASCII letter not to be East-Asian-wide")
	}
}
