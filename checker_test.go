package linebreak

import "testing"

func TestNewCheckerDefaults(t *testing.T) {
	c, err := NewChecker()
	if err != nil {
		t.Fatal(err)
	}
	if c.classTable == nil || c.eastAsian == nil {
		t.Fatal("expected default tables to be loaded")
	}
}

func TestNewCheckerBadTableKey(t *testing.T) {
	_, err := NewChecker(WithClassTableKey("v99"))
	if err == nil {
		t.Fatal("expected an error for an unknown class table key")
	}
}

func TestCheckerBreakAfterSpace(t *testing.T) {
	c, err := NewChecker()
	if err != nil {
		t.Fatal(err)
	}
	c.SetText("a b")
	// position 1 is right after 'a', before the space: LB7 forbids it.
	if bt := c.IsBreakAt(1); bt != Forbidden {
		t.Errorf("expected Forbidden before the space, got %v", bt)
	}
	// position 2 is right after the space, not at the end of text: LB18
	// allows a break there.
	if bt := c.IsBreakAt(2); bt != Allowed {
		t.Errorf("expected Allowed after the space, got %v", bt)
	}
}

func TestCheckerMandatoryBreakOnNewline(t *testing.T) {
	c, err := NewChecker()
	if err != nil {
		t.Fatal(err)
	}
	c.SetText("a\nb")
	if bt := c.IsBreakAt(2); bt != Mandatory {
		t.Errorf("expected Mandatory after LF, got %v", bt)
	}
}

func TestCheckerCRLFNeverSplits(t *testing.T) {
	c, err := NewChecker()
	if err != nil {
		t.Fatal(err)
	}
	c.SetText("a\r\nb")
	if bt := c.IsBreakAt(2); bt != Forbidden {
		t.Errorf("expected Forbidden between CR and LF, got %v", bt)
	}
	if bt := c.IsBreakAt(3); bt != Mandatory {
		t.Errorf("expected Mandatory after CRLF, got %v", bt)
	}
}

func TestCheckerStartOfTextNeverBreaks(t *testing.T) {
	c, err := NewChecker()
	if err != nil {
		t.Fatal(err)
	}
	c.SetText("hello")
	if bt := c.IsBreakAt(0); bt != Forbidden {
		t.Errorf("expected Forbidden at position 0, got %v", bt)
	}
}
