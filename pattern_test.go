package linebreak

import "testing"

func TestFlattenCollapsesSingleChildSequence(t *testing.T) {
	inner := newSequence(newClass(SP))
	outer := newSequence(inner)
	flat := flatten(outer)
	if flat.kind != kindSequence || len(flat.Children) != 1 || flat.Children[0].kind != kindClass {
		t.Fatalf("expected flatten to collapse the nested sequence, got %#v", flat)
	}
}

func TestFlattenLeavesDifferentKindsAlone(t *testing.T) {
	inner := newSet(newClass(SP))
	outer := newSequence(inner)
	flat := flatten(outer)
	if flat.kind != kindSequence || len(flat.Children) != 1 || flat.Children[0].kind != kindSet {
		t.Fatalf("expected the inner set to survive flattening, got %#v", flat)
	}
}

func TestReverseBeforeOrdersChildren(t *testing.T) {
	seq := newSequence(newClass(OP), newClass(SP), newClass(AL))
	rev := reverseBefore(seq)
	want := []LineBreakClass{AL, SP, OP}
	if len(rev.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(rev.Children))
	}
	for i, w := range want {
		if rev.Children[i].class != w {
			t.Errorf("Children[%d] = %v, want %v", i, rev.Children[i].class, w)
		}
	}
}

func TestIsUnaryModifier(t *testing.T) {
	if !isUnaryModifier(newModifier(modNot)) {
		t.Error("expected ^ to be a unary modifier")
	}
	if !isUnaryModifier(newModifier(modStar)) {
		t.Error("expected * to be a unary modifier")
	}
	if isUnaryModifier(newModifier(modAnd)) {
		t.Error("expected & not to be a unary modifier")
	}
	if isUnaryModifier(newClass(SP)) {
		t.Error("expected a class node not to be a modifier")
	}
}
