package linebreak

// patternKind tags the variant a Pattern node holds. Matching is an
// exhaustive switch over this tag rather than a type-asserted interface
// tree, so a Pattern stays a flat, allocation-cheap struct.
type patternKind uint8

const (
	kindBase patternKind = iota
	kindClass
	kindGC
	kindCodepoint
	kindEastAsian
	kindExtPict
	kindModifier
	kindSet
	kindSequence
)

// baseKind distinguishes the three "base" pattern atoms.
type baseKind uint8

const (
	baseAny baseKind = iota
	baseSot
	baseEot
)

// modifierKind is the payload of a kindModifier node. Unary modifiers
// (modNot, modStar) apply to the single sibling that immediately follows
// them in the parent container; binary modifiers (modAnd, modAndNot)
// combine the result of the sibling immediately before them with the
// result of the sibling immediately after, and may only appear inside a
// kindSet container.
type modifierKind uint8

const (
	modNot    modifierKind = iota // ^
	modAnd                        // &
	modAndNot                     // -
	modStar                       // *
)

// Pattern is a node in the tree the Rule Parser builds from a rule string.
// Only one of the typed fields is meaningful, selected by kind; Children
// holds the ordered content of kindSet/kindSequence containers.
type Pattern struct {
	kind     patternKind
	base     baseKind
	class    LineBreakClass
	gc       GeneralCategory
	cp       rune
	modifier modifierKind
	Children []*Pattern
}

func newBase(b baseKind) *Pattern          { return &Pattern{kind: kindBase, base: b} }
func newClass(c LineBreakClass) *Pattern   { return &Pattern{kind: kindClass, class: c} }
func newGC(g GeneralCategory) *Pattern     { return &Pattern{kind: kindGC, gc: g} }
func newCodepoint(r rune) *Pattern         { return &Pattern{kind: kindCodepoint, cp: r} }
func newEastAsian() *Pattern               { return &Pattern{kind: kindEastAsian} }
func newExtPict() *Pattern                 { return &Pattern{kind: kindExtPict} }
func newModifier(m modifierKind) *Pattern  { return &Pattern{kind: kindModifier, modifier: m} }
func newSet(children ...*Pattern) *Pattern { return &Pattern{kind: kindSet, Children: children} }
func newSequence(children ...*Pattern) *Pattern {
	return &Pattern{kind: kindSequence, Children: children}
}

// flatten collapses a kindSequence/kindSet whose sole child is a container
// of the same kind into that child's content, per the parser's
// canonicalisation pass. It is applied bottom-up.
func flatten(p *Pattern) *Pattern {
	if p == nil {
		return nil
	}
	for i, c := range p.Children {
		p.Children[i] = flatten(c)
	}
	if (p.kind == kindSequence || p.kind == kindSet) && len(p.Children) == 1 {
		only := p.Children[0]
		if only.kind == p.kind {
			return only
		}
	}
	return p
}

// reverseBefore returns a copy of the before-side container with its
// top-level children in reverse order, so that traversal starts from the
// position immediately to the left of the break point. Unary modifiers
// must keep preceding their operand: if reversal places a unary modifier
// immediately after the node it used to precede, the pair is swapped back.
func reverseBefore(p *Pattern) *Pattern {
	if p == nil {
		return nil
	}
	if p.kind != kindSequence && p.kind != kindSet {
		return p
	}
	n := len(p.Children)
	rev := make([]*Pattern, n)
	for i, c := range p.Children {
		rev[n-1-i] = c
	}
	rev = reswapModifiers(rev)
	return &Pattern{kind: p.kind, Children: rev}
}

// reswapModifiers walks a reversed children slice and, whenever a unary
// modifier ends up immediately after the node that used to be its operand,
// swaps the pair back so the modifier again precedes its operand.
func reswapModifiers(children []*Pattern) []*Pattern {
	for i := 0; i+1 < len(children); i++ {
		if isUnaryModifier(children[i+1]) {
			children[i], children[i+1] = children[i+1], children[i]
		}
	}
	return children
}

func isUnaryModifier(p *Pattern) bool {
	return p != nil && p.kind == kindModifier && (p.modifier == modNot || p.modifier == modStar)
}
