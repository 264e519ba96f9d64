package linebreak

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// tok is one classified code point as seen by the matcher: its class, its
// General_Category, and the two boolean properties ($EastAsian,
// Extended_Pictographic) a few rules test directly.
type tok struct {
	cp         rune
	class      LineBreakClass
	gc         GeneralCategory
	eastAsian  bool
	extPict    bool
}

// streamFunc returns the token i steps away from the break point in one
// direction (see beforeStream/afterStream), and whether a code point
// exists there at all.
type streamFunc func(i int) (tok, bool)

// matchCursor is the short-lived scratch object a Matcher borrows from a
// pool for each is_break_at call, rather than allocating one per call.
type matchCursor struct {
	ts  *TextState
	eas *eastAsianSet
}

type cursorPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalCursorPool *cursorPool

func init() {
	globalCursorPool = &cursorPool{ctx: context.Background()}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &matchCursor{}, nil
		})
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1
	config.BlockWhenExhausted = false
	globalCursorPool.opool = pool.NewObjectPool(globalCursorPool.ctx, factory, config)
}

func borrowCursor(ts *TextState, eas *eastAsianSet) *matchCursor {
	o, _ := globalCursorPool.opool.BorrowObject(globalCursorPool.ctx)
	c := o.(*matchCursor)
	c.ts = ts
	c.eas = eas
	return c
}

func (c *matchCursor) release() {
	c.ts = nil
	c.eas = nil
	_ = globalCursorPool.opool.ReturnObject(globalCursorPool.ctx, c)
}

func (c *matchCursor) tokenAt(i int) (tok, bool) {
	class, ok := c.ts.classAt(i)
	if !ok {
		return tok{}, false
	}
	cp, _ := c.ts.cpAt(i)
	gc, _ := c.ts.gcAt(i)
	return tok{
		cp:        cp,
		class:     class,
		gc:        gc,
		eastAsian: c.eas.contains(cp),
		extPict:   isExtendedPictographic(cp),
	}, true
}

// beforeStream walks backwards from the code point immediately preceding
// position, matching the order rule Before-patterns are compiled in after
// reverseBefore.
func (c *matchCursor) beforeStream(position int) streamFunc {
	return func(i int) (tok, bool) {
		return c.tokenAt(position - 1 - i)
	}
}

// afterStream walks forwards from the code point at position.
func (c *matchCursor) afterStream(position int) streamFunc {
	return func(i int) (tok, bool) {
		return c.tokenAt(position + i)
	}
}

// --- Pattern evaluation --------------------------------------------------

// group is a pre-processed run of Pattern.Children: either a single atom,
// a unary-modified atom (^ or *), or a binary-combined pair (& or -).
type group struct {
	op       modifierKind
	isSingle bool
	pattern  *Pattern
	left     *Pattern
	right    *Pattern
}

const opSingle modifierKind = 255

func buildGroups(children []*Pattern) []group {
	groups := make([]group, 0, len(children))
	for i := 0; i < len(children); i++ {
		c := children[i]
		if c.kind == kindModifier {
			switch c.modifier {
			case modNot, modStar:
				if i+1 >= len(children) {
					invariantViolation("unary modifier with no operand")
				}
				groups = append(groups, group{op: c.modifier, pattern: children[i+1]})
				i++
				continue
			default:
				// a binary modifier with no preceding left operand is a
				// malformed tree; skip it defensively rather than panic
				// on caller-supplied rule text that ParseRules already
				// validated structurally but not semantically.
				continue
			}
		}
		if i+1 < len(children) && children[i+1].kind == kindModifier &&
			(children[i+1].modifier == modAnd || children[i+1].modifier == modAndNot) {
			if i+2 >= len(children) {
				invariantViolation("binary modifier with no right operand")
			}
			groups = append(groups, group{op: children[i+1].modifier, left: c, right: children[i+2]})
			i += 2
			continue
		}
		groups = append(groups, group{op: opSingle, isSingle: true, pattern: c})
	}
	return groups
}

// matchAtom tries to match a single Pattern node at stream position pos,
// returning whether it matched and how many stream slots it consumed.
func matchAtom(p *Pattern, get streamFunc, pos int) (bool, int) {
	switch p.kind {
	case kindSequence:
		return matchGroupsInSequence(buildGroups(p.Children), get, pos)
	case kindSet:
		return matchGroupsAsAlternatives(buildGroups(p.Children), get, pos)
	case kindBase:
		switch p.base {
		case baseAny:
			_, ok := get(pos)
			return ok, boolToInt(ok)
		case baseSot, baseEot:
			_, ok := get(pos)
			return !ok, 0
		}
	case kindClass:
		t, ok := get(pos)
		return ok && t.class == p.class, boolToInt(ok && t.class == p.class)
	case kindGC:
		t, ok := get(pos)
		return ok && t.gc == p.gc, boolToInt(ok && t.gc == p.gc)
	case kindCodepoint:
		t, ok := get(pos)
		return ok && t.cp == p.cp, boolToInt(ok && t.cp == p.cp)
	case kindEastAsian:
		t, ok := get(pos)
		return ok && t.eastAsian, boolToInt(ok && t.eastAsian)
	case kindExtPict:
		t, ok := get(pos)
		return ok && t.extPict, boolToInt(ok && t.extPict)
	}
	invariantViolation("unrecognised pattern kind")
	return false, 0
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func matchGroup(g group, get streamFunc, pos int) (bool, int) {
	switch {
	case g.isSingle:
		return matchAtom(g.pattern, get, pos)
	case g.op == modNot:
		matched, _ := matchAtom(g.pattern, get, pos)
		return !matched, 1
	case g.op == modStar:
		cursor := 0
		for {
			ok, n := matchAtom(g.pattern, get, pos+cursor)
			if !ok || n == 0 {
				break
			}
			cursor += n
		}
		return true, cursor
	case g.op == modAnd:
		okL, _ := matchAtom(g.left, get, pos)
		okR, _ := matchAtom(g.right, get, pos)
		return okL && okR, 1
	case g.op == modAndNot:
		okL, _ := matchAtom(g.left, get, pos)
		okR, _ := matchAtom(g.right, get, pos)
		return okL && !okR, 1
	}
	invariantViolation("unrecognised group operator")
	return false, 0
}

func matchGroupsInSequence(groups []group, get streamFunc, pos int) (bool, int) {
	cursor := pos
	for _, g := range groups {
		ok, n := matchGroup(g, get, cursor)
		if !ok {
			return false, 0
		}
		cursor += n
	}
	return true, cursor - pos
}

func matchGroupsAsAlternatives(groups []group, get streamFunc, pos int) (bool, int) {
	for _, g := range groups {
		if ok, n := matchGroup(g, get, pos); ok {
			return true, n
		}
	}
	return false, 0
}

// matchPattern evaluates a whole Before/After Pattern (always a
// kindSequence root) at stream position 0.
func matchPattern(p *Pattern, get streamFunc) bool {
	if p == nil {
		return true
	}
	ok, _ := matchAtom(p, get, 0)
	return ok
}

// --- Entry point ----------------------------------------------------------

// isBreakAt evaluates rules in order against the text held by cursor at
// the given code-point position, firing side effects for rules that fail
// to match, and returns the verdict of the first rule that matches both
// its Before and After pattern. It returns Unknown if no rule matches.
func isBreakAt(ts *TextState, eas *eastAsianSet, rules []*Rule, position int) BreakType {
	c := borrowCursor(ts, eas)
	defer c.release()

	ts.applyOffset = false
	defer func() { ts.applyOffset = false }()

	for _, rule := range rules {
		before := matchPattern(rule.Before, c.beforeStream(ts.viewIndex(position)))
		after := before && matchPattern(rule.After, c.afterStream(ts.viewIndex(position)))
		if before && after {
			return rule.Result
		}
		if rule.SideEffect == SideEffectRemoveCombiningSequences && !ts.applyOffset {
			T().P("rule", rule.Name).Debugf("side effect fired at position %d", position)
			ts.applyOffset = true
		}
	}
	return Unknown
}
