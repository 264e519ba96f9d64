package linebreak

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// SideEffectKind names one of the small, closed set of side effects a rule
// may trigger when it fails to match. New kinds are added by extending
// this enum, not by registering arbitrary callbacks.
type SideEffectKind uint8

const (
	// SideEffectNone means the rule has no side effect.
	SideEffectNone SideEffectKind = iota
	// SideEffectRemoveCombiningSequences is LB9/LB10's side effect: it
	// installs the combining-sequence-collapsed view as active for the
	// remainder of the current is_break_at call.
	SideEffectRemoveCombiningSequences
)

// Rule is one row of an ordered rule list, as compiled by ParseRules.
type Rule struct {
	Name       string
	Before     *Pattern
	After      *Pattern
	Result     BreakType
	SideEffect SideEffectKind
	// Args are the side-effect arguments bound via
	// Checker.RegisterSideEffectArguments, keyed by Name.
	Args []interface{}
}

// RawRule is the input to ParseRules: a pattern string plus an optional
// side effect and name.
type RawRule struct {
	Pattern    string
	SideEffect SideEffectKind
	Name       string
}

// ParseRules compiles an ordered list of raw rules into Rule values ready
// for a Matcher. Parsing is fatal at construction: any unrecognised token
// or unbalanced bracket returns a wrapped ErrParse.
func ParseRules(raw []RawRule) ([]*Rule, error) {
	T().Debugf("compiling %d rule(s)", len(raw))
	rules := make([]*Rule, 0, len(raw))
	for _, rr := range raw {
		rule, err := parseOneRule(rr)
		if err != nil {
			T().P("rule", rr.Name).Errorf("parse failed: %v", err)
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// MustParseRules is like ParseRules but panics on error. Used by this
// module's own package-level default rule sets (rulesets.go), where a
// parse failure is an internal invariant violation, not caller error.
func MustParseRules(raw []RawRule) []*Rule {
	rules, err := ParseRules(raw)
	if err != nil {
		panic(err)
	}
	return rules
}

func parseOneRule(rr RawRule) (*Rule, error) {
	toks, err := tokenize(rr.Pattern)
	if err != nil {
		return nil, parseErrorf("rule %q: %v", rr.Name, err)
	}

	before := newSequence()
	after := newSequence()
	current := before
	haveVerdict := false
	var result BreakType

	containers := arraystack.New()
	containers.Push(current)

	appendChild := func(p *Pattern) error {
		top, ok := containers.Peek()
		if !ok {
			return parseErrorf("rule %q: unbalanced brackets", rr.Name)
		}
		c := top.(*Pattern)
		c.Children = append(c.Children, p)
		return nil
	}

	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		switch tok.kind {
		case tokVerdict:
			if haveVerdict {
				return nil, parseErrorf("rule %q: more than one verdict symbol", rr.Name)
			}
			if containers.Size() != 1 {
				return nil, parseErrorf("rule %q: unbalanced brackets before verdict", rr.Name)
			}
			haveVerdict = true
			result = tok.verdict
			current = after
			containers.Clear()
			containers.Push(current)
		case tokLParen:
			set := newSet()
			if err := appendChild(set); err != nil {
				return nil, err
			}
			containers.Push(set)
		case tokLBracket:
			seq := newSequence()
			if err := appendChild(seq); err != nil {
				return nil, err
			}
			containers.Push(seq)
		case tokRParen:
			top, ok := containers.Peek()
			if !ok || top.(*Pattern).kind != kindSet {
				return nil, parseErrorf("rule %q: unmatched ')'", rr.Name)
			}
			containers.Pop()
		case tokRBracket:
			top, ok := containers.Peek()
			if !ok || top.(*Pattern).kind != kindSequence {
				return nil, parseErrorf("rule %q: unmatched ']'", rr.Name)
			}
			containers.Pop()
		case tokPipe:
			// the default join inside a set; no tree node required
		case tokBase:
			if err := appendChild(newBase(tok.base)); err != nil {
				return nil, err
			}
		case tokClass:
			if err := appendChild(newClass(tok.class)); err != nil {
				return nil, err
			}
		case tokGC:
			if err := appendChild(newGC(tok.gc)); err != nil {
				return nil, err
			}
		case tokCodepoint:
			if err := appendChild(newCodepoint(tok.cp)); err != nil {
				return nil, err
			}
		case tokEastAsian:
			if err := appendChild(newEastAsian()); err != nil {
				return nil, err
			}
		case tokExtPict:
			if err := appendChild(newExtPict()); err != nil {
				return nil, err
			}
		case tokModifier:
			if err := appendChild(newModifier(tok.modifier)); err != nil {
				return nil, err
			}
		default:
			return nil, parseErrorf("rule %q: unrecognised token %q", rr.Name, tok.raw)
		}
	}

	if containers.Size() != 1 {
		return nil, parseErrorf("rule %q: unbalanced brackets at end of rule", rr.Name)
	}
	if !haveVerdict {
		return nil, parseErrorf("rule %q: missing verdict symbol", rr.Name)
	}
	if len(before.Children) == 0 || len(after.Children) == 0 {
		return nil, parseErrorf("rule %q: empty before- or after-side", rr.Name)
	}

	before = flatten(before)
	after = flatten(after)
	before = reverseBefore(before)

	return &Rule{
		Name:       rr.Name,
		Before:     before,
		After:      after,
		Result:     result,
		SideEffect: rr.SideEffect,
	}, nil
}

// --- Tokenizer ---------------------------------------------------------

type tokenKind uint8

const (
	tokVerdict tokenKind = iota
	tokBase
	tokClass
	tokGC
	tokModifier
	tokLParen
	tokRParen
	tokLBracket
	tokRBracket
	tokPipe
	tokCodepoint
	tokEastAsian
	tokExtPict
)

type token struct {
	kind     tokenKind
	raw      string
	verdict  BreakType
	base     baseKind
	class    LineBreakClass
	gc       GeneralCategory
	modifier modifierKind
	cp       rune
}

func tokenize(s string) ([]token, error) {
	fields := strings.Fields(s)
	toks := make([]token, 0, len(fields))
	for _, f := range fields {
		for len(f) > 0 {
			tok, rest, err := nextToken(f)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			f = rest
		}
	}
	return toks, nil
}

// nextToken recognises one token at the front of f and returns the
// remaining, unconsumed text (brackets may abut an identifier with no
// intervening whitespace, e.g. "(CL|CP)*SP").
func nextToken(f string) (token, string, error) {
	if strings.HasPrefix(f, "×") {
		return token{kind: tokVerdict, verdict: Forbidden, raw: "×"}, f[len("×"):], nil
	}
	if strings.HasPrefix(f, "÷") {
		return token{kind: tokVerdict, verdict: Allowed, raw: "÷"}, f[len("÷"):], nil
	}
	switch f[0] {
	case '!':
		return token{kind: tokVerdict, verdict: Mandatory, raw: "!"}, f[1:], nil
	case '^':
		return token{kind: tokModifier, modifier: modNot, raw: "^"}, f[1:], nil
	case '&':
		return token{kind: tokModifier, modifier: modAnd, raw: "&"}, f[1:], nil
	case '-':
		return token{kind: tokModifier, modifier: modAndNot, raw: "-"}, f[1:], nil
	case '*':
		return token{kind: tokModifier, modifier: modStar, raw: "*"}, f[1:], nil
	case '(':
		return token{kind: tokLParen, raw: "("}, f[1:], nil
	case ')':
		return token{kind: tokRParen, raw: ")"}, f[1:], nil
	case '[':
		return token{kind: tokLBracket, raw: "["}, f[1:], nil
	case ']':
		return token{kind: tokRBracket, raw: "]"}, f[1:], nil
	case '|':
		return token{kind: tokPipe, raw: "|"}, f[1:], nil
	}

	if strings.HasPrefix(f, `\u`) {
		return tokenizeCodepoint(f)
	}
	if strings.HasPrefix(f, "gc(") {
		return tokenizeGC(f)
	}
	if strings.HasPrefix(f, "any") && isWordBoundary(f, len("any")) {
		return token{kind: tokBase, base: baseAny, raw: "any"}, f[len("any"):], nil
	}
	if strings.HasPrefix(f, "sot") && isWordBoundary(f, len("sot")) {
		return token{kind: tokBase, base: baseSot, raw: "sot"}, f[len("sot"):], nil
	}
	if strings.HasPrefix(f, "eot") && isWordBoundary(f, len("eot")) {
		return token{kind: tokBase, base: baseEot, raw: "eot"}, f[len("eot"):], nil
	}
	if strings.HasPrefix(f, "eastasian") && isWordBoundary(f, len("eastasian")) {
		return token{kind: tokEastAsian, raw: "eastasian"}, f[len("eastasian"):], nil
	}
	if strings.HasPrefix(f, "extpict") && isWordBoundary(f, len("extpict")) {
		return token{kind: tokExtPict, raw: "extpict"}, f[len("extpict"):], nil
	}

	return tokenizeClass(f)
}

func isWordBoundary(f string, n int) bool {
	if n >= len(f) {
		return true
	}
	r := rune(f[n])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func tokenizeCodepoint(f string) (token, string, error) {
	rest := f[len(`\u`):]
	n := 0
	for n < len(rest) && n < 6 && isHexDigit(rest[n]) {
		n++
	}
	if n < 4 {
		return token{}, "", parseErrorf("invalid \\u escape in %q", f)
	}
	v, err := strconv.ParseInt(rest[:n], 16, 32)
	if err != nil {
		return token{}, "", parseErrorf("invalid \\u escape in %q: %v", f, err)
	}
	return token{kind: tokCodepoint, cp: rune(v), raw: f[:len(`\u`)+n]}, rest[n:], nil
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func tokenizeGC(f string) (token, string, error) {
	end := strings.IndexByte(f, ')')
	if end < 0 || end <= len("gc(") {
		return token{}, "", parseErrorf("unterminated gc(...) in %q", f)
	}
	tag := f[len("gc("):end]
	gc, ok := GCFromString(tag)
	if !ok {
		return token{}, "", parseErrorf("unknown General_Category %q", tag)
	}
	return token{kind: tokGC, gc: gc, raw: f[:end+1]}, f[end+1:], nil
}

func tokenizeClass(f string) (token, string, error) {
	n := 0
	for n < len(f) && n < 3 && isClassRune(rune(f[n])) {
		n++
	}
	if n < 2 {
		return token{}, "", parseErrorf("unrecognised token %q", f)
	}
	name := f[:n]
	class, ok := ClassFromString(name)
	if !ok {
		if n == 3 {
			name = f[:2]
			class, ok = ClassFromString(name)
			n = 2
		}
		if !ok {
			return token{}, "", parseErrorf("unrecognised token %q", f)
		}
	}
	return token{kind: tokClass, class: class, raw: name}, f[n:], nil
}

func isClassRune(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
