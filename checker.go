package linebreak

import "github.com/npillmayer/linebreak/internal/ucd"

// Checker holds the configuration (rule set, class tables, criterion) and
// current text a client checks line-breaking opportunities against. A
// Checker is configured once via NewChecker and then reused across many
// calls to SetText.
type Checker struct {
	classTableKey     string
	eastAsianTableKey string
	criterion         Criterion
	rules             []*Rule
	sideEffectArgs    map[string][]interface{}

	classTable *ucd.ClassTable
	eastAsian  *eastAsianSet
	ts         *TextState
}

// Option configures a Checker at construction time.
type Option func(*Checker)

// WithRuleSet selects which rule table this Checker evaluates. Both rule
// sets currently compile to the same Rule list (see DefaultRules); the
// option exists so callers may later be pointed at a rule set that
// genuinely diverges, without changing call sites.
func WithRuleSet(rules []*Rule) Option {
	return func(c *Checker) { c.rules = rules }
}

// WithCriterion overrides the default class-resolution criterion
// (ResolveDefault) applied to every code point's raw (class, GC) pair.
func WithCriterion(crit Criterion) Option {
	return func(c *Checker) { c.criterion = crit }
}

// WithClassTableKey selects which internal/ucd class table key ("v16" or
// "v17") a Checker loads. Defaults to "v17".
func WithClassTableKey(key string) Option {
	return func(c *Checker) { c.classTableKey = key }
}

// WithEastAsianTableKey selects which East-Asian-wide table key a Checker
// loads. Defaults to matching the class table key.
func WithEastAsianTableKey(key string) Option {
	return func(c *Checker) { c.eastAsianTableKey = key }
}

// NewChecker constructs a Checker from the given options, loading its
// class and East-Asian-wide tables eagerly. A bad table key is a
// configuration error surfaced immediately rather than on first use.
func NewChecker(opts ...Option) (*Checker, error) {
	c := &Checker{
		classTableKey: "v17",
		criterion:     ResolveDefault,
		rules:         DefaultRules(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.eastAsianTableKey == "" {
		c.eastAsianTableKey = c.classTableKey
	}

	table, err := ucd.LoadClassTable(c.classTableKey)
	if err != nil {
		T().P("table", c.classTableKey).Errorf("class table load failed: %v", err)
		return nil, invalidArgumentf("loading class table %q: %v", c.classTableKey, err)
	}
	eas, err := loadEastAsianSet(c.eastAsianTableKey)
	if err != nil {
		T().P("table", c.eastAsianTableKey).Errorf("east-asian table load failed: %v", err)
		return nil, invalidArgumentf("loading east-asian table %q: %v", c.eastAsianTableKey, err)
	}
	T().Debugf("checker ready: classes=%s eastasian=%s rules=%d", c.classTableKey, c.eastAsianTableKey, len(c.rules))
	c.classTable = table
	c.eastAsian = eas
	return c, nil
}

// SetText prepares text for querying, resolving every code point's class
// and building the combining-sequence view once up front.
func (c *Checker) SetText(text string) {
	c.ts = newTextState(text, c.classTable, c.criterion)
}

// Text returns the text last passed to SetText.
func (c *Checker) Text() string {
	if c.ts == nil {
		return ""
	}
	return c.ts.text
}

// CodePoints returns the decoded code points of the text last passed to
// SetText.
func (c *Checker) CodePoints() []rune {
	if c.ts == nil {
		return nil
	}
	return c.ts.codePoints
}

// RegisterSideEffectArguments binds extra arguments to named rules (looked
// up by Rule.Name), for side effects that need caller-supplied parameters.
// The default rule set defines no such parameterised side effects; this
// exists for callers supplying their own rule sets via WithRuleSet.
func (c *Checker) RegisterSideEffectArguments(args map[string][]interface{}) {
	c.sideEffectArgs = args
	for _, r := range c.rules {
		if a, ok := args[r.Name]; ok {
			r.Args = a
		}
	}
}

// IsBreakAt evaluates the rule list at the code-point position. position
// counts UTF-16 code units; positions that fall inside a surrogate pair
// always return Forbidden.
func (c *Checker) IsBreakAt(position int) BreakType {
	if c.ts == nil {
		return Unknown
	}
	totalUnits := c.ts.offsetsSurrogates[len(c.ts.offsetsSurrogates)-1]
	if position < 0 || position > totalUnits {
		return Unknown
	}
	if c.ts.isSurrogateInterior(position) {
		return Forbidden
	}
	cpIndex := c.ts.codePointIndexForUnit(position)
	return isBreakAt(c.ts, c.eastAsian, c.rules, cpIndex)
}
