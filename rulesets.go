package linebreak

import "sync"

// defaultRawRules is the ordered rule table both the v16 and v17 rule sets
// compile from. The two rule sets differ only in the class tables they
// pair this list with (internal/ucd's v16 table resolves HH's code points
// to BA instead), not in rule text.
var defaultRawRules = []RawRule{
	{Name: "LB2", Pattern: "sot × any"},
	{Name: "LB3", Pattern: "any ! eot"},
	{Name: "LB4", Pattern: "BK ! any"},
	{Name: "LB5a", Pattern: "CR × LF"},
	{Name: "LB5b", Pattern: "CR ! any"},
	{Name: "LB5c", Pattern: "LF ! any"},
	{Name: "LB5d", Pattern: "NL ! any"},
	{Name: "LB6", Pattern: "any × (BK|CR|LF|NL)"},
	{Name: "LB7a", Pattern: "any × SP"},
	{Name: "LB7b", Pattern: "any × ZW"},
	{Name: "LB8", Pattern: "ZW SP* ÷ any"},
	{Name: "LB8a", Pattern: "ZWJ × any"},
	{
		Name:       "LB9",
		Pattern:    "any × (CM|ZWJ)",
		SideEffect: SideEffectRemoveCombiningSequences,
	},
	{Name: "LB11a", Pattern: "any × WJ"},
	{Name: "LB11b", Pattern: "WJ × any"},
	{Name: "LB12", Pattern: "GL × any"},
	{Name: "LB12a", Pattern: "^(SP|BA|HY) GL × any"},
	{Name: "LB13", Pattern: "any × (CL|CP|EX|SY)"},
	{Name: "LB14", Pattern: "OP SP* × any"},
	{Name: "LB15", Pattern: "QU SP* × OP"},
	{Name: "LB15c", Pattern: "SP ÷ IS NU"},
	{Name: "LB15d", Pattern: "any × IS"},
	{Name: "LB16", Pattern: "(CL|CP) SP* × NS"},
	{Name: "LB17", Pattern: "B2 SP* × B2"},
	{Name: "LB18", Pattern: "SP ÷ any"},
	{Name: "LB19a", Pattern: "any × QU"},
	{Name: "LB19b", Pattern: "QU × any"},
	{Name: "LB20a", Pattern: "any ÷ CB"},
	{Name: "LB20b", Pattern: "CB ÷ any"},
	{Name: "LB21a", Pattern: "any × (BA|HY|NS)"},
	{Name: "LB21b", Pattern: "BB × any"},
	{Name: "LB21a-hl", Pattern: "HL (HY|BA) × any"},
	{Name: "LB21b-sy", Pattern: "SY × HL"},
	{Name: "LB22", Pattern: "any × IN"},
	{Name: "LB23a", Pattern: "(AL|HL) × NU"},
	{Name: "LB23b", Pattern: "NU × (AL|HL)"},
	{Name: "LB23a-pic", Pattern: "PR × (ID|EB|EM)"},
	{Name: "LB23b-pic", Pattern: "(ID|EB|EM) × PO"},
	{Name: "LB24a", Pattern: "(PR|PO) × (AL|HL)"},
	{Name: "LB24b", Pattern: "(AL|HL) × (PR|PO)"},
	{Name: "LB25a", Pattern: "(PR|PO) × NU"},
	{Name: "LB25b", Pattern: "NU × (PO|PR)"},
	{Name: "LB25c", Pattern: "NU (SY|IS)* × NU"},
	{Name: "LB26a", Pattern: "JL × (JL|JV|H2|H3)"},
	{Name: "LB26b", Pattern: "(JV|H2) × (JV|JT)"},
	{Name: "LB26c", Pattern: "(JT|H3) × JT"},
	{Name: "LB27a", Pattern: "(JL|JV|JT|H2|H3) × PO"},
	{Name: "LB27b", Pattern: "PR × (JL|JV|JT|H2|H3)"},
	{Name: "LB28", Pattern: "(AL|HL) × (AL|HL)"},
	{Name: "LB29", Pattern: "IS × (AL|HL)"},
	{Name: "LB30a", Pattern: "(AL|HL|NU) × (OP-eastasian)"},
	{Name: "LB30b", Pattern: "(CP-eastasian) × (AL|HL|NU)"},
	{Name: "LB30a-ri", Pattern: "^RI RI × RI"},
	{Name: "LB30b-eb", Pattern: "EB × EM"},
	{Name: "LB31", Pattern: "any ÷ any"},
}

var (
	defaultRulesOnce sync.Once
	defaultRules     []*Rule
)

// DefaultRules returns the shared rule list both rule-set versions compile
// once and reuse for the lifetime of the process.
func DefaultRules() []*Rule {
	defaultRulesOnce.Do(func() {
		defaultRules = MustParseRules(defaultRawRules)
	})
	return defaultRules
}
