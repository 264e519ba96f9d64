package linebreak

import (
	"errors"
	"fmt"
)

// Sentinel error kinds, per the error taxonomy: parse errors and invalid
// argument errors are returned to the caller; internal invariant failures
// panic, since they indicate a corrupted rule tree rather than bad input.
var (
	// ErrParse flags an unrecognised token or an unbalanced bracket while
	// compiling a rule string. Fatal at construction time.
	ErrParse = errors.New("linebreak: parse error")

	// ErrInvalidArgument flags a caller-supplied argument outside its
	// legal domain, such as an unknown table key passed to NewChecker.
	// IsBreakAt does not return it: a position outside [0, len(text)]
	// yields Unknown.
	ErrInvalidArgument = errors.New("linebreak: invalid argument")

	// ErrNoText names the state of a Checker before SetText is called.
	// IsBreakAt and Iterate do not return it; in that state they return
	// Unknown and nil.
	ErrNoText = errors.New("linebreak: no text set")
)

func parseErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("linebreak: "+format+": %w", append(args, ErrParse)...)
}

func invalidArgumentf(format string, args ...interface{}) error {
	return fmt.Errorf("linebreak: "+format+": %w", append(args, ErrInvalidArgument)...)
}

// invariantViolation panics to signal an internal invariant failure: an
// unknown pattern kind or modifier, or a modifier with no operand,
// encountered while matching. ParseRules checks brackets and verdicts but
// not modifier operands, so a rule it accepts (e.g. one ending in "*") can
// also reach this panic; it is treated as programmer error in the rule
// text, not ordinary bad input.
func invariantViolation(what string) {
	panic("linebreak: internal invariant violated: " + what)
}
