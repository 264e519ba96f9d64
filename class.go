package linebreak

import "strings"

// LineBreakClass is a UAX #14 Line_Break class abbreviation. The zero value
// is not a valid class; unresolved code points are reported as XX.
type LineBreakClass uint8

// The closed set of UAX #14 class abbreviations. HH exists only under the
// v17 rule set; under v16 its code points carry class BA (see the v16
// class table in internal/ucd).
const (
	_ LineBreakClass = iota
	AL
	HL
	NU
	SP
	BK
	CR
	LF
	NL
	ZW
	ZWJ
	CM
	GL
	WJ
	CL
	CP
	EX
	SY
	OP
	QU
	IS
	NS
	BA
	BB
	HY
	HH
	CB
	IN
	PR
	PO
	ID
	EB
	EM
	JL
	JV
	JT
	H2
	H3
	RI
	AK
	AS
	AP
	VF
	VI
	AI
	SG
	XX
	SA
	CJ
	B2

	numLineBreakClasses
)

// classNames is indexed by LineBreakClass; classNames[0] is the unused zero
// entry. Kept as a flat array next to the constant block.
var classNames = [numLineBreakClasses]string{
	"", "AL", "HL", "NU", "SP", "BK", "CR", "LF", "NL", "ZW", "ZWJ", "CM",
	"GL", "WJ", "CL", "CP", "EX", "SY", "OP", "QU", "IS", "NS", "BA", "BB",
	"HY", "HH", "CB", "IN", "PR", "PO", "ID", "EB", "EM", "JL", "JV", "JT",
	"H2", "H3", "RI", "AK", "AS", "AP", "VF", "VI", "AI", "SG", "XX", "SA",
	"CJ", "B2",
}

func (c LineBreakClass) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "LineBreakClass(?)"
}

// ClassFromString resolves a class abbreviation to its LineBreakClass. The
// second return value is false for unrecognised abbreviations.
func ClassFromString(s string) (LineBreakClass, bool) {
	for i, name := range classNames {
		if i != 0 && name == s {
			return LineBreakClass(i), true
		}
	}
	return 0, false
}

// GeneralCategory is a two-letter Unicode General_Category abbreviation.
// Only a handful of categories are ever consulted by UAX #14 rules (Pi, Pf,
// Mn, Mc, Cn), but the type carries the full closed set for data-table
// fidelity.
type GeneralCategory uint8

const (
	GCUnknown GeneralCategory = iota
	Lu
	Ll
	Lt
	Lm
	Lo
	Mn
	Mc
	Me
	Nd
	Nl
	No
	Pc
	Pd
	Ps
	Pe
	Pi
	Pf
	Po
	Sm
	Sc
	Sk
	So
	Zs
	Zl
	Zp
	Cc
	Cf
	Cs
	Co
	Cn

	numGeneralCategories
)

var gcNames = [numGeneralCategories]string{
	"", "Lu", "Ll", "Lt", "Lm", "Lo", "Mn", "Mc", "Me", "Nd", "Nl", "No",
	"Pc", "Pd", "Ps", "Pe", "Pi", "Pf", "Po", "Sm", "Sc", "Sk", "So", "Zs",
	"Zl", "Zp", "Cc", "Cf", "Cs", "Co", "Cn",
}

func (g GeneralCategory) String() string {
	if int(g) < len(gcNames) {
		return gcNames[g]
	}
	return "GeneralCategory(?)"
}

// GCFromString resolves a General_Category abbreviation.
func GCFromString(s string) (GeneralCategory, bool) {
	s = strings.TrimSpace(s)
	for i, name := range gcNames {
		if i != 0 && name == s {
			return GeneralCategory(i), true
		}
	}
	return 0, false
}

// Criterion resolves a raw (Line_Break class, General_Category) pair read
// from the data tables to the class UAX #14 rules should actually see. It
// replaces ResolveDefault when supplied to NewChecker via WithCriterion.
type Criterion func(raw LineBreakClass, gc GeneralCategory) LineBreakClass

// ResolveDefault implements the UAX #14 §6.1 default resolution:
//
//	AI, SG, XX -> AL
//	SA         -> CM if General_Category is Mn or Mc, else AL
//	CJ         -> NS
//	all others pass through unchanged
func ResolveDefault(raw LineBreakClass, gc GeneralCategory) LineBreakClass {
	switch raw {
	case AI, SG, XX:
		return AL
	case SA:
		if gc == Mn || gc == Mc {
			return CM
		}
		return AL
	case CJ:
		return NS
	default:
		return raw
	}
}
