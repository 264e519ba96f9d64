package ucd

// This file stands in for the real Unicode 17.0 LineBreak.txt /
// DerivedGeneralCategory.txt compaction that internal/gen performs against
// the live UCD: a curated, deliberately partial table covering a few
// representative code points or ranges per class, enough to drive the matcher and
// its tests deterministically, not a full UCD mirror.
const classTableV17JSON = `{
  "AL": {
    "Lu": [[65, 91]],
    "Ll": [[97, 123]],
    "Po": [[35], [38], [42], [64], [92]],
    "Sm": [[43], [60, 63], [124], [126]],
    "Sk": [[94], [96]],
    "Pc": [[95]],
    "Cn": [[170]]
  },
  "HL": {
    "Lo": [[1488, 1515]]
  },
  "NU": {
    "Nd": [[48, 58], [3664, 3674]]
  },
  "SP": {
    "Zs": [[32]]
  },
  "BK": {
    "Cc": [[11], [12]],
    "Zl": [[8232]],
    "Zp": [[8233]]
  },
  "CR": {
    "Cc": [[13]]
  },
  "LF": {
    "Cc": [[10]]
  },
  "NL": {
    "Cc": [[133]]
  },
  "ZW": {
    "Cf": [[8203]]
  },
  "ZWJ": {
    "Cf": [[8205]]
  },
  "CM": {
    "Mn": [[768, 880], [3633]]
  },
  "GL": {
    "Cf": [[160], [8199], [8239]]
  },
  "WJ": {
    "Cf": [[8288]]
  },
  "CL": {
    "Pe": [[41], [93]]
  },
  "CP": {
    "Pe": [[125]]
  },
  "EX": {
    "Po": [[33], [63]]
  },
  "SY": {
    "Po": [[47]]
  },
  "OP": {
    "Ps": [[40], [91], [123]]
  },
  "QU": {
    "Po": [[34], [39]],
    "Pi": [[171], [8216], [8220]],
    "Pf": [[187], [8217], [8221]]
  },
  "IS": {
    "Po": [[44], [46], [58], [59]]
  },
  "NS": {
    "Po": [[12289]]
  },
  "BA": {
    "Pd": [[45]]
  },
  "BB": {
    "Po": [[183]]
  },
  "HY": {
    "Pd": [[1418]]
  },
  "HH": {
    "Pd": [[1470]]
  },
  "CB": {
    "So": [[65532]]
  },
  "IN": {
    "Po": [[8228]]
  },
  "PR": {
    "Sc": [[36], [163]]
  },
  "PO": {
    "Po": [[37]]
  },
  "ID": {
    "Lo": [[19968, 40960]]
  },
  "EB": {
    "So": [[128102, 128106]]
  },
  "EM": {
    "Sk": [[127995, 128000]]
  },
  "JL": {
    "Lo": [[4352, 4441]]
  },
  "JV": {
    "Lo": [[4448, 4520]]
  },
  "JT": {
    "Lo": [[4520, 4608]]
  },
  "H2": {
    "Lo": [[44032, 44060]]
  },
  "H3": {
    "Lo": [[44060, 44092]]
  },
  "RI": {
    "So": [[127462, 127488]]
  },
  "AK": {
    "Lo": [[3585, 3631]]
  },
  "AS": {
    "Lo": [[6016, 6110]]
  },
  "AP": {
    "Lo": [[3632]]
  },
  "VF": {
    "Mn": [[3634]]
  },
  "VI": {
    "Mn": [[3661]]
  },
  "AI": {
    "Cn": [[166]]
  },
  "SG": {
    "Cs": [[55296, 57344]]
  },
  "XX": {
    "Co": [[57344, 63744]]
  },
  "SA": {
    "Mn": [[3636]]
  },
  "CJ": {
    "Lo": [[12449, 12539]]
  },
  "B2": {
    "Pd": [[8212]]
  }
}`

const eastAsianTableV17JSON = `[
  [19968, 40960],
  [44032, 55204],
  [12353, 12439],
  [65280, 65520]
]`

func embeddedClassSource(key string) ([]byte, error) {
	switch key {
	case "v17", "":
		return []byte(classTableV17JSON), nil
	case "v16":
		return []byte(classTableV16JSON), nil
	}
	return nil, unknownTableKeyError(key)
}

func embeddedEastAsianSource(key string) ([]byte, error) {
	switch key {
	case "v17", "v16", "":
		return []byte(eastAsianTableV17JSON), nil
	}
	return nil, unknownTableKeyError(key)
}
