package ucd

import "fmt"

// classTableV16JSON is identical to the v17 table except that HH (added in
// Unicode 17.0) does not exist: its one representative code point carries
// class BA instead.
const classTableV16JSON = `{
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
    "Pd": [[45], [1470]]
  },
  "BB": {
    "Po": [[183]]
  },
  "HY": {
    "Pd": [[1418]]
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

func unknownTableKeyError(key string) error {
	return fmt.Errorf("ucd: unknown table key %q", key)
}
