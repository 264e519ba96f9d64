package linebreak

import "github.com/npillmayer/linebreak/internal/ucd"

// eastAsianSet wraps the loaded East-Asian-wide table for a given table
// key, the "$EastAsian" property UAX #14 rules LB30 and LB15a/LB19a test
// against.
type eastAsianSet struct {
	table *ucd.EastAsianTable
}

func loadEastAsianSet(key string) (*eastAsianSet, error) {
	t, err := ucd.LoadEastAsianTable(key)
	if err != nil {
		return nil, err
	}
	return &eastAsianSet{table: t}, nil
}

func (s *eastAsianSet) contains(r rune) bool {
	if s == nil {
		return false
	}
	return s.table.Contains(r)
}
