// Package ucd loads the Unicode data tables UAX #14 classification depends
// on: the Line_Break class / General_Category table, and the East-Asian-wide
// code-point set. Both are read from a compact, range-compressed JSON
// format (see ClassTable and EastAsianTable) rather than the raw UCD text
// files -- turning raw UCD files into that compact format is the job of
// the offline tool in internal/gen, a collaborator this package does not
// implement itself.
//
// Tables are memoised by source key: the first LoadClassTable("v17")
// parses the embedded JSON and every subsequent call returns the same
// *ClassTable, initialized exactly once per key.
package ucd

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// Range is a half-open code-point range [Lo, Hi). A single code point is
// represented with Hi == Lo+1.
type Range struct {
	Lo rune
	Hi rune
}

func (r Range) contains(cp rune) bool { return cp >= r.Lo && cp < r.Hi }

// ClassTable maps code points to (Line_Break class, General_Category)
// pairs. The zero value is an empty table in which every lookup misses
// (see Lookup for how a miss is treated).
type ClassTable struct {
	// byClass[class][gc] holds the ranges tagged with that class/GC pair,
	// sorted by Lo for binary search.
	byClass map[string]map[string][]Range
}

// Lookup returns the Line_Break class and General_Category abbreviations
// for cp. ok is false if cp is not covered by any range, in which case
// callers should treat the code point as class XX, General_Category Cn --
// a *data error* per the error taxonomy, never fatal.
func (t *ClassTable) Lookup(cp rune) (class, gc string, ok bool) {
	if t == nil {
		return "", "", false
	}
	for cls, byGC := range t.byClass {
		for g, ranges := range byGC {
			if rangeSetContains(ranges, cp) {
				return cls, g, true
			}
		}
	}
	return "", "", false
}

func rangeSetContains(ranges []Range, cp rune) bool {
	i := sort.Search(len(ranges), func(i int) bool { return ranges[i].Hi > cp })
	return i < len(ranges) && ranges[i].contains(cp)
}

// EastAsianTable is the set of code points whose East_Asian_Width is
// Fullwidth, Wide, or Halfwidth.
type EastAsianTable struct {
	ranges []Range
}

// Contains reports whether cp is East-Asian-wide.
func (t *EastAsianTable) Contains(cp rune) bool {
	if t == nil {
		return false
	}
	return rangeSetContains(t.ranges, cp)
}

// compactClassFile is the compact class-table JSON shape: class ->
// General_Category -> list of ranges, each either [start] or
// [start, stop).
type compactClassFile map[string]map[string][][]int64

// compactEastAsianFile is a flat list of [start, stop) ranges.
type compactEastAsianFile [][]int64

func parseCompactClass(data []byte) (*ClassTable, error) {
	var file compactClassFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("ucd: decoding class table: %w", err)
	}
	t := &ClassTable{byClass: make(map[string]map[string][]Range)}
	for class, byGC := range file {
		m := make(map[string][]Range, len(byGC))
		for gc, rawRanges := range byGC {
			ranges := make([]Range, 0, len(rawRanges))
			for _, rr := range rawRanges {
				ranges = append(ranges, toRange(rr))
			}
			sort.Slice(ranges, func(i, j int) bool { return ranges[i].Lo < ranges[j].Lo })
			m[gc] = ranges
		}
		t.byClass[class] = m
	}
	return t, nil
}

func parseCompactEastAsian(data []byte) (*EastAsianTable, error) {
	var file compactEastAsianFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("ucd: decoding east-asian table: %w", err)
	}
	ranges := make([]Range, 0, len(file))
	for _, rr := range file {
		ranges = append(ranges, toRange(rr))
	}
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].Lo < ranges[j].Lo })
	return &EastAsianTable{ranges: ranges}, nil
}

func toRange(rr []int64) Range {
	if len(rr) == 1 {
		return Range{Lo: rune(rr[0]), Hi: rune(rr[0]) + 1}
	}
	return Range{Lo: rune(rr[0]), Hi: rune(rr[1])}
}

// --- Memoised, keyed cache ----------------------------------------------

var (
	classMu    sync.Mutex
	classCache = map[string]*ClassTable{}

	eastAsianMu    sync.Mutex
	eastAsianCache = map[string]*EastAsianTable{}
)

// Source supplies the raw compact-JSON bytes for a table key. Production
// keys ("v16", "v17") are served from the embedded data in data_v16.go /
// data_v17.go; tests may register additional in-memory sources.
type Source func(key string) ([]byte, error)

var classSource Source = embeddedClassSource
var eastAsianSource Source = embeddedEastAsianSource

// LoadClassTable loads (or returns the memoised) ClassTable for key.
func LoadClassTable(key string) (*ClassTable, error) {
	classMu.Lock()
	defer classMu.Unlock()
	if t, ok := classCache[key]; ok {
		return t, nil
	}
	data, err := classSource(key)
	if err != nil {
		return nil, err
	}
	t, err := parseCompactClass(data)
	if err != nil {
		return nil, err
	}
	classCache[key] = t
	return t, nil
}

// LoadEastAsianTable loads (or returns the memoised) EastAsianTable for key.
func LoadEastAsianTable(key string) (*EastAsianTable, error) {
	eastAsianMu.Lock()
	defer eastAsianMu.Unlock()
	if t, ok := eastAsianCache[key]; ok {
		return t, nil
	}
	data, err := eastAsianSource(key)
	if err != nil {
		return nil, err
	}
	t, err := parseCompactEastAsian(data)
	if err != nil {
		return nil, err
	}
	eastAsianCache[key] = t
	return t, nil
}
