package linebreak

// Segment is one slice of text between two break opportunities (Allowed or
// Mandatory), as produced by Checker.Iterate.
type Segment struct {
	Index     int // code-unit offset of the break ending this segment
	Text      string
	BreakType BreakType // verdict of the break ending this segment
}

// Iterate walks the text set via SetText and returns one Segment per
// run of code points between two break opportunities, skipping the
// Unknown/Forbidden positions in between. The final segment's BreakType is
// Mandatory if the text does not already end on one, matching LB3.
func (c *Checker) Iterate() []Segment {
	if c.ts == nil {
		return nil
	}
	runes := c.ts.codePoints
	n := len(runes)
	totalUnits := c.ts.offsetsSurrogates[n]

	var segments []Segment
	segStart := 0 // code-point index
	for pos := 1; pos <= totalUnits; pos++ {
		if c.ts.isSurrogateInterior(pos) {
			continue
		}
		cpIndex := c.ts.codePointIndexForUnit(pos)
		bt := isBreakAt(c.ts, c.eastAsian, c.rules, cpIndex)
		if !bt.Is(Mandatory | Allowed) {
			continue
		}
		if cpIndex == segStart {
			continue
		}
		segments = append(segments, Segment{
			Index:     c.ts.offsetsSurrogates[cpIndex],
			Text:      string(runes[segStart:cpIndex]),
			BreakType: bt,
		})
		segStart = cpIndex
	}
	if segStart < n {
		segments = append(segments, Segment{
			Index:     c.ts.offsetsSurrogates[n],
			Text:      string(runes[segStart:n]),
			BreakType: Mandatory,
		})
	}
	return segments
}
