package linebreak

// extPictRanges is a curated stand-in for the Unicode Extended_Pictographic
// property, in the same spirit as internal/ucd's curated class tables: a
// handful of representative emoji blocks, not a full property mirror.
var extPictRanges = []struct{ lo, hi rune }{
	{0x2600, 0x27C0},    // misc symbols / dingbats
	{0x1F300, 0x1F5FF},  // misc symbols and pictographs
	{0x1F600, 0x1F64F},  // emoticons
	{0x1F680, 0x1F6FF},  // transport and map symbols
	{0x1F900, 0x1F9FF},  // supplemental symbols and pictographs
}

func isExtendedPictographic(r rune) bool {
	for _, rg := range extPictRanges {
		if r >= rg.lo && r < rg.hi {
			return true
		}
	}
	return false
}
