package linebreak

import "github.com/npillmayer/linebreak/internal/ucd"

// combiningAbsorbers is the set of classes after which a CM or ZWJ is
// absorbed into a synthesised AL entry rather than into the preceding
// code point, per LB9/LB10: a combining mark or ZWJ that follows SP, BK,
// CR, LF, NL or ZW, or begins the text, is treated as AL; one that follows
// any other class joins the preceding entry.
var combiningAbsorbers = map[LineBreakClass]bool{
	SP: true, BK: true, CR: true, LF: true, NL: true, ZW: true,
}

// TextState holds a piece of text decoded into UAX #14 classes, alongside
// the two views a Matcher alternates between: the original class sequence,
// and the LB9/LB10 combining-sequence-collapsed view substituted in for the
// duration of a single is_break_at call once a rule's side effect fires.
type TextState struct {
	text       string
	codePoints []rune
	classes    []LineBreakClass
	gcs        []GeneralCategory

	// offsetsSurrogates[i] is the UTF-16 code-unit index at which
	// codePoints[i] begins; offsetsSurrogates[len(codePoints)] is the
	// total code-unit length of the text.
	offsetsSurrogates []int

	// codePointsWoCS/classesWoCS/gcsWoCS are the combining-sequence-
	// collapsed view: every maximal run of CM/ZWJ following a
	// non-absorbing class is folded into the single code point/class/GC
	// that starts the run.
	codePointsWoCS []rune
	classesWoCS    []LineBreakClass
	gcsWoCS        []GeneralCategory

	// owner[i] is the index into the WoCS view that absorbed
	// codePoints[i]; it lets the matcher translate an original-view
	// code-point index into the collapsed view once the LB9/LB10 side
	// effect is active.
	owner []int

	// applyOffset selects which view is active. It is flipped to true
	// only transiently, for the remainder of a single is_break_at call,
	// by the SideEffectRemoveCombiningSequences side effect, and is
	// always restored to false before the call returns.
	applyOffset bool
}

// newTextState decodes text into code points, resolves each to a
// (LineBreakClass, GeneralCategory) pair via table and crit, and builds the
// combining-sequence view eagerly so every is_break_at call reuses it.
func newTextState(text string, table *ucd.ClassTable, crit Criterion) *TextState {
	if crit == nil {
		crit = ResolveDefault
	}
	runes := []rune(text)
	n := len(runes)

	ts := &TextState{
		text:              text,
		codePoints:        runes,
		classes:           make([]LineBreakClass, n),
		gcs:               make([]GeneralCategory, n),
		offsetsSurrogates: make([]int, n+1),
		owner:             make([]int, n),
	}

	unit := 0
	for i, r := range runes {
		ts.offsetsSurrogates[i] = unit
		if r > 0xFFFF {
			unit += 2
		} else {
			unit++
		}
		class, gc := resolveCodePoint(r, table, crit)
		ts.classes[i] = class
		ts.gcs[i] = gc
	}
	ts.offsetsSurrogates[n] = unit

	ts.buildCombiningSequenceView()
	return ts
}

// resolveCodePoint maps a code point to its final LineBreakClass/GeneralCategory
// pair, applying crit to the raw table lookup. Code points the table does
// not cover resolve to (XX, Cn) and are corrected by crit like any other
// entry -- a data error, never fatal.
func resolveCodePoint(r rune, table *ucd.ClassTable, crit Criterion) (LineBreakClass, GeneralCategory) {
	rawClass, rawGC := XX, Cn
	if table != nil {
		if classStr, gcStr, ok := table.Lookup(r); ok {
			if c, ok2 := ClassFromString(classStr); ok2 {
				rawClass = c
			}
			if g, ok2 := GCFromString(gcStr); ok2 {
				rawGC = g
			}
		}
	}
	return crit(rawClass, rawGC), rawGC
}

func (ts *TextState) buildCombiningSequenceView() {
	n := len(ts.classes)
	ts.codePointsWoCS = make([]rune, 0, n)
	ts.classesWoCS = make([]LineBreakClass, 0, n)
	ts.gcsWoCS = make([]GeneralCategory, 0, n)

	prev := LineBreakClass(0) // sentinel: start of text
	haveEntry := false
	for i := 0; i < n; i++ {
		cls := ts.classes[i]
		if cls == CM || cls == ZWJ {
			if !haveEntry || combiningAbsorbers[prev] {
				ts.codePointsWoCS = append(ts.codePointsWoCS, 'A')
				ts.classesWoCS = append(ts.classesWoCS, AL)
				ts.gcsWoCS = append(ts.gcsWoCS, Lu)
				ts.owner[i] = len(ts.codePointsWoCS) - 1
				haveEntry = true
			} else {
				ts.owner[i] = len(ts.codePointsWoCS) - 1
			}
			prev = cls
			continue
		}
		ts.codePointsWoCS = append(ts.codePointsWoCS, ts.codePoints[i])
		ts.classesWoCS = append(ts.classesWoCS, cls)
		ts.gcsWoCS = append(ts.gcsWoCS, ts.gcs[i])
		ts.owner[i] = len(ts.codePointsWoCS) - 1
		haveEntry = true
		prev = cls
	}
}

// Len returns the number of code points in the active view.
func (ts *TextState) Len() int {
	if ts.applyOffset {
		return len(ts.classesWoCS)
	}
	return len(ts.classes)
}

func (ts *TextState) classAt(i int) (LineBreakClass, bool) {
	if ts.applyOffset {
		if i < 0 || i >= len(ts.classesWoCS) {
			return 0, false
		}
		return ts.classesWoCS[i], true
	}
	if i < 0 || i >= len(ts.classes) {
		return 0, false
	}
	return ts.classes[i], true
}

func (ts *TextState) gcAt(i int) (GeneralCategory, bool) {
	if ts.applyOffset {
		if i < 0 || i >= len(ts.gcsWoCS) {
			return 0, false
		}
		return ts.gcsWoCS[i], true
	}
	if i < 0 || i >= len(ts.gcs) {
		return 0, false
	}
	return ts.gcs[i], true
}

func (ts *TextState) cpAt(i int) (rune, bool) {
	if ts.applyOffset {
		if i < 0 || i >= len(ts.codePointsWoCS) {
			return 0, false
		}
		return ts.codePointsWoCS[i], true
	}
	if i < 0 || i >= len(ts.codePoints) {
		return 0, false
	}
	return ts.codePoints[i], true
}

// viewIndex maps a code-point position in the original sequence to the
// corresponding position in the currently active view.
func (ts *TextState) viewIndex(originalIdx int) int {
	if !ts.applyOffset {
		return originalIdx
	}
	if originalIdx <= 0 {
		return 0
	}
	if originalIdx >= len(ts.owner) {
		return len(ts.classesWoCS)
	}
	return ts.owner[originalIdx]
}

// isSurrogateInterior reports whether the UTF-16 code-unit position pos
// falls strictly between the high and low surrogate of a single code
// point outside the Basic Multilingual Plane -- never a valid break
// position.
func (ts *TextState) isSurrogateInterior(pos int) bool {
	lo, hi := 0, len(ts.offsetsSurrogates)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if ts.offsetsSurrogates[mid+1] <= pos {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo >= len(ts.codePoints) {
		return false
	}
	start := ts.offsetsSurrogates[lo]
	return ts.codePoints[lo] > 0xFFFF && pos == start+1
}

// codePointIndexForUnit converts a UTF-16 code-unit position into a
// code-point index in [0, len(codePoints)].
func (ts *TextState) codePointIndexForUnit(pos int) int {
	lo, hi := 0, len(ts.offsetsSurrogates)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if ts.offsetsSurrogates[mid] <= pos {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}
