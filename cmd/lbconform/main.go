// Command lbconform runs a Checker against a UAX #14 conformance test file
// (the LineBreakTest.txt format: lines of alternating ÷/× markers and hex
// code points) and reports how many test lines the Checker's break
// decisions match exactly. It parses the file directly and drives it
// against the library, so results move as class/rule data is updated
// without regenerating any fixtures.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/linebreak"
)

type conformanceCase struct {
	lineNo       int
	input        []rune
	breakOffsets []int // code-point indices where a break (either kind) is expected
	comment      string
}

func main() {
	path := flag.String("file", "", "path to a LineBreakTest.txt-format conformance file")
	ruleSet := flag.String("rules", "v17", "rule set / class table key to check against (v16 or v17)")
	maxExamples := flag.Int("examples", 10, "number of mismatching lines to print")
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "lbconform: -file is required")
		os.Exit(2)
	}

	f, err := os.Open(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lbconform:", err)
		os.Exit(1)
	}
	defer f.Close()

	cases, err := parseConformanceFile(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lbconform:", err)
		os.Exit(1)
	}
	if len(cases) == 0 {
		fmt.Fprintln(os.Stderr, "lbconform: no test cases found in", *path)
		os.Exit(1)
	}

	checker, err := linebreak.NewChecker(linebreak.WithClassTableKey(*ruleSet))
	if err != nil {
		fmt.Fprintln(os.Stderr, "lbconform:", err)
		os.Exit(1)
	}

	pass, fail := 0, 0
	var examples []string
	for _, tc := range cases {
		got := runCase(checker, tc)
		if equalOffsets(got, tc.breakOffsets) {
			pass++
			continue
		}
		fail++
		if len(examples) < *maxExamples {
			examples = append(examples, fmt.Sprintf("line %d: input=%q want=%v got=%v (%s)",
				tc.lineNo, string(tc.input), tc.breakOffsets, got, tc.comment))
		}
	}

	fmt.Printf("lbconform: %d/%d lines matched (%s)\n", pass, pass+fail, *ruleSet)
	for _, ex := range examples {
		fmt.Println("  " + ex)
	}
	if fail > 0 {
		os.Exit(1)
	}
}

func runCase(checker *linebreak.Checker, tc conformanceCase) []int {
	checker.SetText(string(tc.input))
	var offsets []int
	codePoint := 0
	unit := 0
	for _, r := range tc.input {
		codePoint++
		runeUnits := 1
		if r > 0xFFFF {
			runeUnits = 2
		}
		unit += runeUnits
		if checker.IsBreakAt(unit).Is(linebreak.Mandatory | linebreak.Allowed) {
			offsets = append(offsets, codePoint)
		}
	}
	return offsets
}

func equalOffsets(got, want []int) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func parseConformanceFile(f *os.File) ([]conformanceCase, error) {
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 4096), 8*1024*1024)

	var cases []conformanceCase
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		raw := line
		comment := ""
		if i := strings.IndexByte(raw, '#'); i >= 0 {
			comment = strings.TrimSpace(raw[i+1:])
			raw = strings.TrimSpace(raw[:i])
		}
		if raw == "" {
			continue
		}

		fields := strings.Fields(raw)
		if len(fields) < 3 || len(fields)%2 == 0 {
			return nil, fmt.Errorf("line %d: invalid field layout", lineNo)
		}
		if fields[0] != "÷" && fields[0] != "×" {
			return nil, fmt.Errorf("line %d: invalid leading marker %q", lineNo, fields[0])
		}

		tc := conformanceCase{lineNo: lineNo, comment: comment}
		codePoint := 0
		if fields[0] == "÷" {
			tc.breakOffsets = append(tc.breakOffsets, 0)
		}

		for i := 1; i < len(fields); i += 2 {
			r, err := parseHexRune(fields[i])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			tc.input = append(tc.input, r)
			codePoint++

			marker := fields[i+1]
			if marker != "÷" && marker != "×" {
				return nil, fmt.Errorf("line %d: invalid marker %q", lineNo, marker)
			}
			if marker == "÷" {
				tc.breakOffsets = append(tc.breakOffsets, codePoint)
			}
		}

		cases = append(cases, tc)
	}
	return cases, scanner.Err()
}

func parseHexRune(s string) (rune, error) {
	u, err := strconv.ParseUint(strings.TrimSpace(s), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid code point %q: %w", s, err)
	}
	if u > 0x10FFFF {
		return 0, fmt.Errorf("code point out of range %q", s)
	}
	return rune(u), nil
}
