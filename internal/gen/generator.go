// Command gen turns a raw Unicode Character Database LineBreak.txt file
// into the compact JSON class table format internal/ucd loads at runtime.
// It reads no General_Category file: each class gets the single category
// listed for it in defaultGeneralCategories. It is not part of the normal
// build: it is run once per Unicode version to refresh data_v16.go /
// data_v17.go.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/emirpasic/gods/lists/arraylist"
)

var logger = log.New(os.Stderr, "linebreak/gen: ", log.LstdFlags)

var verbose bool

// loadLineBreakFile reads a LineBreak.txt-format UCD file: lines of the
// form "XXXX;CL" or "XXXX..YYYY;CL", comments starting with '#'. It
// returns, per class name, the accumulated list of [lo, hi) ranges in
// arraylist form.
func loadLineBreakFile(path string) (map[string]*arraylist.List, error) {
	defer timeTrack(time.Now(), "loading "+path)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	byClass := make(map[string]*arraylist.List)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		fields := strings.Split(line, ";")
		if len(fields) < 2 {
			continue
		}
		lo, hi, err := parseCodepointField(strings.TrimSpace(fields[0]))
		if err != nil {
			if verbose {
				logger.Printf("skipping malformed line %q: %v", line, err)
			}
			continue
		}
		class := strings.TrimSpace(fields[1])
		list := byClass[class]
		if list == nil {
			list = arraylist.New()
			byClass[class] = list
		}
		list.Add([2]int64{lo, hi})
	}
	return byClass, scanner.Err()
}

func parseCodepointField(field string) (lo, hi int64, err error) {
	if i := strings.Index(field, ".."); i >= 0 {
		lo, err = strconv.ParseInt(field[:i], 16, 64)
		if err != nil {
			return 0, 0, err
		}
		hi, err = strconv.ParseInt(field[i+2:], 16, 64)
		if err != nil {
			return 0, 0, err
		}
		return lo, hi + 1, nil
	}
	lo, err = strconv.ParseInt(field, 16, 64)
	return lo, lo + 1, err
}

// buildCompactClassFile re-keys a class -> []range map as class ->
// generalCategory -> []range. gcOf supplies the single representative
// General_Category used for every range of that class (Cn when the class
// is missing from gcOf); no per-code-point General_Category data is read.
func buildCompactClassFile(byClass map[string]*arraylist.List, gcOf map[string]string) map[string]map[string][][]int64 {
	out := make(map[string]map[string][][]int64, len(byClass))
	for class, list := range byClass {
		gc := gcOf[class]
		if gc == "" {
			gc = "Cn"
		}
		ranges := make([][]int64, 0, list.Size())
		it := list.Iterator()
		for it.Next() {
			r := it.Value().([2]int64)
			ranges = append(ranges, []int64{r[0], r[1]})
		}
		out[class] = map[string][][]int64{gc: ranges}
	}
	return out
}

func main() {
	doVerbose := flag.Bool("v", false, "verbose output mode")
	lineBreakPath := flag.String("linebreak", "", "path to a LineBreak.txt UCD file")
	outPath := flag.String("out", "", "output path for the compact JSON class table (default: stdout)")
	flag.Parse()
	verbose = *doVerbose

	if *lineBreakPath == "" {
		logger.Fatal("-linebreak is required")
	}
	byClass, err := loadLineBreakFile(*lineBreakPath)
	if err != nil {
		logger.Fatal(err)
	}
	if verbose {
		logger.Printf("loaded %d line-break classes", len(byClass))
	}

	compact := buildCompactClassFile(byClass, defaultGeneralCategories)
	data, err := json.MarshalIndent(compact, "", "  ")
	if err != nil {
		logger.Fatal(err)
	}

	if *outPath == "" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		logger.Fatal(err)
	}
}

// defaultGeneralCategories supplies a representative General_Category per
// Line_Break class, for classes whose membership is (for this curated
// generator) drawn from a single category.
var defaultGeneralCategories = map[string]string{
	"AL": "Ll", "HL": "Lo", "NU": "Nd", "SP": "Zs", "BK": "Cc",
	"CR": "Cc", "LF": "Cc", "NL": "Cc", "ZW": "Cf", "ZWJ": "Cf",
	"CM": "Mn", "GL": "Cf", "WJ": "Cf", "CL": "Pe", "CP": "Pe",
	"EX": "Po", "SY": "Po", "OP": "Ps", "QU": "Po", "IS": "Po",
	"NS": "Po", "BA": "Pd", "BB": "Po", "HY": "Pd", "HH": "Pd",
	"CB": "So", "IN": "Po", "PR": "Sc", "PO": "Po", "ID": "Lo",
	"EB": "So", "EM": "Sk", "JL": "Lo", "JV": "Lo", "JT": "Lo",
	"H2": "Lo", "H3": "Lo", "RI": "So", "AK": "Lo", "AS": "Lo",
	"AP": "Lo", "VF": "Mn", "VI": "Mn", "AI": "Cn", "SG": "Cs",
	"XX": "Co", "SA": "Mn", "CJ": "Lo", "B2": "Pd",
}

func timeTrack(start time.Time, name string) {
	if verbose {
		logger.Printf("timing: %s took %s", name, time.Since(start))
	}
}
