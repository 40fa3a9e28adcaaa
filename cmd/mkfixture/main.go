// mkfixture builds a Parquet phrase file from a newline-delimited text file,
// one phrase per line. Blank lines are skipped; ids are the 1-based line numbers.
// Usage: go run ./cmd/mkfixture --in testdata/phrases.txt --out testdata/phrases.parquet
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gyeh/datenorm/internal/datephrase"
	"github.com/gyeh/datenorm/internal/model"
	"github.com/gyeh/datenorm/internal/normalize"
	"github.com/gyeh/datenorm/internal/phrasefile"
)

func main() {
	in := flag.String("in", "testdata/phrases.txt", "input text file")
	out := flag.String("out", "testdata/phrases.parquet", "output parquet")
	maxRows := flag.Int("rows", 0, "max rows to output (0 means all)")
	checkOnly := flag.Bool("check", false, "only print stats, don't write")
	flag.Parse()

	f, err := os.Open(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open input: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var rows []model.PhraseRow
	var lineNum int64
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lineNum++
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		id := lineNum
		rows = append(rows, model.PhraseRow{ID: &id, Phrase: sc.Text()})
		if *maxRows > 0 && len(rows) >= *maxRows {
			break
		}
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "read: %v\n", err)
		os.Exit(1)
	}

	parsed := 0
	reasons := make(map[string]int)
	for _, row := range rows {
		_, err := datephrase.ParseDetailed(normalize.CollapseSpace(row.Phrase))
		if err != nil {
			reasons[normalize.Reason(err)]++
			continue
		}
		parsed++
	}

	if !*checkOnly {
		if err := phrasefile.WritePhrases(*out, rows); err != nil {
			fmt.Fprintf(os.Stderr, "write: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(rows), *out)
	}

	fmt.Printf("Phrases: %d, parsed: %d\n", len(rows), parsed)
	for _, reason := range []string{model.ReasonNoMatch, model.ReasonAmbiguous, model.ReasonCalendar} {
		if c := reasons[reason]; c > 0 {
			fmt.Printf("  %-10s %d\n", reason, c)
		}
	}
}
