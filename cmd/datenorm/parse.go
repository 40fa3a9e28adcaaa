package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gyeh/datenorm/internal/datephrase"
	"github.com/gyeh/datenorm/internal/exitcode"
	"github.com/gyeh/datenorm/internal/normalize"
)

var parseConsistent bool

var parseCmd = &cobra.Command{
	Use:   "parse [phrase...]",
	Short: "Normalize date phrases given as arguments, or one per line on stdin",
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseConsistent, "consistent", false, "Read all bare numeric dates the same way (same as --order consistent)")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	log := newLogger()

	if err := cfg.ValidateTuning(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	phrases := args
	if len(phrases) == 0 {
		var err error
		phrases, err = readLines(cmd.InOrStdin())
		if err != nil {
			log.Error().Err(err).Msg("failed to read stdin")
			os.Exit(exitcode.UsageError)
		}
	}

	candidates := make([]string, len(phrases))
	for i, p := range phrases {
		candidates[i] = normalize.CollapseSpace(p)
	}

	order, fixed := cfg.FixedOrder()
	var results []*datephrase.DateTime
	if parseConsistent || !fixed {
		results = datephrase.ParseAll(candidates)
	} else {
		results = make([]*datephrase.DateTime, len(candidates))
		for i, c := range candidates {
			dt, err := datephrase.ParseWithOrder(c, order)
			if err != nil {
				log.Debug().Err(err).Str("reason", normalize.Reason(err)).Msg("phrase rejected")
			}
			results[i] = dt
		}
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	var parsed int
	for i, dt := range results {
		if dt == nil {
			fmt.Fprintf(out, "%s\t-\n", phrases[i])
			continue
		}
		parsed++
		fmt.Fprintf(out, "%s\t%s\t%s\n", phrases[i], datephrase.Format(dt), dt.Time.Format(time.RFC3339))
	}
	if err := out.Flush(); err != nil {
		return err
	}

	switch {
	case len(results) == 0 || parsed == len(results):
		return nil
	case parsed == 0:
		os.Exit(exitcode.ParseError)
	default:
		os.Exit(exitcode.PartialSuccess)
	}
	return nil
}

// readLines returns the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) != "" {
			lines = append(lines, sc.Text())
		}
	}
	return lines, sc.Err()
}
