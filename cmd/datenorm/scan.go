package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gyeh/datenorm/internal/datephrase"
	"github.com/gyeh/datenorm/internal/exitcode"
)

const maxScanLine = 1 << 20

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Extract date phrases from free text",
	Long:  "Reads text from --file or stdin and prints every date phrase found, as line:column, the phrase and its value.",
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().StringVar(&cfg.FilePath, "file", "", "Text file to scan (default stdin)")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	log := newLogger()

	var in io.Reader = cmd.InOrStdin()
	if cfg.FilePath != "" {
		f, err := os.Open(cfg.FilePath)
		if err != nil {
			log.Error().Err(err).Msg("failed to open input")
			os.Exit(exitcode.ValidationError)
		}
		defer f.Close()
		in = f
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 64*1024), maxScanLine)
	var line, found int
	for sc.Scan() {
		line++
		for _, m := range datephrase.FindAll(sc.Text()) {
			found++
			fmt.Fprintf(out, "%d:%d\t%s\t%s\n", line, m.Start+1, m.Text, m.Value.Time.Format(time.RFC3339))
		}
	}
	if err := sc.Err(); err != nil {
		log.Error().Err(err).Int("line", line).Msg("failed to read input")
		os.Exit(exitcode.ValidationError)
	}
	if err := out.Flush(); err != nil {
		return err
	}

	log.Info().Int("lines", line).Int("dates", found).Msg("scan complete")
	return nil
}
