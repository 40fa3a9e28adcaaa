package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/datenorm/internal/exitcode"
	"github.com/gyeh/datenorm/internal/ingest"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Normalize a Parquet phrase file into a Parquet results file",
	RunE:  runConvert,
}

func init() {
	f := convertCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to Parquet phrase file (required)")
	f.StringVar(&cfg.OutPath, "out", "", "Path of the Parquet results file to write (required)")
	_ = convertCmd.MarkFlagRequired("file")
	_ = convertCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	log := newLogger()

	if err := cfg.ValidateWithOutput(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	summary, err := ingest.Convert(context.Background(), log, &cfg)
	if err != nil {
		exitPipeline(log, "convert", err)
	}

	fmt.Printf("Convert complete: %d rows, %d parsed, %d rejected (%.1fs)\n",
		summary.RowsWritten, summary.RowsParsed, summary.RowsRejected, summary.DurationTotal.Seconds())
	return nil
}
