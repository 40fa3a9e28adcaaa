package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/datenorm/internal/db"
	"github.com/gyeh/datenorm/internal/exitcode"
	"github.com/gyeh/datenorm/internal/ingest"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Normalize a Parquet phrase file into Postgres",
	RunE:  runLoad,
}

func init() {
	f := loadCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to Parquet phrase file (required)")
	f.BoolVar(&cfg.Force, "force", false, "Reload even if a run for the same file contents completed")
	_ = loadCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	log := newLogger()
	ctx := context.Background()

	if err := cfg.ValidateWithDSN(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	summary, err := ingest.Run(ctx, pool, log, &cfg)
	if err != nil {
		pool.Close()
		exitPipeline(log, "load", err)
	}

	fmt.Printf("Load complete: run %s, %d rows, %d parsed, %d rejected (%.1fs)\n",
		summary.RunID, summary.RowsWritten, summary.RowsParsed, summary.RowsRejected, summary.DurationTotal.Seconds())
	return nil
}
