package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gyeh/datenorm/internal/config"
	"github.com/gyeh/datenorm/internal/exitcode"
	"github.com/gyeh/datenorm/internal/ingest"
	"github.com/gyeh/datenorm/internal/logging"
)

var (
	cfg        config.Config
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "datenorm",
	Short: "Date phrase recognizer and normalizer",
	Long: "Recognizes date phrases such as \"27 November 2014\" or \"Sat, 09 Aug 2014 18:20:00\" " +
		"and normalizes them, one at a time or in bulk from Parquet files into Parquet or Postgres.",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfigFile,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("DATENORM_DB_URL"), "Postgres connection string (or set DATENORM_DB_URL)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&cfg.LogLevel, "log-level", "", "Log level (default info)")
	pf.StringVar(&cfg.Order, "order", "", "Reading of bare numeric dates: mdy, dmy or consistent (default mdy)")
	pf.StringVar(&configPath, "config", "", "YAML file with order, batch_size, sample_size and log_level")
}

// loadConfigFile merges --config into cfg. Flags given on the command line
// win over the file.
func loadConfigFile(cmd *cobra.Command, args []string) error {
	if configPath == "" {
		return nil
	}
	flagged := cfg
	if err := cfg.LoadFromFile(configPath); err != nil {
		return err
	}
	if cmd.Flags().Changed("order") {
		cfg.Order = flagged.Order
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = flagged.LogLevel
	}
	if cmd.Flags().Changed("sample") {
		cfg.SampleSize = flagged.SampleSize
	}
	return cfg.ValidateTuning()
}

func newLogger() zerolog.Logger {
	log, err := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitcode.UsageError)
	}
	return log
}

// exitPipeline logs a failed convert or load and exits with the code for the
// phase that failed.
func exitPipeline(log zerolog.Logger, what string, err error) {
	var pe *ingest.PipelineError
	if !errors.As(err, &pe) {
		log.Error().Err(err).Msg(what + " failed")
		os.Exit(exitcode.WriteError)
	}
	log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg(what + " failed")
	switch pe.Phase {
	case "preflight":
		os.Exit(exitcode.ValidationError)
	case "stage":
		os.Exit(exitcode.CopyError)
	default:
		os.Exit(exitcode.WriteError)
	}
}
