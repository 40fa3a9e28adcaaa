package ingest

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/datenorm/internal/config"
	"github.com/gyeh/datenorm/internal/datephrase"
	"github.com/gyeh/datenorm/internal/model"
	"github.com/gyeh/datenorm/internal/normalize"
	"github.com/gyeh/datenorm/internal/phrasefile"
	embedsql "github.com/gyeh/datenorm/internal/sql"
)

// PreflightResult holds all context resolved before any rows are processed.
type PreflightResult struct {
	// FilePath is the path the run was started with, stored as-is.
	FilePath string
	// FileSHA256 is the hex-encoded SHA-256 digest of the file.
	FileSHA256 string
	// FileSize is the file size in bytes.
	FileSize int64
	// RunID identifies this run. When AlreadyLoaded is set it is the ID of the
	// earlier completed run instead.
	RunID uuid.UUID
	// NumRows is the row count from the Parquet footer.
	NumRows int64
	// Order is the reading applied to bare numeric dates. For the consistent
	// policy it is decided by a vote over the whole file.
	Order datephrase.Order
	// AlreadyLoaded is true when a completed run exists for the same file
	// contents and order policy, and force mode is off.
	AlreadyLoaded bool
}

// Inspect hashes and opens the file, validates its schema and settles the
// date order. It touches no database.
func Inspect(log zerolog.Logger, cfg *config.Config) (*PreflightResult, error) {
	start := time.Now()

	sha, size, err := normalize.FileDigest(cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("preflight hash: %w", err)
	}

	reader, err := phrasefile.Open(cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("preflight open: %w", err)
	}
	numRows := reader.NumRows()
	reader.Close()

	order, ok := cfg.FixedOrder()
	if !ok {
		order, err = VoteOrder(cfg.FilePath, cfg.BatchSize)
		if err != nil {
			return nil, fmt.Errorf("preflight order vote: %w", err)
		}
	}

	log.Info().
		Str("file", filepath.Base(cfg.FilePath)).
		Str("sha256", sha).
		Int64("rows", numRows).
		Str("order", order.String()).
		Dur("duration", time.Since(start)).
		Msg("preflight complete")

	return &PreflightResult{
		FilePath:   cfg.FilePath,
		FileSHA256: sha,
		FileSize:   size,
		RunID:      uuid.New(),
		NumRows:    numRows,
		Order:      order,
	}, nil
}

// Preflight runs Inspect, then checks for an earlier completed run of the
// same file under the same order policy and registers this run. A run under a
// different policy reads bare numeric dates differently, so it is not reused.
func Preflight(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, cfg *config.Config) (*PreflightResult, error) {
	pf, err := Inspect(log, cfg)
	if err != nil {
		return nil, err
	}

	if !cfg.Force {
		var prior uuid.UUID
		err := pool.QueryRow(ctx, embedsql.LookupCompletedRun, pf.FileSHA256, cfg.Order).Scan(&prior)
		switch {
		case err == nil:
			pf.RunID = prior
			pf.AlreadyLoaded = true
			return pf, nil
		case !errors.Is(err, pgx.ErrNoRows):
			return nil, fmt.Errorf("preflight lookup run: %w", err)
		}
	}

	if _, err := pool.Exec(ctx, embedsql.RegisterRun,
		pf.RunID, filepath.Base(pf.FilePath), pf.FileSHA256, cfg.Order, pf.NumRows,
	); err != nil {
		return nil, fmt.Errorf("preflight register run: %w", err)
	}
	log.Info().Str("run_id", pf.RunID.String()).Msg("run registered")

	return pf, nil
}

// VoteOrder reads every phrase in the file and returns the date order the
// bare numeric dates among them support.
func VoteOrder(path string, batchSize int) (datephrase.Order, error) {
	reader, err := phrasefile.Open(path)
	if err != nil {
		return datephrase.MonthFirst, err
	}
	defer reader.Close()

	var vote datephrase.OrderVote
	err = reader.Each(batchSize, func(_ int64, row *model.PhraseRow) error {
		vote.Add(normalize.CollapseSpace(row.Phrase))
		return nil
	})
	if err != nil {
		return datephrase.MonthFirst, err
	}
	return vote.Order(), nil
}
