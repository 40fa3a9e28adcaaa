package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/datenorm/internal/db"
	"github.com/gyeh/datenorm/internal/model"
	"github.com/gyeh/datenorm/internal/normalize"
	"github.com/gyeh/datenorm/internal/phrasefile"
	embedsql "github.com/gyeh/datenorm/internal/sql"
)

// StageResult holds metrics from the staging phase.
type StageResult struct {
	RowsRead     int64
	RowsParsed   int64
	RowsRejected int64
	RowsCopied   int64
	Duration     time.Duration
}

// Stage streams rows from the Parquet file, normalizes them, and COPY-loads
// them into datenorm.parsed_phrases via a channel-backed CopyFromSource.
// Rejected phrases are loaded too, with their reason.
func Stage(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, pf *PreflightResult, batchSize int) (*StageResult, error) {
	start := time.Now()

	reader, err := phrasefile.Open(pf.FilePath)
	if err != nil {
		return nil, fmt.Errorf("stage open: %w", err)
	}
	defer reader.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch := make(chan *model.ParsedRow, batchSize)
	source := db.NewChannelSource(ch)
	errCh := make(chan error, 1)

	var counts tally

	// Producer goroutine: read Parquet → normalize → push to channel
	go func() {
		err := reader.Each(batchSize, func(rowNum int64, row *model.PhraseRow) error {
			parsed := normalize.ToParsedRow(row, pf.RunID, rowNum, pf.Order)
			counts.add(parsed)
			if parsed.Reason != nil {
				log.Debug().Int64("row", rowNum).Str("reason", *parsed.Reason).Msg("phrase rejected")
			}

			select {
			case ch <- parsed:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		source.Fail(err)
		close(ch)
		errCh <- err
	}()

	// Consumer: COPY from channel into the results table
	rowsCopied, err := pool.CopyFrom(ctx,
		pgx.Identifier{"datenorm", "parsed_phrases"},
		model.ParsedColumns(),
		source,
	)
	if err != nil {
		cancel()
	}

	// Wait for producer to finish
	prodErr := <-errCh
	if err != nil {
		return nil, fmt.Errorf("stage copy: %w", err)
	}
	if prodErr != nil {
		return nil, fmt.Errorf("stage producer: %w", prodErr)
	}

	dur := time.Since(start)
	log.Info().
		Int64("rows_read", counts.read).
		Int64("rows_parsed", counts.parsed).
		Int64("rows_rejected", counts.rejected).
		Int64("rows_copied", rowsCopied).
		Str("duration", dur.String()).
		Float64("rows_per_sec", float64(rowsCopied)/dur.Seconds()).
		Msg("staging complete")

	return &StageResult{
		RowsRead:     counts.read,
		RowsParsed:   counts.parsed,
		RowsRejected: counts.rejected,
		RowsCopied:   rowsCopied,
		Duration:     dur,
	}, nil
}

// UpdateStatus updates the run status.
func UpdateStatus(ctx context.Context, pool *pgxpool.Pool, runID uuid.UUID, status string) error {
	_, err := pool.Exec(ctx, embedsql.UpdateRunStatus, runID, status)
	return err
}
