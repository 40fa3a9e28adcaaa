package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	embedsql "github.com/gyeh/datenorm/internal/sql"
)

// FinalizeResult holds what the finalize phase read back from the database.
type FinalizeResult struct {
	RejectsByKind map[string]int64
	// RowsSuperseded counts rows removed from earlier runs of the same file.
	RowsSuperseded int64
	Duration       time.Duration
}

// Finalize records the run counts, supersedes earlier runs of the same file,
// and runs ANALYZE.
func Finalize(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, pf *PreflightResult, sr *StageResult) (*FinalizeResult, error) {
	start := time.Now()

	if _, err := pool.Exec(ctx, embedsql.FinalizeRun,
		pf.RunID, sr.RowsRead, sr.RowsParsed, sr.RowsRejected,
	); err != nil {
		return nil, fmt.Errorf("finalize run: %w", err)
	}

	rejects, err := rejectCounts(ctx, pool, pf)
	if err != nil {
		return nil, err
	}

	tag, err := pool.Exec(ctx, embedsql.SupersedeRuns, pf.FileSHA256, pf.RunID)
	if err != nil {
		return nil, fmt.Errorf("supersede earlier runs: %w", err)
	}
	if tag.RowsAffected() > 0 {
		log.Info().Int64("rows_deleted", tag.RowsAffected()).Msg("earlier runs superseded")
	}

	if _, err := pool.Exec(ctx, embedsql.AnalyzeParsedPhrases); err != nil {
		return nil, fmt.Errorf("analyze parsed phrases: %w", err)
	}
	log.Info().Msg("ANALYZE complete")

	return &FinalizeResult{
		RejectsByKind:  rejects,
		RowsSuperseded: tag.RowsAffected(),
		Duration:       time.Since(start),
	}, nil
}

func rejectCounts(ctx context.Context, pool *pgxpool.Pool, pf *PreflightResult) (map[string]int64, error) {
	rows, err := pool.Query(ctx, embedsql.RejectCounts, pf.RunID)
	if err != nil {
		return nil, fmt.Errorf("reject counts: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var reason string
		var n int64
		if err := rows.Scan(&reason, &n); err != nil {
			return nil, fmt.Errorf("scan reject count: %w", err)
		}
		out[reason] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reject counts: %w", err)
	}
	return out, nil
}
