package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/datenorm/internal/config"
	"github.com/gyeh/datenorm/internal/model"
)

// Run statuses stored in datenorm.runs.
const (
	StatusPending  = "pending"
	StatusStaging  = "staging"
	StatusStaged   = "staged"
	StatusComplete = "complete"
	StatusFailed   = "failed"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run executes the load pipeline: preflight → stage → finalize. A file whose
// hash and order policy match a completed run is skipped unless cfg.Force is set.
func Run(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, cfg *config.Config) (*model.RunSummary, error) {
	totalStart := time.Now()

	// Phase 1: Preflight
	log.Info().Str("file", cfg.FilePath).Msg("starting preflight")
	pf, err := Preflight(ctx, pool, log, cfg)
	if err != nil {
		return nil, &PipelineError{Phase: "preflight", Err: err}
	}

	if pf.AlreadyLoaded {
		log.Info().
			Str("run_id", pf.RunID.String()).
			Str("sha256", pf.FileSHA256).
			Msg("file already loaded, skipping (use --force to reload)")
		return &model.RunSummary{
			FilePath:      pf.FilePath,
			FileSHA256:    pf.FileSHA256,
			RunID:         pf.RunID.String(),
			Order:         pf.Order.String(),
			DurationTotal: time.Since(totalStart),
		}, nil
	}

	// Phase 2: Stage
	log.Info().Msg("starting staging")
	if err := UpdateStatus(ctx, pool, pf.RunID, StatusStaging); err != nil {
		return nil, &PipelineError{Phase: "stage", Err: err}
	}

	stageResult, err := Stage(ctx, pool, log, pf, cfg.BatchSize)
	if err != nil {
		if cerr := Cleanup(ctx, pool, log, pf.RunID); cerr != nil {
			log.Warn().Err(cerr).Msg("cleanup of failed run failed (non-fatal)")
		}
		_ = UpdateStatus(ctx, pool, pf.RunID, StatusFailed)
		return nil, &PipelineError{Phase: "stage", Err: err}
	}

	if err := UpdateStatus(ctx, pool, pf.RunID, StatusStaged); err != nil {
		return nil, &PipelineError{Phase: "stage", Err: err}
	}

	// Phase 3: Finalize
	log.Info().Msg("finalizing")
	fin, err := Finalize(ctx, pool, log, pf, stageResult)
	if err != nil {
		_ = UpdateStatus(ctx, pool, pf.RunID, StatusFailed)
		return nil, &PipelineError{Phase: "finalize", Err: err}
	}

	summary := &model.RunSummary{
		FilePath:      pf.FilePath,
		FileSHA256:    pf.FileSHA256,
		RunID:         pf.RunID.String(),
		Order:         pf.Order.String(),
		RowsRead:      stageResult.RowsRead,
		RowsParsed:    stageResult.RowsParsed,
		RowsRejected:  stageResult.RowsRejected,
		RowsWritten:   stageResult.RowsCopied,
		RejectsByKind: fin.RejectsByKind,
		DurationRead:  stageResult.Duration,
		DurationTotal: time.Since(totalStart),
	}

	log.Info().
		Int64("rows_read", summary.RowsRead).
		Int64("rows_parsed", summary.RowsParsed).
		Int64("rows_rejected", summary.RowsRejected).
		Int64("rows_written", summary.RowsWritten).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("load pipeline complete")

	return summary, nil
}
