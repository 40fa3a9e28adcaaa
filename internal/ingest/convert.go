package ingest

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/gyeh/datenorm/internal/config"
	"github.com/gyeh/datenorm/internal/model"
	"github.com/gyeh/datenorm/internal/normalize"
	"github.com/gyeh/datenorm/internal/phrasefile"
)

// Convert normalizes every phrase in cfg.FilePath and writes one result
// record per input row to cfg.OutPath. No database is involved. On failure
// cfg.OutPath is removed rather than left truncated.
func Convert(ctx context.Context, log zerolog.Logger, cfg *config.Config) (*model.RunSummary, error) {
	totalStart := time.Now()

	pf, err := Inspect(log, cfg)
	if err != nil {
		return nil, &PipelineError{Phase: "preflight", Err: err}
	}

	reader, err := phrasefile.Open(pf.FilePath)
	if err != nil {
		return nil, &PipelineError{Phase: "preflight", Err: err}
	}
	defer reader.Close()

	w, err := phrasefile.Create(cfg.OutPath)
	if err != nil {
		return nil, &PipelineError{Phase: "write", Err: err}
	}

	readStart := time.Now()
	var counts tally
	batch := make([]model.ResultRecord, 0, cfg.BatchSize)
	err = reader.Each(cfg.BatchSize, func(rowNum int64, row *model.PhraseRow) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		parsed := normalize.ToParsedRow(row, pf.RunID, rowNum, pf.Order)
		counts.add(parsed)
		batch = append(batch, parsed.Record())
		if len(batch) < cap(batch) {
			return nil
		}
		err := w.Write(batch)
		batch = batch[:0]
		return err
	})
	if err == nil && len(batch) > 0 {
		err = w.Write(batch)
	}
	if err != nil {
		if aerr := w.Abort(); aerr != nil {
			log.Warn().Err(aerr).Str("out", cfg.OutPath).Msg("partial results file left behind")
		}
		return nil, &PipelineError{Phase: "convert", Err: err}
	}
	if err := w.Close(); err != nil {
		if aerr := w.Abort(); aerr != nil {
			log.Warn().Err(aerr).Str("out", cfg.OutPath).Msg("partial results file left behind")
		}
		return nil, &PipelineError{Phase: "write", Err: err}
	}

	summary := &model.RunSummary{
		FilePath:      pf.FilePath,
		FileSHA256:    pf.FileSHA256,
		RunID:         pf.RunID.String(),
		Order:         pf.Order.String(),
		RowsRead:      counts.read,
		RowsParsed:    counts.parsed,
		RowsRejected:  counts.rejected,
		RowsWritten:   w.Rows(),
		RejectsByKind: counts.byKind,
		DurationRead:  time.Since(readStart),
		DurationTotal: time.Since(totalStart),
	}

	log.Info().
		Str("out", cfg.OutPath).
		Int64("rows_read", summary.RowsRead).
		Int64("rows_parsed", summary.RowsParsed).
		Int64("rows_rejected", summary.RowsRejected).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("convert complete")

	return summary, nil
}
