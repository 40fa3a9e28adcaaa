package ingest

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/gyeh/datenorm/internal/config"
	"github.com/gyeh/datenorm/internal/datephrase"
	"github.com/gyeh/datenorm/internal/model"
	"github.com/gyeh/datenorm/internal/normalize"
	"github.com/gyeh/datenorm/internal/phrasefile"
)

const maxPlanExamples = 5

var errSampleFull = errors.New("sample full")

// PlanReport is the result of a dry run over the head of a phrase file.
type PlanReport struct {
	FilePath      string
	FileSHA256    string
	FileSize      int64
	NumRows       int64
	Order         datephrase.Order
	Sampled       int64
	Parsed        int64
	RejectsByKind map[string]int64
	// Rejected holds the first few rejected phrases, for eyeballing.
	Rejected []string
}

// ParseRate returns the fraction of sampled phrases that parsed.
func (p *PlanReport) ParseRate() float64 {
	if p.Sampled == 0 {
		return 0
	}
	return float64(p.Parsed) / float64(p.Sampled)
}

// Plan validates the file and normalizes up to cfg.SampleSize phrases from
// its head without writing anything.
func Plan(log zerolog.Logger, cfg *config.Config) (*PlanReport, error) {
	pf, err := Inspect(log, cfg)
	if err != nil {
		return nil, err
	}

	reader, err := phrasefile.Open(pf.FilePath)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	var counts tally
	var rejected []string
	limit := int64(cfg.SampleSize)
	err = reader.Each(cfg.BatchSize, func(rowNum int64, row *model.PhraseRow) error {
		if rowNum > limit {
			return errSampleFull
		}
		parsed := normalize.ToParsedRow(row, pf.RunID, rowNum, pf.Order)
		counts.add(parsed)
		if !parsed.Parsed() && len(rejected) < maxPlanExamples {
			rejected = append(rejected, row.Phrase)
		}
		return nil
	})
	if err != nil && !errors.Is(err, errSampleFull) {
		return nil, err
	}

	return &PlanReport{
		FilePath:      pf.FilePath,
		FileSHA256:    pf.FileSHA256,
		FileSize:      pf.FileSize,
		NumRows:       pf.NumRows,
		Order:         pf.Order,
		Sampled:       counts.read,
		Parsed:        counts.parsed,
		RejectsByKind: counts.byKind,
		Rejected:      rejected,
	}, nil
}
