package model

import (
	"time"

	"github.com/google/uuid"
)

// Rejection reasons recorded for phrases that did not parse.
const (
	ReasonNoMatch   = "no_match"
	ReasonAmbiguous = "ambiguous"
	ReasonCalendar  = "calendar"
)

// ParsedRow is the normalized, DB-ready result for one input phrase. Exactly
// one of ParsedAt and Reason is set.
type ParsedRow struct {
	RunID     uuid.UUID
	RowNumber int64
	PhraseID  *int64
	Phrase    string

	ParsedAt *time.Time
	HasClock bool
	Zone     *string
	Display  *string
	Reason   *string
}

// Parsed reports whether the phrase was recognized.
func (r *ParsedRow) Parsed() bool {
	return r.ParsedAt != nil
}

// ParsedColumns returns the ordered column names for COPY into datenorm.parsed_phrases.
func ParsedColumns() []string {
	return []string{
		"run_id",
		"row_number",
		"phrase_id",
		"phrase",
		"parsed_at",
		"has_clock",
		"zone",
		"display",
		"reason",
	}
}

// CopyValues returns the row's values in ParsedColumns order.
func (r *ParsedRow) CopyValues() []any {
	return []any{
		r.RunID,
		r.RowNumber,
		r.PhraseID,
		r.Phrase,
		r.ParsedAt,
		r.HasClock,
		r.Zone,
		r.Display,
		r.Reason,
	}
}

// Record converts the row into its Parquet results form.
func (r *ParsedRow) Record() ResultRecord {
	rec := ResultRecord{
		RowNumber: r.RowNumber,
		PhraseID:  r.PhraseID,
		Phrase:    r.Phrase,
		Display:   r.Display,
		HasClock:  r.HasClock,
		Zone:      r.Zone,
		Reason:    r.Reason,
	}
	if r.ParsedAt != nil {
		v := r.ParsedAt.Format(time.RFC3339)
		rec.Value = &v
	}
	return rec
}
