package normalize

import (
	"errors"

	"github.com/google/uuid"

	"github.com/gyeh/datenorm/internal/datephrase"
	"github.com/gyeh/datenorm/internal/model"
)

// ToParsedRow normalizes one input phrase into a ParsedRow. Whitespace is
// collapsed before recognition; the stored phrase keeps the original text.
// The result does not alias row, which the reader reuses between batches.
func ToParsedRow(row *model.PhraseRow, runID uuid.UUID, rowNum int64, order datephrase.Order) *model.ParsedRow {
	r := &model.ParsedRow{
		RunID:     runID,
		RowNumber: rowNum,
		Phrase:    row.Phrase,
	}
	if row.ID != nil {
		id := *row.ID
		r.PhraseID = &id
	}

	dt, err := datephrase.ParseWithOrder(CollapseSpace(row.Phrase), order)
	if err != nil {
		reason := Reason(err)
		r.Reason = &reason
		return r
	}

	at := dt.Time
	display := datephrase.Format(dt)
	r.ParsedAt = &at
	r.HasClock = dt.HasClock
	r.Display = &display
	if dt.Zone != "" {
		zone := dt.Zone
		r.Zone = &zone
	}
	return r
}

// Reason maps a datephrase error to the rejection reason stored with the row.
func Reason(err error) string {
	switch {
	case errors.Is(err, datephrase.ErrNoMatch):
		return model.ReasonNoMatch
	case errors.Is(err, datephrase.ErrAmbiguous):
		return model.ReasonAmbiguous
	default:
		return model.ReasonCalendar
	}
}
