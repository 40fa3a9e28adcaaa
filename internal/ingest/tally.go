package ingest

import "github.com/gyeh/datenorm/internal/model"

// tally counts outcomes as rows are normalized.
type tally struct {
	read     int64
	parsed   int64
	rejected int64
	byKind   map[string]int64
}

func (t *tally) add(r *model.ParsedRow) {
	t.read++
	if r.Parsed() {
		t.parsed++
		return
	}
	t.rejected++
	if t.byKind == nil {
		t.byKind = make(map[string]int64)
	}
	t.byKind[*r.Reason]++
}
