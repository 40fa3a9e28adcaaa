package model

import "time"

// RunSummary captures metrics from a single phrase file run.
type RunSummary struct {
	FilePath      string
	FileSHA256    string
	RunID         string
	Order         string
	RowsRead      int64
	RowsParsed    int64
	RowsRejected  int64
	RowsWritten   int64
	RejectsByKind map[string]int64
	DurationRead  time.Duration
	DurationTotal time.Duration
}
