package model

// PhraseRow mirrors the Parquet schema of an input phrase file. Only the
// phrase column is required; id lets results be joined back to the source.
type PhraseRow struct {
	ID     *int64 `parquet:"id,optional"`
	Phrase string `parquet:"phrase"`
}

// ResultRecord is one row of a Parquet results file written by convert.
type ResultRecord struct {
	RowNumber int64   `parquet:"row_number"`
	PhraseID  *int64  `parquet:"phrase_id,optional"`
	Phrase    string  `parquet:"phrase"`
	Value     *string `parquet:"value,optional"` // RFC 3339
	Display   *string `parquet:"display,optional"`
	HasClock  bool    `parquet:"has_clock"`
	Zone      *string `parquet:"zone,optional"`
	Reason    *string `parquet:"reason,optional"`
}
