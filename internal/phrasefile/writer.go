package phrasefile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/datenorm/internal/model"
)

// Writer streams ResultRecords into a new Parquet file.
type Writer struct {
	path   string
	file   *os.File
	writer *parquet.GenericWriter[model.ResultRecord]
	rows   int64
}

// Create creates (or truncates) path and returns a Writer for it.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create results file: %w", err)
	}
	return &Writer{path: path, file: f, writer: parquet.NewGenericWriter[model.ResultRecord](f)}, nil
}

// Write appends records to the file.
func (w *Writer) Write(records []model.ResultRecord) error {
	n, err := w.writer.Write(records)
	w.rows += int64(n)
	if err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

// Rows returns the number of records written so far.
func (w *Writer) Rows() int64 {
	return w.rows
}

// Close flushes the footer and closes the file.
func (w *Writer) Close() error {
	if err := w.writer.Close(); err != nil {
		w.file.Close()
		return fmt.Errorf("close results writer: %w", err)
	}
	return w.file.Close()
}

// Abort closes the writer and removes the partly written file.
func (w *Writer) Abort() error {
	w.writer.Close()
	w.file.Close()
	if err := os.Remove(w.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove partial results: %w", err)
	}
	return nil
}

// WritePhrases writes rows as a phrase file. It is used by fixtures and tests.
func WritePhrases(path string, rows []model.PhraseRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create phrase file: %w", err)
	}
	defer f.Close()

	w := parquet.NewGenericWriter[model.PhraseRow](f)
	if _, err := w.Write(rows); err != nil {
		return fmt.Errorf("write phrases: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close phrase writer: %w", err)
	}
	return f.Close()
}
