package db

import (
	"github.com/jackc/pgx/v5"

	"github.com/gyeh/datenorm/internal/model"
)

// ChannelSource implements pgx.CopyFromSource by reading ParsedRows from a channel.
// The channel buffer bounds how far the normalizer can run ahead of COPY.
type ChannelSource struct {
	ch      <-chan *model.ParsedRow
	current *model.ParsedRow
	rows    int64
	err     error
}

// NewChannelSource creates a CopyFromSource backed by a channel.
func NewChannelSource(ch <-chan *model.ParsedRow) *ChannelSource {
	return &ChannelSource{ch: ch}
}

// Next advances to the next row. Returns false when the channel is closed.
func (s *ChannelSource) Next() bool {
	row, ok := <-s.ch
	if !ok {
		return false
	}
	s.current = row
	s.rows++
	return true
}

// Values returns the current row's values in COPY column order.
func (s *ChannelSource) Values() ([]any, error) {
	return s.current.CopyValues(), nil
}

// Fail records the error that ended production. The producer must call it
// before closing the channel, so that COPY is aborted instead of committed.
func (s *ChannelSource) Fail(err error) {
	s.err = err
}

// Err returns the error passed to Fail, if any.
func (s *ChannelSource) Err() error {
	return s.err
}

// Rows returns how many rows have been handed to COPY so far.
func (s *ChannelSource) Rows() int64 {
	return s.rows
}

var _ pgx.CopyFromSource = (*ChannelSource)(nil)
