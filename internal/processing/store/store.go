// Package store persists processing stage records in a comma-delimited
// text file. Records are append-only; insertion order is the only ordering.
package store

import (
	"context"

	"github.com/MrJamesThe3rd/roastery/internal/flatfile"
	"github.com/MrJamesThe3rd/roastery/internal/processing"
)

type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) ListRecords(_ context.Context) ([]*processing.Record, error) {
	rows, err := flatfile.Read(s.path)
	if err != nil {
		return nil, err
	}

	records := make([]*processing.Record, 0, len(rows))

	for _, row := range rows {
		r, err := decodeRecord(row.Fields)
		if err != nil {
			return nil, &flatfile.MalformedError{Path: s.path, Line: row.Line, Reason: err.Error()}
		}

		records = append(records, r)
	}

	return records, nil
}

func (s *Store) AppendRecord(_ context.Context, r *processing.Record) error {
	return flatfile.Append(s.path, encodeRecord(r))
}
