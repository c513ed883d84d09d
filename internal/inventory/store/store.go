// Package store persists inventory batches in a comma-delimited text file,
// one record per line, no header.
package store

import (
	"context"
	"fmt"

	"github.com/MrJamesThe3rd/roastery/internal/flatfile"
	"github.com/MrJamesThe3rd/roastery/internal/inventory"
)

type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// ListBatches reads every batch record. A missing file is an empty
// inventory; a line that fails decoding aborts the whole read.
func (s *Store) ListBatches(_ context.Context) ([]*inventory.Batch, error) {
	rows, err := flatfile.Read(s.path)
	if err != nil {
		return nil, err
	}

	batches := make([]*inventory.Batch, 0, len(rows))

	for _, row := range rows {
		b, err := decodeBatch(row.Fields)
		if err != nil {
			return nil, &flatfile.MalformedError{Path: s.path, Line: row.Line, Reason: err.Error()}
		}

		batches = append(batches, b)
	}

	return batches, nil
}

func (s *Store) AppendBatch(_ context.Context, b *inventory.Batch) error {
	return flatfile.Append(s.path, encodeBatch(b))
}

// UpdateStatus rewrites the file with the matching record's status changed
// and every other record carried through untouched, in original order. The
// rows are kept as read rather than re-encoded so unrelated records keep
// their exact stored form.
func (s *Store) UpdateStatus(_ context.Context, id string, status inventory.Status) error {
	rows, err := flatfile.Read(s.path)
	if err != nil {
		return err
	}

	found := false
	records := make([][]string, len(rows))

	for i, row := range rows {
		if _, err := decodeBatch(row.Fields); err != nil {
			return &flatfile.MalformedError{Path: s.path, Line: row.Line, Reason: err.Error()}
		}

		if row.Fields[0] == id {
			row.Fields[5] = string(status)
			found = true
		}

		records[i] = row.Fields
	}

	if !found {
		return fmt.Errorf("batch %s: %w", id, inventory.ErrNotFound)
	}

	return flatfile.Rewrite(s.path, records)
}
