// Package flatfile holds the shared plumbing for the delimited record files:
// whole-file reads with line numbers, crash-safe appends, and atomic rewrites.
// Field layout and validation belong to the stores built on top.
package flatfile

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MrJamesThe3rd/roastery/internal/encoding"
)

// Row is one delimited record together with its 1-based line number,
// so decode failures can point at the offending line.
type Row struct {
	Line   int
	Fields []string
}

// MalformedError reports a stored line that does not parse into the
// expected shape. Reads fail fast on it rather than skipping, so data
// corruption is never masked by a partial result.
type MalformedError struct {
	Path   string
	Line   int
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%s:%d: malformed record: %s", e.Path, e.Line, e.Reason)
}

// Read returns every non-blank record in the file. A missing file yields
// no rows and no error: an uninitialized plant simply has no data yet.
func Read(path string) ([]Row, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	utf8Data, err := encoding.ToUTF8(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	reader := csv.NewReader(bytes.NewReader(utf8Data))
	reader.FieldsPerRecord = -1 // Field counts are checked by the stores
	reader.LazyQuotes = true    // Tolerate stray quotes in legacy rows

	var rows []Row

	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, &MalformedError{Path: path, Line: parseErr.Line, Reason: parseErr.Err.Error()}
			}

			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}

		line, _ := reader.FieldPos(0)
		rows = append(rows, Row{Line: line, Fields: fields})
	}

	return rows, nil
}

// Append writes one record to the end of the file, creating it if absent.
// Appends are line-granular, so a crash can at worst leave a truncated
// trailing line, which the next Read surfaces as a MalformedError.
func Append(path string, fields []string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}

	w := csv.NewWriter(f)

	if err := w.Write(fields); err != nil {
		f.Close()
		return fmt.Errorf("appending to %s: %w", path, err)
	}

	w.Flush()

	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("appending to %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	return nil
}

// Rewrite replaces the file's full contents. The new content is written to
// a temporary file in the same directory and renamed over the original only
// after the write succeeds, so a crash mid-rewrite never truncates the file.
func Rewrite(path string, records [][]string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}

	w := csv.NewWriter(tmp)

	if err := w.WriteAll(records); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return fmt.Errorf("rewriting %s: %w", path, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temp file for %s: %w", path, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing %s: %w", path, err)
	}

	return nil
}
