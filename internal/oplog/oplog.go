// Package oplog keeps the append-only audit trail of plant operations.
package oplog

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"
)

const timestampLayout = "2006-01-02 15:04:05"

// Entry is one audit line. The timestamp is kept verbatim so legacy
// entries with odd formats still display.
type Entry struct {
	Timestamp string
	Operation string
	Details   string
}

// Logger appends timestamped operation entries to the audit log file.
// It never fails outward: a business operation must not abort because
// its audit line could not be written.
type Logger struct {
	path string
}

func New(path string) *Logger {
	return &Logger{path: path}
}

// Log appends one entry. Failures are reported via slog and swallowed.
func (l *Logger) Log(operation, details string) {
	entry := fmt.Sprintf("%s,%s,%s\n", time.Now().Format(timestampLayout), operation, details)

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		slog.Warn("operations log unavailable", "path", l.path, "error", err)
		return
	}
	defer f.Close()

	if _, err := f.WriteString(entry); err != nil {
		slog.Warn("failed to write operations log entry", "path", l.path, "error", err)
	}
}

// Recent returns up to count entries, newest first. A missing log file
// yields no entries. Lines that do not split into timestamp, operation
// and details are skipped; the details field may itself contain commas.
func (l *Logger) Recent(count int) ([]Entry, error) {
	f, err := os.Open(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", l.path, err)
	}
	defer f.Close()

	var entries []Entry

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		parts := strings.SplitN(scanner.Text(), ",", 3)
		if len(parts) < 3 {
			continue
		}

		entries = append(entries, Entry{Timestamp: parts[0], Operation: parts[1], Details: parts[2]})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", l.path, err)
	}

	if count >= 0 && len(entries) > count {
		entries = entries[len(entries)-count:]
	}

	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}

	return entries, nil
}
