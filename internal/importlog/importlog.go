// Package importlog keeps an append-only CSV record of import runs under
// <root>/logs/import-log.csv.
package importlog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
)

// Entry is one imported file.
type Entry struct {
	Timestamp time.Time
	File      string
	Format    string
	Imported  int
	Skipped   int
	Processed bool // moved to the inbox's processed/ directory
}

// Header is the CSV header for import-log.csv.
const Header = "timestamp,file,format,imported,skipped,processed"

const (
	logDir  = "logs"
	logFile = "import-log.csv"
)

type row struct {
	Timestamp string `csv:"timestamp"`
	File      string `csv:"file"`
	Format    string `csv:"format"`
	Imported  int    `csv:"imported"`
	Skipped   int    `csv:"skipped"`
	Processed bool   `csv:"processed"`
}

func toRow(e Entry) row {
	return row{
		Timestamp: e.Timestamp.UTC().Format(time.RFC3339),
		File:      e.File,
		Format:    e.Format,
		Imported:  e.Imported,
		Skipped:   e.Skipped,
		Processed: e.Processed,
	}
}

func fromRow(r row) (Entry, error) {
	ts, err := time.Parse(time.RFC3339, r.Timestamp)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", r.Timestamp, err)
	}
	return Entry{
		Timestamp: ts,
		File:      r.File,
		Format:    r.Format,
		Imported:  r.Imported,
		Skipped:   r.Skipped,
		Processed: r.Processed,
	}, nil
}

// Path returns the log location under root.
func Path(root string) string {
	return filepath.Join(root, logDir, logFile)
}

// Append writes entries to the log, creating the file and header if needed.
func Append(root string, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}
	if err := os.MkdirAll(filepath.Join(root, logDir), 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := Path(root)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening import log: %w", err)
	}
	defer f.Close()

	rows := make([]row, len(entries))
	for i, e := range entries {
		rows[i] = toRow(e)
	}

	if needsHeader {
		err = gocsv.Marshal(rows, f)
	} else {
		err = gocsv.MarshalWithoutHeaders(rows, f)
	}
	if err != nil {
		return fmt.Errorf("writing import log: %w", err)
	}
	return nil
}

// Read returns all entries from the log, or nil if it does not exist.
func Read(root string) ([]Entry, error) {
	f, err := os.Open(Path(root))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening import log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	var rows []row
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading import log CSV: %w", err)
	}

	var entries []Entry
	for i, r := range rows {
		e, err := fromRow(r)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
