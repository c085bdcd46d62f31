package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var (
	// ErrUnknownColumn is returned when a row references a column
	// that is not part of the table schema.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrSchemaMismatch is returned when the header row on disk does
	// not match the table schema.
	ErrSchemaMismatch = errors.New("table header does not match schema")
)

// Row is one record keyed by column name. Missing columns read as "".
type Row map[string]string

// Table is one CSV-backed entity table: a fixed column schema over a
// single RFC-4180 file. All access goes through a mutex, and rewrites
// go through a temp file plus rename, so concurrent readers in the
// same process never observe a torn file. Cross-process writers are
// still unsynchronized; deployment assumes a single service instance.
type Table struct {
	path    string
	columns []string
	mu      sync.RWMutex
}

// NewTable creates a handle for the table file <dir>/<name>.csv.
func NewTable(dir, name string, columns []string) *Table {
	return &Table{
		path:    filepath.Join(dir, name+".csv"),
		columns: columns,
	}
}

// Path returns the backing file path.
func (t *Table) Path() string {
	return t.path
}

// Columns returns the schema column list in header order.
func (t *Table) Columns() []string {
	return t.columns
}

// Ensure creates the backing file with a header-only row if it does
// not exist. Idempotent: an existing file is left untouched.
func (t *Table) Ensure() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ensureLocked()
}

func (t *Table) ensureLocked() error {
	if _, err := os.Stat(t.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(t.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	return t.rewriteLocked(nil)
}

// ReadAll materializes the entire table. Rows shorter than the schema
// are normalized with empty strings for the missing trailing columns.
func (t *Table) ReadAll() ([]Row, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.readLocked()
}

func (t *Table) readLocked() ([]Row, error) {
	f, err := os.Open(t.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", t.path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s has no header", ErrSchemaMismatch, t.path)
	}

	header := records[0]
	if len(header) != len(t.columns) {
		return nil, fmt.Errorf("%w: %s", ErrSchemaMismatch, t.path)
	}
	for i, col := range t.columns {
		if header[i] != col {
			return nil, fmt.Errorf("%w: %s", ErrSchemaMismatch, t.path)
		}
	}

	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(Row, len(t.columns))
		for i, col := range t.columns {
			if i < len(rec) {
				row[col] = rec[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Append persists a single new row at the end of the table. Keys not
// in the schema are rejected; schema columns absent from the row are
// written as empty fields.
func (t *Table) Append(row Row) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	record, err := t.record(row)
	if err != nil {
		return err
	}

	if err := t.ensureLocked(); err != nil {
		return err
	}

	f, err := os.OpenFile(t.path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(record); err != nil {
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Sync()
}

// Update locates the row whose keyCol equals key, overwrites the named
// fields and rewrites the whole table. Returns false when no row
// matches; the file is left untouched in that case.
func (t *Table) Update(keyCol, key string, updates Row) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := t.record(updates); err != nil {
		return false, err
	}

	rows, err := t.readLocked()
	if err != nil {
		return false, err
	}

	found := false
	for _, row := range rows {
		if row[keyCol] != key {
			continue
		}
		for col, val := range updates {
			row[col] = val
		}
		found = true
		break
	}
	if !found {
		return false, nil
	}

	if err := t.rewriteLocked(rows); err != nil {
		return false, err
	}
	return true, nil
}

// record validates the row keys and flattens the row into header order.
func (t *Table) record(row Row) ([]string, error) {
	known := make(map[string]struct{}, len(t.columns))
	for _, col := range t.columns {
		known[col] = struct{}{}
	}
	for col := range row {
		if _, ok := known[col]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, col)
		}
	}

	record := make([]string, len(t.columns))
	for i, col := range t.columns {
		record[i] = row[col]
	}
	return record, nil
}

// rewriteLocked writes header plus rows to a temp file in the same
// directory and renames it over the table file.
func (t *Table) rewriteLocked(rows []Row) error {
	dir := filepath.Dir(t.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(t.path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	w := csv.NewWriter(tmp)
	if err := w.Write(t.columns); err != nil {
		tmp.Close()
		return err
	}
	for _, row := range rows {
		record, err := t.record(row)
		if err != nil {
			tmp.Close()
			return err
		}
		if err := w.Write(record); err != nil {
			tmp.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, t.path)
}
