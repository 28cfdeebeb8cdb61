// Package tabular reads the two source datasets from XLSX or CSV into
// in-memory tables and maps them onto the domain input types. Schema
// problems (missing required columns) fail the whole run; per-cell anomalies
// are left to downstream components.
package tabular

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-faster/errors"
	"github.com/xuri/excelize/v2"
)

// ErrMissingColumn is wrapped with table and column context by
// Table.Require. Callers classify schema failures with errors.Is.
var ErrMissingColumn = errors.New("missing required column")

// Table is one sheet of named columns. The first source row is the header;
// header names are trimmed. Cell lookups outside a row's width return "".
type Table struct {
	name   string
	header []string
	index  map[string]int
	rows   [][]string
}

func NewTable(name string, header []string, rows [][]string) *Table {
	index := make(map[string]int, len(header))
	trimmed := make([]string, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		trimmed[i] = h
		if _, ok := index[h]; !ok {
			index[h] = i
		}
	}
	return &Table{name: name, header: trimmed, index: index, rows: rows}
}

func (t *Table) Name() string { return t.name }
func (t *Table) Len() int     { return len(t.rows) }

// Require fails fast when any of the named columns is absent.
func (t *Table) Require(columns ...string) error {
	for _, col := range columns {
		if _, ok := t.index[col]; !ok {
			return errors.Wrapf(ErrMissingColumn, "%s: %q", t.name, col)
		}
	}
	return nil
}

// Cell returns the raw cell text at (row, column), "" when the row is
// shorter than the column position or the column is unknown.
func (t *Table) Cell(row int, column string) string {
	col, ok := t.index[column]
	if !ok || row < 0 || row >= len(t.rows) {
		return ""
	}
	cells := t.rows[row]
	if col >= len(cells) {
		return ""
	}
	return cells[col]
}

// ReadXLSX reads the first sheet of an XLSX workbook.
func ReadXLSX(r io.Reader, name string) (*Table, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrapf(err, "open workbook %s", name)
	}
	defer func() { _ = wb.Close() }()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.Errorf("workbook %s has no sheets", name)
	}
	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrapf(err, "read sheet %s of %s", sheets[0], name)
	}
	if len(rows) == 0 {
		return nil, errors.Errorf("%s: missing header row", name)
	}
	return NewTable(name, rows[0], rows[1:]), nil
}

// ReadCSV reads a comma-separated table, tolerating a UTF-8 BOM and ragged
// row widths.
func ReadCSV(r io.Reader, name string) (*Table, error) {
	br := stripUTF8BOM(bufio.NewReader(r))
	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = false

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "read csv %s", name)
	}
	if len(records) == 0 {
		return nil, errors.Errorf("%s: missing header row", name)
	}
	return NewTable(name, records[0], records[1:]), nil
}

// ReadFile dispatches on the file extension: .csv goes through the CSV
// reader, everything else is treated as an XLSX workbook.
func ReadFile(path, name string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer func() { _ = f.Close() }()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return ReadCSV(f, name)
	}
	return ReadXLSX(f, name)
}

func stripUTF8BOM(r *bufio.Reader) *bufio.Reader {
	b, err := r.Peek(3)
	if err == nil && len(b) == 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		_, _ = r.Discard(3)
	}
	return r
}
