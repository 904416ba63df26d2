package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/YuminosukeSato/arules/pkg/errors"
)

// ReadCSV reads a table whose first record is the header.
// Cells are trimmed of surrounding whitespace.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "read csv")
	}
	if len(records) == 0 {
		return nil, errors.NewEmptyInputError("dataset.ReadCSV", 0, 0)
	}
	header := trimAll(records[0])
	rows := make([][]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		rows = append(rows, trimAll(rec))
	}
	return NewTable(header, rows)
}

// ReadHeaderless reads a CSV without a header row, naming columns from names.
func ReadHeaderless(r io.Reader, names []string) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(names)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "read csv")
	}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, trimAll(rec))
	}
	return NewTable(names, rows)
}

// LoadCSV reads a headed CSV file.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()
	return ReadCSV(f)
}

// WriteCSV writes t with a header row.
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return errors.Wrap(err, "write csv header")
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return errors.Wrap(err, "write csv rows")
	}
	return nil
}

// SaveCSV writes t to path, replacing any existing file.
func SaveCSV(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := WriteCSV(f, t); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func trimAll(rec []string) []string {
	out := make([]string, len(rec))
	for i, v := range rec {
		out[i] = strings.TrimSpace(v)
	}
	return out
}
