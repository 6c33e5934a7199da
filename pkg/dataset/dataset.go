package dataset

import (
	"math"
	"slices"
)

// Row maps column name to cell value. A nil value or an absent key is a
// missing cell.
type Row map[string]any

// Dataset is an ordered collection of rows sharing one ordered schema.
type Dataset struct {
	columns []string
	rows    []Row
}

// New builds a dataset from a column list and rows. Row maps are kept as
// given; use Clone before handing the dataset to code that calls Set.
func New(columns []string, rows ...Row) *Dataset {
	cols := make([]string, len(columns))
	copy(cols, columns)
	if rows == nil {
		rows = []Row{}
	}
	return &Dataset{columns: cols, rows: rows}
}

// Columns returns a copy of the column names in schema order.
func (d *Dataset) Columns() []string {
	return slices.Clone(d.columns)
}

// HasColumn reports whether name is part of the schema.
func (d *Dataset) HasColumn(name string) bool {
	return slices.Contains(d.columns, name)
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return len(d.rows) }

// Row returns row i. Callers must not modify it.
func (d *Dataset) Row(i int) Row { return d.rows[i] }

// Value returns the cell at row i, column col (nil when missing).
func (d *Dataset) Value(i int, col string) any {
	return d.rows[i][col]
}

// Set writes a cell in place. It is meant for helpers operating on their
// own Clone.
func (d *Dataset) Set(i int, col string, v any) {
	d.rows[i][col] = v
}

// Column returns the values of one column in row order.
func (d *Dataset) Column(name string) ([]any, error) {
	if !d.HasColumn(name) {
		return nil, &MissingColumnError{Column: name}
	}
	out := make([]any, len(d.rows))
	for i, row := range d.rows {
		out[i] = row[name]
	}
	return out, nil
}

// Clone copies the schema and every row map. Cell values are shared.
func (d *Dataset) Clone() *Dataset {
	rows := make([]Row, len(d.rows))
	for i, row := range d.rows {
		cp := make(Row, len(row))
		for k, v := range row {
			cp[k] = v
		}
		rows[i] = cp
	}
	return &Dataset{columns: d.Columns(), rows: rows}
}

// WithColumn returns a copy of d with one column appended.
func (d *Dataset) WithColumn(name string, values []any) (*Dataset, error) {
	return d.WithColumns([]string{name}, [][]any{values})
}

// WithColumns returns a copy of d with the given columns appended in order.
// All names and lengths are checked before anything is copied, so either
// every column is appended or none is.
func (d *Dataset) WithColumns(names []string, values [][]any) (*Dataset, error) {
	if len(names) != len(values) {
		return nil, &LengthMismatchError{Column: "", Want: len(names), Got: len(values)}
	}
	seen := make(map[string]struct{}, len(names))
	for j, name := range names {
		if _, dup := seen[name]; dup || d.HasColumn(name) {
			return nil, &ColumnExistsError{Column: name}
		}
		seen[name] = struct{}{}
		if len(values[j]) != len(d.rows) {
			return nil, &LengthMismatchError{Column: name, Want: len(d.rows), Got: len(values[j])}
		}
	}

	out := d.Clone()
	out.columns = append(out.columns, names...)
	for j, name := range names {
		for i := range out.rows {
			out.rows[i][name] = values[j][i]
		}
	}
	return out, nil
}

// Drop returns a copy of d without the named columns. Unknown names are
// ignored.
func (d *Dataset) Drop(names ...string) *Dataset {
	out := d.Clone()
	out.columns = slices.DeleteFunc(out.columns, func(c string) bool {
		return slices.Contains(names, c)
	})
	for _, row := range out.rows {
		for _, name := range names {
			delete(row, name)
		}
	}
	return out
}

// IsMissing reports whether v is an absent cell: nil or a float NaN.
func IsMissing(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(x)
	case float32:
		return math.IsNaN(float64(x))
	}
	return false
}
