package dataset

import "fmt"

// MissingColumnError is returned when a named column is not in the schema.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("column %q not found", e.Column)
}

// ColumnExistsError is returned when an append would shadow a column.
type ColumnExistsError struct {
	Column string
}

func (e *ColumnExistsError) Error() string {
	return fmt.Sprintf("column %q already exists", e.Column)
}

// MalformedCellError describes a tags cell that is neither missing nor a
// sequence of strings.
type MalformedCellError struct {
	Row    int
	Column string
	Value  any
}

func (e *MalformedCellError) Error() string {
	return fmt.Sprintf("row %d: column %q: expected a list of tags, got %T", e.Row, e.Column, e.Value)
}

// LengthMismatchError is returned when an appended column does not have
// one value per row.
type LengthMismatchError struct {
	Column string
	Want   int
	Got    int
}

func (e *LengthMismatchError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("got %d value slices for %d columns", e.Got, e.Want)
	}
	return fmt.Sprintf("column %q: want %d values, got %d", e.Column, e.Want, e.Got)
}
