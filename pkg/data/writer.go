package data

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/Ikenna1414/DS-Midterm-Project/pkg/dataset"
)

// WriteCSV writes a header row and one record per row. Missing cells are
// empty and tag lists are written as JSON arrays, so ReadCSV gets back the
// same tags whatever characters they contain.
func WriteCSV(w io.Writer, ds *dataset.Dataset) error {
	writer := csv.NewWriter(w)
	columns := ds.Columns()
	if err := writer.Write(columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	record := make([]string, len(columns))
	for i := range ds.Len() {
		for j, c := range columns {
			record[j] = FormatCell(ds.Value(i, c))
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// FormatCell renders one cell for CSV output. Lists become JSON arrays of
// strings, e.g. ["a","b"] and [].
func FormatCell(v any) string {
	if dataset.IsMissing(v) {
		return ""
	}
	switch x := v.(type) {
	case []string:
		return formatList(x)
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = FormatCell(e)
		}
		return formatList(parts)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return s
}

func formatList(tags []string) string {
	if len(tags) == 0 {
		return "[]"
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return fmt.Sprint(tags)
	}
	return string(b)
}

// WriteJSON writes the rows as an array of objects with keys in column
// order. Missing cells are written as null.
func WriteJSON(w io.Writer, ds *dataset.Dataset) error {
	bw := bufio.NewWriter(w)
	columns := ds.Columns()
	keys := make([][]byte, len(columns))
	for j, c := range columns {
		k, err := json.Marshal(c)
		if err != nil {
			return err
		}
		keys[j] = k
	}

	bw.WriteString("[")
	for i := range ds.Len() {
		if i > 0 {
			bw.WriteString(",")
		}
		bw.WriteString("\n  {")
		for j, c := range columns {
			if j > 0 {
				bw.WriteString(", ")
			}
			v := ds.Value(i, c)
			if dataset.IsMissing(v) {
				v = nil
			}
			val, err := json.Marshal(v)
			if err != nil {
				return fmt.Errorf("row %d: column %q: %w", i, c, err)
			}
			bw.Write(keys[j])
			bw.WriteString(": ")
			bw.Write(val)
		}
		bw.WriteString("}")
	}
	if ds.Len() > 0 {
		bw.WriteString("\n")
	}
	bw.WriteString("]\n")
	return bw.Flush()
}

// Save writes ds to a .csv or .json file.
func Save(path string, ds *dataset.Dataset) error {
	var write func(io.Writer) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		write = func(w io.Writer) error { return WriteCSV(w, ds) }
	case ".json":
		write = func(w io.Writer) error { return WriteJSON(w, ds) }
	default:
		return fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := write(out); err != nil {
		out.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return out.Close()
}
