package data

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"

	"github.com/Ikenna1414/DS-Midterm-Project/pkg/dataset"
)

// NaNValues are the CSV cell contents read as missing.
var NaNValues = []string{"", "NA", "NaN", "<nil>"}

// CSVOptions says which column holds tag lists and how they are joined.
type CSVOptions struct {
	TagsColumn   string
	TagDelimiter string
}

// DefaultCSVOptions reads "tags" cells joined by "|".
func DefaultCSVOptions() CSVOptions {
	return CSVOptions{TagsColumn: "tags", TagDelimiter: "|"}
}

// ErrUnsupportedFormat is returned by Load and Save for unknown extensions.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ReadCSV loads a CSV file with a header row. Every cell is kept as a
// string except missing markers, which become nil, and the tags column,
// which is parsed with ParseTags. A header without data rows gives an
// empty dataset with those columns.
func ReadCSV(r io.Reader, opts CSVOptions) (*dataset.Dataset, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	cr := csv.NewReader(bytes.NewReader(raw))
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	if _, err := cr.Read(); errors.Is(err, io.EOF) {
		return dataset.New(header), nil
	} else if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	df := dataframe.ReadCSV(bytes.NewReader(raw),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.NaNValues(NaNValues),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("read csv: %w", df.Err)
	}

	columns := df.Names()
	rows := make([]dataset.Row, df.Nrow())
	for i := range rows {
		rows[i] = make(dataset.Row, len(columns))
	}
	for _, name := range columns {
		col := df.Col(name)
		for i := range rows {
			elem := col.Elem(i)
			if elem.IsNA() {
				rows[i][name] = nil
				continue
			}
			if name == opts.TagsColumn {
				rows[i][name] = ParseTags(elem.String(), opts.TagDelimiter)
				continue
			}
			rows[i][name] = elem.String()
		}
	}
	return dataset.New(columns, rows...), nil
}

// ParseTags splits a tags cell. A bracketed value is read as a list
// literal: a JSON array of strings is taken as is, otherwise entries such
// as ['a', 'b'] are split on commas and unquoted. Anything else is split
// on delim. Blank entries are dropped.
func ParseTags(s, delim string) []string {
	s = strings.TrimSpace(s)
	sep := delim
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		var list []string
		if err := json.Unmarshal([]byte(s), &list); err == nil {
			tags := []string{}
			for _, tag := range list {
				if strings.TrimSpace(tag) != "" {
					tags = append(tags, tag)
				}
			}
			return tags
		}
		s = s[1 : len(s)-1]
		sep = ","
	}

	tags := []string{}
	if sep == "" {
		sep = "|"
	}
	for _, part := range strings.Split(s, sep) {
		part = strings.Trim(strings.TrimSpace(part), `"'`)
		if part != "" {
			tags = append(tags, part)
		}
	}
	return tags
}

// ReadJSON loads a top-level array of objects. Columns are ordered by
// first appearance; JSON null becomes a missing cell and arrays stay
// []any.
func ReadJSON(r io.Reader) (*dataset.Dataset, error) {
	dec := json.NewDecoder(r)
	if err := expectDelim(dec, '['); err != nil {
		return nil, err
	}

	var columns []string
	seen := map[string]struct{}{}
	rows := []dataset.Row{}
	for dec.More() {
		if err := expectDelim(dec, '{'); err != nil {
			return nil, fmt.Errorf("record %d: %w", len(rows), err)
		}
		row := dataset.Row{}
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return nil, fmt.Errorf("record %d: %w", len(rows), err)
			}
			key := tok.(string)
			var v any
			if err := dec.Decode(&v); err != nil {
				return nil, fmt.Errorf("record %d: field %q: %w", len(rows), key, err)
			}
			row[key] = v
			if _, ok := seen[key]; !ok {
				seen[key] = struct{}{}
				columns = append(columns, key)
			}
		}
		if err := expectDelim(dec, '}'); err != nil {
			return nil, fmt.Errorf("record %d: %w", len(rows), err)
		}
		rows = append(rows, row)
	}
	if err := expectDelim(dec, ']'); err != nil {
		return nil, err
	}
	return dataset.New(columns, rows...), nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("read json: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("read json: expected %q, got %v", want, tok)
	}
	return nil
}

// Load reads a .csv or .json file.
func Load(path string, opts CSVOptions) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	var ds *dataset.Dataset
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		ds, err = ReadCSV(f, opts)
	case ".json":
		ds, err = ReadJSON(f)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}
