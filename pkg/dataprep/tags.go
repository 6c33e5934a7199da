package dataprep

import (
	"sort"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/Ikenna1414/DS-Midterm-Project/pkg/dataset"
)

// TagKind classifies the content of a tags cell.
type TagKind int

const (
	TagsMissing TagKind = iota
	TagsSequence
	TagsOther
)

func (k TagKind) String() string {
	switch k {
	case TagsMissing:
		return "missing"
	case TagsSequence:
		return "sequence"
	default:
		return "other"
	}
}

// TagCell is a tags cell after classification. Tags is only set for
// TagsSequence.
type TagCell struct {
	Kind TagKind
	Tags []string
}

// ClassifyTagCell sorts a raw cell value into missing, a sequence of tag
// strings, or anything else.
func ClassifyTagCell(v any) TagCell {
	if dataset.IsMissing(v) {
		return TagCell{Kind: TagsMissing}
	}
	switch x := v.(type) {
	case []string:
		return TagCell{Kind: TagsSequence, Tags: x}
	case []any:
		tags := make([]string, len(x))
		for i, e := range x {
			s, ok := e.(string)
			if !ok {
				return TagCell{Kind: TagsOther}
			}
			tags[i] = s
		}
		return TagCell{Kind: TagsSequence, Tags: tags}
	}
	return TagCell{Kind: TagsOther}
}

// TagOptions configures tag counting and indicator encoding.
type TagOptions struct {
	// Column holding the per-row tag lists.
	Column string
	// Prefix is prepended to a tag to name its indicator column.
	Prefix string
	// MinCount is the frequency a tag needs to get an indicator column.
	MinCount int
	// Strict rejects cells that are neither missing nor tag lists instead
	// of counting them as empty.
	Strict bool
}

// DefaultTagOptions encodes every observed tag of the "tags" column.
func DefaultTagOptions() TagOptions {
	return TagOptions{Column: "tags", Prefix: "tag_", MinCount: 1}
}

// TagCounts maps a tag to the number of times it occurs across all rows.
type TagCounts map[string]int

// TagCount is one entry of a ranked frequency table.
type TagCount struct {
	Tag   string
	Count int
}

// Total returns the number of counted tag occurrences.
func (c TagCounts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Common returns the tags seen at least threshold times, sorted by tag.
func (c TagCounts) Common(threshold int) []string {
	out := make([]string, 0, len(c))
	for tag, n := range c {
		if n >= threshold {
			out = append(out, tag)
		}
	}
	sort.Strings(out)
	return out
}

// Ranked returns the table ordered by count descending, then tag.
func (c TagCounts) Ranked() []TagCount {
	out := make([]TagCount, 0, len(c))
	for tag, n := range c {
		out = append(out, TagCount{Tag: tag, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	return out
}

// CountTags counts every tag occurrence in opts.Column. Missing cells
// contribute nothing, and so do malformed cells unless opts.Strict is set.
func CountTags(ds *dataset.Dataset, opts TagOptions) (TagCounts, error) {
	if !ds.HasColumn(opts.Column) {
		return nil, &dataset.MissingColumnError{Column: opts.Column}
	}
	return countRange(ds, opts, 0, ds.Len())
}

// CountTagsParallel splits the rows into at most workers partitions,
// counts them concurrently and sums the partial tables. The result equals
// CountTags.
func CountTagsParallel(ds *dataset.Dataset, opts TagOptions, workers int) (TagCounts, error) {
	if !ds.HasColumn(opts.Column) {
		return nil, &dataset.MissingColumnError{Column: opts.Column}
	}
	n := ds.Len()
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		return countRange(ds, opts, 0, n)
	}

	size := (n + workers - 1) / workers
	partials := make([]TagCounts, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * size
		hi := min(lo+size, n)
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			partials[w], errs[w] = countRange(ds, opts, lo, hi)
		}(w, lo, hi)
	}
	wg.Wait()

	counts := TagCounts{}
	for w := range partials {
		if errs[w] != nil {
			return nil, errs[w]
		}
		for tag, c := range partials[w] {
			counts[tag] += c
		}
	}
	return counts, nil
}

func countRange(ds *dataset.Dataset, opts TagOptions, lo, hi int) (TagCounts, error) {
	counts := TagCounts{}
	for i := lo; i < hi; i++ {
		raw := ds.Value(i, opts.Column)
		cell := ClassifyTagCell(raw)
		switch cell.Kind {
		case TagsMissing:
			continue
		case TagsOther:
			if opts.Strict {
				return nil, &dataset.MalformedCellError{Row: i, Column: opts.Column, Value: raw}
			}
			log.Warn().Int("row", i).Str("column", opts.Column).
				Msgf("treating %T tags cell as empty", raw)
		case TagsSequence:
			for _, tag := range cell.Tags {
				counts[tag]++
			}
		}
	}
	return counts, nil
}

// EncodeCommonTags returns a copy of ds with one 0/1 indicator column per
// tag whose frequency is at least opts.MinCount. Columns are named
// opts.Prefix+tag and appended in tag order. The input is not modified.
//
// Every check runs before the copy is built: a missing tags column, a
// malformed cell in strict mode, or an indicator name that already exists
// fails the call with ds untouched.
func EncodeCommonTags(ds *dataset.Dataset, opts TagOptions) (*dataset.Dataset, error) {
	counts, err := CountTags(ds, opts)
	if err != nil {
		return nil, err
	}
	common := counts.Common(opts.MinCount)
	log.Debug().Int("distinct", len(counts)).Int("common", len(common)).
		Int("min_count", opts.MinCount).Msg("selected common tags")

	if len(common) == 0 {
		return ds.Clone(), nil
	}

	names := make([]string, len(common))
	index := make(map[string]int, len(common))
	values := make([][]any, len(common))
	for j, tag := range common {
		names[j] = opts.Prefix + tag
		index[tag] = j
		values[j] = make([]any, ds.Len())
	}

	for i := range ds.Len() {
		present := make([]bool, len(common))
		if cell := ClassifyTagCell(ds.Value(i, opts.Column)); cell.Kind == TagsSequence {
			for _, tag := range cell.Tags {
				if j, ok := index[tag]; ok {
					present[j] = true
				}
			}
		}
		for j := range common {
			if present[j] {
				values[j][i] = 1
			} else {
				values[j][i] = 0
			}
		}
	}

	return ds.WithColumns(names, values)
}
