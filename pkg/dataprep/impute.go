package dataprep

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"

	"github.com/Ikenna1414/DS-Midterm-Project/pkg/dataset"
	"github.com/Ikenna1414/DS-Midterm-Project/pkg/stats"
)

// FillMissingWithMean replaces missing cells of each named column with the
// mean of that column's numeric cells. Numbers and numeric strings count
// toward the mean and are stored back as float64, so a filled column holds
// one numeric type; other non-missing cells are left as they are. A column
// with no numeric cell is left unchanged.
//
// All names are checked before anything is copied. The input is not
// modified.
func FillMissingWithMean(ds *dataset.Dataset, columns ...string) (*dataset.Dataset, error) {
	for _, c := range columns {
		if !ds.HasColumn(c) {
			return nil, &dataset.MissingColumnError{Column: c}
		}
	}

	out := ds.Clone()
	for _, c := range columns {
		var nums []float64
		var missing []int
		for i := range out.Len() {
			v := out.Value(i, c)
			if dataset.IsMissing(v) {
				missing = append(missing, i)
				continue
			}
			if f, ok := numeric(v); ok {
				nums = append(nums, f)
				out.Set(i, c, f)
			}
		}
		if len(nums) == 0 || len(missing) == 0 {
			continue
		}

		mean := stats.Mean(nums)
		for _, i := range missing {
			out.Set(i, c, mean)
		}
		log.Debug().Str("column", c).Float64("mean", mean).
			Int("filled", len(missing)).Msg("imputed missing values with mean")
	}
	return out, nil
}

// numeric coerces numbers and numeric strings. Booleans and empty strings
// are not numeric here even though cast would convert them.
func numeric(v any) (float64, bool) {
	switch x := v.(type) {
	case bool:
		return 0, false
	case string:
		if x == "" {
			return 0, false
		}
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, false
	}
	return f, true
}
