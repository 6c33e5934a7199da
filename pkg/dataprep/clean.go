package dataprep

import (
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/Ikenna1414/DS-Midterm-Project/pkg/dataset"
)

// DropColumns removes the named columns. Names not in the dataset are
// ignored.
func DropColumns(ds *dataset.Dataset, names ...string) *dataset.Dataset {
	return ds.Drop(names...)
}

// MissingRatio returns the fraction of rows whose cell in col is missing.
// An empty dataset has ratio 0.
func MissingRatio(ds *dataset.Dataset, col string) float64 {
	if ds.Len() == 0 {
		return 0
	}
	missing := 0
	for i := range ds.Len() {
		if dataset.IsMissing(ds.Value(i, col)) {
			missing++
		}
	}
	return float64(missing) / float64(ds.Len())
}

// DropAllNullColumns removes every column in which all cells are missing,
// except the columns named in keep. A dataset without rows keeps all of
// its columns.
func DropAllNullColumns(ds *dataset.Dataset, keep ...string) *dataset.Dataset {
	return DropSparseColumns(ds, 1, keep...)
}

// DropSparseColumns removes columns whose missing ratio reaches
// maxMissing. Columns named in keep are never removed. DropAllNullColumns
// is the maxMissing = 1 case; a non-positive maxMissing drops nothing.
func DropSparseColumns(ds *dataset.Dataset, maxMissing float64, keep ...string) *dataset.Dataset {
	if ds.Len() == 0 || maxMissing <= 0 {
		return ds.Clone()
	}
	var drop []string
	for _, c := range ds.Columns() {
		if slices.Contains(keep, c) {
			continue
		}
		ratio := MissingRatio(ds, c)
		if ratio >= maxMissing {
			log.Debug().Str("column", c).Float64("missing", ratio*100).Msg("dropping column")
			drop = append(drop, c)
		}
	}
	return ds.Drop(drop...)
}
