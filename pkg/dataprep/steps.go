package dataprep

import (
	"github.com/Ikenna1414/DS-Midterm-Project/pkg/dataset"
	"github.com/Ikenna1414/DS-Midterm-Project/pkg/pipeline"
)

// DropColumnsStep wraps DropColumns.
func DropColumnsStep(names ...string) pipeline.Step {
	return pipeline.StepFunc{Label: "drop-columns", Fn: func(ds *dataset.Dataset) (*dataset.Dataset, error) {
		return DropColumns(ds, names...), nil
	}}
}

// DropAllNullColumnsStep wraps DropAllNullColumns.
func DropAllNullColumnsStep(keep ...string) pipeline.Step {
	return pipeline.StepFunc{Label: "drop-null-columns", Fn: func(ds *dataset.Dataset) (*dataset.Dataset, error) {
		return DropAllNullColumns(ds, keep...), nil
	}}
}

// FillMissingWithMeanStep wraps FillMissingWithMean.
func FillMissingWithMeanStep(columns ...string) pipeline.Step {
	return pipeline.StepFunc{Label: "impute-mean", Fn: func(ds *dataset.Dataset) (*dataset.Dataset, error) {
		return FillMissingWithMean(ds, columns...)
	}}
}

// EncodeCommonTagsStep wraps EncodeCommonTags.
func EncodeCommonTagsStep(opts TagOptions) pipeline.Step {
	return pipeline.StepFunc{Label: "encode-tags", Fn: func(ds *dataset.Dataset) (*dataset.Dataset, error) {
		return EncodeCommonTags(ds, opts)
	}}
}
