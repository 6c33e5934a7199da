package pipeline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ikenna1414/DS-Midterm-Project/pkg/dataset"
)

func addColumn(name string) Step {
	return StepFunc{Label: "add " + name, Fn: func(ds *dataset.Dataset) (*dataset.Dataset, error) {
		vals := make([]any, ds.Len())
		return ds.WithColumn(name, vals)
	}}
}

func TestRunAppliesStepsInOrder(t *testing.T) {
	ds := dataset.New([]string{"id"}, dataset.Row{"id": 1})
	p := NewPipeline(addColumn("a")).Add(addColumn("b"))

	out, err := p.Run(ds)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "a", "b"}, out.Columns())
	assert.Equal(t, []string{"add a", "add b"}, p.Steps())
}

func TestRunStopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	called := false
	p := NewPipeline(
		StepFunc{Label: "fail", Fn: func(*dataset.Dataset) (*dataset.Dataset, error) { return nil, boom }},
		StepFunc{Label: "never", Fn: func(ds *dataset.Dataset) (*dataset.Dataset, error) {
			called = true
			return ds, nil
		}},
	)

	_, err := p.Run(dataset.New(nil))
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "step fail")
	assert.False(t, called)
}
