package pipeline

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Ikenna1414/DS-Midterm-Project/pkg/dataset"
)

// Step is one dataset transformation.
type Step interface {
	Name() string
	Apply(ds *dataset.Dataset) (*dataset.Dataset, error)
}

// StepFunc adapts a function to Step.
type StepFunc struct {
	Label string
	Fn    func(ds *dataset.Dataset) (*dataset.Dataset, error)
}

func (s StepFunc) Name() string { return s.Label }

func (s StepFunc) Apply(ds *dataset.Dataset) (*dataset.Dataset, error) { return s.Fn(ds) }

// Pipeline chains multiple steps.
type Pipeline struct {
	steps []Step
}

func NewPipeline(steps ...Step) *Pipeline {
	return &Pipeline{steps: steps}
}

// Add appends a step.
func (p *Pipeline) Add(s Step) *Pipeline {
	p.steps = append(p.steps, s)
	return p
}

// Steps returns the step names in run order.
func (p *Pipeline) Steps() []string {
	names := make([]string, len(p.steps))
	for i, s := range p.steps {
		names[i] = s.Name()
	}
	return names
}

// Run applies every step in order and stops at the first failure.
func (p *Pipeline) Run(ds *dataset.Dataset) (*dataset.Dataset, error) {
	for _, step := range p.steps {
		out, err := step.Apply(ds)
		if err != nil {
			return nil, fmt.Errorf("step %s: %w", step.Name(), err)
		}
		ds = out
		log.Debug().Str("step", step.Name()).Int("rows", ds.Len()).
			Int("columns", len(ds.Columns())).Msg("step done")
	}
	return ds, nil
}
