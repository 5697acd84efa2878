package demo

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/avdva/split"
)

// DefaultTolerance is the absolute tolerance for alignments.
const DefaultTolerance = 1e-3

// ErrBadTolerance is returned by NewRunner for negative or not-a-number tolerances.
var ErrBadTolerance = errors.New("tolerance must be a non-negative number")

// Result is the outcome of a single scenario.
type Result struct {
	Name      string       `json:"name" yaml:"name"`
	Op        Op           `json:"op" yaml:"op"`
	X         split.Number `json:"x" yaml:"x"`
	Y         split.Number `json:"y" yaml:"y"`
	Got       split.Number `json:"got" yaml:"got"`
	Expected  split.Number `json:"expected" yaml:"expected"`
	Tolerance float64      `json:"tolerance" yaml:"tolerance"`
	Passed    bool         `json:"passed" yaml:"passed"`
	Err       string       `json:"error,omitempty" yaml:"error,omitempty"`
}

// Report is the outcome of a run.
type Report struct {
	Params    split.Params `json:"params" yaml:"params"`
	Tolerance float64      `json:"tolerance" yaml:"tolerance"`
	Results   []Result     `json:"results" yaml:"results"`
	Passed    int          `json:"passed" yaml:"passed"`
	Failed    int          `json:"failed" yaml:"failed"`
}

// OK returns true, if all checks passed.
func (r Report) OK() bool {
	return r.Failed == 0
}

// Runner evaluates scenarios.
type Runner struct {
	params    split.Params
	tolerance float64
	logger    *slog.Logger
}

// NewRunner returns a new runner.
// If logger is nil, slog.Default() is used.
func NewRunner(params split.Params, tolerance float64, logger *slog.Logger) (*Runner, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if !(tolerance >= 0) {
		return nil, fmt.Errorf("%w: %v", ErrBadTolerance, tolerance)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{params: params, tolerance: tolerance, logger: logger}, nil
}

// Run evaluates all scenarios in order.
func (r *Runner) Run(scenarios []Scenario) Report {
	report := Report{
		Params:    r.params,
		Tolerance: r.tolerance,
		Results:   make([]Result, 0, len(scenarios)),
	}
	for _, sc := range scenarios {
		res := r.check(sc)
		if res.Passed {
			report.Passed++
		} else {
			report.Failed++
		}
		report.Results = append(report.Results, res)
	}
	return report
}

func (r *Runner) check(sc Scenario) Result {
	tol := r.tolerance
	if sc.Tolerance > 0 {
		tol = sc.Tolerance
	}
	res := Result{
		Name:      sc.Name,
		Op:        sc.Op,
		X:         sc.X,
		Y:         sc.Y,
		Expected:  sc.Expected,
		Tolerance: tol,
	}
	got, err := sc.Op.Apply(r.params, sc.X, sc.Y)
	if err != nil {
		res.Err = err.Error()
		r.logger.Debug("check failed", "name", sc.Name, "op", string(sc.Op), "err", err)
		return res
	}
	res.Got = got
	res.Passed = got.Close(sc.Expected, tol)
	r.logger.Debug("check", "name", sc.Name, "op", string(sc.Op), "got", got.String(), "passed", res.Passed)
	return res
}
