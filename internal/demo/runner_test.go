package demo

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"testing"

	"github.com/lmittmann/tint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdva/split"
)

func newTestRunner(t *testing.T, params split.Params, buf *bytes.Buffer) *Runner {
	t.Helper()
	logger := slog.New(tint.NewHandler(buf, &tint.Options{Level: slog.LevelDebug, NoColor: true}))
	r, err := NewRunner(params, DefaultTolerance, logger)
	require.NoError(t, err)
	return r
}

func TestNewRunner(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		params split.Params
		tol    float64
		err    error
	}{
		{split.DefaultParams(), DefaultTolerance, nil},
		{split.DefaultParams(), 0, nil},
		{split.DefaultParams(), -1, ErrBadTolerance},
		{split.DefaultParams(), math.NaN(), ErrBadTolerance},
		{split.Params{}, DefaultTolerance, split.ErrInvalidParams},
		{split.DefaultParams().WithGamma(-2), DefaultTolerance, split.ErrInvalidParams},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			r, err := NewRunner(test.params, test.tol, nil)
			if test.err == nil {
				a.NoError(err)
				a.NotNil(r)
			} else {
				a.True(errors.Is(err, test.err), "%v", err)
				a.Nil(r)
			}
		})
	}
}

func TestRunDefault(t *testing.T) {
	a := assert.New(t)
	var buf bytes.Buffer
	scenarios := Scenarios()
	report := newTestRunner(t, split.DefaultParams(), &buf).Run(scenarios)

	a.True(report.OK())
	a.Equal(len(scenarios), report.Passed)
	a.Equal(0, report.Failed)
	a.Equal(split.DefaultParams(), report.Params)
	a.Equal(DefaultTolerance, report.Tolerance)
	require.Len(t, report.Results, len(scenarios))
	for i, res := range report.Results {
		a.Equal(scenarios[i].Name, res.Name)
		a.True(res.Passed, res.Name)
		a.Empty(res.Err)
		a.Equal(res.Expected.Magnitude, res.Got.Magnitude)
	}
	a.Equal(1e-12, report.Results[5].Tolerance)
	a.Equal(DefaultTolerance, report.Results[0].Tolerance)

	logs := buf.String()
	a.Contains(logs, "DBG check")
	a.Contains(logs, "name=addition")
	a.Contains(logs, "passed=true")
}

func TestRunGamma(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		gamma          float64
		passed, failed int
		failures       []string
	}{
		{0, 5, 3, []string{"addition", "subtraction", "additive identity"}},
		{1, 8, 0, nil},
		{2, 6, 2, []string{"addition", "subtraction"}},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			var buf bytes.Buffer
			report := newTestRunner(t, split.DefaultParams().WithGamma(test.gamma), &buf).Run(Scenarios())
			a.Equal(test.passed, report.Passed)
			a.Equal(test.failed, report.Failed)
			a.Equal(test.failed == 0, report.OK())
			var failures []string
			for _, res := range report.Results {
				if !res.Passed {
					failures = append(failures, res.Name)
				}
			}
			a.Equal(test.failures, failures)
		})
	}
}

func TestRunDivisionByZero(t *testing.T) {
	a := assert.New(t)
	var buf bytes.Buffer
	report := newTestRunner(t, split.DefaultParams(), &buf).Run([]Scenario{
		{Name: "by zero", Op: OpDiv, X: split.New(1, 0.5), Y: split.New(0, 0.5), Expected: split.New(1, 0)},
		{Name: "unknown", Op: Op("pow"), X: split.New(1, 0.5), Y: split.New(2, 0.5)},
	})
	a.False(report.OK())
	a.Equal(2, report.Failed)
	a.Equal("division by zero", report.Results[0].Err)
	a.Equal(`unknown op "pow"`, report.Results[1].Err)
	a.Contains(buf.String(), "check failed")
}

func TestOpApply(t *testing.T) {
	a := assert.New(t)
	p := split.DefaultParams()
	x, y := split.New(9, 0.9), split.New(3, 0.5)
	tests := []struct {
		op     Op
		symbol string
		result split.Number
	}{
		{OpAdd, "oplus", p.Add(x, y)},
		{OpSub, "ominus", p.Sub(x, y)},
		{OpMul, "otimes", p.Mul(x, y)},
		{OpDiv, "odiv", x.MustDiv(y)},
	}
	for _, test := range tests {
		t.Run(string(test.op), func(t *testing.T) {
			res, err := test.op.Apply(p, x, y)
			if a.NoError(err) {
				a.Equal(test.result, res)
			}
			a.Equal(test.symbol, test.op.Symbol())
		})
	}
	a.Equal("pow", Op("pow").Symbol())
}
