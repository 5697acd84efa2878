package demo

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/avdva/split"
)

func defaultReport(t *testing.T) Report {
	t.Helper()
	r, err := NewRunner(split.DefaultParams(), DefaultTolerance, nil)
	require.NoError(t, err)
	return r.Run(Scenarios())
}

func TestRenderTextGolden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, defaultReport(t), FormatText))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "default", buf.Bytes())
}

func TestRenderTextFailures(t *testing.T) {
	a := assert.New(t)
	r, err := NewRunner(split.DefaultParams().WithGamma(2), DefaultTolerance, nil)
	require.NoError(t, err)
	report := r.Run(Scenarios()[:1])
	report.Results = append(report.Results, Result{Name: "by zero", Op: OpDiv, X: split.New(1, 0), Y: split.New(0, 0), Err: "division by zero"})
	report.Failed++

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, report, FormatText))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	a.Equal("params: epsilon=1e-06 guard=1e-12 gamma=2 tolerance=0.001", lines[0])
	a.Equal("addition: (10, 0.8) oplus (5, -0.6) -> (15, 0.629) FAIL: want (15, 0.463) within 0.001", lines[1])
	a.Equal("by zero: (1, 0) odiv (0, 0) -> error: division by zero FAIL", lines[2])
	a.Equal("0 passed, 2 failed", lines[3])
}

func TestRenderJSON(t *testing.T) {
	a := assert.New(t)
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, defaultReport(t), FormatJSON))

	var decoded struct {
		Params  map[string]float64 `json:"params"`
		Results []struct {
			Name   string             `json:"name"`
			Op     string             `json:"op"`
			Got    map[string]float64 `json:"got"`
			Passed bool               `json:"passed"`
			Err    *string            `json:"error"`
		} `json:"results"`
		Passed int `json:"passed"`
		Failed int `json:"failed"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	a.Equal(8, decoded.Passed)
	a.Equal(0, decoded.Failed)
	a.Equal(map[string]float64{"clamp_epsilon": 1e-6, "zero_weight_guard": 1e-12, "gamma": 1}, decoded.Params)
	require.Len(t, decoded.Results, 8)
	a.Equal("addition", decoded.Results[0].Name)
	a.Equal("add", decoded.Results[0].Op)
	a.Equal(15.0, decoded.Results[0].Got["m"])
	a.InDelta(0.463, decoded.Results[0].Got["a"], 1e-3)
	a.Nil(decoded.Results[0].Err)
}

func TestRenderYAML(t *testing.T) {
	a := assert.New(t)
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, defaultReport(t), FormatYAML))
	a.Contains(buf.String(), "clamp_epsilon: 1e-06")
	a.Contains(buf.String(), "- name: multiplication")

	var decoded struct {
		Tolerance float64 `yaml:"tolerance"`
		Results   []struct {
			Name string `yaml:"name"`
			X    struct {
				M float64 `yaml:"m"`
				A float64 `yaml:"a"`
			} `yaml:"x"`
		} `yaml:"results"`
		Passed int `yaml:"passed"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	a.Equal(DefaultTolerance, decoded.Tolerance)
	a.Equal(8, decoded.Passed)
	require.Len(t, decoded.Results, 8)
	a.Equal("subtraction", decoded.Results[1].Name)
	a.Equal(12.0, decoded.Results[1].X.M)
	a.Equal(0.7, decoded.Results[1].X.A)
}

func TestRenderUnknownFormat(t *testing.T) {
	a := assert.New(t)
	var buf bytes.Buffer
	a.EqualError(Render(&buf, Report{}, "xml"), `unknown format "xml"`)
	a.True(ValidFormat(FormatYAML))
	a.False(ValidFormat("xml"))
}
