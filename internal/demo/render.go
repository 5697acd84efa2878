package demo

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/avdva/split"
)

// Report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

const (
	magnitudePlaces = 6
	alignmentPlaces = 3
)

// Formats lists the supported report formats.
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// ValidFormat checks if the format is one of Formats.
func ValidFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// Render writes the report to w in the given format.
func Render(w io.Writer, report Report, format string) error {
	switch format {
	case FormatText:
		return renderText(w, report)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func renderText(w io.Writer, report Report) error {
	p := report.Params
	if _, err := fmt.Fprintf(w, "params: epsilon=%v guard=%v gamma=%v tolerance=%v\n",
		p.ClampEpsilon, p.ZeroWeightGuard, p.Gamma, report.Tolerance); err != nil {
		return err
	}
	for _, res := range report.Results {
		if _, err := fmt.Fprintf(w, "%s: %s %s %s -> %s\n", res.Name, res.X, res.Op.Symbol(), res.Y, resultLine(res)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d passed, %d failed\n", report.Passed, report.Failed)
	return err
}

func resultLine(res Result) string {
	switch {
	case res.Err != "":
		return "error: " + res.Err + " FAIL"
	case res.Passed:
		return display(res.Got) + " ok"
	default:
		return fmt.Sprintf("%s FAIL: want %s within %v", display(res.Got), res.Expected, res.Tolerance)
	}
}

// display formats a number the way results are printed: the magnitude
// rounded to 6 decimal places, the alignment to exactly 3.
func display(n split.Number) string {
	for _, f := range []float64{n.Magnitude, n.Alignment} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return n.String()
		}
	}
	m := decimal.NewFromFloat(n.Magnitude).Round(magnitudePlaces).String()
	a := decimal.NewFromFloat(n.Alignment).StringFixed(alignmentPlaces)
	return "(" + m + ", " + a + ")"
}
