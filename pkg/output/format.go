// Package output provides utilities for formatting and displaying forecast results.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/iwvelando/sip-forecast/internal/forecast"
	"github.com/iwvelando/sip-forecast/pkg/constants"
	"github.com/iwvelando/sip-forecast/pkg/finance"
	"github.com/iwvelando/sip-forecast/pkg/format"
	"github.com/iwvelando/sip-forecast/pkg/validation"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// Write renders results in the named output format.
func Write(w io.Writer, outputFormat string, results []forecast.Forecast) error {
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	switch outputFormat {
	case constants.OutputFormatCSV:
		return CsvFormat(w, results)
	case constants.OutputFormatJSON:
		return JSONFormat(w, results)
	case constants.OutputFormatYAML:
		return YAMLFormat(w, results)
	default:
		return PrettyFormat(w, results)
	}
}

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(w io.Writer, results []forecast.Forecast) error {
	p := message.NewPrinter(language.English)
	for i, result := range results {
		if i > 0 {
			if _, err := p.Fprintf(w, "\n"); err != nil {
				return err
			}
		}
		if err := prettyScenario(p, w, result); err != nil {
			return err
		}
	}
	return nil
}

func prettyScenario(p *message.Printer, w io.Writer, result forecast.Forecast) error {
	amountLabel := "Monthly investment"
	if result.Mode == finance.ModeLumpsum {
		amountLabel = "Total investment"
	}
	res := result.Result

	lines := []struct {
		format string
		args   []interface{}
	}{
		{"--- Results for scenario %s (%s) ---\n", []interface{}{result.Name, result.Mode}},
		{"%-18s | %s\n", []interface{}{amountLabel, format.Currency(result.Input.Amount)}},
		{"%-18s | %s\n", []interface{}{"Expected return", format.Percent(result.Input.AnnualRatePercent)}},
		{"%-18s | %d years\n", []interface{}{"Time period", result.Input.Years}},
		{"\n", nil},
		{"%-18s | %s\n", []interface{}{InvestedLabel, format.Currency(res.InvestedAmount)}},
		{"%-18s | %s\n", []interface{}{ReturnsLabel, format.Currency(res.EstimatedReturns)}},
		{"%-18s | %s\n", []interface{}{TotalLabel, format.Currency(res.TotalValue)}},
	}
	for _, line := range lines {
		if _, err := p.Fprintf(w, line.format, line.args...); err != nil {
			return err
		}
	}

	slices := DonutSlices(res)
	if _, err := p.Fprintf(w, "Split              | %s %s, %s %s\n\n",
		slices[0].Label, format.Percent(slices[0].Percent),
		slices[1].Label, format.Percent(slices[1].Percent)); err != nil {
		return err
	}

	bars := BarSeries(res)
	max := scaleMax(bars)
	if _, err := p.Fprintf(w, "Year | Invested   | Value      | %s invested, %s returns\n", investedMark, returnsMark); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "____ | __________ | __________ | _____\n"); err != nil {
		return err
	}
	for _, bar := range bars {
		if _, err := p.Fprintf(w, "%-4d | %-10s | %-10s | %s\n", bar.Year, bar.InvestedLabel, bar.ValueLabel, renderBar(bar, max)); err != nil {
			return err
		}
	}
	return nil
}

var csvHeader = []string{"scenario", "mode", "year", "invested", "value", "returns"}

// CsvFormat outputs one comma-separated row per scenario year.
func CsvFormat(w io.Writer, results []forecast.Forecast) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, result := range results {
		for _, point := range result.Result.YearlyData {
			row := []string{
				result.Name,
				string(result.Mode),
				strconv.Itoa(point.Year),
				fixed(point.InvestedTillDate),
				fixed(point.EstimatedValueTillDate),
				fixed(point.EstimatedValueTillDate - point.InvestedTillDate),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// fixed renders an amount with two decimals. Non-finite values, which the
// decimal package cannot represent, fall back to their float spelling.
func fixed(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

// JSONFormat serializes the results as pretty-printed JSON.
func JSONFormat(w io.Writer, results []forecast.Forecast) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode results as json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// YAMLFormat serializes the results as YAML.
func YAMLFormat(w io.Writer, results []forecast.Forecast) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(results); err != nil {
		return fmt.Errorf("failed to encode results as yaml: %w", err)
	}
	return encoder.Close()
}
