package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/pastrylab/equilibra/pkg/analysis"
	"github.com/pastrylab/equilibra/pkg/errors"
	"github.com/pastrylab/equilibra/pkg/ruleset"
	"github.com/pastrylab/equilibra/pkg/serializer"
)

// Separator is the field separator for exported spreadsheets. Spanish
// spreadsheet tools expect semicolons.
const Separator = ';'

var itemHeader = []string{
	"ingrediente", "cantidad_g", "porcentaje",
	"agua_g", "azucares_g", "grasa_g", "otros_solidos_g", "materia_seca_g",
	"pod", "pac", "kcal", "coste",
}

var verdictHeader = []string{
	"metrica", "minimo", "maximo", "valor", "desviacion", "estado",
}

// Write renders the report as a semicolon-separated spreadsheet: one
// row per ingredient, a TOTALES row, and, for validated recipes, a
// verdict section with one row per constrained metric. Values are
// rounded for presentation only; the report itself keeps full
// precision.
func Write(w io.Writer, report *analysis.Report) error {
	if report == nil || report.Composition == nil {
		return errors.New(errors.ErrCodeInvalidRequest, "report cannot be nil")
	}

	cw := csv.NewWriter(w)
	cw.Comma = Separator

	if err := cw.Write(itemHeader); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}

	for _, it := range report.Composition.Items {
		row := []string{
			it.Ingredient,
			f2(it.Quantity.Grams),
			f2(it.Quantity.Percent),
			f2(it.Water.Grams),
			f2(it.Sugars.Grams),
			f2(it.Fat.Grams),
			f2(it.OtherSolids.Grams),
			f2(it.DryMatter.Grams),
			f3(it.POD),
			f3(it.PAC),
			f2(it.Kcal),
			f2(it.Cost),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write export row: %w", err)
		}
	}

	t := report.Composition.Totals
	totals := []string{
		"TOTALES",
		f2(t.Mass),
		f2(100),
		f2(t.Water.Grams),
		f2(t.Sugars.Grams),
		f2(t.Fat.Grams),
		f2(t.OtherSolids.Grams),
		f2(t.DryMatter.Grams),
		f3(t.POD),
		f3(t.PAC),
		f2(t.Kcal),
		f2(t.Cost),
	}
	if err := cw.Write(totals); err != nil {
		return fmt.Errorf("failed to write totals row: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush export: %w", err)
	}

	if report.Validation == nil {
		return nil
	}

	// Blank line between the composition and verdict sections.
	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("failed to write export separator: %w", err)
	}

	if err := cw.Write(verdictHeader); err != nil {
		return fmt.Errorf("failed to write verdict header: %w", err)
	}
	for _, mv := range report.Validation.Results {
		row := []string{
			mv.Metric.String(),
			formatMetric(mv.Metric, mv.Target.Min),
			formatMetric(mv.Metric, mv.Target.Max),
			formatMetric(mv.Metric, mv.Actual),
			formatMetric(mv.Metric, mv.Deviation),
			string(mv.Status),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write verdict row: %w", err)
		}
	}

	summary := []string{
		"estado_general",
		report.Validation.Category,
		strconv.Itoa(report.Validation.Summary.Passed),
		strconv.Itoa(report.Validation.Summary.Warnings),
		strconv.Itoa(report.Validation.Summary.Failed),
		string(report.Validation.Summary.Status),
	}
	if err := cw.Write(summary); err != nil {
		return fmt.Errorf("failed to write summary row: %w", err)
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush export: %w", err)
	}
	return nil
}

// WriteFile renders the report to a spreadsheet file.
func WriteFile(path string, report *analysis.Report) error {
	var buf bytes.Buffer
	if err := Write(&buf, report); err != nil {
		return err
	}
	return serializer.WriteToFile(path, buf.Bytes())
}

// f2 formats presentation values with two decimals.
func f2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// f3 formats the sucrose-scale coefficients with three decimals.
func f3(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// formatMetric picks the precision by metric family: percentages and
// caloric density read best with two decimals, pod and pac with three.
func formatMetric(m ruleset.Metric, v float64) string {
	if m.IsPercentage() || m == ruleset.MetricKcal {
		return f2(v)
	}
	return f3(v)
}
