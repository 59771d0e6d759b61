/*
Copyright © 2026 Pastrylab
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"fmt"
	"log/slog"

	"github.com/pastrylab/equilibra/pkg/composition"
	"github.com/pastrylab/equilibra/pkg/errors"
	"github.com/pastrylab/equilibra/pkg/ruleset"
)

// NearMissFraction is the share of a range's span treated as warning
// margin: values outside the range by at most this much of the span
// are reported as warnings instead of failures.
const NearMissFraction = 0.15

// Validate scores a computed composition against a category's target
// ranges. Metrics the category does not constrain are omitted from the
// result. Validation is a pure read; calling it twice with the same
// inputs yields the same verdict.
func Validate(comp *composition.CompositionResult, category *ruleset.Category) (*ValidationResult, error) {
	if comp == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "composition cannot be nil")
	}
	if category == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "category cannot be nil")
	}

	result := NewValidationResult()
	result.Category = category.Name

	for _, m := range category.ConstrainedMetrics() {
		target, ok := category.Range(m)
		if !ok {
			continue
		}
		actual, ok := comp.MetricValue(m)
		if !ok {
			continue
		}

		mv := evaluateMetric(m, target, actual)
		result.Results = append(result.Results, mv)

		switch mv.Status {
		case MetricStatusPassed:
			result.Summary.Passed++
		case MetricStatusWarning:
			result.Summary.Warnings++
		case MetricStatusFailed:
			result.Summary.Failed++
		}
	}

	result.Summary.Total = len(result.Results)
	result.Summary.Balanced = result.Summary.Failed == 0 && result.Summary.Warnings == 0

	switch {
	case result.Summary.Failed > 0:
		result.Summary.Status = ValidationStatusUnbalanced
	case result.Summary.Warnings > 0:
		result.Summary.Status = ValidationStatusWarning
	default:
		result.Summary.Status = ValidationStatusBalanced
	}

	slog.Debug("validation completed",
		"category", category.Name,
		"passed", result.Summary.Passed,
		"warnings", result.Summary.Warnings,
		"failed", result.Summary.Failed,
		"status", result.Summary.Status)

	return result, nil
}

// evaluateMetric scores one metric value against its target range.
func evaluateMetric(m ruleset.Metric, target ruleset.Range, actual float64) MetricValidation {
	mv := MetricValidation{
		Metric: m,
		Target: target,
		Actual: actual,
	}

	if target.Contains(actual) {
		mv.Status = MetricStatusPassed
		slog.Debug("metric passed", "metric", m, "target", target.String(), "actual", actual)
		return mv
	}

	mv.Deviation = target.Deviation(actual)

	// Zero-span ranges get a zero margin, so any miss is a failure.
	if mv.Deviation <= NearMissFraction*target.Span() {
		mv.Status = MetricStatusWarning
		mv.Message = fmt.Sprintf("expected %s, got %g (near miss)", target.String(), actual)
		slog.Debug("metric near miss",
			"metric", m, "target", target.String(), "actual", actual, "deviation", mv.Deviation)
		return mv
	}

	mv.Status = MetricStatusFailed
	mv.Message = fmt.Sprintf("expected %s, got %g", target.String(), actual)
	slog.Debug("metric failed",
		"metric", m, "target", target.String(), "actual", actual, "deviation", mv.Deviation)
	return mv
}
