// Copyright (c) 2026, Pastrylab.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package validator

import (
	"github.com/pastrylab/equilibra/pkg/ruleset"
)

// ValidationStatus represents the overall balance outcome.
type ValidationStatus string

const (
	// ValidationStatusBalanced indicates every constrained metric sits
	// inside its target range.
	ValidationStatusBalanced ValidationStatus = "balanced"

	// ValidationStatusWarning indicates no failures but at least one
	// metric landed in the near-miss margin outside its range.
	ValidationStatusWarning ValidationStatus = "warning"

	// ValidationStatusUnbalanced indicates one or more metrics failed.
	ValidationStatusUnbalanced ValidationStatus = "unbalanced"
)

// MetricStatus represents the outcome of evaluating a single metric.
type MetricStatus string

const (
	// MetricStatusPassed indicates the value is inside the target range.
	MetricStatusPassed MetricStatus = "passed"

	// MetricStatusWarning indicates the value is outside the range but
	// within the near-miss margin.
	MetricStatusWarning MetricStatus = "warning"

	// MetricStatusFailed indicates the value is clearly out of range.
	MetricStatusFailed MetricStatus = "failed"
)

// ValidationResult represents the complete balance verdict for one
// recipe composition against one category.
type ValidationResult struct {
	// Category is the ruleset category the composition was scored against.
	Category string `json:"category" yaml:"category"`

	// Summary contains aggregate verdict statistics.
	Summary ValidationSummary `json:"summary" yaml:"summary"`

	// Results contains per-metric details, in canonical metric order.
	Results []MetricValidation `json:"results" yaml:"results"`
}

// ValidationSummary contains aggregate statistics about the verdict.
type ValidationSummary struct {
	// Passed is the count of metrics inside their target range.
	Passed int `json:"passed" yaml:"passed"`

	// Warnings is the count of near-miss metrics.
	Warnings int `json:"warnings" yaml:"warnings"`

	// Failed is the count of metrics clearly out of range.
	Failed int `json:"failed" yaml:"failed"`

	// Total is the number of metrics the category constrains.
	Total int `json:"total" yaml:"total"`

	// Balanced is true only when every constrained metric passed.
	// Warnings leave a recipe unbalanced.
	Balanced bool `json:"balanced" yaml:"balanced"`

	// Status is the overall outcome for display.
	Status ValidationStatus `json:"status" yaml:"status"`
}

// MetricValidation represents the verdict for a single metric.
type MetricValidation struct {
	// Metric is the balance metric that was evaluated.
	Metric ruleset.Metric `json:"metric" yaml:"metric"`

	// Target is the category's inclusive range for this metric.
	Target ruleset.Range `json:"target" yaml:"target"`

	// Actual is the computed composition value.
	Actual float64 `json:"actual" yaml:"actual"`

	// Deviation is the distance to the nearest bound, zero inside the range.
	Deviation float64 `json:"deviation,omitempty" yaml:"deviation,omitempty"`

	// Status is the outcome of this metric evaluation.
	Status MetricStatus `json:"status" yaml:"status"`

	// Message provides context for warnings and failures.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// NewValidationResult creates a new ValidationResult with initialized slices.
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		Results: make([]MetricValidation, 0),
	}
}
