package ruleset

import (
	"math"
	"testing"
)

func TestRangeContains(t *testing.T) {
	r := Range{Min: 22, Max: 32}

	tests := []struct {
		name  string
		value float64
		want  bool
	}{
		{"inside", 27, true},
		{"equal min", 22, true},
		{"equal max", 32, true},
		{"below", 21.999, false},
		{"above", 32.001, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.value); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestRangeSpan(t *testing.T) {
	if got := (Range{Min: 22, Max: 32}).Span(); got != 10 {
		t.Errorf("Span() = %v, want 10", got)
	}
	if got := (Range{Min: 5, Max: 5}).Span(); got != 0 {
		t.Errorf("Span() = %v, want 0 for a point range", got)
	}
}

func TestRangeDeviation(t *testing.T) {
	r := Range{Min: 18, Max: 25}

	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"inside", 20, 0},
		{"equal min", 18, 0},
		{"equal max", 25, 0},
		{"below", 16, 2},
		{"above", 27.5, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Deviation(tt.value); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Deviation(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestRangeValidate(t *testing.T) {
	tests := []struct {
		name    string
		r       Range
		metric  Metric
		wantErr bool
	}{
		{"valid percentage", Range{Min: 18, Max: 25}, MetricWater, false},
		{"valid point", Range{Min: 5, Max: 5}, MetricFat, false},
		{"valid index", Range{Min: 0.16, Max: 0.20}, MetricPOD, false},
		{"valid kcal above 100", Range{Min: 150, Max: 400}, MetricKcal, false},
		{"min exceeds max", Range{Min: 30, Max: 20}, MetricSugars, true},
		{"negative min", Range{Min: -1, Max: 10}, MetricFat, true},
		{"percentage above 100", Range{Min: 90, Max: 110}, MetricDryMatter, true},
		{"nan bound", Range{Min: math.NaN(), Max: 10}, MetricWater, true},
		{"infinite bound", Range{Min: 0, Max: math.Inf(1)}, MetricPAC, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.validate(tt.metric)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRangeString(t *testing.T) {
	if got := (Range{Min: 22, Max: 32}).String(); got != "[22, 32]" {
		t.Errorf("String() = %q, want %q", got, "[22, 32]")
	}
	if got := (Range{Min: 0.16, Max: 0.2}).String(); got != "[0.16, 0.2]" {
		t.Errorf("String() = %q, want %q", got, "[0.16, 0.2]")
	}
}
