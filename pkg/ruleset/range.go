package ruleset

import (
	"fmt"
	"math"
)

// Range is a closed target interval. Both bounds are inclusive: a value
// equal to Min or Max is inside the range.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Contains reports whether v lies within [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Span returns the width of the interval.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Deviation returns the distance from v to the nearest bound when v
// lies outside the range, and 0 when the range contains v.
func (r Range) Deviation(v float64) float64 {
	switch {
	case v < r.Min:
		return r.Min - v
	case v > r.Max:
		return v - r.Max
	default:
		return 0
	}
}

// String returns a human-readable representation, e.g. "[22, 32]".
func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r.Min, r.Max)
}

// validate checks the bounds for the given metric. Percentage metrics
// must stay within [0, 100]; every metric requires finite,
// non-negative, ordered bounds.
func (r Range) validate(m Metric) error {
	if math.IsNaN(r.Min) || math.IsInf(r.Min, 0) ||
		math.IsNaN(r.Max) || math.IsInf(r.Max, 0) {
		return fmt.Errorf("bounds must be finite numbers")
	}
	if r.Min > r.Max {
		return fmt.Errorf("min %g exceeds max %g", r.Min, r.Max)
	}
	if r.Min < 0 {
		return fmt.Errorf("bounds must be non-negative, got %s", r)
	}
	if m.IsPercentage() && r.Max > 100 {
		return fmt.Errorf("percentage bounds cannot exceed 100, got %s", r)
	}
	return nil
}
