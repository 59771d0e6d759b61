package ruleset

import (
	"fmt"
	"strings"

	"github.com/pastrylab/equilibra/pkg/errors"
)

// Category describes one recipe class and the target ranges a balanced
// recipe of that class must satisfy. Metrics without a range are
// unconstrained and never evaluated for recipes of this category.
type Category struct {
	// Name is the unique identifier recipes reference.
	Name string `json:"name" yaml:"name"`

	// Description is optional free text shown when browsing categories.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Ranges maps each constrained metric to its closed target interval.
	Ranges map[Metric]Range `json:"ranges,omitempty" yaml:"ranges,omitempty"`
}

// Range returns the target range for the metric and whether the
// category constrains it.
func (c *Category) Range(m Metric) (Range, bool) {
	r, ok := c.Ranges[m]
	return r, ok
}

// Constrains reports whether the category has a target range for the metric.
func (c *Category) Constrains(m Metric) bool {
	_, ok := c.Ranges[m]
	return ok
}

// ConstrainedMetrics returns the constrained metrics in canonical
// evaluation order.
func (c *Category) ConstrainedMetrics() []Metric {
	out := make([]Metric, 0, len(c.Ranges))
	for _, m := range Metrics() {
		if c.Constrains(m) {
			out = append(out, m)
		}
	}
	return out
}

// Validate checks the category entry for load-time consistency:
// non-empty name, canonical metric keys, and well-formed ranges.
func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New(errors.ErrCodeInvalidCategoryEntry,
			"category name cannot be empty")
	}
	for m, r := range c.Ranges {
		parsed, err := ParseMetric(string(m))
		if err != nil || parsed != m {
			return errors.NewWithContext(errors.ErrCodeInvalidCategoryEntry,
				fmt.Sprintf("unknown metric %q in category %q", m, c.Name),
				map[string]any{"category": c.Name, "metric": string(m)})
		}
		if err := r.validate(m); err != nil {
			return errors.WrapWithContext(errors.ErrCodeInvalidCategoryEntry,
				fmt.Sprintf("invalid range for metric %q in category %q", m, c.Name),
				err,
				map[string]any{"category": c.Name, "metric": string(m)})
		}
	}
	return nil
}
