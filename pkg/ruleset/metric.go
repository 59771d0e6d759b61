package ruleset

import (
	"fmt"
	"strings"
)

// Metric identifies one computed composition quantity that a category
// may constrain.
type Metric string

// Metric constants for all constrainable quantities.
const (
	MetricWater     Metric = "water"
	MetricSugars    Metric = "sugars"
	MetricFat       Metric = "fat"
	MetricDryMatter Metric = "dry_matter"
	MetricPOD       Metric = "pod"
	MetricPAC       Metric = "pac"
	MetricKcal      Metric = "kcal_per_100"
)

// Metrics returns all metrics in canonical evaluation order: the mass
// percentages first, then the sucrose-equivalent indices, then caloric
// density. Validation results list verdicts in this order.
func Metrics() []Metric {
	return []Metric{
		MetricWater,
		MetricSugars,
		MetricFat,
		MetricDryMatter,
		MetricPOD,
		MetricPAC,
		MetricKcal,
	}
}

// ParseMetric parses a string into a Metric. A few common spellings are
// accepted as aliases; anything else is an error.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "water":
		return MetricWater, nil
	case "sugars", "sugar":
		return MetricSugars, nil
	case "fat":
		return MetricFat, nil
	case "dry_matter", "dry-matter", "drymatter":
		return MetricDryMatter, nil
	case "pod":
		return MetricPOD, nil
	case "pac":
		return MetricPAC, nil
	case "kcal_per_100", "kcal":
		return MetricKcal, nil
	default:
		return "", fmt.Errorf("invalid metric: %s", s)
	}
}

// String returns the canonical metric identifier.
func (m Metric) String() string {
	return string(m)
}

// IsPercentage reports whether the metric is expressed in percentage
// points of total recipe mass. POD and PAC use the sucrose-equivalent
// index scale and kcal_per_100 uses caloric density per 100 mass units.
func (m Metric) IsPercentage() bool {
	switch m {
	case MetricWater, MetricSugars, MetricFat, MetricDryMatter:
		return true
	default:
		return false
	}
}
