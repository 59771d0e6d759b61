package catalog

import (
	"fmt"
	"math"
	"strings"

	"github.com/pastrylab/equilibra/pkg/errors"
)

// FractionSumTolerance is the maximum distance from 1.0 allowed for the
// sum of an ingredient's mass fractions.
const FractionSumTolerance = 1e-6

// Ingredient describes one catalog substance through its composition
// per unit of reference mass. Entries are immutable once loaded.
type Ingredient struct {
	// Name is the unique identifier recipes reference. Names are
	// dataset-defined and may carry accents.
	Name string `json:"name" yaml:"name"`

	// Group is an optional display grouping, e.g. "lácteos" or "azúcares".
	Group string `json:"group,omitempty" yaml:"group,omitempty"`

	// Water, Sugars, Fat, and OtherSolids are mass fractions per unit of
	// mass. Together they must sum to 1.0 within FractionSumTolerance.
	Water       float64 `json:"water" yaml:"water"`
	Sugars      float64 `json:"sugars" yaml:"sugars"`
	Fat         float64 `json:"fat" yaml:"fat"`
	OtherSolids float64 `json:"otherSolids" yaml:"otherSolids"`

	// POD is the sweetening power per unit of mass on the sucrose scale
	// (sucrose = 1.0).
	POD float64 `json:"pod" yaml:"pod"`

	// PAC is the anti-freezing power per unit of mass on the sucrose
	// scale. Zero for ingredients with negligible freezing-point effect.
	PAC float64 `json:"pac" yaml:"pac"`

	// KcalPer100 is the caloric density per 100 units of mass.
	KcalPer100 float64 `json:"kcalPer100" yaml:"kcalPer100"`

	// CostPerUnit is the monetary cost per unit of mass.
	CostPerUnit float64 `json:"costPerUnit" yaml:"costPerUnit"`

	// Notes is optional free text about sourcing or usage.
	Notes string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// DryMatter returns the non-water mass fraction.
func (i *Ingredient) DryMatter() float64 {
	return 1 - i.Water
}

// Validate checks the entry for load-time consistency: fractions within
// [0, 1] summing to 1.0, and non-negative coefficients.
func (i *Ingredient) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return errors.New(errors.ErrCodeInvalidCatalogEntry,
			"ingredient name cannot be empty")
	}

	fractions := []struct {
		field string
		value float64
	}{
		{"water", i.Water},
		{"sugars", i.Sugars},
		{"fat", i.Fat},
		{"otherSolids", i.OtherSolids},
	}
	for _, f := range fractions {
		if math.IsNaN(f.value) || f.value < 0 || f.value > 1 {
			return errors.NewWithContext(errors.ErrCodeInvalidCatalogEntry,
				fmt.Sprintf("ingredient %q: fraction %s must be within [0, 1], got %g",
					i.Name, f.field, f.value),
				map[string]any{"ingredient": i.Name, "field": f.field})
		}
	}

	sum := i.Water + i.Sugars + i.Fat + i.OtherSolids
	if math.Abs(sum-1) > FractionSumTolerance {
		return errors.NewWithContext(errors.ErrCodeInvalidCatalogEntry,
			fmt.Sprintf("ingredient %q: mass fractions sum to %g, expected 1.0",
				i.Name, sum),
			map[string]any{"ingredient": i.Name, "sum": sum})
	}

	coefficients := []struct {
		field string
		value float64
	}{
		{"pod", i.POD},
		{"pac", i.PAC},
		{"kcalPer100", i.KcalPer100},
		{"costPerUnit", i.CostPerUnit},
	}
	for _, c := range coefficients {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) || c.value < 0 {
			return errors.NewWithContext(errors.ErrCodeInvalidCatalogEntry,
				fmt.Sprintf("ingredient %q: %s must be a non-negative number, got %g",
					i.Name, c.field, c.value),
				map[string]any{"ingredient": i.Name, "field": c.field})
		}
	}

	return nil
}
