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

package composition

import (
	"github.com/pastrylab/equilibra/pkg/ruleset"
)

// Amount pairs an absolute mass in grams with its share of the recipe
// total expressed as a percentage.
type Amount struct {
	Grams   float64 `json:"grams" yaml:"grams"`
	Percent float64 `json:"percent" yaml:"percent"`
}

// ItemBreakdown is one ingredient's contribution to the batch. The
// component amounts carry percentages relative to the recipe total, so
// they sum to the figures in Totals.
type ItemBreakdown struct {
	Ingredient string `json:"ingredient" yaml:"ingredient"`

	Quantity    Amount `json:"quantity" yaml:"quantity"`
	Water       Amount `json:"water" yaml:"water"`
	Sugars      Amount `json:"sugars" yaml:"sugars"`
	Fat         Amount `json:"fat" yaml:"fat"`
	OtherSolids Amount `json:"otherSolids" yaml:"otherSolids"`
	DryMatter   Amount `json:"dryMatter" yaml:"dryMatter"`

	// POD and PAC are the mass-weighted contributions on the sucrose
	// scale; summed over all items they give the recipe coefficients.
	POD float64 `json:"pod" yaml:"pod"`
	PAC float64 `json:"pac" yaml:"pac"`

	// Kcal is the absolute energy contributed by this item.
	Kcal float64 `json:"kcal" yaml:"kcal"`

	// Cost is the monetary cost of this item's quantity.
	Cost float64 `json:"cost" yaml:"cost"`
}

// Totals aggregates the whole batch.
type Totals struct {
	// Mass is the batch size in grams.
	Mass float64 `json:"mass" yaml:"mass"`

	Water       Amount `json:"water" yaml:"water"`
	Sugars      Amount `json:"sugars" yaml:"sugars"`
	Fat         Amount `json:"fat" yaml:"fat"`
	OtherSolids Amount `json:"otherSolids" yaml:"otherSolids"`
	DryMatter   Amount `json:"dryMatter" yaml:"dryMatter"`

	// POD and PAC are mass-weighted averages on the sucrose scale.
	POD float64 `json:"pod" yaml:"pod"`
	PAC float64 `json:"pac" yaml:"pac"`

	// Kcal is the total batch energy; KcalPer100 the density per 100 g.
	Kcal       float64 `json:"kcal" yaml:"kcal"`
	KcalPer100 float64 `json:"kcalPer100" yaml:"kcalPer100"`

	// Cost is the total batch cost.
	Cost float64 `json:"cost" yaml:"cost"`
}

// CompositionResult is the full nutritional and physical breakdown of
// one recipe batch.
type CompositionResult struct {
	Items  []ItemBreakdown `json:"items" yaml:"items"`
	Totals Totals          `json:"totals" yaml:"totals"`
}

// MetricValue returns the aggregate value behind a balance metric: the
// percentage of total mass for the composition metrics, the
// mass-weighted average for pod and pac, and the caloric density for
// kcal_per_100. The second return is false for unknown metrics.
func (c *CompositionResult) MetricValue(m ruleset.Metric) (float64, bool) {
	switch m {
	case ruleset.MetricWater:
		return c.Totals.Water.Percent, true
	case ruleset.MetricSugars:
		return c.Totals.Sugars.Percent, true
	case ruleset.MetricFat:
		return c.Totals.Fat.Percent, true
	case ruleset.MetricDryMatter:
		return c.Totals.DryMatter.Percent, true
	case ruleset.MetricPOD:
		return c.Totals.POD, true
	case ruleset.MetricPAC:
		return c.Totals.PAC, true
	case ruleset.MetricKcal:
		return c.Totals.KcalPer100, true
	default:
		return 0, false
	}
}
