package composition

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/pastrylab/equilibra/pkg/catalog"
	"github.com/pastrylab/equilibra/pkg/errors"
	"github.com/pastrylab/equilibra/pkg/recipe"
)

// Compute resolves every recipe item against the catalog and
// aggregates the batch composition. The recipe must be structurally
// valid and hold at least one item; an item referencing an ingredient
// missing from the catalog fails the whole computation.
func Compute(rec *recipe.Recipe, cat *catalog.Catalog) (*CompositionResult, error) {
	start := time.Now()

	if cat == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "catalog cannot be nil")
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	if len(rec.Items) == 0 {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRecipe,
			fmt.Sprintf("recipe %q has no items", rec.Name),
			map[string]any{"recipe": rec.Name})
	}

	total := rec.TotalQuantity()
	result := &CompositionResult{
		Items: make([]ItemBreakdown, 0, len(rec.Items)),
	}
	t := &result.Totals
	t.Mass = total

	for _, it := range rec.Items {
		ing, err := cat.Lookup(it.Ingredient)
		if err != nil {
			computeFailures.Inc()
			return nil, err
		}

		share := it.Quantity / total
		b := ItemBreakdown{
			Ingredient:  it.Ingredient,
			Quantity:    Amount{Grams: it.Quantity, Percent: share * 100},
			Water:       componentAmount(it.Quantity, share, ing.Water),
			Sugars:      componentAmount(it.Quantity, share, ing.Sugars),
			Fat:         componentAmount(it.Quantity, share, ing.Fat),
			OtherSolids: componentAmount(it.Quantity, share, ing.OtherSolids),
			DryMatter:   componentAmount(it.Quantity, share, ing.DryMatter()),
			POD:         share * ing.POD,
			PAC:         share * ing.PAC,
			Kcal:        it.Quantity * ing.KcalPer100 / 100,
			Cost:        it.Quantity * ing.CostPerUnit,
		}
		result.Items = append(result.Items, b)

		t.Water.Grams += b.Water.Grams
		t.Sugars.Grams += b.Sugars.Grams
		t.Fat.Grams += b.Fat.Grams
		t.OtherSolids.Grams += b.OtherSolids.Grams
		t.DryMatter.Grams += b.DryMatter.Grams
		t.POD += b.POD
		t.PAC += b.PAC
		t.Kcal += b.Kcal
		t.Cost += b.Cost
	}

	// Total percentages come from the summed grams rather than the
	// per-item percentages to keep rounding drift out of the verdicts.
	t.Water.Percent = t.Water.Grams / total * 100
	t.Sugars.Percent = t.Sugars.Grams / total * 100
	t.Fat.Percent = t.Fat.Grams / total * 100
	t.OtherSolids.Percent = t.OtherSolids.Grams / total * 100
	t.DryMatter.Percent = t.DryMatter.Grams / total * 100
	t.KcalPer100 = t.Kcal / total * 100

	computeTotal.Inc()
	computeDuration.Observe(time.Since(start).Seconds())

	slog.Debug("composition computed",
		"recipe", rec.Name,
		"items", len(result.Items),
		"mass", t.Mass,
		"pod", t.POD,
		"pac", t.PAC,
	)

	return result, nil
}

func componentAmount(quantity, share, fraction float64) Amount {
	return Amount{
		Grams:   quantity * fraction,
		Percent: share * fraction * 100,
	}
}
