package catalog

import (
	"math"
	"testing"

	"github.com/pastrylab/equilibra/pkg/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		ing     Ingredient
		wantErr bool
	}{
		{
			name: "water only",
			ing:  Ingredient{Name: "agua", Water: 1.0},
		},
		{
			name: "full composition",
			ing: Ingredient{
				Name:        "nata 35% MG",
				Water:       0.61,
				Sugars:      0.017,
				Fat:         0.35,
				OtherSolids: 0.023,
				POD:         0.06,
				KcalPer100:  335,
				CostPerUnit: 0.0045,
			},
		},
		{
			name:    "empty name",
			ing:     Ingredient{Water: 1.0},
			wantErr: true,
		},
		{
			name:    "whitespace name",
			ing:     Ingredient{Name: "   ", Water: 1.0},
			wantErr: true,
		},
		{
			name:    "fraction above one",
			ing:     Ingredient{Name: "x", Water: 1.2},
			wantErr: true,
		},
		{
			name:    "negative fraction",
			ing:     Ingredient{Name: "x", Water: 1.1, Fat: -0.1},
			wantErr: true,
		},
		{
			name:    "NaN fraction",
			ing:     Ingredient{Name: "x", Water: math.NaN()},
			wantErr: true,
		},
		{
			name:    "fractions sum below one",
			ing:     Ingredient{Name: "x", Water: 0.5, Sugars: 0.4},
			wantErr: true,
		},
		{
			name:    "fractions sum above one",
			ing:     Ingredient{Name: "x", Water: 0.8, Sugars: 0.3},
			wantErr: true,
		},
		{
			name:    "negative pod",
			ing:     Ingredient{Name: "x", Water: 1.0, POD: -0.5},
			wantErr: true,
		},
		{
			name:    "infinite kcal",
			ing:     Ingredient{Name: "x", Water: 1.0, KcalPer100: math.Inf(1)},
			wantErr: true,
		},
		{
			name:    "negative cost",
			ing:     Ingredient{Name: "x", Water: 1.0, CostPerUnit: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ing.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.HasCode(err, errors.ErrCodeInvalidCatalogEntry) {
				t.Errorf("Validate() error code = %v, want %v",
					errors.CodeOf(err), errors.ErrCodeInvalidCatalogEntry)
			}
		})
	}
}

func TestValidateToleratesRoundingNoise(t *testing.T) {
	// Sums a hair away from 1.0 are accepted; real datasets carry
	// decimal fractions that do not add up exactly in binary.
	ing := Ingredient{
		Name:        "leche entera",
		Water:       0.885,
		Sugars:      0.047,
		Fat:         0.036,
		OtherSolids: 0.032,
	}
	if err := ing.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}

func TestDryMatter(t *testing.T) {
	tests := []struct {
		name string
		ing  Ingredient
		want float64
	}{
		{"all water", Ingredient{Name: "agua", Water: 1.0}, 0},
		{"no water", Ingredient{Name: "sacarosa", Sugars: 1.0}, 1},
		{"mixed", Ingredient{Name: "nata 35% MG", Water: 0.61, Sugars: 0.017, Fat: 0.35, OtherSolids: 0.023}, 0.39},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ing.DryMatter(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("DryMatter() = %g, want %g", got, tt.want)
			}
		})
	}
}
