/*
Copyright © 2026 Pastrylab
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pastrylab/equilibra/pkg/analysis"
)

func TestAnalyzeCmd(t *testing.T) {
	cmd := analyzeCmd()

	if cmd.Name != "analyze" {
		t.Errorf("expected command name 'analyze', got %q", cmd.Name)
	}

	names := flagNames(cmd)
	for _, flag := range []string{
		"recipe", "r",
		"fail-on-imbalance",
		"catalog", "rules", "data-dir",
		"output", "o",
		"format", "t",
	} {
		if !names[flag] {
			t.Errorf("expected flag %q to be defined", flag)
		}
	}
}

func TestAnalyzeCmdSingleRecipe(t *testing.T) {
	dir := t.TempDir()
	recipePath := writeTestFile(t, dir, "mousse.yaml", balancedRecipeYAML)
	outPath := filepath.Join(dir, "report.json")

	err := analyzeCmd().Run(context.Background(), []string{
		"analyze",
		"--recipe", recipePath,
		"--output", outPath,
		"--format", "json",
	})
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}

	var report analysis.Report
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("failed to decode report: %v", err)
	}

	if string(report.Kind) != "AnalysisReport" {
		t.Errorf("Kind = %q, want AnalysisReport", report.Kind)
	}
	if report.Recipe.Name != "mousse equilibrada" {
		t.Errorf("Recipe.Name = %q, want mousse equilibrada", report.Recipe.Name)
	}
	if report.Composition == nil {
		t.Fatal("expected composition in report")
	}
	if report.Composition.Totals.Mass != 560 {
		t.Errorf("Totals.Mass = %v, want 560", report.Composition.Totals.Mass)
	}
	if report.Validation == nil {
		t.Fatal("expected validation for categorized recipe")
	}
	if !report.Validation.Summary.Balanced {
		t.Errorf("expected balanced recipe, got summary %+v", report.Validation.Summary)
	}
	if !report.Balanced() {
		t.Error("Balanced() = false, want true")
	}
}

func TestAnalyzeCmdBatch(t *testing.T) {
	dir := t.TempDir()
	first := writeTestFile(t, dir, "mousse.yaml", balancedRecipeYAML)
	second := writeTestFile(t, dir, "almibar.yaml", uncategorizedRecipeYAML)
	outPath := filepath.Join(dir, "reports.json")

	err := analyzeCmd().Run(context.Background(), []string{
		"analyze",
		"--recipe", first,
		"--recipe", second,
		"--output", outPath,
		"--format", "json",
	})
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read reports: %v", err)
	}

	var reports []analysis.Report
	if err := json.Unmarshal(data, &reports); err != nil {
		t.Fatalf("failed to decode report list: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}

	// Reports keep the --recipe flag order.
	if reports[0].Recipe.Name != "mousse equilibrada" {
		t.Errorf("reports[0].Recipe.Name = %q, want mousse equilibrada", reports[0].Recipe.Name)
	}
	if reports[1].Recipe.Name != "almíbar tpt" {
		t.Errorf("reports[1].Recipe.Name = %q, want almíbar tpt", reports[1].Recipe.Name)
	}
	if reports[1].Validation != nil {
		t.Error("expected no validation for uncategorized recipe")
	}
}

func TestAnalyzeCmdFailOnImbalance(t *testing.T) {
	tests := []struct {
		name    string
		fixture string
		wantErr bool
	}{
		{
			name:    "balanced recipe passes",
			fixture: balancedRecipeYAML,
			wantErr: false,
		},
		{
			name:    "unbalanced recipe fails",
			fixture: unbalancedRecipeYAML,
			wantErr: true,
		},
		{
			name:    "uncategorized recipe passes",
			fixture: uncategorizedRecipeYAML,
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			recipePath := writeTestFile(t, dir, "recipe.yaml", tt.fixture)
			outPath := filepath.Join(dir, "report.json")

			err := analyzeCmd().Run(context.Background(), []string{
				"analyze",
				"--recipe", recipePath,
				"--output", outPath,
				"--format", "json",
				"--fail-on-imbalance",
			})

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected imbalance error, got nil")
				}
				if !strings.Contains(err.Error(), "out of balance") {
					t.Errorf("error = %v, want error containing 'out of balance'", err)
				}
				// The report is still written before the exit status flips.
				if _, statErr := os.Stat(outPath); statErr != nil {
					t.Errorf("expected report file despite imbalance: %v", statErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("analyze failed: %v", err)
			}
		})
	}
}

func TestAnalyzeCmdErrors(t *testing.T) {
	unknownIngredientYAML := `kind: Recipe
apiVersion: equilibra.dev/v1alpha1
spec:
  name: receta fantasiosa
  items:
    - ingredient: polvo de hadas
      quantity: 100
`

	tests := []struct {
		name    string
		fixture string
		args    []string
		errMsg  string
	}{
		{
			name:    "unknown ingredient",
			fixture: unknownIngredientYAML,
			errMsg:  "polvo de hadas",
		},
		{
			name:   "missing recipe file",
			args:   []string{"analyze", "--recipe", "no-such-recipe.yaml"},
			errMsg: "failed to load recipe",
		},
		{
			name:    "unknown output format",
			fixture: balancedRecipeYAML,
			args:    []string{"analyze", "--recipe", "PLACEHOLDER", "--format", "xml"},
			errMsg:  "unknown output format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			args := tt.args
			if args == nil {
				path := writeTestFile(t, dir, "recipe.yaml", tt.fixture)
				args = []string{"analyze", "--recipe", path, "--output", filepath.Join(dir, "out.json")}
			} else if tt.fixture != "" {
				path := writeTestFile(t, dir, "recipe.yaml", tt.fixture)
				for i, a := range args {
					if a == "PLACEHOLDER" {
						args[i] = path
					}
				}
			}

			err := analyzeCmd().Run(context.Background(), args)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error = %v, want error containing %q", err, tt.errMsg)
			}
		})
	}
}
