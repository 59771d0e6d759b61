/*
Copyright © 2026 Pastrylab
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportCmd(t *testing.T) {
	cmd := exportCmd()

	if cmd.Name != "export" {
		t.Errorf("expected command name 'export', got %q", cmd.Name)
	}

	names := flagNames(cmd)
	for _, flag := range []string{"recipe", "r", "report", "catalog", "rules", "data-dir", "output", "o"} {
		if !names[flag] {
			t.Errorf("expected flag %q to be defined", flag)
		}
	}
}

func TestExportCmdFromRecipe(t *testing.T) {
	dir := t.TempDir()
	recipePath := writeTestFile(t, dir, "mousse.yaml", balancedRecipeYAML)
	outPath := filepath.Join(dir, "mousse.csv")

	err := exportCmd().Run(context.Background(), []string{
		"export", "--recipe", recipePath, "--output", outPath,
	})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	content := string(data)

	if !strings.HasPrefix(content, "ingrediente;") {
		t.Errorf("export missing item header:\n%s", content)
	}
	for _, want := range []string{"chocolate negro 65%", "TOTALES", "metrica", "estado_general"} {
		if !strings.Contains(content, want) {
			t.Errorf("export missing %q:\n%s", want, content)
		}
	}
}

func TestExportCmdUncategorizedSkipsVerdict(t *testing.T) {
	dir := t.TempDir()
	recipePath := writeTestFile(t, dir, "almibar.yaml", uncategorizedRecipeYAML)
	outPath := filepath.Join(dir, "almibar.csv")

	err := exportCmd().Run(context.Background(), []string{
		"export", "--recipe", recipePath, "--output", outPath,
	})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "TOTALES") {
		t.Errorf("export missing totals row:\n%s", content)
	}
	if strings.Contains(content, "metrica") {
		t.Errorf("uncategorized export should have no verdict section:\n%s", content)
	}
}

func TestExportCmdFromReport(t *testing.T) {
	dir := t.TempDir()
	recipePath := writeTestFile(t, dir, "mousse.yaml", balancedRecipeYAML)
	reportPath := filepath.Join(dir, "report.json")

	// Produce a report with the analyze command, then export it.
	err := analyzeCmd().Run(context.Background(), []string{
		"analyze", "--recipe", recipePath, "--output", reportPath, "--format", "json",
	})
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	outPath := filepath.Join(dir, "mousse.csv")
	err = exportCmd().Run(context.Background(), []string{
		"export", "--report", reportPath, "--output", outPath,
	})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	for _, want := range []string{"ingrediente;", "TOTALES", "estado_general"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("export missing %q:\n%s", want, data)
		}
	}
}

func TestExportCmdSourceValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "neither source",
			args: []string{"export"},
		},
		{
			name: "both sources",
			args: []string{"export", "--recipe", "a.yaml", "--report", "b.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := exportCmd().Run(context.Background(), tt.args)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), "exactly one of --recipe or --report") {
				t.Errorf("error = %v, want source validation error", err)
			}
		})
	}
}
