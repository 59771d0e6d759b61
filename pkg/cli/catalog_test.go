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

	"github.com/pastrylab/equilibra/pkg/catalog"
)

func TestCatalogCmd(t *testing.T) {
	cmd := catalogCmd()

	if cmd.Name != "catalog" {
		t.Errorf("expected command name 'catalog', got %q", cmd.Name)
	}

	subs := commandNames(cmd)
	for _, sub := range []string{"list", "show"} {
		if !subs[sub] {
			t.Errorf("expected subcommand %q to be defined", sub)
		}
	}
}

func TestCatalogListCmd(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "ingredients.json")

	err := catalogListCmd().Run(context.Background(), []string{
		"list", "--output", outPath, "--format", "json",
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read listing: %v", err)
	}

	var listing catalog.IngredientList
	if err := json.Unmarshal(data, &listing); err != nil {
		t.Fatalf("failed to decode listing: %v", err)
	}

	if listing.Count == 0 {
		t.Fatal("expected embedded catalog to list ingredients")
	}
	if listing.Count != len(listing.Ingredients) {
		t.Errorf("Count = %d, want %d", listing.Count, len(listing.Ingredients))
	}
	// Spanish collation puts agua first in the embedded catalog.
	if listing.Ingredients[0].Name != "agua" {
		t.Errorf("first ingredient = %q, want agua", listing.Ingredients[0].Name)
	}
}

func TestCatalogShowCmd(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "sacarosa.json")

	err := catalogShowCmd().Run(context.Background(), []string{
		"show", "--output", outPath, "--format", "json", "sacarosa",
	})
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read ingredient: %v", err)
	}

	var ing catalog.Ingredient
	if err := json.Unmarshal(data, &ing); err != nil {
		t.Fatalf("failed to decode ingredient: %v", err)
	}

	if ing.Name != "sacarosa" {
		t.Errorf("Name = %q, want sacarosa", ing.Name)
	}
	// Sucrose anchors the POD scale.
	if ing.POD != 1.0 {
		t.Errorf("POD = %v, want 1.0", ing.POD)
	}
}

func TestCatalogShowCmdErrors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		errMsg string
	}{
		{
			name:   "unknown ingredient",
			args:   []string{"show", "polvo de hadas"},
			errMsg: "polvo de hadas",
		},
		{
			name:   "missing argument",
			args:   []string{"show"},
			errMsg: "ingredient name argument is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := catalogShowCmd().Run(context.Background(), tt.args)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error = %v, want error containing %q", err, tt.errMsg)
			}
		})
	}
}
