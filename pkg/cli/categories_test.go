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

	"github.com/pastrylab/equilibra/pkg/ruleset"
)

func TestCategoriesCmd(t *testing.T) {
	cmd := categoriesCmd()

	if cmd.Name != "categories" {
		t.Errorf("expected command name 'categories', got %q", cmd.Name)
	}

	subs := commandNames(cmd)
	for _, sub := range []string{"list", "show"} {
		if !subs[sub] {
			t.Errorf("expected subcommand %q to be defined", sub)
		}
	}
}

func TestCategoriesListCmd(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "categories.json")

	err := categoriesListCmd().Run(context.Background(), []string{
		"list", "--output", outPath, "--format", "json",
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read listing: %v", err)
	}

	var listing ruleset.CategoryList
	if err := json.Unmarshal(data, &listing); err != nil {
		t.Fatalf("failed to decode listing: %v", err)
	}

	if listing.Count == 0 {
		t.Fatal("expected embedded ruleset to list categories")
	}
	if listing.Count != len(listing.Categories) {
		t.Errorf("Count = %d, want %d", listing.Count, len(listing.Categories))
	}
	if listing.Categories[0].Name != "ganache de moldeo" {
		t.Errorf("first category = %q, want ganache de moldeo", listing.Categories[0].Name)
	}
}

func TestCategoriesShowCmd(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "helado.json")

	err := categoriesShowCmd().Run(context.Background(), []string{
		"show", "--output", outPath, "--format", "json", "helado de crema",
	})
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read category: %v", err)
	}

	var cat ruleset.Category
	if err := json.Unmarshal(data, &cat); err != nil {
		t.Fatalf("failed to decode category: %v", err)
	}

	if cat.Name != "helado de crema" {
		t.Errorf("Name = %q, want helado de crema", cat.Name)
	}
	if len(cat.Ranges) != 6 {
		t.Errorf("expected 6 constrained metrics, got %d", len(cat.Ranges))
	}

	pod, ok := cat.Ranges[ruleset.MetricPOD]
	if !ok {
		t.Fatal("expected pod range for helado de crema")
	}
	if pod.Min != 0.16 || pod.Max != 0.20 {
		t.Errorf("pod range = [%v, %v], want [0.16, 0.20]", pod.Min, pod.Max)
	}
}

func TestCategoriesShowCmdErrors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		errMsg string
	}{
		{
			name:   "unknown category",
			args:   []string{"show", "tarta imaginaria"},
			errMsg: "tarta imaginaria",
		},
		{
			name:   "missing argument",
			args:   []string{"show"},
			errMsg: "category name argument is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := categoriesShowCmd().Run(context.Background(), tt.args)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error = %v, want error containing %q", err, tt.errMsg)
			}
		})
	}
}
