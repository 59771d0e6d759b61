/*
Copyright © 2026 Pastrylab
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/pastrylab/equilibra/pkg/catalog"
	"github.com/pastrylab/equilibra/pkg/ruleset"
	"github.com/pastrylab/equilibra/pkg/serializer"
)

// Shared flags are built fresh per command: urfave flag values are
// stateful after parsing, so instances cannot be reused across commands.

func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage: fmt.Sprintf("Output format (supported values: %s)",
			strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func catalogFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "catalog",
		Sources: cli.EnvVars("EQUILIBRA_CATALOG"),
		Usage: `Path/URL to an ingredient catalog document.
	Supports: file paths or HTTP/HTTPS URLs. Defaults to the embedded catalog.`,
	}
}

func rulesFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "rules",
		Sources: cli.EnvVars("EQUILIBRA_RULES"),
		Usage: `Path/URL to a category ruleset document.
	Supports: file paths or HTTP/HTTPS URLs. Defaults to the embedded ruleset.`,
	}
}

func dataDirFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "data-dir",
		Sources: cli.EnvVars("EQUILIBRA_DATA_DIR"),
		Usage:   "Directory checked for ingredients.yaml and categories.yaml overlays",
	}
}

// parseOutputFormat reads and validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported values: %s)",
			cmd.String("format"), strings.Join(serializer.SupportedFormats(), ", "))
	}
	return outFormat, nil
}

// loadDatasets resolves the ingredient catalog and category ruleset from
// the --catalog/--rules/--data-dir flags, falling back to the embedded
// defaults.
func loadDatasets(cmd *cli.Command) (*catalog.Catalog, *ruleset.Ruleset, error) {
	cat, err := catalog.Load(cmd.String("catalog"), cmd.String("data-dir"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load ingredient catalog: %w", err)
	}

	rules, err := ruleset.Load(cmd.String("rules"), cmd.String("data-dir"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load category ruleset: %w", err)
	}

	slog.Debug("datasets loaded",
		"ingredients", cat.Len(),
		"categories", rules.Len())

	return cat, rules, nil
}

func closeSerializer(ser serializer.Serializer) {
	if closer, ok := ser.(serializer.Closer); ok {
		if err := closer.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}
}
