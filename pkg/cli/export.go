/*
Copyright © 2026 Pastrylab
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/pastrylab/equilibra/pkg/analysis"
	"github.com/pastrylab/equilibra/pkg/export"
	"github.com/pastrylab/equilibra/pkg/recipe"
	"github.com/pastrylab/equilibra/pkg/serializer"
)

func exportCmd() *cli.Command {
	return &cli.Command{
		Name:                  "export",
		EnableShellCompletion: true,
		Usage:                 "Export an analysis report as CSV",
		Description: `Export an analysis report as a spreadsheet-friendly CSV: one ingredient
per row with its composition breakdown, a totals row, and the validation
verdict per metric.

The report comes either from analyzing a recipe document (--recipe) or
from a report previously saved by the analyze command (--report).

# Examples

Analyze a recipe and export the report:
  equilibra export --recipe ganache.yaml --output ganache.csv

Export a saved report to stdout:
  equilibra export --report reporte.json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "recipe",
				Aliases: []string{"r"},
				Usage: `Path/URL to a recipe document to analyze and export.
	Supports: file paths or HTTP/HTTPS URLs.`,
			},
			&cli.StringFlag{
				Name: "report",
				Usage: `Path/URL to a previously saved analysis report.
	Supports: file paths or HTTP/HTTPS URLs.`,
			},
			catalogFlag(),
			rulesFlag(),
			dataDirFlag(),
			outputFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			recipePath := cmd.String("recipe")
			reportPath := cmd.String("report")
			if (recipePath == "") == (reportPath == "") {
				return fmt.Errorf("exactly one of --recipe or --report is required")
			}

			var report *analysis.Report
			switch {
			case recipePath != "":
				cat, rules, err := loadDatasets(cmd)
				if err != nil {
					return err
				}

				analyzer, err := analysis.New(cat, rules, analysis.WithVersion(version))
				if err != nil {
					return fmt.Errorf("failed to create analyzer: %w", err)
				}

				rec, err := recipe.FromFile(recipePath)
				if err != nil {
					return fmt.Errorf("failed to load recipe from %q: %w", recipePath, err)
				}

				report, err = analyzer.Analyze(rec)
				if err != nil {
					return fmt.Errorf("failed to analyze recipe %q: %w", recipePath, err)
				}

			default:
				loaded, err := serializer.FromFile[analysis.Report](reportPath)
				if err != nil {
					return fmt.Errorf("failed to load report from %q: %w", reportPath, err)
				}
				report = loaded
			}

			output := cmd.String("output")
			if output == "" {
				return export.Write(os.Stdout, report)
			}

			if err := export.WriteFile(output, report); err != nil {
				return fmt.Errorf("failed to export report: %w", err)
			}

			slog.Info("report exported",
				"recipe", report.Recipe.Name,
				"file", output)
			return nil
		},
	}
}
