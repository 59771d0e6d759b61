/*
Copyright © 2026 Pastrylab
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/pastrylab/equilibra/pkg/analysis"
	"github.com/pastrylab/equilibra/pkg/defaults"
	"github.com/pastrylab/equilibra/pkg/recipe"
	"github.com/pastrylab/equilibra/pkg/serializer"
)

// analyzeConcurrency bounds the number of recipes loaded and analyzed in
// parallel. Recipe sources can be remote URLs, so the bound keeps a long
// --recipe list from opening that many connections at once.
const analyzeConcurrency = 4

func analyzeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "analyze",
		EnableShellCompletion: true,
		Usage:                 "Compute composition and validate balance for one or more recipes",
		Description: `Compute the full composition breakdown for each recipe and, for
categorized recipes, validate the totals against the category balance
ranges. The report includes:
  - per-ingredient water, sugars, fat, dry matter, and kcal
  - mass totals with POD and PAC weighted averages
  - per-metric pass/warning/fail results with deviations

# Balance Verdict

A recipe whose category constrains a metric outside its allowed range is
reported as unbalanced. Values that miss a range by no more than the
warning margin are flagged as warnings; with --fail-on-imbalance only
outright failures make the command exit non-zero. Recipes without a
category are composed but not validated.

# Examples

Analyze a single recipe to stdout:
  equilibra analyze --recipe ganache.yaml

Analyze several recipes into one JSON report file:
  equilibra analyze -r ganache.yaml -r sorbete.yaml -o reports.json -t json

Analyze against a custom catalog and fail the pipeline on imbalance:
  equilibra analyze -r ganache.yaml --catalog mi-catalogo.yaml --fail-on-imbalance

Load a recipe over HTTP:
  equilibra analyze -r https://recetas.pastrylab.dev/ganache.yaml`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:     "recipe",
				Aliases:  []string{"r"},
				Required: true,
				Usage: `Path/URL to a recipe document (can be repeated).
	Supports: file paths or HTTP/HTTPS URLs.`,
			},
			&cli.BoolFlag{
				Name:  "fail-on-imbalance",
				Usage: "Exit with non-zero status if any validated recipe is out of balance",
			},
			catalogFlag(),
			rulesFlag(),
			dataDirFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			cat, rules, err := loadDatasets(cmd)
			if err != nil {
				return err
			}

			analyzer, err := analysis.New(cat, rules, analysis.WithVersion(version))
			if err != nil {
				return fmt.Errorf("failed to create analyzer: %w", err)
			}

			paths := cmd.StringSlice("recipe")
			slog.Info("analyzing recipes", "count", len(paths))

			batchCtx, cancel := context.WithTimeout(ctx, defaults.CLIAnalyzeTimeout)
			defer cancel()

			reports := make([]*analysis.Report, len(paths))
			g, gctx := errgroup.WithContext(batchCtx)
			g.SetLimit(analyzeConcurrency)
			for i, path := range paths {
				g.Go(func() error {
					if err := gctx.Err(); err != nil {
						return err
					}

					rec, err := recipe.FromFile(path)
					if err != nil {
						return fmt.Errorf("failed to load recipe from %q: %w", path, err)
					}

					report, err := analyzer.Analyze(rec)
					if err != nil {
						return fmt.Errorf("failed to analyze recipe %q: %w", path, err)
					}

					slog.Debug("recipe analyzed",
						"recipe", rec.Name,
						"source", path,
						"category", rec.Category,
						"balanced", report.Balanced())

					reports[i] = report
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeSerializer(ser)

			// A single recipe serializes as one report document, a batch
			// as a report list.
			var doc any = reports[0]
			if len(reports) > 1 {
				doc = reports
			}
			if err := ser.Serialize(ctx, doc); err != nil {
				return fmt.Errorf("failed to serialize analysis report: %w", err)
			}

			// Warnings keep a recipe in balance; only failed metrics
			// count against --fail-on-imbalance.
			unbalanced := 0
			for _, report := range reports {
				if report.Validation != nil && report.Validation.Summary.Failed > 0 {
					unbalanced++
				}
			}

			slog.Info("analysis completed",
				"recipes", len(reports),
				"unbalanced", unbalanced)

			if cmd.Bool("fail-on-imbalance") && unbalanced > 0 {
				return fmt.Errorf("%d of %d recipe(s) out of balance", unbalanced, len(reports))
			}

			return nil
		},
	}
}
