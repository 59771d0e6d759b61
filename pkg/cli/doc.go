// Package cli implements the equilibra command-line interface.
//
// # Overview
//
// The equilibra CLI analyzes pastry and confectionery recipes: it computes
// the composition breakdown (water, sugars, fat, dry matter, POD, PAC,
// kcal) for each recipe and validates the totals against category balance
// ranges. It is designed for pastry chefs iterating on formulations and
// for CI-style checks over recipe repositories.
//
// # Commands
//
// analyze - Compute composition and validate balance:
//
//	equilibra analyze --recipe ganache.yaml [--recipe sorbete.yaml ...]
//	    [--fail-on-imbalance] [--output FILE] [--format yaml|json|table]
//
// Loads one or more recipe documents (file paths or HTTP/HTTPS URLs),
// computes the full composition report for each, and validates
// categorized recipes against their category's balance ranges. Multiple
// recipes are analyzed concurrently. With --fail-on-imbalance the command
// exits non-zero when any validated recipe is out of balance, which makes
// recipe repositories testable in CI.
//
// catalog - Browse the ingredient catalog:
//
//	equilibra catalog list
//	equilibra catalog show "azúcar invertido"
//
// categories - Browse the balance ruleset:
//
//	equilibra categories list
//	equilibra categories show "helado de crema"
//
// recipe - Create and edit recipe files:
//
//	equilibra recipe new --category "ganache de moldeo" -f ganache.yaml "ganache base"
//	equilibra recipe add -f ganache.yaml "chocolate negro 65%" 200
//	equilibra recipe set -f ganache.yaml "chocolate negro 65%" 180
//	equilibra recipe remove -f ganache.yaml "miel"
//	equilibra recipe show -f ganache.yaml
//
// export - Export an analysis report as CSV:
//
//	equilibra export --recipe ganache.yaml --output ganache.csv
//
// version - Print version information.
//
// # Datasets
//
// All commands default to the embedded ingredient catalog and category
// ruleset. Three flags (with matching environment variables) point at
// custom datasets:
//
//	--catalog   EQUILIBRA_CATALOG   ingredient catalog document
//	--rules     EQUILIBRA_RULES     category ruleset document
//	--data-dir  EQUILIBRA_DATA_DIR  directory with ingredients.yaml / categories.yaml
//
// A .env file in the working directory is loaded at startup, so dataset
// locations can be pinned per project.
//
// # Output Formats
//
// YAML (default) for human-readable documents, JSON for programmatic
// consumption, and table for flattened terminal viewing. The export
// command always writes CSV.
//
// # Exit Codes
//
//	0  Success
//	1  Error (invalid arguments, unknown ingredient, imbalance with --fail-on-imbalance)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/catalog - ingredient catalog loading and lookup
//   - pkg/ruleset - category ruleset loading and lookup
//   - pkg/analysis - composition plus validation reports
//   - pkg/recipe - recipe model and mutations
//   - pkg/export - CSV report export
//   - pkg/serializer - output formatting
//   - pkg/logging - structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/pastrylab/equilibra/pkg/cli.version=1.0.0'"
package cli
