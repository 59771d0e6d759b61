/*
Copyright © 2026 Pastrylab
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/pastrylab/equilibra/pkg/ruleset"
	"github.com/pastrylab/equilibra/pkg/serializer"
)

func categoriesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "categories",
		EnableShellCompletion: true,
		Usage:                 "Browse the category balance ruleset",
		Description: `Browse the category ruleset used for balance validation. Each category
defines an inclusive [min, max] target range per constrained metric;
metrics without a range are computed but not judged.

By default the embedded ruleset is used. Point --rules at a document or
--data-dir at a directory containing categories.yaml to browse a custom
dataset.

# Examples

List all categories:
  equilibra categories list

Show the ranges for one category:
  equilibra categories show --format table "helado de crema"`,
		Commands: []*cli.Command{
			categoriesListCmd(),
			categoriesShowCmd(),
		},
	}
}

func categoriesListCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List all categories in Spanish collation order",
		Flags: []cli.Flag{
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

			rules, err := ruleset.Load(cmd.String("rules"), cmd.String("data-dir"))
			if err != nil {
				return fmt.Errorf("failed to load category ruleset: %w", err)
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeSerializer(ser)

			return ser.Serialize(ctx, &ruleset.CategoryList{
				Count:      rules.Len(),
				Categories: rules.ListAll(),
			})
		},
	}
}

func categoriesShowCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show one category by name",
		ArgsUsage: "CATEGORY",
		Flags: []cli.Flag{
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

			name := strings.TrimSpace(cmd.Args().First())
			if name == "" {
				return fmt.Errorf("category name argument is required")
			}

			rules, err := ruleset.Load(cmd.String("rules"), cmd.String("data-dir"))
			if err != nil {
				return fmt.Errorf("failed to load category ruleset: %w", err)
			}

			cat, err := rules.Lookup(name)
			if err != nil {
				return fmt.Errorf("failed to look up category %q: %w", name, err)
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeSerializer(ser)

			return ser.Serialize(ctx, cat)
		},
	}
}
