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

	"github.com/pastrylab/equilibra/pkg/catalog"
	"github.com/pastrylab/equilibra/pkg/serializer"
)

func catalogCmd() *cli.Command {
	return &cli.Command{
		Name:                  "catalog",
		EnableShellCompletion: true,
		Usage:                 "Browse the ingredient catalog",
		Description: `Browse the ingredient catalog used for composition analysis. Each entry
carries the mass fractions (water, sugars, fat, other solids) plus POD,
PAC, and kcal per 100 g for one ingredient.

By default the embedded catalog is used. Point --catalog at a document
or --data-dir at a directory containing ingredients.yaml to browse a
custom dataset.

# Examples

List all ingredients as a table:
  equilibra catalog list --format table

Show one ingredient (names keep their accents):
  equilibra catalog show "azúcar invertido"`,
		Commands: []*cli.Command{
			catalogListCmd(),
			catalogShowCmd(),
		},
	}
}

func catalogListCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List all ingredients in Spanish collation order",
		Flags: []cli.Flag{
			catalogFlag(),
			dataDirFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			cat, err := catalog.Load(cmd.String("catalog"), cmd.String("data-dir"))
			if err != nil {
				return fmt.Errorf("failed to load ingredient catalog: %w", err)
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeSerializer(ser)

			return ser.Serialize(ctx, &catalog.IngredientList{
				Count:       cat.Len(),
				Ingredients: cat.ListAll(),
			})
		},
	}
}

func catalogShowCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show one ingredient by name",
		ArgsUsage: "INGREDIENT",
		Flags: []cli.Flag{
			catalogFlag(),
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
				return fmt.Errorf("ingredient name argument is required")
			}

			cat, err := catalog.Load(cmd.String("catalog"), cmd.String("data-dir"))
			if err != nil {
				return fmt.Errorf("failed to load ingredient catalog: %w", err)
			}

			ing, err := cat.Lookup(name)
			if err != nil {
				return fmt.Errorf("failed to look up ingredient %q: %w", name, err)
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeSerializer(ser)

			return ser.Serialize(ctx, ing)
		},
	}
}
