/*
Copyright © 2026 Pastrylab
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/pastrylab/equilibra/pkg/recipe"
	"github.com/pastrylab/equilibra/pkg/serializer"
)

// recipeFileFlag names the recipe document a subcommand edits. Built
// fresh per subcommand like the shared flags in helpers.go.
func recipeFileFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "file",
		Aliases:  []string{"f"},
		Required: true,
		Usage:    "Path to the recipe file to edit (.yaml, .yml, or .json)",
	}
}

func recipeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "recipe",
		EnableShellCompletion: true,
		Usage:                 "Create and edit recipe files",
		Description: `Scriptable editing of recipe documents. Each subcommand loads the
recipe file, applies one mutation, and writes the file back in place.
Quantities are grams and must be positive and finite. Adding an
ingredient that is already present merges the lines by summing the
quantities; set replaces the quantity of an existing line.

# Examples

Start a new recipe file:
  equilibra recipe new --category "ganache de moldeo" -f ganache.yaml "ganache base"

Add and adjust ingredients:
  equilibra recipe add -f ganache.yaml "chocolate negro 65%" 200
  equilibra recipe add -f ganache.yaml "nata 35% MG" 300
  equilibra recipe set -f ganache.yaml "nata 35% MG" 280

Drop an ingredient and inspect the result:
  equilibra recipe remove -f ganache.yaml "sorbitol en polvo"
  equilibra recipe show -f ganache.yaml --format table`,
		Commands: []*cli.Command{
			recipeNewCmd(),
			recipeAddCmd(),
			recipeRemoveCmd(),
			recipeSetCmd(),
			recipeShowCmd(),
		},
	}
}

func recipeNewCmd() *cli.Command {
	return &cli.Command{
		Name:      "new",
		Usage:     "Create a new empty recipe",
		ArgsUsage: "NAME",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Destination recipe file (default: stdout)",
			},
			&cli.StringFlag{
				Name:  "category",
				Usage: "Target balance category (default: uncategorized)",
			},
			&cli.StringFlag{
				Name: "status",
				Usage: fmt.Sprintf("Lifecycle status (supported values: %v)",
					recipe.GetStatusTypes()),
			},
			&cli.StringFlag{
				Name:  "author",
				Usage: "Recipe author",
			},
			&cli.StringFlag{
				Name:  "origin",
				Usage: "Source the recipe was adapted from",
			},
			&cli.StringFlag{
				Name:  "notes",
				Usage: "Free-form preparation notes",
			},
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := strings.TrimSpace(cmd.Args().First())
			if name == "" {
				return fmt.Errorf("recipe name argument is required")
			}

			opts := []recipe.Option{}
			if category := cmd.String("category"); category != "" {
				opts = append(opts, recipe.WithCategory(category))
			}
			if statusStr := cmd.String("status"); statusStr != "" {
				status, err := recipe.ParseStatus(statusStr)
				if err != nil {
					return fmt.Errorf("invalid status %q: %w", statusStr, err)
				}
				opts = append(opts, recipe.WithStatus(status))
			}
			if author := cmd.String("author"); author != "" {
				opts = append(opts, recipe.WithAuthor(author))
			}
			if origin := cmd.String("origin"); origin != "" {
				opts = append(opts, recipe.WithOrigin(origin))
			}
			if notes := cmd.String("notes"); notes != "" {
				opts = append(opts, recipe.WithNotes(notes))
			}

			rec, err := recipe.New(name, opts...)
			if err != nil {
				return fmt.Errorf("failed to create recipe: %w", err)
			}

			path := cmd.String("file")
			if path == "" {
				outFormat, err := parseOutputFormat(cmd)
				if err != nil {
					return err
				}
				ser := serializer.NewStdoutWriter(outFormat)
				defer closeSerializer(ser)
				return ser.Serialize(ctx, rec.ToDocument())
			}

			if err := rec.SaveFile(ctx, path); err != nil {
				return err
			}

			slog.Info("recipe created", "recipe", name, "file", path)
			return nil
		},
	}
}

func recipeAddCmd() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Add an ingredient line to a recipe",
		ArgsUsage: "INGREDIENT QUANTITY",
		Flags:     []cli.Flag{recipeFileFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ingredient, quantity, err := parseItemArgs(cmd)
			if err != nil {
				return err
			}

			return editRecipeFile(ctx, cmd.String("file"), func(rec *recipe.Recipe) error {
				return rec.AddItem(ingredient, quantity)
			})
		},
	}
}

func recipeRemoveCmd() *cli.Command {
	return &cli.Command{
		Name:      "remove",
		Usage:     "Remove an ingredient line from a recipe",
		ArgsUsage: "INGREDIENT",
		Flags:     []cli.Flag{recipeFileFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ingredient := strings.TrimSpace(cmd.Args().First())
			if ingredient == "" {
				return fmt.Errorf("ingredient name argument is required")
			}

			return editRecipeFile(ctx, cmd.String("file"), func(rec *recipe.Recipe) error {
				return rec.RemoveItem(ingredient)
			})
		},
	}
}

func recipeSetCmd() *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     "Change the quantity of an existing ingredient line",
		ArgsUsage: "INGREDIENT QUANTITY",
		Flags:     []cli.Flag{recipeFileFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ingredient, quantity, err := parseItemArgs(cmd)
			if err != nil {
				return err
			}

			return editRecipeFile(ctx, cmd.String("file"), func(rec *recipe.Recipe) error {
				return rec.SetQuantity(ingredient, quantity)
			})
		},
	}
}

func recipeShowCmd() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Print a recipe document",
		Flags: []cli.Flag{
			recipeFileFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			rec, err := recipe.FromFile(cmd.String("file"))
			if err != nil {
				return err
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeSerializer(ser)

			return ser.Serialize(ctx, rec.ToDocument())
		},
	}
}

// parseItemArgs reads the INGREDIENT QUANTITY positional arguments shared
// by the add and set subcommands.
func parseItemArgs(cmd *cli.Command) (string, float64, error) {
	ingredient := strings.TrimSpace(cmd.Args().Get(0))
	if ingredient == "" {
		return "", 0, fmt.Errorf("ingredient name argument is required")
	}

	quantityStr := cmd.Args().Get(1)
	if quantityStr == "" {
		return "", 0, fmt.Errorf("quantity argument is required")
	}
	quantity, err := strconv.ParseFloat(quantityStr, 64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid quantity %q: %w", quantityStr, err)
	}

	return ingredient, quantity, nil
}

// editRecipeFile loads path, applies one mutation, and writes the file
// back in place. The file is untouched when the mutation fails.
func editRecipeFile(ctx context.Context, path string, mutate func(*recipe.Recipe) error) error {
	rec, err := recipe.FromFile(path)
	if err != nil {
		return err
	}

	if err := mutate(rec); err != nil {
		return err
	}

	if err := rec.SaveFile(ctx, path); err != nil {
		return err
	}

	slog.Info("recipe updated",
		"recipe", rec.Name,
		"file", path,
		"items", len(rec.Items),
		"grams", rec.TotalQuantity())
	return nil
}
