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
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/pastrylab/equilibra/pkg/logging"
)

const (
	name           = "equilibra"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// rootCmd assembles the full command tree. Flags declared here are
// readable from every subcommand through the command lineage.
func rootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               version,
		EnableShellCompletion: true,
		Usage:                 "Recipe composition and balance analysis for pastry formulation",
		Description: fmt.Sprintf(`equilibra - recipe composition and balance analysis

Version: %s
Commit:  %s
Built:   %s

Computes per-ingredient and total composition (water, sugars, fat,
dry matter, POD, PAC, kcal) for pastry recipes and validates the
totals against category balance ranges.`, version, commit, date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
				Usage:   "Log level (debug, info, warn, error)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		Commands: []*cli.Command{
			analyzeCmd(),
			catalogCmd(),
			categoriesCmd(),
			recipeCmd(),
			exportCmd(),
			versionCmd(),
		},
	}
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	// .env files seed the process environment before flags resolve
	// their EQUILIBRA_* sources.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
