package api

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/pastrylab/equilibra/pkg/analysis"
	"github.com/pastrylab/equilibra/pkg/catalog"
	"github.com/pastrylab/equilibra/pkg/logging"
	"github.com/pastrylab/equilibra/pkg/ruleset"
	"github.com/pastrylab/equilibra/pkg/server"
)

const (
	name           = "equilibrad"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/pastrylab/equilibra/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// It configures logging, loads the ingredient catalog and category
// ruleset, wires the route handlers, and handles graceful shutdown.
// Returns an error if the server fails to start or encounters a fatal error.
func Serve() error {
	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	// Embedded datasets unless overridden through the environment
	cat, err := catalog.Load(os.Getenv("EQUILIBRA_CATALOG"), os.Getenv("EQUILIBRA_DATA_DIR"))
	if err != nil {
		slog.Error("failed to load ingredient catalog", "error", err)
		return err
	}

	rules, err := ruleset.Load(os.Getenv("EQUILIBRA_RULES"), os.Getenv("EQUILIBRA_DATA_DIR"))
	if err != nil {
		slog.Error("failed to load category ruleset", "error", err)
		return err
	}

	analyzer, err := analysis.New(cat, rules, analysis.WithVersion(version))
	if err != nil {
		slog.Error("failed to create analyzer", "error", err)
		return err
	}

	slog.Info("datasets loaded",
		"ingredients", cat.Len(),
		"categories", rules.Len(),
	)

	routes := map[string]http.HandlerFunc{
		analysis.AnalyzeRoute:          analyzer.HandleAnalyze,
		catalog.IngredientsRoute:       cat.HandleIngredients,
		catalog.IngredientsRoute + "/": cat.HandleIngredients,
		ruleset.CategoriesRoute:        rules.HandleCategories,
		ruleset.CategoriesRoute + "/":  rules.HandleCategories,
	}

	if err := server.Run(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(routes),
	); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
