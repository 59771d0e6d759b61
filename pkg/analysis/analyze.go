package analysis

import (
	"log/slog"

	"github.com/pastrylab/equilibra/pkg/catalog"
	"github.com/pastrylab/equilibra/pkg/composition"
	"github.com/pastrylab/equilibra/pkg/errors"
	"github.com/pastrylab/equilibra/pkg/header"
	"github.com/pastrylab/equilibra/pkg/recipe"
	"github.com/pastrylab/equilibra/pkg/ruleset"
	"github.com/pastrylab/equilibra/pkg/validator"
)

// Analyzer assembles analysis reports from a fixed catalog and ruleset.
type Analyzer struct {
	// Version is stamped into report metadata (typically the CLI or
	// server version).
	Version string

	catalog *catalog.Catalog
	rules   *ruleset.Ruleset
}

// Option is a functional option for configuring Analyzer instances.
type Option func(*Analyzer)

// WithVersion returns an Option that sets the report version string.
func WithVersion(version string) Option {
	return func(a *Analyzer) {
		a.Version = version
	}
}

// New creates an Analyzer over the given catalog and ruleset.
func New(cat *catalog.Catalog, rules *ruleset.Ruleset, opts ...Option) (*Analyzer, error) {
	if cat == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "catalog cannot be nil")
	}
	a := &Analyzer{
		catalog: cat,
		rules:   rules,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Analyze computes the composition of the recipe and, when the recipe
// names a category, scores it against that category's target ranges.
// Uncategorized recipes produce a composition-only report.
func (a *Analyzer) Analyze(rec *recipe.Recipe) (*Report, error) {
	comp, err := composition.Compute(rec, a.catalog)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Recipe: ReportRecipe{
			Name:     rec.Name,
			Category: rec.Category,
			Status:   rec.Status,
			Author:   rec.Author,
			Items:    len(rec.Items),
		},
		Composition: comp,
	}
	report.Init(header.KindAnalysisReport, a.Version)

	if rec.Category == "" {
		slog.Debug("analysis completed without validation",
			"recipe", rec.Name, "items", len(rec.Items))
		return report, nil
	}

	if a.rules == nil {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"no category ruleset configured for categorized recipe",
			map[string]any{"recipe": rec.Name, "category": rec.Category})
	}

	category, err := a.rules.Lookup(rec.Category)
	if err != nil {
		return nil, err
	}

	verdict, err := validator.Validate(comp, category)
	if err != nil {
		return nil, err
	}
	report.Validation = verdict

	slog.Debug("analysis completed",
		"recipe", rec.Name,
		"category", rec.Category,
		"balanced", verdict.Summary.Balanced,
		"status", verdict.Summary.Status)

	return report, nil
}

// Analyze runs a one-off analysis against the embedded default catalog
// and ruleset. Prefer an Analyzer when data files are configurable.
func Analyze(rec *recipe.Recipe) (*Report, error) {
	cat, err := catalog.Default()
	if err != nil {
		return nil, err
	}
	rules, err := ruleset.Default()
	if err != nil {
		return nil, err
	}
	a, err := New(cat, rules)
	if err != nil {
		return nil, err
	}
	return a.Analyze(rec)
}
