package ruleset

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/pastrylab/equilibra/pkg/errors"
	"github.com/pastrylab/equilibra/pkg/header"
	"github.com/pastrylab/equilibra/pkg/serializer"
)

// DefaultDataFile is the ruleset file name resolved inside an external
// data directory.
const DefaultDataFile = "categories.yaml"

var (
	//go:embed data/categories.yaml
	defaultData []byte

	defaultOnce   sync.Once
	cachedDefault *Ruleset
	defaultErr    error
)

// Document is the persisted CategoryRuleset resource.
//
// Example:
//
//	kind: CategoryRuleset
//	apiVersion: equilibra.dev/v1alpha1
//	metadata:
//	  name: categorias-clasicas
//	spec:
//	  categories:
//	    - name: ganache de moldeo
//	      ranges:
//	        sugars: {min: 22, max: 32}
//	        fat: {min: 28, max: 35}
type Document struct {
	header.Header `json:",inline" yaml:",inline"`

	Spec DocumentSpec `json:"spec" yaml:"spec"`
}

// DocumentSpec holds the category records of a CategoryRuleset document.
type DocumentSpec struct {
	Categories []CategorySpec `json:"categories" yaml:"categories"`
}

// CategorySpec is the raw persisted form of one category. Metric keys
// are strings here so they can be validated and normalized through
// ParseMetric when the document is converted.
type CategorySpec struct {
	Name        string           `json:"name" yaml:"name"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	Ranges      map[string]Range `json:"ranges,omitempty" yaml:"ranges,omitempty"`
}

// toCategory validates the raw record and converts it to a typed Category.
func (s *CategorySpec) toCategory() (*Category, error) {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return nil, errors.New(errors.ErrCodeInvalidCategoryEntry,
			"category name cannot be empty")
	}

	var ranges map[Metric]Range
	if len(s.Ranges) > 0 {
		ranges = make(map[Metric]Range, len(s.Ranges))
		for key, r := range s.Ranges {
			m, err := ParseMetric(key)
			if err != nil {
				return nil, errors.WrapWithContext(errors.ErrCodeInvalidCategoryEntry,
					fmt.Sprintf("unknown metric %q in category %q", key, name),
					err,
					map[string]any{"category": name, "metric": key})
			}
			if _, dup := ranges[m]; dup {
				return nil, errors.NewWithContext(errors.ErrCodeInvalidCategoryEntry,
					fmt.Sprintf("metric %q appears more than once in category %q", m, name),
					map[string]any{"category": name, "metric": key})
			}
			ranges[m] = r
		}
	}

	return &Category{
		Name:        name,
		Description: strings.TrimSpace(s.Description),
		Ranges:      ranges,
	}, nil
}

// FromDocument validates a parsed CategoryRuleset document and builds
// the Ruleset.
func FromDocument(doc *Document) (*Ruleset, error) {
	if doc == nil {
		return nil, errors.New(errors.ErrCodeInvalidCategoryEntry,
			"ruleset document cannot be nil")
	}
	if doc.Kind != "" && doc.Kind != header.KindCategoryRuleset {
		return nil, errors.New(errors.ErrCodeInvalidCategoryEntry,
			fmt.Sprintf("invalid kind %q, expected %q", doc.Kind, header.KindCategoryRuleset))
	}
	if doc.APIVersion != "" && doc.APIVersion != header.APIVersion {
		return nil, errors.New(errors.ErrCodeInvalidCategoryEntry,
			fmt.Sprintf("invalid apiVersion %q, expected %q", doc.APIVersion, header.APIVersion))
	}

	categories := make([]*Category, 0, len(doc.Spec.Categories))
	for i := range doc.Spec.Categories {
		c, err := doc.Spec.Categories[i].toCategory()
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return New(categories...)
}

// FromFile loads a CategoryRuleset document from a YAML or JSON file or
// URL. The format is auto-detected from the file extension.
func FromFile(path string) (*Ruleset, error) {
	doc, err := serializer.FromFile[Document](path)
	if err != nil {
		return nil, fmt.Errorf("failed to load ruleset file: %w", err)
	}
	return FromDocument(doc)
}

// Default returns the ruleset built from the embedded category data.
// The result is cached for the life of the process.
func Default() (*Ruleset, error) {
	defaultOnce.Do(func() {
		var doc Document
		if err := yaml.Unmarshal(defaultData, &doc); err != nil {
			defaultErr = fmt.Errorf("failed to parse embedded category data: %w", err)
			return
		}
		cachedDefault, defaultErr = FromDocument(&doc)
	})
	return cachedDefault, defaultErr
}

// Load resolves a ruleset with the standard precedence: an explicit
// file path wins, then DefaultDataFile inside dataDir, then the
// embedded default data.
func Load(path, dataDir string) (*Ruleset, error) {
	if path != "" {
		return FromFile(path)
	}
	if dataDir != "" {
		overlay := filepath.Join(dataDir, DefaultDataFile)
		if _, err := os.Stat(overlay); err == nil {
			slog.Debug("loading ruleset from data directory", "path", overlay)
			return FromFile(overlay)
		}
	}
	slog.Debug("loading embedded ruleset data")
	return Default()
}
