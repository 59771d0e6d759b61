package catalog

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/pastrylab/equilibra/pkg/errors"
	"github.com/pastrylab/equilibra/pkg/header"
	"github.com/pastrylab/equilibra/pkg/serializer"
)

// DefaultDataFile is the catalog file name resolved inside an external
// data directory.
const DefaultDataFile = "ingredients.yaml"

var (
	//go:embed data/ingredients.yaml
	defaultData []byte

	defaultOnce   sync.Once
	cachedDefault *Catalog
	defaultErr    error
)

// Document is the persisted IngredientCatalog resource.
type Document struct {
	header.Header `json:",inline" yaml:",inline"`

	Spec DocumentSpec `json:"spec" yaml:"spec"`
}

// DocumentSpec holds the ingredient records of an IngredientCatalog
// document. Records parse directly into Ingredient values; validation
// happens when the catalog is constructed.
type DocumentSpec struct {
	Ingredients []Ingredient `json:"ingredients" yaml:"ingredients"`
}

// FromDocument validates a parsed IngredientCatalog document and builds
// the Catalog.
func FromDocument(doc *Document) (*Catalog, error) {
	if doc == nil {
		return nil, errors.New(errors.ErrCodeInvalidCatalogEntry,
			"catalog document cannot be nil")
	}
	if doc.Kind != "" && doc.Kind != header.KindIngredientCatalog {
		return nil, errors.New(errors.ErrCodeInvalidCatalogEntry,
			fmt.Sprintf("invalid kind %q, expected %q", doc.Kind, header.KindIngredientCatalog))
	}
	if doc.APIVersion != "" && doc.APIVersion != header.APIVersion {
		return nil, errors.New(errors.ErrCodeInvalidCatalogEntry,
			fmt.Sprintf("invalid apiVersion %q, expected %q", doc.APIVersion, header.APIVersion))
	}

	ingredients := make([]*Ingredient, 0, len(doc.Spec.Ingredients))
	for i := range doc.Spec.Ingredients {
		ingredients = append(ingredients, &doc.Spec.Ingredients[i])
	}

	return New(ingredients...)
}

// FromFile loads an IngredientCatalog document from a YAML or JSON file
// or URL. The format is auto-detected from the file extension.
func FromFile(path string) (*Catalog, error) {
	doc, err := serializer.FromFile[Document](path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog file: %w", err)
	}
	return FromDocument(doc)
}

// Default returns the catalog built from the embedded ingredient data.
// The result is cached for the life of the process.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		var doc Document
		if err := yaml.Unmarshal(defaultData, &doc); err != nil {
			defaultErr = fmt.Errorf("failed to parse embedded ingredient data: %w", err)
			return
		}
		cachedDefault, defaultErr = FromDocument(&doc)
	})
	return cachedDefault, defaultErr
}

// Load resolves a catalog with the standard precedence: an explicit
// file path wins, then DefaultDataFile inside dataDir, then the
// embedded default data.
func Load(path, dataDir string) (*Catalog, error) {
	if path != "" {
		return FromFile(path)
	}
	if dataDir != "" {
		overlay := filepath.Join(dataDir, DefaultDataFile)
		if _, err := os.Stat(overlay); err == nil {
			slog.Debug("loading catalog from data directory", "path", overlay)
			return FromFile(overlay)
		}
	}
	slog.Debug("loading embedded catalog data")
	return Default()
}
