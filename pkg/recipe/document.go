package recipe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pastrylab/equilibra/pkg/errors"
	"github.com/pastrylab/equilibra/pkg/header"
	"github.com/pastrylab/equilibra/pkg/serializer"
)

// Document is the serialized envelope of a Recipe.
type Document struct {
	header.Header `json:",inline" yaml:",inline"`

	Spec DocumentSpec `json:"spec" yaml:"spec"`
}

// DocumentSpec carries the recipe payload inside the envelope.
type DocumentSpec struct {
	Name     string    `json:"name" yaml:"name"`
	Category string    `json:"category,omitempty" yaml:"category,omitempty"`
	Status   string    `json:"status,omitempty" yaml:"status,omitempty"`
	Author   string    `json:"author,omitempty" yaml:"author,omitempty"`
	Origin   string    `json:"origin,omitempty" yaml:"origin,omitempty"`
	Notes    string    `json:"notes,omitempty" yaml:"notes,omitempty"`
	Items    []Item    `json:"items" yaml:"items"`
	Created  time.Time `json:"created" yaml:"created"`
	Updated  time.Time `json:"updated" yaml:"updated"`
}

// ToDocument wraps the recipe in a typed envelope for serialization.
func (r *Recipe) ToDocument() *Document {
	h := header.New(
		header.WithKind(header.KindRecipe),
		header.WithMetadata("name", r.Name),
	)
	return &Document{
		Header: *h,
		Spec: DocumentSpec{
			Name:     r.Name,
			Category: r.Category,
			Status:   string(r.Status),
			Author:   r.Author,
			Origin:   r.Origin,
			Notes:    r.Notes,
			Items:    append([]Item(nil), r.Items...),
			Created:  r.Created,
			Updated:  r.Updated,
		},
	}
}

// FromDocument converts a deserialized envelope into a validated
// Recipe. A missing kind or apiVersion is tolerated, a wrong one is
// rejected.
func FromDocument(doc *Document) (*Recipe, error) {
	if doc == nil {
		return nil, errors.New(errors.ErrCodeInvalidRecipe, "recipe document cannot be nil")
	}
	if doc.Kind != "" && doc.Kind != header.KindRecipe {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRecipe,
			fmt.Sprintf("unexpected document kind %q, expected %q", doc.Kind, header.KindRecipe),
			map[string]any{"kind": string(doc.Kind)})
	}
	if doc.APIVersion != "" && doc.APIVersion != header.APIVersion {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRecipe,
			fmt.Sprintf("unsupported apiVersion %q, expected %q", doc.APIVersion, header.APIVersion),
			map[string]any{"apiVersion": doc.APIVersion})
	}

	status, err := ParseStatus(doc.Spec.Status)
	if err != nil {
		return nil, err
	}

	r := &Recipe{
		Name:     strings.TrimSpace(doc.Spec.Name),
		Category: strings.TrimSpace(doc.Spec.Category),
		Status:   status,
		Author:   doc.Spec.Author,
		Origin:   doc.Spec.Origin,
		Notes:    doc.Spec.Notes,
		Items:    append([]Item(nil), doc.Spec.Items...),
		Created:  doc.Spec.Created,
		Updated:  doc.Spec.Updated,
	}

	// Hand-written files often omit timestamps.
	if r.Created.IsZero() {
		r.Created = time.Now().UTC()
	}
	if r.Updated.IsZero() {
		r.Updated = r.Created
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// FromBody parses a recipe document from an HTTP request body.
// The format follows the Content-Type header: JSON and YAML are
// supported, and empty or unrecognized content types are tried as JSON.
func FromBody(body io.Reader, contentType string) (*Recipe, error) {
	if body == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "request body cannot be nil")
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to read request body", err)
	}
	if len(data) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "request body is empty")
	}

	// Strip charset and other media type params
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if idx := strings.Index(ct, ";"); idx != -1 {
		ct = strings.TrimSpace(ct[:idx])
	}

	var doc Document
	switch ct {
	case "application/x-yaml", "application/yaml", "text/yaml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to parse YAML body", err)
		}
	case "application/json", "":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to parse JSON body", err)
		}
	default:
		// Try JSON for unrecognized types
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
				"unsupported content type", err,
				map[string]any{"contentType": contentType})
		}
	}

	return FromDocument(&doc)
}

// FromFile loads a recipe from a YAML or JSON file.
func FromFile(path string) (*Recipe, error) {
	doc, err := serializer.FromFile[Document](path)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe file: %w", err)
	}
	return FromDocument(doc)
}

// SaveFile writes the recipe to path, choosing the format from the
// file extension.
func (r *Recipe) SaveFile(ctx context.Context, path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New(errors.ErrCodeInvalidRequest, "recipe file path cannot be empty")
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to create recipe file: %w", err)
	}
	defer f.Close()

	w := serializer.NewWriter(serializer.FormatFromPath(path), f)
	if err := w.Serialize(ctx, r.ToDocument()); err != nil {
		return fmt.Errorf("failed to write recipe file: %w", err)
	}
	return nil
}
