// Copyright (c) 2026, Pastrylab.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package catalog

import (
	"fmt"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pastrylab/equilibra/pkg/errors"
)

// Catalog is an immutable collection of ingredients indexed by name.
// Construction validates every entry; after that the catalog is safe
// for concurrent readers.
type Catalog struct {
	byName map[string]*Ingredient

	// names holds ingredient names sorted with Spanish collation so
	// that accented names interleave naturally when listed.
	names []string
}

// New builds a Catalog from the given ingredients. Every entry is
// validated and duplicate names are rejected.
func New(ingredients ...*Ingredient) (*Catalog, error) {
	c := &Catalog{
		byName: make(map[string]*Ingredient, len(ingredients)),
		names:  make([]string, 0, len(ingredients)),
	}

	for _, ing := range ingredients {
		if ing == nil {
			return nil, errors.New(errors.ErrCodeInvalidCatalogEntry,
				"ingredient cannot be nil")
		}
		if err := ing.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.byName[ing.Name]; exists {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidCatalogEntry,
				fmt.Sprintf("duplicate ingredient: %s", ing.Name),
				map[string]any{"ingredient": ing.Name})
		}
		c.byName[ing.Name] = ing
		c.names = append(c.names, ing.Name)
	}

	collate.New(language.Spanish).SortStrings(c.names)
	return c, nil
}

// Lookup returns the ingredient with the given name.
func (c *Catalog) Lookup(name string) (*Ingredient, error) {
	ing, ok := c.byName[name]
	if !ok {
		return nil, errors.NewWithContext(errors.ErrCodeNotFound,
			fmt.Sprintf("unknown ingredient: %s", name),
			map[string]any{"ingredient": name})
	}
	return ing, nil
}

// ListAll returns all ingredients in Spanish-collated alphabetical order.
func (c *Catalog) ListAll() []*Ingredient {
	out := make([]*Ingredient, 0, len(c.names))
	for _, n := range c.names {
		out = append(out, c.byName[n])
	}
	return out
}

// Names returns the ingredient names in the same order as ListAll.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

// Len returns the number of ingredients in the catalog.
func (c *Catalog) Len() int {
	return len(c.byName)
}
