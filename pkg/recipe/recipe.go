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

package recipe

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/pastrylab/equilibra/pkg/errors"
)

// Item is one line of a recipe: a catalog ingredient name and its
// quantity in grams.
type Item struct {
	Ingredient string  `json:"ingredient" yaml:"ingredient"`
	Quantity   float64 `json:"quantity" yaml:"quantity"`
}

// Recipe is a working formulation: a named list of ingredient
// quantities plus descriptive metadata. Every mutation keeps the item
// list free of duplicate ingredients and refreshes Updated.
type Recipe struct {
	// Name identifies the recipe. Never empty.
	Name string `json:"name" yaml:"name"`

	// Category names the category ruleset entry this recipe targets.
	// Empty means uncategorized; such recipes are composed but not
	// validated against ranges.
	Category string `json:"category,omitempty" yaml:"category,omitempty"`

	// Status is the lifecycle state, draft by default.
	Status Status `json:"status" yaml:"status"`

	Author string `json:"author,omitempty" yaml:"author,omitempty"`
	Origin string `json:"origin,omitempty" yaml:"origin,omitempty"`
	Notes  string `json:"notes,omitempty" yaml:"notes,omitempty"`

	// Items holds one entry per distinct ingredient.
	Items []Item `json:"items" yaml:"items"`

	Created time.Time `json:"created" yaml:"created"`
	Updated time.Time `json:"updated" yaml:"updated"`
}

// Option is a functional option for configuring new Recipe instances.
type Option func(*Recipe)

// WithCategory returns an Option that sets the target category.
func WithCategory(category string) Option {
	return func(r *Recipe) {
		r.Category = category
	}
}

// WithStatus returns an Option that sets the initial lifecycle status.
func WithStatus(status Status) Option {
	return func(r *Recipe) {
		r.Status = status
	}
}

// WithAuthor returns an Option that records the recipe author.
func WithAuthor(author string) Option {
	return func(r *Recipe) {
		r.Author = author
	}
}

// WithOrigin returns an Option that records where the recipe came from.
func WithOrigin(origin string) Option {
	return func(r *Recipe) {
		r.Origin = origin
	}
}

// WithNotes returns an Option that attaches free-text notes.
func WithNotes(notes string) Option {
	return func(r *Recipe) {
		r.Notes = notes
	}
}

// New creates an empty draft recipe with the given name and options.
func New(name string, opts ...Option) (*Recipe, error) {
	now := time.Now().UTC()
	r := &Recipe{
		Name:    strings.TrimSpace(name),
		Status:  StatusDraft,
		Created: now,
		Updated: now,
	}

	for _, opt := range opts {
		opt(r)
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate checks the structural invariants: a non-empty name, a known
// status, and items with distinct ingredients and positive quantities.
func (r *Recipe) Validate() error {
	if r == nil {
		return errors.New(errors.ErrCodeInvalidRecipe, "recipe cannot be nil")
	}
	if strings.TrimSpace(r.Name) == "" {
		return errors.New(errors.ErrCodeInvalidRecipe, "recipe name cannot be empty")
	}
	if !r.Status.IsValid() {
		return errors.NewWithContext(errors.ErrCodeInvalidRecipe,
			fmt.Sprintf("recipe %q: unknown status %q", r.Name, r.Status),
			map[string]any{"recipe": r.Name, "status": string(r.Status)})
	}

	seen := make(map[string]bool, len(r.Items))
	for _, it := range r.Items {
		if strings.TrimSpace(it.Ingredient) == "" {
			return errors.NewWithContext(errors.ErrCodeInvalidRecipe,
				fmt.Sprintf("recipe %q: item ingredient cannot be empty", r.Name),
				map[string]any{"recipe": r.Name})
		}
		if seen[it.Ingredient] {
			return errors.NewWithContext(errors.ErrCodeInvalidRecipe,
				fmt.Sprintf("recipe %q: duplicate item %q", r.Name, it.Ingredient),
				map[string]any{"recipe": r.Name, "ingredient": it.Ingredient})
		}
		seen[it.Ingredient] = true

		if err := validQuantity(it.Ingredient, it.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// AddItem records quantity grams of the named ingredient. Adding an
// ingredient that is already present merges the lines by summing the
// quantities.
func (r *Recipe) AddItem(ingredient string, quantity float64) error {
	ingredient = strings.TrimSpace(ingredient)
	if ingredient == "" {
		return errors.New(errors.ErrCodeInvalidRecipe, "item ingredient cannot be empty")
	}
	if err := validQuantity(ingredient, quantity); err != nil {
		return err
	}

	for i := range r.Items {
		if r.Items[i].Ingredient == ingredient {
			r.Items[i].Quantity += quantity
			r.touch()
			recipeMutations.WithLabelValues("add").Inc()
			return nil
		}
	}

	r.Items = append(r.Items, Item{Ingredient: ingredient, Quantity: quantity})
	r.touch()
	recipeMutations.WithLabelValues("add").Inc()
	return nil
}

// RemoveItem deletes the named ingredient line.
func (r *Recipe) RemoveItem(ingredient string) error {
	for i := range r.Items {
		if r.Items[i].Ingredient == ingredient {
			r.Items = append(r.Items[:i], r.Items[i+1:]...)
			r.touch()
			recipeMutations.WithLabelValues("remove").Inc()
			return nil
		}
	}
	return errors.NewWithContext(errors.ErrCodeNotFound,
		fmt.Sprintf("recipe %q has no item %q", r.Name, ingredient),
		map[string]any{"recipe": r.Name, "ingredient": ingredient})
}

// SetQuantity replaces the quantity of an existing item. Unlike
// AddItem it does not merge; the ingredient must already be present.
func (r *Recipe) SetQuantity(ingredient string, quantity float64) error {
	if err := validQuantity(ingredient, quantity); err != nil {
		return err
	}
	for i := range r.Items {
		if r.Items[i].Ingredient == ingredient {
			r.Items[i].Quantity = quantity
			r.touch()
			recipeMutations.WithLabelValues("set_quantity").Inc()
			return nil
		}
	}
	return errors.NewWithContext(errors.ErrCodeNotFound,
		fmt.Sprintf("recipe %q has no item %q", r.Name, ingredient),
		map[string]any{"recipe": r.Name, "ingredient": ingredient})
}

// Rename changes the recipe name.
func (r *Recipe) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New(errors.ErrCodeInvalidRecipe, "recipe name cannot be empty")
	}
	r.Name = name
	r.touch()
	return nil
}

// SetCategory retargets the recipe at another category. An empty
// category clears the assignment.
func (r *Recipe) SetCategory(category string) {
	r.Category = strings.TrimSpace(category)
	r.touch()
}

// SetStatus moves the recipe to another lifecycle state.
func (r *Recipe) SetStatus(status Status) error {
	if !status.IsValid() {
		return errors.NewWithContext(errors.ErrCodeInvalidRecipe,
			fmt.Sprintf("unknown recipe status: %s", status),
			map[string]any{"status": string(status)})
	}
	r.Status = status
	r.touch()
	return nil
}

// TotalQuantity returns the recipe mass in grams.
func (r *Recipe) TotalQuantity() float64 {
	var total float64
	for _, it := range r.Items {
		total += it.Quantity
	}
	return total
}

// ItemShare returns the percentage of the recipe total contributed by
// the named ingredient.
func (r *Recipe) ItemShare(ingredient string) (float64, error) {
	for _, it := range r.Items {
		if it.Ingredient == ingredient {
			return it.Quantity / r.TotalQuantity() * 100, nil
		}
	}
	return 0, errors.NewWithContext(errors.ErrCodeNotFound,
		fmt.Sprintf("recipe %q has no item %q", r.Name, ingredient),
		map[string]any{"recipe": r.Name, "ingredient": ingredient})
}

// Duplicate returns an independent copy named "<name> (copy)", reset to
// draft with fresh timestamps. The item list is deep-copied.
func (r *Recipe) Duplicate() *Recipe {
	now := time.Now().UTC()
	return &Recipe{
		Name:     r.Name + " (copy)",
		Category: r.Category,
		Status:   StatusDraft,
		Author:   r.Author,
		Origin:   r.Origin,
		Notes:    r.Notes,
		Items:    append([]Item(nil), r.Items...),
		Created:  now,
		Updated:  now,
	}
}

func (r *Recipe) touch() {
	r.Updated = time.Now().UTC()
}

func validQuantity(ingredient string, q float64) error {
	if math.IsNaN(q) || math.IsInf(q, 0) || q <= 0 {
		return errors.NewWithContext(errors.ErrCodeInvalidQuantity,
			fmt.Sprintf("ingredient %q: quantity must be a positive number of grams, got %g", ingredient, q),
			map[string]any{"ingredient": ingredient, "quantity": q})
	}
	return nil
}
