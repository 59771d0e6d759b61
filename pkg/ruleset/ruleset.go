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

package ruleset

import (
	"fmt"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pastrylab/equilibra/pkg/errors"
)

// Ruleset is an immutable collection of categories indexed by name.
// Construction validates every entry; after that the ruleset is safe
// for concurrent readers.
type Ruleset struct {
	byName map[string]*Category

	// names holds category names sorted with Spanish collation so that
	// accented names interleave naturally when listed.
	names []string
}

// New builds a Ruleset from the given categories. Every entry is
// validated and duplicate names are rejected.
func New(categories ...*Category) (*Ruleset, error) {
	rs := &Ruleset{
		byName: make(map[string]*Category, len(categories)),
		names:  make([]string, 0, len(categories)),
	}

	for _, c := range categories {
		if c == nil {
			return nil, errors.New(errors.ErrCodeInvalidCategoryEntry,
				"category cannot be nil")
		}
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if _, exists := rs.byName[c.Name]; exists {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidCategoryEntry,
				fmt.Sprintf("duplicate category: %s", c.Name),
				map[string]any{"category": c.Name})
		}
		rs.byName[c.Name] = c
		rs.names = append(rs.names, c.Name)
	}

	collate.New(language.Spanish).SortStrings(rs.names)
	return rs, nil
}

// Lookup returns the category with the given name.
func (rs *Ruleset) Lookup(name string) (*Category, error) {
	c, ok := rs.byName[name]
	if !ok {
		return nil, errors.NewWithContext(errors.ErrCodeNotFound,
			fmt.Sprintf("unknown category: %s", name),
			map[string]any{"category": name})
	}
	return c, nil
}

// ListAll returns all categories in Spanish-collated alphabetical order.
func (rs *Ruleset) ListAll() []*Category {
	out := make([]*Category, 0, len(rs.names))
	for _, n := range rs.names {
		out = append(out, rs.byName[n])
	}
	return out
}

// Names returns the category names in the same order as ListAll.
func (rs *Ruleset) Names() []string {
	return append([]string(nil), rs.names...)
}

// Len returns the number of categories in the ruleset.
func (rs *Ruleset) Len() int {
	return len(rs.byName)
}
