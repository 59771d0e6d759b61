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

package analysis

import (
	"github.com/pastrylab/equilibra/pkg/composition"
	"github.com/pastrylab/equilibra/pkg/header"
	"github.com/pastrylab/equilibra/pkg/recipe"
	"github.com/pastrylab/equilibra/pkg/validator"
)

// ReportRecipe identifies the analyzed recipe inside a report.
type ReportRecipe struct {
	Name     string        `json:"name" yaml:"name"`
	Category string        `json:"category,omitempty" yaml:"category,omitempty"`
	Status   recipe.Status `json:"status" yaml:"status"`
	Author   string        `json:"author,omitempty" yaml:"author,omitempty"`

	// Items is the number of distinct ingredient lines.
	Items int `json:"items" yaml:"items"`
}

// Report is the complete analysis of one recipe: the computed
// composition plus, for categorized recipes, the balance verdict.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	Recipe      ReportRecipe                   `json:"recipe" yaml:"recipe"`
	Composition *composition.CompositionResult `json:"composition" yaml:"composition"`

	// Validation is nil for uncategorized recipes.
	Validation *validator.ValidationResult `json:"validation,omitempty" yaml:"validation,omitempty"`
}

// Balanced reports whether the recipe was validated and found balanced.
// Uncategorized recipes are never balanced, only described.
func (r *Report) Balanced() bool {
	return r.Validation != nil && r.Validation.Summary.Balanced
}
