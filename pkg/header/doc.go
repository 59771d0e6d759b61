// Copyright (c) 2025, Pastrylab.  All rights reserved.
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

// Package header provides common header types for equilibra documents.
//
// This package defines the Header type used across catalogs, rulesets,
// recipes, and analysis reports to provide consistent metadata and
// versioning information.
//
// # Header Structure
//
// The Header carries Kubernetes-style identification fields:
//
//	kind: Recipe
//	apiVersion: equilibra.dev/v1alpha1
//	metadata:
//	  created: "2025-12-30T10:30:00Z"
//	  version: v1.0.0
//
// # Kind Field
//
// The Kind field identifies the document type:
//   - IngredientCatalog: ingredient composition reference dataset
//   - CategoryRuleset: target ranges per recipe category
//   - Recipe: a recipe document (name, category, line items)
//   - AnalysisReport: composition plus balance verdicts for one recipe
//
// # API Versioning
//
// The APIVersion field enables evolution of document formats. Loaders
// should check it before parsing:
//
//	if hdr.APIVersion != header.APIVersion {
//	    return fmt.Errorf("unsupported API version: %s", hdr.APIVersion)
//	}
package header
