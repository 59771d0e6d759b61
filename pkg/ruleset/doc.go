// Package ruleset provides recipe category target ranges and the closed
// metric vocabulary used across composition analysis.
//
// # Core Types
//
// Metric: closed enum of constrainable quantities
//
//	water, sugars, fat, dry_matter  // percentage points of total mass
//	pod, pac                        // sucrose-equivalent index (sucrose = 1.0)
//	kcal_per_100                    // kcal per 100 mass units
//
// Range: closed interval [Min, Max], both bounds inclusive
//
// Category: named recipe class mapping constrained metrics to ranges;
// metrics without a range are never evaluated for recipes of the class
//
// Ruleset: immutable, name-indexed category collection with
// Spanish-collated listing order
//
// # Loading
//
// Rulesets load from CategoryRuleset documents (YAML or JSON):
//
//	kind: CategoryRuleset
//	apiVersion: equilibra.dev/v1alpha1
//	metadata:
//	  name: categorias-clasicas
//	spec:
//	  categories:
//	    - name: helado de crema
//	      ranges:
//	        sugars: {min: 18, max: 22}
//	        pod: {min: 0.16, max: 0.20}
//
// Resolution precedence in Load: explicit file path, then
// categories.yaml inside the external data directory, then the data
// embedded in the binary. Loading is strict parse-then-validate: an
// unknown metric identifier, min > max, or out-of-scale percentage
// bounds fail the whole load with an INVALID_CATEGORY_ENTRY error
// naming the offending category and metric. There are no silent
// defaults and no partial rulesets.
package ruleset
