// Package recipe models a pastry formulation as a named list of
// ingredient quantities in grams, with lifecycle status and free-text
// provenance metadata.
//
// # Core Types
//
// Recipe: the working formulation
//
//	type Recipe struct {
//	    Name     string    // unique display name
//	    Category string    // target category, empty = uncategorized
//	    Status   Status    // draft, test, confirmed
//	    Items    []Item    // one entry per distinct ingredient
//	    Created  time.Time
//	    Updated  time.Time
//	}
//
// Item: one ingredient line
//
//	type Item struct {
//	    Ingredient string  // catalog ingredient name
//	    Quantity   float64 // grams, always positive
//	}
//
// Mutations preserve two invariants: no duplicate ingredient lines
// (AddItem merges by summing) and strictly positive quantities. Every
// successful mutation refreshes Updated.
//
// # Persistence
//
// Recipes round-trip through a kind/apiVersion envelope (Document) in
// YAML or JSON via FromFile and SaveFile.
package recipe
