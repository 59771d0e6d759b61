// Package catalog defines the ingredient catalog: per-ingredient
// composition fractions, sweetness and anti-freezing coefficients,
// energy density, and cost. Catalogs are immutable after construction
// and safe for concurrent lookups.
package catalog
