// Package export renders analysis reports as semicolon-separated
// spreadsheets for the workshop: one row per ingredient, batch totals,
// and the balance verdict when the recipe was validated.
package export
