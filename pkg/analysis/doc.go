// Package analysis ties the engine together: it computes a recipe's
// composition and scores categorized recipes against their category
// ranges, producing a single Report document.
package analysis
