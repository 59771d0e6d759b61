// Package validator scores computed recipe compositions against the
// target ranges of a category.
//
// # Verdicts
//
// Every metric the category constrains receives one of three statuses:
//
//   - passed: the value sits inside the inclusive target range
//   - warning: the value misses the range by at most NearMissFraction
//     of the range span
//   - failed: the value misses by more than the margin
//
// Metrics the category leaves unconstrained are omitted entirely. A
// recipe is balanced only when every constrained metric passed;
// near-miss warnings still deny the balanced verdict so they surface
// during formulation instead of in the kitchen.
package validator
