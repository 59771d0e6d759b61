// Package composition turns a recipe and an ingredient catalog into a
// quantitative breakdown of the batch: grams and percentages of water,
// sugars, fat, and dry matter, mass-weighted POD and PAC on the
// sucrose scale, caloric density, and cost.
//
// All aggregates are linear in ingredient mass, so scaling every
// quantity by the same factor leaves percentages, POD, PAC, and
// KcalPer100 unchanged.
package composition
