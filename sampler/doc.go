// Package sampler provides the seed oversampling strategies SICLE starts
// an iteration from: Random (rejection sampling over the ROI) and Grid
// (stride-based placement following the domain's aspect ratio), plus a
// Custom hook — spec.md §4.3, §6.
//
// Grounded on original_source/src/iftSICLE.c's iftSICLE_RndOversampl and
// iftSICLE_GridOversampl.
package sampler
