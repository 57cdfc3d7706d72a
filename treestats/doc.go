// Package treestats accumulates per-tree statistics from a completed
// IFT/DIFT forest: size, mean feature vector, centroid, mean saliency, and
// an adjacency bitset between trees — spec.md §4.7.
//
// Grounded on original_source/src/iftSICLE.c's iftSICLE_CalcTStats.
package treestats
