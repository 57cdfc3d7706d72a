// Package ift implements the two Image Foresting Transform kernels SICLE
// alternates between: Run, a sequential IFT grown from scratch, and
// RunDifferential, which tears down only the irrelevant seeds' trees and
// recompetes the invalidated frontier — spec.md §4.5, §4.6.
//
// Grounded on original_source/src/iftSICLE.c's iftSICLE_RunSeedIFT,
// iftSICLE_RunSeedDIFT, iftSICLE_RemoveTrees, and iftSICLE_RemoveSubtree.
package ift
