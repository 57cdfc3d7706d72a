// Package iftstate owns the mutable forest produced by an Image Foresting
// Transform pass: per-vertex root, predecessor/label, and cost arrays, the
// current seed array, and an indexed min-heap keyed by cost.
//
// State is reset at the start of every sequential IFT and mutated in place
// by the IFT/DIFT kernels in the ift package; it is never exposed to
// concurrent mutation (spec.md §5).
package iftstate
