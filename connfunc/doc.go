// Package connfunc provides the connectivity (path-cost) functions the IFT
// applies when deciding whether a candidate neighbour should be conquered
// by an expanding tree: FMax, FSum, and a Custom hook (spec.md §4.4, §6).
package connfunc
