// Package sicle implements SICLE (Superpixels through Iterative
// CLEarcutting): an iterative superpixel/superspel segmentation engine for
// 2D images, 3D volumes, and videos treated as volumes.
//
// Given a feature image, an optional region-of-interest mask, and an
// optional object-saliency map, an Engine partitions the spatial domain
// into a requested number of spatially connected, feature-homogeneous
// regions. Internally it grows an optimum-path forest from an oversampled
// seed set using a differential Image Foresting Transform, then repeatedly
// ranks and removes the least relevant seeds until the target count is
// reached.
//
// Subpackages:
//
//	grid/       — lattice domain, 4/8/6/26-adjacency, voxel⇄index conversions
//	iftstate/   — forest state (root/pred/cost) and the indexed min-heap
//	sampler/    — seed oversampling (random, grid, custom)
//	connfunc/   — path-cost functions (fmax, fsum, custom)
//	ift/        — sequential and differential Image Foresting Transform
//	treestats/  — per-tree size/feature/centroid/saliency/adjacency statistics
//	relevance/  — seed relevance scoring and removal
//
// Quick start:
//
//	eng, err := sicle.NewEngine(features, roi, saliency,
//	    sicle.WithN0(3000), sicle.WithNf(200))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	labels, err := eng.Run()
//
// See DESIGN.md in the repository root for the grounding of every
// component in the algorithm this package implements.
package sicle
