// Package grid defines the lattice domain SICLE walks: a 3D integer grid
// of X×Y×Z spels with voxel⇄index bijections, a fixed, reproducible
// neighbour-offset table for 4-/8-/6-/26-adjacency, and the region-of-
// interest bitmap that restricts which spels are eligible to be conquered.
//
// Adjacency radius: 1 for 4-/6-connectivity, √2 for 8-, √3 for 26-. The
// domain never fabricates an edge across the image boundary — every
// neighbour lookup is bounds-checked.
package grid
