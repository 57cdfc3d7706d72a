package grid

import "math"

// Voxel is an (x,y,z) coordinate within a Domain. Z is always 0 for a 2D
// domain.
type Voxel struct {
	X, Y, Z int
}

// Index maps a voxel to its row-major linear index: z*(X*Y) + y*X + x.
// Complexity: O(1).
func (d *Domain) Index(v Voxel) int {
	return v.Z*(d.X*d.Y) + v.Y*d.X + v.X
}

// Coordinate maps a linear index back to its voxel. Complexity: O(1).
func (d *Domain) Coordinate(idx int) Voxel {
	xy := d.X * d.Y
	z := idx / xy
	rem := idx % xy
	return Voxel{X: rem % d.X, Y: rem / d.X, Z: z}
}

// InBounds reports whether v lies within the domain's extent.
// Complexity: O(1).
func (d *Domain) InBounds(v Voxel) bool {
	return v.X >= 0 && v.X < d.X &&
		v.Y >= 0 && v.Y < d.Y &&
		v.Z >= 0 && v.Z < d.Z
}

// Neighbor returns the j-th neighbour (0-based) of v under the domain's
// active connectivity, and whether that neighbour is in bounds. The engine
// never fabricates edges across the image boundary: callers must check ok.
//
// Complexity: O(1).
func (d *Domain) Neighbor(v Voxel, j int) (Voxel, bool) {
	off := d.offsets[j]
	n := Voxel{X: v.X + off[0], Y: v.Y + off[1], Z: v.Z + off[2]}
	return n, d.InBounds(n)
}

// EachNeighbor invokes fn for every in-bounds neighbour index of the spel at
// idx, in the domain's fixed, reproducible offset order. Complexity: O(degree).
func (d *Domain) EachNeighbor(idx int, fn func(neighborIdx int)) {
	v := d.Coordinate(idx)
	for j := range d.offsets {
		nv, ok := d.Neighbor(v, j)
		if !ok {
			continue
		}
		fn(d.Index(nv))
	}
}

// VoxelDistance returns the Euclidean distance between two voxels'
// coordinates, used by the fsum connectivity function's spatial term.
func VoxelDistance(a, b Voxel) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	dz := float64(a.Z - b.Z)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// DiagonalSize returns the Euclidean length of the domain's bounding
// diagonal, used to normalise the SPREAD/OSB/BOBS relevance penalties.
func (d *Domain) DiagonalSize() float64 {
	x := float64(d.X - 1)
	y := float64(d.Y - 1)
	z := float64(d.Z - 1)
	return math.Sqrt(x*x + y*y + z*z)
}
