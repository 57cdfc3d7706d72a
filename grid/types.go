// Package grid models the spatial domain SICLE segments: a 3D integer
// lattice of X×Y×Z spels (2D images are the Z=1 case), addressed by a
// row-major linear index and by (x,y,z) coordinates, together with the
// 4-/8-/6-/26-neighbourhood used by the IFT to walk it.
//
// The package never fabricates edges across the image boundary: every
// neighbour lookup is bounds-checked against the Domain it was built from.
package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrInvalidDimensions indicates a non-positive axis length.
	ErrInvalidDimensions = errors.New("grid: dimensions must be positive")
)

// Connectivity selects the neighbourhood used when walking the lattice.
type Connectivity int

const (
	// Conn4 is 4-connectivity (2D, Z=1): N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 is 8-connectivity (2D, Z=1): the 4-neighbourhood plus diagonals.
	Conn8
	// Conn6 is 6-connectivity (3D): face neighbours only.
	Conn6
	// Conn26 is 26-connectivity (3D): the full cube neighbourhood.
	Conn26
)

// Domain describes the lattice's shape and the adjacency used to traverse it.
//
// Domain is immutable once built; it is safe to share across goroutines
// performing read-only neighbour lookups.
type Domain struct {
	X, Y, Z int
	N       int // X*Y*Z

	conn      Connectivity
	is3D      bool
	offsets   [][3]int
	radius    float64 // adjacency radius: sqrt(2), sqrt(3), or 1
}

// NewDomain builds a Domain of size X×Y×Z. useDiag selects 8-/26- over 4-/6-
// connectivity. Z=1 is treated as a 2D domain (the Z axis is dismissed and
// Conn8/Conn4 are used regardless of useDiag's 3D intent).
//
// Complexity: O(1) — the degree of the neighbourhood is bounded (≤26).
func NewDomain(x, y, z int, useDiag bool) (*Domain, error) {
	if x <= 0 || y <= 0 || z <= 0 {
		return nil, ErrInvalidDimensions
	}

	d := &Domain{X: x, Y: y, Z: z, N: x * y * z}
	d.is3D = z > 1

	switch {
	case d.is3D && useDiag:
		d.conn = Conn26
		d.radius = 1.7320508075688772 // sqrt(3)
	case d.is3D && !useDiag:
		d.conn = Conn6
		d.radius = 1.0
	case !d.is3D && useDiag:
		d.conn = Conn8
		d.radius = 1.4142135623730951 // sqrt(2)
	default:
		d.conn = Conn4
		d.radius = 1.0
	}
	d.offsets = buildOffsets(d.conn)

	return d, nil
}

// Is3D reports whether the domain has more than one slice along Z.
func (d *Domain) Is3D() bool { return d.is3D }

// Connectivity returns the neighbourhood in effect.
func (d *Domain) Connectivity() Connectivity { return d.conn }

// Radius returns the adjacency radius of the active neighbourhood:
// 1 for 4-/6-connectivity, sqrt(2) for 8-, sqrt(3) for 26-.
func (d *Domain) Radius() float64 { return d.radius }

// Degree returns the number of neighbour offsets (4, 6, 8, or 26).
func (d *Domain) Degree() int { return len(d.offsets) }

// buildOffsets returns the neighbour offset table for the given connectivity,
// ordered so ties in first-arrival heap order are reproducible across runs.
func buildOffsets(conn Connectivity) [][3]int {
	switch conn {
	case Conn4:
		return [][3]int{{0, -1, 0}, {1, 0, 0}, {0, 1, 0}, {-1, 0, 0}}
	case Conn8:
		return [][3]int{
			{0, -1, 0}, {1, -1, 0}, {1, 0, 0}, {1, 1, 0},
			{0, 1, 0}, {-1, 1, 0}, {-1, 0, 0}, {-1, -1, 0},
		}
	case Conn6:
		return [][3]int{
			{0, 0, -1}, {0, -1, 0}, {-1, 0, 0},
			{1, 0, 0}, {0, 1, 0}, {0, 0, 1},
		}
	case Conn26:
		offs := make([][3]int, 0, 26)
		for dz := -1; dz <= 1; dz++ {
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 && dz == 0 {
						continue
					}
					offs = append(offs, [3]int{dx, dy, dz})
				}
			}
		}
		return offs
	default:
		return nil
	}
}
