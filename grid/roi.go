package grid

import "github.com/kelindar/bitmap"

// ROI is the region of interest: the subset of spels eligible to be
// partitioned. A nil *ROI (which NewROI returns for a nil mask) means every
// spel in the domain is eligible; a ROI built from a non-nil mask admits
// only the spels whose mask entry is true.
//
// ROI is read-only once built, mirroring kelindar/noise's use of
// bitmap.Bitmap as an immutable-after-construction spatial index.
type ROI struct {
	bits *bitmap.Bitmap
	n    int
}

// NewROI builds a ROI from a caller-provided boolean mask of length n
// (n == Domain.N). A nil mask means "no restriction" and In always
// reports true.
func NewROI(mask []bool, n int) *ROI {
	if mask == nil {
		return nil
	}
	var bm bitmap.Bitmap
	if n > 0 {
		bm.Grow(uint32(n - 1))
	}
	for i, eligible := range mask {
		if eligible {
			bm.Set(uint32(i))
		}
	}
	return &ROI{bits: &bm, n: n}
}

// In reports whether spel idx is eligible. A nil ROI admits every spel.
func (r *ROI) In(idx int) bool {
	if r == nil {
		return true
	}
	return r.bits.Contains(uint32(idx))
}

// Count returns the number of eligible spels. For a nil ROI, pass the
// domain's N explicitly since there is no bound structure to scan.
func (r *ROI) Count(domainN int) int {
	if r == nil {
		return domainN
	}
	count := 0
	for i := 0; i < r.n; i++ {
		if r.bits.Contains(uint32(i)) {
			count++
		}
	}
	return count
}
