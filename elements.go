package sdo

// ElemInfo is a read-only directory over the SDO_ELEM_INFO triplet array.
// Probing past the last triplet yields sentinel values rather than an
// error, which is what makes bounded scans over elements of unknown count
// possible without separate length checks.
type ElemInfo struct {
	triplets []int
	ordLen   int
	dim      int
}

func newElemInfo(triplets []int, ordLen, dim int) *ElemInfo {
	if dim < 1 {
		dim = 1 // such codes never decode; keeps CoordIndex total
	}
	return &ElemInfo{triplets: triplets, ordLen: ordLen, dim: dim}
}

// Len returns the number of complete triplets.
func (e *ElemInfo) Len() int {
	return len(e.triplets) / 3
}

// StartingOffset returns the 1-based ordinate offset of element i. Past the
// last complete triplet it returns one beyond the ordinate array, giving
// the final element's coordinate range a well-defined upper bound.
func (e *ElemInfo) StartingOffset(i int) int {
	if i >= e.Len() {
		return e.ordLen + 1
	}
	return e.triplets[i*3]
}

// EType returns the element type code of element i, or ETypeEnd past the
// last complete triplet.
func (e *ElemInfo) EType(i int) EType {
	if i >= e.Len() {
		return ETypeEnd
	}
	return EType(e.triplets[i*3+1])
}

// Interp returns the interpretation code of element i, or -1 past the last
// complete triplet.
func (e *ElemInfo) Interp(i int) int {
	if i >= e.Len() {
		return -1
	}
	return e.triplets[i*3+2]
}

// CoordIndex translates the 1-based starting offset of element i into a
// 0-based index into the assembled coordinate sequence.
func (e *ElemInfo) CoordIndex(i int) int {
	return (e.StartingOffset(i) - 1) / e.dim
}
