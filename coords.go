package sdo

import (
	geom "github.com/twpayne/go-geom"
)

// Sequence is an immutable ordered set of coordinates over flat storage.
// All coordinates share one layout; component d of coordinate i lives at
// flat[i*stride+d].
type Sequence struct {
	layout geom.Layout
	stride int
	flat   []float64
}

// NewSequence wraps flat coordinate storage in a Sequence. The length of
// flat must be a multiple of the layout stride.
func NewSequence(layout geom.Layout, flat []float64) Sequence {
	return Sequence{layout: layout, stride: layout.Stride(), flat: flat}
}

// Len returns the number of coordinates.
func (s Sequence) Len() int {
	if s.stride == 0 {
		return 0
	}
	return len(s.flat) / s.stride
}

// Layout returns the coordinate layout.
func (s Sequence) Layout() geom.Layout {
	return s.layout
}

// Dim returns the number of components per coordinate.
func (s Sequence) Dim() int {
	return s.stride
}

// Ordinate returns component d of coordinate i.
func (s Sequence) Ordinate(i, d int) float64 {
	return s.flat[i*s.stride+d]
}

// Coord returns coordinate i as a view into the underlying storage.
func (s Sequence) Coord(i int) geom.Coord {
	return geom.Coord(s.flat[i*s.stride : (i+1)*s.stride])
}

// FlatCoords returns the underlying flat storage, which must not be
// modified.
func (s Sequence) FlatCoords() []float64 {
	return s.flat
}

// Sub returns the coordinate range [start, end). A range covering the whole
// sequence returns the sequence itself; a strict subset is copied so the
// result shares no storage with coordinates outside the range.
func (s Sequence) Sub(start, end int) Sequence {
	if start == 0 && end == s.Len() {
		return s
	}
	flat := make([]float64, (end-start)*s.stride)
	copy(flat, s.flat[start*s.stride:end*s.stride])
	return Sequence{layout: s.layout, stride: s.stride, flat: flat}
}

// isClockwise reports whether the ring described by s has negative signed
// area over its XY components.
func isClockwise(s Sequence) bool {
	return doubleArea(s.flat, 0, len(s.flat), s.stride) < 0
}

// doubleArea returns twice the signed area of the ring in flatCoords from
// offset to end: positive for counter-clockwise winding, negative for
// clockwise.
func doubleArea(flatCoords []float64, offset, end, stride int) float64 {
	var doubleArea float64
	for i := offset + stride; i < end; i += stride {
		doubleArea += (flatCoords[i+1] - flatCoords[i+1-stride]) * (flatCoords[i] + flatCoords[i-stride])
	}
	return doubleArea
}

// A MutableSequence accumulates ordinates during assembly and is finalized
// exactly once into an immutable Sequence.
type MutableSequence interface {
	// SetOrdinate sets component d of coordinate i. Components never
	// written keep the factory's default value.
	SetOrdinate(i, d int, v float64)
	// Sequence finalizes the accumulated coordinates.
	Sequence() Sequence
}

// A SequenceFactory allocates coordinate storage for decoding. The default
// implementation backs sequences with a flat []float64 initialized to zero.
type SequenceFactory interface {
	New(count int, layout geom.Layout) MutableSequence
}

type flatSequenceFactory struct{}

func (flatSequenceFactory) New(count int, layout geom.Layout) MutableSequence {
	return &flatSequence{
		layout: layout,
		stride: layout.Stride(),
		flat:   make([]float64, count*layout.Stride()),
	}
}

type flatSequence struct {
	layout geom.Layout
	stride int
	flat   []float64
}

func (s *flatSequence) SetOrdinate(i, d int, v float64) {
	s.flat[i*s.stride+d] = v
}

func (s *flatSequence) Sequence() Sequence {
	return Sequence{layout: s.layout, stride: s.stride, flat: s.flat}
}

// assemble builds a Sequence at the layout's dimensionality from a flat
// ordinate array of ordDim components per coordinate. Only the first
// min(layout stride, ordDim) components of each coordinate are copied;
// extra output components keep the sequence factory's default (zero for
// the built-in factory). checkLen enables the multiple-of-dimension check,
// which is skipped for the compact-point triple.
func assemble(seqs SequenceFactory, layout geom.Layout, ordinates []float64, ordDim int, checkLen bool) (Sequence, error) {
	if len(ordinates) == 0 {
		return Sequence{layout: layout, stride: layout.Stride()}, nil
	}
	if checkLen && len(ordinates)%ordDim != 0 {
		return Sequence{}, newDecodeError(ErrMalformed, -1,
			"sdo: dimension %d is inconsistent with SDO_ORDINATES length %d", ordDim, len(ordinates))
	}
	nCoord := len(ordinates) / ordDim
	readDim := layout.Stride()
	if ordDim < readDim {
		readDim = ordDim
	}
	ms := seqs.New(nCoord, layout)
	for i := 0; i < nCoord; i++ {
		for d := 0; d < readDim; d++ {
			ms.SetOrdinate(i, d, ordinates[i*ordDim+d])
		}
	}
	return ms.Sequence(), nil
}
