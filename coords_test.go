package sdo

import (
	"testing"

	"github.com/cockroachdb/errors"
	geom "github.com/twpayne/go-geom"
)

func TestSequence_Sub_FullRangeShares(t *testing.T) {
	flat := []float64{1, 2, 3, 4, 5, 6}
	s := NewSequence(geom.XY, flat)

	full := s.Sub(0, 3)
	flat[0] = 99
	if got := full.Ordinate(0, 0); got != 99 {
		t.Errorf("full range should share backing storage, got %v", got)
	}
}

func TestSequence_Sub_SubsetCopies(t *testing.T) {
	flat := []float64{1, 2, 3, 4, 5, 6}
	s := NewSequence(geom.XY, flat)

	part := s.Sub(1, 3)
	if n := part.Len(); n != 2 {
		t.Fatalf("expected 2 coordinates, got %d", n)
	}
	flat[2] = 99
	if got := part.Ordinate(0, 0); got == 99 {
		t.Error("strict subset should not share backing storage")
	}
	if got := part.Ordinate(0, 0); got != 3 {
		t.Errorf("expected 3, got %v", got)
	}
}

func TestSequence_Accessors(t *testing.T) {
	s := NewSequence(geom.XYZ, []float64{1, 2, 3, 4, 5, 6})

	if n := s.Len(); n != 2 {
		t.Fatalf("expected 2 coordinates, got %d", n)
	}
	if l := s.Layout(); l != geom.XYZ {
		t.Errorf("expected layout XYZ, got %v", l)
	}
	if d := s.Dim(); d != 3 {
		t.Errorf("expected dimension 3, got %d", d)
	}
	if v := s.Ordinate(1, 2); v != 6 {
		t.Errorf("expected 6, got %v", v)
	}
	c := s.Coord(1)
	if c[0] != 4 || c[1] != 5 || c[2] != 6 {
		t.Errorf("expected coordinate (4 5 6), got %v", c)
	}
}

func TestSequence_Empty(t *testing.T) {
	var s Sequence
	if n := s.Len(); n != 0 {
		t.Errorf("expected 0 coordinates, got %d", n)
	}
}

func TestIsClockwise(t *testing.T) {
	tests := []struct {
		name     string
		flat     []float64
		layout   geom.Layout
		expected bool
	}{
		{
			"counter-clockwise square",
			[]float64{0, 0, 10, 0, 10, 10, 0, 10, 0, 0},
			geom.XY,
			false,
		},
		{
			"clockwise square",
			[]float64{0, 0, 0, 10, 10, 10, 10, 0, 0, 0},
			geom.XY,
			true,
		},
		{
			"clockwise square with z",
			[]float64{0, 0, 5, 0, 10, 5, 10, 10, 5, 10, 0, 5, 0, 0, 5},
			geom.XYZ,
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isClockwise(NewSequence(tt.layout, tt.flat)); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestAssemble(t *testing.T) {
	tests := []struct {
		name      string
		layout    geom.Layout
		ordinates []float64
		ordDim    int
		expected  []float64
	}{
		{
			"2D passthrough",
			geom.XY,
			[]float64{1, 2, 3, 4},
			2,
			[]float64{1, 2, 3, 4},
		},
		{
			"3D flattened to 2D",
			geom.XY,
			[]float64{1, 2, 10, 3, 4, 20},
			3,
			[]float64{1, 2, 3, 4},
		},
		{
			"2D widened to 3D pads zero",
			geom.XYZ,
			[]float64{1, 2, 3, 4},
			2,
			[]float64{1, 2, 0, 3, 4, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := assemble(flatSequenceFactory{}, tt.layout, tt.ordinates, tt.ordDim, true)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := seq.FlatCoords()
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %d ordinates, got %d", len(tt.expected), len(got))
			}
			for i, v := range tt.expected {
				if got[i] != v {
					t.Errorf("ordinate %d: expected %v, got %v", i, v, got[i])
				}
			}
		})
	}
}

func TestAssemble_LengthMismatch(t *testing.T) {
	_, err := assemble(flatSequenceFactory{}, geom.XY, []float64{1, 2, 3}, 2, true)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("expected ErrMalformed, got %v", err)
	}
}

func TestAssemble_LengthUnchecked(t *testing.T) {
	// The compact-point triple is assembled without the length check: three
	// ordinates at dimension 2 read as a single coordinate.
	seq, err := assemble(flatSequenceFactory{}, geom.XY, []float64{7, 8, 9}, 2, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := seq.Len(); n != 1 {
		t.Fatalf("expected 1 coordinate, got %d", n)
	}
	if x, y := seq.Ordinate(0, 0), seq.Ordinate(0, 1); x != 7 || y != 8 {
		t.Errorf("expected (7 8), got (%v %v)", x, y)
	}
}

func TestAssemble_Empty(t *testing.T) {
	seq, err := assemble(flatSequenceFactory{}, geom.XY, nil, 2, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := seq.Len(); n != 0 {
		t.Errorf("expected 0 coordinates, got %d", n)
	}
	if l := seq.Layout(); l != geom.XY {
		t.Errorf("expected layout XY, got %v", l)
	}
}
