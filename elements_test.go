package sdo

import (
	"testing"
)

func TestElemInfo_Probes(t *testing.T) {
	// Polygon with one hole: shell at ordinate 1, hole at ordinate 11,
	// twenty ordinates of dimension 2.
	g := &Geometry{
		GType:     2003,
		ElemInfo:  []int{1, 1003, 1, 11, 2003, 1},
		Ordinates: make([]float64, 20),
	}
	dir := g.Elements()

	if n := dir.Len(); n != 2 {
		t.Fatalf("expected 2 elements, got %d", n)
	}

	tests := []struct {
		elem       int
		offset     int
		etype      EType
		interp     int
		coordIndex int
	}{
		{0, 1, ETypePolygonExterior, 1, 0},
		{1, 11, ETypePolygonInterior, 1, 5},
		// Past the last element: sentinel values.
		{2, 21, ETypeEnd, -1, 10},
		{3, 21, ETypeEnd, -1, 10},
	}

	for _, tt := range tests {
		if off := dir.StartingOffset(tt.elem); off != tt.offset {
			t.Errorf("element %d: expected starting offset %d, got %d", tt.elem, tt.offset, off)
		}
		if et := dir.EType(tt.elem); et != tt.etype {
			t.Errorf("element %d: expected etype %d, got %d", tt.elem, tt.etype, et)
		}
		if in := dir.Interp(tt.elem); in != tt.interp {
			t.Errorf("element %d: expected interpretation %d, got %d", tt.elem, tt.interp, in)
		}
		if ci := dir.CoordIndex(tt.elem); ci != tt.coordIndex {
			t.Errorf("element %d: expected coord index %d, got %d", tt.elem, tt.coordIndex, ci)
		}
	}
}

func TestElemInfo_CoordIndexTruncates(t *testing.T) {
	// Offsets that do not fall on a coordinate boundary truncate down.
	dir := newElemInfo([]int{1, 2, 1, 4, 2, 1, 5, 2, 1}, 12, 3)

	tests := []struct {
		elem     int
		expected int
	}{
		{0, 0}, // (1-1)/3
		{1, 1}, // (4-1)/3
		{2, 1}, // (5-1)/3, misaligned
	}

	for _, tt := range tests {
		if ci := dir.CoordIndex(tt.elem); ci != tt.expected {
			t.Errorf("element %d: expected coord index %d, got %d", tt.elem, tt.expected, ci)
		}
	}
}

func TestElemInfo_PartialTriplet(t *testing.T) {
	// A trailing partial triplet does not count as an element.
	dir := newElemInfo([]int{1, 2, 1, 7, 2}, 12, 2)

	if n := dir.Len(); n != 1 {
		t.Errorf("expected 1 element, got %d", n)
	}
	if et := dir.EType(1); et != ETypeEnd {
		t.Errorf("expected sentinel etype for element 1, got %d", et)
	}
}

func TestGeometry_IsCompactPoint(t *testing.T) {
	tests := []struct {
		name     string
		g        *Geometry
		expected bool
	}{
		{
			"point attribute only",
			&Geometry{GType: 2001, Point: &CompactPoint{X: 1, Y: 2}},
			true,
		},
		{
			"no point attribute",
			&Geometry{GType: 2001, ElemInfo: []int{1, 1, 1}, Ordinates: []float64{1, 2}},
			false,
		},
		{
			"point attribute alongside elements",
			&Geometry{GType: 2002, Point: &CompactPoint{X: 1, Y: 2}, ElemInfo: []int{1, 2, 1}, Ordinates: []float64{1, 2, 3, 4}},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g.IsCompactPoint(); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
