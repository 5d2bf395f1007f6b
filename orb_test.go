package sdo

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/paulmach/orb"
	geom "github.com/twpayne/go-geom"
)

func TestToOrb(t *testing.T) {
	tests := []struct {
		name     string
		geom     geom.T
		expected orb.Geometry
	}{
		{
			"Point",
			geom.NewPointFlat(geom.XY, []float64{1.5, 2.5}),
			orb.Point{1.5, 2.5},
		},
		{
			"PointDropsZ",
			geom.NewPointFlat(geom.XYZ, []float64{1, 2, 3}),
			orb.Point{1, 2},
		},
		{
			"EmptyPoint",
			geom.NewPointEmpty(geom.XY),
			orb.Point{},
		},
		{
			"MultiPoint",
			geom.NewMultiPointFlat(geom.XY, []float64{1, 2, 3, 4}),
			orb.MultiPoint{{1, 2}, {3, 4}},
		},
		{
			"MultiPointDropsZ",
			geom.NewMultiPointFlat(geom.XYZ, []float64{1, 2, 9, 3, 4, 9}),
			orb.MultiPoint{{1, 2}, {3, 4}},
		},
		{
			"LineString",
			geom.NewLineStringFlat(geom.XY, []float64{0, 0, 1, 1, 2, 0}),
			orb.LineString{{0, 0}, {1, 1}, {2, 0}},
		},
		{
			"MultiLineString",
			geom.NewMultiLineStringFlat(geom.XY, []float64{0, 0, 1, 1, 5, 5, 6, 6}, []int{4, 8}),
			orb.MultiLineString{{{0, 0}, {1, 1}}, {{5, 5}, {6, 6}}},
		},
		{
			"LinearRing",
			geom.NewLinearRingFlat(geom.XY, []float64{0, 0, 4, 0, 4, 4, 0, 0}),
			orb.Ring{{0, 0}, {4, 0}, {4, 4}, {0, 0}},
		},
		{
			"PolygonWithHole",
			geom.NewPolygonFlat(geom.XY,
				[]float64{0, 0, 10, 0, 10, 10, 0, 10, 0, 0, 2, 2, 8, 2, 8, 8, 2, 8, 2, 2},
				[]int{10, 20}),
			orb.Polygon{
				{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}},
				{{2, 2}, {8, 2}, {8, 8}, {2, 8}, {2, 2}}, // hole
			},
		},
		{
			"MultiPolygon",
			geom.NewMultiPolygonFlat(geom.XY,
				[]float64{0, 0, 5, 0, 5, 5, 0, 0, 10, 10, 15, 10, 15, 15, 10, 10},
				[][]int{{8}, {16}}),
			orb.MultiPolygon{
				{{{0, 0}, {5, 0}, {5, 5}, {0, 0}}},
				{{{10, 10}, {15, 10}, {15, 15}, {10, 10}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToOrb(tt.geom)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("conversion mismatch (-expected +got):\n%s", diff)
			}
		})
	}
}

func TestToOrb_Collection(t *testing.T) {
	coll := geom.NewGeometryCollection()
	if err := coll.Push(
		geom.NewPointFlat(geom.XY, []float64{1, 2}),
		geom.NewLineStringFlat(geom.XY, []float64{0, 0, 1, 1}),
	); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := ToOrb(coll)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := orb.Collection{
		orb.Point{1, 2},
		orb.LineString{{0, 0}, {1, 1}},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("conversion mismatch (-expected +got):\n%s", diff)
	}
}

func TestToOrb_NestedCollection(t *testing.T) {
	inner := geom.NewGeometryCollection()
	if err := inner.Push(geom.NewPointFlat(geom.XY, []float64{7, 8})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	outer := geom.NewGeometryCollection()
	if err := outer.Push(geom.NewPointFlat(geom.XY, []float64{1, 2}), inner); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := ToOrb(outer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := orb.Collection{
		orb.Point{1, 2},
		orb.Collection{orb.Point{7, 8}},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("conversion mismatch (-expected +got):\n%s", diff)
	}
}

func TestToOrb_Nil(t *testing.T) {
	got, err := ToOrb(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil geometry for nil input, got %v", got)
	}
}

func TestToOrb_Decoded(t *testing.T) {
	g := &Geometry{
		GType:     2003,
		SRID:      4326,
		ElemInfo:  []int{1, 1003, 3},
		Ordinates: []float64{1, 1, 5, 7},
	}

	decoded, err := Decode(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := ToOrb(decoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := orb.Polygon{{{1, 1}, {5, 1}, {5, 7}, {1, 7}, {1, 1}}}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("conversion mismatch (-expected +got):\n%s", diff)
	}
}
