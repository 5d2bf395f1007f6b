package sdo

import (
	"github.com/cockroachdb/errors"
	"github.com/paulmach/orb"
	geom "github.com/twpayne/go-geom"
)

// ToOrb converts a decoded geometry to its orb equivalent. orb geometries
// are strictly two-dimensional, so Z and M ordinates are dropped. A nil
// input converts to a nil geometry.
func ToOrb(t geom.T) (orb.Geometry, error) {
	if t == nil {
		return nil, nil
	}

	switch g := t.(type) {
	case *geom.Point:
		return pointToOrb(g), nil

	case *geom.MultiPoint:
		return multiPointToOrb(g), nil

	case *geom.LineString:
		return lineStringToOrb(g), nil

	case *geom.MultiLineString:
		mls := make(orb.MultiLineString, 0, g.NumLineStrings())
		for i := 0; i < g.NumLineStrings(); i++ {
			mls = append(mls, lineStringToOrb(g.LineString(i)))
		}
		return mls, nil

	case *geom.LinearRing:
		return ringToOrb(g), nil

	case *geom.Polygon:
		return polygonToOrb(g), nil

	case *geom.MultiPolygon:
		mp := make(orb.MultiPolygon, 0, g.NumPolygons())
		for i := 0; i < g.NumPolygons(); i++ {
			mp = append(mp, polygonToOrb(g.Polygon(i)))
		}
		return mp, nil

	case *geom.GeometryCollection:
		coll := make(orb.Collection, 0, g.NumGeoms())
		for i := 0; i < g.NumGeoms(); i++ {
			child, err := ToOrb(g.Geom(i))
			if err != nil {
				return nil, err
			}
			if child != nil {
				coll = append(coll, child)
			}
		}
		return coll, nil

	default:
		return nil, errors.Newf("sdo: geometry type %T is not representable in orb", t)
	}
}

// Helper functions for conversion

func pointToOrb(p *geom.Point) orb.Point {
	flat := p.FlatCoords()
	if len(flat) < 2 {
		return orb.Point{}
	}
	return orb.Point{flat[0], flat[1]}
}

func multiPointToOrb(mp *geom.MultiPoint) orb.MultiPoint {
	out := make(orb.MultiPoint, 0, mp.NumPoints())
	for i := 0; i < mp.NumPoints(); i++ {
		out = append(out, pointToOrb(mp.Point(i)))
	}
	return out
}

func lineStringToOrb(ls *geom.LineString) orb.LineString {
	out := make(orb.LineString, 0, ls.NumCoords())
	for i := 0; i < ls.NumCoords(); i++ {
		c := ls.Coord(i)
		out = append(out, orb.Point{c[0], c[1]})
	}
	return out
}

func ringToOrb(r *geom.LinearRing) orb.Ring {
	out := make(orb.Ring, 0, r.NumCoords())
	for i := 0; i < r.NumCoords(); i++ {
		c := r.Coord(i)
		out = append(out, orb.Point{c[0], c[1]})
	}
	return out
}

func polygonToOrb(p *geom.Polygon) orb.Polygon {
	out := make(orb.Polygon, 0, p.NumLinearRings())
	for i := 0; i < p.NumLinearRings(); i++ {
		out = append(out, ringToOrb(p.LinearRing(i)))
	}
	return out
}
