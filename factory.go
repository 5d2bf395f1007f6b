package sdo

import (
	"github.com/cockroachdb/errors"
	geom "github.com/twpayne/go-geom"
)

// A Factory constructs the geometry values the decoder emits. Decoding
// calls at most one constructor per decoded shape, passing coordinate
// sequences for atomic shapes and previously constructed children for
// composite ones. The default implementation is GeomFactory; injecting
// another implementation retargets decoding at a different geometry model.
type Factory interface {
	Point(seq Sequence) (geom.T, error)
	LineString(seq Sequence) (geom.T, error)
	LinearRing(seq Sequence) (geom.T, error)
	Polygon(shell geom.T, holes []geom.T) (geom.T, error)
	MultiPoint(seq Sequence) (geom.T, error)
	MultiLineString(lines []geom.T) (geom.T, error)
	MultiPolygon(polygons []geom.T) (geom.T, error)
	Collection(children []geom.T) (geom.T, error)
}

// GeomFactory builds go-geom geometries over flat coordinates. It is the
// factory used when DecoderOptions leaves Factory nil.
type GeomFactory struct{}

// Point builds a point from a sequence of at most one coordinate; an empty
// sequence yields an empty point.
func (GeomFactory) Point(seq Sequence) (geom.T, error) {
	switch seq.Len() {
	case 0:
		return geom.NewPointEmpty(seq.Layout()), nil
	case 1:
		return geom.NewPointFlat(seq.Layout(), seq.FlatCoords()), nil
	default:
		return nil, errors.Newf("sdo: Point requires at most one coordinate, got %d", seq.Len())
	}
}

// LineString builds a line string from the sequence.
func (GeomFactory) LineString(seq Sequence) (geom.T, error) {
	return geom.NewLineStringFlat(seq.Layout(), seq.FlatCoords()), nil
}

// LinearRing builds a ring from the sequence. Closure is not enforced here;
// the ring carries whatever coordinates the encoding resolved to.
func (GeomFactory) LinearRing(seq Sequence) (geom.T, error) {
	return geom.NewLinearRingFlat(seq.Layout(), seq.FlatCoords()), nil
}

// Polygon assembles a shell and its holes, all of which must be go-geom
// linear rings.
func (GeomFactory) Polygon(shell geom.T, holes []geom.T) (geom.T, error) {
	ring, ok := shell.(*geom.LinearRing)
	if !ok {
		return nil, errors.Newf("sdo: polygon shell must be a *geom.LinearRing, got %T", shell)
	}
	poly := geom.NewPolygon(ring.Layout())
	if err := poly.Push(ring); err != nil {
		return nil, err
	}
	for _, h := range holes {
		hole, ok := h.(*geom.LinearRing)
		if !ok {
			return nil, errors.Newf("sdo: polygon hole must be a *geom.LinearRing, got %T", h)
		}
		if err := poly.Push(hole); err != nil {
			return nil, err
		}
	}
	return poly, nil
}

// MultiPoint builds a multipoint with one member point per coordinate in
// the sequence.
func (GeomFactory) MultiPoint(seq Sequence) (geom.T, error) {
	return geom.NewMultiPointFlat(seq.Layout(), seq.FlatCoords()), nil
}

// MultiLineString collects go-geom line strings. An empty slice yields an
// empty multi with no layout.
func (GeomFactory) MultiLineString(lines []geom.T) (geom.T, error) {
	ml := geom.NewMultiLineString(childLayout(lines))
	for _, l := range lines {
		ls, ok := l.(*geom.LineString)
		if !ok {
			return nil, errors.Newf("sdo: multi line string member must be a *geom.LineString, got %T", l)
		}
		if err := ml.Push(ls); err != nil {
			return nil, err
		}
	}
	return ml, nil
}

// MultiPolygon collects go-geom polygons. An empty slice yields an empty
// multi with no layout.
func (GeomFactory) MultiPolygon(polygons []geom.T) (geom.T, error) {
	mp := geom.NewMultiPolygon(childLayout(polygons))
	for _, p := range polygons {
		poly, ok := p.(*geom.Polygon)
		if !ok {
			return nil, errors.Newf("sdo: multi polygon member must be a *geom.Polygon, got %T", p)
		}
		if err := mp.Push(poly); err != nil {
			return nil, err
		}
	}
	return mp, nil
}

// Collection wraps children in a geometry collection.
func (GeomFactory) Collection(children []geom.T) (geom.T, error) {
	gc := geom.NewGeometryCollection()
	if err := gc.Push(children...); err != nil {
		return nil, err
	}
	return gc, nil
}

func childLayout(children []geom.T) geom.Layout {
	if len(children) == 0 {
		return geom.NoLayout
	}
	return children[0].Layout()
}
