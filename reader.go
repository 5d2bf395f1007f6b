package sdo

import (
	geom "github.com/twpayne/go-geom"
)

// DecoderOptions configures a Decoder.
type DecoderOptions struct {
	// Dim forces the output coordinate dimension. 0 keeps each encoding's
	// native dimension; values outside 2..4 fail every decode.
	Dim int
	// Factory builds the output geometry values. nil selects GeomFactory.
	Factory Factory
	// Sequences allocates coordinate storage during assembly. nil selects
	// the built-in flat []float64 implementation.
	Sequences SequenceFactory
}

// Decoder converts SDO_GEOMETRY values into geometry values. Configuration
// is fixed at construction, so one Decoder may serve concurrent Decode
// calls; each call works only on its own input and output.
type Decoder struct {
	dim  int
	f    Factory
	seqs SequenceFactory
}

// NewDecoder returns a Decoder configured by opts; a nil opts selects all
// defaults.
func NewDecoder(opts *DecoderOptions) *Decoder {
	d := &Decoder{}
	if opts != nil {
		d.dim = opts.Dim
		d.f = opts.Factory
		d.seqs = opts.Sequences
	}
	if d.f == nil {
		d.f = GeomFactory{}
	}
	if d.seqs == nil {
		d.seqs = flatSequenceFactory{}
	}
	return d
}

// Decode converts one SDO_GEOMETRY value using a default Decoder.
func Decode(g *Geometry) (geom.T, error) {
	return NewDecoder(nil).Decode(g)
}

// Decode converts g into a geometry built by the configured factory. A nil
// input decodes to a nil geometry, mirroring a null SDO_GEOMETRY column
// value. The result carries g's SRID regardless of what the factory set.
func (d *Decoder) Decode(g *Geometry) (geom.T, error) {
	if g == nil {
		return nil, nil
	}
	dim := g.GType.Dim()
	outputDim := dim
	if d.dim != 0 {
		outputDim = d.dim
	}
	layout, err := g.GType.Layout(outputDim)
	if err != nil {
		return nil, err
	}

	// The compact-point shortcut carries the whole geometry in the point
	// triple; the element directory is never consulted.
	if g.IsCompactPoint() {
		seq, err := assemble(d.seqs, layout, []float64{g.Point.X, g.Point.Y, g.Point.Z}, dim, false)
		if err != nil {
			return nil, err
		}
		pt, err := d.f.Point(seq)
		if err != nil {
			return nil, err
		}
		return applySRID(pt, g.SRID), nil
	}

	seq, err := assemble(d.seqs, layout, g.Ordinates, dim, true)
	if err != nil {
		return nil, err
	}
	b := &builder{
		dir: newElemInfo(g.ElemInfo, len(g.Ordinates), dim),
		seq: seq,
		f:   d.f,
	}

	var out geom.T
	switch g.GType.Type() {
	case TypePoint:
		out, err = b.point(0)
	case TypeLine:
		out, err = b.line(0)
	case TypePolygon:
		out, _, err = b.polygon(0)
	case TypeCollection:
		out, err = b.collection()
	case TypeMultiPoint:
		out, err = b.multiPoint(0)
	case TypeMultiLine:
		out, err = b.multiLine()
	case TypeMultiPolygon:
		out, err = b.multiPolygon()
	default:
		err = newDecodeError(ErrTypeCode, -1, "sdo: SDO_GTYPE %d is not supported", int(g.GType))
	}
	if err != nil {
		return nil, err
	}
	return applySRID(out, g.SRID), nil
}

// builder is a forward-only consumer over the element directory. Shape
// rules read their own element and, for polygons, consume following hole
// candidates; the cursor never moves backwards.
type builder struct {
	dir *ElemInfo
	seq Sequence
	f   Factory
}

// subSeq resolves the coordinate range [CoordIndex(elem), CoordIndex(elem+1))
// of element elem. The upper bound derives from the next element's offset,
// which no preceding check has seen, so it is validated here.
func (b *builder) subSeq(elem int) (Sequence, error) {
	start := b.dir.CoordIndex(elem)
	end := b.dir.CoordIndex(elem + 1)
	if end < start || end > b.seq.Len() {
		return Sequence{}, errOffset(b.dir, elem+1)
	}
	return b.seq.Sub(start, end), nil
}

func (b *builder) point(elem int) (geom.T, error) {
	if err := checkOrdinates(b.dir, elem); err != nil {
		return nil, err
	}
	if err := checkEType(b.dir, elem, "Point", ETypePoint); err != nil {
		return nil, err
	}
	if err := checkInterp(b.dir, elem, "Point", InterpPoint); err != nil {
		return nil, err
	}
	sub, err := b.subSeq(elem)
	if err != nil {
		return nil, err
	}
	if sub.Len() > 1 {
		return nil, elemError(ErrMalformed, b.dir, elem,
			"sdo: Point range has %d coordinates (element %d)", sub.Len(), elem)
	}
	return b.f.Point(sub)
}

func (b *builder) line(elem int) (geom.T, error) {
	if err := checkOrdinates(b.dir, elem); err != nil {
		return nil, err
	}
	if err := checkEType(b.dir, elem, "LineString", ETypeLine); err != nil {
		return nil, err
	}
	if err := checkInterp(b.dir, elem, "LineString", InterpLineString); err != nil {
		return nil, err
	}
	sub, err := b.subSeq(elem)
	if err != nil {
		return nil, err
	}
	return b.f.LineString(sub)
}

// multiPoint reads a point cluster: the interpretation is the point count
// and the element's coordinate range must hold exactly that many points.
func (b *builder) multiPoint(elem int) (geom.T, error) {
	if err := checkOrdinates(b.dir, elem); err != nil {
		return nil, err
	}
	if err := checkEType(b.dir, elem, "MultiPoint", ETypePoint); err != nil {
		return nil, err
	}
	interp := b.dir.Interp(elem)
	if interp <= 1 {
		return nil, errInterp(b.dir, elem, "MultiPoint")
	}
	sub, err := b.subSeq(elem)
	if err != nil {
		return nil, err
	}
	if sub.Len() != interp {
		return nil, elemError(ErrMalformed, b.dir, elem,
			"sdo: point cluster of %d has %d coordinates (element %d)", interp, sub.Len(), elem)
	}
	return b.f.MultiPoint(sub)
}

// ring resolves and validates one ring element's coordinates. A rectangle
// interpretation expands its two corner coordinates into a closed
// five-point ring; measures and higher ordinates of the corners are not
// carried over.
func (b *builder) ring(elem int) (Sequence, error) {
	if err := checkOrdinates(b.dir, elem); err != nil {
		return Sequence{}, err
	}
	if err := checkEType(b.dir, elem, "Polygon", ETypePolygon, ETypePolygonExterior, ETypePolygonInterior); err != nil {
		return Sequence{}, err
	}
	if err := checkInterp(b.dir, elem, "Polygon", InterpRing, InterpRectangle); err != nil {
		return Sequence{}, err
	}
	sub, err := b.subSeq(elem)
	if err != nil {
		return Sequence{}, err
	}
	if b.dir.Interp(elem) == InterpRectangle {
		if sub.Len() != 2 {
			return Sequence{}, elemError(ErrMalformed, b.dir, elem,
				"sdo: rectangle requires exactly 2 corner coordinates, got %d (element %d)", sub.Len(), elem)
		}
		return rectangleRing(sub), nil
	}
	if sub.Len() == 0 {
		return Sequence{}, elemError(ErrMalformed, b.dir, elem,
			"sdo: ring has an empty coordinate range (element %d)", elem)
	}
	return sub, nil
}

// rectangleRing expands opposite corners into the closed ring
// min, (max.x, min.y), max, (min.x, max.y), min.
func rectangleRing(corners Sequence) Sequence {
	stride := corners.Dim()
	minX, minY := corners.Ordinate(0, 0), corners.Ordinate(0, 1)
	maxX, maxY := corners.Ordinate(1, 0), corners.Ordinate(1, 1)
	flat := make([]float64, 5*stride)
	set := func(i int, x, y float64) {
		flat[i*stride] = x
		flat[i*stride+1] = y
	}
	set(0, minX, minY)
	set(1, maxX, minY)
	set(2, maxX, maxY)
	set(3, minX, maxY)
	set(4, minX, minY)
	return NewSequence(corners.Layout(), flat)
}

// polygon reads a shell at elem and then consumes hole elements: every
// explicitly interior one, and generic polygon rings wound clockwise. The
// scan stops at the first element that is neither. Winding alone decides
// whether a generic ring is a hole, so encodings that do not wind shells
// counter-clockwise are misread; rings tagged interior are immune. Returns
// the number of elements consumed, shell included.
func (b *builder) polygon(elem int) (geom.T, int, error) {
	if err := checkOrdinates(b.dir, elem); err != nil {
		return nil, 0, err
	}
	if err := checkEType(b.dir, elem, "Polygon", ETypePolygon, ETypePolygonExterior); err != nil {
		return nil, 0, err
	}
	shellSeq, err := b.ring(elem)
	if err != nil {
		return nil, 0, err
	}
	shell, err := b.f.LinearRing(shellSeq)
	if err != nil {
		return nil, 0, err
	}
	var holes []geom.T
	n := 1
	for i := elem + 1; ; i++ {
		et := b.dir.EType(i)
		if et != ETypePolygonInterior && et != ETypePolygon {
			break
		}
		seq, err := b.ring(i)
		if err != nil {
			return nil, 0, err
		}
		if et == ETypePolygon && !isClockwise(seq) {
			break // next shell, not a hole
		}
		hole, err := b.f.LinearRing(seq)
		if err != nil {
			return nil, 0, err
		}
		holes = append(holes, hole)
		n++
	}
	poly, err := b.f.Polygon(shell, holes)
	if err != nil {
		return nil, 0, err
	}
	return poly, n, nil
}

// multiLine consumes consecutive line elements, stopping at the first
// element of any other type. Zero consumed elements yield an empty multi.
func (b *builder) multiLine() (geom.T, error) {
	var lines []geom.T
	for i := 0; b.dir.EType(i) == ETypeLine; i++ {
		l, err := b.line(i)
		if err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return b.f.MultiLineString(lines)
}

// multiPolygon consumes consecutive polygon shells, skipping the hole
// elements each shell consumed, and stops at the first element that is not
// a shell.
func (b *builder) multiPolygon() (geom.T, error) {
	var polys []geom.T
	i := 0
	for {
		et := b.dir.EType(i)
		if et != ETypePolygon && et != ETypePolygonExterior {
			break
		}
		poly, n, err := b.polygon(i)
		if err != nil {
			return nil, err
		}
		polys = append(polys, poly)
		i += n
	}
	return b.f.MultiPolygon(polys)
}

// collection dispatches each element through its own shape rule until the
// directory sentinel. Polygon children consume their holes, so the scan
// never revisits them; an interior ring directly at collection scope has no
// shell to attach to and is rejected.
func (b *builder) collection() (geom.T, error) {
	if err := checkOrdinates(b.dir, 0); err != nil {
		return nil, err
	}
	var children []geom.T
	for i := 0; ; i++ {
		et := b.dir.EType(i)
		if et == ETypeEnd {
			break
		}
		var (
			child geom.T
			err   error
		)
		switch et {
		case ETypePoint:
			if interp := b.dir.Interp(i); interp == InterpPoint {
				child, err = b.point(i)
			} else if interp > 1 {
				child, err = b.multiPoint(i)
			} else {
				err = errInterp(b.dir, i, "Point")
			}
		case ETypeLine:
			child, err = b.line(i)
		case ETypePolygon, ETypePolygonExterior:
			var n int
			child, n, err = b.polygon(i)
			i += n - 1
		case ETypePolygonInterior:
			err = elemError(ErrElementType, b.dir, i,
				"sdo: SDO_ETYPE 2003 (interior ring) is not expected at collection scope (element %d)", i)
		default:
			err = elemError(ErrElementType, b.dir, i,
				"sdo: SDO_ETYPE %d is not representable (element %d; compound and curved elements are not supported)", int(et), i)
		}
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return b.f.Collection(children)
}

// applySRID stamps the source SRID on the decoded value, overriding
// whatever the factory set.
func applySRID(t geom.T, srid int) geom.T {
	switch g := t.(type) {
	case *geom.Point:
		g.SetSRID(srid)
	case *geom.LineString:
		g.SetSRID(srid)
	case *geom.LinearRing:
		g.SetSRID(srid)
	case *geom.Polygon:
		g.SetSRID(srid)
	case *geom.MultiPoint:
		g.SetSRID(srid)
	case *geom.MultiLineString:
		g.SetSRID(srid)
	case *geom.MultiPolygon:
		g.SetSRID(srid)
	case *geom.GeometryCollection:
		g.SetSRID(srid)
	}
	return t
}
