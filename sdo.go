// Package sdo decodes Oracle Spatial SDO_GEOMETRY values into go-geom
// geometries. It operates on the raw attribute tuple (SDO_GTYPE, SDO_SRID,
// SDO_POINT, SDO_ELEM_INFO, SDO_ORDINATES); fetching that tuple from a
// database row and encoding geometries back to SDO are out of scope.
package sdo

import (
	"math"
	"strconv"
	"strings"
)

// GeomType is the topology class encoded in the low two digits of SDO_GTYPE.
type GeomType int

// Topology classes, in SDO_GTYPE code order.
const (
	TypeUnknown GeomType = iota
	TypePoint
	TypeLine
	TypePolygon
	TypeCollection
	TypeMultiPoint
	TypeMultiLine
	TypeMultiPolygon
)

// String returns the topology class name.
func (t GeomType) String() string {
	switch t {
	case TypePoint:
		return "Point"
	case TypeLine:
		return "Line"
	case TypePolygon:
		return "Polygon"
	case TypeCollection:
		return "Collection"
	case TypeMultiPoint:
		return "MultiPoint"
	case TypeMultiLine:
		return "MultiLine"
	case TypeMultiPolygon:
		return "MultiPolygon"
	default:
		return "Unknown"
	}
}

// EType is the element type code of an SDO_ELEM_INFO triplet.
type EType int

// Element type codes. ETypeEnd is the sentinel returned by an ElemInfo
// probed past its last triplet.
const (
	ETypeEnd             EType = -1
	ETypePoint           EType = 1
	ETypeLine            EType = 2
	ETypePolygon         EType = 3
	ETypePolygonExterior EType = 1003
	ETypePolygonInterior EType = 2003
)

// Interpretation codes. For a point element any value greater than one is a
// point-cluster count rather than a fixed code.
const (
	InterpPoint      = 1
	InterpLineString = 1
	InterpRing       = 1
	InterpRectangle  = 3
)

// CompactPoint is the SDO_POINT attribute: a bare coordinate triple used as
// a shortcut encoding for standalone points. Z is NaN when the stored value
// was null.
type CompactPoint struct {
	X float64
	Y float64
	Z float64
}

// Geometry is a raw SDO_GEOMETRY value. It is read-only as far as this
// package is concerned; decoding never modifies it.
type Geometry struct {
	GType     GType         // SDO_GTYPE code
	SRID      int           // SDO_SRID, 0 if null
	Point     *CompactPoint // SDO_POINT, nil if null
	ElemInfo  []int         // SDO_ELEM_INFO triplets (startingOffset, etype, interpretation)
	Ordinates []float64     // SDO_ORDINATES, flat
}

// IsCompactPoint reports whether g uses the compact-point shortcut: the
// point attribute is present and the element/ordinate arrays are absent.
// Such values decode without consulting the element directory.
func (g *Geometry) IsCompactPoint() bool {
	return g.Point != nil && len(g.ElemInfo) == 0
}

// Elements returns a read-only directory view over the SDO_ELEM_INFO
// triplets of g.
func (g *Geometry) Elements() *ElemInfo {
	return newElemInfo(g.ElemInfo, len(g.Ordinates), g.GType.Dim())
}

// String formats g as the textual SDO_GEOMETRY constructor emitted by Oracle
// tooling. It is the inverse of ParseLiteral; a nil Geometry prints as NULL.
func (g *Geometry) String() string {
	if g == nil {
		return "NULL"
	}
	var b strings.Builder
	b.WriteString("SDO_GEOMETRY(")
	b.WriteString(strconv.Itoa(int(g.GType)))
	b.WriteString(", ")
	if g.SRID == 0 {
		b.WriteString("NULL")
	} else {
		b.WriteString(strconv.Itoa(g.SRID))
	}
	b.WriteString(", ")
	if g.Point == nil {
		b.WriteString("NULL")
	} else {
		b.WriteString("SDO_POINT_TYPE(")
		writePointOrdinate(&b, g.Point.X)
		b.WriteString(", ")
		writePointOrdinate(&b, g.Point.Y)
		b.WriteString(", ")
		writePointOrdinate(&b, g.Point.Z)
		b.WriteByte(')')
	}
	b.WriteString(", ")
	if g.ElemInfo == nil {
		b.WriteString("NULL")
	} else {
		b.WriteString("SDO_ELEM_INFO_ARRAY(")
		b.WriteString(elemInfoString(g.ElemInfo))
		b.WriteByte(')')
	}
	b.WriteString(", ")
	if g.Ordinates == nil {
		b.WriteString("NULL")
	} else {
		b.WriteString("SDO_ORDINATE_ARRAY(")
		for i, v := range g.Ordinates {
			if i > 0 {
				b.WriteString(", ")
			}
			writeOrdinate(&b, v)
		}
		b.WriteByte(')')
	}
	b.WriteByte(')')
	return b.String()
}

// elemInfoString formats raw triplets for diagnostics, with a wider gap
// between triplets so element boundaries are visible.
func elemInfoString(elemInfo []int) string {
	var b strings.Builder
	for i, v := range elemInfo {
		if i > 0 {
			b.WriteByte(',')
			if i%3 == 0 {
				b.WriteByte(' ')
			}
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

func writeOrdinate(b *strings.Builder, v float64) {
	b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
}

// writePointOrdinate prints NULL for NaN. SDO_POINT components use NaN to
// mark a stored null.
func writePointOrdinate(b *strings.Builder, v float64) {
	if math.IsNaN(v) {
		b.WriteString("NULL")
		return
	}
	writeOrdinate(b, v)
}
