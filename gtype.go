package sdo

import (
	geom "github.com/twpayne/go-geom"
)

// GType is an SDO_GTYPE code of the form DLTT: D is the coordinate
// dimension, L the position of the measure ordinate within each coordinate
// (0 when there is none), and TT the topology class.
type GType int

// Dim returns the coordinate dimension digit.
func (g GType) Dim() int {
	return int(g) / 1000
}

// MeasurePos returns the 1-based position of the measure ordinate, or 0
// when the geometry carries no measure.
func (g GType) MeasurePos() int {
	return (int(g) % 1000) / 100
}

// Type returns the topology class encoded in the low two digits.
func (g GType) Type() GeomType {
	return GeomType(int(g) % 100)
}

// Layout resolves the go-geom layout for coordinates decoded at outputDim
// components. The measure ordinate keeps its meaning only where go-geom can
// represent it: third of three components is XYM, fourth of four is XYZM.
// A measure in position 3 of a 4-component output has no go-geom layout and
// is rejected, as are dimensions outside 2..4.
func (g GType) Layout(outputDim int) (geom.Layout, error) {
	dim := g.Dim()
	if dim < 2 || dim > 4 {
		return geom.NoLayout, newDecodeError(ErrDimension, -1, "sdo: dimension %d is not supported", dim)
	}
	m := g.MeasurePos()
	if m != 0 && (m < 3 || m > dim) {
		return geom.NoLayout, newDecodeError(ErrDimension, -1, "sdo: measure position %d is not valid for dimension %d", m, dim)
	}
	switch outputDim {
	case 2:
		return geom.XY, nil
	case 3:
		if m == 3 {
			return geom.XYM, nil
		}
		return geom.XYZ, nil
	case 4:
		if m == 3 {
			return geom.NoLayout, newDecodeError(ErrDimension, -1, "sdo: measure position 3 is not supported for 4-dimensional output")
		}
		return geom.XYZM, nil
	default:
		return geom.NoLayout, newDecodeError(ErrDimension, -1, "sdo: output dimension %d is not supported", outputDim)
	}
}
