package sdo

// elemError builds a DecodeError blamed on element elem, capturing the
// element's raw codes for diagnosis.
func elemError(kind error, dir *ElemInfo, elem int, format string, args ...interface{}) *DecodeError {
	e := newDecodeError(kind, elem, format, args...)
	e.EType = dir.EType(elem)
	e.Interp = dir.Interp(elem)
	return e
}

// checkEType verifies that element elem carries one of the element type
// codes the named shape rule accepts.
func checkEType(dir *ElemInfo, elem int, shape string, allowed ...EType) error {
	et := dir.EType(elem)
	for _, a := range allowed {
		if et == a {
			return nil
		}
	}
	return elemError(ErrElementType, dir, elem,
		"sdo: SDO_ETYPE %d is not supported when reading a %s (element %d)", et, shape, elem)
}

// checkInterp verifies that element elem carries one of the interpretation
// codes the named shape rule accepts.
func checkInterp(dir *ElemInfo, elem int, shape string, allowed ...int) error {
	interp := dir.Interp(elem)
	for _, a := range allowed {
		if interp == a {
			return nil
		}
	}
	return errInterp(dir, elem, shape)
}

func errInterp(dir *ElemInfo, elem int, shape string) error {
	return elemError(ErrInterpretation, dir, elem,
		"sdo: SDO_INTERPRETATION %d is not supported when reading a %s (element %d)", dir.Interp(elem), shape, elem)
}

// checkOrdinates verifies that the starting offset of element elem falls
// within the ordinate array.
func checkOrdinates(dir *ElemInfo, elem int) error {
	off := dir.StartingOffset(elem)
	if off < 1 || off > dir.ordLen {
		return errOffset(dir, elem)
	}
	return nil
}

func errOffset(dir *ElemInfo, elem int) error {
	return elemError(ErrMalformed, dir, elem,
		"sdo: STARTING_OFFSET %d inconsistent with ORDINATES length %d (element %d in SDO_ELEM_INFO %s)",
		dir.StartingOffset(elem), dir.ordLen, elem, elemInfoString(dir.triplets))
}
