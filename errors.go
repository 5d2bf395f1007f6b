package sdo

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Classification sentinels for decode failures. Match with errors.Is; the
// concrete error is a *DecodeError carrying element context.
var (
	ErrDimension      = errors.New("sdo: unsupported dimension")
	ErrTypeCode       = errors.New("sdo: unsupported geometry type code")
	ErrMalformed      = errors.New("sdo: malformed encoding")
	ErrElementType    = errors.New("sdo: unsupported element type")
	ErrInterpretation = errors.New("sdo: unsupported interpretation")
)

// A DecodeError reports an encoding the decoder rejects. Kind is one of the
// Err* sentinels. Elem is the offending element index, or -1 when the error
// is not tied to a single element; EType and Interp carry the element's raw
// codes when it is.
type DecodeError struct {
	Kind   error
	Elem   int
	EType  EType
	Interp int

	msg string
}

func newDecodeError(kind error, elem int, format string, args ...interface{}) *DecodeError {
	return &DecodeError{
		Kind: kind,
		Elem: elem,
		msg:  fmt.Sprintf(format, args...),
	}
}

// Error implements the error interface.
func (e *DecodeError) Error() string { return e.msg }

// Unwrap exposes the classification sentinel to errors.Is.
func (e *DecodeError) Unwrap() error { return e.Kind }
