package sdo

import (
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ParseLiteral parses the SQL constructor form of an SDO_GEOMETRY value, as
// printed by Geometry.String or pasted from SQL*Plus output:
//
//	SDO_GEOMETRY(2003, NULL, NULL, SDO_ELEM_INFO_ARRAY(1,1003,3), SDO_ORDINATE_ARRAY(1,1, 5,7))
//
// Keywords match case-insensitively and the MDSYS. schema prefix is accepted
// before each type name. The literal NULL parses to a nil Geometry. Parsing
// does not validate the encoding; Decode does that.
func ParseLiteral(s string) (*Geometry, error) {
	p := &literalParser{src: s}
	if p.null() {
		if err := p.end(); err != nil {
			return nil, err
		}
		return nil, nil
	}
	p.word("MDSYS.")
	if !p.word("SDO_GEOMETRY") {
		return nil, p.fail("expected SDO_GEOMETRY or NULL")
	}
	if err := p.expect('('); err != nil {
		return nil, err
	}
	gtype, err := p.integer()
	if err != nil {
		return nil, err
	}
	if err := p.expect(','); err != nil {
		return nil, err
	}
	srid := 0
	if !p.null() {
		srid, err = p.integer()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expect(','); err != nil {
		return nil, err
	}
	var pt *CompactPoint
	if !p.null() {
		pt, err = p.pointType()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expect(','); err != nil {
		return nil, err
	}
	var elemInfo []int
	if !p.null() {
		elemInfo, err = p.intArray("SDO_ELEM_INFO_ARRAY")
		if err != nil {
			return nil, err
		}
	}
	if err := p.expect(','); err != nil {
		return nil, err
	}
	var ordinates []float64
	if !p.null() {
		ordinates, err = p.floatArray("SDO_ORDINATE_ARRAY")
		if err != nil {
			return nil, err
		}
	}
	if err := p.expect(')'); err != nil {
		return nil, err
	}
	if err := p.end(); err != nil {
		return nil, err
	}
	return &Geometry{
		GType:     GType(gtype),
		SRID:      srid,
		Point:     pt,
		ElemInfo:  elemInfo,
		Ordinates: ordinates,
	}, nil
}

// literalParser is a cursor over the literal text. All consuming methods
// skip leading whitespace themselves.
type literalParser struct {
	src string
	pos int
}

func (p *literalParser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

// word consumes w case-insensitively if it comes next.
func (p *literalParser) word(w string) bool {
	p.skipSpace()
	if len(p.src)-p.pos < len(w) {
		return false
	}
	if !strings.EqualFold(p.src[p.pos:p.pos+len(w)], w) {
		return false
	}
	p.pos += len(w)
	return true
}

// null consumes the keyword NULL, refusing a longer identifier that merely
// starts with it.
func (p *literalParser) null() bool {
	save := p.pos
	if !p.word("NULL") {
		return false
	}
	if p.pos < len(p.src) && isIdentByte(p.src[p.pos]) {
		p.pos = save
		return false
	}
	return true
}

func (p *literalParser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *literalParser) expect(c byte) error {
	p.skipSpace()
	if p.pos >= len(p.src) || p.src[p.pos] != c {
		return p.fail("expected " + strconv.Quote(string(c)))
	}
	p.pos++
	return nil
}

// end accepts an optional trailing semicolon and then requires the input to
// be exhausted.
func (p *literalParser) end() error {
	p.skipSpace()
	if p.pos < len(p.src) && p.src[p.pos] == ';' {
		p.pos++
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return p.fail("trailing input")
	}
	return nil
}

func (p *literalParser) fail(msg string) error {
	return errors.Newf("sdo: invalid literal at offset %d: %s", p.pos, msg)
}

func (p *literalParser) number() (float64, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) && isNumberByte(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return 0, p.fail("expected a number")
	}
	v, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		return 0, errors.Wrapf(err, "sdo: invalid literal at offset %d", start)
	}
	return v, nil
}

func (p *literalParser) integer() (int, error) {
	v, err := p.number()
	if err != nil {
		return 0, err
	}
	n := int(v)
	if float64(n) != v {
		return 0, errors.Newf("sdo: invalid literal: %v is not an integer", v)
	}
	return n, nil
}

// ordinate reads a number or NULL; a NULL ordinate becomes NaN.
func (p *literalParser) ordinate() (float64, error) {
	if p.null() {
		return math.NaN(), nil
	}
	return p.number()
}

func (p *literalParser) pointType() (*CompactPoint, error) {
	p.word("MDSYS.")
	if !p.word("SDO_POINT_TYPE") {
		return nil, p.fail("expected SDO_POINT_TYPE or NULL")
	}
	if err := p.expect('('); err != nil {
		return nil, err
	}
	x, err := p.ordinate()
	if err != nil {
		return nil, err
	}
	if err := p.expect(','); err != nil {
		return nil, err
	}
	y, err := p.ordinate()
	if err != nil {
		return nil, err
	}
	if err := p.expect(','); err != nil {
		return nil, err
	}
	z, err := p.ordinate()
	if err != nil {
		return nil, err
	}
	if err := p.expect(')'); err != nil {
		return nil, err
	}
	return &CompactPoint{X: x, Y: y, Z: z}, nil
}

func (p *literalParser) floatArray(name string) ([]float64, error) {
	p.word("MDSYS.")
	if !p.word(name) {
		return nil, p.fail("expected " + name + " or NULL")
	}
	if err := p.expect('('); err != nil {
		return nil, err
	}
	// An empty array is distinct from a NULL attribute: it parses to an
	// empty non-nil slice.
	vals := []float64{}
	if p.peek() != ')' {
		for {
			v, err := p.number()
			if err != nil {
				return nil, err
			}
			vals = append(vals, v)
			if p.peek() != ',' {
				break
			}
			p.pos++
		}
	}
	if err := p.expect(')'); err != nil {
		return nil, err
	}
	return vals, nil
}

func (p *literalParser) intArray(name string) ([]int, error) {
	vals, err := p.floatArray(name)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(vals))
	for i, v := range vals {
		n := int(v)
		if float64(n) != v {
			return nil, errors.Newf("sdo: invalid literal: %s holds non-integer %v", name, v)
		}
		out[i] = n
	}
	return out, nil
}

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

func isNumberByte(c byte) bool {
	return c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.' || c == 'e' || c == 'E'
}
