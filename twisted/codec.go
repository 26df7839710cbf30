package twisted

import (
	"fmt"
	"math/big"

	"github.com/f3rmion/eddy/group"
)

// Marshal encodes p into ceil(bitlen(p)/8) bytes: the y-coordinate in
// big-endian form with the parity of x stored in the top bit of the
// first byte. NewCurve guarantees the modulus leaves that bit free.
func (c *Curve) Marshal(p group.Point) []byte {
	pt := p.(*Point)
	buf := pt.y.Bytes()
	if pt.x.BigInt().Bit(0) == 1 {
		buf[0] |= 0x80
	}
	return buf
}

// Unmarshal decodes a point produced by [Curve.Marshal], recomputing
// the x-coordinate from the curve equation:
//
//	x^2 = (1 - y^2) / (a - d*y^2)
//
// Of the two square roots the one matching the stored parity bit is
// chosen. Unmarshal fails with [ErrInvalidEncoding] when the length is
// wrong, y is out of range, no square root exists, or the parity bit
// asks for an odd root of x = 0.
func (c *Curve) Unmarshal(data []byte) (group.Point, error) {
	if len(data) != c.fp.Size() {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidEncoding, c.fp.Size(), len(data))
	}

	buf := make([]byte, len(data))
	copy(buf, data)
	xOdd := buf[0]&0x80 != 0
	buf[0] &^= 0x80

	yv := new(big.Int).SetBytes(buf)
	if yv.Cmp(c.fp.Modulus()) >= 0 {
		return nil, fmt.Errorf("%w: y coordinate out of range", ErrInvalidEncoding)
	}
	y := c.fp.Element(yv)

	y2 := y.Square()
	num := c.fp.One().Sub(y2)
	den, err := c.a.Sub(c.d.Mul(y2)).Inverse()
	if err != nil {
		return nil, fmt.Errorf("%w: degenerate denominator in x recovery", ErrInvalidEncoding)
	}
	x, err := c.fp.Sqrt(num.Mul(den))
	if err != nil {
		return nil, fmt.Errorf("%w: no curve point has this y coordinate", ErrInvalidEncoding)
	}

	if (x.BigInt().Bit(0) == 1) != xOdd {
		if x.IsZero() {
			return nil, fmt.Errorf("%w: sign bit set but x is zero", ErrInvalidEncoding)
		}
		x = x.Negate()
	}

	p := &Point{curve: c, x: x, y: y}
	if !p.OnCurve() {
		return nil, fmt.Errorf("%w: decoded point fails the curve equation", ErrInvalidEncoding)
	}
	return p, nil
}
