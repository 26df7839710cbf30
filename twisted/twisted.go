package twisted

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/f3rmion/eddy/field"
	"github.com/f3rmion/eddy/group"
)

var (
	// ErrInvalidParameters is returned by NewCurve when the supplied
	// constants do not describe a usable twisted Edwards curve.
	ErrInvalidParameters = errors.New("twisted: invalid curve parameters")
	// ErrNotOnCurve is returned when raw coordinates fail the curve
	// equation.
	ErrNotOnCurve = errors.New("twisted: point is not on the curve")
	// ErrPointAtInfinity is returned by Add when a denominator of the
	// addition law vanishes. This cannot happen on a complete curve
	// (a square, d non-square); on other parameter choices it marks a
	// degenerate input pair, and the failure is surfaced rather than
	// producing a wrong point.
	ErrPointAtInfinity = errors.New("twisted: degenerate addition, denominator is zero")
	// ErrInvalidEncoding is returned by Unmarshal when the bytes do not
	// correspond to any point on the curve.
	ErrInvalidEncoding = errors.New("twisted: invalid point encoding")
)

// Curve is a twisted Edwards curve
//
//	a*x^2 + y^2 = 1 + d*x^2*y^2  (mod p)
//
// together with a base point and the order of the subgroup it
// generates. A Curve is immutable after construction and safe to share
// across goroutines. It implements [group.Curve].
type Curve struct {
	fp    *field.Fp
	a, d  group.Element
	base  *Point
	order *big.Int
}

// NewCurve constructs a curve from its raw integer constants. It
// validates that p is an odd prime, that a and d are nonzero and
// distinct modulo p, that the subgroup order is positive, and that
// (gx, gy) satisfies the curve equation. Any violation is reported as
// [ErrInvalidParameters] with the failing check attached.
//
// The unified addition law is only guaranteed complete when a is a
// square and d a non-square modulo p. NewCurve does not verify this;
// instantiating a curve without the property simply means Add may fail
// with [ErrPointAtInfinity] for specific input pairs.
func NewCurve(p, a, d, gx, gy, order *big.Int) (*Curve, error) {
	fp, err := field.New(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameters, err)
	}
	// The codec stores the sign of x in the top bit of the encoding, so
	// the modulus must not fill its last byte completely.
	if fp.Modulus().BitLen()%8 == 0 {
		return nil, fmt.Errorf("%w: modulus leaves no spare bit for the point encoding", ErrInvalidParameters)
	}

	c := &Curve{fp: fp, a: fp.Element(a), d: fp.Element(d)}
	if c.a.IsZero() {
		return nil, fmt.Errorf("%w: coefficient a is zero mod p", ErrInvalidParameters)
	}
	if c.d.IsZero() {
		return nil, fmt.Errorf("%w: coefficient d is zero mod p", ErrInvalidParameters)
	}
	if c.a.Equal(c.d) {
		return nil, fmt.Errorf("%w: coefficients a and d must differ mod p", ErrInvalidParameters)
	}
	if order == nil || order.Sign() <= 0 {
		return nil, fmt.Errorf("%w: subgroup order must be positive", ErrInvalidParameters)
	}
	c.order = new(big.Int).Set(order)

	base := &Point{curve: c, x: fp.Element(gx), y: fp.Element(gy)}
	if !base.OnCurve() {
		return nil, fmt.Errorf("%w: base point does not satisfy the curve equation", ErrInvalidParameters)
	}
	c.base = base
	return c, nil
}

// Field returns the prime field the curve is defined over.
func (c *Curve) Field() group.Field {
	return c.fp
}

// A returns the curve coefficient a as a fresh big.Int.
func (c *Curve) A() *big.Int {
	return c.a.BigInt()
}

// D returns the curve coefficient d as a fresh big.Int.
func (c *Curve) D() *big.Int {
	return c.d.BigInt()
}

// Identity returns the neutral element (0, 1).
func (c *Curve) Identity() group.Point {
	return &Point{curve: c, x: c.fp.Zero(), y: c.fp.One()}
}

// Base returns the curve's base point.
func (c *Curve) Base() group.Point {
	return c.base
}

// Order returns the order of the subgroup generated by the base point.
func (c *Curve) Order() *big.Int {
	return new(big.Int).Set(c.order)
}

// Point constructs a point from affine coordinates. Coordinates are
// reduced modulo p first; a pair that fails the curve equation is
// rejected with [ErrNotOnCurve].
func (c *Curve) Point(x, y *big.Int) (group.Point, error) {
	p := &Point{curve: c, x: c.fp.Element(x), y: c.fp.Element(y)}
	if !p.OnCurve() {
		return nil, fmt.Errorf("%w: (%s, %s)", ErrNotOnCurve, p.x, p.y)
	}
	return p, nil
}

// ScalarMult computes k*p on this curve via [group.ScalarMult].
func (c *Curve) ScalarMult(k *big.Int, p group.Point) (group.Point, error) {
	return group.ScalarMult(c, k, p)
}

// ScalarBaseMult computes k times the base point.
func (c *Curve) ScalarBaseMult(k *big.Int) (group.Point, error) {
	return group.ScalarMult(c, k, c.base)
}

// PointOrder computes the order of p by repeated addition until the
// identity is reached. The search is bounded by the Hasse interval, so
// it always terminates, but the runtime is linear in the result: this
// is a tool for small curves, not cryptographically sized ones.
func (c *Curve) PointOrder(p group.Point) (*big.Int, error) {
	one := big.NewInt(1)
	if p.IsIdentity() {
		return one, nil
	}
	// #E(F_p) <= p + 1 + 2*sqrt(p), and the order of any point divides it.
	bound := new(big.Int).Sqrt(c.fp.Modulus())
	bound.Add(bound, one)
	bound.Lsh(bound, 1)
	bound.Add(bound, c.fp.Modulus())
	bound.Add(bound, one)

	n := big.NewInt(1)
	current := p
	var err error
	for !current.IsIdentity() {
		current, err = current.Add(p)
		if err != nil {
			return nil, err
		}
		n.Add(n, one)
		if n.Cmp(bound) > 0 {
			return nil, errors.New("twisted: point order not found within group bounds")
		}
	}
	return n, nil
}

// String renders the curve equation, e.g.
// "1*x^2 + y^2 = 1 + 2*x^2*y^2 (mod 101)".
func (c *Curve) String() string {
	return fmt.Sprintf("%s*x^2 + y^2 = 1 + %s*x^2*y^2 (mod %s)", c.a, c.d, c.fp.Modulus())
}
