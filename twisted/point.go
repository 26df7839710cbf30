package twisted

import (
	"fmt"
	"math/big"

	"github.com/f3rmion/eddy/group"
)

// Point is an affine point (x, y) on a twisted Edwards curve, with the
// identity element represented as (0, 1). Points are immutable values
// carrying a reference to their curve; they implement [group.Point].
//
// Every Point obtained from [Curve.Point], [Curve.Unmarshal] or an
// arithmetic operation satisfies the curve equation.
type Point struct {
	curve *Curve
	x, y  group.Element
}

// X returns the affine x-coordinate as a fresh big.Int.
func (p *Point) X() *big.Int {
	return p.x.BigInt()
}

// Y returns the affine y-coordinate as a fresh big.Int.
func (p *Point) Y() *big.Int {
	return p.y.BigInt()
}

// IsIdentity reports whether p is the neutral element (0, 1).
func (p *Point) IsIdentity() bool {
	return p.x.IsZero() && p.y.IsOne()
}

// OnCurve evaluates a*x^2 + y^2 == 1 + d*x^2*y^2 in the curve's field.
// The identity always satisfies it.
func (p *Point) OnCurve() bool {
	x2 := p.x.Square()
	y2 := p.y.Square()
	left := p.curve.a.Mul(x2).Add(y2)
	right := p.curve.fp.One().Add(p.curve.d.Mul(x2).Mul(y2))
	return left.Equal(right)
}

// Negate returns (-x, y), the additive inverse of p under the Edwards
// addition law.
func (p *Point) Negate() group.Point {
	return &Point{curve: p.curve, x: p.x.Negate(), y: p.y}
}

// Equal reports coordinate-wise equality.
func (p *Point) Equal(q group.Point) bool {
	o := q.(*Point)
	return p.x.Equal(o.x) && p.y.Equal(o.y)
}

// Add returns the group sum of p and q using the unified twisted
// Edwards addition law
//
//	x3 = (x1*y2 + y1*x2) / (1 + d*x1*x2*y1*y2)
//	y3 = (y1*y2 - a*x1*x2) / (1 - d*x1*x2*y1*y2)
//
// where division is multiplication by the modular inverse. The same
// formula covers doubling and the identity, so there is no
// special-casing. When a denominator is zero — impossible on a
// complete curve — Add fails with [ErrPointAtInfinity].
func (p *Point) Add(q group.Point) (group.Point, error) {
	o := q.(*Point)
	one := p.curve.fp.One()

	x1x2 := p.x.Mul(o.x)
	y1y2 := p.y.Mul(o.y)
	x1y2 := p.x.Mul(o.y)
	x2y1 := o.x.Mul(p.y)

	// d*x1*x2*y1*y2 appears in both denominators.
	t := p.curve.d.Mul(x1x2).Mul(y1y2)

	den1, err := one.Add(t).Inverse()
	if err != nil {
		return nil, ErrPointAtInfinity
	}
	den2, err := one.Sub(t).Inverse()
	if err != nil {
		return nil, ErrPointAtInfinity
	}

	x3 := x1y2.Add(x2y1).Mul(den1)
	y3 := y1y2.Sub(p.curve.a.Mul(x1x2)).Mul(den2)
	return &Point{curve: p.curve, x: x3, y: y3}, nil
}

// Double returns p added to itself. The addition law is unified, so
// this is a direct call to Add.
func (p *Point) Double() (group.Point, error) {
	return p.Add(p)
}

// String renders the point as "(x, y)" in decimal.
func (p *Point) String() string {
	return fmt.Sprintf("(%s, %s)", p.x, p.y)
}
