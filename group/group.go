package group

import (
	"math/big"
)

// Element represents an element of a finite field in canonical form.
// Elements are immutable: every operation returns a new Element and
// never modifies its receiver or arguments, so values may be shared
// freely across goroutines.
//
// Implementations must keep every result reduced into [0, p) for the
// field's modulus p; no other representation may leak to callers.
type Element interface {
	// Add returns the sum of the receiver and b.
	Add(b Element) Element
	// Sub returns the difference of the receiver and b.
	Sub(b Element) Element
	// Mul returns the product of the receiver and b.
	Mul(b Element) Element
	// Square returns the receiver multiplied by itself.
	Square() Element
	// Inverse returns the multiplicative inverse of the receiver.
	// It returns an error for the zero element, which has no inverse.
	Inverse() (Element, error)
	// Negate returns the additive inverse of the receiver.
	Negate() Element
	// Equal reports whether the receiver and b are the same element.
	Equal(b Element) bool
	// IsZero reports whether the receiver is the additive identity.
	IsZero() bool
	// IsOne reports whether the receiver is the multiplicative identity.
	IsOne() bool
	// BigInt returns the canonical integer value as a fresh big.Int.
	BigInt() *big.Int
	// Bytes returns the fixed-width big-endian encoding of the element.
	Bytes() []byte
}

// Field is a factory for Elements of one finite field. A Field is
// immutable after construction and safe for concurrent use.
type Field interface {
	// Element returns the element congruent to v modulo the field's prime.
	// A nil v yields the zero element.
	Element(v *big.Int) Element
	// Zero returns the additive identity.
	Zero() Element
	// One returns the multiplicative identity.
	One() Element
	// Sqrt returns a square root of a, if one exists.
	Sqrt(a Element) (Element, error)
	// Modulus returns the field's prime as a fresh big.Int.
	Modulus() *big.Int
	// Size returns the byte length of encoded elements.
	Size() int
}

// Point represents an element of an elliptic-curve group in affine
// coordinates. Like Element, points are immutable values; operations
// return new points.
//
// Add and Double return an error when the underlying addition law
// degenerates for the given inputs (see the curve implementation for
// the exact condition); they never silently return a wrong point.
type Point interface {
	// Add returns the group sum of the receiver and q.
	Add(q Point) (Point, error)
	// Double returns the receiver added to itself.
	Double() (Point, error)
	// Negate returns the additive inverse of the receiver.
	Negate() Point
	// Equal reports coordinate-wise equality.
	Equal(q Point) bool
	// IsIdentity reports whether the receiver is the neutral element.
	IsIdentity() bool
	// OnCurve reports whether the receiver satisfies its curve equation.
	OnCurve() bool
	// X returns the affine x-coordinate as a fresh big.Int.
	X() *big.Int
	// Y returns the affine y-coordinate as a fresh big.Int.
	Y() *big.Int
}

// Curve bundles the parameters of one curve instantiation and acts as
// a factory for its points. Implementations are immutable after
// construction; a single Curve may be shared across goroutines.
type Curve interface {
	// Field returns the field the curve is defined over.
	Field() Field
	// Identity returns the neutral element of the group.
	Identity() Point
	// Base returns the curve's base point.
	Base() Point
	// Order returns the order of the subgroup generated by the base
	// point, as a fresh big.Int.
	Order() *big.Int
	// Point constructs a point from affine coordinates, rejecting
	// coordinates that do not satisfy the curve equation.
	Point(x, y *big.Int) (Point, error)
	// Marshal returns the fixed-width encoding of p.
	Marshal(p Point) []byte
	// Unmarshal decodes a point previously produced by Marshal. It
	// returns an error if the bytes do not describe a curve point.
	Unmarshal(data []byte) (Point, error)
}
