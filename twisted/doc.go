// Package twisted implements the group of points on a twisted Edwards
// curve
//
//	a*x^2 + y^2 = 1 + d*x^2*y^2  (mod p)
//
// in affine coordinates over the prime fields of the field package.
//
// # Structure
//
//   - [Curve]: an immutable parameter set (p, a, d, base point, order),
//     validated once at construction and shared read-only afterwards
//   - [Point]: an affine point with the unified addition law, doubling,
//     negation and the on-curve check; the identity element is (0, 1)
//   - [Curve.Marshal] / [Curve.Unmarshal]: the fixed-width boundary
//     encoding, y plus one sign bit for x
//
// Scalar multiplication is not implemented here: [Curve] and [Point]
// satisfy the group package interfaces, and [group.ScalarMult] drives
// the group law generically. [Curve.ScalarMult] is a thin convenience
// wrapper around it.
//
// # Curve instantiations
//
// Nothing is hard-coded: any parameter set accepted by [NewCurve] works,
// and independent Curve values do not interfere. [BabyJubJub] and
// [Toy101] are stock instantiations, one cryptographically sized and
// one small enough to study by hand.
//
// # Limitations
//
// The arithmetic is plain math/big and leaks timing; the unified
// addition law is only complete when a is a square and d a non-square
// mod p, and on other parameter choices Add can fail for specific
// inputs. Both are accepted limitations of an educational design.
package twisted
