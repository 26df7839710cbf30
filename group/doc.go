// Package group defines abstract interfaces for the algebraic objects
// of elliptic-curve arithmetic: finite-field elements, curve points,
// and the curves that tie them together.
//
// This package provides four core interfaces:
//
//   - [Element]: Elements of a finite field (integers modulo a prime)
//   - [Field]: Factory and utility methods for creating field elements
//   - [Point]: Elements of a curve group (affine points plus an identity)
//   - [Curve]: One curve instantiation, acting as a point factory
//
// # Design Philosophy
//
// All values are immutable: every arithmetic operation returns a new
// value and leaves its operands untouched. This costs allocations but
// makes the algebra read like the formulas it implements, and it means
// any value can be shared between goroutines without synchronization:
//
//	// Compute (x*y + z) in the field
//	sum := x.Mul(y).Add(z)
//
// Operations that can fail mathematically — inverting zero, an addition
// whose denominator vanishes, decoding bytes that name no point —
// return errors rather than panicking or substituting a default, so a
// wrong result can never propagate silently.
//
// # Generic Scalar Multiplication
//
// [ScalarMult] implements double-and-add purely in terms of [Point] and
// [Curve], so it works unchanged for any curve implementation. See the
// twisted package for the concrete twisted Edwards instantiation.
//
// # Scope
//
// These interfaces favor mathematical clarity over defensive
// engineering: implementations are not expected to be constant-time or
// hardened against side channels, and callers must not use them where
// those properties matter.
package group
