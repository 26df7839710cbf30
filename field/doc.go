// Package field implements arithmetic over the integers modulo a large
// prime, the base layer every curve operation is built on.
//
// [Fp] represents one prime field and hands out immutable [Element]
// values that are always kept in canonical form, 0 <= v < p. Arithmetic
// is plain math/big modular arithmetic; inversion uses the extended
// Euclidean algorithm via big.Int.ModInverse and square roots use
// big.Int.ModSqrt.
//
// Nothing in this package is constant-time. It trades side-channel
// resistance for readability and is meant for study and
// experimentation, not production cryptography.
package field
