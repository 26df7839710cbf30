// Package keys provides keypair generation on top of the arithmetic
// core: a private scalar sampled below the group order and the public
// point obtained by multiplying the base point. It is demonstration
// glue for the curve packages, not a signature or key-exchange scheme.
package keys

import (
	"fmt"
	"io"
	"math/big"

	"github.com/f3rmion/eddy/group"
)

// KeyPair is a private scalar and the public point D * base.
type KeyPair struct {
	D      *big.Int
	Public group.Point
}

// Generate samples a private scalar uniformly from [1, order) using
// the provided random source and derives the matching public point on
// the given curve.
func Generate(r io.Reader, c group.Curve) (*KeyPair, error) {
	k, err := group.RandomScalar(r, c)
	if err != nil {
		return nil, fmt.Errorf("failed to sample private scalar: %w", err)
	}
	pub, err := group.ScalarMult(c, k, c.Base())
	if err != nil {
		return nil, fmt.Errorf("failed to derive public point: %w", err)
	}
	return &KeyPair{D: k, Public: pub}, nil
}
