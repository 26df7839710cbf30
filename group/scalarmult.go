package group

import (
	"errors"
	"math/big"
)

// ErrNegativeScalar is returned by ScalarMult for a negative scalar.
var ErrNegativeScalar = errors.New("group: scalar must be non-negative")

// ScalarMult computes k*p by iterative double-and-add, walking the
// scalar's bits from least to most significant. It is generic over the
// [Curve] and [Point] interfaces and works for any group
// implementation; it makes no attempt at constant-time execution.
//
// ScalarMult(0, p) is the identity for every p, and multiplying the
// identity by any scalar yields the identity again. Failures from the
// underlying Add and Double calls are propagated unchanged.
func ScalarMult(c Curve, k *big.Int, p Point) (Point, error) {
	if k.Sign() < 0 {
		return nil, ErrNegativeScalar
	}

	result := c.Identity()
	current := p
	var err error
	for i, n := 0, k.BitLen(); i < n; i++ {
		if k.Bit(i) == 1 {
			result, err = result.Add(current)
			if err != nil {
				return nil, err
			}
		}
		if i+1 < n {
			current, err = current.Double()
			if err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}
