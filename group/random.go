package group

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

var one = big.NewInt(1)

// RandomScalar samples a scalar uniformly from [1, order) using the
// provided random source. It is the sampling routine used by key
// generation; the zero scalar is excluded since it maps every point to
// the identity.
func RandomScalar(r io.Reader, c Curve) (*big.Int, error) {
	max := new(big.Int).Sub(c.Order(), one)
	if max.Sign() <= 0 {
		return nil, errors.New("group: order too small to sample a scalar")
	}
	k, err := rand.Int(r, max)
	if err != nil {
		return nil, err
	}
	return k.Add(k, one), nil
}
