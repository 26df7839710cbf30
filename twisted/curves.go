package twisted

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards"
)

// BabyJubJub returns the Baby Jubjub curve, the twisted Edwards curve
// defined over the BN254 scalar field. The coefficients, generator and
// prime subgroup order are taken from gnark-crypto, which also serves
// as an independent implementation to check this package against.
func BabyJubJub() *Curve {
	ec := twistededwards.GetEdwardsCurve()
	var a, d, gx, gy big.Int
	ec.A.BigInt(&a)
	ec.D.BigInt(&d)
	ec.Base.X.BigInt(&gx)
	ec.Base.Y.BigInt(&gy)

	c, err := NewCurve(fr.Modulus(), &a, &d, &gx, &gy, &ec.Order)
	if err != nil {
		panic("twisted: baby jubjub parameters rejected: " + err.Error())
	}
	return c
}

// Toy101 returns a deliberately tiny curve for experimentation:
//
//	x^2 + y^2 = 1 + 2*x^2*y^2  (mod 101)
//
// with base point (2, 17) generating the full group of 104 points.
// Here a = 1 is a square and d = 2 a non-square mod 101, so the
// addition law is complete. Small enough to enumerate by hand, and
// obviously useless for anything but study.
func Toy101() *Curve {
	c, err := NewCurve(
		big.NewInt(101),
		big.NewInt(1),
		big.NewInt(2),
		big.NewInt(2),
		big.NewInt(17),
		big.NewInt(104),
	)
	if err != nil {
		panic("twisted: toy curve parameters rejected: " + err.Error())
	}
	return c
}
