package field

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/f3rmion/eddy/group"
)

var (
	// ErrDivisionByZero is returned when inverting the zero element.
	ErrDivisionByZero = errors.New("field: division by zero")
	// ErrNoSquareRoot is returned by Sqrt for quadratic non-residues.
	ErrNoSquareRoot = errors.New("field: no square root exists")
)

var two = big.NewInt(2)

// Fp is the prime field of integers modulo an odd prime p. It
// implements [group.Field] and is immutable after construction.
type Fp struct {
	p    *big.Int
	size int
}

// New constructs the field of integers modulo p. The modulus must be
// an odd prime greater than 2; primality is checked probabilistically.
func New(p *big.Int) (*Fp, error) {
	if p == nil || p.Cmp(two) <= 0 {
		return nil, errors.New("field: modulus must be greater than 2")
	}
	if p.Bit(0) == 0 {
		return nil, errors.New("field: modulus must be odd")
	}
	if !p.ProbablyPrime(20) {
		return nil, fmt.Errorf("field: modulus %s is not prime", p)
	}
	p = new(big.Int).Set(p)
	return &Fp{p: p, size: (p.BitLen() + 7) / 8}, nil
}

// Element returns the element congruent to v modulo p. Negative values
// are reduced into canonical range; nil yields the zero element.
func (f *Fp) Element(v *big.Int) group.Element {
	e := &Element{fp: f, v: new(big.Int)}
	if v != nil {
		e.v.Mod(v, f.p)
	}
	return e
}

// Zero returns the additive identity.
func (f *Fp) Zero() group.Element {
	return f.Element(nil)
}

// One returns the multiplicative identity.
func (f *Fp) One() group.Element {
	return f.Element(big.NewInt(1))
}

// Sqrt returns a square root of a modulo p, or [ErrNoSquareRoot] if a
// is a quadratic non-residue. Which of the two roots is returned is
// unspecified; callers select by parity when it matters.
func (f *Fp) Sqrt(a group.Element) (group.Element, error) {
	e := a.(*Element)
	r := new(big.Int).ModSqrt(e.v, f.p)
	if r == nil {
		return nil, ErrNoSquareRoot
	}
	return &Element{fp: f, v: r}, nil
}

// Modulus returns the field's prime as a fresh big.Int.
func (f *Fp) Modulus() *big.Int {
	return new(big.Int).Set(f.p)
}

// Size returns the byte length of encoded elements: ceil(bitlen(p)/8).
func (f *Fp) Size() int {
	return f.size
}

// Element is a field element held in canonical form, 0 <= v < p.
// Elements are immutable; all arithmetic returns new values.
type Element struct {
	fp *Fp
	v  *big.Int
}

// Add returns the sum of e and b.
func (e *Element) Add(b group.Element) group.Element {
	o := b.(*Element)
	v := new(big.Int).Add(e.v, o.v)
	v.Mod(v, e.fp.p)
	return &Element{fp: e.fp, v: v}
}

// Sub returns the difference of e and b, always in canonical range.
func (e *Element) Sub(b group.Element) group.Element {
	o := b.(*Element)
	v := new(big.Int).Sub(e.v, o.v)
	v.Mod(v, e.fp.p)
	return &Element{fp: e.fp, v: v}
}

// Mul returns the product of e and b.
func (e *Element) Mul(b group.Element) group.Element {
	o := b.(*Element)
	v := new(big.Int).Mul(e.v, o.v)
	v.Mod(v, e.fp.p)
	return &Element{fp: e.fp, v: v}
}

// Square returns e*e.
func (e *Element) Square() group.Element {
	return e.Mul(e)
}

// Inverse returns the unique element b with e*b = 1, computed by the
// extended Euclidean algorithm. Inverting zero returns
// [ErrDivisionByZero]; it is never silently treated as zero.
func (e *Element) Inverse() (group.Element, error) {
	if e.v.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	v := new(big.Int).ModInverse(e.v, e.fp.p)
	return &Element{fp: e.fp, v: v}, nil
}

// Negate returns -e, or zero when e is zero.
func (e *Element) Negate() group.Element {
	v := new(big.Int).Neg(e.v)
	v.Mod(v, e.fp.p)
	return &Element{fp: e.fp, v: v}
}

// Exp returns e raised to the power k modulo p. A negative k inverts
// first and returns [ErrDivisionByZero] for the zero base.
func (e *Element) Exp(k *big.Int) (group.Element, error) {
	if k.Sign() < 0 && e.v.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	v := new(big.Int).Exp(e.v, k, e.fp.p)
	return &Element{fp: e.fp, v: v}, nil
}

// Equal reports whether e and b hold the same canonical value.
func (e *Element) Equal(b group.Element) bool {
	o := b.(*Element)
	return e.v.Cmp(o.v) == 0
}

// IsZero reports whether e is the additive identity.
func (e *Element) IsZero() bool {
	return e.v.Sign() == 0
}

// IsOne reports whether e is the multiplicative identity.
func (e *Element) IsOne() bool {
	return e.v.Cmp(big.NewInt(1)) == 0
}

// BigInt returns the canonical value as a fresh big.Int.
func (e *Element) BigInt() *big.Int {
	return new(big.Int).Set(e.v)
}

// Bytes returns the value as a fixed-width big-endian byte slice.
func (e *Element) Bytes() []byte {
	buf := make([]byte, e.fp.size)
	e.v.FillBytes(buf)
	return buf
}

// String returns the decimal representation of the element.
func (e *Element) String() string {
	return e.v.String()
}
