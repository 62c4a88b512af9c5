package curve

import (
	"crypto/elliptic"
	"math/big"
)

// genericCurve implements elliptic.Curve for a short-Weierstrass prime-field
// group y² = x³ + ax + b that crypto/elliptic does not ship: P-192 and the
// Brainpool family. It is modeled on the affine point arithmetic in
// sm2curve's New() curve (add/double/scalar-mult over (x, y) pairs), but
// generalized from that file's hardcoded a = p-3 to an arbitrary
// coefficient, since Brainpool curves do not use a = p-3.
//
// This is a plain big.Int implementation with no field-element limb packing
// or wNAF acceleration: none of these curves appear often enough on the
// parsing path to justify sm2curve's optimization effort.
type genericCurve struct {
	params elliptic.CurveParams
	a      *big.Int
}

func newGenericCurve(name string, p, a, b, gx, gy, n *big.Int) *genericCurve {
	c := &genericCurve{a: a}
	c.params.Name = name
	c.params.P = p
	c.params.B = b
	c.params.Gx = gx
	c.params.Gy = gy
	c.params.N = n
	c.params.BitSize = p.BitLen()
	return c
}

func (c *genericCurve) Params() *elliptic.CurveParams { return &c.params }

func (c *genericCurve) mod(x *big.Int) *big.Int { return new(big.Int).Mod(x, c.params.P) }
func (c *genericCurve) addf(x, y *big.Int) *big.Int {
	return c.mod(new(big.Int).Add(x, y))
}
func (c *genericCurve) subf(x, y *big.Int) *big.Int {
	return c.mod(new(big.Int).Sub(x, y))
}
func (c *genericCurve) mulf(x, y *big.Int) *big.Int {
	return c.mod(new(big.Int).Mul(x, y))
}
func (c *genericCurve) sqrf(x *big.Int) *big.Int { return c.mulf(x, x) }
func (c *genericCurve) invf(x *big.Int) *big.Int {
	return new(big.Int).ModInverse(x, c.params.P)
}

func (c *genericCurve) IsOnCurve(x, y *big.Int) bool {
	if x == nil || y == nil {
		return false
	}
	if x.Sign() < 0 || x.Cmp(c.params.P) >= 0 || y.Sign() < 0 || y.Cmp(c.params.P) >= 0 {
		return false
	}
	y2 := c.sqrf(y)
	x3 := c.mulf(c.sqrf(x), x)
	ax := c.mulf(c.a, x)
	rhs := c.addf(c.addf(x3, ax), c.params.B)
	return y2.Cmp(rhs) == 0
}

func (c *genericCurve) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	if x1 == nil || y1 == nil {
		if x2 == nil || y2 == nil {
			return nil, nil
		}
		return new(big.Int).Set(x2), new(big.Int).Set(y2)
	}
	if x2 == nil || y2 == nil {
		return new(big.Int).Set(x1), new(big.Int).Set(y1)
	}
	if x1.Cmp(x2) == 0 {
		if c.addf(y1, y2).Sign() == 0 {
			return nil, nil
		}
		return c.Double(x1, y1)
	}
	num := c.subf(y2, y1)
	den := c.invf(c.subf(x2, x1))
	lam := c.mulf(num, den)
	x3 := c.subf(c.subf(c.sqrf(lam), x1), x2)
	y3 := c.subf(c.mulf(lam, c.subf(x1, x3)), y1)
	return x3, y3
}

func (c *genericCurve) Double(x1, y1 *big.Int) (*big.Int, *big.Int) {
	if x1 == nil || y1 == nil || y1.Sign() == 0 {
		return nil, nil
	}
	num := c.addf(c.mulf(big.NewInt(3), c.sqrf(x1)), c.a)
	den := c.invf(c.addf(y1, y1))
	lam := c.mulf(num, den)
	x3 := c.subf(c.sqrf(lam), c.addf(x1, x1))
	y3 := c.subf(c.mulf(lam, c.subf(x1, x3)), y1)
	return x3, y3
}

// ScalarMult uses plain left-to-right double-and-add. Not constant-time:
// acceptable here since this engine only ever recomputes a public point
// from a private scalar already held in memory by the caller, never signs
// or decrypts with it.
func (c *genericCurve) ScalarMult(bx, by *big.Int, k []byte) (*big.Int, *big.Int) {
	var rx, ry *big.Int
	kk := new(big.Int).SetBytes(k)
	for i := kk.BitLen() - 1; i >= 0; i-- {
		rx, ry = c.Double(rx, ry)
		if kk.Bit(i) == 1 {
			rx, ry = c.Add(rx, ry, bx, by)
		}
	}
	return rx, ry
}

func (c *genericCurve) ScalarBaseMult(k []byte) (*big.Int, *big.Int) {
	return c.ScalarMult(c.params.Gx, c.params.Gy, k)
}
