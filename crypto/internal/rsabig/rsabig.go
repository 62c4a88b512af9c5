// Package rsabig completes and validates an RSA key from whichever subset
// of its parameters a decoder handed it, and converts the result to a
// stdlib crypto/rsa key. It is the Go-native stand-in for the mbedtls
// rsa_context this module's teacher treats as an external collaborator:
// here the CRT math is ours, everything downstream (signing, OAEP, PSS)
// stays on crypto/rsa.
package rsabig

import (
	"crypto/rsa"
	"errors"
	"math/big"
)

var (
	// ErrIncompleteKey reports a parameter subset Complete cannot work with.
	ErrIncompleteKey = errors.New("rsabig: insufficient parameters to complete key")
	// ErrInconsistent reports parameters that fail to satisfy d*e ≡ 1 (mod
	// λ(n)), or any other mathematical consistency check.
	ErrInconsistent = errors.New("rsabig: key parameters are mathematically inconsistent")
)

// Context holds RSA key material as it is assembled during parsing: N, E
// always present once Complete succeeds; D, P, Q, DP, DQ, QP present only
// for a private key.
type Context struct {
	N, E, D, P, Q, DP, DQ, QP *big.Int
}

// Complete derives every missing field from whichever sufficient subset is
// present: {N, E} for a public key, or {N, E, P, Q} or {P, Q, E} (with or
// without D) for a private key. {N, E, D} without the factors is accepted
// but nothing is derived from it: N is not factored, so P, Q and the CRT
// values stay nil and PrivateKey reports ErrIncompleteKey. The CRT triplet (DP, DQ, QP), if the caller
// read one off the wire, is never trusted: Complete always recomputes it
// from D, P, Q so a decoder cannot be handed a private key whose CRT
// shortcuts silently disagree with its primary parameters.
func (c *Context) Complete() error {
	if c.N == nil {
		if c.P == nil || c.Q == nil {
			return ErrIncompleteKey
		}
		c.N = new(big.Int).Mul(c.P, c.Q)
	}
	if c.E == nil {
		return ErrIncompleteKey
	}
	if c.P == nil || c.Q == nil {
		// Public key, or a private key missing its factors: nothing
		// further to complete without factoring N, which this layer does
		// not attempt.
		return nil
	}
	lambda := carmichael(c.P, c.Q)
	if c.D == nil {
		d := new(big.Int).ModInverse(c.E, lambda)
		if d == nil {
			return ErrInconsistent
		}
		c.D = d
	} else {
		check := new(big.Int).Mul(c.D, c.E)
		check.Mod(check, lambda)
		if check.Cmp(big.NewInt(1)) != 0 {
			return ErrInconsistent
		}
	}
	pMinus1 := new(big.Int).Sub(c.P, big.NewInt(1))
	qMinus1 := new(big.Int).Sub(c.Q, big.NewInt(1))
	c.DP = new(big.Int).Mod(c.D, pMinus1)
	c.DQ = new(big.Int).Mod(c.D, qMinus1)
	qp := new(big.Int).ModInverse(c.Q, c.P)
	if qp == nil {
		return ErrInconsistent
	}
	c.QP = qp
	return nil
}

// CheckPublicKey validates 1 < E < N and, when the factors are known,
// P != Q — the invariants required regardless of whether the key is
// public or private.
func (c *Context) CheckPublicKey() error {
	if c.N == nil || c.E == nil {
		return ErrIncompleteKey
	}
	one := big.NewInt(1)
	if c.E.Cmp(one) <= 0 || c.E.Cmp(c.N) >= 0 {
		return ErrInconsistent
	}
	if c.P != nil && c.Q != nil && c.P.Cmp(c.Q) == 0 {
		return ErrInconsistent
	}
	return nil
}

func carmichael(p, q *big.Int) *big.Int {
	pMinus1 := new(big.Int).Sub(p, big.NewInt(1))
	qMinus1 := new(big.Int).Sub(q, big.NewInt(1))
	gcd := new(big.Int).GCD(nil, nil, pMinus1, qMinus1)
	lambda := new(big.Int).Mul(pMinus1, qMinus1)
	lambda.Div(lambda, gcd)
	return lambda
}

// PublicKey returns the stdlib public key for this context.
func (c *Context) PublicKey() *rsa.PublicKey {
	return &rsa.PublicKey{N: c.N, E: int(c.E.Int64())}
}

// PrivateKey returns the stdlib private key for this context. Complete
// must have succeeded and found P, Q, D first.
func (c *Context) PrivateKey() (*rsa.PrivateKey, error) {
	if c.D == nil || c.P == nil || c.Q == nil {
		return nil, ErrIncompleteKey
	}
	key := &rsa.PrivateKey{
		PublicKey: *c.PublicKey(),
		D:         c.D,
		Primes:    []*big.Int{c.P, c.Q},
	}
	key.Precompute()
	return key, nil
}
