// Package pk decodes RSA and EC private and public keys from DER or PEM,
// validates them mathematically, and returns a polymorphic key context —
// the Go-native counterpart of the mbedtls pk_context this module's
// teacher's SM2-only parser (crypto/internal/sm2curve/asn1.go) was
// generalized from.
package pk

import (
	"crypto/ecdsa"
	"crypto/rsa"
	"math/big"

	"github.com/dromara/pkparse/crypto/internal/curve"
	"github.com/dromara/pkparse/crypto/internal/oid"
	"github.com/dromara/pkparse/crypto/internal/rsabig"
)

// AlgorithmTag is the closed public-key algorithm enumeration. Definition
// lives in internal/oid (the OID table owns the OID<->tag mapping); pk
// re-exports it under the name this package's API surface uses.
type AlgorithmTag = oid.AlgorithmTag

const (
	TagNone    = oid.TagNone
	TagRSA     = oid.TagRSA
	TagECKey   = oid.TagECKey
	TagECKeyDH = oid.TagECKeyDH
)

// ECKeyPair is the EC half of a polymorphic key context.
type ECKeyPair struct {
	Group *curve.Group
	D     *big.Int // nil for a public-only key
	X, Y  *big.Int
}

// PKContext is the polymorphic key object this module returns: a tagged
// variant populated by exactly one decoder call. A context that fails
// partway through decoding is torn back down to empty before the error is
// returned, so a caller never observes a half-parsed key.
type PKContext struct {
	Algorithm AlgorithmTag
	RSA       *rsabig.Context
	EC        *ECKeyPair
	// Error records the most recent failure, surviving a teardown so a
	// caller can inspect it after the fact.
	Error error

	zeroizeOnFailure bool
}

// New returns an empty PK context.
func New() *PKContext { return &PKContext{zeroizeOnFailure: true} }

func (ctx *PKContext) setup(tag AlgorithmTag) { ctx.Algorithm = tag }

// zeroizeBigInt best-effort-overwrites x's backing word storage with
// zeros. big.Int keeps no secondary copy of its mantissa, so this is
// sufficient to scrub the one place the value lives; it does not protect
// against a runtime that has since copied x's bytes elsewhere (e.g. a
// prior x.Bytes() call), the same caveat spec.md §5 places on the
// caller's own zeroization.
func zeroizeBigInt(x *big.Int) {
	if x == nil {
		return
	}
	words := x.Bits()
	for i := range words {
		words[i] = 0
	}
	x.SetInt64(0)
}

// fail tears ctx back down to empty, records err, and returns it — the
// single exit path every public decoding entry point uses on failure. When
// zeroizeOnFailure is set (the default), any private scalar this module
// itself allocated is scrubbed before being dropped.
func (ctx *PKContext) fail(err error) error {
	if ctx.zeroizeOnFailure {
		if ctx.RSA != nil {
			zeroizeBigInt(ctx.RSA.D)
			zeroizeBigInt(ctx.RSA.P)
			zeroizeBigInt(ctx.RSA.Q)
			zeroizeBigInt(ctx.RSA.DP)
			zeroizeBigInt(ctx.RSA.DQ)
			zeroizeBigInt(ctx.RSA.QP)
		}
		if ctx.EC != nil {
			zeroizeBigInt(ctx.EC.D)
		}
	}
	ctx.Algorithm = TagNone
	ctx.RSA = nil
	ctx.EC = nil
	ctx.Error = err
	return err
}

// ToRSAPrivateKey converts a populated RSA context to a stdlib key.
func (ctx *PKContext) ToRSAPrivateKey() (*rsa.PrivateKey, error) {
	if ctx.Algorithm != TagRSA || ctx.RSA == nil {
		return nil, ErrAlgorithmMismatch
	}
	return ctx.RSA.PrivateKey()
}

// ToRSAPublicKey converts a populated RSA context to a stdlib public key.
func (ctx *PKContext) ToRSAPublicKey() (*rsa.PublicKey, error) {
	if ctx.Algorithm != TagRSA || ctx.RSA == nil {
		return nil, ErrAlgorithmMismatch
	}
	return ctx.RSA.PublicKey(), nil
}

// ToECDSAPrivateKey converts a populated EC context to a stdlib key.
func (ctx *PKContext) ToECDSAPrivateKey() (*ecdsa.PrivateKey, error) {
	if (ctx.Algorithm != TagECKey && ctx.Algorithm != TagECKeyDH) || ctx.EC == nil || ctx.EC.D == nil {
		return nil, ErrAlgorithmMismatch
	}
	return &ecdsa.PrivateKey{
		PublicKey: ecdsa.PublicKey{Curve: ctx.EC.Group.Curve, X: ctx.EC.X, Y: ctx.EC.Y},
		D:         ctx.EC.D,
	}, nil
}

// ToECDSAPublicKey converts a populated EC context to a stdlib public key.
func (ctx *PKContext) ToECDSAPublicKey() (*ecdsa.PublicKey, error) {
	if (ctx.Algorithm != TagECKey && ctx.Algorithm != TagECKeyDH) || ctx.EC == nil {
		return nil, ErrAlgorithmMismatch
	}
	return &ecdsa.PublicKey{Curve: ctx.EC.Group.Curve, X: ctx.EC.X, Y: ctx.EC.Y}, nil
}
