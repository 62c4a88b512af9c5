package pk

import (
	"encoding/pem"

	"golang.org/x/crypto/cryptobyte"
)

// Options configures feature gates this module exposes as per-call
// switches in place of the mbedtls lineage's compile-time feature macros.
type Options struct {
	// AllowSpecifiedDomain enables SpecifiedECDomain parsing. When false, a
	// SEQUENCE-tagged ECParameters fails with FeatureUnavailableError
	// immediately instead of being structurally matched against the
	// registry.
	AllowSpecifiedDomain bool

	// ZeroizeOnFailure best-effort-zeros any private scalar this module
	// allocated (RSA D/P/Q/DP/DQ/QP, EC D) before a failed parse returns
	// its now-useless PKContext. Parsed material that reaches the caller
	// on success is the caller's responsibility to zeroize.
	ZeroizeOnFailure bool
}

func (o *Options) orDefault() *Options {
	if o != nil {
		return o
	}
	return &Options{AllowSpecifiedDomain: true, ZeroizeOnFailure: true}
}

const (
	pemRSA     = "RSA PRIVATE KEY"
	pemEC      = "EC PRIVATE KEY"
	pemGeneric = "PRIVATE KEY"
)

// ParseKey decodes an RSA or EC private key from PEM or raw DER. PEM
// envelopes are routed directly to their matching grammar (RSA PRIVATE KEY
// -> PKCS#1, EC PRIVATE KEY -> SEC1, PRIVATE KEY -> PKCS#8); a body that
// does not decode with any of them fails there, the same as the pure-DER
// path below does not try further grammars once the correct PEM type is
// known. Raw (non-PEM) input instead tries PKCS#8, then PKCS#1, then SEC1
// in turn, since nothing in the bytes themselves names the grammar. Every
// failed attempt leaves the returned context empty.
func ParseKey(data []byte, opts *Options) (*PKContext, error) {
	opts = opts.orDefault()
	ctx := New()
	ctx.zeroizeOnFailure = opts.ZeroizeOnFailure
	if len(data) == 0 {
		return ctx, ctx.fail(newInvalidFormat(StageTop, errEmptyInput))
	}

	if block, _ := pem.Decode(data); block != nil {
		if _, encrypted := block.Headers["DEK-Info"]; encrypted || block.Type == "ENCRYPTED PRIVATE KEY" {
			return ctx, ctx.fail(newEncryptedKey())
		}
		switch block.Type {
		case pemRSA:
			if err := decodeRSAPrivateKey(cryptobyte.String(block.Bytes), ctx); err != nil {
				return ctx, ctx.fail(err)
			}
			return ctx, nil
		case pemEC:
			if err := decodeECPrivateKey(cryptobyte.String(block.Bytes), ctx, nil, opts); err != nil {
				return ctx, ctx.fail(err)
			}
			return ctx, nil
		case pemGeneric:
			if err := decodePKCS8(cryptobyte.String(block.Bytes), ctx, opts); err != nil {
				return ctx, ctx.fail(err)
			}
			return ctx, nil
		}
		// A recognized PEM framing with an envelope type this module does
		// not know falls through to the raw-DER ladder below, the same as
		// input that was never PEM-armored at all.
	}

	if err := decodePKCS8(cryptobyte.String(data), ctx, opts); err == nil {
		return ctx, nil
	}
	if err := decodeRSAPrivateKey(cryptobyte.String(data), ctx); err == nil {
		return ctx, nil
	}
	if err := decodeECPrivateKey(cryptobyte.String(data), ctx, nil, opts); err == nil {
		return ctx, nil
	}
	return ctx, ctx.fail(newInvalidFormat(StageTop, errNoMatchingGrammar))
}
