package pk

import (
	"golang.org/x/crypto/cryptobyte"
	casn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// ParseSubjectPublicKeyInfo decodes SEQUENCE { AlgorithmIdentifier, BIT
// STRING } and dispatches to the RSA or EC public-key decoder.
func ParseSubjectPublicKeyInfo(der []byte, opts *Options) (*PKContext, error) {
	opts = opts.orDefault()
	ctx := New()
	ctx.zeroizeOnFailure = opts.ZeroizeOnFailure
	cur := cryptobyte.String(der)

	var outer cryptobyte.String
	if !cur.ReadASN1(&outer, casn1.SEQUENCE) {
		return ctx, ctx.fail(newInvalidFormat(StageSPKI, errOutOfData))
	}
	if err := requireEmpty(cur, StageSPKI); err != nil {
		return ctx, ctx.fail(err)
	}
	ai, err := parseAlgorithmIdentifier(&outer)
	if err != nil {
		return ctx, ctx.fail(err)
	}
	var bits cryptobyte.String
	if !outer.ReadASN1(&bits, casn1.BIT_STRING) {
		return ctx, ctx.fail(newInvalidFormat(StageSPKI, errOutOfData))
	}
	if err := requireEmpty(outer, StageSPKI); err != nil {
		return ctx, ctx.fail(err)
	}

	switch ai.tag {
	case TagRSA:
		var unused uint8
		if !bits.ReadUint8(&unused) {
			return ctx, ctx.fail(newInvalidFormat(StageSPKI, errOutOfData))
		}
		if err := decodeRSAPublicKey(bits, ctx); err != nil {
			return ctx, ctx.fail(err)
		}
	case TagECKey, TagECKeyDH:
		if !ai.hasParams {
			return ctx, ctx.fail(newInvalidFormat(StageSPKI, errMissingCurve))
		}
		grp, err := resolveECParams(ai.params, opts)
		if err != nil {
			return ctx, ctx.fail(err)
		}
		x, y, perr := decodeECPublicKeyBitString(bits, grp)
		if perr != nil {
			return ctx, ctx.fail(perr)
		}
		ctx.setup(ai.tag)
		ctx.EC = &ECKeyPair{Group: grp, X: x, Y: y}
	default:
		return ctx, ctx.fail(newUnknownAlgorithm())
	}
	return ctx, nil
}
