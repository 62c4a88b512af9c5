package pk

import (
	"golang.org/x/crypto/cryptobyte"
	casn1 "golang.org/x/crypto/cryptobyte/asn1"

	"github.com/dromara/pkparse/crypto/internal/curve"
)

// decodePKCS8 decodes an unencrypted PKCS#8 PrivateKeyInfo SEQUENCE and
// dispatches to the RSA or SEC1 private-key decoder. The attributes [0]
// field, if present, is read only to stay in sync with the cursor: this
// module has no use for certificate-request attributes.
func decodePKCS8(der cryptobyte.String, ctx *PKContext, opts *Options) error {
	var seq cryptobyte.String
	if !der.ReadASN1(&seq, casn1.SEQUENCE) {
		return newInvalidFormat(StagePKCS8, errOutOfData)
	}
	if err := requireEmpty(der, StagePKCS8); err != nil {
		return err
	}
	var version int64
	if !seq.ReadASN1Int64WithTag(&version, casn1.INTEGER) {
		return newInvalidFormat(StagePKCS8, errOutOfData)
	}
	if version != 0 {
		return newInvalidVersion(StagePKCS8, version)
	}
	ai, err := parseAlgorithmIdentifier(&seq)
	if err != nil {
		return err
	}
	var privOct cryptobyte.String
	if !seq.ReadASN1(&privOct, casn1.OCTET_STRING) {
		return newInvalidFormat(StagePKCS8, errOutOfData)
	}
	var attrsPresent bool
	var attrs cryptobyte.String
	if !seq.ReadOptionalASN1(&attrs, &attrsPresent, casn1.Tag(0).ContextSpecific().Constructed()) {
		return newInvalidFormat(StagePKCS8, errOutOfData)
	}
	if err := requireEmpty(seq, StagePKCS8); err != nil {
		return err
	}

	switch ai.tag {
	case TagRSA:
		return decodeRSAPrivateKey(privOct, ctx)
	case TagECKey, TagECKeyDH:
		var target *curve.Group
		if ai.hasParams {
			grp, err := resolveECParams(ai.params, opts)
			if err != nil {
				return err
			}
			target = grp
		}
		return decodeECPrivateKey(privOct, ctx, target, opts)
	default:
		return newUnknownAlgorithm()
	}
}
