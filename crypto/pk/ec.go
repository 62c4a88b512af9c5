package pk

import (
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	casn1 "golang.org/x/crypto/cryptobyte/asn1"

	"github.com/dromara/pkparse/crypto/internal/curve"
)

// readECPoint decodes a single SEC1 EC point (uncompressed 0x04, or
// compressed 0x02/0x03) and validates it lies on grp. A compressed point
// this module cannot decompress (any compressed point on P-224, the one
// registry curve whose p ≡ 1 mod 4, which curve.DecompressY rejects)
// returns FeatureUnavailableError, which callers
// may treat as non-fatal and recover the point by scalar multiplication
// instead.
func readECPoint(grp *curve.Group, data []byte) (x, y *big.Int, err error) {
	if len(data) < 1 {
		return nil, nil, newInvalidFormat(StageEC, errOutOfData)
	}
	byteLen := (grp.PBits + 7) / 8
	switch data[0] {
	case 0x04:
		if len(data) != 1+2*byteLen {
			return nil, nil, newInvalidFormat(StageEC, errOutOfData)
		}
		x = new(big.Int).SetBytes(data[1 : 1+byteLen])
		y = new(big.Int).SetBytes(data[1+byteLen:])
	case 0x02, 0x03:
		if len(data) != 1+byteLen {
			return nil, nil, newInvalidFormat(StageEC, errOutOfData)
		}
		x = new(big.Int).SetBytes(data[1:])
		parity := uint(data[0] & 1)
		var ok bool
		y, ok = curve.DecompressY(grp, x, parity)
		if !ok {
			return nil, nil, newFeatureUnavailable(StageEC, errCompressedUnsupported)
		}
	default:
		return nil, nil, newInvalidFormat(StageEC, errBadPointEncoding)
	}
	if err := checkPublicKeyPoint(grp, x, y); err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

func checkPublicKeyPoint(grp *curve.Group, x, y *big.Int) error {
	if x == nil || y == nil {
		return newInvalidPublicKey(StageEC, errPointAtInfinity)
	}
	if !grp.Curve.IsOnCurve(x, y) {
		return newInvalidPublicKey(StageEC, errNotOnCurve)
	}
	return nil
}

// decodeECPublicKeyBitString reads a SubjectPublicKeyInfo/SEC1 BIT STRING
// holding a public point, skipping its leading unused-bits byte.
func decodeECPublicKeyBitString(bits cryptobyte.String, grp *curve.Group) (x, y *big.Int, err error) {
	var unused uint8
	if !bits.ReadUint8(&unused) {
		return nil, nil, newInvalidFormat(StageEC, errOutOfData)
	}
	return readECPoint(grp, []byte(bits))
}

// decodeECPrivateKey reads a SEC1 ECPrivateKey SEQUENCE. target is the
// curve group already known from an outer context (PKCS#8's
// AlgorithmIdentifier), or nil for a bare SEC1 blob; the optional inner
// ECParameters field, if present, must agree with it. When the encoded
// publicKey BIT STRING is absent, or present but undecodable, Q is
// recovered as d·G instead.
func decodeECPrivateKey(der cryptobyte.String, ctx *PKContext, target *curve.Group, opts *Options) error {
	var seq cryptobyte.String
	if !der.ReadASN1(&seq, casn1.SEQUENCE) {
		return newInvalidFormat(StageEC, errOutOfData)
	}
	var version int64
	if !seq.ReadASN1Int64WithTag(&version, casn1.INTEGER) {
		return newInvalidFormat(StageEC, errOutOfData)
	}
	if version != 1 {
		return newInvalidVersion(StageEC, version)
	}
	var privOct cryptobyte.String
	if !seq.ReadASN1(&privOct, casn1.OCTET_STRING) {
		return newInvalidFormat(StageEC, errOutOfData)
	}
	d := new(big.Int).SetBytes(privOct)

	grp := target
	var paramsPresent bool
	var paramsTLV cryptobyte.String
	if !seq.ReadOptionalASN1(&paramsTLV, &paramsPresent, casn1.Tag(0).ContextSpecific().Constructed()) {
		return newInvalidFormat(StageEC, errOutOfData)
	}
	if paramsPresent {
		resolved, err := resolveECParams(paramsTLV, opts)
		if err != nil {
			return err
		}
		if err := useECParams(&grp, resolved); err != nil {
			return err
		}
	}
	if grp == nil {
		return newInvalidFormat(StageEC, errMissingCurve)
	}

	var pubPresent bool
	var pubTLV cryptobyte.String
	if !seq.ReadOptionalASN1(&pubTLV, &pubPresent, casn1.Tag(1).ContextSpecific().Constructed()) {
		return newInvalidFormat(StageEC, errOutOfData)
	}
	if err := requireEmpty(seq, StageEC); err != nil {
		return err
	}
	if err := requireEmpty(der, StageEC); err != nil {
		return err
	}

	var x, y *big.Int
	if pubPresent {
		var bits cryptobyte.String
		if !pubTLV.ReadASN1(&bits, casn1.BIT_STRING) {
			return newInvalidFormat(StageEC, errOutOfData)
		}
		px, py, perr := decodeECPublicKeyBitString(bits, grp)
		switch {
		case perr == nil:
			x, y = px, py
		case isFeatureUnavailable(perr):
			// Abandon the encoded point; fall through to scalar-mult
			// recovery below. Not fatal.
		default:
			return perr
		}
	}
	if err := checkPrivateScalar(grp, d); err != nil {
		return err
	}
	if x == nil || y == nil {
		x, y = grp.Curve.ScalarBaseMult(d.Bytes())
	}

	ctx.setup(TagECKey)
	ctx.EC = &ECKeyPair{Group: grp, D: d, X: x, Y: y}
	return nil
}

func checkPrivateScalar(grp *curve.Group, d *big.Int) error {
	one := big.NewInt(1)
	if d.Cmp(one) < 0 || d.Cmp(grp.N) >= 0 {
		return newInvalidPublicKey(StageEC, errScalarOutOfRange)
	}
	return nil
}

func isFeatureUnavailable(err error) bool {
	_, ok := err.(FeatureUnavailableError)
	return ok
}
