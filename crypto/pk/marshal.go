package pk

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	stdasn1 "encoding/asn1"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	casn1 "golang.org/x/crypto/cryptobyte/asn1"

	"github.com/dromara/pkparse/crypto/internal/curve"
	"github.com/dromara/pkparse/crypto/internal/oid"
)

// MarshalSEC1PrivateKey encodes priv as a SEC1 ECPrivateKey DER blob (the
// "EC PRIVATE KEY" PEM envelope's body), the builder-side counterpart of
// decodeECPrivateKey, generalized from sm2curve/asn1.go's
// MarshalPKCS8PrivateKey to any curve this package's registry knows.
func MarshalSEC1PrivateKey(priv *ecdsa.PrivateKey) ([]byte, error) {
	grp, curveOID, err := lookupCurve(priv.Curve)
	if err != nil {
		return nil, err
	}
	point := marshalUncompressedPoint(grp, priv.X, priv.Y)

	var b cryptobyte.Builder
	b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(1)
		b.AddASN1OctetString(priv.D.Bytes())
		b.AddASN1(casn1.Tag(0).ContextSpecific().Constructed(), func(b *cryptobyte.Builder) {
			b.AddASN1ObjectIdentifier(curveOID)
		})
		b.AddASN1(casn1.Tag(1).ContextSpecific().Constructed(), func(b *cryptobyte.Builder) {
			b.AddASN1BitString(point)
		})
	})
	return b.Bytes()
}

// MarshalSubjectPublicKeyInfo encodes pub as a SubjectPublicKeyInfo DER
// blob (the "PUBLIC KEY" PEM envelope's body).
func MarshalSubjectPublicKeyInfo(pub *ecdsa.PublicKey) ([]byte, error) {
	grp, curveOID, err := lookupCurve(pub.Curve)
	if err != nil {
		return nil, err
	}
	point := marshalUncompressedPoint(grp, pub.X, pub.Y)

	var b cryptobyte.Builder
	b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
			b.AddASN1ObjectIdentifier(oid.ECPublicKey)
			b.AddASN1ObjectIdentifier(curveOID)
		})
		b.AddASN1BitString(point)
	})
	return b.Bytes()
}

// lookupCurve maps a stdlib/registry elliptic.Curve back to its registry
// Group and namedCurve OID, by comparing domain parameters rather than
// interface identity (the registry's genericCurve values and a caller's
// own elliptic.Curve value for the same curve need not be the same Go
// value).
func lookupCurve(c elliptic.Curve) (*curve.Group, stdasn1.ObjectIdentifier, error) {
	params := c.Params()
	for _, grp := range curve.All() {
		gp := grp.Curve.Params()
		if gp.P.Cmp(params.P) == 0 && gp.N.Cmp(params.N) == 0 &&
			gp.Gx.Cmp(params.Gx) == 0 && gp.Gy.Cmp(params.Gy) == 0 {
			curveOID, ok := oid.OIDByCurve(grp.ID)
			if !ok {
				return nil, nil, newUnknownCurve()
			}
			return grp, curveOID, nil
		}
	}
	return nil, nil, newUnknownCurve()
}

func marshalUncompressedPoint(grp *curve.Group, x, y *big.Int) []byte {
	byteLen := (grp.PBits + 7) / 8
	point := make([]byte, 1+2*byteLen)
	point[0] = 0x04
	xb := x.Bytes()
	yb := y.Bytes()
	copy(point[1+byteLen-len(xb):1+byteLen], xb)
	copy(point[1+2*byteLen-len(yb):1+2*byteLen], yb)
	return point
}
