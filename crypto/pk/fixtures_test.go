package pk

import (
	"crypto/ecdsa"
	"crypto/rsa"
	"encoding/pem"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	casn1 "golang.org/x/crypto/cryptobyte/asn1"

	"github.com/dromara/pkparse/crypto/internal/curve"
	"github.com/dromara/pkparse/crypto/internal/oid"
)

// Fixture encoders below are test-only hand-rolled encoders mirroring the
// Marshal* functions in sm2curve/asn1.go, generalized from SM2-only to any
// registered curve and to RSA, purely so the decoders above have DER to
// chew on.

func encodeRSAPrivateKey(key *rsa.PrivateKey) []byte {
	key.Precompute()
	var b cryptobyte.Builder
	b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(0)
		b.AddASN1BigInt(key.N)
		b.AddASN1Int64(int64(key.E))
		b.AddASN1BigInt(key.D)
		b.AddASN1BigInt(key.Primes[0])
		b.AddASN1BigInt(key.Primes[1])
		b.AddASN1BigInt(key.Precomputed.Dp)
		b.AddASN1BigInt(key.Precomputed.Dq)
		b.AddASN1BigInt(key.Precomputed.Qinv)
	})
	der, err := b.Bytes()
	if err != nil {
		panic(err)
	}
	return der
}

func encodeRSAPublicKeyPKCS1(pub *rsa.PublicKey) []byte {
	var b cryptobyte.Builder
	b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1BigInt(pub.N)
		b.AddASN1Int64(int64(pub.E))
	})
	der, err := b.Bytes()
	if err != nil {
		panic(err)
	}
	return der
}

func encodeRSAPublicKeySPKI(pub *rsa.PublicKey) []byte {
	body := encodeRSAPublicKeyPKCS1(pub)
	var b cryptobyte.Builder
	b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
			b.AddASN1ObjectIdentifier(oid.RSAEncryption)
			b.AddASN1NULL()
		})
		b.AddASN1BitString(body)
	})
	der, err := b.Bytes()
	if err != nil {
		panic(err)
	}
	return der
}

func ecPoint(grp *curve.Group, x, y *big.Int) []byte {
	byteLen := (grp.PBits + 7) / 8
	point := make([]byte, 1+2*byteLen)
	point[0] = 0x04
	xb := x.Bytes()
	yb := y.Bytes()
	copy(point[1+byteLen-len(xb):1+byteLen], xb)
	copy(point[1+2*byteLen-len(yb):1+2*byteLen], yb)
	return point
}

func encodeECPrivateKeySEC1(grp *curve.Group, priv *ecdsa.PrivateKey, includeParams, includePublic bool) []byte {
	curveOID, _ := oid.OIDByCurve(grp.ID)
	var b cryptobyte.Builder
	b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(1)
		b.AddASN1OctetString(priv.D.Bytes())
		if includeParams {
			b.AddASN1(casn1.Tag(0).ContextSpecific().Constructed(), func(b *cryptobyte.Builder) {
				b.AddASN1ObjectIdentifier(curveOID)
			})
		}
		if includePublic {
			b.AddASN1(casn1.Tag(1).ContextSpecific().Constructed(), func(b *cryptobyte.Builder) {
				b.AddASN1BitString(ecPoint(grp, priv.X, priv.Y))
			})
		}
	})
	der, err := b.Bytes()
	if err != nil {
		panic(err)
	}
	return der
}

func ecAlgID(grp *curve.Group) func(b *cryptobyte.Builder) {
	curveOID, _ := oid.OIDByCurve(grp.ID)
	return func(b *cryptobyte.Builder) {
		b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
			b.AddASN1ObjectIdentifier(oid.ECPublicKey)
			b.AddASN1ObjectIdentifier(curveOID)
		})
	}
}

func encodeECPublicKeySPKI(grp *curve.Group, pub *ecdsa.PublicKey) []byte {
	var b cryptobyte.Builder
	b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
		ecAlgID(grp)(b)
		b.AddASN1BitString(ecPoint(grp, pub.X, pub.Y))
	})
	der, err := b.Bytes()
	if err != nil {
		panic(err)
	}
	return der
}

func encodePKCS8(algID func(b *cryptobyte.Builder), privBody []byte) []byte {
	var b cryptobyte.Builder
	b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(0)
		algID(b)
		b.AddASN1OctetString(privBody)
	})
	der, err := b.Bytes()
	if err != nil {
		panic(err)
	}
	return der
}

func rsaAlgID(b *cryptobyte.Builder) {
	b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1ObjectIdentifier(oid.RSAEncryption)
		b.AddASN1NULL()
	})
}

func pemBlock(typ string, der []byte) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: typ, Bytes: der})
}
