package pk

import (
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/rsa"
	"testing"

	"golang.org/x/crypto/cryptobyte"
	casn1 "golang.org/x/crypto/cryptobyte/asn1"

	"github.com/dromara/pkparse/crypto/internal/curve"
	"github.com/stretchr/testify/assert"
)

func TestDecodePKCS8_RSA(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 1024)
	assert.NoError(t, err)
	der := encodePKCS8(rsaAlgID, encodeRSAPrivateKey(key))
	ctx := New()
	assert.NoError(t, decodePKCS8(cryptobyte.String(der), ctx, nil))
	assert.Equal(t, TagRSA, ctx.Algorithm)
}

func TestDecodePKCS8_EC(t *testing.T) {
	grp := curve.ByID(curve.SECP256R1)
	key, err := ecdsa.GenerateKey(grp.Curve, rand.Reader)
	assert.NoError(t, err)
	inner := encodeECPrivateKeySEC1(grp, key, false, true)
	der := encodePKCS8(ecAlgID(grp), inner)
	ctx := New()
	assert.NoError(t, decodePKCS8(cryptobyte.String(der), ctx, nil))
	assert.Equal(t, TagECKey, ctx.Algorithm)
	assert.Equal(t, grp.ID, ctx.EC.Group.ID)
}

func TestDecodePKCS8_WrongVersion(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 1024)
	assert.NoError(t, err)
	var b cryptobyte.Builder
	b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(1)
		rsaAlgID(b)
		b.AddASN1OctetString(encodeRSAPrivateKey(key))
	})
	der, err := b.Bytes()
	assert.NoError(t, err)
	ctx := New()
	err = decodePKCS8(cryptobyte.String(der), ctx, nil)
	assert.Error(t, err)
	var iv InvalidVersionError
	assert.ErrorAs(t, err, &iv)
}

func TestDecodePKCS8_UnknownAlgorithm(t *testing.T) {
	var b cryptobyte.Builder
	b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(0)
		b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
			b.AddASN1ObjectIdentifier([]int{1, 2, 3, 4, 99, 99})
		})
		b.AddASN1OctetString([]byte{0x01})
	})
	der, err := b.Bytes()
	assert.NoError(t, err)
	ctx := New()
	err = decodePKCS8(cryptobyte.String(der), ctx, nil)
	assert.Error(t, err)
	var ua UnknownAlgorithmError
	assert.ErrorAs(t, err, &ua)
}
