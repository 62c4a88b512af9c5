package pk

import (
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/rsa"
	"testing"

	"github.com/dromara/pkparse/crypto/internal/curve"
	"github.com/stretchr/testify/assert"
)

func TestParseSubjectPublicKeyInfo_RSA(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 1024)
	assert.NoError(t, err)
	der := encodeRSAPublicKeySPKI(&key.PublicKey)
	ctx, err := ParseSubjectPublicKeyInfo(der, nil)
	assert.NoError(t, err)
	assert.Equal(t, TagRSA, ctx.Algorithm)
	pub, err := ctx.ToRSAPublicKey()
	assert.NoError(t, err)
	assert.Equal(t, 0, pub.N.Cmp(key.N))
}

func TestParseSubjectPublicKeyInfo_EC(t *testing.T) {
	grp := curve.ByID(curve.SECP224R1)
	key, err := ecdsa.GenerateKey(grp.Curve, rand.Reader)
	assert.NoError(t, err)
	der := encodeECPublicKeySPKI(grp, &key.PublicKey)
	ctx, err := ParseSubjectPublicKeyInfo(der, nil)
	assert.NoError(t, err)
	assert.Equal(t, TagECKey, ctx.Algorithm)
	pub, err := ctx.ToECDSAPublicKey()
	assert.NoError(t, err)
	assert.Equal(t, 0, pub.X.Cmp(key.X))
	assert.Equal(t, 0, pub.Y.Cmp(key.Y))
}

func TestParseSubjectPublicKeyInfo_TrailingBytes(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 1024)
	assert.NoError(t, err)
	der := append(encodeRSAPublicKeySPKI(&key.PublicKey), 0xFF)
	_, err = ParseSubjectPublicKeyInfo(der, nil)
	assert.Error(t, err)
	var lm LengthMismatchError
	assert.ErrorAs(t, err, &lm)
}

func TestParseSubjectPublicKeyInfo_AlgorithmMismatch(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 1024)
	assert.NoError(t, err)
	der := encodeRSAPublicKeySPKI(&key.PublicKey)
	ctx, err := ParseSubjectPublicKeyInfo(der, nil)
	assert.NoError(t, err)
	_, err = ctx.ToECDSAPublicKey()
	assert.ErrorIs(t, err, ErrAlgorithmMismatch)
}
