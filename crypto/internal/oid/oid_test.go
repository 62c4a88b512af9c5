package oid

import (
	"testing"

	"github.com/dromara/pkparse/crypto/internal/curve"
	"github.com/stretchr/testify/assert"
)

func TestPKAlgorithm(t *testing.T) {
	tag, ok := PKAlgorithm(RSAEncryption)
	assert.True(t, ok)
	assert.Equal(t, TagRSA, tag)

	tag, ok = PKAlgorithm(ECPublicKey)
	assert.True(t, ok)
	assert.Equal(t, TagECKey, tag)

	_, ok = PKAlgorithm(PrimeField)
	assert.False(t, ok)
}

func TestCurveOIDRoundTrip(t *testing.T) {
	for _, id := range []curve.ID{curve.SECP192R1, curve.SECP256R1, curve.SECP384R1, curve.SECP521R1, curve.BP256R1, curve.SM2P256} {
		o, ok := OIDByCurve(id)
		assert.True(t, ok)
		got, ok := CurveByOID(o)
		assert.True(t, ok)
		assert.Equal(t, id, got)
	}
	_, ok := CurveByOID(RSAEncryption)
	assert.False(t, ok)
}
