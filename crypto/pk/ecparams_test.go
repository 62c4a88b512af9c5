package pk

import (
	"testing"

	"golang.org/x/crypto/cryptobyte"
	casn1 "golang.org/x/crypto/cryptobyte/asn1"
	"github.com/dromara/pkparse/crypto/internal/curve"
	"github.com/dromara/pkparse/crypto/internal/oid"
	"github.com/stretchr/testify/assert"
)

func namedCurveTLV(grp *curve.Group) []byte {
	curveOID, _ := oid.OIDByCurve(grp.ID)
	var b cryptobyte.Builder
	b.AddASN1ObjectIdentifier(curveOID)
	der, err := b.Bytes()
	if err != nil {
		panic(err)
	}
	return der
}

func TestResolveECParams_NamedCurve(t *testing.T) {
	grp := curve.ByID(curve.SECP521R1)
	resolved, err := resolveECParams(cryptobyte.String(namedCurveTLV(grp)), (*Options)(nil).orDefault())
	assert.NoError(t, err)
	assert.Equal(t, grp.ID, resolved.ID)
}

func TestResolveECParams_UnknownCurve(t *testing.T) {
	var b cryptobyte.Builder
	b.AddASN1ObjectIdentifier([]int{1, 2, 3, 4, 5, 6, 7})
	der, _ := b.Bytes()
	_, err := resolveECParams(cryptobyte.String(der), (*Options)(nil).orDefault())
	assert.Error(t, err)
	var uc UnknownCurveError
	assert.ErrorAs(t, err, &uc)
}

func TestResolveECParams_SpecifiedDomainMatchesRegistry(t *testing.T) {
	grp := curve.ByID(curve.SECP256R1)
	var b cryptobyte.Builder
	b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(1)
		b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
			b.AddASN1ObjectIdentifier(oid.PrimeField)
			b.AddASN1BigInt(grp.P)
		})
		b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
			b.AddASN1OctetString(grp.A.Bytes())
			b.AddASN1OctetString(grp.B.Bytes())
		})
		b.AddASN1OctetString(ecPoint(grp, grp.Gx, grp.Gy))
		b.AddASN1BigInt(grp.N)
		b.AddASN1Int64(1) // cofactor
	})
	der, err := b.Bytes()
	assert.NoError(t, err)

	resolved, err := resolveECParams(cryptobyte.String(der), &Options{AllowSpecifiedDomain: true})
	assert.NoError(t, err)
	assert.Equal(t, grp.ID, resolved.ID)
}

func TestResolveECParams_SpecifiedDomainDisabled(t *testing.T) {
	grp := curve.ByID(curve.SECP256R1)
	var b cryptobyte.Builder
	b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(1)
		b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
			b.AddASN1ObjectIdentifier(oid.PrimeField)
			b.AddASN1BigInt(grp.P)
		})
		b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
			b.AddASN1OctetString(grp.A.Bytes())
			b.AddASN1OctetString(grp.B.Bytes())
		})
		b.AddASN1OctetString(ecPoint(grp, grp.Gx, grp.Gy))
		b.AddASN1BigInt(grp.N)
	})
	der, err := b.Bytes()
	assert.NoError(t, err)

	_, err = resolveECParams(cryptobyte.String(der), &Options{AllowSpecifiedDomain: false})
	assert.Error(t, err)
	var fu FeatureUnavailableError
	assert.ErrorAs(t, err, &fu)
}
