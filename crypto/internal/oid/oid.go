// Package oid is the OID lookup table this module's parsers treat as an
// external collaborator: mapping an AlgorithmIdentifier's OBJECT IDENTIFIER
// to a closed algorithm tag, and a namedCurve OID to a curve-registry ID.
package oid

import (
	"encoding/asn1"

	"github.com/dromara/pkparse/crypto/internal/curve"
)

// AlgorithmTag is the closed public-key algorithm enumeration.
type AlgorithmTag int

const (
	TagNone AlgorithmTag = iota
	TagRSA
	TagECKey
	TagECKeyDH
)

// Public-key algorithm OIDs.
var (
	RSAEncryption = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1}
	ECPublicKey   = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
	ECDH          = asn1.ObjectIdentifier{1, 3, 132, 1, 12}
)

// PrimeField is the ECParameters fieldType OID for a prime field; this
// module supports no other field type (characteristic-2 fields included).
var PrimeField = asn1.ObjectIdentifier{1, 2, 840, 10045, 1, 1}

// PKAlgorithm maps an AlgorithmIdentifier OID to the closed algorithm tag,
// or reports ok=false for anything this module does not recognize.
func PKAlgorithm(o asn1.ObjectIdentifier) (AlgorithmTag, bool) {
	switch {
	case o.Equal(RSAEncryption):
		return TagRSA, true
	case o.Equal(ECPublicKey):
		return TagECKey, true
	case o.Equal(ECDH):
		return TagECKeyDH, true
	}
	return TagNone, false
}

type curveOID struct {
	OID asn1.ObjectIdentifier
	ID  curve.ID
}

var curveOIDTable = []curveOID{
	{asn1.ObjectIdentifier{1, 2, 840, 10045, 3, 1, 1}, curve.SECP192R1},
	{asn1.ObjectIdentifier{1, 3, 132, 0, 33}, curve.SECP224R1},
	{asn1.ObjectIdentifier{1, 2, 840, 10045, 3, 1, 7}, curve.SECP256R1},
	{asn1.ObjectIdentifier{1, 3, 132, 0, 34}, curve.SECP384R1},
	{asn1.ObjectIdentifier{1, 3, 132, 0, 35}, curve.SECP521R1},
	{asn1.ObjectIdentifier{1, 3, 36, 3, 3, 2, 8, 1, 1, 7}, curve.BP256R1},
	{asn1.ObjectIdentifier{1, 3, 36, 3, 3, 2, 8, 1, 1, 11}, curve.BP384R1},
	{asn1.ObjectIdentifier{1, 3, 36, 3, 3, 2, 8, 1, 1, 13}, curve.BP512R1},
	{asn1.ObjectIdentifier{1, 2, 156, 10197, 1, 301}, curve.SM2P256},
}

// CurveByOID maps a namedCurve OID to a curve-registry ID.
func CurveByOID(o asn1.ObjectIdentifier) (curve.ID, bool) {
	for _, e := range curveOIDTable {
		if e.OID.Equal(o) {
			return e.ID, true
		}
	}
	return curve.None, false
}

// OIDByCurve is CurveByOID's inverse, used by tests and by the pk
// package's Marshal* encoders to re-emit a namedCurve OID for a registry ID.
func OIDByCurve(id curve.ID) (asn1.ObjectIdentifier, bool) {
	for _, e := range curveOIDTable {
		if e.ID == id {
			return e.OID, true
		}
	}
	return nil, false
}
