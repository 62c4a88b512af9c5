package pk

import (
	"encoding/asn1"

	"golang.org/x/crypto/cryptobyte"
	casn1 "golang.org/x/crypto/cryptobyte/asn1"

	"github.com/dromara/pkparse/crypto/internal/oid"
)

// algorithmIdentifier is the decoded (algorithm, parameters) pair:
// parameters are the verbatim TLV bytes of whatever followed the OID, left
// undecoded here so the EC-parameters resolver can interpret them
// independently (they may be a namedCurve OID or a SpecifiedECDomain
// SEQUENCE).
type algorithmIdentifier struct {
	tag       AlgorithmTag
	params    cryptobyte.String
	hasParams bool
}

// parseAlgorithmIdentifier reads SEQUENCE { OID, ANY OPTIONAL } from in and
// maps the OID to a closed AlgorithmTag. For RSA, parameters must be either
// absent or the two-byte NULL encoding; anything else is a format error
// here rather than deferred to the RSA key decoder.
func parseAlgorithmIdentifier(in *cryptobyte.String) (algorithmIdentifier, error) {
	var seq cryptobyte.String
	if !in.ReadASN1(&seq, casn1.SEQUENCE) {
		return algorithmIdentifier{}, newInvalidFormat(StageAlgID, errOutOfData)
	}
	var algOID asn1.ObjectIdentifier
	if !seq.ReadASN1ObjectIdentifier(&algOID) {
		return algorithmIdentifier{}, newInvalidFormat(StageAlgID, errOutOfData)
	}
	tag, ok := oid.PKAlgorithm(algOID)
	if !ok {
		return algorithmIdentifier{}, newUnknownAlgorithm()
	}
	ai := algorithmIdentifier{tag: tag}
	if !seq.Empty() {
		var tlv cryptobyte.String
		var elemTag casn1.Tag
		if !seq.ReadAnyASN1Element(&tlv, &elemTag) {
			return algorithmIdentifier{}, newInvalidFormat(StageAlgID, errOutOfData)
		}
		ai.hasParams = true
		ai.params = tlv
		if tag == TagRSA && !(elemTag == casn1.NULL && len(tlv) == 2) {
			return algorithmIdentifier{}, newInvalidAlgorithm(errRSAParams)
		}
	}
	return ai, nil
}
