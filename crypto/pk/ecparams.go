package pk

import (
	"encoding/asn1"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	casn1 "golang.org/x/crypto/cryptobyte/asn1"

	"github.com/dromara/pkparse/crypto/internal/curve"
	"github.com/dromara/pkparse/crypto/internal/oid"
)

// resolveECParams decodes an ECParameters CHOICE — namedCurve OID, or
// (when enabled) a SpecifiedECDomain SEQUENCE — into a curve.Group.
func resolveECParams(params cryptobyte.String, opts *Options) (*curve.Group, error) {
	if params.Empty() {
		return nil, newInvalidFormat(StageECParam, errOutOfData)
	}
	switch {
	case params.PeekASN1Tag(casn1.OBJECT_IDENTIFIER):
		var curveOID asn1.ObjectIdentifier
		if !params.ReadASN1ObjectIdentifier(&curveOID) {
			return nil, newInvalidFormat(StageECParam, errOutOfData)
		}
		if err := requireEmpty(params, StageECParam); err != nil {
			return nil, err
		}
		id, ok := oid.CurveByOID(curveOID)
		if !ok {
			return nil, newUnknownCurve()
		}
		return curve.ByID(id), nil
	case params.PeekASN1Tag(casn1.SEQUENCE):
		if !opts.AllowSpecifiedDomain {
			return nil, newFeatureUnavailable(StageECParam, errSpecifiedDomainDisabled)
		}
		return parseSpecifiedECDomain(params)
	default:
		return nil, newInvalidFormat(StageECParam, errUnexpectedTag)
	}
}

// parseSpecifiedECDomain decodes SpecifiedECDomain (SEC 1 §C.2) and
// structurally matches it against the compiled curve registry by comparing
// (pbits, nbits, P, A, B, N, Gx, parity(Gy)) — full Gy only when the
// generator was uncompressed. A compressed generator determines Gy's
// parity only, so that is all the match requires; the cofactor and
// optional hash-algorithm fields are read but never compared, since every
// curve in the registry is already uniquely identified without them.
func parseSpecifiedECDomain(params cryptobyte.String) (*curve.Group, error) {
	var seq cryptobyte.String
	if !params.ReadASN1(&seq, casn1.SEQUENCE) {
		return nil, newInvalidFormat(StageECParam, errOutOfData)
	}
	if err := requireEmpty(params, StageECParam); err != nil {
		return nil, err
	}
	var version int64
	if !seq.ReadASN1Int64WithTag(&version, casn1.INTEGER) {
		return nil, newInvalidFormat(StageECParam, errOutOfData)
	}
	if version < 1 || version > 3 {
		return nil, newInvalidFormat(StageECParam, errBadVersion)
	}

	var fieldID cryptobyte.String
	if !seq.ReadASN1(&fieldID, casn1.SEQUENCE) {
		return nil, newInvalidFormat(StageECParam, errOutOfData)
	}
	var fieldType asn1.ObjectIdentifier
	if !fieldID.ReadASN1ObjectIdentifier(&fieldType) {
		return nil, newInvalidFormat(StageECParam, errOutOfData)
	}
	if !fieldType.Equal(oid.PrimeField) {
		return nil, newFeatureUnavailable(StageECParam, errCharacteristic2)
	}
	p, ok := readMPI(&fieldID)
	if !ok {
		return nil, newInvalidFormat(StageECParam, errOutOfData)
	}

	var curveSeq cryptobyte.String
	if !seq.ReadASN1(&curveSeq, casn1.SEQUENCE) {
		return nil, newInvalidFormat(StageECParam, errOutOfData)
	}
	var aOct, bOct cryptobyte.String
	if !curveSeq.ReadASN1(&aOct, casn1.OCTET_STRING) {
		return nil, newInvalidFormat(StageECParam, errOutOfData)
	}
	if !curveSeq.ReadASN1(&bOct, casn1.OCTET_STRING) {
		return nil, newInvalidFormat(StageECParam, errOutOfData)
	}
	if !curveSeq.Empty() {
		// seed BIT STRING OPTIONAL: present but unused.
		var seed cryptobyte.String
		if !curveSeq.ReadASN1(&seed, casn1.BIT_STRING) {
			return nil, newInvalidFormat(StageECParam, errOutOfData)
		}
	}
	a := new(big.Int).SetBytes(aOct)
	b := new(big.Int).SetBytes(bOct)

	var baseOct cryptobyte.String
	if !seq.ReadASN1(&baseOct, casn1.OCTET_STRING) {
		return nil, newInvalidFormat(StageECParam, errOutOfData)
	}
	gx, gy, gyFull, err := decodeGeneratorOctets(baseOct)
	if err != nil {
		return nil, err
	}

	n, ok := readMPI(&seq)
	if !ok {
		return nil, newInvalidFormat(StageECParam, errOutOfData)
	}
	// cofactor INTEGER OPTIONAL and hash HashAlgorithm OPTIONAL are
	// intentionally not read further than this point; requireEmpty is not
	// applied to seq since either or both may legally remain.

	pBits := p.BitLen()
	nBits := n.BitLen()
	for _, cand := range curve.All() {
		if cand.PBits != pBits || cand.NBits != nBits {
			continue
		}
		if cand.P.Cmp(p) != 0 || cand.A.Cmp(a) != 0 || cand.B.Cmp(b) != 0 || cand.N.Cmp(n) != 0 {
			continue
		}
		if cand.Gx.Cmp(gx) != 0 {
			continue
		}
		if gyFull {
			if cand.Gy.Cmp(gy) != 0 {
				continue
			}
		} else if cand.Gy.Bit(0) != gy.Bit(0) {
			continue
		}
		return cand, nil
	}
	return nil, newFeatureUnavailable(StageECParam, errNoStructuralMatch)
}

// decodeGeneratorOctets reads an ECPoint OCTET STRING and returns its X
// coordinate plus either the full Y (full=true) or just Y's parity encoded
// in y's low bit (full=false).
func decodeGeneratorOctets(data []byte) (x, y *big.Int, full bool, err error) {
	if len(data) < 1 {
		return nil, nil, false, newInvalidFormat(StageECParam, errOutOfData)
	}
	switch data[0] {
	case 0x04:
		rest := data[1:]
		if len(rest)%2 != 0 {
			return nil, nil, false, newInvalidFormat(StageECParam, errOutOfData)
		}
		half := len(rest) / 2
		return new(big.Int).SetBytes(rest[:half]), new(big.Int).SetBytes(rest[half:]), true, nil
	case 0x02:
		return new(big.Int).SetBytes(data[1:]), big.NewInt(0), false, nil
	case 0x03:
		return new(big.Int).SetBytes(data[1:]), big.NewInt(1), false, nil
	default:
		return nil, nil, false, newInvalidFormat(StageECParam, errBadPointEncoding)
	}
}

// useECParams reconciles a newly resolved curve group against one a caller
// already established (from an outer PKCS#8 AlgorithmIdentifier): if both
// are set, they must name the same curve.
func useECParams(target **curve.Group, resolved *curve.Group) error {
	if *target != nil && (*target).ID != resolved.ID {
		return newInvalidFormat(StageECParam, errCurveMismatch)
	}
	*target = resolved
	return nil
}
