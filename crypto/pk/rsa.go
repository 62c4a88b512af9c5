package pk

import (
	"golang.org/x/crypto/cryptobyte"
	casn1 "golang.org/x/crypto/cryptobyte/asn1"

	"github.com/dromara/pkparse/crypto/internal/rsabig"
)

// decodeRSAPublicKey reads a PKCS#1 RSAPublicKey SEQUENCE { n, e } — the
// BIT STRING payload of a SubjectPublicKeyInfo — and completes/validates
// it.
func decodeRSAPublicKey(body cryptobyte.String, ctx *PKContext) error {
	var seq cryptobyte.String
	if !body.ReadASN1(&seq, casn1.SEQUENCE) {
		return newInvalidFormat(StageRSA, errOutOfData)
	}
	n, ok := readMPI(&seq)
	if !ok {
		return newInvalidFormat(StageRSA, errOutOfData)
	}
	e, ok := readMPI(&seq)
	if !ok {
		return newInvalidFormat(StageRSA, errOutOfData)
	}
	if err := requireEmpty(seq, StageRSA); err != nil {
		return err
	}
	if err := requireEmpty(body, StageRSA); err != nil {
		return err
	}
	rctx := &rsabig.Context{N: n, E: e}
	if err := rctx.Complete(); err != nil {
		return newInvalidPublicKey(StageRSA, err)
	}
	if err := rctx.CheckPublicKey(); err != nil {
		return newInvalidPublicKey(StageRSA, err)
	}
	ctx.setup(TagRSA)
	ctx.RSA = rctx
	return nil
}

// decodeRSAPrivateKey reads a PKCS#1 RSAPrivateKey SEQUENCE. The on-wire
// CRT triplet (dP, dQ, qInv) is read only to keep the cursor in sync, then
// discarded: rsabig.Complete always recomputes them from d, p, q so a
// decoder never trusts caller-supplied CRT shortcuts that might silently
// disagree with the primary parameters.
func decodeRSAPrivateKey(der cryptobyte.String, ctx *PKContext) error {
	var seq cryptobyte.String
	if !der.ReadASN1(&seq, casn1.SEQUENCE) {
		return newInvalidFormat(StageRSA, errOutOfData)
	}
	var version int64
	if !seq.ReadASN1Int64WithTag(&version, casn1.INTEGER) {
		return newInvalidFormat(StageRSA, errOutOfData)
	}
	if version != 0 {
		return newInvalidVersion(StageRSA, version)
	}
	n, ok1 := readMPI(&seq)
	e, ok2 := readMPI(&seq)
	d, ok3 := readMPI(&seq)
	p, ok4 := readMPI(&seq)
	q, ok5 := readMPI(&seq)
	_, ok6 := readMPI(&seq) // dP, discarded
	_, ok7 := readMPI(&seq) // dQ, discarded
	_, ok8 := readMPI(&seq) // qInv, discarded
	if !(ok1 && ok2 && ok3 && ok4 && ok5 && ok6 && ok7 && ok8) {
		return newInvalidFormat(StageRSA, errOutOfData)
	}
	// Multi-prime RSA's otherPrimeInfos is not accepted: any remaining
	// bytes, inside or after the SEQUENCE, are a format error.
	if err := requireEmpty(seq, StageRSA); err != nil {
		return err
	}
	if err := requireEmpty(der, StageRSA); err != nil {
		return err
	}
	rctx := &rsabig.Context{N: n, E: e, D: d, P: p, Q: q}
	if err := rctx.Complete(); err != nil {
		return newInvalidPublicKey(StageRSA, err)
	}
	if err := rctx.CheckPublicKey(); err != nil {
		return newInvalidPublicKey(StageRSA, err)
	}
	ctx.setup(TagRSA)
	ctx.RSA = rctx
	return nil
}
