package pk

import (
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	casn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// readMPI reads a DER INTEGER as an unsigned big-endian integer. DER
// encodes a non-negative INTEGER whose high bit would otherwise be set
// with a leading 0x00 byte; a value that still has its top bit set after
// that is a negative integer, which no field in this grammar may legally
// be.
func readMPI(s *cryptobyte.String) (*big.Int, bool) {
	var raw cryptobyte.String
	if !s.ReadASN1(&raw, casn1.INTEGER) {
		return nil, false
	}
	if len(raw) > 0 && raw[0]&0x80 != 0 {
		return nil, false
	}
	return new(big.Int).SetBytes(raw), true
}

// requireEmpty enforces that a SEQUENCE's cursor is exactly at its end: any
// remaining bytes, from an unexpected trailing field or extra input, are a
// format error rather than something to silently ignore.
func requireEmpty(s cryptobyte.String, stage Stage) error {
	if !s.Empty() {
		return newLengthMismatch(stage)
	}
	return nil
}
