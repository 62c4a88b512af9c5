// @Package pkparse
// @Description X.509/PKCS private and public key deserializer for Go
// @Page github.com/dromara/pkparse

// Package pkparse is the top-level facade over crypto/pk: parsing RSA and
// EC private/public keys out of PKCS#1, SEC1, PKCS#8 and SubjectPublicKeyInfo
// DER, PEM-armored or not.
package pkparse

import (
	"encoding/pem"

	"github.com/dromara/pkparse/coding"
	"github.com/dromara/pkparse/crypto/pk"
)

const Version = "0.1.0"

var (
	// Encode defines an Encoder instance, kept for base64-encoding parsed
	// key material.
	Encode = coding.NewEncoder()
	// Decode defines a Decoder instance.
	Decode = coding.NewDecoder()
)

// ParseKey parses a PEM-armored or raw DER private key blob (PKCS#1
// RSAPrivateKey, SEC1 ECPrivateKey, or PKCS#8 PrivateKeyInfo) and returns
// the resulting key context. See crypto/pk.ParseKey.
func ParseKey(data []byte, opts *pk.Options) (*pk.PKContext, error) {
	return pk.ParseKey(data, opts)
}

// ParseSubjectPublicKeyInfo parses a PEM-armored or raw DER
// SubjectPublicKeyInfo and returns the resulting key context. See
// crypto/pk.ParseSubjectPublicKeyInfo.
func ParseSubjectPublicKeyInfo(data []byte, opts *pk.Options) (*pk.PKContext, error) {
	if block, _ := pem.Decode(data); block != nil {
		data = block.Bytes
	}
	return pk.ParseSubjectPublicKeyInfo(data, opts)
}
