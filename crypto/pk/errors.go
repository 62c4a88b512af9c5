package pk

import (
	"errors"
	"fmt"
)

// Stage identifies which decoder in the pipeline produced a failure, so a
// caller can distinguish "malformed algorithm identifier" from "malformed
// RSA integer" without string-matching an error message.
type Stage string

const (
	StageAlgID   Stage = "algorithm-identifier"
	StageRSA     Stage = "rsa-key"
	StageECParam Stage = "ec-parameters"
	StageEC      Stage = "ec-key"
	StageSPKI    Stage = "subject-public-key-info"
	StagePKCS8   Stage = "pkcs8"
	StageTop     Stage = "parse-key"
)

// baseError is embedded by every exported error type below; it carries the
// (stage, cause) pair this module propagates in place of mbedtls's
// original arithmetic OR-combination of two error codes (see DESIGN.md).
type baseError struct {
	Stage Stage
	Cause error
}

func (e baseError) Error() string {
	if e.Cause == nil {
		return string(e.Stage)
	}
	return fmt.Sprintf("%s: %v", e.Stage, e.Cause)
}

func (e baseError) Unwrap() error { return e.Cause }

// InvalidFormatError reports a structural ASN.1 violation or exhausted
// input.
type InvalidFormatError struct{ baseError }

func newInvalidFormat(stage Stage, cause error) error {
	return InvalidFormatError{baseError{stage, cause}}
}

// InvalidVersionError reports a PKCS#1/SEC1/PKCS#8 version field holding a
// value other than the single value this module supports.
type InvalidVersionError struct{ baseError }

func newInvalidVersion(stage Stage, got int64) error {
	return InvalidVersionError{baseError{stage, fmt.Errorf("unsupported version %d", got)}}
}

// InvalidAlgorithmError reports a malformed AlgorithmIdentifier, e.g. RSA
// with non-NULL parameters.
type InvalidAlgorithmError struct{ baseError }

func newInvalidAlgorithm(cause error) error {
	return InvalidAlgorithmError{baseError{StageAlgID, cause}}
}

// UnknownAlgorithmError reports an algorithm OID this module does not
// recognize.
type UnknownAlgorithmError struct{ baseError }

func newUnknownAlgorithm() error {
	return UnknownAlgorithmError{baseError{StageAlgID, nil}}
}

// UnknownCurveError reports EC parameters naming an unsupported curve.
type UnknownCurveError struct{ baseError }

func newUnknownCurve() error {
	return UnknownCurveError{baseError{StageECParam, nil}}
}

// FeatureUnavailableError reports a characteristic-2 field, a compressed
// point this module could not decompress, a SpecifiedECDomain with no
// structural match, or SpecifiedECDomain parsing disabled via Options.
type FeatureUnavailableError struct{ baseError }

func newFeatureUnavailable(stage Stage, cause error) error {
	return FeatureUnavailableError{baseError{stage, cause}}
}

// InvalidPublicKeyError reports an RSA or EC key that failed mathematical
// validation.
type InvalidPublicKeyError struct{ baseError }

func newInvalidPublicKey(stage Stage, cause error) error {
	return InvalidPublicKeyError{baseError{stage, cause}}
}

// LengthMismatchError reports trailing bytes after a TLV this module
// requires to be exactly consumed.
type LengthMismatchError struct{ baseError }

func newLengthMismatch(stage Stage) error {
	return LengthMismatchError{baseError{stage, nil}}
}

// EncryptedKeyError reports a password-protected PEM body. This module does
// not implement PEM/PKCS#8 decryption.
type EncryptedKeyError struct{ baseError }

func newEncryptedKey() error {
	return EncryptedKeyError{baseError{StageTop, errors.New("key is password-protected")}}
}

// ErrAlgorithmMismatch is returned by PKContext's To* conversion helpers
// when called against a context populated with a different algorithm.
var ErrAlgorithmMismatch = errors.New("pk: parsed key does not match requested algorithm")

var (
	errOutOfData               = errors.New("out of data")
	errRSAParams                = errors.New("rsa algorithm parameters must be absent or NULL")
	errUnexpectedTag            = errors.New("unexpected ASN.1 tag")
	errSpecifiedDomainDisabled  = errors.New("SpecifiedECDomain parsing is disabled")
	errCharacteristic2          = errors.New("characteristic-2 fields are not supported")
	errBadVersion               = errors.New("unsupported SpecifiedECDomain version")
	errNoStructuralMatch        = errors.New("no registered curve matches these parameters")
	errBadPointEncoding         = errors.New("unrecognized EC point encoding")
	errCurveMismatch            = errors.New("inner and outer curve identifiers disagree")
	errMissingCurve             = errors.New("no curve identified for EC key")
	errScalarOutOfRange         = errors.New("private scalar out of [1, n-1] range")
	errCompressedUnsupported    = errors.New("compressed point could not be decompressed")
	errPointAtInfinity          = errors.New("point is the identity element")
	errNotOnCurve               = errors.New("point is not on the named curve")
	errEmptyInput               = errors.New("empty input")
	errNoMatchingGrammar        = errors.New("input matches no supported key grammar")
)
