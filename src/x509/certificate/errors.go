// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509cert

import (
	"errors"
	"fmt"

	x509sig "github.com/H0llyW00dzZ/x509-path-validator/src/x509/signature"
)

var (
	// ErrMalformedCertificate indicates input the codec could not decode as a certificate.
	ErrMalformedCertificate = errors.New("x509cert: malformed certificate")

	// ErrCertificateImmature indicates a certificate whose validity period has not started.
	ErrCertificateImmature = errors.New("x509cert: certificate is not yet valid")

	// ErrCertificateExpired indicates a certificate whose validity period has ended.
	ErrCertificateExpired = errors.New("x509cert: certificate has expired")

	// ErrIssuerSubjectMismatch indicates a subject whose issuer name does not match
	// the subject name of the certificate before it.
	ErrIssuerSubjectMismatch = errors.New("x509cert: issuer does not match subject of issuing certificate")

	// ErrAuthorityKeyIdentifierMismatch indicates an authority key identifier that does
	// not identify the certificate before it.
	ErrAuthorityKeyIdentifierMismatch = errors.New("x509cert: authority key identifier mismatch")

	// ErrBasicConstraintsViolation indicates an issuing certificate that is not a CA or
	// whose path length constraint is exceeded.
	ErrBasicConstraintsViolation = errors.New("x509cert: basic constraints violation")

	// ErrKeyUsageViolation indicates an issuing certificate whose key usage excludes
	// certificate signing.
	ErrKeyUsageViolation = errors.New("x509cert: key usage does not permit certificate signing")

	// ErrLeafRequired indicates a chain build without a leaf certificate.
	ErrLeafRequired = errors.New("x509cert: leaf certificate is required")

	// ErrNilCertificate indicates a nil certificate where one is required.
	ErrNilCertificate = errors.New("x509cert: nil certificate")

	// ErrSignatureInvalid indicates that a signature failed cryptographic verification.
	ErrSignatureInvalid = x509sig.ErrSignatureInvalid
)

// PathError records the position in the walk sequence at which path
// validation failed. Position 0 is the trust anchor and the last position
// is the leaf.
type PathError struct {
	Index   int
	Subject string
	Err     error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("certificate %d (%s): %v", e.Index, e.Subject, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }
