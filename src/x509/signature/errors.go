// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509sig

import "errors"

var (
	// ErrAlgorithmMismatch indicates that the issuer key algorithm is not the one bound
	// to the signature algorithm declared by the subject certificate.
	ErrAlgorithmMismatch = errors.New("x509sig: algorithm mismatch")

	// ErrAlgorithmUnsupported indicates that no scheme is registered for the signature algorithm.
	ErrAlgorithmUnsupported = errors.New("x509sig: algorithm unsupported")

	// ErrSignatureInvalid indicates that cryptographic verification failed.
	ErrSignatureInvalid = errors.New("x509sig: signature verification failed")

	// ErrKeyMalformed indicates that the issuer public key could not be decoded.
	ErrKeyMalformed = errors.New("x509sig: malformed public key")

	// ErrSignatureMalformed indicates that the signature bytes could not be decoded.
	ErrSignatureMalformed = errors.New("x509sig: malformed signature")

	// ErrMalformedAlgorithm indicates an AlgorithmIdentifier or SubjectPublicKeyInfo
	// that is not valid DER.
	ErrMalformedAlgorithm = errors.New("x509sig: malformed algorithm identifier")
)
