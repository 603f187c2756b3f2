// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509sig

import (
	"encoding/asn1"
	"fmt"
)

// KeyBinding names the SubjectPublicKeyInfo algorithm a scheme accepts.
//
// NamedCurve is nil for key algorithms that carry no curve parameter; such
// keys must then have no parameters at all.
type KeyBinding struct {
	Algorithm  asn1.ObjectIdentifier
	NamedCurve asn1.ObjectIdentifier
}

// Matches reports whether the issuer key algorithm satisfies the binding.
func (b KeyBinding) Matches(alg AlgorithmIdentifier) bool {
	if !alg.Algorithm.Equal(b.Algorithm) {
		return false
	}
	if b.NamedCurve == nil {
		return len(alg.Parameters) == 0
	}
	curve, ok := alg.NamedCurve()
	return ok && curve.Equal(b.NamedCurve)
}

// Scheme binds one signature algorithm identifier to a verification adapter.
type Scheme struct {
	// Name is a readable label, e.g. "ECDSA-P256-SHA256".
	Name string
	// Signature is the signature algorithm identifier declared by subject certificates.
	Signature asn1.ObjectIdentifier
	// Key is the issuer key algorithm this signature algorithm is bound to.
	Key KeyBinding
	// Parameters is the DER parameters element the signature algorithm
	// identifier must carry. Nil requires the field to be absent, as RFC 8410
	// and RFC 5758 do for Ed25519 and ECDSA.
	Parameters []byte

	verifier verifier
}

type verifier interface {
	verify(key, message, signature []byte) error
}

// adapter holds the explicit fallible factories of a scheme.
type adapter[K, S any] struct {
	parseKey       func([]byte) (K, error)
	parseSignature func([]byte) (S, error)
	check          func(K, []byte, S) bool
}

func (a adapter[K, S]) verify(key, message, signature []byte) error {
	k, err := a.parseKey(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrKeyMalformed, err)
	}
	s, err := a.parseSignature(signature)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSignatureMalformed, err)
	}
	if !a.check(k, message, s) {
		return ErrSignatureInvalid
	}
	return nil
}

// NewScheme builds a scheme from a key decoder, a signature decoder and a
// verification predicate.
//
// Parameters:
//   - name: Readable label for the scheme
//   - signature: Signature algorithm identifier the scheme handles
//   - key: Issuer key algorithm the signature algorithm is bound to
//   - parseKey: Decodes the raw subjectPublicKey bytes of the issuer
//   - parseSignature: Decodes the raw signature bytes of the subject
//   - check: Reports whether the signature is valid for the message
//
// Returns:
//   - Scheme: A scheme ready to be passed to [NewRegistry]
func NewScheme[K, S any](
	name string,
	signature asn1.ObjectIdentifier,
	key KeyBinding,
	parseKey func([]byte) (K, error),
	parseSignature func([]byte) (S, error),
	check func(K, []byte, S) bool,
) Scheme {
	return Scheme{
		Name:      name,
		Signature: signature,
		Key:       key,
		verifier: adapter[K, S]{
			parseKey:       parseKey,
			parseSignature: parseSignature,
			check:          check,
		},
	}
}

// Verify runs the scheme's adapter. It does not check the key binding; use
// [Registry.Verify] for the full dispatch.
func (s Scheme) Verify(key, message, signature []byte) error {
	if s.verifier == nil {
		return fmt.Errorf("%w: %s", ErrAlgorithmUnsupported, s.Signature)
	}
	return s.verifier.verify(key, message, signature)
}
