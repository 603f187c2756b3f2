// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509sig

import (
	"bytes"
	"encoding/asn1"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// builtin collects the schemes registered by the per-scheme files.
var builtin []Scheme

func register(schemes ...Scheme) {
	builtin = append(builtin, schemes...)
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return NewRegistry(builtin...)
})

// DefaultRegistry returns the registry holding every scheme compiled into the build.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}

// Registry maps signature algorithm identifiers to schemes.
// It is immutable once built and safe for concurrent use.
type Registry struct {
	schemes map[string]Scheme
}

// NewRegistry builds a registry from the given schemes. A later scheme replaces
// an earlier one with the same signature algorithm.
func NewRegistry(schemes ...Scheme) *Registry {
	r := &Registry{schemes: make(map[string]Scheme, len(schemes))}
	for _, s := range schemes {
		r.schemes[s.Signature.String()] = s
	}
	return r
}

// Lookup returns the scheme registered for a signature algorithm.
func (r *Registry) Lookup(signature asn1.ObjectIdentifier) (Scheme, bool) {
	s, ok := r.schemes[signature.String()]
	return s, ok
}

// Schemes returns the registered schemes ordered by signature algorithm.
func (r *Registry) Schemes() []Scheme {
	out := make([]Scheme, 0, len(r.schemes))
	for _, s := range r.schemes {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b Scheme) int {
		return strings.Compare(a.Signature.String(), b.Signature.String())
	})
	return out
}

// Verify checks a signature made by the holder of the issuer key over message.
//
// The issuer key algorithm must be the one bound to the signature algorithm;
// a mismatch is reported as [ErrAlgorithmMismatch] before any key or signature
// decoding takes place. Signature algorithm parameters other than the scheme's
// [Scheme.Parameters] are reported as [ErrMalformedAlgorithm], also before
// decoding.
//
// Parameters:
//   - keyAlg: Algorithm of the issuer SubjectPublicKeyInfo
//   - key: Raw subjectPublicKey bytes of the issuer
//   - sigAlg: Signature algorithm declared by the subject
//   - message: Signed bytes (the subject TBSCertificate)
//   - signature: Raw signature bytes of the subject
//
// Returns:
//   - error: nil when the signature is valid
func (r *Registry) Verify(keyAlg AlgorithmIdentifier, key []byte, sigAlg AlgorithmIdentifier, message, signature []byte) error {
	scheme, ok := r.Lookup(sigAlg.Algorithm)
	if !ok {
		if !keyAlg.Algorithm.Equal(sigAlg.Algorithm) {
			return fmt.Errorf("%w: key %s, signature %s", ErrAlgorithmMismatch, keyAlg.Algorithm, sigAlg.Algorithm)
		}
		return fmt.Errorf("%w: %s", ErrAlgorithmUnsupported, sigAlg.Algorithm)
	}
	if !scheme.Key.Matches(keyAlg) {
		return fmt.Errorf("%w: %s cannot be verified with a %s key", ErrAlgorithmMismatch, scheme.Name, keyAlg)
	}
	if !bytes.Equal(sigAlg.Parameters, scheme.Parameters) {
		return fmt.Errorf("%w: unexpected parameters for %s", ErrMalformedAlgorithm, scheme.Name)
	}
	return scheme.Verify(key, message, signature)
}
