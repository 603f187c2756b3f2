// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build !x509sig_no_ed25519

package x509sig

import (
	"crypto/ed25519"
	"fmt"
	"slices"
)

func init() {
	register(Ed25519())
}

// Ed25519 returns the Ed25519 scheme (RFC 8410). The key algorithm is the
// signature algorithm itself, with absent parameters.
func Ed25519() Scheme {
	return NewScheme(
		"Ed25519",
		OIDSignatureEd25519,
		KeyBinding{Algorithm: OIDPublicKeyEd25519},
		parseEd25519Key,
		parseEd25519Signature,
		ed25519.Verify,
	)
}

func parseEd25519Key(raw []byte) (ed25519.PublicKey, error) {
	if len(raw) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("ed25519 public key must be %d bytes, got %d", ed25519.PublicKeySize, len(raw))
	}
	return ed25519.PublicKey(slices.Clone(raw)), nil
}

func parseEd25519Signature(raw []byte) ([]byte, error) {
	if len(raw) != ed25519.SignatureSize {
		return nil, fmt.Errorf("ed25519 signature must be %d bytes, got %d", ed25519.SignatureSize, len(raw))
	}
	return slices.Clone(raw), nil
}
