// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build !x509sig_no_ecdsa

package x509sig

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/asn1"
	"errors"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

func init() {
	register(ECDSAP256SHA256(), ECDSAP384SHA384(), ECDSAP521SHA512())
}

// ecdsaSignature is a decoded Ecdsa-Sig-Value.
type ecdsaSignature struct {
	r, s *big.Int
}

// ECDSAP256SHA256 returns the ecdsa-with-SHA256 scheme bound to P-256 keys.
func ECDSAP256SHA256() Scheme {
	return newECDSAScheme("ECDSA-P256-SHA256", OIDSignatureECDSAWithSHA256, OIDNamedCurveP256, elliptic.P256(),
		func(m []byte) []byte { d := sha256.Sum256(m); return d[:] })
}

// ECDSAP384SHA384 returns the ecdsa-with-SHA384 scheme bound to P-384 keys.
func ECDSAP384SHA384() Scheme {
	return newECDSAScheme("ECDSA-P384-SHA384", OIDSignatureECDSAWithSHA384, OIDNamedCurveP384, elliptic.P384(),
		func(m []byte) []byte { d := sha512.Sum384(m); return d[:] })
}

// ECDSAP521SHA512 returns the ecdsa-with-SHA512 scheme bound to P-521 keys.
func ECDSAP521SHA512() Scheme {
	return newECDSAScheme("ECDSA-P521-SHA512", OIDSignatureECDSAWithSHA512, OIDNamedCurveP521, elliptic.P521(),
		func(m []byte) []byte { d := sha512.Sum512(m); return d[:] })
}

func newECDSAScheme(name string, signature, curveOID asn1.ObjectIdentifier, curve elliptic.Curve, digest func([]byte) []byte) Scheme {
	return NewScheme(
		name,
		signature,
		KeyBinding{Algorithm: OIDPublicKeyECDSA, NamedCurve: curveOID},
		func(raw []byte) (*ecdsa.PublicKey, error) {
			return ecdsa.ParseUncompressedPublicKey(curve, raw)
		},
		parseECDSASignature,
		func(key *ecdsa.PublicKey, message []byte, sig ecdsaSignature) bool {
			return ecdsa.Verify(key, digest(message), sig.r, sig.s)
		},
	)
}

func parseECDSASignature(der []byte) (ecdsaSignature, error) {
	var (
		inner cryptobyte.String
		sig   = ecdsaSignature{r: new(big.Int), s: new(big.Int)}
	)
	input := cryptobyte.String(der)
	if !input.ReadASN1(&inner, cbasn1.SEQUENCE) || !input.Empty() ||
		!inner.ReadASN1Integer(sig.r) || !inner.ReadASN1Integer(sig.s) || !inner.Empty() {
		return ecdsaSignature{}, errors.New("invalid ECDSA signature encoding")
	}
	if sig.r.Sign() <= 0 || sig.s.Sign() <= 0 {
		return ecdsaSignature{}, errors.New("ECDSA signature values must be positive")
	}
	return sig, nil
}
