// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509sig

import "encoding/asn1"

// Signature algorithm identifiers handled by the built-in schemes.
var (
	OIDSignatureEd25519         = asn1.ObjectIdentifier{1, 3, 101, 112}
	OIDSignatureECDSAWithSHA256 = asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 3, 2}
	OIDSignatureECDSAWithSHA384 = asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 3, 3}
	OIDSignatureECDSAWithSHA512 = asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 3, 4}
)

// Public key algorithm identifiers and named curves (RFC 5480, RFC 8410).
var (
	OIDPublicKeyEd25519 = asn1.ObjectIdentifier{1, 3, 101, 112}
	OIDPublicKeyECDSA   = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}

	OIDNamedCurveP256 = asn1.ObjectIdentifier{1, 2, 840, 10045, 3, 1, 7}
	OIDNamedCurveP384 = asn1.ObjectIdentifier{1, 3, 132, 0, 34}
	OIDNamedCurveP521 = asn1.ObjectIdentifier{1, 3, 132, 0, 35}
)

// algorithmNames covers identifiers commonly seen in certificates, including
// ones no built-in scheme verifies, so reports can print something readable.
var algorithmNames = map[string]string{
	"1.3.101.112":           "Ed25519",
	"1.3.101.113":           "Ed448",
	"1.2.840.10045.4.3.2":   "ECDSA-SHA256",
	"1.2.840.10045.4.3.3":   "ECDSA-SHA384",
	"1.2.840.10045.4.3.4":   "ECDSA-SHA512",
	"1.2.840.10045.2.1":     "ECDSA",
	"1.2.840.113549.1.1.1":  "RSA",
	"1.2.840.113549.1.1.5":  "SHA1-RSA",
	"1.2.840.113549.1.1.10": "RSA-PSS",
	"1.2.840.113549.1.1.11": "SHA256-RSA",
	"1.2.840.113549.1.1.12": "SHA384-RSA",
	"1.2.840.113549.1.1.13": "SHA512-RSA",
}

// AlgorithmName returns a readable name for a signature or public key algorithm,
// falling back to the dotted object identifier.
func AlgorithmName(oid asn1.ObjectIdentifier) string {
	if name, ok := algorithmNames[oid.String()]; ok {
		return name
	}
	return oid.String()
}

// curveName returns the readable name of a named curve.
func curveName(oid asn1.ObjectIdentifier) string {
	switch {
	case oid.Equal(OIDNamedCurveP256):
		return "P-256"
	case oid.Equal(OIDNamedCurveP384):
		return "P-384"
	case oid.Equal(OIDNamedCurveP521):
		return "P-521"
	}
	return oid.String()
}
