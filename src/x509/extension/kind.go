// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509ext

import "encoding/asn1"

// Object identifiers of the recognized extensions (RFC 5280 section 4.2).
var (
	OIDBasicConstraints       = asn1.ObjectIdentifier{2, 5, 29, 19}
	OIDKeyUsage               = asn1.ObjectIdentifier{2, 5, 29, 15}
	OIDExtendedKeyUsage       = asn1.ObjectIdentifier{2, 5, 29, 37}
	OIDSubjectAltName         = asn1.ObjectIdentifier{2, 5, 29, 17}
	OIDAuthorityKeyIdentifier = asn1.ObjectIdentifier{2, 5, 29, 35}
	OIDSubjectKeyIdentifier   = asn1.ObjectIdentifier{2, 5, 29, 14}
	OIDCertificatePolicies    = asn1.ObjectIdentifier{2, 5, 29, 32}
)

// Kind identifies an extension variant.
type Kind int

const (
	KindUnknown Kind = iota
	KindBasicConstraints
	KindKeyUsage
	KindExtendedKeyUsage
	KindSubjectAlternativeName
	KindAuthorityKeyIdentifier
	KindSubjectKeyIdentifier
	KindCertificatePolicies
)

var kindNames = [...]string{
	KindUnknown:                "Unknown",
	KindBasicConstraints:       "Basic Constraints",
	KindKeyUsage:               "Key Usage",
	KindExtendedKeyUsage:       "Extended Key Usage",
	KindSubjectAlternativeName: "Subject Alternative Name",
	KindAuthorityKeyIdentifier: "Authority Key Identifier",
	KindSubjectKeyIdentifier:   "Subject Key Identifier",
	KindCertificatePolicies:    "Certificate Policies",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}

// KindOf returns the kind recognized for an object identifier, or KindUnknown.
func KindOf(oid asn1.ObjectIdentifier) Kind {
	if d, ok := decoders[oid.String()]; ok {
		return d.kind
	}
	return KindUnknown
}
