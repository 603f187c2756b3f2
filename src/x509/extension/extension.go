// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509ext

import (
	"crypto/x509/pkix"
	"encoding/asn1"
	"errors"

	"golang.org/x/crypto/cryptobyte"
)

// Extension is a decoded certificate extension. The set of implementations is
// closed to the variants declared in this package.
type Extension interface {
	// OID returns the extension's object identifier.
	OID() asn1.ObjectIdentifier
	// Kind returns the extension variant.
	Kind() Kind

	sealed()
}

// decoder turns the extnValue OCTET STRING content into a typed extension.
// It must consume the entire input.
type decoder struct {
	kind   Kind
	decode func(cryptobyte.String) (Extension, error)
}

// decoders is the static dispatch table. Adding a kind only touches this map.
var decoders = map[string]decoder{
	OIDBasicConstraints.String():       {KindBasicConstraints, decodeBasicConstraints},
	OIDKeyUsage.String():               {KindKeyUsage, decodeKeyUsage},
	OIDExtendedKeyUsage.String():       {KindExtendedKeyUsage, decodeExtendedKeyUsage},
	OIDSubjectAltName.String():         {KindSubjectAlternativeName, decodeSubjectAlternativeName},
	OIDAuthorityKeyIdentifier.String(): {KindAuthorityKeyIdentifier, decodeAuthorityKeyIdentifier},
	OIDSubjectKeyIdentifier.String():   {KindSubjectKeyIdentifier, decodeSubjectKeyIdentifier},
	OIDCertificatePolicies.String():    {KindCertificatePolicies, decodeCertificatePolicies},
}

// errTrailingData is returned by decoders that find bytes after the payload.
var errTrailingData = errors.New("trailing data")

// Parse decodes the raw extensions of a certificate.
//
// Entries are processed in order and the result preserves that order; repeated
// extensions are kept as they appear.
//
// Parameters:
//   - raw: Extensions as exposed by the DER codec
//
// Returns:
//   - Extensions: One typed value per recognized extension
//   - error: [*UnsupportedExtensionError] or [*DecodeError] on the first failure
func Parse(raw []pkix.Extension) (Extensions, error) {
	out := make(Extensions, 0, len(raw))
	for _, ext := range raw {
		d, ok := decoders[ext.Id.String()]
		if !ok {
			if ext.Critical {
				return nil, &UnsupportedExtensionError{OID: ext.Id}
			}
			continue
		}
		value, err := d.decode(cryptobyte.String(ext.Value))
		if err != nil {
			return nil, &DecodeError{OID: ext.Id, Kind: d.kind, Err: err}
		}
		out = append(out, value)
	}
	return out, nil
}

// Extensions is an ordered list of decoded extensions.
type Extensions []Extension

// Get returns the first extension of the given kind.
func (e Extensions) Get(kind Kind) (Extension, bool) {
	for _, ext := range e {
		if ext.Kind() == kind {
			return ext, true
		}
	}
	return nil, false
}

func first[T Extension](e Extensions) (T, bool) {
	for _, ext := range e {
		if v, ok := ext.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// BasicConstraints returns the first Basic Constraints extension.
func (e Extensions) BasicConstraints() (*BasicConstraints, bool) {
	return first[*BasicConstraints](e)
}

// KeyUsage returns the first Key Usage extension.
func (e Extensions) KeyUsage() (*KeyUsage, bool) { return first[*KeyUsage](e) }

// ExtendedKeyUsage returns the first Extended Key Usage extension.
func (e Extensions) ExtendedKeyUsage() (*ExtendedKeyUsage, bool) {
	return first[*ExtendedKeyUsage](e)
}

// SubjectAlternativeName returns the first Subject Alternative Name extension.
func (e Extensions) SubjectAlternativeName() (*SubjectAlternativeName, bool) {
	return first[*SubjectAlternativeName](e)
}

// AuthorityKeyIdentifier returns the first Authority Key Identifier extension.
func (e Extensions) AuthorityKeyIdentifier() (*AuthorityKeyIdentifier, bool) {
	return first[*AuthorityKeyIdentifier](e)
}

// SubjectKeyIdentifier returns the first Subject Key Identifier extension.
func (e Extensions) SubjectKeyIdentifier() (*SubjectKeyIdentifier, bool) {
	return first[*SubjectKeyIdentifier](e)
}

// CertificatePolicies returns the first Certificate Policies extension.
func (e Extensions) CertificatePolicies() (*CertificatePolicies, bool) {
	return first[*CertificatePolicies](e)
}
