// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509cert

import (
	"bytes"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"math/big"
	"slices"
	"strings"
	"time"

	x509certs "github.com/H0llyW00dzZ/x509-path-validator/src/internal/x509/certs"
	x509names "github.com/H0llyW00dzZ/x509-path-validator/src/internal/x509/names"
	x509ext "github.com/H0llyW00dzZ/x509-path-validator/src/x509/extension"
	x509sig "github.com/H0llyW00dzZ/x509-path-validator/src/x509/signature"
)

var codec = x509certs.New()

// Validity is the period during which a certificate may be used.
// Both bounds are inclusive.
type Validity struct {
	NotBefore time.Time
	NotAfter  time.Time
}

// Contains reports whether t falls inside the period.
func (v Validity) Contains(t time.Time) bool {
	return !t.Before(v.NotBefore) && !t.After(v.NotAfter)
}

// Certificate is a decoded X.509 certificate.
//
// A Certificate never changes after construction and is safe for concurrent
// use. Accessors that return byte slices return copies.
type Certificate struct {
	fields     *fields
	publicKey  x509sig.PublicKeyInfo
	extensions x509ext.Extensions
}

// ParseDER decodes a single DER certificate.
//
// The certificate structure is read directly; extension judgement belongs to
// the x509ext package alone. Recognized extensions that fail to decode are
// fatal, unrecognized critical extensions are fatal, other unrecognized
// extensions are dropped whatever their content, and duplicates are kept.
//
// Parameters:
//   - der: The DER encoding of one certificate, with no trailing data
//
// Returns:
//   - *Certificate: The decoded certificate
//   - error: [ErrMalformedCertificate] for invalid structure, or an x509ext
//     error for an unsupported critical or malformed extension
func ParseDER(der []byte) (*Certificate, error) {
	f, err := decode(der)
	if err != nil {
		return nil, err
	}

	publicKey, err := x509sig.ParsePublicKeyInfo(f.rawSPKI)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCertificate, err)
	}

	extensions, err := x509ext.Parse(f.extensions)
	if err != nil {
		return nil, err
	}

	return &Certificate{fields: f, publicKey: publicKey, extensions: extensions}, nil
}

// ParsePEM decodes data holding exactly one PEM CERTIFICATE block.
func ParsePEM(data []byte) (*Certificate, error) {
	der, err := codec.DecodePEM(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCertificate, err)
	}
	return ParseDER(der)
}

// Parse decodes a single certificate from PEM, DER or a PKCS7 bundle holding
// one certificate.
func Parse(data []byte) (*Certificate, error) {
	der, err := codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCertificate, err)
	}
	return ParseDER(der)
}

// ParseAll decodes every certificate in a bundle of PEM blocks, concatenated
// DER or PKCS7, preserving order.
func ParseAll(data []byte) ([]*Certificate, error) {
	ders, err := codec.DecodeMultiple(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCertificate, err)
	}

	certs := make([]*Certificate, 0, len(ders))
	for i, der := range ders {
		cert, err := ParseDER(der)
		if err != nil {
			return nil, fmt.Errorf("certificate %d: %w", i, err)
		}
		certs = append(certs, cert)
	}
	return certs, nil
}

// FromX509 builds a Certificate from a certificate parsed by crypto/x509.
// Only cert.Raw is used, so later changes to cert do not affect the result.
func FromX509(cert *x509.Certificate) (*Certificate, error) {
	if cert == nil {
		return nil, ErrNilCertificate
	}
	return ParseDER(cert.Raw)
}

// DER returns the DER encoding the certificate was decoded from.
func (c *Certificate) DER() []byte { return bytes.Clone(c.fields.raw) }

// PEM returns the certificate as a PEM CERTIFICATE block with LF line endings.
func (c *Certificate) PEM() []byte { return codec.EncodePEM(c.fields.raw) }

// Subject returns the subject name in RFC 2253 form.
func (c *Certificate) Subject() string { return c.fields.subject }

// Issuer returns the issuer name in RFC 2253 form.
func (c *Certificate) Issuer() string { return c.fields.issuer }

// RawSubject returns the DER encoding of the subject name.
func (c *Certificate) RawSubject() []byte { return bytes.Clone(c.fields.rawSubject) }

// RawIssuer returns the DER encoding of the issuer name.
func (c *Certificate) RawIssuer() []byte { return bytes.Clone(c.fields.rawIssuer) }

// Validity returns the validity period.
func (c *Certificate) Validity() Validity {
	return c.fields.validity
}

// SerialBytes returns the content bytes of the serial number INTEGER.
func (c *Certificate) SerialBytes() []byte { return bytes.Clone(c.fields.serial) }

// SerialNumber returns the serial number as an integer.
func (c *Certificate) SerialNumber() *big.Int { return new(big.Int).Set(c.fields.serialNumber) }

// SerialString returns the serial number as colon separated upper case hex,
// e.g. "00:8B:27:0E".
func (c *Certificate) SerialString() string {
	parts := make([]string, len(c.fields.serial))
	for i, b := range c.fields.serial {
		parts[i] = strings.ToUpper(hex.EncodeToString([]byte{b}))
	}
	return strings.Join(parts, ":")
}

// PublicKeyAlgorithm returns the SubjectPublicKeyInfo algorithm.
func (c *Certificate) PublicKeyAlgorithm() x509sig.AlgorithmIdentifier {
	return cloneAlgorithm(c.publicKey.Algorithm)
}

// PublicKeyBytes returns the raw subjectPublicKey bytes.
func (c *Certificate) PublicKeyBytes() []byte { return bytes.Clone(c.publicKey.PublicKey) }

// SignatureAlgorithm returns the signature algorithm of the outer certificate.
func (c *Certificate) SignatureAlgorithm() x509sig.AlgorithmIdentifier {
	return cloneAlgorithm(c.fields.sigAlg)
}

// Signature returns the signature bytes.
func (c *Certificate) Signature() []byte { return bytes.Clone(c.fields.signature) }

// TBS returns the DER encoding of the TBSCertificate, the bytes covered by the signature.
func (c *Certificate) TBS() []byte { return bytes.Clone(c.fields.tbs) }

// Fingerprint returns the SHA-256 digest of the DER SubjectPublicKeyInfo.
func (c *Certificate) Fingerprint() [sha256.Size]byte {
	return sha256.Sum256(c.fields.rawSPKI)
}

// FingerprintBase64 returns [Certificate.Fingerprint] in standard Base64.
func (c *Certificate) FingerprintBase64() string {
	sum := c.Fingerprint()
	return base64.StdEncoding.EncodeToString(sum[:])
}

// Extensions returns the decoded extensions in certificate order.
// The returned values must not be modified.
func (c *Certificate) Extensions() x509ext.Extensions {
	return append(x509ext.Extensions(nil), c.extensions...)
}

// BasicConstraints returns the first Basic Constraints extension.
func (c *Certificate) BasicConstraints() (*x509ext.BasicConstraints, bool) {
	return c.extensions.BasicConstraints()
}

// KeyUsage returns the first Key Usage extension.
func (c *Certificate) KeyUsage() (*x509ext.KeyUsage, bool) { return c.extensions.KeyUsage() }

// ExtendedKeyUsage returns the first Extended Key Usage extension.
func (c *Certificate) ExtendedKeyUsage() (*x509ext.ExtendedKeyUsage, bool) {
	return c.extensions.ExtendedKeyUsage()
}

// SubjectAlternativeName returns the first Subject Alternative Name extension.
func (c *Certificate) SubjectAlternativeName() (*x509ext.SubjectAlternativeName, bool) {
	return c.extensions.SubjectAlternativeName()
}

// AuthorityKeyIdentifier returns the first Authority Key Identifier extension.
func (c *Certificate) AuthorityKeyIdentifier() (*x509ext.AuthorityKeyIdentifier, bool) {
	return c.extensions.AuthorityKeyIdentifier()
}

// SubjectKeyIdentifier returns the first Subject Key Identifier extension.
func (c *Certificate) SubjectKeyIdentifier() (*x509ext.SubjectKeyIdentifier, bool) {
	return c.extensions.SubjectKeyIdentifier()
}

// CertificatePolicies returns the first Certificate Policies extension.
func (c *Certificate) CertificatePolicies() (*x509ext.CertificatePolicies, bool) {
	return c.extensions.CertificatePolicies()
}

// IsSelfIssued reports whether the subject and issuer names match.
func (c *Certificate) IsSelfIssued() bool {
	return x509names.Equal(c.fields.rawSubject, c.fields.rawIssuer)
}

// IsCA reports whether Basic Constraints is present with the cA flag set.
func (c *Certificate) IsCA() bool {
	bc, ok := c.BasicConstraints()
	return ok && bc.CA
}

// X509 returns a fresh crypto/x509 view of the certificate, or nil when
// crypto/x509 rejects it. That happens for certificates this package accepts
// but crypto/x509 does not, such as ones carrying duplicate extensions or an
// unparseable extension outside the recognized set.
func (c *Certificate) X509() *x509.Certificate {
	cert, err := x509.ParseCertificate(c.DER())
	if err != nil {
		return nil
	}
	return cert
}

// Equal reports whether both certificates have the same DER encoding.
func (c *Certificate) Equal(other *Certificate) bool {
	if c == nil || other == nil {
		return c == other
	}
	return bytes.Equal(c.fields.raw, other.fields.raw)
}

func cloneAlgorithm(a x509sig.AlgorithmIdentifier) x509sig.AlgorithmIdentifier {
	return x509sig.AlgorithmIdentifier{
		Algorithm:  slices.Clone(a.Algorithm),
		Parameters: bytes.Clone(a.Parameters),
	}
}
