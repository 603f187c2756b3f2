// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509cert

import (
	"bytes"
	"crypto/x509/pkix"
	"encoding/asn1"
	"errors"
	"fmt"
	"math/big"
	"time"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"

	x509names "github.com/H0llyW00dzZ/x509-path-validator/src/internal/x509/names"
	x509sig "github.com/H0llyW00dzZ/x509-path-validator/src/x509/signature"
)

var (
	tagVersion         = cbasn1.Tag(0).Constructed().ContextSpecific()
	tagIssuerUniqueID  = cbasn1.Tag(1).ContextSpecific()
	tagSubjectUniqueID = cbasn1.Tag(2).ContextSpecific()
	tagExtensions      = cbasn1.Tag(3).Constructed().ContextSpecific()
)

// fields is the decoded content of a Certificate, read straight from the DER.
type fields struct {
	raw          []byte
	tbs          []byte
	signature    []byte
	serial       []byte
	serialNumber *big.Int
	rawIssuer    []byte
	rawSubject   []byte
	issuer       string
	subject      string
	validity     Validity
	rawSPKI      []byte
	sigAlg       x509sig.AlgorithmIdentifier
	extensions   []pkix.Extension
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedCertificate, fmt.Sprintf(format, args...))
}

// decode reads the Certificate and TBSCertificate structures of RFC 5280
// section 4.1. Extension values are returned undecoded and in order,
// duplicates included.
func decode(der []byte) (*fields, error) {
	f := &fields{raw: bytes.Clone(der)}

	var cert, tbsElement, outerAlg cryptobyte.String
	input := cryptobyte.String(f.raw)
	if !input.ReadASN1(&cert, cbasn1.SEQUENCE) || !input.Empty() {
		return nil, malformed("invalid certificate structure")
	}
	if !cert.ReadASN1Element(&tbsElement, cbasn1.SEQUENCE) ||
		!cert.ReadASN1Element(&outerAlg, cbasn1.SEQUENCE) {
		return nil, malformed("invalid certificate structure")
	}
	f.tbs = tbsElement

	var tbs cryptobyte.String
	tbsOuter := tbsElement
	tbsOuter.ReadASN1(&tbs, cbasn1.SEQUENCE)

	var sig asn1.BitString
	if !cert.ReadASN1BitString(&sig) || !cert.Empty() {
		return nil, malformed("invalid signature value")
	}
	f.signature = sig.RightAlign()

	sigAlg, err := x509sig.ParseAlgorithmIdentifier(outerAlg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCertificate, err)
	}
	f.sigAlg = sigAlg

	var version int
	if !tbs.ReadOptionalASN1Integer(&version, tagVersion, 0) {
		return nil, malformed("invalid version")
	}
	if version < 0 || version > 2 {
		return nil, malformed("unsupported version %d", version+1)
	}

	var serialElement cryptobyte.String
	if !tbs.ReadASN1Element(&serialElement, cbasn1.INTEGER) {
		return nil, malformed("invalid serial number")
	}
	f.serialNumber = new(big.Int)
	integer := serialElement
	if !integer.ReadASN1Integer(f.serialNumber) {
		return nil, malformed("invalid serial number")
	}
	var serial cryptobyte.String
	serialElement.ReadASN1(&serial, cbasn1.INTEGER)
	f.serial = serial

	var innerAlg cryptobyte.String
	if !tbs.ReadASN1Element(&innerAlg, cbasn1.SEQUENCE) {
		return nil, malformed("invalid signature algorithm")
	}
	if !bytes.Equal(innerAlg, outerAlg) {
		return nil, malformed("inner and outer signature algorithms differ")
	}

	var issuer, validity, subject, spki cryptobyte.String
	if !tbs.ReadASN1Element(&issuer, cbasn1.SEQUENCE) {
		return nil, malformed("invalid issuer")
	}
	if !tbs.ReadASN1(&validity, cbasn1.SEQUENCE) {
		return nil, malformed("invalid validity")
	}
	if f.validity.NotBefore, err = readTime(&validity); err != nil {
		return nil, malformed("invalid notBefore: %v", err)
	}
	if f.validity.NotAfter, err = readTime(&validity); err != nil {
		return nil, malformed("invalid notAfter: %v", err)
	}
	if !validity.Empty() {
		return nil, malformed("trailing data in validity")
	}
	if !tbs.ReadASN1Element(&subject, cbasn1.SEQUENCE) {
		return nil, malformed("invalid subject")
	}
	if !tbs.ReadASN1Element(&spki, cbasn1.SEQUENCE) {
		return nil, malformed("invalid subject public key info")
	}
	f.rawIssuer, f.rawSubject, f.rawSPKI = issuer, subject, spki

	if f.issuer, err = displayName(issuer); err != nil {
		return nil, fmt.Errorf("%w: issuer: %w", ErrMalformedCertificate, err)
	}
	if f.subject, err = displayName(subject); err != nil {
		return nil, fmt.Errorf("%w: subject: %w", ErrMalformedCertificate, err)
	}

	if !tbs.SkipOptionalASN1(tagIssuerUniqueID) || !tbs.SkipOptionalASN1(tagSubjectUniqueID) {
		return nil, malformed("invalid unique identifier")
	}

	var (
		extensions cryptobyte.String
		present    bool
	)
	if !tbs.ReadOptionalASN1(&extensions, &present, tagExtensions) {
		return nil, malformed("invalid extensions")
	}
	if present {
		if version != 2 {
			return nil, malformed("extensions in a version %d certificate", version+1)
		}
		if f.extensions, err = readExtensions(extensions); err != nil {
			return nil, err
		}
	}
	if !tbs.Empty() {
		return nil, malformed("trailing data in TBSCertificate")
	}
	return f, nil
}

func readTime(s *cryptobyte.String) (time.Time, error) {
	var t time.Time
	switch {
	case s.PeekASN1Tag(cbasn1.UTCTime):
		if !s.ReadASN1UTCTime(&t) {
			return t, errors.New("malformed UTCTime")
		}
	case s.PeekASN1Tag(cbasn1.GeneralizedTime):
		if !s.ReadASN1GeneralizedTime(&t) {
			return t, errors.New("malformed GeneralizedTime")
		}
	default:
		return t, errors.New("unexpected tag")
	}
	return t, nil
}

func readExtensions(explicit cryptobyte.String) ([]pkix.Extension, error) {
	var list cryptobyte.String
	if !explicit.ReadASN1(&list, cbasn1.SEQUENCE) || !explicit.Empty() {
		return nil, malformed("invalid extensions")
	}

	var out []pkix.Extension
	for !list.Empty() {
		var (
			entry, value cryptobyte.String
			ext          pkix.Extension
		)
		if !list.ReadASN1(&entry, cbasn1.SEQUENCE) ||
			!entry.ReadASN1ObjectIdentifier(&ext.Id) ||
			!entry.ReadOptionalASN1Boolean(&ext.Critical, cbasn1.BOOLEAN, false) ||
			!entry.ReadASN1(&value, cbasn1.OCTET_STRING) ||
			!entry.Empty() {
			return nil, malformed("invalid extension %d", len(out))
		}
		ext.Value = bytes.Clone(value)
		out = append(out, ext)
	}
	return out, nil
}

// displayName renders a DER Name in the RFC 2253 form of [pkix.Name.String].
// Names holding string types encoding/asn1 cannot read, such as
// UniversalString, fall back to the prepared form of the names package.
func displayName(der []byte) (string, error) {
	parsed, err := x509names.Parse(der)
	if err != nil {
		return "", err
	}

	var seq pkix.RDNSequence
	if rest, err := asn1.Unmarshal(der, &seq); err == nil && len(rest) == 0 {
		var name pkix.Name
		name.FillFromRDNSequence(&seq)
		return name.String(), nil
	}
	return parsed.String(), nil
}
