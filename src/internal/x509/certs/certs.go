// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"bytes"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/H0llyW00dzZ/x509-path-validator/src/internal/helper/gc"
	"github.com/cloudflare/cfssl/crypto/pkcs7"
	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

var (
	// ErrInvalidPEMBlock indicates that the provided data does not contain a valid PEM block.
	ErrInvalidPEMBlock = errors.New("x509certs: invalid PEM block")

	// ErrInvalidBlockType indicates that the PEM block type is not the expected certificate type.
	ErrInvalidBlockType = errors.New("x509certs: invalid block type")

	// ErrInvalidDER indicates data that is neither a certificate nor a PKCS7 container.
	ErrInvalidDER = errors.New("x509certs: invalid DER data")

	// ErrParsePKCS7 indicates a failure to parse PKCS7 formatted data.
	ErrParsePKCS7 = errors.New("x509certs: failed to parse PKCS7 data")

	// ErrNoCertificates indicates input that holds no certificate at all.
	ErrNoCertificates = errors.New("x509certs: no certificates found")

	// ErrMultipleCertificates indicates that a single certificate was expected.
	ErrMultipleCertificates = errors.New("x509certs: expected exactly one certificate")

	// ErrTrailingData indicates non-whitespace data after the last PEM block.
	ErrTrailingData = errors.New("x509certs: trailing data after PEM block")
)

// Codec splits certificate containers into DER certificates and encodes DER
// certificates back to PEM. Parsing of the certificates themselves is left to
// the caller.
type Codec struct {
	certBlockType string
}

// New creates a new Codec with default settings.
func New() *Codec {
	return &Codec{
		certBlockType: "CERTIFICATE",
	}
}

// IsPEM checks if the data is in PEM format.
func (c *Codec) IsPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

// DecodePEM returns the DER of the single CERTIFICATE block in data.
// Whitespace around the block is allowed; a second block or other trailing
// data is not.
func (c *Codec) DecodePEM(data []byte) ([]byte, error) {
	block, rest := pem.Decode(data)
	if block == nil {
		return nil, ErrInvalidPEMBlock
	}
	if block.Type != c.certBlockType {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBlockType, block.Type)
	}
	if next, _ := pem.Decode(rest); next != nil {
		return nil, ErrMultipleCertificates
	}
	if len(bytes.TrimSpace(rest)) > 0 {
		return nil, ErrTrailingData
	}
	return block.Bytes, nil
}

// Decode returns the DER of the single certificate held by data, which may be
// PEM, DER or a PKCS7 bundle.
func (c *Codec) Decode(data []byte) ([]byte, error) {
	certs, err := c.DecodeMultiple(data)
	if err != nil {
		return nil, err
	}
	if len(certs) != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrMultipleCertificates, len(certs))
	}
	return certs[0], nil
}

// DecodeMultiple returns the DER of every certificate in data, in order.
//
// Supported inputs are concatenated PEM CERTIFICATE blocks, concatenated DER
// certificates and a DER PKCS7 SignedData bundle. Only whitespace may follow
// the last PEM block.
func (c *Codec) DecodeMultiple(data []byte) ([][]byte, error) {
	if c.IsPEM(data) {
		return c.decodePEMBundle(data)
	}

	certs, ok := splitDER(data)
	if ok {
		return certs, nil
	}

	p, err := pkcs7.ParsePKCS7(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParsePKCS7, err)
	}
	if len(p.Content.SignedData.Certificates) == 0 {
		return nil, ErrNoCertificates
	}

	out := make([][]byte, 0, len(p.Content.SignedData.Certificates))
	for _, cert := range p.Content.SignedData.Certificates {
		out = append(out, bytes.Clone(cert.Raw))
	}
	return out, nil
}

func (c *Codec) decodePEMBundle(data []byte) ([][]byte, error) {
	var certs [][]byte
	for len(data) > 0 {
		block, rest := pem.Decode(data)
		if block == nil {
			break
		}
		if block.Type != c.certBlockType {
			return nil, fmt.Errorf("%w: %q", ErrInvalidBlockType, block.Type)
		}
		certs = append(certs, block.Bytes)
		data = rest
	}
	if len(certs) == 0 {
		return nil, ErrNoCertificates
	}
	if len(bytes.TrimSpace(data)) > 0 {
		return nil, ErrTrailingData
	}
	return certs, nil
}

// splitDER splits concatenated DER certificates. It reports false when data is
// not a sequence of certificate-shaped elements, which is the case for PKCS7.
func splitDER(data []byte) ([][]byte, bool) {
	input := cryptobyte.String(data)
	var certs [][]byte
	for !input.Empty() {
		var element cryptobyte.String
		if !input.ReadASN1Element(&element, cbasn1.SEQUENCE) || !certificateShaped(element) {
			return nil, false
		}
		certs = append(certs, bytes.Clone(element))
	}
	return certs, len(certs) > 0
}

// certificateShaped reports whether element looks like
// SEQUENCE { SEQUENCE tbs, SEQUENCE algorithm, BIT STRING signature }.
func certificateShaped(element cryptobyte.String) bool {
	var body, tbs, alg cryptobyte.String
	var sig cryptobyte.String
	return element.ReadASN1(&body, cbasn1.SEQUENCE) &&
		body.ReadASN1(&tbs, cbasn1.SEQUENCE) &&
		body.ReadASN1(&alg, cbasn1.SEQUENCE) &&
		body.ReadASN1(&sig, cbasn1.BIT_STRING) &&
		body.Empty()
}

// EncodePEM encodes a DER certificate to PEM with LF line endings.
func (c *Codec) EncodePEM(der []byte) []byte {
	return pem.EncodeToMemory(&pem.Block{
		Type:  c.certBlockType,
		Bytes: der,
	})
}

// EncodeMultiplePEM encodes DER certificates into one PEM bundle.
func (c *Codec) EncodeMultiplePEM(ders [][]byte) []byte {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	for _, der := range ders {
		// pem.Encode only fails on invalid headers, which are never set here.
		_ = pem.Encode(buf, &pem.Block{Type: c.certBlockType, Bytes: der})
	}

	return bytes.Clone(buf.Bytes())
}

// EncodeMultipleDER concatenates DER certificates.
func (c *Codec) EncodeMultipleDER(ders [][]byte) []byte {
	return bytes.Join(ders, nil)
}
