// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509ext

import (
	"bytes"
	"encoding/asn1"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// AuthorityKeyIdentifier identifies the key that signed the certificate.
// Every field is optional.
type AuthorityKeyIdentifier struct {
	// KeyIdentifier is nil when absent.
	KeyIdentifier []byte
	// AuthorityCertIssuer is nil when absent.
	AuthorityCertIssuer *GeneralNames
	// AuthorityCertSerialNumber is nil when absent.
	AuthorityCertSerialNumber *big.Int
}

func (*AuthorityKeyIdentifier) OID() asn1.ObjectIdentifier { return OIDAuthorityKeyIdentifier }
func (*AuthorityKeyIdentifier) Kind() Kind                 { return KindAuthorityKeyIdentifier }
func (*AuthorityKeyIdentifier) sealed()                    {}

func decodeAuthorityKeyIdentifier(der cryptobyte.String) (Extension, error) {
	var (
		seq, keyID, issuer, serial     cryptobyte.String
		hasKeyID, hasIssuer, hasSerial bool
	)
	if !der.ReadASN1(&seq, cbasn1.SEQUENCE) {
		return nil, errors.New("expected SEQUENCE")
	}
	if !der.Empty() {
		return nil, errTrailingData
	}
	if !seq.ReadOptionalASN1(&keyID, &hasKeyID, cbasn1.Tag(0).ContextSpecific()) ||
		!seq.ReadOptionalASN1(&issuer, &hasIssuer, cbasn1.Tag(1).Constructed().ContextSpecific()) ||
		!seq.ReadOptionalASN1(&serial, &hasSerial, cbasn1.Tag(2).ContextSpecific()) {
		return nil, errors.New("invalid AuthorityKeyIdentifier field")
	}
	if !seq.Empty() {
		return nil, errTrailingData
	}

	aki := &AuthorityKeyIdentifier{}
	if hasKeyID {
		aki.KeyIdentifier = append([]byte{}, keyID...)
	}
	if hasIssuer {
		names, err := readGeneralNames(issuer)
		if err != nil {
			return nil, fmt.Errorf("authorityCertIssuer: %w", err)
		}
		aki.AuthorityCertIssuer = names
	}
	if hasSerial {
		n, err := readImplicitInteger(serial)
		if err != nil {
			return nil, fmt.Errorf("authorityCertSerialNumber: %w", err)
		}
		aki.AuthorityCertSerialNumber = n
	}
	return aki, nil
}

// SubjectKeyIdentifier identifies the certified public key.
type SubjectKeyIdentifier struct {
	KeyIdentifier []byte
}

func (*SubjectKeyIdentifier) OID() asn1.ObjectIdentifier { return OIDSubjectKeyIdentifier }
func (*SubjectKeyIdentifier) Kind() Kind                 { return KindSubjectKeyIdentifier }
func (*SubjectKeyIdentifier) sealed()                    {}

func decodeSubjectKeyIdentifier(der cryptobyte.String) (Extension, error) {
	var keyID cryptobyte.String
	if !der.ReadASN1(&keyID, cbasn1.OCTET_STRING) {
		return nil, errors.New("expected OCTET STRING")
	}
	if !der.Empty() {
		return nil, errTrailingData
	}
	return &SubjectKeyIdentifier{KeyIdentifier: bytes.Clone(keyID)}, nil
}
