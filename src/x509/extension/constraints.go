// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509ext

import (
	"encoding/asn1"
	"errors"
	"strings"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// BasicConstraints reports whether the subject is a CA and how many
// non-self-issued intermediates may follow it.
type BasicConstraints struct {
	CA bool
	// PathLenConstraint is nil when the field is absent.
	PathLenConstraint *int
}

func (*BasicConstraints) OID() asn1.ObjectIdentifier { return OIDBasicConstraints }
func (*BasicConstraints) Kind() Kind                 { return KindBasicConstraints }
func (*BasicConstraints) sealed()                    {}

func decodeBasicConstraints(der cryptobyte.String) (Extension, error) {
	var seq cryptobyte.String
	if !der.ReadASN1(&seq, cbasn1.SEQUENCE) {
		return nil, errors.New("expected SEQUENCE")
	}
	if !der.Empty() {
		return nil, errTrailingData
	}
	bc := &BasicConstraints{}
	if seq.PeekASN1Tag(cbasn1.BOOLEAN) && !seq.ReadASN1Boolean(&bc.CA) {
		return nil, errors.New("invalid cA flag")
	}
	if seq.PeekASN1Tag(cbasn1.INTEGER) {
		var n int
		if !seq.ReadASN1Integer(&n) || n < 0 {
			return nil, errors.New("invalid pathLenConstraint")
		}
		bc.PathLenConstraint = &n
	}
	if !seq.Empty() {
		return nil, errTrailingData
	}
	return bc, nil
}

// KeyUsageFlags is the Key Usage bit set. Bit 0 of the encoded BIT STRING is
// the lowest flag.
type KeyUsageFlags uint16

const (
	KeyUsageDigitalSignature KeyUsageFlags = 1 << iota
	KeyUsageContentCommitment
	KeyUsageKeyEncipherment
	KeyUsageDataEncipherment
	KeyUsageKeyAgreement
	KeyUsageKeyCertSign
	KeyUsageCRLSign
	KeyUsageEncipherOnly
	KeyUsageDecipherOnly
)

var keyUsageNames = []string{
	"Digital Signature",
	"Content Commitment",
	"Key Encipherment",
	"Data Encipherment",
	"Key Agreement",
	"Certificate Sign",
	"CRL Sign",
	"Encipher Only",
	"Decipher Only",
}

// Contains reports whether every flag in want is set.
func (f KeyUsageFlags) Contains(want KeyUsageFlags) bool { return f&want == want }

func (f KeyUsageFlags) String() string {
	var names []string
	for i, name := range keyUsageNames {
		if f&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, ", ")
}

// KeyUsage restricts the purposes of the certified key.
type KeyUsage struct {
	Usage KeyUsageFlags
}

func (*KeyUsage) OID() asn1.ObjectIdentifier { return OIDKeyUsage }
func (*KeyUsage) Kind() Kind                 { return KindKeyUsage }
func (*KeyUsage) sealed()                    {}

func decodeKeyUsage(der cryptobyte.String) (Extension, error) {
	var bits asn1.BitString
	if !der.ReadASN1BitString(&bits) {
		return nil, errors.New("expected BIT STRING")
	}
	if !der.Empty() {
		return nil, errTrailingData
	}
	ku := &KeyUsage{}
	for i := range len(keyUsageNames) {
		if bits.At(i) != 0 {
			ku.Usage |= 1 << i
		}
	}
	return ku, nil
}

// ExtendedKeyUsage lists the purposes the certified key may be used for.
type ExtendedKeyUsage struct {
	Usages []asn1.ObjectIdentifier
}

func (*ExtendedKeyUsage) OID() asn1.ObjectIdentifier { return OIDExtendedKeyUsage }
func (*ExtendedKeyUsage) Kind() Kind                 { return KindExtendedKeyUsage }
func (*ExtendedKeyUsage) sealed()                    {}

// Has reports whether the purpose is listed.
func (e *ExtendedKeyUsage) Has(purpose asn1.ObjectIdentifier) bool {
	for _, u := range e.Usages {
		if u.Equal(purpose) {
			return true
		}
	}
	return false
}

func decodeExtendedKeyUsage(der cryptobyte.String) (Extension, error) {
	var seq cryptobyte.String
	if !der.ReadASN1(&seq, cbasn1.SEQUENCE) {
		return nil, errors.New("expected SEQUENCE")
	}
	if !der.Empty() {
		return nil, errTrailingData
	}
	eku := &ExtendedKeyUsage{}
	for !seq.Empty() {
		var oid asn1.ObjectIdentifier
		if !seq.ReadASN1ObjectIdentifier(&oid) {
			return nil, errors.New("invalid KeyPurposeId")
		}
		eku.Usages = append(eku.Usages, oid)
	}
	return eku, nil
}
