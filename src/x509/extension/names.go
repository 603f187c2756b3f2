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
	"net"
	"unicode/utf8"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// GeneralName choice tags (RFC 5280 section 4.2.1.6).
const (
	tagOtherName     = 0
	tagRFC822Name    = 1
	tagDNSName       = 2
	tagX400Address   = 3
	tagDirectoryName = 4
	tagEDIPartyName  = 5
	tagURI           = 6
	tagIPAddress     = 7
	tagRegisteredID  = 8
)

// OtherName keeps a GeneralName alternative that has no typed field.
type OtherName struct {
	// Tag is the context-specific choice number.
	Tag int
	// Raw is the content of the tagged element.
	Raw []byte
}

// GeneralNames is the decoded form of a GeneralNames sequence.
type GeneralNames struct {
	DNSNames       []string
	EmailAddresses []string
	URIs           []string
	IPAddresses    []net.IP
	// DirectoryNames holds each directoryName as a DER Name.
	DirectoryNames [][]byte
	RegisteredIDs  []asn1.ObjectIdentifier
	Other          []OtherName
}

// Len returns the number of names of any type.
func (g *GeneralNames) Len() int {
	return len(g.DNSNames) + len(g.EmailAddresses) + len(g.URIs) + len(g.IPAddresses) +
		len(g.DirectoryNames) + len(g.RegisteredIDs) + len(g.Other)
}

// readGeneralNames decodes the content of a GeneralNames SEQUENCE, that is
// the concatenation of tagged GeneralName elements.
func readGeneralNames(content cryptobyte.String) (*GeneralNames, error) {
	names := &GeneralNames{}
	for !content.Empty() {
		var (
			value cryptobyte.String
			tag   cbasn1.Tag
		)
		if !content.ReadAnyASN1(&value, &tag) {
			return nil, errors.New("invalid GeneralName")
		}
		if tag&0xc0 != 0x80 {
			return nil, fmt.Errorf("GeneralName has non context-specific tag %#x", uint8(tag))
		}
		switch tag {
		case cbasn1.Tag(tagRFC822Name).ContextSpecific():
			s, err := ia5(value)
			if err != nil {
				return nil, fmt.Errorf("rfc822Name: %w", err)
			}
			names.EmailAddresses = append(names.EmailAddresses, s)
		case cbasn1.Tag(tagDNSName).ContextSpecific():
			s, err := ia5(value)
			if err != nil {
				return nil, fmt.Errorf("dNSName: %w", err)
			}
			names.DNSNames = append(names.DNSNames, s)
		case cbasn1.Tag(tagURI).ContextSpecific():
			s, err := ia5(value)
			if err != nil {
				return nil, fmt.Errorf("uniformResourceIdentifier: %w", err)
			}
			names.URIs = append(names.URIs, s)
		case cbasn1.Tag(tagIPAddress).ContextSpecific():
			if len(value) != net.IPv4len && len(value) != net.IPv6len {
				return nil, fmt.Errorf("iPAddress has invalid length %d", len(value))
			}
			names.IPAddresses = append(names.IPAddresses, net.IP(bytes.Clone(value)))
		case cbasn1.Tag(tagDirectoryName).Constructed().ContextSpecific():
			var name cryptobyte.String
			if !value.ReadASN1Element(&name, cbasn1.SEQUENCE) || !value.Empty() {
				return nil, errors.New("invalid directoryName")
			}
			names.DirectoryNames = append(names.DirectoryNames, bytes.Clone(name))
		case cbasn1.Tag(tagRegisteredID).ContextSpecific():
			var oid asn1.ObjectIdentifier
			wrapped := retag(cbasn1.OBJECT_IDENTIFIER, value)
			if !wrapped.ReadASN1ObjectIdentifier(&oid) {
				return nil, errors.New("invalid registeredID")
			}
			names.RegisteredIDs = append(names.RegisteredIDs, oid)
		default:
			names.Other = append(names.Other, OtherName{Tag: int(tag & 0x1f), Raw: bytes.Clone(value)})
		}
	}
	return names, nil
}

func ia5(value cryptobyte.String) (string, error) {
	for _, b := range value {
		if b >= utf8.RuneSelf {
			return "", errors.New("not an IA5String")
		}
	}
	return string(value), nil
}

// retag rebuilds an IMPLICIT tagged primitive with its universal tag so the
// cryptobyte readers can decode it.
func retag(tag cbasn1.Tag, content []byte) cryptobyte.String {
	var b cryptobyte.Builder
	b.AddASN1(tag, func(child *cryptobyte.Builder) {
		child.AddBytes(content)
	})
	return cryptobyte.String(b.BytesOrPanic())
}

// readImplicitInteger decodes the content of an IMPLICIT tagged INTEGER.
func readImplicitInteger(content []byte) (*big.Int, error) {
	n := new(big.Int)
	wrapped := retag(cbasn1.INTEGER, content)
	if !wrapped.ReadASN1Integer(n) {
		return nil, errors.New("invalid INTEGER")
	}
	return n, nil
}

// SubjectAlternativeName binds identities to the subject.
type SubjectAlternativeName struct {
	Names GeneralNames
}

func (*SubjectAlternativeName) OID() asn1.ObjectIdentifier { return OIDSubjectAltName }
func (*SubjectAlternativeName) Kind() Kind                 { return KindSubjectAlternativeName }
func (*SubjectAlternativeName) sealed()                    {}

func decodeSubjectAlternativeName(der cryptobyte.String) (Extension, error) {
	var seq cryptobyte.String
	if !der.ReadASN1(&seq, cbasn1.SEQUENCE) {
		return nil, errors.New("expected SEQUENCE")
	}
	if !der.Empty() {
		return nil, errTrailingData
	}
	names, err := readGeneralNames(seq)
	if err != nil {
		return nil, err
	}
	return &SubjectAlternativeName{Names: *names}, nil
}
