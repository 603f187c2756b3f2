// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509names

import (
	"bytes"
	"encoding/asn1"
	"encoding/hex"
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
	"golang.org/x/text/cases"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/unicode/norm"
)

// ASN.1 universal string tags that can appear in attribute values.
const (
	tagUTF8String      = cbasn1.UTF8String
	tagNumericString   = cbasn1.Tag(18)
	tagPrintableString = cbasn1.PrintableString
	tagT61String       = cbasn1.T61String
	tagIA5String       = cbasn1.IA5String
	tagVisibleString   = cbasn1.Tag(26)
	tagUniversalString = cbasn1.Tag(28)
	tagBMPString       = cbasn1.Tag(30)
)

// ErrMalformedName indicates DER that is not a valid Name.
var ErrMalformedName = errors.New("x509names: malformed distinguished name")

// Attribute is one prepared AttributeTypeAndValue.
type Attribute struct {
	Type asn1.ObjectIdentifier
	// Value is the prepared string, or the hex encoding of the tagged value for
	// attributes that are not strings.
	Value string
	// String reports whether Value was prepared from a string type.
	String bool
}

func (a Attribute) key() string {
	if a.String {
		return a.Type.String() + "=" + a.Value
	}
	return a.Type.String() + "#" + a.Value
}

// RDN is a RelativeDistinguishedName with its attributes in canonical order.
type RDN []Attribute

// Name is a parsed Distinguished Name.
type Name []RDN

// Parse decodes a DER Name and prepares every attribute value.
func Parse(der []byte) (Name, error) {
	var seq cryptobyte.String
	input := cryptobyte.String(der)
	if !input.ReadASN1(&seq, cbasn1.SEQUENCE) || !input.Empty() {
		return nil, fmt.Errorf("%w: expected a single SEQUENCE", ErrMalformedName)
	}
	var name Name
	for !seq.Empty() {
		var set cryptobyte.String
		if !seq.ReadASN1(&set, cbasn1.SET) {
			return nil, fmt.Errorf("%w: expected SET", ErrMalformedName)
		}
		var rdn RDN
		for !set.Empty() {
			attr, err := readAttribute(&set)
			if err != nil {
				return nil, err
			}
			rdn = append(rdn, attr)
		}
		if len(rdn) == 0 {
			return nil, fmt.Errorf("%w: empty RDN", ErrMalformedName)
		}
		slices.SortFunc(rdn, func(a, b Attribute) int {
			return strings.Compare(a.key(), b.key())
		})
		name = append(name, rdn)
	}
	return name, nil
}

func readAttribute(set *cryptobyte.String) (Attribute, error) {
	var (
		atv   cryptobyte.String
		value cryptobyte.String
		tag   cbasn1.Tag
		attr  Attribute
	)
	if !set.ReadASN1(&atv, cbasn1.SEQUENCE) ||
		!atv.ReadASN1ObjectIdentifier(&attr.Type) ||
		!atv.ReadAnyASN1(&value, &tag) ||
		!atv.Empty() {
		return attr, fmt.Errorf("%w: invalid AttributeTypeAndValue", ErrMalformedName)
	}
	s, ok, err := decodeString(tag, value)
	if err != nil {
		return attr, fmt.Errorf("%w: attribute %s: %w", ErrMalformedName, attr.Type, err)
	}
	if !ok {
		attr.Value = hex.EncodeToString([]byte{byte(tag)}) + hex.EncodeToString(value)
		return attr, nil
	}
	attr.Value = Prepare(s)
	attr.String = true
	return attr, nil
}

// decodeString converts a string-typed value to UTF-8. ok is false for
// tags that are not string types.
func decodeString(tag cbasn1.Tag, value []byte) (s string, ok bool, err error) {
	switch tag {
	case tagUTF8String:
		if !utf8.Valid(value) {
			return "", true, errors.New("invalid UTF8String")
		}
		return string(value), true, nil
	case tagPrintableString, tagIA5String, tagNumericString, tagVisibleString:
		for _, b := range value {
			if b >= utf8.RuneSelf {
				return "", true, errors.New("non-ASCII byte in restricted string")
			}
		}
		return string(value), true, nil
	case tagT61String:
		out, err := charmap.ISO8859_1.NewDecoder().Bytes(value)
		return string(out), true, err
	case tagBMPString:
		if len(value)%2 != 0 {
			return "", true, errors.New("odd length BMPString")
		}
		out, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder().Bytes(value)
		return string(out), true, err
	case tagUniversalString:
		if len(value)%4 != 0 {
			return "", true, errors.New("invalid UniversalString length")
		}
		out, err := utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM).NewDecoder().Bytes(value)
		return string(out), true, err
	}
	return "", false, nil
}

// Prepare applies the string preparation used for comparison: compatibility
// normalization, case folding and whitespace collapsing.
func Prepare(s string) string {
	s = norm.NFKC.String(s)
	s = cases.Fold().String(s)
	return strings.Join(strings.Fields(s), " ")
}

// Equal reports whether two parsed names match.
func (n Name) Equal(other Name) bool {
	return slices.EqualFunc(n, other, func(a, b RDN) bool {
		return slices.EqualFunc(a, b, func(x, y Attribute) bool {
			return x.Type.Equal(y.Type) && x.String == y.String && x.Value == y.Value
		})
	})
}

// String renders the prepared name, most significant RDN first.
func (n Name) String() string {
	parts := make([]string, 0, len(n))
	for _, rdn := range n {
		attrs := make([]string, 0, len(rdn))
		for _, a := range rdn {
			attrs = append(attrs, a.key())
		}
		parts = append(parts, strings.Join(attrs, "+"))
	}
	return strings.Join(parts, ",")
}

// Equal reports whether two DER-encoded names match. Byte-identical inputs are
// equal without parsing; input that does not parse is never equal to anything
// else.
func Equal(a, b []byte) bool {
	if bytes.Equal(a, b) {
		return true
	}
	na, err := Parse(a)
	if err != nil {
		return false
	}
	nb, err := Parse(b)
	if err != nil {
		return false
	}
	return na.Equal(nb)
}
