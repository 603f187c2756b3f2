// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509sig

import (
	"bytes"
	"encoding/asn1"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// AlgorithmIdentifier is a decoded X.509 AlgorithmIdentifier.
//
// Parameters holds the complete DER element of the optional parameters field,
// or nil when the field is absent.
type AlgorithmIdentifier struct {
	Algorithm  asn1.ObjectIdentifier
	Parameters []byte
}

// ParseAlgorithmIdentifier decodes a DER AlgorithmIdentifier SEQUENCE.
// The input must contain exactly one element.
func ParseAlgorithmIdentifier(der []byte) (AlgorithmIdentifier, error) {
	input := cryptobyte.String(der)
	alg, err := readAlgorithmIdentifier(&input)
	if err != nil {
		return AlgorithmIdentifier{}, err
	}
	if !input.Empty() {
		return AlgorithmIdentifier{}, fmt.Errorf("%w: trailing data", ErrMalformedAlgorithm)
	}
	return alg, nil
}

func readAlgorithmIdentifier(input *cryptobyte.String) (AlgorithmIdentifier, error) {
	var (
		seq cryptobyte.String
		alg AlgorithmIdentifier
	)
	if !input.ReadASN1(&seq, cbasn1.SEQUENCE) {
		return alg, fmt.Errorf("%w: expected SEQUENCE", ErrMalformedAlgorithm)
	}
	if !seq.ReadASN1ObjectIdentifier(&alg.Algorithm) {
		return alg, fmt.Errorf("%w: invalid algorithm object identifier", ErrMalformedAlgorithm)
	}
	if seq.Empty() {
		return alg, nil
	}
	var params cryptobyte.String
	if !seq.ReadAnyASN1Element(&params, new(cbasn1.Tag)) || !seq.Empty() {
		return alg, fmt.Errorf("%w: invalid parameters", ErrMalformedAlgorithm)
	}
	alg.Parameters = bytes.Clone(params)
	return alg, nil
}

// Equal reports whether both identifiers carry the same algorithm and parameters.
func (a AlgorithmIdentifier) Equal(b AlgorithmIdentifier) bool {
	return a.Algorithm.Equal(b.Algorithm) && bytes.Equal(a.Parameters, b.Parameters)
}

// NamedCurve returns the curve identifier when the parameters are a single OBJECT IDENTIFIER.
func (a AlgorithmIdentifier) NamedCurve() (asn1.ObjectIdentifier, bool) {
	if len(a.Parameters) == 0 {
		return nil, false
	}
	var curve asn1.ObjectIdentifier
	params := cryptobyte.String(a.Parameters)
	if !params.ReadASN1ObjectIdentifier(&curve) || !params.Empty() {
		return nil, false
	}
	return curve, true
}

// String returns the readable algorithm name, with the curve appended for EC keys.
func (a AlgorithmIdentifier) String() string {
	name := AlgorithmName(a.Algorithm)
	if curve, ok := a.NamedCurve(); ok {
		return name + " " + curveName(curve)
	}
	return name
}

// PublicKeyInfo is a decoded SubjectPublicKeyInfo.
type PublicKeyInfo struct {
	Algorithm AlgorithmIdentifier
	PublicKey []byte
}

// ParsePublicKeyInfo decodes a DER SubjectPublicKeyInfo. The subjectPublicKey
// BIT STRING must be octet aligned.
func ParsePublicKeyInfo(der []byte) (PublicKeyInfo, error) {
	var (
		info PublicKeyInfo
		seq  cryptobyte.String
		bits asn1.BitString
	)
	input := cryptobyte.String(der)
	if !input.ReadASN1(&seq, cbasn1.SEQUENCE) || !input.Empty() {
		return info, fmt.Errorf("%w: invalid SubjectPublicKeyInfo", ErrMalformedAlgorithm)
	}
	alg, err := readAlgorithmIdentifier(&seq)
	if err != nil {
		return info, err
	}
	if !seq.ReadASN1BitString(&bits) || !seq.Empty() {
		return info, fmt.Errorf("%w: invalid subjectPublicKey", ErrKeyMalformed)
	}
	if bits.BitLength%8 != 0 {
		return info, fmt.Errorf("%w: subjectPublicKey is not octet aligned", ErrKeyMalformed)
	}
	info.Algorithm = alg
	info.PublicKey = bytes.Clone(bits.Bytes)
	return info, nil
}
