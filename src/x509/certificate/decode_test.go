// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509cert_test

import (
	"crypto"
	"crypto/rand"
	"crypto/x509/pkix"
	"encoding/asn1"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"

	x509cert "github.com/H0llyW00dzZ/x509-path-validator/src/x509/certificate"
	x509ext "github.com/H0llyW00dzZ/x509-path-validator/src/x509/extension"
)

var tagExtensions = cbasn1.Tag(3).Constructed().ContextSpecific()

// reissue appends extra extensions to the TBSCertificate of der and signs the
// result with issuer's Ed25519 key. A non-nil outerAlg replaces the outer
// signatureAlgorithm.
func reissue(t *testing.T, issuer *node, der, outerAlg []byte, extra ...pkix.Extension) []byte {
	t.Helper()
	var cert, tbs, alg cryptobyte.String
	input := cryptobyte.String(der)
	require.True(t, input.ReadASN1(&cert, cbasn1.SEQUENCE))
	require.True(t, cert.ReadASN1(&tbs, cbasn1.SEQUENCE))
	require.True(t, cert.ReadASN1Element(&alg, cbasn1.SEQUENCE))

	var b cryptobyte.Builder
	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		for !tbs.Empty() {
			var (
				element cryptobyte.String
				tag     cbasn1.Tag
			)
			require.True(t, tbs.ReadAnyASN1Element(&element, &tag))
			if tag != tagExtensions {
				b.AddBytes(element)
				continue
			}

			var explicit, list cryptobyte.String
			require.True(t, element.ReadASN1(&explicit, tagExtensions))
			require.True(t, explicit.ReadASN1(&list, cbasn1.SEQUENCE))
			b.AddASN1(tagExtensions, func(b *cryptobyte.Builder) {
				b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
					b.AddBytes(list)
					for _, ext := range extra {
						b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
							b.AddASN1ObjectIdentifier(ext.Id)
							if ext.Critical {
								b.AddASN1Boolean(true)
							}
							b.AddASN1OctetString(ext.Value)
						})
					}
				})
			})
		}
	})
	tbsDER, err := b.Bytes()
	require.NoError(t, err)

	sig, err := issuer.key.Sign(rand.Reader, tbsDER, crypto.Hash(0))
	require.NoError(t, err)

	if outerAlg == nil {
		outerAlg = alg
	}
	var out cryptobyte.Builder
	out.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddBytes(tbsDER)
		b.AddBytes(outerAlg)
		b.AddASN1BitString(sig)
	})
	return out.BytesOrPanic()
}

func policiesDER(oids ...asn1.ObjectIdentifier) []byte {
	var b cryptobyte.Builder
	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		for _, oid := range oids {
			b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
				b.AddASN1ObjectIdentifier(oid)
			})
		}
	})
	return b.BytesOrPanic()
}

func TestParseMalformedRecognizedExtension(t *testing.T) {
	anchor := issue(t, nil, newKey(t, keyEd25519), caTemplate("Decode Root", -1))
	leaf := issue(t, anchor, newKey(t, keyEd25519), leafTemplate("decode.example.com"))

	tests := []struct {
		name string
		ext  pkix.Extension
		kind x509ext.Kind
	}{
		{
			name: "non-critical certificate policies",
			ext:  pkix.Extension{Id: x509ext.OIDCertificatePolicies, Value: []byte("not DER")},
			kind: x509ext.KindCertificatePolicies,
		},
		{
			name: "critical certificate policies with trailing data",
			ext: pkix.Extension{
				Id:       x509ext.OIDCertificatePolicies,
				Critical: true,
				Value:    append(policiesDER(asn1.ObjectIdentifier{2, 23, 140, 1, 2, 1}), 0x00),
			},
			kind: x509ext.KindCertificatePolicies,
		},
		{
			name: "truncated basic constraints",
			ext:  pkix.Extension{Id: x509ext.OIDBasicConstraints, Value: []byte{0x30, 0x03, 0x01}},
			kind: x509ext.KindBasicConstraints,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := x509cert.ParseDER(reissue(t, anchor, leaf.cert.DER(), nil, tt.ext))
			require.ErrorIs(t, err, x509ext.ErrMalformedExtension)
			assert.NotErrorIs(t, err, x509cert.ErrMalformedCertificate)

			var decodeErr *x509ext.DecodeError
			require.True(t, errors.As(err, &decodeErr))
			assert.True(t, decodeErr.OID.Equal(tt.ext.Id))
			assert.Equal(t, tt.kind, decodeErr.Kind)
		})
	}
}

func TestParseDropsUnrecognizedNonCritical(t *testing.T) {
	anchor := issue(t, nil, newKey(t, keyEd25519), caTemplate("Drop Root", -1))
	leaf := issue(t, anchor, newKey(t, keyEd25519), leafTemplate("drop.example.com"))
	garbage := []byte{0x01, 0x02, 0x03}

	tests := []struct {
		name string
		oid  asn1.ObjectIdentifier
	}{
		{"CRL distribution points", asn1.ObjectIdentifier{2, 5, 29, 31}},
		{"name constraints", asn1.ObjectIdentifier{2, 5, 29, 30}},
		{"authority information access", asn1.ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			der := reissue(t, anchor, leaf.cert.DER(), nil, pkix.Extension{Id: tt.oid, Value: garbage})

			cert, err := x509cert.ParseDER(der)
			require.NoError(t, err)
			assert.Equal(t, leaf.cert.Extensions(), cert.Extensions())
			assert.Equal(t, der, cert.DER())
			assert.Nil(t, cert.X509(), "crypto/x509 rejects the extension")

			chain, err := x509cert.NewChainBuilder().SetLeaf(cert).SetIntermediates().Build()
			require.NoError(t, err)
			assert.NoError(t, chain.ValidatePath(anchor.cert))
		})
	}
}

func TestParseKeepsDuplicateExtensions(t *testing.T) {
	anchor := issue(t, nil, newKey(t, keyEd25519), caTemplate("Duplicate Root", -1))
	leaf := issue(t, anchor, newKey(t, keyEd25519), leafTemplate("duplicate.example.com"))

	first := asn1.ObjectIdentifier{2, 23, 140, 1, 2, 1}
	second := asn1.ObjectIdentifier{1, 3, 6, 1, 4, 1, 99999, 1}
	der := reissue(t, anchor, leaf.cert.DER(), nil,
		pkix.Extension{Id: x509ext.OIDCertificatePolicies, Value: policiesDER(first)},
		pkix.Extension{Id: x509ext.OIDCertificatePolicies, Value: policiesDER(second)},
	)

	cert, err := x509cert.ParseDER(der)
	require.NoError(t, err)

	var policies []*x509ext.CertificatePolicies
	for _, ext := range cert.Extensions() {
		if p, ok := ext.(*x509ext.CertificatePolicies); ok {
			policies = append(policies, p)
		}
	}
	require.Len(t, policies, 2)
	assert.True(t, policies[1].Policies[0].Policy.Equal(second))

	got, ok := cert.CertificatePolicies()
	require.True(t, ok)
	require.Len(t, got.Policies, 1)
	assert.True(t, got.Policies[0].Policy.Equal(first))
}

func TestParseSignatureAlgorithmMismatch(t *testing.T) {
	anchor := issue(t, nil, newKey(t, keyEd25519), caTemplate("Mismatch Root", -1))
	leaf := issue(t, anchor, newKey(t, keyEd25519), leafTemplate("mismatch.example.com"))

	var alg cryptobyte.Builder
	alg.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1ObjectIdentifier(asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 3, 2})
	})

	_, err := x509cert.ParseDER(reissue(t, anchor, leaf.cert.DER(), alg.BytesOrPanic()))
	assert.ErrorIs(t, err, x509cert.ErrMalformedCertificate)
}
