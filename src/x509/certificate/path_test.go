// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509cert_test

import (
	"bytes"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"

	"github.com/H0llyW00dzZ/x509-path-validator/src/logger"
	x509cert "github.com/H0llyW00dzZ/x509-path-validator/src/x509/certificate"
	x509ext "github.com/H0llyW00dzZ/x509-path-validator/src/x509/extension"
	x509sig "github.com/H0llyW00dzZ/x509-path-validator/src/x509/signature"
)

// authorityKeyID encodes an Authority Key Identifier extension value.
func authorityKeyID(t *testing.T, keyID []byte, serial *big.Int) pkix.Extension {
	t.Helper()
	var b cryptobyte.Builder
	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		if keyID != nil {
			b.AddASN1(cbasn1.Tag(0).ContextSpecific(), func(b *cryptobyte.Builder) { b.AddBytes(keyID) })
		}
		if serial != nil {
			// Strip the INTEGER header; the field is IMPLICIT tagged.
			var integer cryptobyte.Builder
			integer.AddASN1BigInt(serial)
			content := cryptobyte.String(integer.BytesOrPanic())
			var body cryptobyte.String
			content.ReadASN1(&body, cbasn1.INTEGER)
			b.AddASN1(cbasn1.Tag(2).ContextSpecific(), func(b *cryptobyte.Builder) { b.AddBytes(body) })
		}
	})
	value, err := b.Bytes()
	require.NoError(t, err)
	return pkix.Extension{Id: x509ext.OIDAuthorityKeyIdentifier, Value: value}
}

// rawName encodes a one-attribute-per-RDN name using the given string tag.
func rawName(t *testing.T, tag int, attrs ...string) []byte {
	t.Helper()
	oids := []asn1.ObjectIdentifier{{2, 5, 4, 10}, {2, 5, 4, 3}}
	var seq pkix.RDNSequence
	for i, value := range attrs {
		seq = append(seq, pkix.RelativeDistinguishedNameSET{{
			Type:  oids[i],
			Value: asn1.RawValue{Tag: tag, Bytes: []byte(value)},
		}})
	}
	der, err := asn1.Marshal(seq)
	require.NoError(t, err)
	return der
}

func assertPathError(t *testing.T, err error, want error, index int) {
	t.Helper()
	require.ErrorIs(t, err, want)

	var pathErr *x509cert.PathError
	require.True(t, errors.As(err, &pathErr), "expected *PathError, got %T", err)
	assert.Equal(t, index, pathErr.Index)
	assert.NotEmpty(t, pathErr.Subject)
}

func TestValidatePathScenarios(t *testing.T) {
	t.Run("A valid three node chain", func(t *testing.T) {
		anchor, intermediate, leaf := threeNodeChain(t, keyEd25519, keyP256, keyP384)
		chain := buildChain(t, leaf, intermediate)

		assert.NoError(t, validatorAt(base).ValidatePath(chain, anchor.cert))
		assert.NoError(t, chain.ValidatePath(anchor.cert))
	})

	t.Run("B intermediate is not a CA", func(t *testing.T) {
		anchor := issue(t, nil, newKey(t, keyEd25519), caTemplate("Root", -1))
		tmpl := caTemplate("Not A CA", -1)
		tmpl.IsCA = false
		tmpl.KeyUsage = x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign
		intermediate := issue(t, anchor, newKey(t, keyEd25519), tmpl)
		leaf := issue(t, intermediate, newKey(t, keyEd25519), leafTemplate("b.example.com"))

		err := validatorAt(base).ValidatePath(buildChain(t, leaf, intermediate), anchor.cert)
		assertPathError(t, err, x509cert.ErrBasicConstraintsViolation, 1)
	})

	t.Run("C leaf issuer altered", func(t *testing.T) {
		anchor, intermediate, _ := threeNodeChain(t, keyEd25519, keyEd25519, keyEd25519)
		impostor := *intermediate.x509
		impostor.RawSubject = nil
		impostor.Subject = pkix.Name{CommonName: "Someone Else"}
		leaf := issueWith(t, &impostor, intermediate.key, newKey(t, keyEd25519), leafTemplate("c.example.com"))

		err := validatorAt(base).ValidatePath(buildChain(t, leaf, intermediate), anchor.cert)
		assertPathError(t, err, x509cert.ErrIssuerSubjectMismatch, 2)
	})

	t.Run("D leaf signed by the wrong key", func(t *testing.T) {
		anchor, intermediate, _ := threeNodeChain(t, keyEd25519, keyP256, keyP256)
		rogue := newKey(t, keyP256)
		forged := *intermediate.x509
		forged.PublicKey = rogue.Public()
		leaf := issueWith(t, &forged, rogue, newKey(t, keyP256), leafTemplate("d.example.com"))

		err := validatorAt(base).ValidatePath(buildChain(t, leaf, intermediate), anchor.cert)
		assertPathError(t, err, x509cert.ErrSignatureInvalid, 2)
		assert.ErrorIs(t, err, x509sig.ErrSignatureInvalid)
	})
}

func TestValidatePathBasicConstraints(t *testing.T) {
	t.Run("missing basic constraints", func(t *testing.T) {
		anchor := issue(t, nil, newKey(t, keyEd25519), caTemplate("Root", -1))
		tmpl := caTemplate("No Constraints", -1)
		tmpl.BasicConstraintsValid = false
		tmpl.IsCA = false
		intermediate := issue(t, anchor, newKey(t, keyEd25519), tmpl)
		leaf := issue(t, intermediate, newKey(t, keyEd25519), leafTemplate("bc.example.com"))

		_, ok := intermediate.cert.BasicConstraints()
		require.False(t, ok)

		err := validatorAt(base).ValidatePath(buildChain(t, leaf, intermediate), anchor.cert)
		assertPathError(t, err, x509cert.ErrBasicConstraintsViolation, 1)
	})

	t.Run("anchor that is not a CA", func(t *testing.T) {
		tmpl := caTemplate("Leaf As Anchor", -1)
		tmpl.IsCA = false
		anchor := issue(t, nil, newKey(t, keyEd25519), tmpl)
		leaf := issue(t, anchor, newKey(t, keyEd25519), leafTemplate("anchor.example.com"))

		err := validatorAt(base).ValidatePath(buildChain(t, leaf), anchor.cert)
		assertPathError(t, err, x509cert.ErrBasicConstraintsViolation, 0)
	})

	t.Run("key usage without keyCertSign", func(t *testing.T) {
		anchor := issue(t, nil, newKey(t, keyEd25519), caTemplate("Root", -1))
		tmpl := caTemplate("Signing Only", -1)
		tmpl.KeyUsage = x509.KeyUsageDigitalSignature
		intermediate := issue(t, anchor, newKey(t, keyEd25519), tmpl)
		leaf := issue(t, intermediate, newKey(t, keyEd25519), leafTemplate("ku.example.com"))

		err := validatorAt(base).ValidatePath(buildChain(t, leaf, intermediate), anchor.cert)
		assertPathError(t, err, x509cert.ErrKeyUsageViolation, 1)
	})

	t.Run("key usage absent is allowed", func(t *testing.T) {
		tmpl := caTemplate("Root Without Key Usage", -1)
		tmpl.KeyUsage = 0
		anchor := issue(t, nil, newKey(t, keyEd25519), tmpl)
		leaf := issue(t, anchor, newKey(t, keyEd25519), leafTemplate("noku.example.com"))

		assert.NoError(t, validatorAt(base).ValidatePath(buildChain(t, leaf), anchor.cert))
	})
}

func TestValidatePathLength(t *testing.T) {
	tests := []struct {
		name          string
		anchorPathLen int
		intermediates []int
		selfIssued    bool
		wantErr       bool
		wantIndex     int
	}{
		{name: "zero allows direct leaf", anchorPathLen: 0},
		{name: "zero followed by a CA", anchorPathLen: 0, intermediates: []int{-1}, wantErr: true, wantIndex: 0},
		{name: "one allows one intermediate", anchorPathLen: 1, intermediates: []int{-1}},
		{name: "one followed by two CAs", anchorPathLen: 1, intermediates: []int{-1, -1}, wantErr: true, wantIndex: 0},
		{name: "intermediate zero followed by a CA", anchorPathLen: -1, intermediates: []int{0, -1}, wantErr: true, wantIndex: 1},
		{name: "unconstrained", anchorPathLen: -1, intermediates: []int{-1, -1, -1}},
		{name: "self-issued intermediate is not counted", anchorPathLen: 0, intermediates: []int{-1}, selfIssued: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anchorTmpl := caTemplate("Path Length Root", tt.anchorPathLen)
			anchor := issue(t, nil, newKey(t, keyEd25519), anchorTmpl)

			parent := anchor
			var intermediates []*node
			for i, pathLen := range tt.intermediates {
				tmpl := caTemplate("Path Length Intermediate "+string(rune('A'+i)), pathLen)
				if tt.selfIssued {
					tmpl.Subject = anchorTmpl.Subject
				}
				parent = issue(t, parent, newKey(t, keyP256), tmpl)
				intermediates = append(intermediates, parent)
			}
			leaf := issue(t, parent, newKey(t, keyP256), leafTemplate("pathlen.example.com"))

			err := validatorAt(base).ValidatePath(buildChain(t, leaf, intermediates...), anchor.cert)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assertPathError(t, err, x509cert.ErrBasicConstraintsViolation, tt.wantIndex)
		})
	}
}

func TestValidatePathKeyIdentifiers(t *testing.T) {
	anchor := issue(t, nil, newKey(t, keyEd25519), caTemplate("Key ID Root", -1))
	ski, ok := anchor.cert.SubjectKeyIdentifier()
	require.True(t, ok)

	tests := []struct {
		name    string
		ext     pkix.Extension
		wantErr error
	}{
		{"matching key identifier and serial", authorityKeyID(t, ski.KeyIdentifier, anchor.cert.SerialNumber()), nil},
		{"serial only", authorityKeyID(t, nil, anchor.cert.SerialNumber()), nil},
		{"wrong key identifier", authorityKeyID(t, []byte{1, 2, 3}, nil), x509cert.ErrAuthorityKeyIdentifierMismatch},
		{"wrong serial", authorityKeyID(t, ski.KeyIdentifier, big.NewInt(999999)), x509cert.ErrAuthorityKeyIdentifierMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := leafTemplate("akid.example.com")
			tmpl.ExtraExtensions = []pkix.Extension{tt.ext}
			leaf := issue(t, anchor, newKey(t, keyEd25519), tmpl)

			err := validatorAt(base).ValidatePath(buildChain(t, leaf), anchor.cert)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assertPathError(t, err, tt.wantErr, 1)
		})
	}
}

func TestValidatePathCanonicalNames(t *testing.T) {
	anchor := issue(t, nil, newKey(t, keyEd25519), caTemplate("Root", -1))

	tmpl := caTemplate("", -1)
	tmpl.RawSubject = rawName(t, asn1.TagUTF8String, "Example Org", "Example Issuing CA")
	intermediate := issue(t, anchor, newKey(t, keyEd25519), tmpl)

	renamed := *intermediate.x509
	renamed.RawSubject = rawName(t, asn1.TagPrintableString, "EXAMPLE  ORG", "example issuing ca")
	leaf := issueWith(t, &renamed, intermediate.key, newKey(t, keyEd25519), leafTemplate("names.example.com"))

	require.False(t, bytes.Equal(intermediate.cert.RawSubject(), leaf.cert.RawIssuer()))
	assert.NoError(t, validatorAt(base).ValidatePath(buildChain(t, leaf, intermediate), anchor.cert))
}

func TestValidatePathPeriods(t *testing.T) {
	anchor, intermediate, leaf := threeNodeChain(t, keyEd25519, keyEd25519, keyEd25519)
	chain := buildChain(t, leaf, intermediate)

	tests := []struct {
		name      string
		at        time.Time
		wantErr   error
		wantIndex int
	}{
		{"inside every period", base, nil, 0},
		{"before the anchor is valid", base.Add(-2 * time.Hour), x509cert.ErrCertificateImmature, 0},
		{"after the leaf expired", base.Add(13 * time.Hour), x509cert.ErrCertificateExpired, 2},
		{"after everything expired", base.Add(48 * time.Hour), x509cert.ErrCertificateExpired, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatorAt(tt.at).ValidatePath(chain, anchor.cert)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assertPathError(t, err, tt.wantErr, tt.wantIndex)
		})
	}
}

func TestValidatePathAlgorithms(t *testing.T) {
	t.Run("ECDSA curves", func(t *testing.T) {
		for _, kind := range []keyKind{keyP256, keyP384, keyP521} {
			anchor, intermediate, leaf := threeNodeChain(t, kind, kind, keyEd25519)
			assert.NoError(t, validatorAt(base).ValidatePath(buildChain(t, leaf, intermediate), anchor.cert))
		}
	})

	t.Run("issuer key not bound to the signature algorithm", func(t *testing.T) {
		anchor, intermediate, _ := threeNodeChain(t, keyEd25519, keyEd25519, keyEd25519)
		rogue := newKey(t, keyP256)
		forged := *intermediate.x509
		forged.PublicKey = rogue.Public()
		leaf := issueWith(t, &forged, rogue, newKey(t, keyEd25519), leafTemplate("mismatch.example.com"))

		err := validatorAt(base).ValidatePath(buildChain(t, leaf, intermediate), anchor.cert)
		assertPathError(t, err, x509sig.ErrAlgorithmMismatch, 2)
	})

	t.Run("scheme left out of the registry", func(t *testing.T) {
		anchor, intermediate, leaf := threeNodeChain(t, keyEd25519, keyEd25519, keyEd25519)
		validator := x509cert.NewValidator(&x509cert.ValidatorConfig{
			CurrentTime: func() time.Time { return base },
			Registry:    x509sig.NewRegistry(x509sig.ECDSAP256SHA256()),
		})

		err := validator.ValidatePath(buildChain(t, leaf, intermediate), anchor.cert)
		assertPathError(t, err, x509sig.ErrAlgorithmUnsupported, 1)
	})
}

func TestValidatePathLogging(t *testing.T) {
	anchor, intermediate, leaf := threeNodeChain(t, keyEd25519, keyP256, keyEd25519)

	var buf bytes.Buffer
	validator := x509cert.NewValidator(&x509cert.ValidatorConfig{
		CurrentTime: func() time.Time { return base },
		Logger:      logger.NewJSONLogger(&buf, false),
	})

	require.NoError(t, validator.ValidatePath(buildChain(t, leaf, intermediate), anchor.cert))
	for _, step := range []string{
		"validating path",
		"validating certificate period",
		"checking basic constraints",
		"checking key usage",
		"checking name linkage",
		"checking authority key identifier",
		"checking signature",
		"checking path length",
		"path valid",
	} {
		assert.Contains(t, buf.String(), step)
	}
}

func TestValidatePathNilArguments(t *testing.T) {
	anchor, _, leaf := threeNodeChain(t, keyEd25519, keyEd25519, keyEd25519)
	validator := validatorAt(base)

	assert.ErrorIs(t, validator.ValidatePath(nil, anchor.cert), x509cert.ErrLeafRequired)
	assert.ErrorIs(t, validator.ValidatePath(buildChain(t, leaf), nil), x509cert.ErrNilCertificate)
}
