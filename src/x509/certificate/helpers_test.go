// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509cert_test

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	x509cert "github.com/H0llyW00dzZ/x509-path-validator/src/x509/certificate"
)

// base is the reference "now" for every generated certificate.
var base = time.Now().UTC().Truncate(time.Second)

var serials atomic.Int64

func nextSerial() *big.Int { return big.NewInt(0x1000 + serials.Add(1)) }

// node is an issued certificate together with its private key.
type node struct {
	cert *x509cert.Certificate
	x509 *x509.Certificate
	key  crypto.Signer
}

type keyKind int

const (
	keyEd25519 keyKind = iota
	keyP256
	keyP384
	keyP521
)

func newKey(t *testing.T, kind keyKind) crypto.Signer {
	t.Helper()
	var (
		key crypto.Signer
		err error
	)
	switch kind {
	case keyEd25519:
		_, key, err = ed25519.GenerateKey(rand.Reader)
	case keyP256:
		key, err = ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	case keyP384:
		key, err = ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
	case keyP521:
		key, err = ecdsa.GenerateKey(elliptic.P521(), rand.Reader)
	}
	require.NoError(t, err)
	return key
}

// caTemplate returns a CA template. A negative pathLen leaves the constraint out.
func caTemplate(cn string, pathLen int) *x509.Certificate {
	tmpl := &x509.Certificate{
		SerialNumber:          nextSerial(),
		Subject:               pkix.Name{CommonName: cn, Organization: []string{"Example Org"}},
		NotBefore:             base.Add(-time.Hour),
		NotAfter:              base.Add(24 * time.Hour),
		BasicConstraintsValid: true,
		IsCA:                  true,
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageCRLSign,
		MaxPathLen:            -1,
	}
	if pathLen >= 0 {
		tmpl.MaxPathLen = pathLen
		tmpl.MaxPathLenZero = pathLen == 0
	}
	return tmpl
}

func leafTemplate(cn string) *x509.Certificate {
	return &x509.Certificate{
		SerialNumber:          nextSerial(),
		Subject:               pkix.Name{CommonName: cn},
		NotBefore:             base.Add(-time.Hour),
		NotAfter:              base.Add(12 * time.Hour),
		BasicConstraintsValid: true,
		KeyUsage:              x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		DNSNames:              []string{cn},
	}
}

// issue signs tmpl for key. A nil parent makes the certificate self-signed.
func issue(t *testing.T, parent *node, key crypto.Signer, tmpl *x509.Certificate) *node {
	t.Helper()
	parentCert, parentKey := tmpl, key
	if parent != nil {
		parentCert, parentKey = parent.x509, parent.key
	}
	return issueWith(t, parentCert, parentKey, key, tmpl)
}

// issueWith signs tmpl with signer, taking the issuer name and authority key
// identifier from parentCert.
func issueWith(t *testing.T, parentCert *x509.Certificate, signer, key crypto.Signer, tmpl *x509.Certificate) *node {
	t.Helper()
	der, err := x509.CreateCertificate(rand.Reader, tmpl, parentCert, key.Public(), signer)
	require.NoError(t, err)

	parsed, err := x509.ParseCertificate(der)
	require.NoError(t, err)

	cert, err := x509cert.ParseDER(der)
	require.NoError(t, err)

	return &node{cert: cert, x509: parsed, key: key}
}

// threeNodeChain builds anchor, intermediate and leaf with the given key kinds.
func threeNodeChain(t *testing.T, anchorKey, intermediateKey, leafKey keyKind) (anchor, intermediate, leaf *node) {
	t.Helper()
	anchor = issue(t, nil, newKey(t, anchorKey), caTemplate("Example Root CA", -1))
	intermediate = issue(t, anchor, newKey(t, intermediateKey), caTemplate("Example Intermediate CA", 0))
	leaf = issue(t, intermediate, newKey(t, leafKey), leafTemplate("leaf.example.com"))
	return anchor, intermediate, leaf
}

func buildChain(t *testing.T, leaf *node, intermediates ...*node) *x509cert.Chain {
	t.Helper()
	certs := make([]*x509cert.Certificate, 0, len(intermediates))
	for _, n := range intermediates {
		certs = append(certs, n.cert)
	}
	chain, err := x509cert.NewChainBuilder().SetLeaf(leaf.cert).SetIntermediates(certs...).Build()
	require.NoError(t, err)
	return chain
}

func validatorAt(now time.Time) *x509cert.Validator {
	return x509cert.NewValidator(&x509cert.ValidatorConfig{
		CurrentTime: func() time.Time { return now },
	})
}
