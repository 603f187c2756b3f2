// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli_test

import (
	"bytes"
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/x509-path-validator/src/cli"
	"github.com/H0llyW00dzZ/x509-path-validator/src/logger"
)

const version = "1.3.3.7-testing"

var now = time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

type pair struct {
	der  []byte
	cert *x509.Certificate
	key  crypto.Signer
}

func issue(t *testing.T, parent *pair, key crypto.Signer, tmpl *x509.Certificate) *pair {
	t.Helper()
	parentCert, signer := tmpl, key
	if parent != nil {
		parentCert, signer = parent.cert, parent.key
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, parentCert, key.Public(), signer)
	require.NoError(t, err)
	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err)
	return &pair{der: der, cert: cert, key: key}
}

func caTmpl(serial int64, cn string) *x509.Certificate {
	return &x509.Certificate{
		SerialNumber:          big.NewInt(serial),
		Subject:               pkix.Name{CommonName: cn},
		NotBefore:             now.Add(-24 * time.Hour),
		NotAfter:              now.Add(365 * 24 * time.Hour),
		BasicConstraintsValid: true,
		IsCA:                  true,
		KeyUsage:              x509.KeyUsageCertSign,
	}
}

// fixture holds the file paths of a generated anchor, intermediate and leaf.
type fixture struct {
	dir         string
	anchor      string
	chain       string
	leafFirst   string
	leaf        string
	expiredLeaf string
	wrongAnchor string
}

func writePEM(t *testing.T, path string, certs ...*pair) string {
	t.Helper()
	var buf bytes.Buffer
	for _, c := range certs {
		require.NoError(t, pem.Encode(&buf, &pem.Block{Type: "CERTIFICATE", Bytes: c.der}))
	}
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	return path
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	_, rootKey, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	intKey, err := ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
	require.NoError(t, err)
	leafKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	_, otherKey, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	root := issue(t, nil, rootKey, caTmpl(1, "CLI Root"))
	other := issue(t, nil, otherKey, caTmpl(9, "Other Root"))
	intermediate := issue(t, root, intKey, caTmpl(2, "CLI Intermediate"))

	leafTmpl := &x509.Certificate{
		SerialNumber: big.NewInt(3),
		Subject:      pkix.Name{CommonName: "cli.example.com"},
		NotBefore:    now.Add(-time.Hour),
		NotAfter:     now.Add(90 * 24 * time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		DNSNames:     []string{"cli.example.com"},
	}
	leaf := issue(t, intermediate, leafKey, leafTmpl)

	expiredTmpl := *leafTmpl
	expiredTmpl.SerialNumber = big.NewInt(4)
	expiredTmpl.NotAfter = now.Add(-time.Minute)
	expired := issue(t, intermediate, leafKey, &expiredTmpl)

	dir := t.TempDir()
	return &fixture{
		dir:         dir,
		anchor:      writePEM(t, filepath.Join(dir, "anchor.pem"), root),
		chain:       writePEM(t, filepath.Join(dir, "chain.pem"), intermediate, leaf),
		leafFirst:   writePEM(t, filepath.Join(dir, "leaf-first.pem"), leaf, intermediate),
		leaf:        writePEM(t, filepath.Join(dir, "leaf.pem"), leaf),
		expiredLeaf: writePEM(t, filepath.Join(dir, "expired.pem"), expired),
		wrongAnchor: writePEM(t, filepath.Join(dir, "other.pem"), other),
	}
}

// run executes the command tree with args and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("X509_PATH_VALIDATOR_CONFIG", "")

	var stdout, stderr bytes.Buffer
	cmd := cli.NewCommand(version, logger.NewCLILogger())
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
