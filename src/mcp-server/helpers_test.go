// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver_test

import (
	"bytes"
	"context"
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/base64"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/x509-path-validator/src/config"
	mcpserver "github.com/H0llyW00dzZ/x509-path-validator/src/mcp-server"
)

const version = "1.3.3.7-testing"

var now = time.Now().UTC().Truncate(time.Second)

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

func pemOf(t *testing.T, certs ...*pair) []byte {
	t.Helper()
	var buf bytes.Buffer
	for _, c := range certs {
		require.NoError(t, pem.Encode(&buf, &pem.Block{Type: "CERTIFICATE", Bytes: c.der}))
	}
	return buf.Bytes()
}

// fixture holds tool inputs for a generated anchor, intermediate and leaf.
type fixture struct {
	anchor       string // base64 PEM
	chainFile    string // path to PEM bundle, leaf last
	leafFirst    string // base64 PEM bundle, leaf first
	otherAnchor  string // base64 PEM
	leafNotAfter time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	_, rootKey, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	intKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	_, leafKey, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	_, otherKey, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	ca := func(serial int64, cn string) *x509.Certificate {
		return &x509.Certificate{
			SerialNumber:          big.NewInt(serial),
			Subject:               pkix.Name{CommonName: cn},
			NotBefore:             now.Add(-time.Hour),
			NotAfter:              now.Add(48 * time.Hour),
			BasicConstraintsValid: true,
			IsCA:                  true,
			KeyUsage:              x509.KeyUsageCertSign,
		}
	}
	root := issue(t, nil, rootKey, ca(1, "MCP Root"))
	other := issue(t, nil, otherKey, ca(2, "MCP Other Root"))
	intermediate := issue(t, root, intKey, ca(3, "MCP Intermediate"))
	leaf := issue(t, intermediate, leafKey, &x509.Certificate{
		SerialNumber: big.NewInt(4),
		Subject:      pkix.Name{CommonName: "mcp.example.com"},
		NotBefore:    now.Add(-time.Hour),
		NotAfter:     now.Add(24 * time.Hour),
		DNSNames:     []string{"mcp.example.com"},
	})

	chainFile := filepath.Join(t.TempDir(), "chain.pem")
	require.NoError(t, os.WriteFile(chainFile, pemOf(t, intermediate, leaf), 0o600))

	return &fixture{
		anchor:       base64.StdEncoding.EncodeToString(pemOf(t, root)),
		chainFile:    chainFile,
		leafFirst:    base64.StdEncoding.EncodeToString(pemOf(t, leaf, intermediate)),
		otherAnchor:  base64.StdEncoding.EncodeToString(pemOf(t, other)),
		leafNotAfter: leaf.cert.NotAfter,
	}
}

func newServer(t *testing.T, cfg *config.Config) *server.MCPServer {
	t.Helper()
	s, err := mcpserver.NewServerBuilder().
		WithConfig(cfg).
		WithVersion(version).
		WithDefaultTools().
		WithDefaultResources().
		Build()
	require.NoError(t, err)
	return s
}

// call invokes a registered tool and returns its text and error flag.
func call(t *testing.T, s *server.MCPServer, name string, args map[string]any) (string, bool) {
	t.Helper()
	tool := s.GetTool(name)
	require.NotNil(t, tool, "tool %s not registered", name)

	result, err := tool.Handler(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: name, Arguments: args},
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Content)

	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "unexpected content type %T", result.Content[0])
	return text.Text, result.IsError
}
