// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/x509-path-validator/src/config"
	"github.com/H0llyW00dzZ/x509-path-validator/src/version"
)

var appVersion = version.Version // default version

// GetVersion returns the current version of the MCP server.
//
// The version is initially set to the default from the version package,
// but is overridden when Run is called with a specific version string.
func GetVersion() string {
	return appVersion
}

// Run starts the MCP server on stdin and stdout and blocks until ctx is
// cancelled or the transport fails.
//
// Parameters:
//   - ctx: Context whose cancellation stops the server
//   - version: Version string reported to clients
//
// Returns:
//   - error: Configuration or build errors, transport errors, or the context
//     error wrapped with "server shutdown" after cancellation
//
// Configuration is loaded from the file named by X509_PATH_VALIDATOR_CONFIG,
// falling back to defaults.
func Run(ctx context.Context, version string) error {
	return serve(ctx, version, os.Stdin, os.Stdout)
}

func serve(ctx context.Context, version string, in io.Reader, out io.Writer) error {
	appVersion = version

	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	s, err := NewServerBuilder().
		WithConfig(cfg).
		WithVersion(version).
		WithDefaultTools().
		WithDefaultResources().
		Build()
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	stdioServer := server.NewStdioServer(s)

	errChan := make(chan error, 1)
	go func() {
		errChan <- stdioServer.Listen(ctx, in, out)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return fmt.Errorf("server shutdown: %w", ctx.Err())
	}
}
