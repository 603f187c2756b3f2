// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver provides an [MCP] server exposing X.509 path validation,
// validity period checks and certificate inspection as tools.
//
// The server speaks MCP over stdio using [mcp-go]. Certificates are passed to
// tools as a file path or base64-encoded PEM, DER or PKCS#7 data. Settings are
// shared with the CLI through the config package and loaded from the file named
// by the X509_PATH_VALIDATOR_CONFIG environment variable.
//
// Tools:
//   - validate_cert_path: validate a leaf and its intermediates against a trust anchor
//   - check_cert_period: check that every certificate is inside its validity period
//   - inspect_certificate: describe certificates and their typed extensions
//
// Resources:
//   - info://version: server name and version
//   - docs://extensions: the certificate extensions the validator understands
//   - docs://validation: the checks applied to each certificate of a path
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
// [mcp-go]: https://github.com/mark3labs/mcp-go
package mcpserver
