// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// x509-path-validator-mcp is a Model Context Protocol (MCP) server that exposes
// certification path validation to AI assistants and automation clients over stdio.
//
// # Installation
//
//	go install github.com/H0llyW00dzZ/x509-path-validator/cmd/x509-path-validator-mcp@latest
//
// # Environment Variables
//
//	X509_PATH_VALIDATOR_CONFIG  Path to configuration file (JSON or YAML)
//
// # MCP Tools
//
//   - validate_cert_path: Validate a leaf and its intermediates against a trust anchor
//   - check_cert_period: Check every certificate in a bundle against its validity period
//   - inspect_certificate: Describe certificates and their typed extensions
//
// # MCP Resources
//
//   - info://version: Version, supported signature algorithms and tools
//   - docs://extensions: Supported extensions and signature algorithm identifiers
//   - docs://validation: Checks applied along a path and the errors they report
//
// Certificate arguments accept a file path or base64-encoded PEM, DER or PKCS#7 data.
package main
