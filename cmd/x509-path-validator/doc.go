// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// x509-path-validator is a command-line tool for validating X.509
// certification paths and inspecting certificates.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/x509-path-validator/cmd/x509-path-validator@latest
//
// # Usage
//
//	x509-path-validator validate --anchor FILE --chain FILE [FLAGS]
//	x509-path-validator period FILE... [FLAGS]
//	x509-path-validator inspect FILE... [FLAGS]
//
// # Global Flags
//
//	-c, --config   Configuration file (.json, .yaml, .yml)
//	-v, --verbose  Trace every validation step to stderr
//	    --version  Show version information
//
// # Validate Flags
//
//	-a, --anchor      Trust anchor certificate file [required]
//	-f, --chain       Leaf and intermediate certificates, issuer-most first [required]
//	    --leaf-first  The chain file lists the leaf first
//	    --at          Validation time in RFC 3339 (default: now)
//	-o, --format      Output format: text, json, table or tree
//
// Certificate files may hold PEM, DER or PKCS#7 data.
//
// # Environment Variables
//
//	X509_PATH_VALIDATOR_CONFIG  Path to configuration file (alternative to --config)
//
// # Exit Status
//
//	0    Success
//	1    Usage, input or configuration error
//	2    A certificate failed validation
//	130  Interrupted by signal
//
// # Examples
//
// Validate a chain against a private root:
//
//	x509-path-validator validate -a root.pem -f chain.pem
//
// Validate a server bundle that lists the leaf first, as of a fixed time:
//
//	x509-path-validator validate -a root.pem -f fullchain.pem --leaf-first --at 2026-01-01T00:00:00Z
//
// Display the validated path as an ASCII tree:
//
//	x509-path-validator validate -a root.pem -f chain.pem -o tree
//
// Print the typed extensions of every certificate in a bundle:
//
//	x509-path-validator inspect fullchain.pem
package main
