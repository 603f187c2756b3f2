// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509cert decodes [X.509] certificates and validates certificate paths
// against an explicit trust anchor.
//
// A [Certificate] is an immutable record built from DER, PEM or PKCS7 input. Its
// extensions are decoded up front by the x509ext package, so construction fails
// for an unrecognized critical extension or a malformed recognized one.
//
// A [Chain] holds a leaf and the intermediates that lead to it, issuer-most first.
// Chains are assembled with a staged builder:
//
//	chain, err := x509cert.NewChainBuilder().
//		SetLeaf(leaf).
//		SetIntermediates(intermediate).
//		Build()
//
// [Validator.ValidatePath] walks anchor, intermediates and leaf, checking validity
// periods, basic constraints, key usage, issuer and subject name linkage, key
// identifier linkage, path length constraints and signatures. It is a linear
// variant of the algorithm in [RFC 5280] section 6: there is no path discovery,
// revocation checking or policy processing.
//
// [X.509]: https://grokipedia.com/page/X.509
// [RFC 5280]: https://www.rfc-editor.org/rfc/rfc5280
package x509cert
