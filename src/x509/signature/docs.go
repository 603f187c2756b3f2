// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509sig binds the signature algorithm declared by an [X.509] certificate
// to a cryptographic verification scheme.
//
// A [Registry] maps signature algorithm identifiers to [Scheme] values. Each scheme
// names the SubjectPublicKeyInfo algorithm it accepts, decodes the issuer key and the
// signature with explicit fallible factories, and verifies the signature over the
// to-be-signed bytes. The built-in schemes are [Ed25519] and ECDSA over P-256, P-384
// and P-521; each is registered into [Default] from its own file and can be left out
// of a build with the x509sig_no_ed25519 or x509sig_no_ecdsa build tags.
//
// Cryptographic failures are reported as the single [ErrSignatureInvalid] error so
// callers cannot learn why a signature was rejected.
//
// [X.509]: https://grokipedia.com/page/X.509
package x509sig
