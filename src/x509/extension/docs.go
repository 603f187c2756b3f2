// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509ext decodes [X.509] certificate extensions into typed values.
//
// Seven extension kinds are recognized: Basic Constraints, Key Usage, Extended Key
// Usage, Subject Alternative Name, Authority Key Identifier, Subject Key Identifier
// and Certificate Policies. [Parse] walks the raw extension list in order and decodes
// each recognized entry through a static table keyed by object identifier.
//
// Parsing fails closed. A critical extension that is not recognized yields an
// [*UnsupportedExtensionError], and any recognized payload that does not decode,
// critical or not, yields a [*DecodeError]. Unrecognized non-critical extensions are
// dropped.
//
// [X.509]: https://grokipedia.com/page/X.509
package x509ext
