// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509names compares X.509 Distinguished Names structurally.
//
// Two names are equal when they hold the same number of RDNs in the same order and
// each pair of RDNs holds the same set of attributes. String attribute values are
// decoded from their ASN.1 string type and then prepared (Unicode NFKC normalization,
// case folding, whitespace trimming and collapsing) before comparison, following the
// matching rules of RFC 5280 section 7.1. Values of any other type are compared by
// their encoded bytes.
package x509names
