// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs is the container codec for [X.509] certificates.
// It recognizes [PEM], raw DER and [PKCS7] inputs, splits bundles into
// individual DER certificates, and encodes DER certificates back to PEM.
// The certificate package builds its decode and encode operations on it.
//
// [X.509]: https://grokipedia.com/page/X.509
// [PKCS7]: https://grokipedia.com/page/PKCS_7
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package x509certs
