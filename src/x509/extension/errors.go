// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509ext

import (
	"encoding/asn1"
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedExtension indicates a critical extension whose object identifier is not recognized.
	ErrUnsupportedExtension = errors.New("x509ext: unsupported critical extension")

	// ErrMalformedExtension indicates a recognized extension whose payload failed to decode.
	ErrMalformedExtension = errors.New("x509ext: malformed extension")
)

// UnsupportedExtensionError reports the object identifier of an unrecognized critical extension.
type UnsupportedExtensionError struct {
	OID asn1.ObjectIdentifier
}

func (e *UnsupportedExtensionError) Error() string {
	return fmt.Sprintf("x509ext: unsupported critical extension %s", e.OID)
}

func (e *UnsupportedExtensionError) Unwrap() error { return ErrUnsupportedExtension }

// DecodeError reports a recognized extension whose payload failed to decode.
type DecodeError struct {
	OID  asn1.ObjectIdentifier
	Kind Kind
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("x509ext: malformed %s extension (%s): %v", e.Kind, e.OID, e.Err)
}

func (e *DecodeError) Unwrap() []error { return []error{ErrMalformedExtension, e.Err} }
