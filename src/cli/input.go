// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"os"

	"github.com/H0llyW00dzZ/x509-path-validator/src/internal/helper/gc"
	x509cert "github.com/H0llyW00dzZ/x509-path-validator/src/x509/certificate"
)

// readFile reads a certificate file through a pooled buffer.
func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading input file: %w", err)
	}
	defer f.Close()

	data, err := gc.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("error reading input file %s: %w", path, err)
	}
	return data, nil
}

// readCertificates decodes every certificate in path.
func readCertificates(path string) ([]*x509cert.Certificate, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	certs, err := x509cert.ParseAll(data)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return certs, nil
}

// readCertificate decodes the single certificate in path.
func readCertificate(path string) (*x509cert.Certificate, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	cert, err := x509cert.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return cert, nil
}

// writeBundle writes chain to path as PEM, or as concatenated DER when der is set.
func writeBundle(path string, chain *x509cert.Chain, der bool) error {
	data := chain.PEM()
	if der {
		data = chain.DER()
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error writing output file: %w", err)
	}
	return nil
}
