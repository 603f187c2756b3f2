// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package report

import (
	"errors"
	"time"

	x509cert "github.com/H0llyW00dzZ/x509-path-validator/src/x509/certificate"
)

// Certificate roles in a report.
const (
	RoleAnchor       = "Trust Anchor"
	RoleIntermediate = "Intermediate CA"
	RoleLeaf         = "Leaf"
	RoleCertificate  = "Certificate"
)

// Certificate statuses in a report.
const (
	StatusValid      = "valid"
	StatusFailed     = "failed"
	StatusNotChecked = "not checked"
)

// Entry describes one certificate.
type Entry struct {
	Index              int         `json:"index"`
	Role               string      `json:"role"`
	Subject            string      `json:"subject"`
	Issuer             string      `json:"issuer"`
	SerialNumber       string      `json:"serialNumber"`
	SignatureAlgorithm string      `json:"signatureAlgorithm"`
	PublicKeyAlgorithm string      `json:"publicKeyAlgorithm"`
	NotBefore          time.Time   `json:"notBefore"`
	NotAfter           time.Time   `json:"notAfter"`
	Fingerprint        string      `json:"fingerprintSHA256"`
	IsCA               bool        `json:"isCA"`
	Status             string      `json:"status,omitempty"`
	Error              string      `json:"error,omitempty"`
	Extensions         []Extension `json:"extensions,omitempty"`
}

// Report is the outcome of a validation or inspection.
type Report struct {
	Timestamp    time.Time `json:"timestamp"`
	Valid        bool      `json:"valid"`
	Error        string    `json:"error,omitempty"`
	Certificates []Entry   `json:"certificates"`
}

func newEntry(index int, role string, cert *x509cert.Certificate) Entry {
	validity := cert.Validity()
	return Entry{
		Index:              index,
		Role:               role,
		Subject:            cert.Subject(),
		Issuer:             cert.Issuer(),
		SerialNumber:       cert.SerialString(),
		SignatureAlgorithm: cert.SignatureAlgorithm().String(),
		PublicKeyAlgorithm: cert.PublicKeyAlgorithm().String(),
		NotBefore:          validity.NotBefore.UTC(),
		NotAfter:           validity.NotAfter.UTC(),
		Fingerprint:        cert.FingerprintBase64(),
		IsCA:               cert.IsCA(),
	}
}

// Path builds the report of validating chain against anchor at the given
// time. err is the result of the validation.
//
// Certificates are listed in walk order. When err is a [*x509cert.PathError],
// entries before its index are valid, the entry at it failed and the rest
// were not checked.
func Path(anchor *x509cert.Certificate, chain *x509cert.Chain, at time.Time, err error) *Report {
	r := &Report{Timestamp: at.UTC(), Valid: err == nil}

	failed := -1
	if err != nil {
		r.Error = err.Error()
		var pathErr *x509cert.PathError
		if errors.As(err, &pathErr) {
			failed = pathErr.Index
		}
	}

	add := func(index int, role string, cert *x509cert.Certificate) {
		e := newEntry(index, role, cert)
		switch {
		case err == nil || (failed >= 0 && index < failed):
			e.Status = StatusValid
		case index == failed:
			e.Status = StatusFailed
			var pathErr *x509cert.PathError
			if errors.As(err, &pathErr) {
				e.Error = pathErr.Err.Error()
			}
		default:
			e.Status = StatusNotChecked
		}
		r.Certificates = append(r.Certificates, e)
	}

	add(0, RoleAnchor, anchor)
	for i, cert := range chain.All() {
		role := RoleIntermediate
		if i == chain.Len()-1 {
			role = RoleLeaf
		}
		add(i+1, role, cert)
	}
	return r
}

// Periods builds the report of checking each certificate's validity period.
// errs holds one result per certificate.
func Periods(certs []*x509cert.Certificate, errs []error, at time.Time) *Report {
	r := &Report{Timestamp: at.UTC(), Valid: true}
	for i, cert := range certs {
		e := newEntry(i, RoleCertificate, cert)
		e.Status = StatusValid
		if i < len(errs) && errs[i] != nil {
			e.Status = StatusFailed
			e.Error = errs[i].Error()
			r.Valid = false
		}
		r.Certificates = append(r.Certificates, e)
	}
	if !r.Valid {
		r.Error = "one or more certificates are outside their validity period"
	}
	return r
}

// Inspect builds a report describing each certificate and its extensions
// without validating anything.
func Inspect(certs []*x509cert.Certificate, at time.Time) *Report {
	r := &Report{Timestamp: at.UTC(), Valid: true}
	for i, cert := range certs {
		e := newEntry(i, RoleCertificate, cert)
		e.Extensions = Describe(cert.Extensions())
		r.Certificates = append(r.Certificates, e)
	}
	return r
}
