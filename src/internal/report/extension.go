// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package report

import (
	"encoding/asn1"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	x509names "github.com/H0llyW00dzZ/x509-path-validator/src/internal/x509/names"
	x509ext "github.com/H0llyW00dzZ/x509-path-validator/src/x509/extension"
)

// Extension is a human-readable rendering of one typed extension.
type Extension struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

var purposes = map[string]string{
	"2.5.29.37.0":       "Any",
	"1.3.6.1.5.5.7.3.1": "Server Authentication",
	"1.3.6.1.5.5.7.3.2": "Client Authentication",
	"1.3.6.1.5.5.7.3.3": "Code Signing",
	"1.3.6.1.5.5.7.3.4": "Email Protection",
	"1.3.6.1.5.5.7.3.8": "Time Stamping",
	"1.3.6.1.5.5.7.3.9": "OCSP Signing",
}

func purposeName(oid asn1.ObjectIdentifier) string {
	if name, ok := purposes[oid.String()]; ok {
		return name
	}
	return oid.String()
}

// Describe renders every extension, keeping their order.
func Describe(exts x509ext.Extensions) []Extension {
	out := make([]Extension, 0, len(exts))
	for _, ext := range exts {
		out = append(out, Extension{Name: ext.Kind().String(), Value: describe(ext)})
	}
	return out
}

func describe(ext x509ext.Extension) string {
	switch e := ext.(type) {
	case *x509ext.BasicConstraints:
		if !e.CA {
			return "CA: false"
		}
		if e.PathLenConstraint == nil {
			return "CA: true"
		}
		return "CA: true, path length: " + strconv.Itoa(*e.PathLenConstraint)
	case *x509ext.KeyUsage:
		return e.Usage.String()
	case *x509ext.ExtendedKeyUsage:
		names := make([]string, 0, len(e.Usages))
		for _, oid := range e.Usages {
			names = append(names, purposeName(oid))
		}
		return strings.Join(names, ", ")
	case *x509ext.SubjectAlternativeName:
		return describeNames(&e.Names)
	case *x509ext.AuthorityKeyIdentifier:
		var parts []string
		if e.KeyIdentifier != nil {
			parts = append(parts, "keyid: "+colonHex(e.KeyIdentifier))
		}
		if e.AuthorityCertIssuer != nil {
			parts = append(parts, "issuer: "+describeNames(e.AuthorityCertIssuer))
		}
		if e.AuthorityCertSerialNumber != nil {
			parts = append(parts, "serial: "+e.AuthorityCertSerialNumber.String())
		}
		return strings.Join(parts, ", ")
	case *x509ext.SubjectKeyIdentifier:
		return colonHex(e.KeyIdentifier)
	case *x509ext.CertificatePolicies:
		policies := make([]string, 0, len(e.Policies))
		for _, p := range e.Policies {
			s := p.Policy.String()
			if p.Policy.Equal(x509ext.OIDAnyPolicy) {
				s = "anyPolicy"
			}
			for _, q := range p.Qualifiers {
				if q.CPSURI != "" {
					s += " (CPS: " + q.CPSURI + ")"
				}
			}
			policies = append(policies, s)
		}
		return strings.Join(policies, ", ")
	default:
		return ext.OID().String()
	}
}

func describeNames(g *x509ext.GeneralNames) string {
	var parts []string
	for _, n := range g.DNSNames {
		parts = append(parts, "DNS:"+n)
	}
	for _, n := range g.EmailAddresses {
		parts = append(parts, "email:"+n)
	}
	for _, n := range g.URIs {
		parts = append(parts, "URI:"+n)
	}
	for _, ip := range g.IPAddresses {
		parts = append(parts, "IP:"+ip.String())
	}
	for _, dn := range g.DirectoryNames {
		if name, err := x509names.Parse(dn); err == nil {
			parts = append(parts, "DirName:"+name.String())
		} else {
			parts = append(parts, "DirName:"+hex.EncodeToString(dn))
		}
	}
	for _, oid := range g.RegisteredIDs {
		parts = append(parts, "RID:"+oid.String())
	}
	for _, o := range g.Other {
		parts = append(parts, fmt.Sprintf("[%d]:%s", o.Tag, hex.EncodeToString(o.Raw)))
	}
	return strings.Join(parts, ", ")
}

func colonHex(b []byte) string {
	parts := make([]string, len(b))
	for i, c := range b {
		parts[i] = fmt.Sprintf("%02X", c)
	}
	return strings.Join(parts, ":")
}
