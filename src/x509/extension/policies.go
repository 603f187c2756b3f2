// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509ext

import (
	"bytes"
	"encoding/asn1"
	"errors"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// Policy qualifier identifiers (RFC 5280 section 4.2.1.4).
var (
	OIDQualifierCPS        = asn1.ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 2, 1}
	OIDQualifierUserNotice = asn1.ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 2, 2}
	OIDAnyPolicy           = asn1.ObjectIdentifier{2, 5, 29, 32, 0}
)

// PolicyQualifier is one PolicyQualifierInfo.
type PolicyQualifier struct {
	ID asn1.ObjectIdentifier
	// CPSURI is set for id-qt-cps qualifiers.
	CPSURI string
	// Raw is the DER of the qualifier element.
	Raw []byte
}

// PolicyInformation is one policy asserted by the certificate.
type PolicyInformation struct {
	Policy     asn1.ObjectIdentifier
	Qualifiers []PolicyQualifier
}

// CertificatePolicies lists the policies under which the certificate was issued.
type CertificatePolicies struct {
	Policies []PolicyInformation
}

func (*CertificatePolicies) OID() asn1.ObjectIdentifier { return OIDCertificatePolicies }
func (*CertificatePolicies) Kind() Kind                 { return KindCertificatePolicies }
func (*CertificatePolicies) sealed()                    {}

func decodeCertificatePolicies(der cryptobyte.String) (Extension, error) {
	var seq cryptobyte.String
	if !der.ReadASN1(&seq, cbasn1.SEQUENCE) {
		return nil, errors.New("expected SEQUENCE")
	}
	if !der.Empty() {
		return nil, errTrailingData
	}
	cp := &CertificatePolicies{}
	for !seq.Empty() {
		var info cryptobyte.String
		if !seq.ReadASN1(&info, cbasn1.SEQUENCE) {
			return nil, errors.New("invalid PolicyInformation")
		}
		policy, err := readPolicyInformation(info)
		if err != nil {
			return nil, err
		}
		cp.Policies = append(cp.Policies, policy)
	}
	return cp, nil
}

func readPolicyInformation(info cryptobyte.String) (PolicyInformation, error) {
	var policy PolicyInformation
	if !info.ReadASN1ObjectIdentifier(&policy.Policy) {
		return policy, errors.New("invalid policyIdentifier")
	}
	if info.Empty() {
		return policy, nil
	}
	var qualifiers cryptobyte.String
	if !info.ReadASN1(&qualifiers, cbasn1.SEQUENCE) || !info.Empty() {
		return policy, fmt.Errorf("policy %s: invalid policyQualifiers", policy.Policy)
	}
	for !qualifiers.Empty() {
		var element, body cryptobyte.String
		if !qualifiers.ReadASN1Element(&element, cbasn1.SEQUENCE) {
			return policy, fmt.Errorf("policy %s: invalid PolicyQualifierInfo", policy.Policy)
		}
		q := PolicyQualifier{Raw: bytes.Clone(element)}
		if !element.ReadASN1(&body, cbasn1.SEQUENCE) || !body.ReadASN1ObjectIdentifier(&q.ID) {
			return policy, fmt.Errorf("policy %s: invalid policyQualifierId", policy.Policy)
		}
		if q.ID.Equal(OIDQualifierCPS) {
			var uri cryptobyte.String
			if !body.ReadASN1(&uri, cbasn1.IA5String) || !body.Empty() {
				return policy, fmt.Errorf("policy %s: invalid CPS URI", policy.Policy)
			}
			s, err := ia5(uri)
			if err != nil {
				return policy, fmt.Errorf("policy %s: CPS URI: %w", policy.Policy, err)
			}
			q.CPSURI = s
		}
		policy.Qualifiers = append(policy.Qualifiers, q)
	}
	return policy, nil
}
