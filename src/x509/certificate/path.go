// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509cert

import (
	"bytes"
	"fmt"

	x509names "github.com/H0llyW00dzZ/x509-path-validator/src/internal/x509/names"
	x509ext "github.com/H0llyW00dzZ/x509-path-validator/src/x509/extension"
)

// ValidatePath validates chain against the trust anchor.
//
// The walk runs over anchor, the intermediates in order, then the leaf. Every
// certificate is checked against the current time. For each issuer and the
// certificate it issued, in this order:
//
//  1. The issuer carries Basic Constraints with the cA flag set.
//  2. If the issuer carries Key Usage, keyCertSign is set.
//  3. The subject's issuer name matches the issuer's subject name.
//  4. The subject's Authority Key Identifier, if any, matches the issuer's
//     Subject Key Identifier and serial number.
//  5. The subject's signature verifies with the issuer's key.
//
// Finally every path length constraint is checked against the number of
// non-self-issued intermediates that follow it.
//
// Parameters:
//   - chain: The leaf and its intermediates
//   - anchor: The trusted certificate that issued the first intermediate, or the
//     leaf when there are none
//
// Returns:
//   - error: nil if the path is valid, otherwise a [*PathError] wrapping the
//     first failure
func (v *Validator) ValidatePath(chain *Chain, anchor *Certificate) error {
	if chain.empty() {
		return ErrLeafRequired
	}
	if anchor == nil {
		return ErrNilCertificate
	}

	path := make([]*Certificate, 0, chain.Len()+1)
	path = append(path, anchor)
	for _, cert := range chain.All() {
		path = append(path, cert)
	}

	v.log.Printf("validating path: anchor=%q leaf=%q intermediates=%d",
		anchor.Subject(), chain.leaf.Subject(), len(chain.intermediates))

	now := v.now()
	constraints := make([]*int, 0, len(path)-1)

	for i, current := range path {
		if err := v.checkPeriod(current, now); err != nil {
			return pathError(i, current, err)
		}
		if i == len(path)-1 {
			break
		}

		next := path[i+1]
		pathLen, err := v.checkIssuer(i, current)
		if err != nil {
			return pathError(i, current, err)
		}
		constraints = append(constraints, pathLen)

		if err := v.checkLinkage(current, next); err != nil {
			return pathError(i+1, next, err)
		}
		if err := v.VerifySignature(current, next); err != nil {
			return pathError(i+1, next, err)
		}
	}

	if err := v.checkPathLength(path, constraints); err != nil {
		return err
	}

	v.log.Printf("path valid: leaf=%q", chain.leaf.Subject())
	return nil
}

// checkIssuer verifies that cert may issue certificates and returns its path
// length constraint.
func (v *Validator) checkIssuer(position int, cert *Certificate) (*int, error) {
	v.log.Printf("checking basic constraints: position=%d subject=%q", position, cert.Subject())

	bc, ok := cert.BasicConstraints()
	if !ok {
		return nil, fmt.Errorf("%w: basic constraints extension missing", ErrBasicConstraintsViolation)
	}
	if !bc.CA {
		return nil, fmt.Errorf("%w: not a CA", ErrBasicConstraintsViolation)
	}

	if ku, ok := cert.KeyUsage(); ok {
		v.log.Printf("checking key usage: position=%d usage=%q", position, ku.Usage)
		if !ku.Usage.Contains(x509ext.KeyUsageKeyCertSign) {
			return nil, fmt.Errorf("%w: key usage is %s", ErrKeyUsageViolation, ku.Usage)
		}
	}

	return bc.PathLenConstraint, nil
}

// checkLinkage verifies that the names and key identifiers of subject point
// at issuer.
func (v *Validator) checkLinkage(issuer, subject *Certificate) error {
	v.log.Printf("checking name linkage: issuer=%q subject=%q", issuer.Subject(), subject.Subject())
	if !x509names.Equal(issuer.fields.rawSubject, subject.fields.rawIssuer) {
		return fmt.Errorf("%w: expected issuer %q, got %q", ErrIssuerSubjectMismatch, issuer.Subject(), subject.Issuer())
	}

	aki, ok := subject.AuthorityKeyIdentifier()
	if !ok {
		return nil
	}
	v.log.Printf("checking authority key identifier: subject=%q", subject.Subject())

	if aki.KeyIdentifier != nil {
		if ski, ok := issuer.SubjectKeyIdentifier(); ok && !bytes.Equal(aki.KeyIdentifier, ski.KeyIdentifier) {
			return fmt.Errorf("%w: key identifier %X, issuer has %X",
				ErrAuthorityKeyIdentifierMismatch, aki.KeyIdentifier, ski.KeyIdentifier)
		}
	}
	if aki.AuthorityCertSerialNumber != nil && aki.AuthorityCertSerialNumber.Cmp(issuer.fields.serialNumber) != 0 {
		return fmt.Errorf("%w: serial %s, issuer has %s",
			ErrAuthorityKeyIdentifierMismatch, aki.AuthorityCertSerialNumber, issuer.fields.serialNumber)
	}
	return nil
}

// checkPathLength enforces RFC 5280 section 6.1.4(l): a constraint of n at
// position i allows at most n non-self-issued intermediates after i. The
// leaf is not counted.
func (v *Validator) checkPathLength(path []*Certificate, constraints []*int) error {
	for i, limit := range constraints {
		if limit == nil {
			continue
		}
		following := 0
		for j := i + 1; j < len(constraints); j++ {
			if !path[j].IsSelfIssued() {
				following++
			}
		}
		v.log.Printf("checking path length: position=%d constraint=%d following=%d", i, *limit, following)
		if following > *limit {
			return pathError(i, path[i], fmt.Errorf("%w: path length constraint %d exceeded by %d intermediates",
				ErrBasicConstraintsViolation, *limit, following))
		}
	}
	return nil
}

func pathError(index int, cert *Certificate, err error) error {
	return &PathError{Index: index, Subject: cert.Subject(), Err: err}
}
