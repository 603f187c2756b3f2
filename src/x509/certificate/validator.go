// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509cert

import (
	"fmt"
	"sync"
	"time"

	"github.com/H0llyW00dzZ/x509-path-validator/src/logger"
	x509sig "github.com/H0llyW00dzZ/x509-path-validator/src/x509/signature"
)

// ValidatorConfig holds the collaborators of a [Validator]. Nil fields take
// their defaults.
type ValidatorConfig struct {
	// CurrentTime returns the time validity periods are checked against.
	// Defaults to time.Now.
	CurrentTime func() time.Time
	// Registry resolves signature algorithms. Defaults to x509sig.DefaultRegistry().
	Registry *x509sig.Registry
	// Logger receives a trace of each validation step. Defaults to a silent logger.
	Logger logger.Logger
}

// Validator checks validity periods, signatures and certificate paths.
// It holds no mutable state and is safe for concurrent use.
type Validator struct {
	now      func() time.Time
	registry *x509sig.Registry
	log      logger.Logger
}

// NewValidator creates a validator from config, which may be nil.
func NewValidator(config *ValidatorConfig) *Validator {
	v := &Validator{
		now:      time.Now,
		registry: x509sig.DefaultRegistry(),
		log:      logger.Discard(),
	}
	if config == nil {
		return v
	}
	if config.CurrentTime != nil {
		v.now = config.CurrentTime
	}
	if config.Registry != nil {
		v.registry = config.Registry
	}
	if config.Logger != nil {
		v.log = config.Logger
	}
	return v
}

var defaultValidator = sync.OnceValue(func() *Validator { return NewValidator(nil) })

// ValidatePeriod checks the certificate's validity period against the wall clock.
func (c *Certificate) ValidatePeriod() error { return defaultValidator().ValidatePeriod(c) }

// VerifySignature checks that c, acting as issuer, signed subject.
func (c *Certificate) VerifySignature(subject *Certificate) error {
	return defaultValidator().VerifySignature(c, subject)
}

// ValidatePeriod checks that the current time falls inside the certificate's
// validity period. Both bounds are inclusive.
func (v *Validator) ValidatePeriod(cert *Certificate) error {
	if cert == nil {
		return ErrNilCertificate
	}
	return v.checkPeriod(cert, v.now())
}

func (v *Validator) checkPeriod(cert *Certificate, now time.Time) error {
	validity := cert.Validity()
	v.log.Printf("validating certificate period: subject=%q notBefore=%s notAfter=%s",
		cert.Subject(), validity.NotBefore.Format(time.RFC3339), validity.NotAfter.Format(time.RFC3339))

	if now.Before(validity.NotBefore) {
		return fmt.Errorf("%w: valid from %s", ErrCertificateImmature, validity.NotBefore.UTC().Format(time.RFC3339))
	}
	if now.After(validity.NotAfter) {
		return fmt.Errorf("%w: expired at %s", ErrCertificateExpired, validity.NotAfter.UTC().Format(time.RFC3339))
	}
	return nil
}

// ValidateChainPeriod checks the leaf and then every intermediate in order,
// stopping at the first failure. All checks use a single reading of the clock.
func (v *Validator) ValidateChainPeriod(chain *Chain) error {
	if chain.empty() {
		return ErrLeafRequired
	}

	now := v.now()
	if err := v.checkPeriod(chain.leaf, now); err != nil {
		return fmt.Errorf("leaf %q: %w", chain.leaf.Subject(), err)
	}
	for i, cert := range chain.intermediates {
		if err := v.checkPeriod(cert, now); err != nil {
			return fmt.Errorf("intermediate %d %q: %w", i, cert.Subject(), err)
		}
	}
	return nil
}

// VerifySignature checks that subject was signed by the key of issuer.
//
// The issuer key algorithm must be the one the subject's signature algorithm is
// bound to; otherwise [x509sig.ErrAlgorithmMismatch] is returned and no
// cryptographic work is done.
func (v *Validator) VerifySignature(issuer, subject *Certificate) error {
	if issuer == nil || subject == nil {
		return ErrNilCertificate
	}
	v.log.Printf("checking signature: subject=%q algorithm=%s issuerKey=%s",
		subject.Subject(), subject.fields.sigAlg, issuer.publicKey.Algorithm)

	return v.registry.Verify(
		issuer.publicKey.Algorithm,
		issuer.publicKey.PublicKey,
		subject.fields.sigAlg,
		subject.fields.tbs,
		subject.fields.signature,
	)
}
