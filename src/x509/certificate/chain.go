// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509cert

import (
	"iter"
	"slices"
)

// Chain is a leaf certificate and the intermediates that lead to it.
// Intermediates are ordered issuer-most first, so the last one issued the leaf.
//
// A Chain is built with [NewChainBuilder] and never changes afterwards.
type Chain struct {
	intermediates []*Certificate
	leaf          *Certificate
}

// empty reports whether c has no leaf, as a nil or zero-value Chain does.
func (c *Chain) empty() bool { return c == nil || c.leaf == nil }

// Leaf returns the end-entity certificate.
func (c *Chain) Leaf() *Certificate { return c.leaf }

// Intermediates returns a copy of the intermediate certificates.
func (c *Chain) Intermediates() []*Certificate { return slices.Clone(c.intermediates) }

// Len returns the number of certificates in the chain, leaf included.
func (c *Chain) Len() int {
	if c.empty() {
		return 0
	}
	return len(c.intermediates) + 1
}

// All yields the intermediates in order followed by the leaf.
func (c *Chain) All() iter.Seq2[int, *Certificate] {
	return func(yield func(int, *Certificate) bool) {
		if c.empty() {
			return
		}
		for i, cert := range c.intermediates {
			if !yield(i, cert) {
				return
			}
		}
		yield(len(c.intermediates), c.leaf)
	}
}

// Backward yields the leaf followed by the intermediates in reverse order.
// Indexes match those of [Chain.All].
func (c *Chain) Backward() iter.Seq2[int, *Certificate] {
	return func(yield func(int, *Certificate) bool) {
		if c.empty() || !yield(len(c.intermediates), c.leaf) {
			return
		}
		for i := len(c.intermediates) - 1; i >= 0; i-- {
			if !yield(i, c.intermediates[i]) {
				return
			}
		}
	}
}

func (c *Chain) ders() [][]byte {
	if c.empty() {
		return nil
	}
	ders := make([][]byte, 0, c.Len())
	for _, cert := range c.All() {
		ders = append(ders, cert.DER())
	}
	return ders
}

// PEM encodes the chain as a PEM bundle, intermediates issuer-most first and
// the leaf last. A Chain without a leaf encodes to nothing.
func (c *Chain) PEM() []byte { return codec.EncodeMultiplePEM(c.ders()) }

// DER encodes the chain as concatenated DER certificates in the order of [Chain.PEM].
func (c *Chain) DER() []byte { return codec.EncodeMultipleDER(c.ders()) }

// ValidatePeriod checks the validity period of every certificate in the chain
// against the wall clock.
func (c *Chain) ValidatePeriod() error { return defaultValidator().ValidateChainPeriod(c) }

// ValidatePath validates the chain against anchor using the wall clock and the
// default signature registry.
func (c *Chain) ValidatePath(anchor *Certificate) error {
	return defaultValidator().ValidatePath(c, anchor)
}

// ChainFromBundle builds a chain from certificates in bundle order.
//
// By default the bundle lists intermediates issuer-most first and the leaf
// last. With leafFirst the bundle runs from the leaf towards the anchor, as
// TLS servers send it, and the intermediates are reversed.
func ChainFromBundle(bundle []*Certificate, leafFirst bool) (*Chain, error) {
	if len(bundle) == 0 {
		return nil, ErrLeafRequired
	}
	if leafFirst {
		intermediates := slices.Clone(bundle[1:])
		slices.Reverse(intermediates)
		return NewChainBuilder().SetLeaf(bundle[0]).SetIntermediates(intermediates...).Build()
	}
	last := len(bundle) - 1
	return NewChainBuilder().SetLeaf(bundle[last]).SetIntermediates(bundle[:last]...).Build()
}

// ChainBuilder starts building a [Chain].
type ChainBuilder struct{}

// NewChainBuilder returns the first stage of the chain builder.
func NewChainBuilder() *ChainBuilder { return &ChainBuilder{} }

// SetLeaf sets the end-entity certificate.
func (b *ChainBuilder) SetLeaf(leaf *Certificate) *IntermediatesStage {
	return &IntermediatesStage{leaf: leaf}
}

// IntermediatesStage is the builder stage after the leaf has been set.
type IntermediatesStage struct {
	leaf *Certificate
}

// SetIntermediates sets the intermediates, issuer-most first. It may be called
// with no arguments for a chain whose leaf is issued directly by the anchor.
func (s *IntermediatesStage) SetIntermediates(certs ...*Certificate) *ChainStage {
	return &ChainStage{leaf: s.leaf, intermediates: slices.Clone(certs)}
}

// Build builds a chain without intermediates.
func (s *IntermediatesStage) Build() (*Chain, error) {
	return s.SetIntermediates().Build()
}

// ChainStage is the final builder stage.
type ChainStage struct {
	leaf          *Certificate
	intermediates []*Certificate
}

// AddIntermediates appends intermediates closer to the leaf and returns a new
// stage; the receiver is left unchanged.
func (s *ChainStage) AddIntermediates(certs ...*Certificate) *ChainStage {
	return &ChainStage{
		leaf:          s.leaf,
		intermediates: append(slices.Clip(s.intermediates), certs...),
	}
}

// Build returns the chain. It fails with [ErrLeafRequired] when no leaf was set
// and with [ErrNilCertificate] when an intermediate is nil.
func (s *ChainStage) Build() (*Chain, error) {
	if s.leaf == nil {
		return nil, ErrLeafRequired
	}
	for _, cert := range s.intermediates {
		if cert == nil {
			return nil, ErrNilCertificate
		}
	}
	return &Chain{
		intermediates: slices.Clone(s.intermediates),
		leaf:          s.leaf,
	}, nil
}
