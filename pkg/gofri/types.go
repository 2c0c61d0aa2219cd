package gofri

import (
	"math/big"

	"github.com/actuallyachraf/gofri/internal/gofri/core"
	"github.com/actuallyachraf/gofri/internal/gofri/fri"
	"github.com/actuallyachraf/gofri/internal/gofri/transcript"
)

// Field is a prime field F_p.
type Field = core.Field

// FieldElement is the canonical representative of a value in [0, p).
type FieldElement = core.FieldElement

// Polynomial is a univariate polynomial over a Field.
type Polynomial = core.Polynomial

// Multivariate is a polynomial in several variables over a Field.
type Multivariate = core.Multivariate

// Point is an (x, y) pair used for interpolation and colinearity testing.
type Point = core.Point

// Merkle is a power-of-two binary Merkle commitment scheme.
type Merkle = core.Merkle

// Transcript is a Fiat-Shamir transcript: an append-only object log with a
// read cursor, used to turn FRI into a non-interactive proof.
type Transcript = transcript.Transcript

// FRI is one proof session's commit/query/verify protocol.
type FRI = fri.FRI

// IndexedValue pairs a top-level domain index with the codeword value
// revealed there during verification.
type IndexedValue = fri.IndexedValue

// NewField constructs F_p. p must be greater than 2.
func NewField(p *big.Int) (*Field, error) {
	return core.NewField(p)
}

// CanonicalField returns the canonical prime field p = 1 + 407*2^119, the
// one field for which Generator and PrimitiveNthRoot are known.
func CanonicalField() *Field {
	return core.DefaultField
}

// NewPolynomial builds a polynomial from its coefficients, lowest degree
// first.
func NewPolynomial(coefficients []*FieldElement) (*Polynomial, error) {
	return core.NewPolynomial(coefficients)
}

// InterpolateDomain returns the unique polynomial of degree < len(domain)
// passing through (domain[i], values[i]) for every i.
func InterpolateDomain(domain, values []*FieldElement) (*Polynomial, error) {
	return core.InterpolateDomain(domain, values)
}

// ZerofierDomain returns the unique monic polynomial vanishing exactly on
// domain.
func ZerofierDomain(domain []*FieldElement) *Polynomial {
	return core.ZerofierDomain(domain)
}

// TestColinearity reports whether three points with distinct x-coordinates
// lie on a common line.
func TestColinearity(points [3]Point) (bool, error) {
	return core.TestColinearity(points)
}

// NewTranscript returns an empty Fiat-Shamir transcript.
func NewTranscript() *Transcript {
	return transcript.New()
}

// New constructs a FRI session over the coset domain offset*<omega>, omega
// a primitive domainLength-th root of unity.
func New(offset, omega *FieldElement, domainLength, expansionFactor, numColinearityTests int) (*FRI, error) {
	return fri.New(offset, omega, domainLength, expansionFactor, numColinearityTests)
}
