package core

import (
	"fmt"
	"strings"
)

// Polynomial is an ordered sequence of coefficients c_0, c_1, ... in a
// prime field, interpreted as sum(c_i * x^i). Trailing zero coefficients
// are always trimmed away, so the zero polynomial is stored as an empty
// slice and reports Degree() == -1.
type Polynomial struct {
	coefficients []*FieldElement
	field        *Field
}

// ErrNonExactDivision is returned by Div (the "/" contract) when the
// remainder of an exact division is non-zero.
var ErrNonExactDivision = fmt.Errorf("gofri: non-exact polynomial division")

// NewPolynomial builds a polynomial from its coefficients, trimming trailing
// zeros. field is taken from the first element if coefficients is
// non-empty; an empty slice needs an explicit field via NewZeroPolynomial.
func NewPolynomial(coefficients []*FieldElement) (*Polynomial, error) {
	if len(coefficients) == 0 {
		return nil, fmt.Errorf("%w: polynomial needs a field; use NewZeroPolynomial", ErrBadParameter)
	}
	field := coefficients[0].Field()
	for i, c := range coefficients {
		if !c.Field().Equals(field) {
			return nil, fmt.Errorf("%w: coefficient %d is from a different field", ErrBadParameter, i)
		}
	}
	return &Polynomial{coefficients: trimTrailingZeros(coefficients), field: field}, nil
}

// NewZeroPolynomial returns the zero polynomial over field (degree -1).
func NewZeroPolynomial(field *Field) *Polynomial {
	return &Polynomial{coefficients: nil, field: field}
}

// NewPolynomialFromInt64 builds a polynomial from small integer coefficients.
func NewPolynomialFromInt64(field *Field, coefficients []int64) (*Polynomial, error) {
	if len(coefficients) == 0 {
		return NewZeroPolynomial(field), nil
	}
	elems := make([]*FieldElement, len(coefficients))
	for i, c := range coefficients {
		elems[i] = field.NewElementFromInt64(c)
	}
	return NewPolynomial(elems)
}

func trimTrailingZeros(coefficients []*FieldElement) []*FieldElement {
	last := -1
	for i, c := range coefficients {
		if !c.IsZero() {
			last = i
		}
	}
	if last == -1 {
		return nil
	}
	trimmed := make([]*FieldElement, last+1)
	copy(trimmed, coefficients[:last+1])
	return trimmed
}

// Degree returns the index of the highest non-zero coefficient, or -1 for
// the zero polynomial.
func (p *Polynomial) Degree() int {
	return len(p.coefficients) - 1
}

// Field returns the field p is defined over.
func (p *Polynomial) Field() *Field { return p.field }

// IsZero reports whether p is the zero polynomial.
func (p *Polynomial) IsZero() bool { return len(p.coefficients) == 0 }

// Coefficient returns the coefficient of x^degree, or zero if degree is out
// of range.
func (p *Polynomial) Coefficient(degree int) *FieldElement {
	if degree < 0 || degree >= len(p.coefficients) {
		return p.field.Zero()
	}
	return p.coefficients[degree]
}

// LeadingCoefficient returns the coefficient of the highest-degree term.
// Undefined (returns the field's zero) for the zero polynomial.
func (p *Polynomial) LeadingCoefficient() *FieldElement {
	if p.IsZero() {
		return p.field.Zero()
	}
	return p.coefficients[len(p.coefficients)-1]
}

// Coefficients returns a defensive copy of p's coefficients, lowest degree
// first.
func (p *Polynomial) Coefficients() []*FieldElement {
	out := make([]*FieldElement, len(p.coefficients))
	copy(out, p.coefficients)
	return out
}

// Equal compares by degree-truncated content: arithmetic results are equal
// regardless of how they got padded with trailing zeros along the way.
func (p *Polynomial) Equal(other *Polynomial) bool {
	if p.Degree() != other.Degree() {
		return false
	}
	for i := range p.coefficients {
		if !p.coefficients[i].Equal(other.coefficients[i]) {
			return false
		}
	}
	return true
}

// Neg returns -p.
func (p *Polynomial) Neg() *Polynomial {
	coeffs := make([]*FieldElement, len(p.coefficients))
	for i, c := range p.coefficients {
		coeffs[i] = c.Neg()
	}
	return &Polynomial{coefficients: trimTrailingZeros(coeffs), field: p.field}
}

// Add returns p + other.
func (p *Polynomial) Add(other *Polynomial) *Polynomial {
	n := len(p.coefficients)
	if len(other.coefficients) > n {
		n = len(other.coefficients)
	}
	coeffs := make([]*FieldElement, n)
	for i := 0; i < n; i++ {
		coeffs[i] = p.Coefficient(i).Add(other.Coefficient(i))
	}
	return &Polynomial{coefficients: trimTrailingZeros(coeffs), field: p.field}
}

// Sub returns p - other.
func (p *Polynomial) Sub(other *Polynomial) *Polynomial {
	return p.Add(other.Neg())
}

// Mul returns p * other via schoolbook convolution, skipping zero
// coefficients on the outer loop for sparsity.
func (p *Polynomial) Mul(other *Polynomial) *Polynomial {
	if p.IsZero() || other.IsZero() {
		return NewZeroPolynomial(p.field)
	}
	coeffs := make([]*FieldElement, len(p.coefficients)+len(other.coefficients)-1)
	for i := range coeffs {
		coeffs[i] = p.field.Zero()
	}
	for i, a := range p.coefficients {
		if a.IsZero() {
			continue
		}
		for j, b := range other.coefficients {
			coeffs[i+j] = coeffs[i+j].Add(a.Mul(b))
		}
	}
	return &Polynomial{coefficients: trimTrailingZeros(coeffs), field: p.field}
}

// MulScalar returns p scaled by a single field element.
func (p *Polynomial) MulScalar(scalar *FieldElement) *Polynomial {
	coeffs := make([]*FieldElement, len(p.coefficients))
	for i, c := range p.coefficients {
		coeffs[i] = c.Mul(scalar)
	}
	return &Polynomial{coefficients: trimTrailingZeros(coeffs), field: p.field}
}

// Pow raises p to a non-negative integer power by square-and-multiply.
// pow(zero, 0) == 1.
func (p *Polynomial) Pow(exponent uint64) *Polynomial {
	one, _ := NewPolynomial([]*FieldElement{p.field.One()})
	result := one
	base := p
	for exponent > 0 {
		if exponent&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exponent >>= 1
	}
	return result
}

// Compose returns p(other(x)) by summing c_i * other^i over a running power
// of other.
func (p *Polynomial) Compose(other *Polynomial) *Polynomial {
	result := NewZeroPolynomial(p.field)
	one, _ := NewPolynomial([]*FieldElement{p.field.One()})
	power := one
	for i, c := range p.coefficients {
		if i > 0 {
			power = power.Mul(other)
		}
		result = result.Add(power.MulScalar(c))
	}
	return result
}

// Divide performs polynomial long division, returning (quotient,
// remainder) such that p == quotient*other + remainder and
// remainder.Degree() < other.Degree(). Fails with ErrDivisionByZero if
// other is the zero polynomial.
func (p *Polynomial) Divide(other *Polynomial) (quotient, remainder *Polynomial, err error) {
	if other.IsZero() {
		return nil, nil, ErrDivisionByZero
	}
	if p.Degree() < other.Degree() {
		return NewZeroPolynomial(p.field), p, nil
	}

	remCoeffs := make([]*FieldElement, len(p.coefficients))
	copy(remCoeffs, p.coefficients)
	remainder, _ = NewPolynomial(remCoeffs)

	quotientCoeffs := make([]*FieldElement, p.Degree()-other.Degree()+1)
	for i := range quotientCoeffs {
		quotientCoeffs[i] = p.field.Zero()
	}
	leadOther := other.LeadingCoefficient()

	for remainder.Degree() >= other.Degree() {
		coeff, divErr := remainder.LeadingCoefficient().Div(leadOther)
		if divErr != nil {
			return nil, nil, divErr
		}
		shift := remainder.Degree() - other.Degree()
		quotientCoeffs[shift] = coeff

		shiftPoly := make([]*FieldElement, shift+1)
		for i := 0; i < shift; i++ {
			shiftPoly[i] = p.field.Zero()
		}
		shiftPoly[shift] = coeff
		subtrahend, _ := NewPolynomial(shiftPoly)
		subtrahend = subtrahend.Mul(other)
		remainder = remainder.Sub(subtrahend)
	}

	quotient, _ = NewPolynomial(quotientCoeffs)
	return quotient, remainder, nil
}

// Div is the exact-division contract: it asserts the remainder is zero and
// fails with ErrNonExactDivision otherwise.
func (p *Polynomial) Div(other *Polynomial) (*Polynomial, error) {
	quotient, remainder, err := p.Divide(other)
	if err != nil {
		return nil, err
	}
	if !remainder.IsZero() {
		return nil, ErrNonExactDivision
	}
	return quotient, nil
}

// Mod returns only the remainder of Divide.
func (p *Polynomial) Mod(other *Polynomial) (*Polynomial, error) {
	_, remainder, err := p.Divide(other)
	return remainder, err
}

// Evaluate computes p(x) by running-power accumulation: an explicit power
// ladder equivalent to Horner's method.
func (p *Polynomial) Evaluate(x *FieldElement) *FieldElement {
	result := p.field.Zero()
	power := p.field.One()
	for i, c := range p.coefficients {
		if i > 0 {
			power = power.Mul(x)
		}
		result = result.Add(c.Mul(power))
	}
	return result
}

// EvaluateDomain maps Evaluate over every point of a domain.
func (p *Polynomial) EvaluateDomain(domain []*FieldElement) []*FieldElement {
	out := make([]*FieldElement, len(domain))
	for i, x := range domain {
		out[i] = p.Evaluate(x)
	}
	return out
}

// InterpolateDomain returns the unique polynomial of degree < len(domain)
// with f(domain[i]) == values[i] for all i, via Lagrange interpolation.
// domain's elements must be pairwise distinct; behavior is undefined
// otherwise. Fails with ErrBadParameter if the lengths mismatch or domain
// is empty.
func InterpolateDomain(domain, values []*FieldElement) (*Polynomial, error) {
	if len(domain) != len(values) {
		return nil, fmt.Errorf("%w: domain and values must have equal length", ErrBadParameter)
	}
	if len(domain) == 0 {
		return nil, fmt.Errorf("%w: cannot interpolate zero points", ErrBadParameter)
	}
	field := domain[0].Field()
	x, _ := NewPolynomial([]*FieldElement{field.Zero(), field.One()})

	acc := NewZeroPolynomial(field)
	for i := range domain {
		term, _ := NewPolynomial([]*FieldElement{values[i]})
		for j := range domain {
			if i == j {
				continue
			}
			denom := domain[i].Sub(domain[j])
			invDenom, err := field.One().Div(denom)
			if err != nil {
				return nil, err
			}
			linear, _ := NewPolynomial([]*FieldElement{domain[j]})
			factor := x.Sub(linear).MulScalar(invDenom)
			term = term.Mul(factor)
		}
		acc = acc.Add(term)
	}
	return acc, nil
}

// ZerofierDomain returns the unique monic polynomial vanishing exactly on
// domain: the product of (x - d) over every d in domain.
func ZerofierDomain(domain []*FieldElement) *Polynomial {
	field := domain[0].Field()
	x, _ := NewPolynomial([]*FieldElement{field.Zero(), field.One()})
	acc, _ := NewPolynomial([]*FieldElement{field.One()})
	for _, d := range domain {
		linear, _ := NewPolynomial([]*FieldElement{d})
		acc = acc.Mul(x.Sub(linear))
	}
	return acc
}

// Scale returns p(factor*x): coefficient c_i is scaled by factor^i.
func (p *Polynomial) Scale(factor *FieldElement) *Polynomial {
	coeffs := make([]*FieldElement, len(p.coefficients))
	power := p.field.One()
	for i, c := range p.coefficients {
		if i > 0 {
			power = power.Mul(factor)
		}
		coeffs[i] = c.Mul(power)
	}
	return &Polynomial{coefficients: trimTrailingZeros(coeffs), field: p.field}
}

// TestColinearity reports whether three points with distinct x-coordinates
// lie on a common line: true iff the polynomial interpolated through them
// has degree exactly 1.
func TestColinearity(points [3]Point) (bool, error) {
	domain := []*FieldElement{points[0].X, points[1].X, points[2].X}
	values := []*FieldElement{points[0].Y, points[1].Y, points[2].Y}
	poly, err := InterpolateDomain(domain, values)
	if err != nil {
		return false, err
	}
	return poly.Degree() == 1, nil
}

// Point is an (x, y) pair used for interpolation and colinearity testing.
type Point struct {
	X *FieldElement
	Y *FieldElement
}

// String renders p in descending-degree term notation.
func (p *Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	var terms []string
	for i := p.Degree(); i >= 0; i-- {
		c := p.Coefficient(i)
		if c.IsZero() {
			continue
		}
		switch {
		case i == 0:
			terms = append(terms, c.String())
		case i == 1:
			if c.IsOne() {
				terms = append(terms, "x")
			} else {
				terms = append(terms, c.String()+"x")
			}
		default:
			if c.IsOne() {
				terms = append(terms, fmt.Sprintf("x^%d", i))
			} else {
				terms = append(terms, fmt.Sprintf("%sx^%d", c.String(), i))
			}
		}
	}
	return strings.Join(terms, " + ")
}
