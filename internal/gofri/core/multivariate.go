package core

// Multivariate is a polynomial in several variables, represented as a map
// from exponent tuples to coefficients. Constructors store only non-zero
// coefficients; Add, Sub and Mul do not remove a term whose coefficient
// cancels to zero, so the map can hold zero-coefficient terms (IsZero and
// Evaluate treat them as absent). Padding a shorter tuple with trailing
// zeros is semantically a no-op, so Add and Mul pad tuples of different
// lengths to a common width before combining them.
//
// This algebra is not exercised by FRI itself; it backs AIR-style
// constraint systems, which are out of scope here, but is kept as part of
// the polynomial core per the algebra-layer contract.
type Multivariate struct {
	field *Field
	terms map[string]multivariateTerm
}

type multivariateTerm struct {
	exponents []uint64
	coeff     *FieldElement
}

func exponentKey(exponents []uint64) string {
	b := make([]byte, 0, len(exponents)*4)
	for _, e := range exponents {
		for e > 0 {
			b = append(b, byte(e), '.')
			e >>= 8
		}
		b = append(b, '|')
	}
	return string(b)
}

func padExponents(e []uint64, n int) []uint64 {
	if len(e) >= n {
		out := make([]uint64, len(e))
		copy(out, e)
		return out
	}
	out := make([]uint64, n)
	copy(out, e)
	return out
}

// NewMultivariateConstant returns the constant multivariate polynomial c.
func NewMultivariateConstant(c *FieldElement) *Multivariate {
	m := &Multivariate{field: c.Field(), terms: map[string]multivariateTerm{}}
	if !c.IsZero() {
		m.terms[exponentKey([]uint64{0})] = multivariateTerm{exponents: []uint64{0}, coeff: c}
	}
	return m
}

// NewMultivariateZero returns the zero multivariate polynomial over field.
func NewMultivariateZero(field *Field) *Multivariate {
	return &Multivariate{field: field, terms: map[string]multivariateTerm{}}
}

// Variables returns the n projection polynomials x_0, ..., x_{n-1} over
// field.
func Variables(n int, field *Field) []*Multivariate {
	vars := make([]*Multivariate, n)
	for i := 0; i < n; i++ {
		exponents := make([]uint64, n)
		exponents[i] = 1
		m := &Multivariate{field: field, terms: map[string]multivariateTerm{}}
		m.terms[exponentKey(exponents)] = multivariateTerm{exponents: exponents, coeff: field.One()}
		vars[i] = m
	}
	return vars
}

// IsZero reports whether every term of m has a zero coefficient.
func (m *Multivariate) IsZero() bool {
	for _, t := range m.terms {
		if !t.coeff.IsZero() {
			return false
		}
	}
	return true
}

func (m *Multivariate) numVariables() int {
	n := 0
	for _, t := range m.terms {
		if len(t.exponents) > n {
			n = len(t.exponents)
		}
	}
	return n
}

// Add returns m + other.
func (m *Multivariate) Add(other *Multivariate) *Multivariate {
	n := m.numVariables()
	if other.numVariables() > n {
		n = other.numVariables()
	}
	result := map[string]multivariateTerm{}
	accumulate := func(terms map[string]multivariateTerm) {
		for _, t := range terms {
			exponents := padExponents(t.exponents, n)
			key := exponentKey(exponents)
			if existing, ok := result[key]; ok {
				result[key] = multivariateTerm{exponents: exponents, coeff: existing.coeff.Add(t.coeff)}
			} else {
				result[key] = multivariateTerm{exponents: exponents, coeff: t.coeff}
			}
		}
	}
	accumulate(m.terms)
	accumulate(other.terms)
	return &Multivariate{field: m.field, terms: result}
}

// Neg returns -m.
func (m *Multivariate) Neg() *Multivariate {
	result := map[string]multivariateTerm{}
	for key, t := range m.terms {
		result[key] = multivariateTerm{exponents: t.exponents, coeff: t.coeff.Neg()}
	}
	return &Multivariate{field: m.field, terms: result}
}

// Sub returns m - other.
func (m *Multivariate) Sub(other *Multivariate) *Multivariate {
	return m.Add(other.Neg())
}

// Mul returns m * other.
func (m *Multivariate) Mul(other *Multivariate) *Multivariate {
	n := m.numVariables()
	if other.numVariables() > n {
		n = other.numVariables()
	}
	result := map[string]multivariateTerm{}
	for _, a := range m.terms {
		ae := padExponents(a.exponents, n)
		for _, b := range other.terms {
			be := padExponents(b.exponents, n)
			exponents := make([]uint64, n)
			for i := 0; i < n; i++ {
				exponents[i] = ae[i] + be[i]
			}
			key := exponentKey(exponents)
			product := a.coeff.Mul(b.coeff)
			if existing, ok := result[key]; ok {
				result[key] = multivariateTerm{exponents: exponents, coeff: existing.coeff.Add(product)}
			} else {
				result[key] = multivariateTerm{exponents: exponents, coeff: product}
			}
		}
	}
	return &Multivariate{field: m.field, terms: result}
}

// Pow raises m to a non-negative integer power by square-and-multiply.
func (m *Multivariate) Pow(exponent uint64) *Multivariate {
	result := NewMultivariateConstant(m.field.One())
	base := m
	for exponent > 0 {
		if exponent&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exponent >>= 1
	}
	return result
}

// LiftUnivariate embeds a univariate polynomial as the k-th variable of a
// multivariate one: coefficient c_i of p becomes the term c_i * x_k^i.
func LiftUnivariate(p *Polynomial, k int) *Multivariate {
	if p.IsZero() {
		return NewMultivariateZero(p.Field())
	}
	vars := Variables(k+1, p.Field())
	xk := vars[k]
	acc := NewMultivariateZero(p.Field())
	for i, c := range p.Coefficients() {
		acc = acc.Add(NewMultivariateConstant(c).Mul(xk.Pow(uint64(i))))
	}
	return acc
}

// Evaluate evaluates m at a point of field elements, one per variable.
func (m *Multivariate) Evaluate(point []*FieldElement) *FieldElement {
	acc := m.field.Zero()
	for _, t := range m.terms {
		term := t.coeff
		for i, e := range t.exponents {
			if i >= len(point) {
				break
			}
			term = term.Mul(point[i].ExpInt(e))
		}
		acc = acc.Add(term)
	}
	return acc
}

// EvaluateSymbolic evaluates m at a point of univariate polynomials,
// substituting each variable with its corresponding polynomial. Used by
// AIR-style constraint systems to compose a multivariate constraint with
// per-register trace polynomials.
func (m *Multivariate) EvaluateSymbolic(point []*Polynomial) *Polynomial {
	field := m.field
	acc := NewZeroPolynomial(field)
	for _, t := range m.terms {
		term, _ := NewPolynomial([]*FieldElement{t.coeff})
		for i, e := range t.exponents {
			if i >= len(point) || e == 0 {
				continue
			}
			term = term.Mul(point[i].Pow(e))
		}
		acc = acc.Add(term)
	}
	return acc
}
