// Package core implements the algebraic substrate a FRI proof rides on:
// prime-field arithmetic and univariate/multivariate polynomials.
package core

import (
	"fmt"
	"math/big"
)

// Field is a prime field F_p. The zero value is not usable; construct with
// NewField.
type Field struct {
	modulus *big.Int
}

// FieldElement is the canonical representative of a value in [0, p). Field
// elements are immutable; every operation returns a fresh element.
type FieldElement struct {
	field *Field
	value *big.Int
}

// ErrDivisionByZero is returned whenever a field or polynomial operation
// would divide by the zero element.
var ErrDivisionByZero = fmt.Errorf("gofri: division by zero")

// ErrBadParameter is returned for malformed inputs: mismatched lengths,
// out-of-range indices, unsupported moduli, and the like.
var ErrBadParameter = fmt.Errorf("gofri: bad parameter")

// NewField constructs F_p. p must be greater than 2.
func NewField(p *big.Int) (*Field, error) {
	if p.Cmp(big.NewInt(2)) <= 0 {
		return nil, fmt.Errorf("%w: modulus must be greater than 2", ErrBadParameter)
	}
	return &Field{modulus: new(big.Int).Set(p)}, nil
}

// NewFieldFromUint64 is a convenience constructor for small moduli.
func NewFieldFromUint64(p uint64) (*Field, error) {
	return NewField(new(big.Int).SetUint64(p))
}

// Modulus returns a copy of p.
func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.modulus)
}

// Equals reports whether two fields share the same modulus.
func (f *Field) Equals(other *Field) bool {
	return f.modulus.Cmp(other.modulus) == 0
}

// NewElement reduces value mod p and returns the resulting element.
func (f *Field) NewElement(value *big.Int) *FieldElement {
	return &FieldElement{field: f, value: new(big.Int).Mod(value, f.modulus)}
}

// NewElementFromInt64 is a convenience constructor.
func (f *Field) NewElementFromInt64(value int64) *FieldElement {
	return f.NewElement(big.NewInt(value))
}

// NewElementFromUint64 is a convenience constructor.
func (f *Field) NewElementFromUint64(value uint64) *FieldElement {
	return f.NewElement(new(big.Int).SetUint64(value))
}

// Zero returns the additive identity.
func (f *Field) Zero() *FieldElement { return f.NewElementFromInt64(0) }

// One returns the multiplicative identity.
func (f *Field) One() *FieldElement { return f.NewElementFromInt64(1) }

// Generator returns a generator of F_p*, known for the canonical prime
// p = 1 + 407*2^119. Other moduli fail with ErrBadParameter: only that one
// modulus has a known generator here.
func (f *Field) Generator() (*FieldElement, error) {
	if f.modulus.Cmp(canonicalModulus()) != 0 {
		return nil, fmt.Errorf("%w: no known generator for this modulus", ErrBadParameter)
	}
	g, _ := new(big.Int).SetString("85408008396924667383611388730472331217", 10)
	return f.NewElement(g), nil
}

// PrimitiveNthRoot returns a primitive n-th root of unity, n a power of two
// with n <= 2^119. Derived by repeatedly squaring the canonical order-2^119
// root until its order drops to n.
func (f *Field) PrimitiveNthRoot(n uint64) (*FieldElement, error) {
	if f.modulus.Cmp(canonicalModulus()) != 0 {
		return nil, fmt.Errorf("%w: unknown field, can't return root of unity", ErrBadParameter)
	}
	maxOrder := new(big.Int).Lsh(big.NewInt(1), 119)
	target := new(big.Int).SetUint64(n)
	if n == 0 || (n&(n-1)) != 0 || target.Cmp(maxOrder) > 0 {
		return nil, fmt.Errorf("%w: n must be a power of two not exceeding 2^119", ErrBadParameter)
	}

	omegaMax, _ := new(big.Int).SetString("85408008396924667383611388730472331217", 10)
	root := f.NewElement(omegaMax)
	for order := maxOrder; order.Cmp(target) != 0; order.Rsh(order, 1) {
		root = root.Mul(root)
	}
	return root, nil
}

func canonicalModulus() *big.Int {
	p := new(big.Int).Lsh(big.NewInt(407), 119)
	return p.Add(p, big.NewInt(1))
}

// DefaultField and DefaultGenerator instantiate the canonical prime field
// p = 1 + 407*2^119, used throughout the package's tests and examples.
var (
	DefaultField, _     = NewField(canonicalModulus())
	DefaultGenerator, _ = DefaultField.Generator()
)

// Field returns the field this element belongs to.
func (fe *FieldElement) Field() *Field { return fe.field }

// Big returns a copy of the element's canonical value.
func (fe *FieldElement) Big() *big.Int { return new(big.Int).Set(fe.value) }

// Add returns fe + other.
func (fe *FieldElement) Add(other *FieldElement) *FieldElement {
	return fe.field.NewElement(new(big.Int).Add(fe.value, other.value))
}

// Sub returns fe - other.
func (fe *FieldElement) Sub(other *FieldElement) *FieldElement {
	return fe.field.NewElement(new(big.Int).Sub(fe.value, other.value))
}

// Neg returns -fe.
func (fe *FieldElement) Neg() *FieldElement {
	return fe.field.NewElement(new(big.Int).Neg(fe.value))
}

// Mul returns fe * other.
func (fe *FieldElement) Mul(other *FieldElement) *FieldElement {
	return fe.field.NewElement(new(big.Int).Mul(fe.value, other.value))
}

// Inv returns the multiplicative inverse of fe via the extended Euclidean
// algorithm: for xgcd(fe, p) = (a, _, 1), the inverse is a mod p.
func (fe *FieldElement) Inv() (*FieldElement, error) {
	if fe.IsZero() {
		return nil, ErrDivisionByZero
	}
	a, _, d := XGCD(fe.value, fe.field.modulus)
	if d.CmpAbs(big.NewInt(1)) != 0 {
		return nil, fmt.Errorf("%w: inverse does not exist", ErrBadParameter)
	}
	return fe.field.NewElement(a), nil
}

// Div returns fe / other, failing with ErrDivisionByZero if other is zero.
func (fe *FieldElement) Div(other *FieldElement) (*FieldElement, error) {
	inv, err := other.Inv()
	if err != nil {
		return nil, err
	}
	return fe.Mul(inv), nil
}

// Exp raises fe to a non-negative exponent by square-and-multiply.
func (fe *FieldElement) Exp(exponent *big.Int) *FieldElement {
	result := new(big.Int).Exp(fe.value, exponent, fe.field.modulus)
	return fe.field.NewElement(result)
}

// ExpInt is a convenience wrapper around Exp for small non-negative
// exponents.
func (fe *FieldElement) ExpInt(exponent uint64) *FieldElement {
	return fe.Exp(new(big.Int).SetUint64(exponent))
}

// Equal reports value equality within the same field.
func (fe *FieldElement) Equal(other *FieldElement) bool {
	return fe.field.Equals(other.field) && fe.value.Cmp(other.value) == 0
}

// IsZero reports whether fe is the additive identity.
func (fe *FieldElement) IsZero() bool { return fe.value.Sign() == 0 }

// IsOne reports whether fe is the multiplicative identity.
func (fe *FieldElement) IsOne() bool { return fe.value.Cmp(big.NewInt(1)) == 0 }

// LessThan compares the canonical representatives of two elements. There is
// no field-theoretic ordering; this exists for picking a coset offset and
// similar bookkeeping.
func (fe *FieldElement) LessThan(other *FieldElement) bool {
	return fe.value.Cmp(other.value) < 0
}

// String renders the element's canonical value.
func (fe *FieldElement) String() string { return fe.value.String() }

// Bytes returns the canonical fixed-width big-endian encoding of fe: one
// byte per 8 bits of the field's bit length, rounded up. For the canonical
// prime p = 1 + 407*2^119 that is 16 bytes.
func (fe *FieldElement) Bytes() []byte {
	width := (fe.field.modulus.BitLen() + 7) / 8
	raw := fe.value.Bytes()
	if len(raw) >= width {
		return raw
	}
	out := make([]byte, width)
	copy(out[width-len(raw):], raw)
	return out
}

// Sample interprets a byte string as a big-endian unsigned integer and
// reduces it mod p. It is the canonical bridge from transcript hash output
// to field elements.
func (f *Field) Sample(data []byte) *FieldElement {
	return f.NewElement(new(big.Int).SetBytes(data))
}
