package core

import "testing"

func TestPolynomialDegreeAndZero(t *testing.T) {
	field := DefaultField

	t.Run("ZeroPolynomial", func(t *testing.T) {
		zero := NewZeroPolynomial(field)
		if zero.Degree() != -1 {
			t.Errorf("degree of zero polynomial = %d, want -1", zero.Degree())
		}
		if !zero.IsZero() {
			t.Error("zero polynomial reports IsZero() == false")
		}
	})

	t.Run("TrailingZerosTrimmed", func(t *testing.T) {
		p, err := NewPolynomialFromInt64(field, []int64{1, 2, 0, 0})
		if err != nil {
			t.Fatalf("NewPolynomialFromInt64: %v", err)
		}
		if p.Degree() != 1 {
			t.Errorf("degree = %d, want 1", p.Degree())
		}
	})
}

func TestPolynomialArithmetic(t *testing.T) {
	field := DefaultField

	p, _ := NewPolynomialFromInt64(field, []int64{1, 1}) // 1 + x
	q, _ := NewPolynomialFromInt64(field, []int64{-1, 1}) // -1 + x

	t.Run("MulDegreeAdds", func(t *testing.T) {
		product := p.Mul(q) // x^2 - 1
		if product.Degree() != p.Degree()+q.Degree() {
			t.Errorf("degree(p*q) = %d, want %d", product.Degree(), p.Degree()+q.Degree())
		}
		want, _ := NewPolynomialFromInt64(field, []int64{-1, 0, 1})
		if !product.Equal(want) {
			t.Errorf("p*q = %s, want %s", product, want)
		}
	})

	t.Run("DivideRoundTrip", func(t *testing.T) {
		product := p.Mul(q)
		remainderTerm, _ := NewPolynomialFromInt64(field, []int64{2})
		dividend := product.Add(remainderTerm)

		quotient, remainder, err := dividend.Divide(q)
		if err != nil {
			t.Fatalf("Divide: %v", err)
		}
		if !quotient.Equal(p) {
			t.Errorf("quotient = %s, want %s", quotient, p)
		}
		if !remainder.Equal(remainderTerm) {
			t.Errorf("remainder = %s, want %s", remainder, remainderTerm)
		}
	})

	t.Run("NonExactDivisionFails", func(t *testing.T) {
		one, _ := NewPolynomialFromInt64(field, []int64{1})
		dividend := p.Mul(q).Add(one)
		if _, err := dividend.Div(q); err == nil {
			t.Fatal("expected ErrNonExactDivision")
		}
	})

	t.Run("DivisionByZeroPolynomial", func(t *testing.T) {
		zero := NewZeroPolynomial(field)
		if _, _, err := p.Divide(zero); err == nil {
			t.Fatal("expected ErrDivisionByZero")
		}
	})
}

func TestInterpolateDomain(t *testing.T) {
	field := DefaultField
	domain := []*FieldElement{
		field.NewElementFromInt64(1),
		field.NewElementFromInt64(2),
		field.NewElementFromInt64(3),
	}
	values := []*FieldElement{
		field.NewElementFromInt64(1),
		field.NewElementFromInt64(4),
		field.NewElementFromInt64(9),
	}

	poly, err := InterpolateDomain(domain, values)
	if err != nil {
		t.Fatalf("InterpolateDomain: %v", err)
	}

	want, _ := NewPolynomialFromInt64(field, []int64{0, 0, 1})
	if !poly.Equal(want) {
		t.Errorf("interpolated polynomial = %s, want %s", poly, want)
	}

	if got := poly.Evaluate(field.NewElementFromInt64(4)); !got.Equal(field.NewElementFromInt64(16)) {
		t.Errorf("evaluate(4) = %s, want 16", got)
	}

	for i, d := range domain {
		if got := poly.Evaluate(d); !got.Equal(values[i]) {
			t.Errorf("evaluate(%s) = %s, want %s", d, got, values[i])
		}
	}

	t.Run("MismatchedLengths", func(t *testing.T) {
		if _, err := InterpolateDomain(domain, values[:1]); err == nil {
			t.Fatal("expected ErrBadParameter on length mismatch")
		}
	})
}

func TestZerofierDomain(t *testing.T) {
	field := DefaultField
	domain := []*FieldElement{
		field.NewElementFromInt64(1),
		field.NewElementFromInt64(2),
		field.NewElementFromInt64(3),
	}
	zerofier := ZerofierDomain(domain)
	for _, d := range domain {
		if v := zerofier.Evaluate(d); !v.IsZero() {
			t.Errorf("zerofier(%s) = %s, want 0", d, v)
		}
	}
}

func TestTestColinearity(t *testing.T) {
	field := DefaultField
	point := func(x, y int64) Point {
		return Point{X: field.NewElementFromInt64(x), Y: field.NewElementFromInt64(y)}
	}

	t.Run("OnALine", func(t *testing.T) {
		ok, err := TestColinearity([3]Point{point(1, 2), point(2, 3), point(3, 4)})
		if err != nil {
			t.Fatalf("TestColinearity: %v", err)
		}
		if !ok {
			t.Error("expected colinear points to report true")
		}
	})

	t.Run("NotOnALine", func(t *testing.T) {
		ok, err := TestColinearity([3]Point{point(1, 2), point(2, 3), point(3, 5)})
		if err != nil {
			t.Fatalf("TestColinearity: %v", err)
		}
		if ok {
			t.Error("expected non-colinear points to report false")
		}
	})
}
