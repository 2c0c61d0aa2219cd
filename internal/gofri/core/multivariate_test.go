package core

import "testing"

func TestMultivariateArithmetic(t *testing.T) {
	field := DefaultField
	vars := Variables(2, field)
	x, y := vars[0], vars[1]

	t.Run("EvaluatePolynomial", func(t *testing.T) {
		// f = x^2 + 2*x*y + y^2 = (x+y)^2
		sum := x.Add(y)
		f := sum.Mul(sum)

		point := []*FieldElement{field.NewElementFromInt64(3), field.NewElementFromInt64(5)}
		got := f.Evaluate(point)
		want := field.NewElementFromInt64(64) // (3+5)^2
		if !got.Equal(want) {
			t.Errorf("f(3,5) = %s, want %s", got, want)
		}
	})

	t.Run("SubCancels", func(t *testing.T) {
		diff := x.Sub(x)
		if !diff.IsZero() {
			t.Error("x - x is not the zero polynomial")
		}
	})

	t.Run("Pow", func(t *testing.T) {
		cubed := x.Pow(3)
		point := []*FieldElement{field.NewElementFromInt64(2), field.Zero()}
		got := cubed.Evaluate(point)
		want := field.NewElementFromInt64(8)
		if !got.Equal(want) {
			t.Errorf("x^3 at x=2 = %s, want %s", got, want)
		}
	})
}

func TestLiftUnivariate(t *testing.T) {
	field := DefaultField
	p, _ := NewPolynomialFromInt64(field, []int64{1, 2, 3}) // 1 + 2x + 3x^2

	lifted := LiftUnivariate(p, 0)
	point := []*FieldElement{field.NewElementFromInt64(5)}
	got := lifted.Evaluate(point)
	want := p.Evaluate(field.NewElementFromInt64(5))
	if !got.Equal(want) {
		t.Errorf("lifted evaluation = %s, want %s", got, want)
	}
}
