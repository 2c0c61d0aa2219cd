package core

import (
	"math/big"
	"testing"
)

func TestFieldRoundTrip(t *testing.T) {
	field := DefaultField

	t.Run("Add_Sub_Mul_Inv", func(t *testing.T) {
		a := field.NewElementFromInt64(5)
		b := field.NewElementFromInt64(10)

		if got, want := a.Add(b), field.NewElementFromInt64(15); !got.Equal(want) {
			t.Errorf("a+b = %s, want %s", got, want)
		}
		want := field.NewElement(new(big.Int).Sub(field.Modulus(), big.NewInt(5)))
		if got := a.Sub(b); !got.Equal(want) {
			t.Errorf("a-b = %s, want %s", got, want)
		}
		if got, want := a.Mul(b), field.NewElementFromInt64(50); !got.Equal(want) {
			t.Errorf("a*b = %s, want %s", got, want)
		}
		inv, err := a.Inv()
		if err != nil {
			t.Fatalf("Inv: %v", err)
		}
		if got := a.Mul(inv); !got.IsOne() {
			t.Errorf("a*inv(a) = %s, want 1", got)
		}
	})

	t.Run("DivisionByZero", func(t *testing.T) {
		if _, err := field.Zero().Inv(); err == nil {
			t.Fatal("expected error inverting zero")
		}
		a := field.NewElementFromInt64(1)
		if _, err := a.Div(field.Zero()); err == nil {
			t.Fatal("expected error dividing by zero")
		}
	})

	t.Run("Commutativity", func(t *testing.T) {
		x := field.NewElementFromInt64(123)
		y := field.NewElementFromInt64(456)
		if !x.Add(y).Equal(y.Add(x)) {
			t.Error("addition is not commutative")
		}
		if !x.Mul(y).Equal(y.Mul(x)) {
			t.Error("multiplication is not commutative")
		}
	})
}

func TestGeneratorAndPrimitiveNthRoot(t *testing.T) {
	field := DefaultField

	g, err := field.Generator()
	if err != nil {
		t.Fatalf("Generator: %v", err)
	}
	if g.IsZero() {
		t.Fatal("generator must not be zero")
	}

	t.Run("RootOrder", func(t *testing.T) {
		omega, err := field.PrimitiveNthRoot(64)
		if err != nil {
			t.Fatalf("PrimitiveNthRoot: %v", err)
		}
		if !omega.ExpInt(64).IsOne() {
			t.Error("omega^n != 1")
		}
		for k := uint64(1); k < 64; k *= 2 {
			if omega.ExpInt(k).IsOne() {
				t.Errorf("omega^%d == 1, root is not primitive", k)
			}
		}
		inv, err := omega.Inv()
		if err != nil {
			t.Fatalf("Inv: %v", err)
		}
		if !omega.ExpInt(63).Equal(inv) {
			t.Error("omega^(n-1) != omega^-1")
		}
	})

	t.Run("RejectsNonPowerOfTwo", func(t *testing.T) {
		if _, err := field.PrimitiveNthRoot(3); err == nil {
			t.Fatal("expected error for non-power-of-two n")
		}
	})

	t.Run("RejectsUnknownModulus", func(t *testing.T) {
		other, err := NewFieldFromUint64(2013265921)
		if err != nil {
			t.Fatalf("NewFieldFromUint64: %v", err)
		}
		if _, err := other.Generator(); err == nil {
			t.Fatal("expected error for unknown modulus generator")
		}
	})
}

func TestSampleAndBytesRoundTrip(t *testing.T) {
	field := DefaultField
	x := field.NewElementFromInt64(424242)

	encoded := x.Bytes()
	if len(encoded) != (field.Modulus().BitLen()+7)/8 {
		t.Fatalf("unexpected encoded width %d", len(encoded))
	}
	if got := field.Sample(encoded); !got.Equal(x) {
		t.Errorf("Sample(Bytes(x)) = %s, want %s", got, x)
	}
}

func TestXGCD(t *testing.T) {
	x := big.NewInt(240)
	y := big.NewInt(46)
	a, b, d := XGCD(x, y)
	if d.Cmp(big.NewInt(2)) != 0 {
		t.Fatalf("gcd(240,46) = %s, want 2", d)
	}
	check := new(big.Int).Add(new(big.Int).Mul(a, x), new(big.Int).Mul(b, y))
	if check.Cmp(d) != 0 {
		t.Errorf("a*x+b*y = %s, want %s", check, d)
	}
}
