package core

import "math/big"

// XGCD runs the extended Euclidean algorithm on x and y and returns (a, b, d)
// such that a*x + b*y = d and d = gcd(x, y).
//
// Iterative, not recursive: three running accumulator pairs (old_r/r,
// old_s/s, old_t/t) updated in lockstep each step of the division chain.
func XGCD(x, y *big.Int) (a, b, d *big.Int) {
	oldR, r := new(big.Int).Set(x), new(big.Int).Set(y)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	for r.Sign() != 0 {
		quo := new(big.Int).Div(oldR, r)

		oldR, r = r, new(big.Int).Sub(oldR, new(big.Int).Mul(quo, r))
		oldS, s = s, new(big.Int).Sub(oldS, new(big.Int).Mul(quo, s))
		oldT, t = t, new(big.Int).Sub(oldT, new(big.Int).Mul(quo, t))
	}

	return oldS, oldT, oldR
}
