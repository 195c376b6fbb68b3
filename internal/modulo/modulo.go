// Package modulo implements modular arithmetic used to align instants to a
// step lattice.
package modulo

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Mod returns a mod b in the arithmetical sense.
//
// Unlike the % operator, the result is never negative for b > 0.
func Mod[T constraints.Signed](a, b T) T {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}

// DifferenceModulo returns (a - b) mod c.
//
// The operands are reduced before subtraction, so the result is correct
// even when a - b would overflow T.
func DifferenceModulo[T constraints.Signed](a, b, c T) T {
	return Mod(Mod(a, c)-Mod(b, c), c)
}

const nanosPerMilli = 1_000_000

// Residue returns (milli*1e6 + subMilli) mod c, where milli is a millisecond
// epoch offset and subMilli is the nanosecond remainder within that
// millisecond.
//
// The full nanosecond offset does not fit int64 for most of the range of
// time.Time, so the product is computed in 128 bits.
//
// Residue panics if c <= 0 or subMilli is outside [0, 1e6).
func Residue(milli, subMilli, c int64) int64 {
	if c <= 0 {
		panic("modulo: non-positive modulus")
	}
	if subMilli < 0 || subMilli >= nanosPerMilli {
		panic("modulo: sub-millisecond offset out of range")
	}
	var (
		m = uint64(Mod(milli, c))
		f = uint64(Mod(nanosPerMilli, c))
		u = uint64(c)
	)
	hi, lo := bits.Mul64(m, f)
	r := bits.Rem64(hi, lo, u)
	// r < c <= MaxInt64 and subMilli < 1e6, the sum fits uint64.
	return int64((r + uint64(subMilli)) % u)
}
