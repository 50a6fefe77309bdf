// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package teju

import "math/bits"

// Decimal is the unsigned decomposition of |x| (or of an approximation
// within its correctly-rounded interval): the value equals mant * 10^exp.
// After teju, mant is not divisible by 10 unless dividing it would carry
// the value out of the rounded interval.
type Decimal struct {
	exp  int32
	mant uint64
}

// Result pairs a sign with a magnitude.
type Result struct {
	neg     bool
	decimal Decimal
}

// invMod5 is the multiplicative inverse of 5 modulo 2^64, used by
// removeTrailingZeros' fast mod-10 test.
const invMod5 = ^(^uint64(0) / 5) + 1

// mod10Bound is one more than the largest quotient mant/10 reachable by the
// removeTrailingZeros rotate trick; any rotated product at or above it
// came from a non-multiple of 10.
const mod10Bound = ^uint64(0)/10 + 1

// teju reduces a Binary decomposition to the shortest Decimal whose value
// lies within the correctly-rounded interval of b.
func teju(b Binary) Decimal {
	if b.mant == 0 {
		return Decimal{}
	}
	negExp := -b.exp
	if 0 <= negExp && negExp < bitsMantissa && b.mant&(1<<uint(negExp)-1) == 0 {
		return removeTrailingZeros(0, b.mant>>uint(negExp))
	}
	return tejuInner(b.exp, b.mant)
}

// mulShift computes the high 64 bits of the 128x64 product a*(hi:lo).
func mulShift(a, hi, lo uint64) uint64 {
	resultHi, resultLo := bits.Mul64(hi, a)
	loHi, _ := bits.Mul64(lo, a)
	_, carry := bits.Add64(resultLo, loHi, 0)
	return resultHi + carry
}

// mulShiftPow2 computes mulShift(1<<k, hi, lo) for 0 <= k <= 128.
func mulShiftPow2(k uint32, hi, lo uint64) uint64 {
	s := int32(k) - 64
	if s <= 0 {
		return hi >> uint32(-s)
	}
	return hi<<uint32(s) | lo>>uint32(128-int32(k))
}

func isEven(n uint64) bool { return n&1 == 0 }

// isTie reports whether mant * 10^exp lands exactly on a tie between two
// representable floats: equivalent to "mant is a multiple of 5^exp" for
// exp in the range where such a tie is possible.
func isTie(mant uint64, exp int32) bool {
	if exp < 0 || exp >= eTie {
		return false
	}
	mult, bound := inv5At(exp)
	return mant*mult <= bound
}

// isTieUncentered is isTie's counterpart for the uncentered case, which
// additionally requires mant to be a multiple of 5 outright (the uncentered
// boundary is scaled by an extra factor of 2 relative to the centered one).
func isTieUncentered(mant uint64, exp int32) bool {
	return mant%5 == 0 && exp >= 0 && isTie(mant, exp)
}

// removeTrailingZeros strips factors of 10 from mant, incrementing exp to
// compensate, using a wrapping-multiply fast mod-10 test instead of a
// division per digit.
func removeTrailingZeros(exp int32, mant uint64) Decimal {
	for {
		q := bits.RotateLeft64(mant*invMod5, -1)
		if q >= mod10Bound {
			return Decimal{exp: exp, mant: mant}
		}
		exp++
		mant = q
	}
}

// tejuInner implements the centered and uncentered reduction cases of the
// Tejú Jaguá algorithm for a normalized (exp, mant) pair.
func tejuInner(exp int32, mant uint64) Decimal {
	f := floorLog10Pow2(exp)
	r := floorLog10Pow2Residual(exp)
	ceilHi, ceilLo, _, _, roundHi, roundLo := multiplierAt(f)

	if mant != maxMant || exp == minExp {
		ma := (2*mant - 1) << r
		mb := (2*mant + 1) << r
		a := mulShift(ma, ceilHi, ceilLo)
		b := mulShift(mb, ceilHi, ceilLo)

		q := b / 10
		s := 10 * q
		if a < s {
			if s < b || isEven(mant) || !isTie(mb, f) {
				return removeTrailingZeros(f+1, q)
			}
		} else if s == a && isEven(mant) && isTie(ma, f) {
			return removeTrailingZeros(f+1, q)
		} else if !isEven(a + b) {
			return Decimal{exp: f, mant: (a+b)/2 + 1}
		}

		mc := (4 * mant) << r
		c2 := mulShift(mc, roundHi, roundLo)
		c := c2 / 2
		roundUp := !(isEven(c2) || (isEven(c) && isTie(c2, -f)))
		return Decimal{exp: f, mant: c + b2u(roundUp)}
	}

	ma := (4*maxMant - 1) << r
	mb := (2*maxMant + 1) << r
	a := mulShift(ma, ceilHi, ceilLo) / 2
	b := mulShift(mb, ceilHi, ceilLo)

	if a < b {
		q := b / 10
		s := 10 * q
		if a < s {
			// maxMant is always even, so this case always returns.
			return removeTrailingZeros(f+1, q)
		} else if s == a && isTieUncentered(ma, f) {
			return removeTrailingZeros(f+1, q)
		}

		c2 := mulShiftPow2(bitsMantissa+r+1, roundHi, roundLo)
		c := c2 / 2
		roundUp := (c == a && !isTieUncentered(ma, f)) ||
			!(isEven(c2) || (isEven(c) && isTie(c2, -f)))
		return Decimal{exp: f, mant: c + b2u(roundUp)}
	}

	if isTieUncentered(ma, f) {
		return removeTrailingZeros(f, a)
	}

	mc := (40 * maxMant) << r
	c2 := mulShift(mc, roundHi, roundLo)
	c := c2 / 2
	roundUp := !(isEven(c2) || (isEven(c) && isTie(c2, -f)))
	return Decimal{exp: f - 1, mant: c + b2u(roundUp)}
}

func b2u(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
