// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gentables prints the generated part of tables.go: the constants,
// the directed-rounding multiplier table and the modular-inverse-of-5 table
// that the teju package's core algorithm indexes at runtime. The accessor
// functions multiplierAt and inv5At at the end of tables.go are not part of
// its output.
//
// The tables are derived once, offline, from exact rational arithmetic
// (math/big), then checked in as generated source so the library itself
// never needs a big.Rat dependency or any runtime table construction.
// Run as:
//
//	go run ./cmd/gentables
package main

import (
	"bufio"
	"fmt"
	"log"
	"math/big"
	"os"
)

// Parameters of the binary64 format, mirrored from binary.go and teju.go.
const (
	bitsMantissa = 53
	minBinExp    = -1021 - bitsMantissa
	maxBinExp    = 1023 - (bitsMantissa - 1)
	maxMant      = uint64(1) << (bitsMantissa - 1)

	// eTie bounds the decimal exponents for which a tie (an exact
	// multiple of 5^e) is reachable by any mantissa product teju ever
	// forms. Beyond this, isTie short-circuits to false.
	eTie = 27
)

func main() {
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	fMin, fMax := decimalExponentRange()

	fmt.Fprintln(w, "// Code generated by cmd/gentables. DO NOT EDIT.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "package teju")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "const fMin = %d\n", fMin)
	fmt.Fprintf(w, "const fMax = %d\n", fMax)
	fmt.Fprintf(w, "const eTie = %d\n", eTie)
	fmt.Fprintln(w)
	writeMultTab(w, fMin, fMax)
	fmt.Fprintln(w)
	writeInv5Tab(w)

	if err := w.Flush(); err != nil {
		log.Fatal(err)
	}
}

// decimalExponentRange returns the smallest and largest value of
// floorLog10Pow2 reached by any finite float64's binary exponent.
func decimalExponentRange() (fMin, fMax int) {
	return floorLog10Pow2(minBinExp), floorLog10Pow2(maxBinExp)
}

// floorLog10Pow2 returns floor(log10(2^e)), computed exactly by comparing
// 2^e against successive powers of 10 with big.Int.
func floorLog10Pow2(e int) int {
	var two *big.Rat
	if e >= 0 {
		two = new(big.Rat).SetInt(pow2(e))
	} else {
		two = new(big.Rat).SetFrac(big.NewInt(1), pow2(-e))
	}
	f := 0
	ten := big.NewRat(1, 1)
	step := big.NewRat(10, 1)
	if two.Cmp(ten) >= 0 {
		for {
			next := new(big.Rat).Mul(ten, step)
			if next.Cmp(two) > 0 {
				break
			}
			ten = next
			f++
		}
	} else {
		for two.Cmp(ten) < 0 {
			ten = new(big.Rat).Quo(ten, step)
			f--
		}
	}
	return f
}

// pow2 returns 2^e as a big.Int for e >= 0.
func pow2(e int) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(e))
}

// pow10 returns 10^f as a big.Int for f >= 0.
func pow10(f int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(f)), nil)
}

// smallestBinExpWithDecimalExp returns the smallest binary exponent e0
// such that floorLog10Pow2(e0) == f, found by exact comparison of 2^e0
// against 10^f and 10^(f+1).
func smallestBinExpWithDecimalExp(f int) int {
	// e0 is the smallest e with 2^e >= 10^f, i.e. e0 = ceil(f*log2(10)).
	// Search outward from a floating-point estimate, then correct with
	// exact big.Int comparisons so the result is exact regardless of the
	// estimate's precision.
	guess := int(float64(f)*3.321928094887363) - 2
	for !binPow2GE(guess, f) {
		guess++
	}
	for binPow2GE(guess-1, f) {
		guess--
	}
	return guess
}

// binPow2GE reports whether 2^e >= 10^f, exactly.
func binPow2GE(e, f int) bool {
	lhs := new(big.Rat)
	if e >= 0 {
		lhs.SetInt(pow2(e))
	} else {
		lhs.SetFrac(big.NewInt(1), pow2(-e))
	}
	rhs := new(big.Rat)
	if f >= 0 {
		rhs.SetInt(pow10(f))
	} else {
		rhs.SetFrac(big.NewInt(1), pow10(-f))
	}
	return lhs.Cmp(rhs) >= 0
}

// multiplierRat returns 2^(e0(f)+127) / 10^f as an exact rational: the
// unrounded value whose ceiling, floor, and nearest-integer roundings
// become the three stored 128-bit multipliers for bucket f.
func multiplierRat(f int) *big.Rat {
	e0 := smallestBinExpWithDecimalExp(f)
	num, den := big.NewInt(1), big.NewInt(1)
	if e := e0 + 127; e >= 0 {
		num = pow2(e)
	} else {
		den = pow2(-e)
	}
	if f >= 0 {
		den = new(big.Int).Mul(den, pow10(f))
	} else {
		num = new(big.Int).Mul(num, pow10(-f))
	}
	return new(big.Rat).SetFrac(num, den)
}

// ratCeil, ratFloor and ratRound return the given rounding of r as a
// big.Int, assuming r >= 0.
func ratFloor(r *big.Rat) *big.Int {
	q := new(big.Int)
	q.Quo(r.Num(), r.Denom())
	return q
}

func ratCeil(r *big.Rat) *big.Int {
	q, rem := new(big.Int).QuoRem(r.Num(), r.Denom(), new(big.Int))
	if rem.Sign() != 0 {
		q.Add(q, big.NewInt(1))
	}
	return q
}

func ratRound(r *big.Rat) *big.Int {
	half := big.NewRat(1, 2)
	shifted := new(big.Rat).Add(r, half)
	return ratFloor(shifted)
}

// split128 splits a nonnegative 128-bit value into hi and lo uint64 words.
func split128(v *big.Int) (hi, lo uint64) {
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(1))
	loBig := new(big.Int).And(v, mask)
	hiBig := new(big.Int).Rsh(v, 64)
	return hiBig.Uint64(), loBig.Uint64()
}

func writeMultTab(w *bufio.Writer, fMin, fMax int) {
	fmt.Fprintln(w, "// multTab holds, per decimal exponent bucket f (index f-fMin), three")
	fmt.Fprintln(w, "// directed-rounding 128-bit fixed-point approximations of 2^(e0(f)-1)/10^f:")
	fmt.Fprintln(w, "// ceiling (never undershoots, used for both interval boundaries), floor")
	fmt.Fprintln(w, "// (never overshoots; stored but not read by teju), and round-to-nearest (used")
	fmt.Fprintln(w, "// for midpoint estimates, where the tie predicates already correct rounding).")
	fmt.Fprintln(w, "var multTab = [fMax - fMin + 1]struct {")
	fmt.Fprintln(w, "\tceilHi, ceilLo   uint64")
	fmt.Fprintln(w, "\tfloorHi, floorLo uint64")
	fmt.Fprintln(w, "\troundHi, roundLo uint64")
	fmt.Fprintln(w, "}{")
	for f := fMin; f <= fMax; f++ {
		r := multiplierRat(f)
		ceilHi, ceilLo := split128(ratCeil(r))
		floorHi, floorLo := split128(ratFloor(r))
		roundHi, roundLo := split128(ratRound(r))
		fmt.Fprintf(w, "\t{0x%016x, 0x%016x, 0x%016x, 0x%016x, 0x%016x, 0x%016x}, // f=%d\n",
			ceilHi, ceilLo, floorHi, floorLo, roundHi, roundLo, f)
	}
	fmt.Fprintln(w, "}")
}

func writeInv5Tab(w *bufio.Writer) {
	fmt.Fprintln(w, "// inv5Tab[e] packs the multiplicative inverse of 5^e modulo 2^64 and")
	fmt.Fprintln(w, "// floor(2^64-1 / 5^e), used to test divisibility of a mantissa by 5^e for")
	fmt.Fprintln(w, "// e in [0, eTie).")
	fmt.Fprintln(w, "var inv5Tab = [eTie]struct {")
	fmt.Fprintln(w, "\tmultiplier uint64")
	fmt.Fprintln(w, "\tbound      uint64")
	fmt.Fprintln(w, "}{")
	modulus := new(big.Int).Lsh(big.NewInt(1), 64)
	maxUint64 := new(big.Int).Sub(modulus, big.NewInt(1))
	for e := 0; e < eTie; e++ {
		p5 := pow10Base(5, e)
		inv := new(big.Int).ModInverse(p5, modulus)
		if e == 0 {
			inv = big.NewInt(1)
		}
		bound := new(big.Int).Quo(maxUint64, p5)
		fmt.Fprintf(w, "\t{0x%016x, 0x%016x}, // e=%d\n", inv.Uint64(), bound.Uint64(), e)
	}
	fmt.Fprintln(w, "}")
}

// pow10Base returns base^e as a big.Int.
func pow10Base(base int64, e int) *big.Int {
	return new(big.Int).Exp(big.NewInt(base), big.NewInt(int64(e)), nil)
}
