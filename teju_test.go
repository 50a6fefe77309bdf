// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package teju

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"
)

// newRand returns a deterministic PRNG seeded from seed, so failures are
// reproducible across runs.
func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// scenarioTests are the concrete inputs documented as a worked scenario
// table: interesting values along with their shortest scientific mantissa
// and exponent.
var scenarioTests = []struct {
	name string
	x    float64
	exp  int32
	mant uint64
}{
	{"pi", math.Pi, -15, 3141592653589793},
	{"e", math.E, -15, 2718281828459045},
	{"123.456", 123.456, -3, 123456},
	{"0.1234", 0.1234, -4, 1234},
	{"1234e-30", 1234e-30, -30, 1234},
	{"1234e0", 1234, 0, 1234},
	{"1e30", 1e30, 30, 1},
	{"min subnormal", 4.94065645841246544177e-324, -324, 5},
	{"max float64", math.MaxFloat64, 308 - 16, 17976931348623157},

	// Exact powers of two, other than the smallest normal, have
	// mant == maxMant and take the uncentered reduction path in
	// tejuInner: their lower rounding boundary is half as wide as
	// their upper one.
	{"2^-1021", math.Ldexp(1, -1021), -323, 4450147717014403},
	{"2^-1000", math.Ldexp(1, -1000), -317, 9332636185032189},
	{"2^60", math.Ldexp(1, 60), 3, 1152921504606847},
	{"2^100", math.Ldexp(1, 100), 14, 12676506002282294},
	{"2^500", math.Ldexp(1, 500), 135, 3273390607896142},
	{"2^971", math.Ldexp(1, 971), 278, 199584030953472},
	{"2^1023", math.Ldexp(1, 1023), 293, 898846567431158},
}

func TestTejuScenarios(t *testing.T) {
	for _, tt := range scenarioTests {
		t.Run(tt.name, func(t *testing.T) {
			b := decodeBinary(math.Float64bits(tt.x) &^ (1 << 63))
			d := teju(b)
			if d.exp != tt.exp || d.mant != tt.mant {
				t.Errorf("teju(%v) = {exp:%d mant:%d}, want {exp:%d mant:%d}",
					tt.x, d.exp, d.mant, tt.exp, tt.mant)
			}
		})
	}
}

// TestTejuUncenteredBranch confirms the power-of-two scenario cases above
// actually reach tejuInner's uncentered path (mant == maxMant and not the
// smallest normal), so a regression in that branch cannot hide behind an
// accidental fall-through to the general centered path.
func TestTejuUncenteredBranch(t *testing.T) {
	for _, tt := range scenarioTests {
		if !strings.HasPrefix(tt.name, "2^") {
			continue
		}
		b := decodeBinary(math.Float64bits(tt.x) &^ (1 << 63))
		if b.mant != maxMant || b.exp == minExp {
			t.Errorf("%s: decodeBinary = %+v, want mant == maxMant (%d) and exp != minExp (%d)",
				tt.name, b, maxMant, minExp)
		}
	}
}

// randPowerOfTwo returns math.Ldexp(1, k) for a k drawn uniformly from the
// exponents with an exact power-of-two representation other than the
// smallest normal, so tejuInner's uncentered reduction path (which the
// general fuzz in TestTejuRoundtrip samples only with probability ~2^-52)
// gets exercised directly.
func randPowerOfTwo(rng *rand.Rand) float64 {
	const minK, maxK = -1021, 1023
	k := minK + rng.IntN(maxK-minK+1)
	return math.Ldexp(1, k)
}

func TestTejuUncenteredRoundtrip(t *testing.T) {
	rng := newRand(8)
	for i := 0; i < 50000; i++ {
		f := randPowerOfTwo(rng)
		b := decodeBinary(math.Float64bits(f))
		if b.mant != maxMant || b.exp == minExp {
			t.Fatalf("randPowerOfTwo produced %v with Binary %+v, want uncentered preconditions", f, b)
		}
		checkRoundtrip(t, f)
	}
}

// TestTejuUncenteredShortestDigitCount is TestTejuShortestDigitCount
// restricted to exact powers of two, to cover the uncentered reduction
// path's own shortest-digit guarantee.
func TestTejuUncenteredShortestDigitCount(t *testing.T) {
	rng := newRand(9)
	for i := 0; i < 5000; i++ {
		f := randPowerOfTwo(rng)
		b := decodeBinary(math.Float64bits(f))
		d := teju(b)
		n := digitCount(d.mant)
		if n <= 1 {
			continue
		}
		shorter := strconv.FormatFloat(f, 'e', n-2, 64)
		if got, err := strconv.ParseFloat(shorter, 64); err == nil && got == f {
			t.Fatalf("teju(%v) = {exp:%d mant:%d} (%d digits), but %q also round-trips",
				f, d.exp, d.mant, n, shorter)
		}
	}
}

func TestTejuSmallIntegerContiguity(t *testing.T) {
	const bound = int64(1) << bitsMantissa
	rng := newRand(2)
	for i := 0; i < 200000; i++ {
		n := rng.Int64N(2*bound) - bound
		f := float64(n)
		b := decodeBinary(math.Float64bits(f) &^ (1 << 63))
		d := teju(b)
		want := removeTrailingZeros(0, uint64(abs64(n)))
		if d != want {
			t.Fatalf("teju(float64(%d)) = %+v, want %+v", n, d, want)
		}
	}
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// TestTejuRoundtrip checks that parsing the shortest decimal form back
// into a float64 recovers the exact original bit pattern, across a large
// sample of uniformly distributed exponents and mantissas (not just
// uniformly distributed floats, which would barely exercise subnormals
// and large exponents).
func TestTejuRoundtrip(t *testing.T) {
	rng := newRand(3)
	for i := 0; i < 500000; i++ {
		f := randFloat(rng)
		if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		checkRoundtrip(t, f)
	}
}

func TestTejuRoundtripAllSmallIntegers(t *testing.T) {
	for n := 0; n < 1<<20; n++ {
		checkRoundtrip(t, float64(n))
	}
}

func checkRoundtrip(t *testing.T, f float64) {
	t.Helper()
	var buf Buffer
	s := string(buf.FormatScientific(f))
	got, err := strconv.ParseFloat(s, 64)
	if err != nil {
		t.Fatalf("ParseFloat(%q): %v", s, err)
	}
	if got != f {
		t.Fatalf("roundtrip failed: f=%v formatted %q, parsed back as %v", f, s, got)
	}
}

// randFloat returns a float64 with a uniformly random bit pattern and the
// sign bit cleared, so exponent field and mantissa are each independently
// uniform, covering subnormals and the full exponent range far more evenly
// than sampling uniformly distributed values would. It can return +Inf or
// NaN; callers skip those.
func randFloat(rng *rand.Rand) float64 {
	bits := rng.Uint64()
	bits &^= 1 << 63
	return math.Float64frombits(bits)
}

// TestTejuShortestDigitCount checks that no float has a correctly-rounded
// decimal form with fewer significant digits than teju produced: the
// hallmark of the "shortest roundtrip" property. It leans on strconv's
// own correctly-rounded fixed-precision formatter (trusted independently
// of this package) to compute the best possible (n-1)-digit rounding,
// rather than reimplementing decimal rounding in the test itself.
func TestTejuShortestDigitCount(t *testing.T) {
	rng := newRand(4)
	for i := 0; i < 20000; i++ {
		f := randFloat(rng)
		if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		f = math.Abs(f)
		b := decodeBinary(math.Float64bits(f))
		d := teju(b)
		n := digitCount(d.mant)
		if n <= 1 {
			continue
		}
		shorter := strconv.FormatFloat(f, 'e', n-2, 64)
		if got, err := strconv.ParseFloat(shorter, 64); err == nil && got == f {
			t.Fatalf("teju(%v) = {exp:%d mant:%d} (%d digits), but %q also round-trips",
				f, d.exp, d.mant, n, shorter)
		}
	}
}
