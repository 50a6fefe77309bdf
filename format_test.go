// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package teju

import (
	"math"
	"strconv"
	"strings"
	"testing"
)

var formatTests = []struct {
	name       string
	x          float64
	scientific string
	decimal    string
	general    string
}{
	{"pi", math.Pi, "3.141592653589793e0", "3.141592653589793", "3.141592653589793"},
	{"e", math.E, "2.718281828459045e0", "2.718281828459045", "2.718281828459045"},
	{"123.456", 123.456, "1.23456e2", "123.456", "123.456"},
	{"0.1234", 0.1234, "1.234e-1", "0.1234", "0.1234"},
	{"1234", 1234.0, "1.234e3", "1234.0", "1234.0"},
	{"1000", 1000.0, "1e3", "1000.0", "1000.0"},
	{"1e30", 1e30, "1e30", "", "1e30"},
}

func TestFormatScientific(t *testing.T) {
	var buf Buffer
	for _, tt := range formatTests {
		if got := string(buf.FormatScientific(tt.x)); got != tt.scientific {
			t.Errorf("FormatScientific(%v) = %q, want %q", tt.x, got, tt.scientific)
		}
	}
}

func TestFormatDecimal(t *testing.T) {
	var buf Buffer
	for _, tt := range formatTests {
		if tt.decimal == "" {
			continue
		}
		if got := string(buf.FormatDecimal(tt.x)); got != tt.decimal {
			t.Errorf("FormatDecimal(%v) = %q, want %q", tt.x, got, tt.decimal)
		}
	}
}

func TestFormatGeneral(t *testing.T) {
	var buf Buffer
	for _, tt := range formatTests {
		if got := string(buf.Format(tt.x)); got != tt.general {
			t.Errorf("Format(%v) = %q, want %q", tt.x, got, tt.general)
		}
	}
}

func TestFormatDecimalMinSubnormal(t *testing.T) {
	var buf Buffer
	got := string(buf.FormatDecimal(4.94065645841246544177e-324))
	want := "0." + zeros(323) + "5"
	if got != want {
		t.Errorf("FormatDecimal(min subnormal) = %q, want 323 zeros then 5", got)
	}
}

func TestFormatDecimalMax(t *testing.T) {
	var buf Buffer
	got := string(buf.FormatDecimal(math.MaxFloat64))
	if len(got) != 311 {
		t.Fatalf("len(FormatDecimal(MaxFloat64)) = %d, want 311 (309 digits + \".0\")", len(got))
	}
	if got[len(got)-2:] != ".0" {
		t.Errorf("FormatDecimal(MaxFloat64) does not end in \".0\": %q", got[len(got)-10:])
	}
}

func zeros(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}

func TestFormatSignFlip(t *testing.T) {
	rng := newRand(6)
	var buf Buffer
	for i := 0; i < 20000; i++ {
		f := randFloat(rng)
		if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		pos := string(buf.FormatScientific(math.Abs(f)))
		neg := string(buf.FormatScientific(-math.Abs(f)))
		if neg != "-"+pos {
			t.Fatalf("FormatScientific(%v) = %q, FormatScientific(%v) = %q, want a '-' prefix",
				math.Abs(f), pos, -math.Abs(f), neg)
		}
	}
}

// TestFormatAgreesWithStrconv cross-checks the scientific mantissa and
// exponent teju computes against strconv's independently-implemented
// shortest formatter.
func TestFormatAgreesWithStrconv(t *testing.T) {
	rng := newRand(7)
	var buf Buffer
	for i := 0; i < 200000; i++ {
		f := randFloat(rng)
		if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		f = math.Abs(f)
		got := string(buf.FormatScientific(f))
		want := referenceScientific(f)
		if got != want {
			t.Fatalf("FormatScientific(%v) = %q, strconv gives %q", f, got, want)
		}
	}
}

// TestFormatAgreesWithStrconvUncentered is TestFormatAgreesWithStrconv
// restricted to exact powers of two (other than the smallest normal),
// which the uniform bit-pattern fuzz above samples only with probability
// ~2^-52 and so barely exercises at all.
func TestFormatAgreesWithStrconvUncentered(t *testing.T) {
	rng := newRand(10)
	var buf Buffer
	for i := 0; i < 20000; i++ {
		f := randPowerOfTwo(rng)
		got := string(buf.FormatScientific(f))
		want := referenceScientific(f)
		if got != want {
			t.Fatalf("FormatScientific(%v) = %q, strconv gives %q", f, got, want)
		}
	}
}

// referenceScientific reformats strconv's independently-implemented
// shortest 'e'-form output into teju's own scientific notation (no
// zero-padded exponent, no explicit '+', no decimal point for a
// single-digit mantissa), so the two can be compared directly.
func referenceScientific(f float64) string {
	s := strconv.FormatFloat(f, 'e', -1, 64)
	eIdx := strings.IndexByte(s, 'e')
	mantissa := strings.Replace(s[:eIdx], ".", "", 1)
	exp, err := strconv.Atoi(s[eIdx+1:])
	if err != nil {
		panic(err)
	}

	var b strings.Builder
	b.WriteByte(mantissa[0])
	if len(mantissa) > 1 {
		b.WriteByte('.')
		b.WriteString(mantissa[1:])
	}
	b.WriteByte('e')
	b.WriteString(strconv.Itoa(exp))
	return b.String()
}
