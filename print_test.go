// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package teju

import (
	"strconv"
	"testing"
)

func TestDigitCount(t *testing.T) {
	tests := []struct {
		x    uint64
		want int
	}{
		{0, 1},
		{1, 1},
		{9, 1},
		{10, 2},
		{99, 2},
		{100, 3},
		{61295, 5},
		{99999999999999999, 17},
		{10000000000000000, 17},
		{9999999999999999, 16},
	}
	for _, tt := range tests {
		if got := digitCount(tt.x); got != tt.want {
			t.Errorf("digitCount(%d) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestPrintU64KnownLen(t *testing.T) {
	tests := []uint64{0, 1, 9, 10, 61295, 1234, 99999999999999999}
	var buf [24]byte
	for _, x := range tests {
		want := strconv.FormatUint(x, 10)
		n := printU64KnownLen(buf[:], x, digitCount(x))
		if n != len(want) || string(buf[:n]) != want {
			t.Errorf("printU64KnownLen(%d) = %q, want %q", x, buf[:n], want)
		}
	}
}

func TestPrintU64KnownLenFuzz(t *testing.T) {
	rng := newRand(5)
	var buf [24]byte
	for i := 0; i < 200000; i++ {
		x := rng.Uint64() % 100000000000000000
		want := strconv.FormatUint(x, 10)
		n := printU64KnownLen(buf[:], x, len(want))
		if string(buf[:n]) != want {
			t.Fatalf("printU64KnownLen(%d) = %q, want %q", x, buf[:n], want)
		}
	}
}

func TestPrintI32Exp(t *testing.T) {
	var buf [8]byte
	for x := -999; x <= 999; x++ {
		want := strconv.Itoa(x)
		n := printI32Exp(buf[:], int32(x))
		if string(buf[:n]) != want {
			t.Fatalf("printI32Exp(%d) = %q, want %q", x, buf[:n], want)
		}
	}
}
