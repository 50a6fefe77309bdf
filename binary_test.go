// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package teju

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeBinaryExtremes(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want Binary
	}{
		{"zero", 0.0, Binary{exp: minExp, mant: 0}},
		{"min subnormal", 4.94065645841246544177e-324, Binary{exp: -1022 - 52, mant: 1}},
		{"min normal", math.SmallestNonzeroFloat64 * (1 << 52), Binary{exp: -1022 - 52, mant: 1 << 52}},
		{"max", math.MaxFloat64, Binary{exp: 1023 - 52, mant: 1<<53 - 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeBinary(math.Float64bits(tt.x))
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(Binary{})); diff != "" {
				t.Errorf("decodeBinary(%v) diff (-want +got):\n%s", tt.x, diff)
			}
		})
	}
}

func TestDecodeBinaryRoundtrip(t *testing.T) {
	rng := newRand(1)
	for i := 0; i < 200000; i++ {
		bits := rng.Uint64()
		f := math.Float64frombits(bits)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		b := decodeBinary(bits &^ (1 << 63))
		got := math.Ldexp(float64(b.mant), int(b.exp))
		want := math.Abs(f)
		if got != want {
			t.Fatalf("decodeBinary(%#x) = %+v, Ldexp gives %v, want %v", bits, b, got, want)
		}
	}
}
