// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package teju

// floorLog10Pow2 returns ⌊log10(2^e)⌋ for e in [-112815, 112815].
//
// 1292913987/2^32 approximates log10(2) closely enough that the truncated
// product is exact over the stated range.
func floorLog10Pow2(e int32) int32 {
	return int32((1292913987 * int64(e)) >> 32)
}

// floorLog10Pow2Residual returns e - e0, where e0 is the smallest exponent
// sharing floorLog10Pow2(e0) == floorLog10Pow2(e). The result is always in
// [0, 3] for the exponent range this package uses.
func floorLog10Pow2Residual(e int32) uint32 {
	x := uint64(1292913987 * int64(e))
	return uint32(x&0xFFFFFFFF) / 1292913987
}
