// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package teju

// formatScientific renders r as [-]d[.ddd]e[sign]ddd, with a mantissa of at
// least one digit and no decimal point when the mantissa has only one. buf
// must have at least 32 bytes of room. Returns the number of bytes written.
func formatScientific(r Result, buf []byte) int {
	n := 0
	if r.neg {
		buf[0] = '-'
		n = 1
	}

	mant := r.decimal.mant
	mantLen := digitCount(mant)
	printU64KnownLen(buf[n+1:], mant, mantLen)

	buf[n] = buf[n+1]
	buf[n+1] = '.'
	fracLen := mantLen - 1
	pos := n + mantLen
	if fracLen > 0 {
		pos++
	}

	buf[pos] = 'e'
	expLen := printI32Exp(buf[pos+1:], r.decimal.exp+int32(fracLen))
	return pos + 1 + expLen
}

// formatDecimal renders r as [-][int].[frac]. buf must have at least
// decMaxLen bytes of room. Returns the number of bytes written.
func formatDecimal(r Result, buf []byte) int {
	n := 0
	if r.neg {
		buf[0] = '-'
		n = 1
	}

	mant := r.decimal.mant
	dexp := r.decimal.exp
	mantLen := digitCount(mant)
	decimalExp := int32(mantLen) + dexp

	switch {
	case dexp >= 0:
		printU64KnownLen(buf[n:], mant, mantLen)
		zeros := int(dexp) + 2
		padded := (zeros + 7) &^ 7
		for i := 0; i < padded; i++ {
			buf[n+mantLen+i] = '0'
		}
		buf[n+mantLen+int(dexp)] = '.'
		return n + mantLen + zeros

	case decimalExp > 0:
		printU64KnownLen(buf[n:], mant, mantLen)
		shift := int(-dexp)
		copy(buf[n+mantLen-shift+1:n+mantLen+1], buf[n+mantLen-shift:n+mantLen])
		buf[n+int(decimalExp)] = '.'
		return n + mantLen + 1

	default:
		zeros := int(2 - decimalExp)
		for i := 0; i < zeros; i++ {
			buf[n+i] = '0'
		}
		buf[n+1] = '.'
		printU64KnownLen(buf[n+zeros:], mant, mantLen)
		return n + zeros + mantLen
	}
}

// formatGeneral picks between formatDecimal and formatScientific depending
// on how many digits the decimal form would need: short numbers are
// printed as decimals, numbers with many leading or trailing zeros as
// scientific notation. buf must have at least decMaxLen bytes of room.
func formatGeneral(r Result, buf []byte) int {
	mantLen := digitCount(r.decimal.mant)
	dexp := r.decimal.exp
	decimalExp := int32(mantLen) + dexp

	useDecimal := (dexp >= 0 && decimalExp <= 16) ||
		(decimalExp > 0 && decimalExp <= 16) ||
		(decimalExp > -5 && decimalExp <= 0)

	if useDecimal {
		return formatDecimal(r, buf)
	}
	return formatScientific(r, buf)
}
