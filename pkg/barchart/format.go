package barchart

import (
	"math"
	"strconv"
	"strings"
)

var siPrefixes = []string{`y`, `z`, `a`, `f`, `p`, `n`, `µ`, `m`, ``, `k`, `M`, `G`, `T`, `P`, `E`, `Z`, `Y`}

// SignificantDigits is the precision used by FormatSI.
const SignificantDigits = 2

// FormatSI renders v with two significant digits and an SI prefix, e.g.
// 1200 -> "1.2k", 5 -> "5.0", 999 -> "1.0k".
func FormatSI(v float64) string {
	return FormatPrefix(v, SignificantDigits)
}

// FormatPrefix is FormatSI with an explicit number of significant digits.
func FormatPrefix(v float64, precision int) string {
	if math.IsNaN(v) {
		return `NaN`
	}
	if precision < 1 {
		precision = 1
	}
	var sign string
	if v < 0 || (v == 0 && math.Signbit(v)) {
		v = -v
		if v != 0 {
			sign = `−`
		}
	}
	if math.IsInf(v, 0) {
		return sign + `Infinity`
	}
	coefficient, exponent := decimalParts(v, precision)
	prefixExponent := max(-8, min(8, floorDiv(exponent, 3)))
	i := exponent - prefixExponent*3 + 1
	n := len(coefficient)
	var s string
	switch {
	case i == n:
		s = coefficient
	case i > n:
		s = coefficient + strings.Repeat(`0`, i-n)
	case i > 0:
		s = coefficient[:i] + `.` + coefficient[i:]
	default:
		c, _ := decimalParts(v, max(0, precision+i-1))
		s = `0.` + strings.Repeat(`0`, 1-i) + c
	}
	return sign + s + siPrefixes[8+prefixExponent]
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// decimalParts returns the significant digits of v rounded half up to
// precision digits (no decimal point) and the base-10 exponent of the first
// digit. A precision of 0 keeps the shortest representation.
func decimalParts(v float64, precision int) (string, int) {
	repr := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(repr, `e`)
	exponent, _ := strconv.Atoi(exp)
	digits := strings.Replace(mantissa, `.`, ``, 1)
	if precision <= 0 {
		return digits, exponent
	}
	if len(digits) < precision {
		return digits + strings.Repeat(`0`, precision-len(digits)), exponent
	}
	if len(digits) == precision {
		return digits, exponent
	}
	roundUp := digits[precision] >= '5'
	b := []byte(digits[:precision])
	if roundUp {
		i := len(b) - 1
		for ; i >= 0; i-- {
			if b[i] < '9' {
				b[i]++
				break
			}
			b[i] = '0'
		}
		if i < 0 {
			b = append([]byte{'1'}, b[:len(b)-1]...)
			exponent++
		}
	}
	return string(b), exponent
}
