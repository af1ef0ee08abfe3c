package layout

import (
	"strconv"
	"strings"
)

// Precision is the number of significant digits sizes are compared and formatted at.
const Precision = 10

// toPrecision rounds v to Precision significant digits.
func toPrecision(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'e', Precision-1, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// fuzzyCompare compares a and b after rounding both to Precision significant digits.
// It returns -1, 0 or 1.
func fuzzyCompare(a, b float64) int {
	ra, rb := toPrecision(a), toPrecision(b)
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	default:
		return 0
	}
}

// fuzzyEqual reports whether a and b match at Precision significant digits.
func fuzzyEqual(a, b float64) bool {
	return fuzzyCompare(a, b) == 0
}

// FormatSize renders v with Precision significant digits, e.g. 45 -> "45.00000000",
// 0 -> "0.000000000". Like JavaScript's toPrecision it switches to exponential
// notation when the exponent is below -6 or at least Precision: 1e-7 -> "1.000000000e-7".
func FormatSize(v float64) string {
	sci := strconv.FormatFloat(v, 'e', Precision-1, 64)
	mant, e, _ := strings.Cut(sci, "e")
	exp, err := strconv.Atoi(e)
	if err != nil {
		exp = 0
	}
	if exp < -6 || exp >= Precision {
		sign := "+"
		if exp < 0 {
			sign, exp = "-", -exp
		}
		return mant + "e" + sign + strconv.Itoa(exp)
	}
	decimals := Precision - 1 - exp
	if decimals < 0 {
		decimals = 0
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
