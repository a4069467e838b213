package testUtils

import (
	"math"
	"strings"
)

//FloatEqUpTo returns true if abs(a-b)<=maxDiff
func FloatEqUpTo(a, b, maxDiff float64) bool {
	return math.Abs(a-b) <= maxDiff
}

//FractionDigits returns the number of digits after the decimal point in a formatted number, 0 if there is none
func FractionDigits(formatted string) int {
	idx := strings.IndexByte(formatted, '.')
	if idx < 0 {
		return 0
	}
	return len(formatted) - idx - 1
}
