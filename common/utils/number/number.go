package number

import (
	"math"
	"strconv"
)

var epsilon float64 = 0.000001

// IsZero reports whether f is within 1e-6 of zero.
func IsZero(f float64) bool {
	return math.Abs(f) < epsilon
}

// IsFinite is false for NaN and both infinities.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func FloatToStr(f float64, precision int) string {
	if f == 0 {
		// no "-0.00"
		f = 0
	}

	return strconv.FormatFloat(f, 'f', precision, 64)
}

func DegreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
