// Package trig approximates trigonometric functions of angles given in
// degrees using truncated Maclaurin series.
//
// Each function takes the number of series terms to sum. The series are not
// range-reduced, so accuracy falls off with the size of the angle: ten terms
// stay within about 1e-8 for angles up to 180 degrees in magnitude.
package trig

import "math"

// DefaultTerms is the term count used by callers that do not choose one.
const DefaultTerms = 10

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Sin returns the sine of degrees summed over terms series terms.
func Sin(degrees float64, terms uint) float64 {
	x := radians(degrees)
	result, sign := 0.0, 1.0
	numerator, denominator := x, 1.0
	for k := range terms {
		result += sign * numerator / denominator
		numerator *= x * x
		denominator *= float64(2*k+2) * float64(2*k+3)
		sign = -sign
	}
	return result
}

// Cos returns the cosine of degrees summed over terms series terms.
func Cos(degrees float64, terms uint) float64 {
	x := radians(degrees)
	result, sign := 0.0, 1.0
	numerator, denominator := 1.0, 1.0
	for k := range terms {
		result += sign * numerator / denominator
		numerator *= x * x
		denominator *= float64(2*k+1) * float64(2*k+2)
		sign = -sign
	}
	return result
}

// Tan returns Sin/Cos. It returns +Inf where the tangent is undefined,
// that is when degrees mod 180 is 90 or -90.
func Tan(degrees float64, terms uint) float64 {
	if m := math.Mod(degrees, 180); m == 90 || m == -90 {
		return math.Inf(1)
	}
	return Sin(degrees, terms) / Cos(degrees, terms)
}

// Cot returns Cos/Sin. It returns +Inf when degrees is a multiple of 180.
func Cot(degrees float64, terms uint) float64 {
	if math.Mod(degrees, 180) == 0 {
		return math.Inf(1)
	}
	return Cos(degrees, terms) / Sin(degrees, terms)
}
