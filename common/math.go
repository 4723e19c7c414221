package common

import "math"

// Lerp returns a*(1-t) + b*t. Unlike a + t*(b-a) it yields b exactly at t=1.
func Lerp(a, b, t float32) float32 {
	return a*(1-t) + b*t
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
