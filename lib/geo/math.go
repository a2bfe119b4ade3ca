package geo

import "math"

func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
