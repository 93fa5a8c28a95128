package vecmath

import "math"

// RotateY rotates v about the Y axis by the given angle in degrees,
// matching the quaternion Euler construction the reference simulation uses
// for Replacement::Spread (spec §4.3 step 4, §3 Replacement).
func RotateY(v Vector3, degrees float32) Vector3 {
	rad := float64(degrees) * math.Pi / 180
	s, c := math.Sincos(rad)
	sf, cf := float32(s), float32(c)
	return Vector3{
		X: v.X*cf + v.Z*sf,
		Y: v.Y,
		Z: -v.X*sf + v.Z*cf,
	}
}
