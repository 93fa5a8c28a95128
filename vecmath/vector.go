// Package vecmath provides the 3D vector and rotation primitives shared by
// the genome, spatial, and grammar packages.
package vecmath

import "math"

// Vector3 is a 3D float32 vector, matching the precision the genome and
// grammar packages carry their positions/velocities in.
type Vector3 struct {
	X, Y, Z float32
}

// Zero is the additive identity.
var Zero = Vector3{}

// Add returns v + o.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * f.
func (v Vector3) Scale(f float32) Vector3 {
	return Vector3{v.X * f, v.Y * f, v.Z * f}
}

// Mul returns the component-wise product of v and o.
func (v Vector3) Mul(o Vector3) Vector3 {
	return Vector3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// IsZero reports whether v is the zero vector.
func (v Vector3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// MagnitudeSq returns the squared length of v.
func (v Vector3) MagnitudeSq() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Magnitude returns the length of v.
func (v Vector3) Magnitude() float32 {
	return float32(math.Sqrt(float64(v.MagnitudeSq())))
}

// Normalize returns v scaled to unit length, or the zero vector if v is
// already zero.
func (v Vector3) Normalize() Vector3 {
	m := v.Magnitude()
	if m == 0 {
		return Zero
	}
	return v.Scale(1 / m)
}

// NormalizeTo returns v scaled to the given magnitude, or the zero vector
// if v is already zero.
func (v Vector3) NormalizeTo(mag float32) Vector3 {
	m := v.Magnitude()
	if m == 0 {
		return Zero
	}
	return v.Scale(mag / m)
}

// Distance returns the Euclidean distance between v and o.
func (v Vector3) Distance(o Vector3) float32 {
	return v.Sub(o).Magnitude()
}

// Dot returns the dot product of v and o.
func (v Vector3) Dot(o Vector3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// AngleTo returns the angle in radians between v and o, in [0, Pi].
// Returns 0 if either vector is zero (treated as "no constraint" by
// callers, matching the reference simulation's solid-angle check).
func (v Vector3) AngleTo(o Vector3) float32 {
	mv, mo := v.Magnitude(), o.Magnitude()
	if mv == 0 || mo == 0 {
		return 0
	}
	cos := v.Dot(o) / (mv * mo)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return float32(math.Acos(float64(cos)))
}

// XZ returns the horizontal projection of v used by the spatial index and
// the kinematics distance checks (spec §4.2: "the z-axis is used for the
// second coordinate").
func (v Vector3) XZ() (x, z float32) {
	return v.X, v.Z
}
