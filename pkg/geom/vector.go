package geom

import "math"

// Vector3 represents a point or extent in the 3D scene (Y is up).
type Vector3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Vec is a shorthand constructor for Vector3.
func Vec(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Uniform returns a vector with the same value on every axis.
func Uniform(v float64) Vector3 {
	return Vector3{X: v, Y: v, Z: v}
}

// Add returns v + w.
func (v Vector3) Add(w Vector3) Vector3 {
	return Vector3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Mul returns the component-wise product of v and w.
func (v Vector3) Mul(w Vector3) Vector3 {
	return Vector3{v.X * w.X, v.Y * w.Y, v.Z * w.Z}
}

// Scale returns v * s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Average returns the mean of the three components.
func (v Vector3) Average() float64 {
	return (v.X + v.Y + v.Z) / 3
}

// Volume returns the product of the three components.
func (v Vector3) Volume() float64 {
	return v.X * v.Y * v.Z
}

// FootprintDiagonal returns the XZ-plane diagonal, the footprint metric
// used when only ground coverage matters.
func (v Vector3) FootprintDiagonal() float64 {
	return math.Hypot(v.X, v.Z)
}

// Max returns the largest component.
func (v Vector3) Max() float64 {
	return math.Max(v.X, math.Max(v.Y, v.Z))
}

// IsZero returns true if every component is zero.
func (v Vector3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// SwapXY returns v with the X and Y components exchanged.
func (v Vector3) SwapXY() Vector3 {
	return Vector3{v.Y, v.X, v.Z}
}

// SwapXZ returns v with the X and Z components exchanged.
func (v Vector3) SwapXZ() Vector3 {
	return Vector3{v.Z, v.Y, v.X}
}

// SwapYZ returns v with the Y and Z components exchanged.
func (v Vector3) SwapYZ() Vector3 {
	return Vector3{v.X, v.Z, v.Y}
}
