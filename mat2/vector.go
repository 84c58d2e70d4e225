// SPDX-License-Identifier: MIT

package mat2

import (
	"fmt"
	"math"
)

// Vector is a 2D column vector.
type Vector struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Add returns v + w.
func (v Vector) Add(w Vector) Vector { return Vector{v.X + w.X, v.Y + w.Y} }

// Sub returns v − w.
func (v Vector) Sub(w Vector) Vector { return Vector{v.X - w.X, v.Y - w.Y} }

// Scale returns k·v.
func (v Vector) Scale(k float64) Vector { return Vector{k * v.X, k * v.Y} }

// Dot returns v·w.
func (v Vector) Dot(w Vector) float64 { return v.X*w.X + v.Y*w.Y }

// Cross returns the z component of v × w, the signed parallelogram area.
func (v Vector) Cross(w Vector) float64 { return v.X*w.Y - v.Y*w.X }

// Norm returns the Euclidean length.
func (v Vector) Norm() float64 { return math.Hypot(v.X, v.Y) }

// Perp returns v rotated by +90°.
func (v Vector) Perp() Vector { return Vector{-v.Y, v.X} }

// Lerp returns (1−t)·v + t·w.
func (v Vector) Lerp(w Vector, t float64) Vector {
	return Vector{v.X + t*(w.X-v.X), v.Y + t*(w.Y-v.Y)}
}

// Normalize returns v scaled to unit length. A vector whose length is below
// DefaultEpsilon comes back as the zero vector.
func (v Vector) Normalize() Vector {
	return normalize(v, DefaultEpsilon)
}

func normalize(v Vector, eps float64) Vector {
	n := v.Norm()
	if n < eps || n == 0 {
		return Vector{}
	}

	return Vector{v.X / n, v.Y / n}
}

// IsZero reports whether both components are exactly zero.
func (v Vector) IsZero() bool { return v.X == 0 && v.Y == 0 }

func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
