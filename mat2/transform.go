// SPDX-License-Identifier: MIT

package mat2

import "math"

// Rotation returns the counter-clockwise rotation by theta radians.
func Rotation(theta float64) Matrix {
	s, c := math.Sincos(theta)

	return Matrix{c, -s, s, c}
}

// Scaling returns diag(sx, sy).
func Scaling(sx, sy float64) Matrix { return Matrix{A: sx, D: sy} }

// Shear returns [[1 shx] [shy 1]].
func Shear(shx, shy float64) Matrix { return Matrix{1, shx, shy, 1} }

// ReflectX mirrors across the x-axis.
func ReflectX() Matrix { return Matrix{A: 1, D: -1} }

// ReflectY mirrors across the y-axis.
func ReflectY() Matrix { return Matrix{A: -1, D: 1} }

// Reflection mirrors across the line through the origin along axis: 2uuᵀ − I.
func Reflection(axis Vector) (Matrix, error) {
	u := axis.Normalize()
	if u.IsZero() {
		return Matrix{}, mat2Errorf(opReflection, ErrZeroVector)
	}
	xy := 2 * u.X * u.Y

	return Matrix{u.X*u.X - u.Y*u.Y, xy, xy, u.Y*u.Y - u.X*u.X}, nil
}

// Projection returns the orthogonal projection onto the line along onto: uuᵀ.
func Projection(onto Vector) (Matrix, error) {
	u := onto.Normalize()
	if u.IsZero() {
		return Matrix{}, mat2Errorf(opProjection, ErrZeroVector)
	}

	return Matrix{u.X * u.X, u.X * u.Y, u.X * u.Y, u.Y * u.Y}, nil
}
