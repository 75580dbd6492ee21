// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package geometry

import "math"

// Epsilon is the tolerance used by the near-equality helpers in this
// package. Transform folding produces values through chains of float64
// multiplications, so exact comparison is never appropriate.
const Epsilon = 1e-9

// Vector2 is a point or extent in the plane.
type Vector2 struct {
	X, Y float64
}

// Vector3 is a point or extent in 3-space. Visuals use Vector3 for their
// transform properties even when the animation is purely planar.
type Vector3 struct {
	X, Y, Z float64
}

// Vector4 holds four channels. Used for color-like animated values.
type Vector4 struct {
	X, Y, Z, W float64
}

func (v Vector2) Equal(o Vector2) bool {
	return nearEq(v.X, o.X) && nearEq(v.Y, o.Y)
}

func (v Vector3) Equal(o Vector3) bool {
	return nearEq(v.X, o.X) && nearEq(v.Y, o.Y) && nearEq(v.Z, o.Z)
}

func (v Vector4) Equal(o Vector4) bool {
	return nearEq(v.X, o.X) && nearEq(v.Y, o.Y) && nearEq(v.Z, o.Z) && nearEq(v.W, o.W)
}

// IsZero reports whether every component is (near) zero.
func (v Vector2) IsZero() bool { return v.Equal(Vector2{}) }

// IsOne reports whether every component is (near) one. A scale of one is
// the identity scale.
func (v Vector2) IsOne() bool { return v.Equal(Vector2{X: 1, Y: 1}) }

func (v Vector3) IsZero() bool { return v.Equal(Vector3{}) }

func (v Vector3) IsOne() bool { return v.Equal(Vector3{X: 1, Y: 1, Z: 1}) }

// Vec2 returns the planar projection of v.
func (v Vector3) Vec2() Vector2 { return Vector2{X: v.X, Y: v.Y} }

func nearEq(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// NearEqual reports whether two scalars are equal within Epsilon.
func NearEqual(a, b float64) bool { return nearEq(a, b) }
