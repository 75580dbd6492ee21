// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package geometry

import "math"

// Matrix3x2 is a planar affine transform in row-vector convention:
//
//	| M11 M12 |
//	| M21 M22 |
//	| M31 M32 |
//
// with the translation in the third row, so a point transforms as
// x' = x*M11 + y*M21 + M31, y' = x*M12 + y*M22 + M32.
type Matrix3x2 struct {
	M11, M12 float64
	M21, M22 float64
	M31, M32 float64
}

// Identity3x2 returns the identity transform.
func Identity3x2() Matrix3x2 {
	return Matrix3x2{M11: 1, M22: 1}
}

// Translation3x2 returns the transform that moves points by v.
func Translation3x2(v Vector2) Matrix3x2 {
	m := Identity3x2()
	m.M31 = v.X
	m.M32 = v.Y
	return m
}

// Scale3x2 returns the transform that scales about centerPoint.
func Scale3x2(scale Vector2, centerPoint Vector2) Matrix3x2 {
	return Matrix3x2{
		M11: scale.X,
		M22: scale.Y,
		M31: centerPoint.X * (1 - scale.X),
		M32: centerPoint.Y * (1 - scale.Y),
	}
}

// Rotation3x2 returns the transform that rotates by angle radians about
// centerPoint, counter-clockwise for positive angles.
func Rotation3x2(angle float64, centerPoint Vector2) Matrix3x2 {
	sin, cos := math.Sincos(angle)
	return Matrix3x2{
		M11: cos, M12: sin,
		M21: -sin, M22: cos,
		M31: centerPoint.X*(1-cos) + centerPoint.Y*sin,
		M32: centerPoint.Y*(1-cos) - centerPoint.X*sin,
	}
}

// Mul returns the transform that applies m first and then n.
func (m Matrix3x2) Mul(n Matrix3x2) Matrix3x2 {
	return Matrix3x2{
		M11: m.M11*n.M11 + m.M12*n.M21,
		M12: m.M11*n.M12 + m.M12*n.M22,
		M21: m.M21*n.M11 + m.M22*n.M21,
		M22: m.M21*n.M12 + m.M22*n.M22,
		M31: m.M31*n.M11 + m.M32*n.M21 + n.M31,
		M32: m.M31*n.M12 + m.M32*n.M22 + n.M32,
	}
}

// TransformPoint applies m to p.
func (m Matrix3x2) TransformPoint(p Vector2) Vector2 {
	return Vector2{
		X: p.X*m.M11 + p.Y*m.M21 + m.M31,
		Y: p.X*m.M12 + p.Y*m.M22 + m.M32,
	}
}

func (m Matrix3x2) Equal(o Matrix3x2) bool {
	return nearEq(m.M11, o.M11) && nearEq(m.M12, o.M12) &&
		nearEq(m.M21, o.M21) && nearEq(m.M22, o.M22) &&
		nearEq(m.M31, o.M31) && nearEq(m.M32, o.M32)
}

// IsIdentity reports whether m is (near) the identity transform.
func (m Matrix3x2) IsIdentity() bool {
	return m.Equal(Identity3x2())
}

// Combine3x2 builds the canonical single-matrix form of a shape's
// transform slots. The runtime applies Scale innermost, then Rotation,
// then Offset, with TransformMatrix outermost, each about centerPoint
// where applicable; Combine3x2 composes in that same order. Nil slots
// contribute the identity; rotation is in degrees.
func Combine3x2(matrix *Matrix3x2, offset *Vector2, rotationDegrees *float64, scale *Vector2, centerPoint *Vector2) Matrix3x2 {
	var cp Vector2
	if centerPoint != nil {
		cp = *centerPoint
	}
	combined := Identity3x2()
	if scale != nil {
		combined = Scale3x2(*scale, cp)
	}
	if rotationDegrees != nil {
		combined = combined.Mul(Rotation3x2(*rotationDegrees*math.Pi/180, cp))
	}
	if offset != nil {
		combined = combined.Mul(Translation3x2(*offset))
	}
	if matrix != nil {
		combined = combined.Mul(*matrix)
	}
	return combined
}

// Matrix4x4 is a 3-space affine transform in row-vector convention with
// the translation in the fourth row. Only the handful of constructors the
// visual tree needs are provided.
type Matrix4x4 struct {
	M11, M12, M13, M14 float64
	M21, M22, M23, M24 float64
	M31, M32, M33, M34 float64
	M41, M42, M43, M44 float64
}

// Identity4x4 returns the identity transform.
func Identity4x4() Matrix4x4 {
	return Matrix4x4{M11: 1, M22: 1, M33: 1, M44: 1}
}

// Translation4x4 returns the transform that moves points by v.
func Translation4x4(v Vector3) Matrix4x4 {
	m := Identity4x4()
	m.M41 = v.X
	m.M42 = v.Y
	m.M43 = v.Z
	return m
}

// Scale4x4 returns the transform that scales about centerPoint.
func Scale4x4(scale Vector3, centerPoint Vector3) Matrix4x4 {
	m := Identity4x4()
	m.M11 = scale.X
	m.M22 = scale.Y
	m.M33 = scale.Z
	m.M41 = centerPoint.X * (1 - scale.X)
	m.M42 = centerPoint.Y * (1 - scale.Y)
	m.M43 = centerPoint.Z * (1 - scale.Z)
	return m
}

// RotationZ4x4 returns the transform that rotates by angle radians about
// the Z axis through centerPoint.
func RotationZ4x4(angle float64, centerPoint Vector3) Matrix4x4 {
	sin, cos := math.Sincos(angle)
	m := Identity4x4()
	m.M11 = cos
	m.M12 = sin
	m.M21 = -sin
	m.M22 = cos
	m.M41 = centerPoint.X*(1-cos) + centerPoint.Y*sin
	m.M42 = centerPoint.Y*(1-cos) - centerPoint.X*sin
	return m
}

// Mul returns the transform that applies m first and then n.
func (m Matrix4x4) Mul(n Matrix4x4) Matrix4x4 {
	var r Matrix4x4
	r.M11 = m.M11*n.M11 + m.M12*n.M21 + m.M13*n.M31 + m.M14*n.M41
	r.M12 = m.M11*n.M12 + m.M12*n.M22 + m.M13*n.M32 + m.M14*n.M42
	r.M13 = m.M11*n.M13 + m.M12*n.M23 + m.M13*n.M33 + m.M14*n.M43
	r.M14 = m.M11*n.M14 + m.M12*n.M24 + m.M13*n.M34 + m.M14*n.M44
	r.M21 = m.M21*n.M11 + m.M22*n.M21 + m.M23*n.M31 + m.M24*n.M41
	r.M22 = m.M21*n.M12 + m.M22*n.M22 + m.M23*n.M32 + m.M24*n.M42
	r.M23 = m.M21*n.M13 + m.M22*n.M23 + m.M23*n.M33 + m.M24*n.M43
	r.M24 = m.M21*n.M14 + m.M22*n.M24 + m.M23*n.M34 + m.M24*n.M44
	r.M31 = m.M31*n.M11 + m.M32*n.M21 + m.M33*n.M31 + m.M34*n.M41
	r.M32 = m.M31*n.M12 + m.M32*n.M22 + m.M33*n.M32 + m.M34*n.M42
	r.M33 = m.M31*n.M13 + m.M32*n.M23 + m.M33*n.M33 + m.M34*n.M43
	r.M34 = m.M31*n.M14 + m.M32*n.M24 + m.M33*n.M34 + m.M34*n.M44
	r.M41 = m.M41*n.M11 + m.M42*n.M21 + m.M43*n.M31 + m.M44*n.M41
	r.M42 = m.M41*n.M12 + m.M42*n.M22 + m.M43*n.M32 + m.M44*n.M42
	r.M43 = m.M41*n.M13 + m.M42*n.M23 + m.M43*n.M33 + m.M44*n.M43
	r.M44 = m.M41*n.M14 + m.M42*n.M24 + m.M43*n.M34 + m.M44*n.M44
	return r
}

func (m Matrix4x4) Equal(o Matrix4x4) bool {
	a := [16]float64{m.M11, m.M12, m.M13, m.M14, m.M21, m.M22, m.M23, m.M24, m.M31, m.M32, m.M33, m.M34, m.M41, m.M42, m.M43, m.M44}
	b := [16]float64{o.M11, o.M12, o.M13, o.M14, o.M21, o.M22, o.M23, o.M24, o.M31, o.M32, o.M33, o.M34, o.M41, o.M42, o.M43, o.M44}
	for i := range a {
		if !nearEq(a[i], b[i]) {
			return false
		}
	}
	return true
}

// IsIdentity reports whether m is (near) the identity transform.
func (m Matrix4x4) IsIdentity() bool {
	return m.Equal(Identity4x4())
}

// Combine4x4 is the visual-tree analog of Combine3x2. The rotation must
// already be known to be about the Z axis; callers check the axis before
// folding.
func Combine4x4(matrix *Matrix4x4, offset *Vector3, rotationDegrees *float64, scale *Vector3, centerPoint *Vector3) Matrix4x4 {
	var cp Vector3
	if centerPoint != nil {
		cp = *centerPoint
	}
	combined := Identity4x4()
	if scale != nil {
		combined = Scale4x4(*scale, cp)
	}
	if rotationDegrees != nil {
		combined = combined.Mul(RotationZ4x4(*rotationDegrees*math.Pi/180, cp))
	}
	if offset != nil {
		combined = combined.Mul(Translation4x4(*offset))
	}
	if matrix != nil {
		combined = combined.Mul(*matrix)
	}
	return combined
}
