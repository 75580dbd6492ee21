// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package geometry

import (
	"math"
	"testing"
)

func TestMatrix3x2Identity(t *testing.T) {
	if !Identity3x2().IsIdentity() {
		t.Error("identity is not identity")
	}
	if Translation3x2(Vector2{X: 1}).IsIdentity() {
		t.Error("translation must not be identity")
	}
}

func TestMatrix3x2MulAppliesLeftFirst(t *testing.T) {
	// Scale by 2 about the origin, then translate by (10, 0).
	m := Scale3x2(Vector2{X: 2, Y: 2}, Vector2{}).Mul(Translation3x2(Vector2{X: 10}))
	got := m.TransformPoint(Vector2{X: 1, Y: 1})
	want := Vector2{X: 12, Y: 2}
	if !got.Equal(want) {
		t.Errorf("TransformPoint = %v, want %v", got, want)
	}

	// The reverse order translates first.
	m = Translation3x2(Vector2{X: 10}).Mul(Scale3x2(Vector2{X: 2, Y: 2}, Vector2{}))
	got = m.TransformPoint(Vector2{X: 1, Y: 1})
	want = Vector2{X: 22, Y: 2}
	if !got.Equal(want) {
		t.Errorf("TransformPoint = %v, want %v", got, want)
	}
}

func TestScaleAboutCenter(t *testing.T) {
	m := Scale3x2(Vector2{X: 2, Y: 2}, Vector2{X: 10, Y: 10})
	if got := m.TransformPoint(Vector2{X: 10, Y: 10}); !got.Equal(Vector2{X: 10, Y: 10}) {
		t.Errorf("center must be fixed, got %v", got)
	}
	if got := m.TransformPoint(Vector2{X: 11, Y: 10}); !got.Equal(Vector2{X: 12, Y: 10}) {
		t.Errorf("scaling about center wrong: %v", got)
	}
}

func TestRotationAboutCenter(t *testing.T) {
	m := Rotation3x2(math.Pi/2, Vector2{X: 5, Y: 5})
	if got := m.TransformPoint(Vector2{X: 5, Y: 5}); !got.Equal(Vector2{X: 5, Y: 5}) {
		t.Errorf("center must be fixed, got %v", got)
	}
	// A quarter turn counter-clockwise takes (6,5)-(5,5)=(1,0) to (0,1)... in
	// screen coordinates with y down, (1,0) maps to (0,1) scaled off center.
	got := m.TransformPoint(Vector2{X: 6, Y: 5})
	want := Vector2{X: 5, Y: 6}
	if !got.Equal(want) {
		t.Errorf("rotation wrong: got %v, want %v", got, want)
	}
}

func TestCombine3x2Order(t *testing.T) {
	scale := Vector2{X: 2, Y: 2}
	rot := 90.0
	offset := Vector2{X: 5, Y: 0}
	cp := Vector2{X: 10, Y: 10}

	combined := Combine3x2(nil, &offset, &rot, &scale, &cp)
	want := Scale3x2(scale, cp).
		Mul(Rotation3x2(math.Pi/2, cp)).
		Mul(Translation3x2(offset))
	if !combined.Equal(want) {
		t.Errorf("Combine3x2 order wrong:\n got %+v\nwant %+v", combined, want)
	}

	// A matrix slot composes outermost.
	m := Translation3x2(Vector2{X: 1, Y: 1})
	combined = Combine3x2(&m, &offset, nil, nil, nil)
	want = Translation3x2(offset).Mul(m)
	if !combined.Equal(want) {
		t.Errorf("matrix slot must compose last:\n got %+v\nwant %+v", combined, want)
	}
}

func TestCombine3x2AllNil(t *testing.T) {
	if !Combine3x2(nil, nil, nil, nil, nil).IsIdentity() {
		t.Error("empty combine must be identity")
	}
}

func TestMatrix4x4MatchesMatrix3x2ForPlanarOps(t *testing.T) {
	offset3 := Vector3{X: 3, Y: 4}
	rot := 30.0
	scale3 := Vector3{X: 2, Y: 0.5, Z: 1}
	cp3 := Vector3{X: 1, Y: 2}
	m4 := Combine4x4(nil, &offset3, &rot, &scale3, &cp3)

	offset2 := Vector2{X: 3, Y: 4}
	scale2 := Vector2{X: 2, Y: 0.5}
	cp2 := Vector2{X: 1, Y: 2}
	m3 := Combine3x2(nil, &offset2, &rot, &scale2, &cp2)

	pairs := [][2]float64{
		{m4.M11, m3.M11}, {m4.M12, m3.M12},
		{m4.M21, m3.M21}, {m4.M22, m3.M22},
		{m4.M41, m3.M31}, {m4.M42, m3.M32},
	}
	for i, p := range pairs {
		if !NearEqual(p[0], p[1]) {
			t.Errorf("element %d differs: %g vs %g", i, p[0], p[1])
		}
	}
}
