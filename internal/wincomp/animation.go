// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package wincomp

import (
	"github.com/karimalambert/Lottie-Windows/internal/geometry"
)

// Animator binds one animated property on its owning node to an
// animation and an optional controller. A property is animated iff some
// animator in the owner's list targets it.
type Animator struct {
	Target     string
	Animation  CompositionAnimation
	Controller *AnimationController
}

// AnimationController drives the progress of one or more animators. Its
// own Progress property is typically animated by an expression over the
// root property set.
type AnimationController struct {
	ObjectBase
	Paused bool
}

func (*AnimationController) Kind() Kind { return KindAnimationController }

// CompositionAnimation is implemented by the animation variants.
type CompositionAnimation interface {
	Object
	animation()
}

// ReferenceParameter names a node that an expression animation reads
// from. Targets are non-owning references; the graph index records them
// as in-references of the target.
type ReferenceParameter struct {
	Name   string
	Target Object
}

// ExpressionAnimation computes a value from an expression over reference
// parameters.
type ExpressionAnimation struct {
	ObjectBase
	Expression string
	References []ReferenceParameter
}

func (*ExpressionAnimation) Kind() Kind { return KindExpressionAnimation }
func (*ExpressionAnimation) animation() {}

// SetReferenceParameter binds name to target, replacing any existing
// binding of the same name.
func (a *ExpressionAnimation) SetReferenceParameter(name string, target Object) {
	for i := range a.References {
		if a.References[i].Name == name {
			a.References[i].Target = target
			return
		}
	}
	a.References = append(a.References, ReferenceParameter{Name: name, Target: target})
}

// Easing is implemented by the easing variants.
type Easing interface {
	Object
	easing()
}

// LinearEasing interpolates at constant velocity.
type LinearEasing struct {
	ObjectBase
}

func (*LinearEasing) Kind() Kind { return KindLinearEasing }
func (*LinearEasing) easing()    {}

// CubicBezierEasing interpolates along a cubic Bezier with control
// points C1 and C2.
type CubicBezierEasing struct {
	ObjectBase
	C1, C2 geometry.Vector2
}

func (*CubicBezierEasing) Kind() Kind { return KindCubicBezierEasing }
func (*CubicBezierEasing) easing()    {}

// StepEasing jumps between values in discrete steps.
type StepEasing struct {
	ObjectBase
	StepCount              int
	IsFinalStepSingleFrame bool
}

func (*StepEasing) Kind() Kind { return KindStepEasing }
func (*StepEasing) easing()    {}

// HoldEasing holds the previous value until the next key frame.
type HoldEasing struct {
	ObjectBase
}

func (*HoldEasing) Kind() Kind { return KindHoldEasing }
func (*HoldEasing) easing()    {}

// IsStepOrHold reports whether e jumps discretely rather than
// interpolating. Visibility-encoded scale animations must use only such
// easings.
func IsStepOrHold(e Easing) bool {
	if e == nil {
		return false
	}
	switch e.Kind() {
	case KindStepEasing, KindHoldEasing:
		return true
	}
	return false
}

// KeyFrame is one key frame of a key-frame animation: a value reached at
// a progress in [0,1] through the given easing. A nil easing means
// linear.
type KeyFrame[V any] struct {
	Progress float64
	Value    V
	Easing   Easing
}

// keyFrameList is the common state of the key-frame animation variants.
type keyFrameList[V any] struct {
	ObjectBase
	KeyFrames []KeyFrame[V]
}

func (l *keyFrameList[V]) animation() {}

// InsertKeyFrame appends a key frame. Key frames are kept in ascending
// progress order by construction; the builder emits them sorted.
func (l *keyFrameList[V]) InsertKeyFrame(progress float64, value V, easing Easing) {
	l.KeyFrames = append(l.KeyFrames, KeyFrame[V]{Progress: progress, Value: value, Easing: easing})
}

// The key-frame animation variants. One concrete type per value type so
// that a type switch over CompositionAnimation is exhaustive.

type ScalarKeyFrameAnimation struct {
	keyFrameList[float64]
}

func (*ScalarKeyFrameAnimation) Kind() Kind { return KindScalarKeyFrameAnimation }

type Vector2KeyFrameAnimation struct {
	keyFrameList[geometry.Vector2]
}

func (*Vector2KeyFrameAnimation) Kind() Kind { return KindVector2KeyFrameAnimation }

type Vector3KeyFrameAnimation struct {
	keyFrameList[geometry.Vector3]
}

func (*Vector3KeyFrameAnimation) Kind() Kind { return KindVector3KeyFrameAnimation }

type Vector4KeyFrameAnimation struct {
	keyFrameList[geometry.Vector4]
}

func (*Vector4KeyFrameAnimation) Kind() Kind { return KindVector4KeyFrameAnimation }

type ColorKeyFrameAnimation struct {
	keyFrameList[Color]
}

func (*ColorKeyFrameAnimation) Kind() Kind { return KindColorKeyFrameAnimation }

type PathKeyFrameAnimation struct {
	keyFrameList[*Path]
}

func (*PathKeyFrameAnimation) Kind() Kind { return KindPathKeyFrameAnimation }

// BooleanKeyFrameAnimation has no easing: boolean values always jump.
type BooleanKeyFrameAnimation struct {
	keyFrameList[bool]
}

func (*BooleanKeyFrameAnimation) Kind() Kind { return KindBooleanKeyFrameAnimation }
