// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

// Package wincomp defines the composition graph: the typed, mutable tree
// of visuals, shapes, geometries, brushes, clips, easings, and animations
// that the IR builder produces from a Lottie document and the optimizer
// rewrites in place.
//
// Nodes are concrete structs sharing embedded bases. The Object interface
// carries the kind tag; capability predicates (IsVisual, IsShape, ...)
// are functions over the tag rather than a type hierarchy.
package wincomp

import "fmt"

// Kind identifies a node variant.
type Kind int

const (
	KindInvalid Kind = iota

	// Visuals.
	KindContainerVisual
	KindShapeVisual
	KindSpriteVisual

	// Shapes.
	KindContainerShape
	KindSpriteShape

	// Geometries.
	KindPathGeometry
	KindEllipseGeometry
	KindRectangleGeometry
	KindRoundedRectangleGeometry

	// Brushes.
	KindColorBrush
	KindEffectBrush
	KindSurfaceBrush

	// Clips.
	KindInsetClip
	KindGeometricClip

	// Easings.
	KindLinearEasing
	KindCubicBezierEasing
	KindStepEasing
	KindHoldEasing

	// Animations.
	KindExpressionAnimation
	KindScalarKeyFrameAnimation
	KindVector2KeyFrameAnimation
	KindVector3KeyFrameAnimation
	KindVector4KeyFrameAnimation
	KindColorKeyFrameAnimation
	KindPathKeyFrameAnimation
	KindBooleanKeyFrameAnimation

	// Auxiliary.
	KindAnimationController
	KindVisualSurface
	KindViewBox
)

var kindNames = map[Kind]string{
	KindContainerVisual:          "ContainerVisual",
	KindShapeVisual:              "ShapeVisual",
	KindSpriteVisual:             "SpriteVisual",
	KindContainerShape:           "ContainerShape",
	KindSpriteShape:              "SpriteShape",
	KindPathGeometry:             "PathGeometry",
	KindEllipseGeometry:          "EllipseGeometry",
	KindRectangleGeometry:        "RectangleGeometry",
	KindRoundedRectangleGeometry: "RoundedRectangleGeometry",
	KindColorBrush:               "ColorBrush",
	KindEffectBrush:              "EffectBrush",
	KindSurfaceBrush:             "SurfaceBrush",
	KindInsetClip:                "InsetClip",
	KindGeometricClip:            "GeometricClip",
	KindLinearEasing:             "LinearEasing",
	KindCubicBezierEasing:        "CubicBezierEasing",
	KindStepEasing:               "StepEasing",
	KindHoldEasing:               "HoldEasing",
	KindExpressionAnimation:      "ExpressionAnimation",
	KindScalarKeyFrameAnimation:  "ScalarKeyFrameAnimation",
	KindVector2KeyFrameAnimation: "Vector2KeyFrameAnimation",
	KindVector3KeyFrameAnimation: "Vector3KeyFrameAnimation",
	KindVector4KeyFrameAnimation: "Vector4KeyFrameAnimation",
	KindColorKeyFrameAnimation:   "ColorKeyFrameAnimation",
	KindPathKeyFrameAnimation:    "PathKeyFrameAnimation",
	KindBooleanKeyFrameAnimation: "BooleanKeyFrameAnimation",
	KindAnimationController:      "AnimationController",
	KindVisualSurface:            "VisualSurface",
	KindViewBox:                  "ViewBox",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsVisual reports whether k is a visual variant.
func (k Kind) IsVisual() bool {
	switch k {
	case KindContainerVisual, KindShapeVisual, KindSpriteVisual:
		return true
	}
	return false
}

// IsShape reports whether k is a shape variant.
func (k Kind) IsShape() bool {
	return k == KindContainerShape || k == KindSpriteShape
}

// IsContainer reports whether k owns a child sequence that can be
// spliced: visuals own child visuals, container shapes own child shapes.
func (k Kind) IsContainer() bool {
	return k.IsVisual() || k == KindContainerShape
}

// Object is implemented by every composition node.
type Object interface {
	Kind() Kind
	Base() *ObjectBase
}

// ObjectBase holds the state common to all composition nodes: authoring
// metadata, the property set, and the animator list.
type ObjectBase struct {
	Name             string
	ShortDescription string
	LongDescription  string
	Properties       PropertySet
	Animators        []*Animator
}

func (b *ObjectBase) Base() *ObjectBase { return b }

// StartAnimation binds an animation to the named property and returns
// the new animator so a caller can attach a controller.
func (b *ObjectBase) StartAnimation(target string, anim CompositionAnimation) *Animator {
	a := &Animator{Target: target, Animation: anim}
	b.Animators = append(b.Animators, a)
	return a
}

// StopAnimation removes the first animator targeting the named property.
// Removing a property that is not animated is a no-op.
func (b *ObjectBase) StopAnimation(target string) {
	for i, a := range b.Animators {
		if a.Target == target {
			b.Animators = append(b.Animators[:i], b.Animators[i+1:]...)
			return
		}
	}
}

// AnimatorByTarget returns the first animator targeting the named
// property, or nil.
func (b *ObjectBase) AnimatorByTarget(target string) *Animator {
	for _, a := range b.Animators {
		if a.Target == target {
			return a
		}
	}
	return nil
}

// IsPropertyAnimated reports whether some animator targets the named
// property.
func (b *ObjectBase) IsPropertyAnimated(target string) bool {
	return b.AnimatorByTarget(target) != nil
}

// PropagateDescriptions copies authoring metadata from an eliminated node
// onto a retained replacement. Short descriptions concatenate so a reader
// of the generated source can still see what was folded together; the
// long description and name only fill a gap.
func PropagateDescriptions(from, to Object) {
	fb, tb := from.Base(), to.Base()
	if fb.ShortDescription != "" {
		if tb.ShortDescription == "" {
			tb.ShortDescription = fb.ShortDescription
		} else {
			tb.ShortDescription = fb.ShortDescription + " " + tb.ShortDescription
		}
	}
	if tb.LongDescription == "" {
		tb.LongDescription = fb.LongDescription
	}
	if tb.Name == "" {
		tb.Name = fb.Name
	}
}
