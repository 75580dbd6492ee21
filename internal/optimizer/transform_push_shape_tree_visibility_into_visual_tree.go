// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package optimizer

import (
	"github.com/karimalambert/Lottie-Windows/internal/wincomp"
)

// PushShapeTreeVisibilityIntoVisualTree rewrites a visibility-encoded
// Scale on the sole shape of a ShapeVisual into the visual's IsVisible
// property. A scale that only ever takes (0,0) or (1,1) with step
// easing is a boolean in disguise; hosting it as IsVisible lets the
// runtime skip the subtree entirely while hidden, and frees the Scale
// slot for later coalescing.
//
// Only implemented for a visual with no visibility of its own: a
// pre-existing IsVisible value or animator makes the rule decline.
type PushShapeTreeVisibilityIntoVisualTree struct{}

func (*PushShapeTreeVisibilityIntoVisualTree) Name() string {
	return "PushShapeTreeVisibilityIntoVisualTree"
}

func (*PushShapeTreeVisibilityIntoVisualTree) Transform(g *GraphState) bool {
	progress := false
	for _, v := range g.visualNodes() {
		sv, ok := v.(*wincomp.ShapeVisual)
		if !ok || len(sv.Shapes) != 1 {
			continue
		}
		if sv.IsVisible != nil || sv.IsPropertyAnimated("IsVisible") {
			continue
		}
		shape := sv.Shapes[0]
		sb := shape.ShapeState()
		if !shapePropertyMask(shape).Has(PropertyScale) || !scaleEncodesVisibility(sb) {
			continue
		}

		anim := sb.AnimatorByTarget("Scale")
		if anim == nil {
			// A constant visibility scale: (0,0) hides the visual and
			// (1,1) leaves it visible.
			hidden := sb.Scale.IsZero()
			visible := !hidden
			sv.IsVisible = &visible
			sb.Scale = nil
			progress = true
			continue
		}

		kfa, ok := anim.Animation.(*wincomp.Vector2KeyFrameAnimation)
		if !ok {
			continue
		}
		boolAnim := &wincomp.BooleanKeyFrameAnimation{}
		boolAnim.Name = kfa.Name
		for _, kf := range kfa.KeyFrames {
			boolAnim.InsertKeyFrame(kf.Progress, kf.Value.IsOne(), nil)
		}
		newAnimator := sv.StartAnimation("IsVisible", boolAnim)
		// The controller migrates wholesale: its progress expression
		// drives the visibility exactly as it drove the scale.
		newAnimator.Controller = anim.Controller

		sb.Scale = nil
		sb.StopAnimation("Scale")
		progress = true
	}
	return progress
}
