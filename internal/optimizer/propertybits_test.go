// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package optimizer

import (
	"testing"

	"github.com/karimalambert/Lottie-Windows/internal/wincomp"
)

func TestArePropertiesOrthogonal(t *testing.T) {
	tests := []struct {
		name   string
		parent PropertyMask
		child  PropertyMask
		want   bool
	}{
		{"both empty", 0, 0, true},
		{"disjoint commuting", maskOf(PropertyOpacity), maskOf(PropertyColor), true},
		{"overlap", maskOf(PropertyScale), maskOf(PropertyScale), false},
		{"child matrix under parent offset", maskOf(PropertyOffset), maskOf(PropertyTransformMatrix), false},
		{"child matrix under parent opacity", maskOf(PropertyOpacity), maskOf(PropertyTransformMatrix), true},
		{"parent rotation over child offset", maskOf(PropertyRotationAngle), maskOf(PropertyOffset), false},
		{"parent rotation over child scale", maskOf(PropertyRotationAngle), maskOf(PropertyScale), true},
		{"parent scale over child offset", maskOf(PropertyScale), maskOf(PropertyOffset), false},
		{"parent scale over child rotation", maskOf(PropertyScale), maskOf(PropertyRotationAngle), false},
		{"parent scale over child clip", maskOf(PropertyScale), maskOf(PropertyClip), false},
		{"parent offset over child rotation", maskOf(PropertyOffset), maskOf(PropertyRotationAngle), true},
		{"unknown vetoes", maskOf(PropertyUnknown), maskOf(PropertyOpacity), false},
		{"unknown against empty", maskOf(PropertyUnknown), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := arePropertiesOrthogonal(tt.parent, tt.child); got != tt.want {
				t.Errorf("arePropertiesOrthogonal(%b, %b) = %v, want %v", tt.parent, tt.child, got, tt.want)
			}
		})
	}
}

func TestPropertyMaskFromAnimators(t *testing.T) {
	sprite := &wincomp.SpriteShape{}
	sprite.StartAnimation("Scale", &wincomp.Vector2KeyFrameAnimation{})
	sprite.StartAnimation("Offset.X", &wincomp.ScalarKeyFrameAnimation{})
	sprite.StartAnimation("Wobble", &wincomp.ScalarKeyFrameAnimation{})

	mask := shapePropertyMask(sprite)
	if !mask.Has(PropertyScale) {
		t.Error("Scale animator not reflected in mask")
	}
	if !mask.Has(PropertyOffset) {
		t.Error("Offset.X should map to the Offset property")
	}
	if !mask.Has(PropertyUnknown) {
		t.Error("unrecognized target should map to PropertyUnknown")
	}
}
