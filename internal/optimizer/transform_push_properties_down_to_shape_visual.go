// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package optimizer

import (
	"github.com/karimalambert/Lottie-Windows/internal/wincomp"
)

// PushPropertiesDownToShapeVisual strips a container that holds only a
// zero-inset InsetClip and a Size equal to its sole ShapeVisual child's
// Size. A shape visual already clips to its own size, so the container's
// clip and size add nothing; dropping them leaves a bare container for
// CoalesceContainerVisuals to splice.
type PushPropertiesDownToShapeVisual struct{}

func (*PushPropertiesDownToShapeVisual) Name() string { return "PushPropertiesDownToShapeVisual" }

func (*PushPropertiesDownToShapeVisual) Transform(g *GraphState) bool {
	progress := false
	for _, v := range g.visualNodes() {
		container, ok := v.(*wincomp.ContainerVisual)
		if !ok || len(container.Children) != 1 {
			continue
		}
		child, ok := container.Children[0].(*wincomp.ShapeVisual)
		if !ok {
			continue
		}
		if len(container.Animators) > 0 {
			continue
		}
		if visualPropertyMask(container) != maskOf(PropertyClip, PropertySize) {
			continue
		}
		clip, ok := container.Clip.(*wincomp.InsetClip)
		if !ok || !clip.IsZeroInset() {
			continue
		}
		if child.Size == nil || !container.Size.Equal(*child.Size) || child.IsPropertyAnimated("Size") {
			continue
		}
		container.Clip = nil
		container.Size = nil
		progress = true
	}
	return progress
}
