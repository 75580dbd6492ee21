// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package optimizer

import (
	"github.com/karimalambert/Lottie-Windows/internal/wincomp"
)

// CoalesceOrthogonalVisuals folds a container visual into its sole
// sprite or shape visual child when their property sets are disjoint
// and composing them on one node respects the transform evaluation
// order. The container's properties transfer onto the child, and the
// child takes the container's place.
type CoalesceOrthogonalVisuals struct{}

func (*CoalesceOrthogonalVisuals) Name() string { return "CoalesceOrthogonalVisuals" }

func (*CoalesceOrthogonalVisuals) Transform(g *GraphState) bool {
	progress := false
	for _, v := range g.visualNodes() {
		container, ok := v.(*wincomp.ContainerVisual)
		if !ok || len(container.Children) != 1 {
			continue
		}
		child := container.Children[0]
		switch child.Kind() {
		case wincomp.KindSpriteVisual, wincomp.KindShapeVisual:
		default:
			continue
		}
		parent := g.Index.Parent(container)
		if parent == nil || parent.Kind() != wincomp.KindContainerVisual {
			continue
		}
		if !container.Properties.IsEmpty() {
			continue
		}
		// A visual-surface source must keep its own identity: the
		// runtime ignores its transform properties, so hoisting them
		// onto the child would make them start to apply.
		if g.Index.IsReferenced(container) {
			continue
		}
		if !arePropertiesOrthogonal(visualPropertyMask(container), visualPropertyMask(child)) {
			continue
		}
		if !g.replaceVisualChild(parent, container, child) {
			continue
		}
		transferVisualProperties(container, child)
		container.Children = nil
		progress = true
	}
	return progress
}
