// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package optimizer

import (
	"github.com/karimalambert/Lottie-Windows/internal/wincomp"
)

// CoalesceOrthogonalContainerVisuals folds a container visual's sole
// container child into it when their property sets are disjoint and
// order-compatible. The direction is the reverse of
// CoalesceOrthogonalVisuals: the child's properties hoist up onto the
// parent and the child splices out, so the rule also applies at the
// root, which has no parent to splice into.
type CoalesceOrthogonalContainerVisuals struct{}

func (*CoalesceOrthogonalContainerVisuals) Name() string { return "CoalesceOrthogonalContainerVisuals" }

func (*CoalesceOrthogonalContainerVisuals) Transform(g *GraphState) bool {
	progress := false
	for _, v := range g.visualNodes() {
		container, ok := v.(*wincomp.ContainerVisual)
		if !ok || len(container.Children) != 1 {
			continue
		}
		child, ok := container.Children[0].(*wincomp.ContainerVisual)
		if !ok {
			continue
		}
		if !child.Properties.IsEmpty() {
			continue
		}
		if g.Index.IsReferenced(child) {
			continue
		}
		if !arePropertiesOrthogonal(visualPropertyMask(container), visualPropertyMask(child)) {
			continue
		}
		transferVisualProperties(child, container)
		if g.elideContainerVisual(child) {
			progress = true
		}
	}
	return progress
}
