// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package optimizer

import (
	"github.com/karimalambert/Lottie-Windows/internal/wincomp"
)

// CoalesceContainerVisuals splices out container visuals that set
// nothing: no slots, no animators, no property-set members. The visual
// analog of ElideStructuralContainerShapes.
type CoalesceContainerVisuals struct{}

func (*CoalesceContainerVisuals) Name() string { return "CoalesceContainerVisuals" }

func (*CoalesceContainerVisuals) Transform(g *GraphState) bool {
	progress := false
	for _, v := range g.visualNodes() {
		container, ok := v.(*wincomp.ContainerVisual)
		if !ok || len(container.Children) == 0 {
			continue
		}
		if !visualPropertyMask(container).IsEmpty() || !container.Properties.IsEmpty() {
			continue
		}
		if g.Index.IsReferenced(container) {
			continue
		}
		if g.elideContainerVisual(container) {
			progress = true
		}
	}
	return progress
}
