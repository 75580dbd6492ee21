// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package optimizer

import (
	"github.com/karimalambert/Lottie-Windows/internal/wincomp"
)

// CoalesceSingleChildContainerShapes collapses a container whose only
// set property is a static TransformMatrix into its sole container
// child: the matrix moves onto the child (where it stays outermost of
// the child's transform stack), and the parent splices out.
type CoalesceSingleChildContainerShapes struct{}

func (*CoalesceSingleChildContainerShapes) Name() string { return "CoalesceSingleChildContainerShapes" }

func (*CoalesceSingleChildContainerShapes) Transform(g *GraphState) bool {
	progress := false
	for _, c := range g.containerShapes() {
		if len(c.Shapes) != 1 || len(c.Animators) > 0 {
			continue
		}
		child, ok := c.Shapes[0].(*wincomp.ContainerShape)
		if !ok {
			continue
		}
		if shapePropertyMask(c) != maskOf(PropertyTransformMatrix) || !c.Properties.IsEmpty() {
			continue
		}
		if shapePropertyMask(child).Has(PropertyTransformMatrix) || len(child.Animators) > 0 {
			continue
		}
		if g.Index.IsReferenced(c) {
			continue
		}
		parent := g.Index.Parent(c)
		if parent == nil || !holdsShapes(parent) || shapeIndexIn(*wincomp.ShapeListPtr(parent), c) < 0 {
			continue
		}
		child.TransformMatrix = c.TransformMatrix
		c.TransformMatrix = nil
		if g.elideContainerShape(c) {
			progress = true
		}
	}
	return progress
}
