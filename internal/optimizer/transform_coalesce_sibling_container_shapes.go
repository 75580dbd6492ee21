// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package optimizer

import (
	"github.com/karimalambert/Lottie-Windows/internal/wincomp"
)

// CoalesceSiblingContainerShapes merges consecutive sibling container
// shapes that are equivalent modulo their children: same transform
// slots, empty property sets, and animator-by-animator equality. The
// children of the later containers concatenate under the first.
type CoalesceSiblingContainerShapes struct{}

func (*CoalesceSiblingContainerShapes) Name() string { return "CoalesceSiblingContainerShapes" }

func (*CoalesceSiblingContainerShapes) Transform(g *GraphState) bool {
	progress := false
	var holders []wincomp.Object
	wincomp.Walk(g.Root, func(o wincomp.Object) bool {
		if holdsShapes(o) {
			holders = append(holders, o)
		}
		return true
	})

	for _, holder := range holders {
		list := wincomp.ShapeListPtr(holder)
		// Streaming fold over the child list: each child either merges
		// into the previous surviving container or becomes the new head
		// of a run.
		out := (*list)[:0]
		var head *wincomp.ContainerShape
		for _, s := range *list {
			c, ok := s.(*wincomp.ContainerShape)
			if !ok {
				head = nil
				out = append(out, s)
				continue
			}
			if head != nil && !g.Index.IsReferenced(c) && containerShapesEquivalent(head, c) {
				for _, grandchild := range c.Shapes {
					g.Index.SetParent(grandchild, head)
				}
				head.Shapes = append(head.Shapes, c.Shapes...)
				c.Shapes = nil
				wincomp.PropagateDescriptions(c, head)
				progress = true
				continue
			}
			head = c
			out = append(out, s)
		}
		*list = out
	}
	return progress
}

// containerShapesEquivalent reports whether two container shapes are
// interchangeable apart from their children.
func containerShapesEquivalent(a, b *wincomp.ContainerShape) bool {
	ab, bb := a.ShapeState(), b.ShapeState()
	if !a.Properties.IsEmpty() || !b.Properties.IsEmpty() {
		return false
	}
	if !vec2SlotsEqual(ab.CenterPoint, bb.CenterPoint) ||
		!vec2SlotsEqual(ab.Offset, bb.Offset) ||
		!scalarSlotsEqual(ab.RotationAngleInDegrees, bb.RotationAngleInDegrees) ||
		!vec2SlotsEqual(ab.Scale, bb.Scale) ||
		!matrixSlotsEqual(ab.TransformMatrix, bb.TransformMatrix) {
		return false
	}
	return animatorListsEqual(a, b)
}
