// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package optimizer

import (
	"github.com/karimalambert/Lottie-Windows/internal/wincomp"
)

// PushShapeVisibilityDown moves a visibility-encoded Scale (value always
// (0,0) or (1,1), animated only through step or hold easings) from a
// single-child container onto the child, then splices the container.
// Because such a scale never holds an intermediate value, it commutes
// with every transform on the child, so the usual scale-ordering
// restrictions do not apply.
type PushShapeVisibilityDown struct{}

func (*PushShapeVisibilityDown) Name() string { return "PushShapeVisibilityDown" }

func (*PushShapeVisibilityDown) Transform(g *GraphState) bool {
	progress := false
	for _, c := range g.containerShapes() {
		if len(c.Shapes) != 1 {
			continue
		}
		if shapePropertyMask(c) != maskOf(PropertyScale) || !c.Properties.IsEmpty() {
			continue
		}
		if !scaleEncodesVisibility(&c.ShapeBase) {
			continue
		}
		child := c.Shapes[0]
		if shapePropertyMask(child).Has(PropertyScale) {
			continue
		}
		if g.Index.IsReferenced(c) {
			continue
		}
		parent := g.Index.Parent(c)
		if parent == nil || !holdsShapes(parent) || shapeIndexIn(*wincomp.ShapeListPtr(parent), c) < 0 {
			continue
		}

		cb := child.ShapeState()
		cb.Scale = c.Scale
		c.Scale = nil
		if anim := c.AnimatorByTarget("Scale"); anim != nil {
			c.StopAnimation("Scale")
			retargetExpressionReferences([]*wincomp.Animator{anim}, c, child)
			cb.Animators = append(cb.Animators, anim)
		}
		if g.elideContainerShape(c) {
			progress = true
		}
	}
	return progress
}
