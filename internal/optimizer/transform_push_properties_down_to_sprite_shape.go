// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package optimizer

import (
	"github.com/karimalambert/Lottie-Windows/internal/wincomp"
)

// PushPropertiesDownToSpriteShape moves a container's transform slots
// and animators onto its sole sprite-shape child when the child sets
// nothing of its own, then splices the container out. The sprite then
// carries the container's whole transform stack unchanged.
type PushPropertiesDownToSpriteShape struct{}

func (*PushPropertiesDownToSpriteShape) Name() string { return "PushPropertiesDownToSpriteShape" }

func (*PushPropertiesDownToSpriteShape) Transform(g *GraphState) bool {
	progress := false
	for _, c := range g.containerShapes() {
		if len(c.Shapes) != 1 {
			continue
		}
		sprite, ok := c.Shapes[0].(*wincomp.SpriteShape)
		if !ok {
			continue
		}
		if !shapePropertyMask(sprite).IsEmpty() {
			continue
		}
		if !c.Properties.IsEmpty() {
			continue
		}
		if g.Index.IsReferenced(c) {
			continue
		}
		parent := g.Index.Parent(c)
		if parent == nil || !holdsShapes(parent) || shapeIndexIn(*wincomp.ShapeListPtr(parent), c) < 0 {
			continue
		}
		transferShapeProperties(c, sprite)
		if g.elideContainerShape(c) {
			progress = true
		}
	}
	return progress
}
