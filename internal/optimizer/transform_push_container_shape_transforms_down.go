// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package optimizer

import (
	"github.com/karimalambert/Lottie-Windows/internal/wincomp"
)

// PushContainerShapeTransformsDown folds a container whose only set
// property is a static TransformMatrix into its children: each child's
// matrix becomes child·container (the child's own transform still
// applies first), then the container splices out. A child with an
// animated TransformMatrix blocks the rule for the whole container,
// because the product could not track the animation.
type PushContainerShapeTransformsDown struct{}

func (*PushContainerShapeTransformsDown) Name() string { return "PushContainerShapeTransformsDown" }

func (*PushContainerShapeTransformsDown) Transform(g *GraphState) bool {
	progress := false
	for _, c := range g.containerShapes() {
		if len(c.Shapes) == 0 || len(c.Animators) > 0 {
			continue
		}
		if shapePropertyMask(c) != maskOf(PropertyTransformMatrix) || !c.Properties.IsEmpty() {
			continue
		}
		if g.Index.IsReferenced(c) {
			continue
		}
		// Make sure the container is still spliceable before touching
		// any child, so a pre-empted container is left untouched.
		parent := g.Index.Parent(c)
		if parent == nil || !holdsShapes(parent) || shapeIndexIn(*wincomp.ShapeListPtr(parent), c) < 0 {
			continue
		}
		blocked := false
		for _, child := range c.Shapes {
			if hasAnimatedTransformMatrix(child) {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}
		containerMatrix := *c.TransformMatrix
		for _, child := range c.Shapes {
			cb := child.ShapeState()
			if cb.TransformMatrix == nil {
				m := containerMatrix
				cb.TransformMatrix = &m
			} else {
				m := cb.TransformMatrix.Mul(containerMatrix)
				cb.TransformMatrix = &m
			}
		}
		c.TransformMatrix = nil
		if g.elideContainerShape(c) {
			progress = true
		}
	}
	return progress
}
