// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package optimizer

import (
	"github.com/karimalambert/Lottie-Windows/internal/geometry"
	"github.com/karimalambert/Lottie-Windows/internal/wincomp"
)

// holdsShapes reports whether o owns a child-shape list.
func holdsShapes(o wincomp.Object) bool {
	switch o.Kind() {
	case wincomp.KindContainerShape, wincomp.KindShapeVisual:
		return true
	}
	return false
}

// shapeIndexIn returns the position of child in list, or -1.
func shapeIndexIn(list []wincomp.CompositionShape, child wincomp.CompositionShape) int {
	for i, s := range list {
		if s == child {
			return i
		}
	}
	return -1
}

// visualIndexIn returns the position of child in list, or -1.
func visualIndexIn(list []wincomp.Visual, child wincomp.Visual) int {
	for i, v := range list {
		if v == child {
			return i
		}
	}
	return -1
}

// removeShapeChild detaches child from parent. Returns false if child is
// not currently a child of parent (an earlier rewrite may have detached
// it already).
func (g *GraphState) removeShapeChild(parent wincomp.Object, child wincomp.CompositionShape) bool {
	if !holdsShapes(parent) {
		return false
	}
	list := wincomp.ShapeListPtr(parent)
	i := shapeIndexIn(*list, child)
	if i < 0 {
		return false
	}
	*list = append((*list)[:i], (*list)[i+1:]...)
	return true
}

// elideContainerShape splices container's children into its parent in
// place of container. Descriptions propagate onto each retained child.
// Returns false if the container has been pre-empted by an earlier
// rewrite (no indexed parent, or no longer in its parent's list).
func (g *GraphState) elideContainerShape(container *wincomp.ContainerShape) bool {
	parent := g.Index.Parent(container)
	if parent == nil || !holdsShapes(parent) {
		return false
	}
	list := wincomp.ShapeListPtr(parent)
	i := shapeIndexIn(*list, container)
	if i < 0 {
		return false
	}
	children := container.Shapes
	for _, c := range children {
		wincomp.PropagateDescriptions(container, c)
		g.Index.SetParent(c, parent)
	}
	spliced := make([]wincomp.CompositionShape, 0, len(*list)-1+len(children))
	spliced = append(spliced, (*list)[:i]...)
	spliced = append(spliced, children...)
	spliced = append(spliced, (*list)[i+1:]...)
	*list = spliced
	container.Shapes = nil
	return true
}

// elideContainerVisual splices container's children into its parent in
// place of container.
func (g *GraphState) elideContainerVisual(container *wincomp.ContainerVisual) bool {
	parent := g.Index.Parent(container)
	if parent == nil || !parent.Kind().IsVisual() {
		return false
	}
	list := wincomp.VisualChildrenPtr(parent)
	i := visualIndexIn(*list, container)
	if i < 0 {
		return false
	}
	children := container.Children
	for _, c := range children {
		wincomp.PropagateDescriptions(container, c)
		g.Index.SetParent(c, parent)
	}
	spliced := make([]wincomp.Visual, 0, len(*list)-1+len(children))
	spliced = append(spliced, (*list)[:i]...)
	spliced = append(spliced, children...)
	spliced = append(spliced, (*list)[i+1:]...)
	*list = spliced
	container.Children = nil
	return true
}

// replaceVisualChild swaps old for new in parent's child list.
func (g *GraphState) replaceVisualChild(parent wincomp.Object, old, new wincomp.Visual) bool {
	if !parent.Kind().IsVisual() {
		return false
	}
	list := wincomp.VisualChildrenPtr(parent)
	i := visualIndexIn(*list, old)
	if i < 0 {
		return false
	}
	(*list)[i] = new
	g.Index.SetParent(new, parent)
	return true
}

// retargetExpressionReferences rewrites reference parameters inside the
// moved animators' expression animations so that references to the old
// owner follow the property to its new owner.
func retargetExpressionReferences(animators []*wincomp.Animator, from, to wincomp.Object) {
	for _, a := range animators {
		ea, ok := a.Animation.(*wincomp.ExpressionAnimation)
		if !ok {
			continue
		}
		for i := range ea.References {
			if ea.References[i].Target == from {
				ea.References[i].Target = to
			}
		}
	}
}

// transferShapeProperties moves every transform slot and every animator
// from one shape to another. The caller has already established that the
// destination's slots and animated properties are disjoint from the
// source's. Controllers migrate with their animators.
func transferShapeProperties(from, to wincomp.CompositionShape) {
	fb, tb := from.ShapeState(), to.ShapeState()
	if fb.CenterPoint != nil {
		tb.CenterPoint = fb.CenterPoint
		fb.CenterPoint = nil
	}
	if fb.Offset != nil {
		tb.Offset = fb.Offset
		fb.Offset = nil
	}
	if fb.RotationAngleInDegrees != nil {
		tb.RotationAngleInDegrees = fb.RotationAngleInDegrees
		fb.RotationAngleInDegrees = nil
	}
	if fb.Scale != nil {
		tb.Scale = fb.Scale
		fb.Scale = nil
	}
	if fb.TransformMatrix != nil {
		tb.TransformMatrix = fb.TransformMatrix
		fb.TransformMatrix = nil
	}
	moved := fb.Animators
	fb.Animators = nil
	retargetExpressionReferences(moved, from, to)
	tb.Animators = append(tb.Animators, moved...)
	wincomp.PropagateDescriptions(from, to)
}

// transferVisualProperties moves every set slot and every animator from
// one visual to another. As with shapes, the caller has established
// disjointness.
func transferVisualProperties(from, to wincomp.Visual) {
	fb, tb := from.VisualState(), to.VisualState()
	if fb.CenterPoint != nil {
		tb.CenterPoint = fb.CenterPoint
		fb.CenterPoint = nil
	}
	if fb.Offset != nil {
		tb.Offset = fb.Offset
		fb.Offset = nil
	}
	if fb.RotationAngleInDegrees != nil {
		tb.RotationAngleInDegrees = fb.RotationAngleInDegrees
		fb.RotationAngleInDegrees = nil
	}
	if fb.RotationAxis != nil {
		tb.RotationAxis = fb.RotationAxis
		fb.RotationAxis = nil
	}
	if fb.Scale != nil {
		tb.Scale = fb.Scale
		fb.Scale = nil
	}
	if fb.TransformMatrix != nil {
		tb.TransformMatrix = fb.TransformMatrix
		fb.TransformMatrix = nil
	}
	if fb.Size != nil {
		tb.Size = fb.Size
		fb.Size = nil
	}
	if fb.Opacity != nil {
		tb.Opacity = fb.Opacity
		fb.Opacity = nil
	}
	if fb.IsVisible != nil {
		tb.IsVisible = fb.IsVisible
		fb.IsVisible = nil
	}
	if fb.Clip != nil {
		tb.Clip = fb.Clip
		fb.Clip = nil
	}
	moved := fb.Animators
	fb.Animators = nil
	retargetExpressionReferences(moved, from, to)
	tb.Animators = append(tb.Animators, moved...)
	wincomp.PropagateDescriptions(from, to)
}

// isVisibilityVector reports whether v is one of the two values a
// visibility-encoded Scale may take.
func isVisibilityVector(v geometry.Vector2) bool {
	return v.IsZero() || v.IsOne()
}

// scaleEncodesVisibility reports whether the shape's Scale slot is used
// solely as a visibility switch: every value it ever takes is (0,0) or
// (1,1), and any animation jumps between them with step or hold easing
// only. A shape with neither a Scale value nor a Scale animator does not
// encode visibility.
func scaleEncodesVisibility(b *wincomp.ShapeBase) bool {
	anim := b.AnimatorByTarget("Scale")
	if b.Scale == nil && anim == nil {
		return false
	}
	if b.Scale != nil && !isVisibilityVector(*b.Scale) {
		return false
	}
	if anim != nil {
		kfa, ok := anim.Animation.(*wincomp.Vector2KeyFrameAnimation)
		if !ok {
			return false
		}
		for _, kf := range kfa.KeyFrames {
			if !isVisibilityVector(kf.Value) || !wincomp.IsStepOrHold(kf.Easing) {
				return false
			}
		}
	}
	return true
}

// Optional-slot equality: nil matches only nil.

func vec2SlotsEqual(a, b *geometry.Vector2) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func scalarSlotsEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return geometry.NearEqual(*a, *b)
}

func matrixSlotsEqual(a, b *geometry.Matrix3x2) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// hasAnimatedTransformMatrix reports whether some animator on the shape
// targets TransformMatrix.
func hasAnimatedTransformMatrix(s wincomp.CompositionShape) bool {
	return s.ShapeState().IsPropertyAnimated("TransformMatrix")
}
