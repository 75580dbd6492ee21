// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package optimizer

import (
	"github.com/karimalambert/Lottie-Windows/internal/geometry"
	"github.com/karimalambert/Lottie-Windows/internal/wincomp"
)

// simplifyProperties canonicalizes transform state on every shape and
// visual. Two steps per node:
//
//  1. Clear an inert CenterPoint: the center point is observable only
//     while Scale or RotationAngleInDegrees is set or animated.
//  2. If the node has no animators and two or more transform slots are
//     set, fold Scale, Rotation, Offset, and any existing
//     TransformMatrix into a single matrix and clear the source slots.
//     Never folds an animated property, and never folds a visual
//     rotating about a non-Z axis (not representable as a planar matrix
//     rotation).
//
// Canonicalizing to a single matrix reduces the arity of the
// equivalence checks in the rewrite rules and opens more elisions. A
// single set slot is left alone: trading it for a TransformMatrix would
// not reduce arity, and a bare Offset or Scale coalesces more readily
// than a matrix does.
func simplifyProperties(g *GraphState) bool {
	progress := false
	for _, s := range g.shapeNodes() {
		if simplifyShapeProperties(s.ShapeState()) {
			progress = true
		}
	}
	for _, v := range g.visualNodes() {
		if simplifyVisualProperties(v.VisualState()) {
			progress = true
		}
	}
	return progress
}

func simplifyShapeProperties(b *wincomp.ShapeBase) bool {
	progress := false

	if b.CenterPoint != nil && centerPointInert(&b.ObjectBase, b.Scale == nil, b.RotationAngleInDegrees == nil) {
		b.CenterPoint = nil
		progress = true
	}

	slots := countSlots(b.CenterPoint != nil, b.Offset != nil, b.RotationAngleInDegrees != nil, b.Scale != nil, b.TransformMatrix != nil)
	foldable := slots >= 2 && (b.CenterPoint != nil || b.Offset != nil || b.RotationAngleInDegrees != nil || b.Scale != nil)
	if len(b.Animators) == 0 && foldable {
		combined := geometry.Combine3x2(b.TransformMatrix, b.Offset, b.RotationAngleInDegrees, b.Scale, b.CenterPoint)
		b.CenterPoint = nil
		b.Offset = nil
		b.RotationAngleInDegrees = nil
		b.Scale = nil
		if combined.IsIdentity() {
			b.TransformMatrix = nil
		} else {
			b.TransformMatrix = &combined
		}
		progress = true
	}

	return progress
}

func simplifyVisualProperties(b *wincomp.VisualBase) bool {
	progress := false

	if b.CenterPoint != nil && centerPointInert(&b.ObjectBase, b.Scale == nil, b.RotationAngleInDegrees == nil) {
		b.CenterPoint = nil
		b.RotationAxis = nil
		progress = true
	}

	slots := countSlots(b.CenterPoint != nil, b.Offset != nil, b.RotationAngleInDegrees != nil, b.Scale != nil, b.TransformMatrix != nil)
	foldable := slots >= 2 && (b.CenterPoint != nil || b.Offset != nil || b.RotationAngleInDegrees != nil || b.Scale != nil)
	if len(b.Animators) == 0 && rotationAxisIsZ(b.RotationAxis) && foldable {
		combined := geometry.Combine4x4(b.TransformMatrix, b.Offset, b.RotationAngleInDegrees, b.Scale, b.CenterPoint)
		b.CenterPoint = nil
		b.Offset = nil
		b.RotationAngleInDegrees = nil
		b.RotationAxis = nil
		b.Scale = nil
		if combined.IsIdentity() {
			b.TransformMatrix = nil
		} else {
			b.TransformMatrix = &combined
		}
		progress = true
	}

	return progress
}

// centerPointInert reports whether a center point has nothing to be the
// center of: Scale and Rotation are both unset and unanimated.
func centerPointInert(b *wincomp.ObjectBase, scaleUnset, rotationUnset bool) bool {
	return scaleUnset && rotationUnset &&
		!b.IsPropertyAnimated("Scale") && !b.IsPropertyAnimated("RotationAngleInDegrees")
}

func rotationAxisIsZ(axis *geometry.Vector3) bool {
	return axis == nil || axis.Equal(geometry.Vector3{Z: 1})
}

func countSlots(set ...bool) int {
	n := 0
	for _, s := range set {
		if s {
			n++
		}
	}
	return n
}
