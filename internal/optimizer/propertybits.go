// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package optimizer

import (
	"log"
	"strings"

	"github.com/karimalambert/Lottie-Windows/internal/didyoumean"
	"github.com/karimalambert/Lottie-Windows/internal/wincomp"
)

// PropertyID identifies one animatable or settable property for the
// purposes of the orthogonality checks.
type PropertyID uint

const (
	PropertyNone PropertyID = iota
	// PropertyUnknown marks an animated property name the table does not
	// recognize. It overlaps every other property, so it vetoes every
	// orthogonality check.
	PropertyUnknown
	PropertyCenterPoint
	PropertyClip
	PropertyColor
	PropertyIsVisible
	PropertyOffset
	PropertyOpacity
	PropertyPath
	PropertyPosition
	PropertyProgress
	PropertyRotationAngle
	PropertyRotationAxis
	PropertyScale
	PropertySize
	PropertyTransformMatrix
	PropertyTrimStart
	PropertyTrimEnd
	PropertyTrimOffset
)

// PropertyMask is a bitset over PropertyIDs.
type PropertyMask uint32

func (m PropertyMask) Has(id PropertyID) bool {
	return m&maskOf(id) != 0
}

func (m PropertyMask) IsEmpty() bool { return m == 0 }

func maskOf(ids ...PropertyID) PropertyMask {
	var m PropertyMask
	for _, id := range ids {
		m |= 1 << id
	}
	return m
}

// animatedPropertyIDs maps an animator's target-property name to a
// PropertyID. Sub-channel targets ("Offset.X", "Clip.TopInset") map to
// the property of their first segment.
var animatedPropertyIDs = map[string]PropertyID{
	"CenterPoint":            PropertyCenterPoint,
	"Clip":                   PropertyClip,
	"Color":                  PropertyColor,
	"IsVisible":              PropertyIsVisible,
	"Offset":                 PropertyOffset,
	"Opacity":                PropertyOpacity,
	"Path":                   PropertyPath,
	"Position":               PropertyPosition,
	"Progress":               PropertyProgress,
	"RotationAngleInDegrees": PropertyRotationAngle,
	"RotationAxis":           PropertyRotationAxis,
	"Scale":                  PropertyScale,
	"Size":                   PropertySize,
	"TransformMatrix":        PropertyTransformMatrix,
	"TrimStart":              PropertyTrimStart,
	"TrimEnd":                PropertyTrimEnd,
	"TrimOffset":             PropertyTrimOffset,
}

var knownPropertyNames = func() []string {
	names := make([]string, 0, len(animatedPropertyIDs))
	for name := range animatedPropertyIDs {
		names = append(names, name)
	}
	return names
}()

// propertyIDForTarget resolves an animator target name. Unknown names
// resolve to PropertyUnknown, which blocks all coalescing involving the
// owning node.
func propertyIDForTarget(target string) PropertyID {
	name := target
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	if id, ok := animatedPropertyIDs[name]; ok {
		return id
	}
	if suggestion := didyoumean.NameSuggestion(name, knownPropertyNames); suggestion != "" {
		log.Printf("[TRACE] optimizer: unknown animated property %q (did you mean %q?)", target, suggestion)
	} else {
		log.Printf("[TRACE] optimizer: unknown animated property %q", target)
	}
	return PropertyUnknown
}

func animatorMask(animators []*wincomp.Animator) PropertyMask {
	var m PropertyMask
	for _, a := range animators {
		m |= maskOf(propertyIDForTarget(a.Target))
	}
	return m
}

// shapePropertyMask computes set(n) for a shape: one bit per non-default
// transform slot plus one per animated property.
func shapePropertyMask(s wincomp.CompositionShape) PropertyMask {
	b := s.ShapeState()
	var m PropertyMask
	if b.CenterPoint != nil {
		m |= maskOf(PropertyCenterPoint)
	}
	if b.Offset != nil {
		m |= maskOf(PropertyOffset)
	}
	if b.RotationAngleInDegrees != nil {
		m |= maskOf(PropertyRotationAngle)
	}
	if b.Scale != nil {
		m |= maskOf(PropertyScale)
	}
	if b.TransformMatrix != nil {
		m |= maskOf(PropertyTransformMatrix)
	}
	return m | animatorMask(b.Animators)
}

// visualPropertyMask computes set(n) for a visual.
func visualPropertyMask(v wincomp.Visual) PropertyMask {
	b := v.VisualState()
	var m PropertyMask
	if b.CenterPoint != nil {
		m |= maskOf(PropertyCenterPoint)
	}
	if b.Offset != nil {
		m |= maskOf(PropertyOffset)
	}
	if b.RotationAngleInDegrees != nil {
		m |= maskOf(PropertyRotationAngle)
	}
	if b.RotationAxis != nil {
		m |= maskOf(PropertyRotationAxis)
	}
	if b.Scale != nil {
		m |= maskOf(PropertyScale)
	}
	if b.TransformMatrix != nil {
		m |= maskOf(PropertyTransformMatrix)
	}
	if b.Size != nil {
		m |= maskOf(PropertySize)
	}
	if b.Opacity != nil {
		m |= maskOf(PropertyOpacity)
	}
	if b.IsVisible != nil {
		m |= maskOf(PropertyIsVisible)
	}
	if b.Clip != nil {
		m |= maskOf(PropertyClip)
	}
	return m | animatorMask(b.Animators)
}

// rotationGroup covers both the rotation angle and its axis: hoisting
// either across the other's owner reorders the rotation.
var rotationGroup = maskOf(PropertyRotationAngle, PropertyRotationAxis)

// arePropertiesOrthogonal reports whether a parent's and a child's
// property sets can live on one node without changing the composed
// transform. The runtime applies Scale innermost, then Rotation, then
// Offset, then TransformMatrix; a merge is rejected whenever it would
// place a child property outside a parent property in that order.
func arePropertiesOrthogonal(parent, child PropertyMask) bool {
	if parent&child != 0 {
		return false
	}
	// An unknown animated property may alias anything.
	if parent.Has(PropertyUnknown) || child.Has(PropertyUnknown) {
		return false
	}
	// TransformMatrix on the child is outermost of the child's own
	// stack; it cannot move inside any parent transform, clip, or
	// center point.
	if child.Has(PropertyTransformMatrix) &&
		parent&(maskOf(PropertyOffset, PropertyScale, PropertyClip, PropertyCenterPoint)|rotationGroup) != 0 {
		return false
	}
	// A parent rotation applies outside the child's offset and clip.
	if parent&rotationGroup != 0 && child&maskOf(PropertyOffset, PropertyClip) != 0 {
		return false
	}
	// A parent scale applies outside the child's offset, rotation, and
	// clip.
	if parent.Has(PropertyScale) &&
		child&(maskOf(PropertyOffset, PropertyClip)|rotationGroup) != 0 {
		return false
	}
	return true
}
