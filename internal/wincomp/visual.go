// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package wincomp

import (
	"github.com/karimalambert/Lottie-Windows/internal/geometry"
)

// BorderMode controls edge sampling of a visual.
type BorderMode int

const (
	BorderModeInherit BorderMode = iota
	BorderModeSoft
	BorderModeHard
)

// VisualBase holds the transform and presentation slots common to every
// visual variant. All slots are optional; nil means the runtime default
// (identity transform, full opacity, visible).
type VisualBase struct {
	ObjectBase

	CenterPoint            *geometry.Vector3
	Offset                 *geometry.Vector3
	RotationAngleInDegrees *float64
	RotationAxis           *geometry.Vector3
	Scale                  *geometry.Vector3
	TransformMatrix        *geometry.Matrix4x4

	Size       *geometry.Vector2
	Opacity    *float64
	IsVisible  *bool
	Clip       CompositionClip
	BorderMode BorderMode
}

// Visual is implemented by the visual variants.
type Visual interface {
	Object
	VisualState() *VisualBase
}

func (v *VisualBase) VisualState() *VisualBase { return v }

// ContainerVisual groups child visuals under a shared transform.
type ContainerVisual struct {
	VisualBase
	Children []Visual
}

func (*ContainerVisual) Kind() Kind { return KindContainerVisual }

// ShapeVisual renders a tree of composition shapes. It is also a
// container: child visuals render above the shapes.
type ShapeVisual struct {
	VisualBase
	Children []Visual
	Shapes   []CompositionShape
	ViewBox  *ViewBox
}

func (*ShapeVisual) Kind() Kind { return KindShapeVisual }

// SpriteVisual paints its bounds with a brush.
type SpriteVisual struct {
	VisualBase
	Children []Visual
	Brush    CompositionBrush
}

func (*SpriteVisual) Kind() Kind { return KindSpriteVisual }

// ViewBox maps shape coordinates into a shape visual.
type ViewBox struct {
	ObjectBase
	Size geometry.Vector2
}

func (*ViewBox) Kind() Kind { return KindViewBox }

// CompositionClip is implemented by the clip variants.
type CompositionClip interface {
	Object
	clip()
}

// InsetClip clips a visual to its size minus the four insets, optionally
// scaled about a center point. Nil inset slots mean zero.
type InsetClip struct {
	ObjectBase
	TopInset    *float64
	LeftInset   *float64
	RightInset  *float64
	BottomInset *float64
	CenterPoint *geometry.Vector2
	Scale       *geometry.Vector2
}

func (*InsetClip) Kind() Kind { return KindInsetClip }
func (*InsetClip) clip()      {}

// IsZeroInset reports whether the clip has all insets at zero, no
// center point, no scale, and no animators, i.e. it clips exactly to the
// visual's size.
func (c *InsetClip) IsZeroInset() bool {
	zero := func(p *float64) bool { return p == nil || geometry.NearEqual(*p, 0) }
	return zero(c.TopInset) && zero(c.LeftInset) && zero(c.RightInset) && zero(c.BottomInset) &&
		c.CenterPoint == nil && c.Scale == nil && len(c.Animators) == 0
}

// GeometricClip clips a visual to a geometry.
type GeometricClip struct {
	ObjectBase
	Geometry CompositionGeometry
}

func (*GeometricClip) Kind() Kind { return KindGeometricClip }
func (*GeometricClip) clip()      {}

// VisualSurface exposes a visual subtree as a surface for a surface
// brush. SourceVisual is a non-owning reference; the runtime ignores the
// source's own transform properties when rendering the surface.
type VisualSurface struct {
	ObjectBase
	SourceVisual Visual
	SourceSize   *geometry.Vector2
}

func (*VisualSurface) Kind() Kind { return KindVisualSurface }
