// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package wincomp

import (
	"github.com/karimalambert/Lottie-Windows/internal/geometry"
)

// GeometryBase holds the trim slots common to every geometry variant.
// Trims are fractions of the geometry's outline in [0,1]; nil means the
// default (start 0, end 1, offset 0).
type GeometryBase struct {
	ObjectBase
	TrimStart  *float64
	TrimEnd    *float64
	TrimOffset *float64
}

// CompositionGeometry is implemented by the geometry variants.
type CompositionGeometry interface {
	Object
	GeometryState() *GeometryBase
}

func (g *GeometryBase) GeometryState() *GeometryBase { return g }

// PathGeometry is an arbitrary path.
type PathGeometry struct {
	GeometryBase
	Path *Path
}

func (*PathGeometry) Kind() Kind { return KindPathGeometry }

// EllipseGeometry is an ellipse described by center and radius.
type EllipseGeometry struct {
	GeometryBase
	Center *geometry.Vector2
	Radius *geometry.Vector2
}

func (*EllipseGeometry) Kind() Kind { return KindEllipseGeometry }

// RectangleGeometry is an axis-aligned rectangle.
type RectangleGeometry struct {
	GeometryBase
	Offset *geometry.Vector2
	Size   *geometry.Vector2
}

func (*RectangleGeometry) Kind() Kind { return KindRectangleGeometry }

// RoundedRectangleGeometry is an axis-aligned rectangle with elliptical
// corners.
type RoundedRectangleGeometry struct {
	GeometryBase
	Offset       *geometry.Vector2
	Size         *geometry.Vector2
	CornerRadius *geometry.Vector2
}

func (*RoundedRectangleGeometry) Kind() Kind { return KindRoundedRectangleGeometry }
