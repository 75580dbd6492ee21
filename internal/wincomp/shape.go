// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package wincomp

import (
	"github.com/karimalambert/Lottie-Windows/internal/geometry"
)

// ShapeBase holds the planar transform slots common to the shape
// variants. All slots are optional; nil means identity.
type ShapeBase struct {
	ObjectBase

	CenterPoint            *geometry.Vector2
	Offset                 *geometry.Vector2
	RotationAngleInDegrees *float64
	Scale                  *geometry.Vector2
	TransformMatrix        *geometry.Matrix3x2
}

// CompositionShape is implemented by the shape variants.
type CompositionShape interface {
	Object
	ShapeState() *ShapeBase
}

func (s *ShapeBase) ShapeState() *ShapeBase { return s }

// ContainerShape groups child shapes under a shared planar transform.
type ContainerShape struct {
	ShapeBase
	Shapes []CompositionShape
}

func (*ContainerShape) Kind() Kind { return KindContainerShape }

// StrokeCap styles the ends of a stroked segment.
type StrokeCap int

const (
	StrokeCapFlat StrokeCap = iota
	StrokeCapSquare
	StrokeCapRound
	StrokeCapTriangle
)

// StrokeLineJoin styles the joints between stroked segments.
type StrokeLineJoin int

const (
	StrokeLineJoinMiter StrokeLineJoin = iota
	StrokeLineJoinBevel
	StrokeLineJoinRound
	StrokeLineJoinMiterOrBevel
)

// SpriteShape draws a geometry with a fill and/or stroke.
type SpriteShape struct {
	ShapeBase

	Geometry    CompositionGeometry
	FillBrush   CompositionBrush
	StrokeBrush CompositionBrush

	StrokeThickness    *float64
	StrokeStartCap     StrokeCap
	StrokeEndCap       StrokeCap
	StrokeDashCap      StrokeCap
	StrokeLineJoin     StrokeLineJoin
	StrokeMiterLimit   *float64
	StrokeDashOffset   *float64
	StrokeDashArray    []float64
	IsStrokeNonScaling bool
}

func (*SpriteShape) Kind() Kind { return KindSpriteShape }
