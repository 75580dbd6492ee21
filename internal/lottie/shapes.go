// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package lottie

import (
	"encoding/json"
)

// ShapeItemType tags shape-layer content.
type ShapeItemType string

const (
	ShapeItemGroup        ShapeItemType = "gr"
	ShapeItemPath         ShapeItemType = "sh"
	ShapeItemRectangle    ShapeItemType = "rc"
	ShapeItemEllipse      ShapeItemType = "el"
	ShapeItemPolystar     ShapeItemType = "sr"
	ShapeItemFill         ShapeItemType = "fl"
	ShapeItemStroke       ShapeItemType = "st"
	ShapeItemGradientFill ShapeItemType = "gf"
	ShapeItemGradStroke   ShapeItemType = "gs"
	ShapeItemTrimPath     ShapeItemType = "tm"
	ShapeItemTransform    ShapeItemType = "tr"
	ShapeItemRepeater     ShapeItemType = "rp"
	ShapeItemMerge        ShapeItemType = "mm"
	ShapeItemRound        ShapeItemType = "rd"
)

// ShapeItem is one item of shape-layer content. It is a tagged variant:
// exactly one of the typed payload pointers is non-nil, matching Type.
// Items the parser does not model keep their raw bytes so downstream
// issues can name them.
type ShapeItem struct {
	Type   ShapeItemType
	Name   string
	Hidden bool

	Group     *GroupShape
	Path      *PathShape
	Rectangle *RectangleShape
	Ellipse   *EllipseShape
	Fill      *FillShape
	Stroke    *StrokeShape
	TrimPath  *TrimPathShape
	Transform *TransformShape

	Raw json.RawMessage
}

// GroupShape nests shape items; by convention the last item is the
// group's transform.
type GroupShape struct {
	Items []ShapeItem `json:"it"`
}

// PathShape is a free-form Bezier path.
type PathShape struct {
	Geometry  *AnimatablePath `json:"ks"`
	Direction int             `json:"d"`
}

// RectangleShape is a rectangle with an optional corner roundness.
type RectangleShape struct {
	Position  *Animatable `json:"p"`
	Size      *Animatable `json:"s"`
	Roundness *Animatable `json:"r"`
	Direction int         `json:"d"`
}

// EllipseShape is an ellipse.
type EllipseShape struct {
	Position  *Animatable `json:"p"`
	Size      *Animatable `json:"s"`
	Direction int         `json:"d"`
}

// FillRule selects the fill algorithm.
type FillRule int

const (
	FillRuleNonZero FillRule = 1
	FillRuleEvenOdd FillRule = 2
)

// FillShape fills the preceding geometries.
type FillShape struct {
	Color   *Animatable `json:"c"`
	Opacity *Animatable `json:"o"`
	Rule    FillRule    `json:"r"`
}

// StrokeShape strokes the preceding geometries.
type StrokeShape struct {
	Color      *Animatable `json:"c"`
	Opacity    *Animatable `json:"o"`
	Width      *Animatable `json:"w"`
	LineCap    int         `json:"lc"`
	LineJoin   int         `json:"lj"`
	MiterLimit float64     `json:"ml"`
}

// TrimPathShape trims the preceding geometries to a fraction of their
// outline.
type TrimPathShape struct {
	Start    *Animatable `json:"s"`
	End      *Animatable `json:"e"`
	Offset   *Animatable `json:"o"`
	Multiple int         `json:"m"`
}

// TransformShape is the transform item of a group.
type TransformShape struct {
	Anchor   *Animatable `json:"a"`
	Position *Animatable `json:"p"`
	Scale    *Animatable `json:"s"`
	Rotation *Animatable `json:"r"`
	Opacity  *Animatable `json:"o"`
}

// UnmarshalJSON dispatches on "ty" and decodes the matching payload.
func (s *ShapeItem) UnmarshalJSON(data []byte) error {
	var head struct {
		Type   ShapeItemType `json:"ty"`
		Name   string        `json:"nm"`
		Hidden bool          `json:"hd"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	s.Type = head.Type
	s.Name = head.Name
	s.Hidden = head.Hidden

	switch head.Type {
	case ShapeItemGroup:
		s.Group = &GroupShape{}
		return json.Unmarshal(data, s.Group)
	case ShapeItemPath:
		s.Path = &PathShape{}
		return json.Unmarshal(data, s.Path)
	case ShapeItemRectangle:
		s.Rectangle = &RectangleShape{}
		return json.Unmarshal(data, s.Rectangle)
	case ShapeItemEllipse:
		s.Ellipse = &EllipseShape{}
		return json.Unmarshal(data, s.Ellipse)
	case ShapeItemFill:
		s.Fill = &FillShape{}
		return json.Unmarshal(data, s.Fill)
	case ShapeItemStroke:
		s.Stroke = &StrokeShape{}
		return json.Unmarshal(data, s.Stroke)
	case ShapeItemTrimPath:
		s.TrimPath = &TrimPathShape{}
		return json.Unmarshal(data, s.TrimPath)
	case ShapeItemTransform:
		s.Transform = &TransformShape{}
		return json.Unmarshal(data, s.Transform)
	default:
		s.Raw = append(json.RawMessage(nil), data...)
		return nil
	}
}
