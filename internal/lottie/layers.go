// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package lottie

import "encoding/json"

// LayerType tags the layer variants.
type LayerType int

const (
	LayerTypePreComp LayerType = 0
	LayerTypeSolid   LayerType = 1
	LayerTypeImage   LayerType = 2
	LayerTypeNull    LayerType = 3
	LayerTypeShape   LayerType = 4
	LayerTypeText    LayerType = 5
)

func (t LayerType) String() string {
	switch t {
	case LayerTypePreComp:
		return "precomp"
	case LayerTypeSolid:
		return "solid"
	case LayerTypeImage:
		return "image"
	case LayerTypeNull:
		return "null"
	case LayerTypeShape:
		return "shape"
	case LayerTypeText:
		return "text"
	default:
		return "unknown"
	}
}

// MaskMode selects how a mask combines with the layer.
type MaskMode string

const (
	MaskModeAdd       MaskMode = "a"
	MaskModeSubtract  MaskMode = "s"
	MaskModeIntersect MaskMode = "i"
	MaskModeNone      MaskMode = "n"
)

// Mask is one mask path on a layer.
type Mask struct {
	Mode     MaskMode        `json:"mode"`
	Name     string          `json:"nm"`
	Inverted bool            `json:"inv"`
	Points   *AnimatablePath `json:"pt"`
	Opacity  *Animatable     `json:"o"`
}

// Transform is a layer or group transform.
type Transform struct {
	Anchor   *Animatable `json:"a"`
	Position *Animatable `json:"p"`
	Scale    *Animatable `json:"s"`
	Rotation *Animatable `json:"r"`
	Opacity  *Animatable `json:"o"`
}

// Layer is one layer of a composition or precomp asset. A single
// struct covers all variants; type-specific fields are nil or zero on
// other variants.
type Layer struct {
	Type       LayerType `json:"ty"`
	Name       string    `json:"nm"`
	Index      int       `json:"ind"`
	Parent     *int      `json:"parent"`
	Hidden     bool      `json:"hd"`
	Is3D       int       `json:"ddd"`
	AutoOrient int       `json:"ao"`

	Transform *Transform `json:"ks"`

	InPoint   float64 `json:"ip"`
	OutPoint  float64 `json:"op"`
	StartTime float64 `json:"st"`
	Stretch   float64 `json:"sr"`

	TimeRemap *Animatable `json:"tm"`
	Masks     []Mask      `json:"masksProperties"`
	Matte     int         `json:"tt"`

	// Shape layers.
	Shapes []ShapeItem `json:"shapes"`

	// Solid layers.
	SolidColor  string  `json:"sc"`
	SolidWidth  float64 `json:"sw"`
	SolidHeight float64 `json:"sh"`

	// Precomp and image layers.
	RefID  string  `json:"refId"`
	Width  float64 `json:"w"`
	Height float64 `json:"h"`

	// Effects are not translated; kept raw so issues can name them.
	Effects json.RawMessage `json:"ef"`
}

// HasEffects reports whether the layer carries any effects.
func (l *Layer) HasEffects() bool {
	return len(l.Effects) > 0 && string(l.Effects) != "[]" && string(l.Effects) != "null"
}
