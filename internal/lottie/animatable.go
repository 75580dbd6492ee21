// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package lottie

import (
	"encoding/json"
	"fmt"
)

// Animatable is a BodyMovin "animatable value": either a static value
// or a list of key frames. Values are stored as float slices; a scalar
// is a one-element slice, a point a two-element slice, a color a
// four-element slice.
type Animatable struct {
	IsAnimated bool
	Value      []float64
	KeyFrames  []KeyFrame
}

// KeyFrame is one key frame of an animated value. EndValue carries the
// legacy "e" field emitted by older exporters; modern documents imply
// the end value from the next frame's start value.
type KeyFrame struct {
	Frame      float64
	Value      []float64
	EndValue   []float64
	OutTangent *Tangent
	InTangent  *Tangent
	Hold       bool
}

// Tangent is one Bezier control point of a key frame's easing, with
// per-dimension coordinates.
type Tangent struct {
	X []float64
	Y []float64
}

// StaticValue returns the static value, or the first key frame's value
// for an animated property (useful as an initial value).
func (a *Animatable) StaticValue() []float64 {
	if !a.IsAnimated {
		return a.Value
	}
	if len(a.KeyFrames) > 0 {
		return a.KeyFrames[0].Value
	}
	return nil
}

// Scalar returns the static value as a scalar, with a fallback for an
// absent or empty value.
func (a *Animatable) Scalar(fallback float64) float64 {
	if a == nil {
		return fallback
	}
	v := a.StaticValue()
	if len(v) == 0 {
		return fallback
	}
	return v[0]
}

// rawAnimatable is the wire form: "a" flags animation and "k" holds
// either a raw value or key-frame objects.
type rawAnimatable struct {
	Animated int             `json:"a"`
	K        json.RawMessage `json:"k"`
}

type rawKeyFrame struct {
	T float64         `json:"t"`
	S json.RawMessage `json:"s"`
	E json.RawMessage `json:"e"`
	O *rawTangent     `json:"o"`
	I *rawTangent     `json:"i"`
	H int             `json:"h"`
}

type rawTangent struct {
	X json.RawMessage `json:"x"`
	Y json.RawMessage `json:"y"`
}

// UnmarshalJSON accepts every shape "k" takes in the wild: a bare
// number, an array of numbers, or an array of key-frame objects. Some
// exporters set "a":0 on key-framed values, so the decision is made on
// the content of "k", not on the flag.
func (a *Animatable) UnmarshalJSON(data []byte) error {
	var raw rawAnimatable
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.K) == 0 {
		return nil
	}
	if floats, ok := decodeFloats(raw.K); ok {
		a.Value = floats
		return nil
	}
	var frames []rawKeyFrame
	if err := json.Unmarshal(raw.K, &frames); err != nil {
		return fmt.Errorf("animatable value: %w", err)
	}
	a.IsAnimated = true
	a.KeyFrames = make([]KeyFrame, 0, len(frames))
	for _, f := range frames {
		kf := KeyFrame{Frame: f.T, Hold: f.H != 0}
		kf.Value, _ = decodeFloats(f.S)
		kf.EndValue, _ = decodeFloats(f.E)
		kf.OutTangent = decodeTangent(f.O)
		kf.InTangent = decodeTangent(f.I)
		a.KeyFrames = append(a.KeyFrames, kf)
	}
	return nil
}

// decodeFloats reads a number or an array of numbers.
func decodeFloats(data json.RawMessage) ([]float64, bool) {
	if len(data) == 0 {
		return nil, false
	}
	var scalar float64
	if err := json.Unmarshal(data, &scalar); err == nil {
		return []float64{scalar}, true
	}
	var list []float64
	if err := json.Unmarshal(data, &list); err == nil {
		return list, true
	}
	return nil, false
}

func decodeTangent(raw *rawTangent) *Tangent {
	if raw == nil {
		return nil
	}
	t := &Tangent{}
	t.X, _ = decodeFloats(raw.X)
	t.Y, _ = decodeFloats(raw.Y)
	return t
}

// BezierPath is BodyMovin path data: vertices plus per-vertex in and
// out tangents, relative to their vertex.
type BezierPath struct {
	Closed      bool
	Vertices    [][]float64
	InTangents  [][]float64
	OutTangents [][]float64
}

func (p *BezierPath) UnmarshalJSON(data []byte) error {
	var raw struct {
		C bool        `json:"c"`
		V [][]float64 `json:"v"`
		I [][]float64 `json:"i"`
		O [][]float64 `json:"o"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Closed = raw.C
	p.Vertices = raw.V
	p.InTangents = raw.I
	p.OutTangents = raw.O
	return nil
}

// AnimatablePath is path data, static or key-framed.
type AnimatablePath struct {
	IsAnimated bool
	Value      *BezierPath
	KeyFrames  []PathKeyFrame
}

// PathKeyFrame is one key frame of an animated path.
type PathKeyFrame struct {
	Frame      float64
	Value      *BezierPath
	OutTangent *Tangent
	InTangent  *Tangent
	Hold       bool
}

func (a *AnimatablePath) UnmarshalJSON(data []byte) error {
	var raw rawAnimatable
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.K) == 0 {
		return nil
	}
	var static BezierPath
	if err := json.Unmarshal(raw.K, &static); err == nil && len(static.Vertices) > 0 {
		a.Value = &static
		return nil
	}
	var frames []struct {
		T float64      `json:"t"`
		S []BezierPath `json:"s"`
		O *rawTangent  `json:"o"`
		I *rawTangent  `json:"i"`
		H int          `json:"h"`
	}
	if err := json.Unmarshal(raw.K, &frames); err != nil {
		return fmt.Errorf("animatable path: %w", err)
	}
	a.IsAnimated = true
	for _, f := range frames {
		kf := PathKeyFrame{Frame: f.T, Hold: f.H != 0}
		if len(f.S) > 0 {
			v := f.S[0]
			kf.Value = &v
		}
		kf.OutTangent = decodeTangent(f.O)
		kf.InTangent = decodeTangent(f.I)
		a.KeyFrames = append(a.KeyFrames, kf)
	}
	return nil
}
