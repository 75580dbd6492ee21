// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

// Package lottie defines the document model for animations authored in
// the BodyMovin JSON dialect, and the parser that reads them. The model
// mirrors the document: layers, shape content, key-framed properties,
// masks, and markers. Lowering to the composition graph is the IR
// builder's job, not this package's.
package lottie

import (
	"encoding/json"
	"fmt"

	goversion "github.com/hashicorp/go-version"
	"github.com/mitchellh/copystructure"
)

// SupportedVersions is the range of BodyMovin versions the translator
// understands. Documents outside the range still parse; an issue is
// reported and translation proceeds best-effort.
const SupportedVersions = ">= 4.5.0, < 6.0.0"

var supportedConstraint = goversion.MustConstraints(goversion.NewConstraint(SupportedVersions))

// LottieComposition is a parsed BodyMovin document.
type LottieComposition struct {
	Version   *goversion.Version
	Name      string
	Width     float64
	Height    float64
	InPoint   float64
	OutPoint  float64
	FrameRate float64
	Is3D      bool

	Assets  []Asset
	Layers  []Layer
	Markers []Marker

	// Extras preserves top-level fields the parser does not model.
	Extras map[string]json.RawMessage
}

// Duration returns the length of the animation in seconds.
func (c *LottieComposition) Duration() float64 {
	if c.FrameRate == 0 {
		return 0
	}
	return (c.OutPoint - c.InPoint) / c.FrameRate
}

// ProgressOfFrame maps a frame time to progress in [0,1].
func (c *LottieComposition) ProgressOfFrame(frame float64) float64 {
	span := c.OutPoint - c.InPoint
	if span == 0 {
		return 0
	}
	p := (frame - c.InPoint) / span
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// IsSupportedVersion reports whether the document's version is inside
// the supported range.
func (c *LottieComposition) IsSupportedVersion() bool {
	return c.Version != nil && supportedConstraint.Check(c.Version)
}

// Clone returns a deep copy of the composition. The parsed version is
// shared between the copies: it is immutable, and its unexported
// internals are opaque to the reflection-based copy.
func (c *LottieComposition) Clone() (*LottieComposition, error) {
	v := c.Version
	c.Version = nil
	dup, err := copystructure.Copy(c)
	c.Version = v
	if err != nil {
		return nil, fmt.Errorf("cloning composition: %w", err)
	}
	out := dup.(*LottieComposition)
	out.Version = v
	return out, nil
}

// Marker is a named bookmark on the timeline.
type Marker struct {
	Name     string  `json:"cm"`
	Frame    float64 `json:"tm"`
	Duration float64 `json:"dr"`
}

// Asset is a reusable resource referenced by id from layers. Only
// precomp assets carry layers; image assets carry a path that this
// toolchain does not decode.
type Asset struct {
	ID     string  `json:"id"`
	Name   string  `json:"nm"`
	Width  float64 `json:"w"`
	Height float64 `json:"h"`
	Path   string  `json:"p"`
	Dir    string  `json:"u"`
	Layers []Layer `json:"-"`
}

// AssetByID returns the asset with the given id, or nil.
func (c *LottieComposition) AssetByID(id string) *Asset {
	for i := range c.Assets {
		if c.Assets[i].ID == id {
			return &c.Assets[i]
		}
	}
	return nil
}
