// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

// Package irbuilder lowers a parsed Lottie document to the composition
// graph. The output is deliberately literal: one container per layer
// transform, a visibility animation on the outermost wrapper for in/out
// points, a clip container per precomp. The optimizer's whole job is to collapse the
// structure this package produces.
package irbuilder

import (
	"fmt"
	"log"

	"github.com/karimalambert/Lottie-Windows/internal/geometry"
	"github.com/karimalambert/Lottie-Windows/internal/issues"
	"github.com/karimalambert/Lottie-Windows/internal/lottie"
	"github.com/karimalambert/Lottie-Windows/internal/wincomp"
)

// ProgressProperty is the name of the scalar on the root property set
// that drives every animation controller.
const ProgressProperty = "Progress"

type builder struct {
	comp *lottie.LottieComposition
	iss  *issues.Issues
	root *wincomp.ContainerVisual

	// progressExpression is shared by every controller so that sibling
	// coalescing can recognize identical bindings by reference.
	progressExpression *wincomp.ExpressionAnimation

	// precompDepth guards against reference cycles between precomp
	// assets.
	precompDepth int
}

const maxPrecompDepth = 16

// Translate lowers comp to a composition graph and returns its root.
func Translate(comp *lottie.LottieComposition, iss *issues.Issues) (*wincomp.ContainerVisual, error) {
	if comp == nil {
		return nil, fmt.Errorf("translating composition: nil composition")
	}
	b := &builder{comp: comp, iss: iss}

	b.root = &wincomp.ContainerVisual{}
	b.root.Name = comp.Name
	b.root.Size = &geometry.Vector2{X: comp.Width, Y: comp.Height}
	b.root.Properties.InsertScalar(ProgressProperty, 0)

	b.progressExpression = &wincomp.ExpressionAnimation{Expression: "_." + ProgressProperty}
	b.progressExpression.SetReferenceParameter("_", b.root)

	content := b.translateLayers(comp.Layers)
	b.root.Children = content

	log.Printf("[DEBUG] irbuilder: translated %d layers into %d nodes",
		len(comp.Layers), wincomp.CountNodes(b.root))
	return b.root, nil
}

// translateLayers lowers a layer list. BodyMovin lists the topmost
// layer first; composition children paint in order with the last on
// top, so the output is reversed.
func (b *builder) translateLayers(layers []lottie.Layer) []wincomp.Visual {
	var out []wincomp.Visual
	for i := len(layers) - 1; i >= 0; i-- {
		layer := &layers[i]
		if layer.Hidden {
			continue
		}
		v := b.translateLayer(layer, layers)
		if v != nil {
			out = append(out, v)
		}
	}
	return out
}

func (b *builder) translateLayer(layer *lottie.Layer, siblings []lottie.Layer) wincomp.Visual {
	if layer.HasEffects() {
		b.iss.Report(issues.CodeUnsupportedEffect, "layer %q has effects, which are not translated", layer.Name)
	}
	if layer.TimeRemap != nil {
		b.iss.Report(issues.CodeUnsupportedTimeRemap, "layer %q uses time remapping", layer.Name)
	}

	var content wincomp.Visual
	switch layer.Type {
	case lottie.LayerTypeShape:
		content = b.shapeLayerContent(layer)
	case lottie.LayerTypeSolid:
		content = b.solidLayerContent(layer)
	case lottie.LayerTypePreComp:
		content = b.precompLayerContent(layer)
	case lottie.LayerTypeNull:
		// Null layers render nothing; they exist as transform parents
		// and are composed into their children's parent chains.
		return nil
	case lottie.LayerTypeImage:
		b.iss.Report(issues.CodeUnsupportedLayerType, "image layer %q is not translated (no asset decoding)", layer.Name)
		return nil
	case lottie.LayerTypeText:
		b.iss.Report(issues.CodeUnsupportedLayerType, "text layer %q is not translated", layer.Name)
		return nil
	default:
		b.iss.Report(issues.CodeUnknownLayerType, "layer %q has unknown type %d", layer.Name, int(layer.Type))
		return nil
	}
	if content == nil {
		return nil
	}

	content = b.applyMasks(layer, content)

	// The layer's own transform, then each ancestor's transform
	// outward. Shared parents are duplicated per layer; the duplicates
	// are static and the optimizer coalesces what it can.
	wrapped := b.wrapInTransform(content, layer.Transform, layer.Name)
	seen := map[int]bool{layer.Index: true}
	parent := layer.Parent
	for parent != nil {
		p := layerByIndex(siblings, *parent)
		if p == nil || seen[p.Index] {
			break
		}
		seen[p.Index] = true
		wrapped = b.wrapInTransform(wrapped, p.Transform, p.Name)
		parent = p.Parent
	}

	return b.applyInOutVisibility(layer, wrapped)
}

func layerByIndex(layers []lottie.Layer, index int) *lottie.Layer {
	for i := range layers {
		if layers[i].Index == index {
			return &layers[i]
		}
	}
	return nil
}

// wrapInTransform wraps content in a container carrying the transform.
// A nil or empty transform still produces the wrapper; the optimizer
// elides it.
func (b *builder) wrapInTransform(content wincomp.Visual, t *lottie.Transform, name string) wincomp.Visual {
	container := &wincomp.ContainerVisual{Children: []wincomp.Visual{content}}
	container.Name = name
	if t == nil {
		return container
	}
	b.applyVisualTransform(container, t)
	return container
}

// applyVisualTransform lowers a Lottie transform onto a visual: the
// anchor becomes the center point, the position offsets by
// position-anchor, scale converts from percent.
func (b *builder) applyVisualTransform(v wincomp.Visual, t *lottie.Transform) {
	vb := v.VisualState()

	anchor := vec2Of(t.Anchor, geometry.Vector2{})
	position := vec2Of(t.Position, geometry.Vector2{})

	if anchor != (geometry.Vector2{}) {
		vb.CenterPoint = &geometry.Vector3{X: anchor.X, Y: anchor.Y}
	}
	if t.Position != nil && t.Position.IsAnimated {
		anim := b.vector3Animation(t.Position, func(val []float64) geometry.Vector3 {
			return geometry.Vector3{X: at(val, 0) - anchor.X, Y: at(val, 1) - anchor.Y}
		})
		b.bind(v, "Offset", anim)
	} else if offset := (geometry.Vector2{X: position.X - anchor.X, Y: position.Y - anchor.Y}); !offset.IsZero() {
		vb.Offset = &geometry.Vector3{X: offset.X, Y: offset.Y}
	}

	if t.Rotation != nil && t.Rotation.IsAnimated {
		anim := b.scalarAnimation(t.Rotation, func(val []float64) float64 { return at(val, 0) })
		b.bind(v, "RotationAngleInDegrees", anim)
	} else if rot := scalarOf(t.Rotation, 0); rot != 0 {
		vb.RotationAngleInDegrees = &rot
	}

	if t.Scale != nil && t.Scale.IsAnimated {
		anim := b.vector3Animation(t.Scale, func(val []float64) geometry.Vector3 {
			return geometry.Vector3{X: at(val, 0) / 100, Y: at(val, 1) / 100, Z: 1}
		})
		b.bind(v, "Scale", anim)
	} else if s := vec2Of(t.Scale, geometry.Vector2{X: 100, Y: 100}); !geometry.NearEqual(s.X, 100) || !geometry.NearEqual(s.Y, 100) {
		vb.Scale = &geometry.Vector3{X: s.X / 100, Y: s.Y / 100, Z: 1}
	}

	if t.Opacity != nil && t.Opacity.IsAnimated {
		anim := b.scalarAnimation(t.Opacity, func(val []float64) float64 { return at(val, 0) / 100 })
		b.bind(v, "Opacity", anim)
	} else if o := scalarOf(t.Opacity, 100); o != 100 {
		opacity := o / 100
		vb.Opacity = &opacity
	}
}

// bind starts an animation on target and attaches a paused controller
// whose Progress is driven by the shared progress expression.
func (b *builder) bind(target wincomp.Object, property string, anim wincomp.CompositionAnimation) {
	controller := &wincomp.AnimationController{Paused: true}
	controller.StartAnimation(ProgressProperty, b.progressExpression)
	target.Base().StartAnimation(property, anim).Controller = controller
}

// applyInOutVisibility hides the layer outside its in/out points with a
// step-eased boolean animation on the wrapper visual.
func (b *builder) applyInOutVisibility(layer *lottie.Layer, v wincomp.Visual) wincomp.Visual {
	startsLate := layer.InPoint > b.comp.InPoint
	endsEarly := layer.OutPoint < b.comp.OutPoint
	if !startsLate && !endsEarly {
		return v
	}

	anim := &wincomp.BooleanKeyFrameAnimation{}
	if startsLate {
		anim.InsertKeyFrame(0, false, nil)
		anim.InsertKeyFrame(b.comp.ProgressOfFrame(layer.InPoint), true, nil)
	} else {
		anim.InsertKeyFrame(0, true, nil)
	}
	if endsEarly {
		anim.InsertKeyFrame(b.comp.ProgressOfFrame(layer.OutPoint), false, nil)
	}
	b.bind(v, "IsVisible", anim)
	return v
}

// applyMasks lowers mask paths to a geometric clip. Only non-inverted
// additive masks with static paths translate; everything else is
// reported and skipped.
func (b *builder) applyMasks(layer *lottie.Layer, v wincomp.Visual) wincomp.Visual {
	for i := range layer.Masks {
		mask := &layer.Masks[i]
		if mask.Mode == lottie.MaskModeNone {
			continue
		}
		if mask.Mode != lottie.MaskModeAdd || mask.Inverted {
			b.iss.Report(issues.CodeUnsupportedMaskMode,
				"mask %q on layer %q uses mode %q, only additive masks are translated", mask.Name, layer.Name, mask.Mode)
			continue
		}
		if mask.Points == nil || mask.Points.IsAnimated || mask.Points.Value == nil {
			b.iss.Report(issues.CodeUnsupportedMaskMode,
				"mask %q on layer %q has an animated path, which is not translated", mask.Name, layer.Name)
			continue
		}
		clipGeometry := &wincomp.PathGeometry{Path: lowerBezierPath(mask.Points.Value)}
		clip := &wincomp.GeometricClip{Geometry: clipGeometry}
		clipContainer := &wincomp.ContainerVisual{Children: []wincomp.Visual{v}}
		clipContainer.Name = mask.Name
		clipContainer.Clip = clip
		v = clipContainer
	}
	return v
}

// solidLayerContent lowers a solid layer to a sprite visual painted
// with the layer color.
func (b *builder) solidLayerContent(layer *lottie.Layer) wincomp.Visual {
	sprite := &wincomp.SpriteVisual{}
	sprite.Name = layer.Name
	sprite.Size = &geometry.Vector2{X: layer.SolidWidth, Y: layer.SolidHeight}
	color := parseHexColor(layer.SolidColor)
	sprite.Brush = &wincomp.ColorBrush{Color: &color}
	return sprite
}

// precompLayerContent instantiates a precomp asset's layers inside a
// container clipped to the precomp bounds.
func (b *builder) precompLayerContent(layer *lottie.Layer) wincomp.Visual {
	asset := b.comp.AssetByID(layer.RefID)
	if asset == nil || len(asset.Layers) == 0 {
		b.iss.Report(issues.CodeUnsupportedLayerType, "precomp layer %q references missing asset %q", layer.Name, layer.RefID)
		return nil
	}
	if b.precompDepth >= maxPrecompDepth {
		b.iss.Report(issues.CodeUnsupportedLayerType, "precomp layer %q exceeds nesting limit", layer.Name)
		return nil
	}
	b.precompDepth++
	children := b.translateLayers(asset.Layers)
	b.precompDepth--

	container := &wincomp.ContainerVisual{Children: children}
	container.Name = layer.Name
	container.Size = &geometry.Vector2{X: layer.Width, Y: layer.Height}
	container.Clip = &wincomp.InsetClip{}
	return container
}

// Value-extraction helpers over the document model.

func at(v []float64, i int) float64 {
	if i < len(v) {
		return v[i]
	}
	return 0
}

func vec2Of(a *lottie.Animatable, fallback geometry.Vector2) geometry.Vector2 {
	if a == nil {
		return fallback
	}
	v := a.StaticValue()
	if len(v) == 0 {
		return fallback
	}
	return geometry.Vector2{X: at(v, 0), Y: at(v, 1)}
}

func scalarOf(a *lottie.Animatable, fallback float64) float64 {
	if a == nil {
		return fallback
	}
	return a.Scalar(fallback)
}

// parseHexColor reads a "#rrggbb" solid-layer color.
func parseHexColor(s string) wincomp.Color {
	if len(s) != 7 || s[0] != '#' {
		return wincomp.Color{A: 1}
	}
	hex := func(hi, lo byte) float64 {
		digit := func(c byte) int {
			switch {
			case c >= '0' && c <= '9':
				return int(c - '0')
			case c >= 'a' && c <= 'f':
				return int(c-'a') + 10
			case c >= 'A' && c <= 'F':
				return int(c-'A') + 10
			default:
				return 0
			}
		}
		return float64(digit(hi)*16+digit(lo)) / 255
	}
	return wincomp.Color{A: 1, R: hex(s[1], s[2]), G: hex(s[3], s[4]), B: hex(s[5], s[6])}
}
