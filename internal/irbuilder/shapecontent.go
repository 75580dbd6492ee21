// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package irbuilder

import (
	"github.com/karimalambert/Lottie-Windows/internal/geometry"
	"github.com/karimalambert/Lottie-Windows/internal/issues"
	"github.com/karimalambert/Lottie-Windows/internal/lottie"
	"github.com/karimalambert/Lottie-Windows/internal/wincomp"
)

// shapeLayerContent lowers a shape layer to a ShapeVisual holding the
// lowered shape tree.
func (b *builder) shapeLayerContent(layer *lottie.Layer) wincomp.Visual {
	sv := &wincomp.ShapeVisual{}
	sv.Name = layer.Name
	sv.Size = &geometry.Vector2{X: b.comp.Width, Y: b.comp.Height}
	sv.Shapes = b.lowerShapeItems(layer.Shapes, layer.Name)
	if len(sv.Shapes) == 0 {
		return nil
	}
	return sv
}

// shapeContext accumulates the paint and trim state of one group while
// its items are folded left to right.
type shapeContext struct {
	fill   *lottie.FillShape
	stroke *lottie.StrokeShape
	trim   *lottie.TrimPathShape
}

// lowerShapeItems folds a group's items into child shapes, one sprite
// shape per geometry in document order. Every geometry of the group is
// painted with the group's first fill and first stroke and trimmed by
// its first trim path, wherever those items appear in the group; further
// fills, strokes and trim paths in the same group are not translated.
func (b *builder) lowerShapeItems(items []lottie.ShapeItem, owner string) []wincomp.CompositionShape {
	var out []wincomp.CompositionShape
	ctx := &shapeContext{}

	// Paint and trim state apply to geometries anywhere in the group,
	// so collect the first of each before lowering geometries.
	for i := range items {
		item := &items[i]
		if item.Hidden {
			continue
		}
		switch item.Type {
		case lottie.ShapeItemFill:
			if ctx.fill == nil {
				ctx.fill = item.Fill
			}
		case lottie.ShapeItemStroke:
			if ctx.stroke == nil {
				ctx.stroke = item.Stroke
			}
		case lottie.ShapeItemTrimPath:
			if ctx.trim == nil {
				ctx.trim = item.TrimPath
			}
		case lottie.ShapeItemGradientFill, lottie.ShapeItemGradStroke:
			b.iss.Report(issues.CodeGradientStrokeApprox,
				"gradient paint %q in %q is not translated", item.Name, owner)
		}
	}

	for i := range items {
		item := &items[i]
		if item.Hidden {
			continue
		}
		switch item.Type {
		case lottie.ShapeItemGroup:
			group := b.lowerGroup(item)
			if group != nil {
				out = append(out, group)
			}
		case lottie.ShapeItemPath:
			out = b.appendSprite(out, item.Name, b.pathGeometry(item.Path, ctx), ctx)
		case lottie.ShapeItemRectangle:
			out = b.appendSprite(out, item.Name, b.rectangleGeometry(item.Rectangle, ctx), ctx)
		case lottie.ShapeItemEllipse:
			out = b.appendSprite(out, item.Name, b.ellipseGeometry(item.Ellipse, ctx), ctx)
		case lottie.ShapeItemFill, lottie.ShapeItemStroke, lottie.ShapeItemTrimPath,
			lottie.ShapeItemTransform, lottie.ShapeItemGradientFill, lottie.ShapeItemGradStroke:
			// Handled above or by the group wrapper.
		default:
			b.iss.Report(issues.CodeUnknownShapeType,
				"shape item %q of type %q in %q is not translated", item.Name, item.Type, owner)
		}
	}
	return out
}

// lowerGroup lowers a "gr" item: a container shape carrying the group
// transform with the group's content as children.
func (b *builder) lowerGroup(item *lottie.ShapeItem) wincomp.CompositionShape {
	container := &wincomp.ContainerShape{}
	container.Name = item.Name
	container.Shapes = b.lowerShapeItems(item.Group.Items, item.Name)
	if len(container.Shapes) == 0 {
		return nil
	}
	for i := range item.Group.Items {
		if t := item.Group.Items[i].Transform; t != nil {
			b.applyShapeTransform(container, t)
			break
		}
	}
	return container
}

// applyShapeTransform lowers a group transform onto a container shape.
func (b *builder) applyShapeTransform(c *wincomp.ContainerShape, t *lottie.TransformShape) {
	anchor := vec2Of(t.Anchor, geometry.Vector2{})
	if anchor != (geometry.Vector2{}) {
		cp := anchor
		c.CenterPoint = &cp
	}

	if t.Position != nil && t.Position.IsAnimated {
		anim := b.vector2Animation(t.Position, func(val []float64) geometry.Vector2 {
			return geometry.Vector2{X: at(val, 0) - anchor.X, Y: at(val, 1) - anchor.Y}
		})
		b.bind(c, "Offset", anim)
	} else {
		position := vec2Of(t.Position, geometry.Vector2{})
		if offset := (geometry.Vector2{X: position.X - anchor.X, Y: position.Y - anchor.Y}); !offset.IsZero() {
			c.Offset = &offset
		}
	}

	if t.Rotation != nil && t.Rotation.IsAnimated {
		b.bind(c, "RotationAngleInDegrees", b.scalarAnimation(t.Rotation, func(val []float64) float64 { return at(val, 0) }))
	} else if rot := scalarOf(t.Rotation, 0); rot != 0 {
		c.RotationAngleInDegrees = &rot
	}

	if t.Scale != nil && t.Scale.IsAnimated {
		anim := b.vector2Animation(t.Scale, func(val []float64) geometry.Vector2 {
			return geometry.Vector2{X: at(val, 0) / 100, Y: at(val, 1) / 100}
		})
		b.bind(c, "Scale", anim)
	} else if s := vec2Of(t.Scale, geometry.Vector2{X: 100, Y: 100}); !geometry.NearEqual(s.X, 100) || !geometry.NearEqual(s.Y, 100) {
		c.Scale = &geometry.Vector2{X: s.X / 100, Y: s.Y / 100}
	}
}

// appendSprite builds a sprite shape for one geometry with the group's
// paint, or drops the geometry when nothing paints it.
func (b *builder) appendSprite(out []wincomp.CompositionShape, name string, g wincomp.CompositionGeometry, ctx *shapeContext) []wincomp.CompositionShape {
	if g == nil || (ctx.fill == nil && ctx.stroke == nil) {
		return out
	}
	sprite := &wincomp.SpriteShape{Geometry: g}
	sprite.Name = name
	if ctx.fill != nil {
		sprite.FillBrush = b.lowerPaint(ctx.fill.Color, ctx.fill.Opacity)
	}
	if ctx.stroke != nil {
		sprite.StrokeBrush = b.lowerPaint(ctx.stroke.Color, ctx.stroke.Opacity)
		width := scalarOf(ctx.stroke.Width, 1)
		sprite.StrokeThickness = &width
		sprite.StrokeMiterLimit = &ctx.stroke.MiterLimit
		sprite.StrokeStartCap = lowerCap(ctx.stroke.LineCap)
		sprite.StrokeEndCap = lowerCap(ctx.stroke.LineCap)
		sprite.StrokeDashCap = lowerCap(ctx.stroke.LineCap)
		sprite.StrokeLineJoin = lowerJoin(ctx.stroke.LineJoin)
	}
	return append(out, sprite)
}

// lowerPaint builds a color brush from a color and a percent opacity.
// An animated color becomes a color animation; an animated opacity
// contributes only its first key frame's value.
func (b *builder) lowerPaint(color, opacity *lottie.Animatable) wincomp.CompositionBrush {
	brush := &wincomp.ColorBrush{}
	alpha := scalarOf(opacity, 100) / 100

	if color != nil && color.IsAnimated {
		anim := b.colorAnimation(color, func(val []float64) wincomp.Color {
			return lowerColor(val, alpha)
		})
		brush.StartAnimation("Color", anim)
		initial := lowerColor(color.StaticValue(), alpha)
		brush.Color = &initial
		return brush
	}

	c := lowerColor(staticOrNil(color), alpha)
	brush.Color = &c
	return brush
}

func staticOrNil(a *lottie.Animatable) []float64 {
	if a == nil {
		return nil
	}
	return a.StaticValue()
}

func lowerColor(val []float64, alpha float64) wincomp.Color {
	a := alpha
	if len(val) > 3 {
		a *= at(val, 3)
	}
	return wincomp.Color{A: a, R: at(val, 0), G: at(val, 1), B: at(val, 2)}
}

func lowerCap(lc int) wincomp.StrokeCap {
	switch lc {
	case 2:
		return wincomp.StrokeCapRound
	case 3:
		return wincomp.StrokeCapSquare
	default:
		return wincomp.StrokeCapFlat
	}
}

func lowerJoin(lj int) wincomp.StrokeLineJoin {
	switch lj {
	case 2:
		return wincomp.StrokeLineJoinRound
	case 3:
		return wincomp.StrokeLineJoinBevel
	default:
		return wincomp.StrokeLineJoinMiter
	}
}

// Geometry lowering. Trim state applies to each geometry it paints.

func (b *builder) pathGeometry(p *lottie.PathShape, ctx *shapeContext) wincomp.CompositionGeometry {
	g := &wincomp.PathGeometry{}
	if p.Geometry != nil {
		if p.Geometry.IsAnimated {
			b.bind(g, "Path", b.pathAnimation(p.Geometry))
			if len(p.Geometry.KeyFrames) > 0 {
				g.Path = lowerBezierPath(p.Geometry.KeyFrames[0].Value)
			}
		} else {
			g.Path = lowerBezierPath(p.Geometry.Value)
		}
	}
	b.applyTrim(g, ctx)
	return g
}

func (b *builder) rectangleGeometry(r *lottie.RectangleShape, ctx *shapeContext) wincomp.CompositionGeometry {
	s := vec2Of(r.Size, geometry.Vector2{})
	p := vec2Of(r.Position, geometry.Vector2{})
	// BodyMovin rectangles are centered on their position.
	offset := geometry.Vector2{X: p.X - s.X/2, Y: p.Y - s.Y/2}

	if roundness := scalarOf(r.Roundness, 0); roundness > 0 {
		g := &wincomp.RoundedRectangleGeometry{
			Offset:       &offset,
			Size:         &s,
			CornerRadius: &geometry.Vector2{X: roundness, Y: roundness},
		}
		b.applyTrim(g, ctx)
		return g
	}
	g := &wincomp.RectangleGeometry{Offset: &offset, Size: &s}
	b.applyTrim(g, ctx)
	return g
}

func (b *builder) ellipseGeometry(e *lottie.EllipseShape, ctx *shapeContext) wincomp.CompositionGeometry {
	s := vec2Of(e.Size, geometry.Vector2{})
	center := vec2Of(e.Position, geometry.Vector2{})
	g := &wincomp.EllipseGeometry{
		Center: &center,
		Radius: &geometry.Vector2{X: s.X / 2, Y: s.Y / 2},
	}
	b.applyTrim(g, ctx)
	return g
}

// applyTrim sets or animates the trim slots from the group's trim path.
func (b *builder) applyTrim(g wincomp.CompositionGeometry, ctx *shapeContext) {
	if ctx.trim == nil {
		return
	}
	gb := g.GeometryState()
	lower := func(a *lottie.Animatable, property string, slot **float64, fallback float64) {
		if a == nil {
			return
		}
		if a.IsAnimated {
			b.bind(g, property, b.scalarAnimation(a, func(val []float64) float64 { return at(val, 0) / 100 }))
			return
		}
		if v := a.Scalar(fallback); !geometry.NearEqual(v, fallback) {
			trimmed := v / 100
			*slot = &trimmed
		}
	}
	lower(ctx.trim.Start, "TrimStart", &gb.TrimStart, 0)
	lower(ctx.trim.End, "TrimEnd", &gb.TrimEnd, 100)
	lower(ctx.trim.Offset, "TrimOffset", &gb.TrimOffset, 0)
}
