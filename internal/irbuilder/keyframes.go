// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package irbuilder

import (
	"github.com/karimalambert/Lottie-Windows/internal/geometry"
	"github.com/karimalambert/Lottie-Windows/internal/lottie"
	"github.com/karimalambert/Lottie-Windows/internal/wincomp"
)

// scalarAnimation lowers an animated value to a scalar key-frame
// animation, converting each frame through convert.
func (b *builder) scalarAnimation(a *lottie.Animatable, convert func([]float64) float64) *wincomp.ScalarKeyFrameAnimation {
	anim := &wincomp.ScalarKeyFrameAnimation{}
	for i, kf := range a.KeyFrames {
		anim.InsertKeyFrame(b.comp.ProgressOfFrame(kf.Frame), convert(kf.Value), b.easingInto(a.KeyFrames, i))
	}
	return anim
}

// vector2Animation lowers an animated value to a Vector2 key-frame
// animation.
func (b *builder) vector2Animation(a *lottie.Animatable, convert func([]float64) geometry.Vector2) *wincomp.Vector2KeyFrameAnimation {
	anim := &wincomp.Vector2KeyFrameAnimation{}
	for i, kf := range a.KeyFrames {
		anim.InsertKeyFrame(b.comp.ProgressOfFrame(kf.Frame), convert(kf.Value), b.easingInto(a.KeyFrames, i))
	}
	return anim
}

// vector3Animation lowers an animated value to a Vector3 key-frame
// animation.
func (b *builder) vector3Animation(a *lottie.Animatable, convert func([]float64) geometry.Vector3) *wincomp.Vector3KeyFrameAnimation {
	anim := &wincomp.Vector3KeyFrameAnimation{}
	for i, kf := range a.KeyFrames {
		anim.InsertKeyFrame(b.comp.ProgressOfFrame(kf.Frame), convert(kf.Value), b.easingInto(a.KeyFrames, i))
	}
	return anim
}

// colorAnimation lowers an animated color value.
func (b *builder) colorAnimation(a *lottie.Animatable, convert func([]float64) wincomp.Color) *wincomp.ColorKeyFrameAnimation {
	anim := &wincomp.ColorKeyFrameAnimation{}
	for i, kf := range a.KeyFrames {
		anim.InsertKeyFrame(b.comp.ProgressOfFrame(kf.Frame), convert(kf.Value), b.easingInto(a.KeyFrames, i))
	}
	return anim
}

// pathAnimation lowers an animated path.
func (b *builder) pathAnimation(a *lottie.AnimatablePath) *wincomp.PathKeyFrameAnimation {
	anim := &wincomp.PathKeyFrameAnimation{}
	for i, kf := range a.KeyFrames {
		var easing wincomp.Easing
		if i > 0 {
			prev := a.KeyFrames[i-1]
			easing = lowerEasing(prev.OutTangent, prev.InTangent, prev.Hold)
		}
		anim.InsertKeyFrame(b.comp.ProgressOfFrame(kf.Frame), lowerBezierPath(kf.Value), easing)
	}
	return anim
}

// easingInto returns the easing shaping the approach into frame i.
// BodyMovin stores both tangents of a segment on the frame that starts
// it, so the previous frame's out and in tangents are paired. The first
// frame has nothing to ease from.
func (b *builder) easingInto(frames []lottie.KeyFrame, i int) wincomp.Easing {
	if i == 0 {
		return nil
	}
	prev := frames[i-1]
	return lowerEasing(prev.OutTangent, prev.InTangent, prev.Hold)
}

// lowerEasing converts a Lottie tangent pair to an easing node. A hold
// frame becomes a hold easing regardless of tangents; absent tangents
// mean linear, represented as nil.
func lowerEasing(out, in *lottie.Tangent, hold bool) wincomp.Easing {
	if hold {
		return &wincomp.HoldEasing{}
	}
	if out == nil || in == nil {
		return nil
	}
	c1 := geometry.Vector2{X: tangentAt(out.X, 0), Y: tangentAt(out.Y, 0)}
	c2 := geometry.Vector2{X: tangentAt(in.X, 0), Y: tangentAt(in.Y, 0)}
	// Control points on the diagonal describe a straight line, which
	// collapses to linear.
	if geometry.NearEqual(c1.X, c1.Y) && geometry.NearEqual(c2.X, c2.Y) {
		return nil
	}
	return &wincomp.CubicBezierEasing{C1: c1, C2: c2}
}

func tangentAt(v []float64, i int) float64 {
	if i < len(v) {
		return v[i]
	}
	return 0
}

// lowerBezierPath converts document path data (absolute vertices with
// relative tangents) to cubic segments.
func lowerBezierPath(p *lottie.BezierPath) *wincomp.Path {
	if p == nil || len(p.Vertices) == 0 {
		return &wincomp.Path{}
	}
	vertex := func(i int) geometry.Vector2 {
		v := p.Vertices[i]
		return geometry.Vector2{X: at(v, 0), Y: at(v, 1)}
	}
	rel := func(tangents [][]float64, i int) geometry.Vector2 {
		if i >= len(tangents) {
			return geometry.Vector2{}
		}
		t := tangents[i]
		return geometry.Vector2{X: at(t, 0), Y: at(t, 1)}
	}

	out := &wincomp.Path{Start: vertex(0), Closed: p.Closed}
	n := len(p.Vertices)
	segments := n - 1
	if p.Closed {
		segments = n
	}
	for i := 0; i < segments; i++ {
		next := (i + 1) % n
		from, to := vertex(i), vertex(next)
		o, in := rel(p.OutTangents, i), rel(p.InTangents, next)
		out.Cubics = append(out.Cubics, wincomp.CubicSegment{
			ControlPoint1: geometry.Vector2{X: from.X + o.X, Y: from.Y + o.Y},
			ControlPoint2: geometry.Vector2{X: to.X + in.X, Y: to.Y + in.Y},
			EndPoint:      to,
		})
	}
	return out
}
