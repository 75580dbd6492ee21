// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package wincomp

import (
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/karimalambert/Lottie-Windows/internal/geometry"
)

func buildTestGraph() (*ContainerVisual, *SpriteShape, *AnimationController) {
	sprite := &SpriteShape{
		Geometry:  &RectangleGeometry{Size: &geometry.Vector2{X: 10, Y: 10}},
		FillBrush: &ColorBrush{Color: &Color{A: 1}},
	}
	scale := &Vector2KeyFrameAnimation{}
	scale.InsertKeyFrame(0, geometry.Vector2{X: 1, Y: 1}, nil)
	scale.InsertKeyFrame(1, geometry.Vector2{X: 2, Y: 2}, &CubicBezierEasing{})
	controller := &AnimationController{Paused: true}
	sprite.StartAnimation("Scale", scale).Controller = controller

	container := &ContainerShape{Shapes: []CompositionShape{sprite}}
	sv := &ShapeVisual{Shapes: []CompositionShape{container}}
	sv.Size = &geometry.Vector2{X: 100, Y: 100}
	root := &ContainerVisual{Children: []Visual{sv}}
	return root, sprite, controller
}

func TestWalkVisitsOwnedNodes(t *testing.T) {
	root, sprite, controller := buildTestGraph()

	visited := map[Object]bool{}
	Walk(root, func(o Object) bool {
		visited[o] = true
		return true
	})

	for _, want := range []Object{root, sprite, controller, sprite.Geometry, sprite.FillBrush} {
		if !visited[want] {
			t.Errorf("walk missed %s\nvisited: %s", want.Kind(), spew.Sdump(visited))
		}
	}
	// The easing inside the key-frame animation is owned too.
	foundEasing := false
	for o := range visited {
		if o.Kind() == KindCubicBezierEasing {
			foundEasing = true
		}
	}
	if !foundEasing {
		t.Error("walk missed the key-frame easing")
	}
}

func TestCountNodes(t *testing.T) {
	root, _, _ := buildTestGraph()
	// root, shape visual, container shape, sprite, geometry, brush,
	// animation, easing, controller.
	if got, want := CountNodes(root), 9; got != want {
		t.Errorf("CountNodes = %d, want %d", got, want)
	}
	counts := CountByKind(root)
	if counts[KindSpriteShape] != 1 || counts[KindVector2KeyFrameAnimation] != 1 {
		t.Errorf("CountByKind = %v", counts)
	}
}

func TestStartStopAnimation(t *testing.T) {
	sprite := &SpriteShape{}
	anim := &ScalarKeyFrameAnimation{}
	sprite.StartAnimation("Opacity", anim)
	if !sprite.IsPropertyAnimated("Opacity") {
		t.Fatal("property not animated after StartAnimation")
	}
	if got := sprite.AnimatorByTarget("Opacity"); got == nil || got.Animation != CompositionAnimation(anim) {
		t.Fatal("AnimatorByTarget returned the wrong animator")
	}
	sprite.StopAnimation("Opacity")
	if sprite.IsPropertyAnimated("Opacity") {
		t.Fatal("property still animated after StopAnimation")
	}
	// Stopping again is a no-op.
	sprite.StopAnimation("Opacity")
}

func TestVisualChildrenPtrPanicsOnShape(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a non-visual")
		}
	}()
	VisualChildrenPtr(&ContainerShape{})
}

func TestPropagateDescriptions(t *testing.T) {
	from := &ContainerShape{}
	from.Name = "group 1"
	from.ShortDescription = "wheel"
	from.LongDescription = "the front wheel"
	to := &SpriteShape{}
	to.ShortDescription = "rim"

	PropagateDescriptions(from, to)

	if to.ShortDescription != "wheel rim" {
		t.Errorf("short description = %q", to.ShortDescription)
	}
	if to.LongDescription != "the front wheel" {
		t.Errorf("long description = %q", to.LongDescription)
	}
	if to.Name != "group 1" {
		t.Errorf("name = %q", to.Name)
	}

	// A second donor must not displace what is already there.
	other := &ContainerShape{}
	other.Name = "group 2"
	other.LongDescription = "other"
	PropagateDescriptions(other, to)
	if to.Name != "group 1" || to.LongDescription != "the front wheel" {
		t.Errorf("existing metadata displaced: name=%q long=%q", to.Name, to.LongDescription)
	}
}

func TestIsTransparentBrush(t *testing.T) {
	if !IsTransparentBrush(nil) {
		t.Error("nil brush must be transparent")
	}
	if !IsTransparentBrush(&ColorBrush{Color: &Color{A: 0, R: 1}}) {
		t.Error("alpha-zero color brush must be transparent")
	}
	if IsTransparentBrush(&ColorBrush{Color: &Color{A: 0.5}}) {
		t.Error("translucent brush must not be transparent")
	}
	animated := &ColorBrush{Color: &Color{A: 0}}
	animated.StartAnimation("Color", &ColorKeyFrameAnimation{})
	if IsTransparentBrush(animated) {
		t.Error("animated brush must not be transparent")
	}
	if IsTransparentBrush(&SurfaceBrush{}) {
		t.Error("surface brush must not be transparent")
	}
}
