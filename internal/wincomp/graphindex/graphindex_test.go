// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package graphindex

import (
	"testing"

	"github.com/karimalambert/Lottie-Windows/internal/geometry"
	"github.com/karimalambert/Lottie-Windows/internal/wincomp"
)

func TestIndexParents(t *testing.T) {
	sprite := &wincomp.SpriteShape{FillBrush: &wincomp.ColorBrush{Color: &wincomp.Color{A: 1}}}
	container := &wincomp.ContainerShape{Shapes: []wincomp.CompositionShape{sprite}}
	sv := &wincomp.ShapeVisual{Shapes: []wincomp.CompositionShape{container}}
	root := &wincomp.ContainerVisual{Children: []wincomp.Visual{sv}}

	x := Build(root)

	if x.Parent(root) != nil {
		t.Error("root must have no parent")
	}
	if x.Parent(sv) != wincomp.Object(root) {
		t.Error("shape visual's parent must be the root")
	}
	if x.Parent(container) != wincomp.Object(sv) {
		t.Error("container's parent must be the shape visual")
	}
	if x.Parent(sprite) != wincomp.Object(container) {
		t.Error("sprite's parent must be the container")
	}
	if x.Parent(sprite.FillBrush) != wincomp.Object(sprite) {
		t.Error("brush's parent must be the sprite")
	}
}

func TestIndexInReferences(t *testing.T) {
	target := &wincomp.ContainerVisual{}
	expr := &wincomp.ExpressionAnimation{Expression: "src.Offset.X"}
	expr.SetReferenceParameter("src", target)

	consumer := &wincomp.ContainerVisual{}
	consumer.StartAnimation("Opacity", expr)

	surfaceSource := &wincomp.ContainerVisual{}
	surface := &wincomp.VisualSurface{SourceVisual: surfaceSource}
	spriteV := &wincomp.SpriteVisual{Brush: &wincomp.SurfaceBrush{Surface: surface}}

	root := &wincomp.ContainerVisual{Children: []wincomp.Visual{target, consumer, surfaceSource, spriteV}}
	root.Size = &geometry.Vector2{X: 10, Y: 10}

	x := Build(root)

	if !x.IsReferenced(target) {
		t.Error("expression target must be referenced")
	}
	refs := x.InRefs(target)
	if len(refs) != 1 || refs[0].Referrer != wincomp.Object(expr) {
		t.Errorf("InRefs = %+v", refs)
	}
	if x.IsVisualSurfaceSource(target) {
		t.Error("expression target is not a surface source")
	}

	if !x.IsVisualSurfaceSource(surfaceSource) {
		t.Error("surface source not detected")
	}
	if x.IsReferenced(consumer) {
		t.Error("consumer must not be referenced")
	}
}

func TestIndexSetParent(t *testing.T) {
	a := &wincomp.ContainerVisual{}
	b := &wincomp.ContainerVisual{Children: []wincomp.Visual{a}}
	root := &wincomp.ContainerVisual{Children: []wincomp.Visual{b}}

	x := Build(root)
	if x.Parent(a) != wincomp.Object(b) {
		t.Fatal("initial parent wrong")
	}
	// Splice helpers re-point children when they elide a container.
	x.SetParent(a, root)
	if x.Parent(a) != wincomp.Object(root) {
		t.Error("SetParent not visible through Parent")
	}
}
