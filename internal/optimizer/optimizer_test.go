// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package optimizer

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/karimalambert/Lottie-Windows/internal/geometry"
	"github.com/karimalambert/Lottie-Windows/internal/wincomp"
)

func f64(v float64) *float64                 { return &v }
func vec2(x, y float64) *geometry.Vector2    { return &geometry.Vector2{X: x, Y: y} }
func vec3(x, y, z float64) *geometry.Vector3 { return &geometry.Vector3{X: x, Y: y, Z: z} }
func size(w, h float64) *geometry.Vector2    { return &geometry.Vector2{X: w, Y: h} }

// redSprite returns a sprite shape that survives transparent-shape
// elision.
func redSprite() *wincomp.SpriteShape {
	return &wincomp.SpriteShape{
		Geometry:  &wincomp.RectangleGeometry{Size: size(10, 10)},
		FillBrush: &wincomp.ColorBrush{Color: &wincomp.Color{A: 1, R: 1}},
	}
}

func shapeVisualOf(shapes ...wincomp.CompositionShape) *wincomp.ShapeVisual {
	sv := &wincomp.ShapeVisual{Shapes: shapes}
	sv.Size = size(100, 100)
	return sv
}

func TestOptimizeEmptyContainerPrune(t *testing.T) {
	inner := &wincomp.ContainerShape{}
	outer := &wincomp.ContainerShape{Shapes: []wincomp.CompositionShape{inner}}
	root := shapeVisualOf(outer)

	got, _ := Optimize(root)

	sv, ok := got.(*wincomp.ShapeVisual)
	if !ok {
		t.Fatalf("root changed kind: got %s", got.Kind())
	}
	if len(sv.Shapes) != 0 {
		t.Errorf("empty containers survived: %d shapes remain", len(sv.Shapes))
	}
}

func TestOptimizeStructuralSplice(t *testing.T) {
	child := shapeVisualOf(redSprite())
	wrapper := &wincomp.ContainerVisual{Children: []wincomp.Visual{child}}

	got, _ := Optimize(wrapper)

	if got != wincomp.Visual(child) {
		t.Fatalf("expected the ShapeVisual to become the root, got %s", got.Kind())
	}
	if child.Size == nil || !child.Size.Equal(geometry.Vector2{X: 100, Y: 100}) {
		t.Errorf("child size changed: %+v", child.Size)
	}
}

func TestOptimizeTransformFold(t *testing.T) {
	sprite := redSprite()
	sprite.CenterPoint = vec2(10, 10)
	sprite.Scale = vec2(2, 2)
	sprite.RotationAngleInDegrees = f64(90)
	sprite.Offset = vec2(5, 0)
	root := shapeVisualOf(sprite)

	Optimize(root)

	if sprite.CenterPoint != nil || sprite.Scale != nil || sprite.RotationAngleInDegrees != nil || sprite.Offset != nil {
		t.Errorf("source slots not cleared: cp=%v scale=%v rot=%v offset=%v",
			sprite.CenterPoint, sprite.Scale, sprite.RotationAngleInDegrees, sprite.Offset)
	}
	if sprite.TransformMatrix == nil {
		t.Fatal("expected a folded TransformMatrix")
	}
	cp := geometry.Vector2{X: 10, Y: 10}
	want := geometry.Scale3x2(geometry.Vector2{X: 2, Y: 2}, cp).
		Mul(geometry.Rotation3x2(math.Pi/2, cp)).
		Mul(geometry.Translation3x2(geometry.Vector2{X: 5}))
	if !sprite.TransformMatrix.Equal(want) {
		t.Errorf("folded matrix mismatch:\n got %+v\nwant %+v", *sprite.TransformMatrix, want)
	}
}

func TestOptimizeTransparentSpriteRemoved(t *testing.T) {
	transparent := &wincomp.SpriteShape{
		Geometry:  &wincomp.EllipseGeometry{Radius: vec2(5, 5)},
		FillBrush: &wincomp.ColorBrush{Color: &wincomp.Color{A: 0, R: 1, G: 1, B: 1}},
	}
	keeper := redSprite()
	root := shapeVisualOf(transparent, keeper)

	got, _ := Optimize(root)

	sv := got.(*wincomp.ShapeVisual)
	if len(sv.Shapes) != 1 || sv.Shapes[0] != wincomp.CompositionShape(keeper) {
		t.Errorf("expected only the opaque sprite to survive, got %d shapes", len(sv.Shapes))
	}
}

func TestOptimizeTransparentAnimatedBrushKept(t *testing.T) {
	brush := &wincomp.ColorBrush{Color: &wincomp.Color{A: 0}}
	anim := &wincomp.ColorKeyFrameAnimation{}
	anim.InsertKeyFrame(0, wincomp.Color{A: 0}, nil)
	anim.InsertKeyFrame(1, wincomp.Color{A: 1, R: 1}, nil)
	brush.StartAnimation("Color", anim)
	sprite := &wincomp.SpriteShape{
		Geometry:  &wincomp.RectangleGeometry{Size: size(4, 4)},
		FillBrush: brush,
	}
	root := shapeVisualOf(sprite)

	got, _ := Optimize(root)

	sv := got.(*wincomp.ShapeVisual)
	if len(sv.Shapes) != 1 {
		t.Errorf("animated transparent brush must keep its sprite, got %d shapes", len(sv.Shapes))
	}
}

func TestOptimizeOrthogonalCoalesce(t *testing.T) {
	sprite := &wincomp.SpriteVisual{}
	sprite.Offset = vec3(1, 2, 0)
	sprite.Brush = &wincomp.ColorBrush{Color: &wincomp.Color{A: 1, B: 1}}
	parent := &wincomp.ContainerVisual{Children: []wincomp.Visual{sprite}}
	parent.Opacity = f64(0.5)
	root := &wincomp.ContainerVisual{Children: []wincomp.Visual{parent}}

	got, _ := Optimize(root)

	if got != wincomp.Visual(sprite) {
		t.Fatalf("expected the sprite visual to become the root, got %s", got.Kind())
	}
	if sprite.Opacity == nil || !geometry.NearEqual(*sprite.Opacity, 0.5) {
		t.Errorf("opacity did not transfer: %v", sprite.Opacity)
	}
	if sprite.Offset == nil || !sprite.Offset.Equal(geometry.Vector3{X: 1, Y: 2}) {
		t.Errorf("offset lost in transfer: %v", sprite.Offset)
	}
}

func TestOptimizeOrderViolationBlocked(t *testing.T) {
	// Scale and Offset are kept animated so the simplifier cannot fold
	// them away: the masks must stay {Scale} and {Offset} to exercise
	// the order predicate itself. The child holds two grandchildren so
	// no other rule can dissolve it first.
	child := &wincomp.ContainerVisual{Children: []wincomp.Visual{shapeVisualOf(redSprite()), shapeVisualOf(redSprite())}}
	offsetAnim := &wincomp.Vector3KeyFrameAnimation{}
	offsetAnim.InsertKeyFrame(0, geometry.Vector3{X: 3}, nil)
	offsetAnim.InsertKeyFrame(1, geometry.Vector3{X: 6}, nil)
	child.StartAnimation("Offset", offsetAnim)

	parent := &wincomp.ContainerVisual{Children: []wincomp.Visual{child}}
	scaleAnim := &wincomp.Vector3KeyFrameAnimation{}
	scaleAnim.InsertKeyFrame(0, geometry.Vector3{X: 2, Y: 2, Z: 1}, nil)
	scaleAnim.InsertKeyFrame(1, geometry.Vector3{X: 3, Y: 3, Z: 1}, nil)
	parent.StartAnimation("Scale", scaleAnim)

	Optimize(parent)

	if len(parent.Children) != 1 || parent.Children[0] != wincomp.Visual(child) {
		t.Fatal("parent/child with Scale-over-Offset must not coalesce")
	}
	if !child.IsPropertyAnimated("Offset") {
		t.Error("child lost its Offset animator")
	}
}

func TestOptimizeStaticScaleOverOffsetStillBlocked(t *testing.T) {
	// Single static slots are not folded by the simplifier, so the
	// masks stay {Scale} and {Offset} and the order rule blocks the
	// merge directly.
	child := &wincomp.ContainerVisual{Children: []wincomp.Visual{shapeVisualOf(redSprite()), shapeVisualOf(redSprite())}}
	child.Offset = vec3(3, 0, 0)
	parent := &wincomp.ContainerVisual{Children: []wincomp.Visual{child}}
	parent.Scale = vec3(2, 2, 1)

	Optimize(parent)

	if len(parent.Children) != 1 || parent.Children[0] != wincomp.Visual(child) {
		t.Fatal("scaled parent with offset child must not coalesce")
	}
}

func TestOptimizeIdempotent(t *testing.T) {
	build := func() wincomp.Visual {
		inner := &wincomp.ContainerShape{Shapes: []wincomp.CompositionShape{redSprite()}}
		inner.Offset = vec2(5, 5)
		outer := &wincomp.ContainerShape{Shapes: []wincomp.CompositionShape{inner}}
		sv := shapeVisualOf(outer)
		wrapper := &wincomp.ContainerVisual{Children: []wincomp.Visual{sv}}
		wrapper.Opacity = f64(0.25)
		return wrapper
	}

	root, first := Optimize(build())
	again, second := Optimize(root)

	if again != root {
		t.Error("second optimize changed the root")
	}
	if second.Iterations != 1 || len(second.PassProgress) != 0 {
		t.Errorf("second optimize made progress: %+v", second.PassProgress)
	}
	if second.NodesAfter != first.NodesAfter {
		t.Errorf("node count moved at the fixed point: %d -> %d", first.NodesAfter, second.NodesAfter)
	}
}

func TestOptimizeMonotone(t *testing.T) {
	sprite := redSprite()
	sprite.RotationAngleInDegrees = f64(45)
	inner := &wincomp.ContainerShape{Shapes: []wincomp.CompositionShape{sprite}}
	outer := &wincomp.ContainerShape{Shapes: []wincomp.CompositionShape{inner, &wincomp.ContainerShape{}}}
	root := shapeVisualOf(outer)

	before := wincomp.CountNodes(root)
	got, stats := Optimize(root)
	after := wincomp.CountNodes(got)

	if after > before {
		t.Errorf("node count grew: %d -> %d", before, after)
	}
	if stats.NodesBefore != before || stats.NodesAfter != after {
		t.Errorf("stats disagree with CountNodes: %+v", stats)
	}
}

func TestOptimizeCenterPointPreservation(t *testing.T) {
	// An animated Scale keeps its center point; a center point with
	// nothing to center is cleared.
	animated := redSprite()
	animated.CenterPoint = vec2(7, 7)
	scaleAnim := &wincomp.Vector2KeyFrameAnimation{}
	scaleAnim.InsertKeyFrame(0, geometry.Vector2{X: 1, Y: 1}, nil)
	scaleAnim.InsertKeyFrame(1, geometry.Vector2{X: 2, Y: 2}, nil)
	animated.StartAnimation("Scale", scaleAnim)

	inert := redSprite()
	inert.CenterPoint = vec2(9, 9)

	root := shapeVisualOf(animated, inert)
	Optimize(root)

	if animated.CenterPoint == nil {
		t.Error("center point cleared while Scale is animated")
	}
	if inert.CenterPoint != nil {
		t.Error("inert center point survived")
	}
}

func TestOptimizeAnimatedChildMatrixBlocksPushDown(t *testing.T) {
	child := redSprite()
	tmAnim := &wincomp.ExpressionAnimation{Expression: "Matrix3x2(1,0,0,1,_.Progress,0)"}
	child.StartAnimation("TransformMatrix", tmAnim)

	m := geometry.Translation3x2(geometry.Vector2{X: 10})
	container := &wincomp.ContainerShape{Shapes: []wincomp.CompositionShape{child}}
	container.TransformMatrix = &m

	root := shapeVisualOf(container)
	got, _ := Optimize(root)

	sv := got.(*wincomp.ShapeVisual)
	if len(sv.Shapes) != 1 || sv.Shapes[0] != wincomp.CompositionShape(container) {
		t.Fatal("container with animated-matrix child must not fold")
	}
	if container.TransformMatrix == nil || !container.TransformMatrix.Equal(m) {
		t.Error("container matrix changed")
	}
}

func TestOptimizeVisualSurfaceSourceNotFolded(t *testing.T) {
	inner := &wincomp.SpriteVisual{Brush: &wincomp.ColorBrush{Color: &wincomp.Color{A: 1, G: 1}}}
	inner.Offset = vec3(4, 4, 0)
	source := &wincomp.ContainerVisual{Children: []wincomp.Visual{inner}}
	source.Opacity = f64(0.5)

	surface := &wincomp.VisualSurface{SourceVisual: source}
	consumer := &wincomp.SpriteVisual{Brush: &wincomp.SurfaceBrush{Surface: surface}}

	root := &wincomp.ContainerVisual{Children: []wincomp.Visual{source, consumer}}
	root.Size = size(200, 200)

	Optimize(root)

	if len(source.Children) != 1 || source.Children[0] != wincomp.Visual(inner) {
		t.Fatal("visual-surface source was folded")
	}
	if inner.Opacity != nil {
		t.Error("properties hoisted across a visual-surface source")
	}
}

func TestOptimizeSiblingContainerShapeCoalesce(t *testing.T) {
	rot := &wincomp.ScalarKeyFrameAnimation{}
	rot.InsertKeyFrame(0, 0, nil)
	rot.InsertKeyFrame(1, 180, nil)

	first := &wincomp.ContainerShape{Shapes: []wincomp.CompositionShape{redSprite()}}
	first.StartAnimation("RotationAngleInDegrees", rot)
	second := &wincomp.ContainerShape{Shapes: []wincomp.CompositionShape{redSprite()}}
	second.StartAnimation("RotationAngleInDegrees", rot)

	// A third sibling with a structurally equal but distinct animation
	// must not merge: by-reference equality is required.
	otherRot := &wincomp.ScalarKeyFrameAnimation{}
	otherRot.InsertKeyFrame(0, 0, nil)
	otherRot.InsertKeyFrame(1, 180, nil)
	third := &wincomp.ContainerShape{Shapes: []wincomp.CompositionShape{redSprite()}}
	third.StartAnimation("RotationAngleInDegrees", otherRot)

	root := shapeVisualOf(first, second, third)
	got, _ := Optimize(root)

	sv := got.(*wincomp.ShapeVisual)
	if len(sv.Shapes) != 2 {
		t.Fatalf("expected first+second merged and third kept, got %d children", len(sv.Shapes))
	}
	merged := sv.Shapes[0].(*wincomp.ContainerShape)
	if len(merged.Shapes) != 2 {
		t.Errorf("merged container should hold both sprites, has %d", len(merged.Shapes))
	}
}

func TestOptimizeShapeVisibilityIntoVisualTree(t *testing.T) {
	sprite := redSprite()
	holder := &wincomp.ContainerShape{Shapes: []wincomp.CompositionShape{sprite}}

	vis := &wincomp.Vector2KeyFrameAnimation{}
	step := &wincomp.StepEasing{StepCount: 1}
	vis.InsertKeyFrame(0, geometry.Vector2{}, step)
	vis.InsertKeyFrame(0.5, geometry.Vector2{X: 1, Y: 1}, step)
	controller := &wincomp.AnimationController{}
	progress := &wincomp.ExpressionAnimation{Expression: "_.Progress"}
	controller.StartAnimation("Progress", progress)
	holder.StartAnimation("Scale", vis).Controller = controller

	root := shapeVisualOf(holder)
	got, _ := Optimize(root)

	sv := got.(*wincomp.ShapeVisual)
	animator := sv.AnimatorByTarget("IsVisible")
	if animator == nil {
		t.Fatal("expected an IsVisible animator on the shape visual")
	}
	if animator.Controller != controller {
		t.Error("controller did not migrate to the visibility animator")
	}
	boolAnim, ok := animator.Animation.(*wincomp.BooleanKeyFrameAnimation)
	if !ok {
		t.Fatalf("expected a boolean key-frame animation, got %T", animator.Animation)
	}
	wantFrames := []wincomp.KeyFrame[bool]{
		{Progress: 0, Value: false},
		{Progress: 0.5, Value: true},
	}
	if diff := cmp.Diff(wantFrames, boolAnim.KeyFrames); diff != "" {
		t.Errorf("visibility key frames mismatch (-want +got):\n%s", diff)
	}

	// The scale must be fully consumed somewhere in the remaining tree.
	wincomp.Walk(got, func(o wincomp.Object) bool {
		if s, ok := o.(wincomp.CompositionShape); ok {
			if s.ShapeState().Scale != nil || s.ShapeState().IsPropertyAnimated("Scale") {
				t.Errorf("visibility scale survived on %s", o.Kind())
			}
		}
		return true
	})
}

func TestOptimizeRedundantInsetClipVisual(t *testing.T) {
	child := shapeVisualOf(redSprite())
	container := &wincomp.ContainerVisual{Children: []wincomp.Visual{child}}
	container.Size = size(100, 100)
	container.Clip = &wincomp.InsetClip{}
	outer := &wincomp.ContainerVisual{Children: []wincomp.Visual{container}}
	outer.Opacity = f64(0.9)

	Optimize(outer)

	if len(outer.Children) != 1 || outer.Children[0] != wincomp.Visual(child) {
		t.Fatalf("zero-inset clip container should be replaced by its shape visual")
	}
}
