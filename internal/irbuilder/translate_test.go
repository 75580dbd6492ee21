// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package irbuilder

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/karimalambert/Lottie-Windows/internal/geometry"
	"github.com/karimalambert/Lottie-Windows/internal/issues"
	"github.com/karimalambert/Lottie-Windows/internal/lottie"
	"github.com/karimalambert/Lottie-Windows/internal/wincomp"
)

const shapeDoc = `{
	"v": "5.5.7", "nm": "square", "w": 200, "h": 200,
	"ip": 0, "op": 120, "fr": 60,
	"layers": [
		{
			"ty": 4, "nm": "box", "ind": 1, "ip": 30, "op": 120, "st": 0,
			"ks": {
				"p": {"a": 0, "k": [100, 100]},
				"o": {"a": 0, "k": 50}
			},
			"shapes": [
				{
					"ty": "gr", "nm": "g",
					"it": [
						{"ty": "rc", "p": {"a": 0, "k": [0, 0]}, "s": {"a": 0, "k": [40, 40]}, "r": {"a": 0, "k": 0}},
						{"ty": "fl", "c": {"a": 0, "k": [0, 0.5, 1, 1]}, "o": {"a": 0, "k": 100}},
						{"ty": "tr", "a": {"a": 0, "k": [0, 0]}, "p": {"a": 0, "k": [10, 10]},
						 "s": {"a": 0, "k": [100, 100]}, "r": {"a": 0, "k": 0}, "o": {"a": 0, "k": 100}}
					]
				}
			]
		}
	]
}`

func parseDoc(t *testing.T, doc string) *lottie.LottieComposition {
	t.Helper()
	var iss issues.Issues
	comp, err := lottie.Parse([]byte(doc), &iss)
	if err != nil {
		t.Fatalf("Parse: %s", err)
	}
	return comp
}

func TestTranslateShapeLayer(t *testing.T) {
	comp := parseDoc(t, shapeDoc)
	var iss issues.Issues
	root, err := Translate(comp, &iss)
	if err != nil {
		t.Fatalf("Translate: %s", err)
	}
	if iss.HasIssues() {
		t.Errorf("unexpected issues: %v", iss.All())
	}

	if root.Size == nil || !root.Size.Equal(geometry.Vector2{X: 200, Y: 200}) {
		t.Errorf("root size = %v", root.Size)
	}
	if _, ok := root.Properties.Get(ProgressProperty); !ok {
		t.Error("root property set must carry Progress")
	}

	// Find the sprite: the graph should contain exactly one, carrying
	// the blue fill.
	var sprites []*wincomp.SpriteShape
	wincomp.Walk(root, func(o wincomp.Object) bool {
		if s, ok := o.(*wincomp.SpriteShape); ok {
			sprites = append(sprites, s)
		}
		return true
	})
	if len(sprites) != 1 {
		t.Fatalf("expected 1 sprite shape, found %d", len(sprites))
	}
	brush := sprites[0].FillBrush.(*wincomp.ColorBrush)
	want := wincomp.Color{A: 1, G: 0.5, B: 1}
	if !brush.Color.Equal(want) {
		t.Errorf("fill color = %+v, want %+v", *brush.Color, want)
	}
	rect, ok := sprites[0].Geometry.(*wincomp.RectangleGeometry)
	if !ok {
		t.Fatalf("geometry = %T, want RectangleGeometry", sprites[0].Geometry)
	}
	// 40x40 centered on (0,0): offset is -20,-20.
	if !rect.Offset.Equal(geometry.Vector2{X: -20, Y: -20}) {
		t.Errorf("rect offset = %v", *rect.Offset)
	}

	// The layer transform carries a static offset and half opacity
	// somewhere on the wrapper chain.
	foundOpacity := false
	foundVisibility := false
	wincomp.Walk(root, func(o wincomp.Object) bool {
		if v, ok := o.(wincomp.Visual); ok {
			vb := v.VisualState()
			if vb.Opacity != nil && geometry.NearEqual(*vb.Opacity, 0.5) {
				foundOpacity = true
			}
			if vb.IsPropertyAnimated("IsVisible") {
				foundVisibility = true
			}
		}
		return true
	})
	if !foundOpacity {
		t.Error("layer opacity was lost")
	}
	if !foundVisibility {
		t.Error("in-point after the composition start must produce a visibility animation")
	}
}

func TestTranslateShapeDocNodeCount(t *testing.T) {
	comp := parseDoc(t, shapeDoc)
	var iss issues.Issues
	root, err := Translate(comp, &iss)
	if err != nil {
		t.Fatalf("Translate: %s", err)
	}
	before := wincomp.CountNodes(root)
	if before < 5 {
		t.Fatalf("translation suspiciously small: %d nodes", before)
	}
}

func TestTranslateAnimatedTransform(t *testing.T) {
	doc := `{
		"v": "5.5.7", "w": 100, "h": 100, "ip": 0, "op": 100, "fr": 50,
		"layers": [
			{
				"ty": 4, "nm": "spin", "ind": 1, "ip": 0, "op": 100, "st": 0,
				"ks": {
					"r": {"a": 1, "k": [
						{"t": 0, "s": [0], "o": {"x": [0.5], "y": [0.1]}, "i": {"x": [0.5], "y": [0.9]}},
						{"t": 100, "s": [360]}
					]}
				},
				"shapes": [
					{"ty": "gr", "it": [
						{"ty": "el", "p": {"a": 0, "k": [0, 0]}, "s": {"a": 0, "k": [10, 10]}},
						{"ty": "fl", "c": {"a": 0, "k": [1, 1, 1, 1]}, "o": {"a": 0, "k": 100}}
					]}
				]
			}
		]
	}`
	comp := parseDoc(t, doc)
	var iss issues.Issues
	root, err := Translate(comp, &iss)
	if err != nil {
		t.Fatalf("Translate: %s", err)
	}

	var animator *wincomp.Animator
	wincomp.Walk(root, func(o wincomp.Object) bool {
		if a := o.Base().AnimatorByTarget("RotationAngleInDegrees"); a != nil {
			animator = a
			return false
		}
		return true
	})
	if animator == nil {
		t.Fatal("no rotation animator in the graph")
	}
	kfa, ok := animator.Animation.(*wincomp.ScalarKeyFrameAnimation)
	if !ok {
		t.Fatalf("animation = %T, want ScalarKeyFrameAnimation", animator.Animation)
	}
	if len(kfa.KeyFrames) != 2 {
		t.Fatalf("key frames = %d, want 2", len(kfa.KeyFrames))
	}
	if kfa.KeyFrames[1].Value != 360 || kfa.KeyFrames[1].Progress != 1 {
		t.Errorf("final frame = %+v", kfa.KeyFrames[1])
	}
	if _, ok := kfa.KeyFrames[1].Easing.(*wincomp.CubicBezierEasing); !ok {
		t.Errorf("easing = %T, want CubicBezierEasing", kfa.KeyFrames[1].Easing)
	}

	if animator.Controller == nil || !animator.Controller.Paused {
		t.Fatal("animator must carry a paused controller")
	}
	progress := animator.Controller.AnimatorByTarget(ProgressProperty)
	if progress == nil {
		t.Fatal("controller must bind Progress")
	}
	expr, ok := progress.Animation.(*wincomp.ExpressionAnimation)
	if !ok || expr.Expression != "_.Progress" {
		t.Errorf("progress expression = %+v", progress.Animation)
	}
	if len(expr.References) != 1 || expr.References[0].Target != wincomp.Object(root) {
		t.Error("progress expression must reference the root")
	}
}

func TestProgressMapFactoryOrdering(t *testing.T) {
	var f ProgressMapFactory
	if !f.TryAddRange("end", 0.8, 1.0) {
		t.Fatal("first insert rejected")
	}
	if !f.TryAddRange("start", 0.0, 0.2) {
		t.Fatal("second insert rejected")
	}
	if !f.TryAddRange("mid", 0.4, 0.6) {
		t.Fatal("third insert rejected")
	}
	if f.TryAddRange("mid", 0.4, 0.6) {
		t.Error("duplicate insert must be rejected")
	}
	want := []ProgressRange{
		{Name: "start", Start: 0.0, End: 0.2},
		{Name: "mid", Start: 0.4, End: 0.6},
		{Name: "end", Start: 0.8, End: 1.0},
	}
	if diff := cmp.Diff(want, f.Ranges()); diff != "" {
		t.Errorf("ranges mismatch (-want +got):\n%s", diff)
	}
}

func TestMarkerRanges(t *testing.T) {
	comp := parseDoc(t, shapeDoc)
	comp.Markers = []lottie.Marker{
		{Name: "b", Frame: 60, Duration: 30},
		{Name: "a", Frame: 0, Duration: 60},
	}
	got := MarkerRanges(comp)
	want := []ProgressRange{
		{Name: "a", Start: 0, End: 0.5},
		{Name: "b", Start: 0.5, End: 0.75},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("marker ranges mismatch (-want +got):\n%s", diff)
	}
}
