// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package serializer

import (
	"strings"
	"testing"

	"github.com/karimalambert/Lottie-Windows/internal/geometry"
	"github.com/karimalambert/Lottie-Windows/internal/wincomp"
)

func sampleGraph() *wincomp.ContainerVisual {
	sprite := &wincomp.SpriteShape{
		Geometry:  &wincomp.EllipseGeometry{Center: &geometry.Vector2{}, Radius: &geometry.Vector2{X: 5, Y: 5}},
		FillBrush: &wincomp.ColorBrush{Color: &wincomp.Color{A: 1, R: 0.5}},
	}
	sprite.Name = "dot"
	sv := &wincomp.ShapeVisual{Shapes: []wincomp.CompositionShape{sprite}}
	sv.Size = &geometry.Vector2{X: 64, Y: 64}
	root := &wincomp.ContainerVisual{Children: []wincomp.Visual{sv}}
	root.Name = "demo"
	root.Properties.InsertScalar("Progress", 0)
	opacity := &wincomp.ScalarKeyFrameAnimation{}
	opacity.InsertKeyFrame(0, 0, nil)
	opacity.InsertKeyFrame(1, 1, nil)
	root.StartAnimation("Opacity", opacity)
	return root
}

func TestMarshalYAML(t *testing.T) {
	out, err := MarshalYAML(sampleGraph())
	if err != nil {
		t.Fatalf("MarshalYAML: %s", err)
	}
	text := string(out)
	for _, want := range []string{"ContainerVisual", "ShapeVisual", "SpriteShape", "demo", "Opacity", "Progress"} {
		if !strings.Contains(text, want) {
			t.Errorf("YAML output missing %q:\n%s", want, text)
		}
	}
}

func TestMarshalXML(t *testing.T) {
	out, err := MarshalXML(sampleGraph())
	if err != nil {
		t.Fatalf("MarshalXML: %s", err)
	}
	text := string(out)
	for _, want := range []string{"<ContainerVisual", "<SpriteShape", `name="dot"`, `animated="Opacity"`, "</ContainerVisual>"} {
		if !strings.Contains(text, want) {
			t.Errorf("XML output missing %q:\n%s", want, text)
		}
	}
}

func TestDumpTree(t *testing.T) {
	text := DumpTree(sampleGraph())
	for _, want := range []string{"ContainerVisual", "ShapeVisual", `SpriteShape "dot"`, "EllipseGeometry", "ColorBrush"} {
		if !strings.Contains(text, want) {
			t.Errorf("tree dump missing %q:\n%s", want, text)
		}
	}
	// Root, shape visual, sprite, and the sprite's geometry and brush
	// each take a line of their own.
	if len(strings.Split(strings.TrimSpace(text), "\n")) < 5 {
		t.Errorf("tree dump suspiciously short:\n%s", text)
	}
}

func TestSerializationDeterministic(t *testing.T) {
	a, err := MarshalYAML(sampleGraph())
	if err != nil {
		t.Fatal(err)
	}
	b, err := MarshalYAML(sampleGraph())
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Error("YAML output is not deterministic")
	}
}
