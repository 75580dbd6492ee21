// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package lottie

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/karimalambert/Lottie-Windows/internal/issues"
)

const minimalDoc = `{
	"v": "5.5.7",
	"nm": "pulse",
	"w": 100, "h": 100,
	"ip": 0, "op": 60, "fr": 30,
	"markers": [{"cm": "start", "tm": 0, "dr": 30}],
	"layers": [
		{
			"ty": 4, "nm": "dot", "ind": 1,
			"ip": 0, "op": 60, "st": 0,
			"ks": {
				"a": {"a": 0, "k": [0, 0]},
				"p": {"a": 0, "k": [50, 50]},
				"s": {"a": 1, "k": [
					{"t": 0, "s": [100, 100], "o": {"x": [0.4], "y": [0]}, "i": {"x": [0.6], "y": [1]}},
					{"t": 60, "s": [150, 150]}
				]},
				"r": {"a": 0, "k": 0},
				"o": {"a": 0, "k": 100}
			},
			"shapes": [
				{
					"ty": "gr", "nm": "ellipse group",
					"it": [
						{"ty": "el", "p": {"a": 0, "k": [0, 0]}, "s": {"a": 0, "k": [20, 20]}},
						{"ty": "fl", "c": {"a": 0, "k": [1, 0, 0, 1]}, "o": {"a": 0, "k": 100}},
						{"ty": "tr", "a": {"a": 0, "k": [0, 0]}, "p": {"a": 0, "k": [0, 0]},
						 "s": {"a": 0, "k": [100, 100]}, "r": {"a": 0, "k": 0}, "o": {"a": 0, "k": 100}}
					]
				}
			]
		}
	]
}`

func TestParseMinimalDocument(t *testing.T) {
	var iss issues.Issues
	comp, err := Parse([]byte(minimalDoc), &iss)
	if err != nil {
		t.Fatalf("Parse: %s", err)
	}
	if iss.HasIssues() {
		t.Errorf("unexpected issues: %v", iss.All())
	}

	if comp.Name != "pulse" || comp.Width != 100 || comp.Height != 100 {
		t.Errorf("header mismatch: %q %gx%g", comp.Name, comp.Width, comp.Height)
	}
	if got, want := comp.Version.String(), "5.5.7"; got != want {
		t.Errorf("version = %s, want %s", got, want)
	}
	if !comp.IsSupportedVersion() {
		t.Error("5.5.7 should be a supported version")
	}
	if got, want := comp.Duration(), 2.0; got != want {
		t.Errorf("Duration = %g, want %g", got, want)
	}

	wantMarkers := []Marker{{Name: "start", Frame: 0, Duration: 30}}
	if diff := cmp.Diff(wantMarkers, comp.Markers); diff != "" {
		t.Errorf("markers mismatch (-want +got):\n%s", diff)
	}

	if len(comp.Layers) != 1 {
		t.Fatalf("expected 1 layer, got %d", len(comp.Layers))
	}
	layer := comp.Layers[0]
	if layer.Type != LayerTypeShape || layer.Name != "dot" {
		t.Errorf("layer mismatch: %s %q", layer.Type, layer.Name)
	}

	scale := layer.Transform.Scale
	if !scale.IsAnimated || len(scale.KeyFrames) != 2 {
		t.Fatalf("scale should be animated with 2 key frames, got %+v", scale)
	}
	if scale.KeyFrames[0].OutTangent == nil || scale.KeyFrames[0].OutTangent.X[0] != 0.4 {
		t.Errorf("out tangent lost: %+v", scale.KeyFrames[0].OutTangent)
	}

	if len(layer.Shapes) != 1 || layer.Shapes[0].Type != ShapeItemGroup {
		t.Fatalf("expected one group shape item")
	}
	items := layer.Shapes[0].Group.Items
	if len(items) != 3 {
		t.Fatalf("expected 3 group items, got %d", len(items))
	}
	if items[0].Ellipse == nil || items[1].Fill == nil || items[2].Transform == nil {
		t.Errorf("group items decoded wrong: %v %v %v", items[0].Type, items[1].Type, items[2].Type)
	}
	wantColor := []float64{1, 0, 0, 1}
	if diff := cmp.Diff(wantColor, items[1].Fill.Color.Value); diff != "" {
		t.Errorf("fill color mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFatalConditions(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		code string
	}{
		{"not json", `{`, issues.CodeParseFailure},
		{"missing width", `{"v": "5.5.7", "h": 10, "ip": 0, "layers": [{"ty": 3}]}`, issues.CodeMissingField},
		{"missing version", `{"w": 10, "h": 10, "ip": 0, "layers": [{"ty": 3}]}`, issues.CodeMissingField},
		{"no layers", `{"v": "5.5.7", "w": 10, "h": 10, "ip": 0, "op": 10, "layers": []}`, issues.CodeNoLayers},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var iss issues.Issues
			if _, err := Parse([]byte(tt.doc), &iss); err == nil {
				t.Fatal("expected a fatal parse error")
			}
			if !iss.HasIssues() {
				t.Fatal("expected an issue to be reported")
			}
			if got := iss.All()[0].Code; got != tt.code {
				t.Errorf("issue code = %s, want %s", got, tt.code)
			}
		})
	}
}

func TestParseUnsupportedVersionIsNotFatal(t *testing.T) {
	doc := `{"v": "3.0.0", "w": 10, "h": 10, "ip": 0, "op": 10, "fr": 30, "layers": [{"ty": 3, "ks": {}}]}`
	var iss issues.Issues
	comp, err := Parse([]byte(doc), &iss)
	if err != nil {
		t.Fatalf("old version must parse: %s", err)
	}
	if comp.IsSupportedVersion() {
		t.Error("3.0.0 should not be a supported version")
	}
	found := false
	for _, issue := range iss.All() {
		if issue.Code == issues.CodeUnsupportedVersion {
			found = true
		}
	}
	if !found {
		t.Errorf("expected %s, got %v", issues.CodeUnsupportedVersion, iss.All())
	}
}

func TestCompositionClone(t *testing.T) {
	var iss issues.Issues
	comp, err := Parse([]byte(minimalDoc), &iss)
	if err != nil {
		t.Fatalf("Parse: %s", err)
	}
	dup, err := comp.Clone()
	if err != nil {
		t.Fatalf("Clone: %s", err)
	}
	dup.Layers[0].Name = "changed"
	if comp.Layers[0].Name != "dot" {
		t.Error("clone shares layer storage with the original")
	}
}
