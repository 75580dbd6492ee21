// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package command

import (
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/karimalambert/Lottie-Windows/internal/command/views"
	"github.com/karimalambert/Lottie-Windows/internal/terminal"
)

const testDoc = `{
	"v": "5.5.7", "nm": "spin", "w": 100, "h": 100,
	"ip": 0, "op": 60, "fr": 30,
	"layers": [
		{
			"ty": 4, "nm": "wheel", "ind": 1, "ip": 0, "op": 60, "st": 0,
			"ks": {"p": {"a": 0, "k": [50, 50]}},
			"shapes": [
				{"ty": "gr", "it": [
					{"ty": "el", "p": {"a": 0, "k": [0, 0]}, "s": {"a": 0, "k": [30, 30]}},
					{"ty": "fl", "c": {"a": 0, "k": [0, 1, 0, 1]}, "o": {"a": 0, "k": 100}}
				]}
			]
		}
	]
}`

func testMeta(t *testing.T) (*Meta, func() (string, string)) {
	t.Helper()
	streams, collect, err := terminal.StreamsForTesting()
	if err != nil {
		t.Fatalf("StreamsForTesting: %s", err)
	}
	fs := afero.NewMemMapFs()
	return &Meta{
		Streams: streams,
		View:    views.NewView(streams),
		FS:      fs,
		Version: "test",
	}, collect
}

func TestGenerateCommand(t *testing.T) {
	meta, collect := testMeta(t)
	if err := afero.WriteFile(meta.FS, "spin.json", []byte(testDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := &GenerateCommand{Meta: meta}
	status := cmd.Run([]string{"spin.json"})
	stdout, stderr := collect()
	if status != 0 {
		t.Fatalf("generate returned %d\nstdout: %s\nstderr: %s", status, stdout, stderr)
	}

	out, err := afero.ReadFile(meta.FS, "spin_gen.go")
	if err != nil {
		t.Fatalf("output file: %s", err)
	}
	text := string(out)
	for _, want := range []string{
		"// Code generated by lottiegen. DO NOT EDIT.",
		"func Spin() wincomp.Visual {",
		"SpinWidth = 100",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("generated source missing %q", want)
		}
	}
	if !strings.Contains(stdout, "Wrote spin_gen.go") {
		t.Errorf("stdout missing confirmation: %s", stdout)
	}
	if !strings.Contains(stdout, "Optimized") {
		t.Errorf("stdout missing optimization stats: %s", stdout)
	}
}

func TestGenerateCommandMissingFile(t *testing.T) {
	meta, collect := testMeta(t)
	cmd := &GenerateCommand{Meta: meta}
	status := cmd.Run([]string{"nope.json"})
	_, stderr := collect()
	if status == 0 {
		t.Fatal("missing input must fail")
	}
	if !strings.Contains(stderr, "nope.json") {
		t.Errorf("stderr does not name the missing file: %s", stderr)
	}
}

func TestShowCommandTree(t *testing.T) {
	meta, collect := testMeta(t)
	if err := afero.WriteFile(meta.FS, "spin.json", []byte(testDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	cmd := &ShowCommand{Meta: meta}
	status := cmd.Run([]string{"-format=tree", "spin.json"})
	stdout, stderr := collect()
	if status != 0 {
		t.Fatalf("show returned %d\nstderr: %s", status, stderr)
	}
	for _, want := range []string{"SpriteShape", "EllipseGeometry"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("tree output missing %q:\n%s", want, stdout)
		}
	}
}

func TestShowCommandUnknownFormat(t *testing.T) {
	meta, collect := testMeta(t)
	if err := afero.WriteFile(meta.FS, "spin.json", []byte(testDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	cmd := &ShowCommand{Meta: meta}
	status := cmd.Run([]string{"-format=dot", "spin.json"})
	_, stderr := collect()
	if status == 0 {
		t.Fatal("unknown format must fail")
	}
	if !strings.Contains(stderr, "dot") {
		t.Errorf("stderr does not name the bad format: %s", stderr)
	}
}

func TestClassNameFromPath(t *testing.T) {
	tests := []struct{ in, want string }{
		{"spin.json", "Spin"},
		{"cool animation-7.json", "CoolAnimation7"},
		{"7up.json", "Anim7Up"},
		{"___.json", "Animation"},
	}
	for _, tt := range tests {
		if got := classNameFromPath(tt.in); got != tt.want {
			t.Errorf("classNameFromPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	meta, collect := testMeta(t)
	cmd := &VersionCommand{Meta: meta}
	if status := cmd.Run(nil); status != 0 {
		t.Fatalf("version returned %d", status)
	}
	stdout, _ := collect()
	if !strings.Contains(stdout, "lottiegen test") {
		t.Errorf("version output: %s", stdout)
	}
}
