// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package didyoumean

import "testing"

func TestNameSuggestion(t *testing.T) {
	candidates := []string{"Scale", "Offset", "Opacity", "TransformMatrix"}
	tests := []struct {
		given, want string
	}{
		{"Scale", "Scale"},
		{"scale", "Scale"},
		{"Offst", "Offset"},
		{"Opcity", "Opacity"},
		{"Wobble", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NameSuggestion(tt.given, candidates); got != tt.want {
			t.Errorf("NameSuggestion(%q) = %q, want %q", tt.given, got, tt.want)
		}
	}
}
