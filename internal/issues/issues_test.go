// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package issues

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReportAndQuery(t *testing.T) {
	var iss Issues
	if iss.HasIssues() {
		t.Fatal("zero value must be empty")
	}
	iss.Report(CodeUnsupportedEffect, "layer %q has effects", "glow")
	iss.Report(CodeUnsupportedEffect, "layer %q has effects", "glow") // duplicate
	iss.Report(CodeNoLayers, "document has no layers")

	if !iss.HasIssues() {
		t.Fatal("issues not recorded")
	}
	want := []Issue{
		{Code: CodeUnsupportedEffect, Description: `layer "glow" has effects`},
		{Code: CodeNoLayers, Description: "document has no layers"},
	}
	if diff := cmp.Diff(want, iss.All()); diff != "" {
		t.Errorf("All mismatch (-want +got):\n%s", diff)
	}

	byCode := iss.ByCode()
	if byCode[0].Code != CodeNoLayers {
		t.Errorf("ByCode not sorted: %v", byCode)
	}
}

func TestErrAggregates(t *testing.T) {
	var iss Issues
	if iss.Err() != nil {
		t.Fatal("empty collector must produce nil error")
	}
	iss.Report(CodeMissingField, "required field %q is missing", "w")
	iss.Report(CodeInvalidVersion, "version does not parse")
	err := iss.Err()
	if err == nil {
		t.Fatal("expected an aggregated error")
	}
	for _, want := range []string{CodeMissingField, CodeInvalidVersion} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("aggregated error missing %s: %s", want, err)
		}
	}
}
