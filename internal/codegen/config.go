// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

// Package codegen emits an optimized composition graph as standalone
// factory source code.
package codegen

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"

	"github.com/karimalambert/Lottie-Windows/internal/irbuilder"
)

// Configuration carries everything the generator needs besides the
// graph itself. It can be populated from flags or decoded from an HCL
// file.
type Configuration struct {
	ClassName           string  `hcl:"class_name"`
	Namespace           string  `hcl:"namespace,optional"`
	Width               float64 `hcl:"width,optional"`
	Height              float64 `hcl:"height,optional"`
	DurationSeconds     float64 `hcl:"duration_seconds,optional"`
	DisableOptimization bool    `hcl:"disable_optimization,optional"`

	// Source metadata, propagated into the generated header.
	SourceFile    string `hcl:"source_file,optional"`
	SourceVersion string `hcl:"source_version,optional"`

	// Markers lowered to progress ranges, carried into the generated
	// metadata table. Populated by the caller, not from configuration
	// files (fields without hcl tags are invisible to the decoder).
	ProgressRanges []irbuilder.ProgressRange
}

// Validate checks the configuration for the conditions the generator
// cannot work without.
func (c *Configuration) Validate() error {
	if c.ClassName == "" {
		return fmt.Errorf("codegen configuration: class_name is required")
	}
	if !validIdentifier(c.ClassName) {
		return fmt.Errorf("codegen configuration: class_name %q is not a valid identifier", c.ClassName)
	}
	return nil
}

// LoadConfiguration decodes a configuration from an HCL file.
func LoadConfiguration(fs afero.Fs, path string) (*Configuration, error) {
	src, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading codegen configuration: %w", err)
	}
	var cfg Configuration
	if err := hclsimple.Decode(path, src, nil, &cfg); err != nil {
		return nil, fmt.Errorf("decoding codegen configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		letter := r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		digit := r >= '0' && r <= '9'
		if !letter && (i == 0 || !digit) {
			return false
		}
	}
	return true
}
