// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

// Package command implements the lottiegen CLI commands.
package command

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/karimalambert/Lottie-Windows/internal/command/views"
	"github.com/karimalambert/Lottie-Windows/internal/irbuilder"
	"github.com/karimalambert/Lottie-Windows/internal/issues"
	"github.com/karimalambert/Lottie-Windows/internal/lottie"
	"github.com/karimalambert/Lottie-Windows/internal/optimizer"
	"github.com/karimalambert/Lottie-Windows/internal/terminal"
	"github.com/karimalambert/Lottie-Windows/internal/wincomp"
)

// Meta holds the state shared across commands.
type Meta struct {
	Streams *terminal.Streams
	View    *views.View
	FS      afero.Fs
	Version string
}

// loadGraph runs the front half of the pipeline: read, parse,
// translate, and (unless disabled) optimize.
func (m *Meta) loadGraph(path string, disableOptimization bool) (wincomp.Visual, *lottie.LottieComposition, optimizer.Stats, *issues.Issues, error) {
	var iss issues.Issues
	data, err := afero.ReadFile(m.FS, path)
	if err != nil {
		return nil, nil, optimizer.Stats{}, &iss, fmt.Errorf("reading %s: %w", path, err)
	}
	comp, err := lottie.Parse(data, &iss)
	if err != nil {
		return nil, nil, optimizer.Stats{}, &iss, err
	}
	root, err := irbuilder.Translate(comp, &iss)
	if err != nil {
		return nil, nil, optimizer.Stats{}, &iss, err
	}
	var stats optimizer.Stats
	var graph wincomp.Visual = root
	if !disableOptimization {
		graph, stats = optimizer.Optimize(root)
	}
	return graph, comp, stats, &iss, nil
}
