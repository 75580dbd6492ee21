// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

// Package views renders command results for humans. Commands decide
// what happened; views decide how it reads.
package views

import (
	"github.com/mitchellh/colorstring"

	"github.com/karimalambert/Lottie-Windows/internal/terminal"
)

// View carries the rendering state shared by all views.
type View struct {
	streams  *terminal.Streams
	colorize *colorstring.Colorize
}

// NewView constructs a View for the given streams, coloring output only
// when stdout is a terminal.
func NewView(streams *terminal.Streams) *View {
	return &View{
		streams: streams,
		colorize: &colorstring.Colorize{
			Colors:  colorstring.DefaultColors,
			Disable: !streams.Stdout.IsTerminal(),
			Reset:   true,
		},
	}
}
