// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package command

import (
	"strings"

	"github.com/karimalambert/Lottie-Windows/internal/lottie"
)

// VersionCommand prints the tool version and the supported BodyMovin
// range.
type VersionCommand struct {
	Meta *Meta
}

func (c *VersionCommand) Help() string {
	return strings.TrimSpace(`
Usage: lottiegen version

  Prints the lottiegen version.
`)
}

func (c *VersionCommand) Synopsis() string {
	return "Print the lottiegen version"
}

func (c *VersionCommand) Run(args []string) int {
	c.Meta.Streams.Printf("lottiegen %s\n", c.Meta.Version)
	c.Meta.Streams.Printf("supported BodyMovin versions: %s\n", lottie.SupportedVersions)
	return 0
}
