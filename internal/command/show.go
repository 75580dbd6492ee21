// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package command

import (
	"flag"
	"strings"

	"github.com/karimalambert/Lottie-Windows/internal/command/views"
	"github.com/karimalambert/Lottie-Windows/internal/serializer"
)

// ShowCommand dumps the composition graph of a Lottie document for
// inspection.
type ShowCommand struct {
	Meta *Meta
}

func (c *ShowCommand) Help() string {
	return strings.TrimSpace(`
Usage: lottiegen show [options] FILE

  Parses and optimizes the given document, then prints the resulting
  composition graph.

Options:

  -format=tree|yaml|xml   Output format. Defaults to tree.
  -no-optimization        Show the graph as translated, before any
                          optimization.
`)
}

func (c *ShowCommand) Synopsis() string {
	return "Print the composition graph of a Lottie document"
}

func (c *ShowCommand) Run(args []string) int {
	view := views.NewOptimize(c.Meta.View)

	flags := flag.NewFlagSet("show", flag.ContinueOnError)
	flags.SetOutput(c.Meta.Streams.Stderr.File)
	format := flags.String("format", "tree", "output format: tree, yaml, or xml")
	noOptimization := flags.Bool("no-optimization", false, "show the unoptimized graph")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() != 1 {
		c.Meta.Streams.Eprintln("The show command expects exactly one FILE argument.")
		return 1
	}

	graph, _, _, iss, err := c.Meta.loadGraph(flags.Arg(0), *noOptimization)
	if err != nil {
		view.Error(err)
		view.Issues(iss)
		return 1
	}

	switch *format {
	case "tree":
		c.Meta.Streams.Print(serializer.DumpTree(graph))
	case "yaml":
		out, err := serializer.MarshalYAML(graph)
		if err != nil {
			view.Error(err)
			return 1
		}
		c.Meta.Streams.Print(string(out))
	case "xml":
		out, err := serializer.MarshalXML(graph)
		if err != nil {
			view.Error(err)
			return 1
		}
		c.Meta.Streams.Println(string(out))
	default:
		c.Meta.Streams.Eprintf("Unknown format %q: expected tree, yaml, or xml.\n", *format)
		return 1
	}

	view.Issues(iss)
	return 0
}
