// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package command

import (
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/karimalambert/Lottie-Windows/internal/codegen"
	"github.com/karimalambert/Lottie-Windows/internal/command/views"
	"github.com/karimalambert/Lottie-Windows/internal/irbuilder"
)

// GenerateCommand translates, optimizes, and emits factory source for a
// Lottie document.
type GenerateCommand struct {
	Meta *Meta
}

func (c *GenerateCommand) Help() string {
	return strings.TrimSpace(`
Usage: lottiegen generate [options] FILE

  Parses the given BodyMovin JSON document, lowers it to a composition
  graph, optimizes the graph, and writes factory source code.

Options:

  -config=path        Read codegen settings from an HCL file.
  -class-name=name    Name of the generated factory function.
                      Defaults to a name derived from the input file.
  -namespace=name     Package name for the generated source.
  -out=path           Output file. Defaults to <input>_gen.go.
  -no-optimization    Emit the unoptimized graph.
`)
}

func (c *GenerateCommand) Synopsis() string {
	return "Generate factory source from a Lottie document"
}

func (c *GenerateCommand) Run(args []string) int {
	view := views.NewOptimize(c.Meta.View)

	flags := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags.SetOutput(c.Meta.Streams.Stderr.File)
	configPath := flags.String("config", "", "HCL configuration file")
	className := flags.String("class-name", "", "factory function name")
	namespace := flags.String("namespace", "", "generated package name")
	outPath := flags.String("out", "", "output path")
	noOptimization := flags.Bool("no-optimization", false, "emit the unoptimized graph")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() != 1 {
		c.Meta.Streams.Eprintln("The generate command expects exactly one FILE argument.")
		return 1
	}
	input := flags.Arg(0)

	var cfg *codegen.Configuration
	if *configPath != "" {
		loaded, err := codegen.LoadConfiguration(c.Meta.FS, *configPath)
		if err != nil {
			view.Error(err)
			return 1
		}
		cfg = loaded
	} else {
		cfg = &codegen.Configuration{}
	}
	if *className != "" {
		cfg.ClassName = *className
	}
	if cfg.ClassName == "" {
		cfg.ClassName = classNameFromPath(input)
	}
	if *namespace != "" {
		cfg.Namespace = *namespace
	}
	if *noOptimization {
		cfg.DisableOptimization = true
	}

	graph, comp, stats, iss, err := c.Meta.loadGraph(input, cfg.DisableOptimization)
	if err != nil {
		view.Error(err)
		view.Issues(iss)
		return 1
	}

	cfg.SourceFile = filepath.Base(input)
	if comp.Version != nil {
		cfg.SourceVersion = comp.Version.String()
	}
	if cfg.Width == 0 {
		cfg.Width = comp.Width
	}
	if cfg.Height == 0 {
		cfg.Height = comp.Height
	}
	if cfg.DurationSeconds == 0 {
		cfg.DurationSeconds = comp.Duration()
	}
	cfg.ProgressRanges = irbuilder.MarkerRanges(comp)

	src, err := codegen.GenerateSource(cfg, graph)
	if err != nil {
		view.Error(err)
		return 1
	}

	out := *outPath
	if out == "" {
		out = strings.TrimSuffix(input, filepath.Ext(input)) + "_gen.go"
	}
	if err := afero.WriteFile(c.Meta.FS, out, src, 0o644); err != nil {
		view.Error(fmt.Errorf("writing %s: %w", out, err))
		return 1
	}

	if !cfg.DisableOptimization {
		view.Stats(stats)
	}
	view.Issues(iss)
	c.Meta.Streams.Printf("Wrote %s\n", out)
	return 0
}

// classNameFromPath derives an exported identifier from the input file
// name: "cool animation-7.json" becomes "CoolAnimation7".
func classNameFromPath(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var sb strings.Builder
	upper := true
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z':
			if upper {
				sb.WriteRune(r - 'a' + 'A')
			} else {
				sb.WriteRune(r)
			}
			upper = false
		case r >= 'A' && r <= 'Z':
			sb.WriteRune(r)
			upper = false
		case r >= '0' && r <= '9':
			if sb.Len() == 0 {
				sb.WriteString("Anim")
			}
			sb.WriteRune(r)
			upper = true
		default:
			upper = true
		}
	}
	if sb.Len() == 0 {
		return "Animation"
	}
	return sb.String()
}
