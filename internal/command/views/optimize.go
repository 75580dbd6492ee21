// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package views

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mitchellh/go-wordwrap"

	"github.com/karimalambert/Lottie-Windows/internal/issues"
	"github.com/karimalambert/Lottie-Windows/internal/optimizer"
)

// Optimize renders the outcome of a translate-and-optimize run.
type Optimize interface {
	Stats(stats optimizer.Stats)
	Issues(iss *issues.Issues)
	Error(err error)
}

// NewOptimize returns the human renderer for optimize results.
func NewOptimize(view *View) Optimize {
	return &optimizeHuman{view: view}
}

type optimizeHuman struct {
	view *View
}

func (v *optimizeHuman) Stats(stats optimizer.Stats) {
	saved := 0.0
	if stats.NodesBefore > 0 {
		saved = 100 * float64(stats.NodesBefore-stats.NodesAfter) / float64(stats.NodesBefore)
	}
	v.view.streams.Println(v.view.colorize.Color(fmt.Sprintf(
		"[bold]Optimized[reset] %d nodes -> %d nodes (%.1f%% smaller) in %d iterations",
		stats.NodesBefore, stats.NodesAfter, saved, stats.Iterations)))

	if len(stats.PassProgress) == 0 {
		return
	}
	names := make([]string, 0, len(stats.PassProgress))
	for name := range stats.PassProgress {
		names = append(names, name)
	}
	sort.Strings(names)
	width := 0
	for _, name := range names {
		if len(name) > width {
			width = len(name)
		}
	}
	for _, name := range names {
		v.view.streams.Printf("  %-*s %d\n", width+2, name, stats.PassProgress[name])
	}
}

func (v *optimizeHuman) Issues(iss *issues.Issues) {
	if !iss.HasIssues() {
		return
	}
	v.view.streams.Eprintln(v.view.colorize.Color("[yellow]Translation issues:[reset]"))
	for _, issue := range iss.ByCode() {
		wrapped := wordwrap.WrapString(issue.Description, 76)
		lines := strings.Split(wrapped, "\n")
		v.view.streams.Eprintf("  [%s] %s\n", issue.Code, lines[0])
		for _, line := range lines[1:] {
			v.view.streams.Eprintf("           %s\n", line)
		}
	}
}

func (v *optimizeHuman) Error(err error) {
	v.view.streams.Eprintln(v.view.colorize.Color(fmt.Sprintf("[red]Error:[reset] %s", err)))
}
