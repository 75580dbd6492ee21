// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

// Package optimizer rewrites a composition graph into a smaller,
// semantically equivalent form. It runs a fixed point over a suite of
// local rewrite rules: each rule is a GraphTransformer that inspects the
// graph, applies its rewrite wherever the preconditions hold, and
// reports whether it made progress. The driver loops until a full sweep
// makes no progress.
//
// Rewrites never fail: a rule whose preconditions do not hold for a node
// silently declines, and rules tolerate nodes that an earlier rewrite in
// the same pass already detached.
package optimizer

import (
	"log"

	"github.com/karimalambert/Lottie-Windows/internal/wincomp"
	"github.com/karimalambert/Lottie-Windows/internal/wincomp/graphindex"
)

// GraphState is the mutable state shared by the passes of one optimize
// run: the graph root and the current reverse index. The index is
// rebuilt between pass groups; the splice helpers keep its parent
// pointers current within a group.
type GraphState struct {
	Root  wincomp.Visual
	Index *graphindex.Index
}

// GraphTransformer is one rewrite rule. Transform applies the rule
// wherever it can and reports whether the graph changed.
type GraphTransformer interface {
	Name() string
	Transform(g *GraphState) bool
}

// shapeTransformers run before visual transformers within an iteration.
// The order is load-bearing: structural elisions open up the property
// push-downs that follow them.
var shapeTransformers = []GraphTransformer{
	&ElideTransparentSpriteShapes{},
	&CoalesceSiblingContainerShapes{},
	&ElideEmptyContainerShapes{},
	&ElideStructuralContainerShapes{},
	&PushContainerShapeTransformsDown{},
	&CoalesceSingleChildContainerShapes{},
	&PushPropertiesDownToSpriteShape{},
	&PushShapeVisibilityDown{},
	&PushShapeTreeVisibilityIntoVisualTree{},
}

var visualTransformers = []GraphTransformer{
	&PushPropertiesDownToShapeVisual{},
	&CoalesceContainerVisuals{},
	&CoalesceOrthogonalVisuals{},
	&CoalesceOrthogonalContainerVisuals{},
	&RemoveRedundantInsetClipVisuals{},
}

// Stats summarizes one optimize run.
type Stats struct {
	NodesBefore int
	NodesAfter  int
	Iterations  int
	// PassProgress counts, per pass name, the iterations in which the
	// pass changed the graph.
	PassProgress map[string]int
}

// Optimize rewrites the graph rooted at root in place and returns the
// optimized root with run statistics. The returned root differs from
// the argument only when the root itself was a structural wrapper that
// could be elided. The graph afterwards renders identically to the
// graph before: composed transforms, clips, opacity, and visibility
// observed at every leaf are preserved.
func Optimize(root wincomp.Visual) (wincomp.Visual, Stats) {
	stats := Stats{
		NodesBefore:  wincomp.CountNodes(root),
		PassProgress: make(map[string]int),
	}
	g := &GraphState{Root: root}

	// Each full sweep strictly shrinks or canonicalizes the graph, so
	// the fixed point arrives within a bounded number of iterations.
	// The cap is a backstop against a rule that oscillates.
	maxIterations := 2*stats.NodesBefore + 16

	for {
		progress := false
		mark := func(name string, changed bool) {
			if changed {
				progress = true
				stats.PassProgress[name]++
			}
		}

		g.Index = graphindex.Build(g.Root)
		mark("SimplifyProperties", simplifyProperties(g))
		for _, t := range shapeTransformers {
			mark(t.Name(), t.Transform(g))
		}

		g.Index = graphindex.Build(g.Root)
		for _, t := range visualTransformers {
			mark(t.Name(), t.Transform(g))
		}
		mark("CollapseRoot", g.collapseRoot())

		stats.Iterations++
		if !progress {
			break
		}
		if stats.Iterations >= maxIterations {
			log.Printf("[WARN] optimizer: no fixed point after %d iterations, stopping", stats.Iterations)
			break
		}
	}

	stats.NodesAfter = wincomp.CountNodes(g.Root)
	log.Printf("[DEBUG] optimizer: %d nodes -> %d nodes in %d iterations",
		stats.NodesBefore, stats.NodesAfter, stats.Iterations)
	return g.Root, stats
}

// collapseRoot unwraps structural containers at the root. The splice
// rules cannot remove the root because there is no parent list to
// splice into, so the driver hands the root role to a sole child when
// the wrapper sets nothing.
func (g *GraphState) collapseRoot() bool {
	progress := false
	for {
		container, ok := g.Root.(*wincomp.ContainerVisual)
		if !ok || len(container.Children) != 1 {
			break
		}
		if !visualPropertyMask(container).IsEmpty() || !container.Properties.IsEmpty() {
			break
		}
		if g.Index.IsReferenced(container) {
			break
		}
		child := container.Children[0]
		wincomp.PropagateDescriptions(container, child)
		container.Children = nil
		g.Root = child
		progress = true
	}
	return progress
}

// shapeNodes returns a snapshot of every shape in the graph, preorder.
// Passes iterate the snapshot and re-check preconditions per visit,
// because earlier visits may have changed the graph.
func (g *GraphState) shapeNodes() []wincomp.CompositionShape {
	var out []wincomp.CompositionShape
	wincomp.Walk(g.Root, func(o wincomp.Object) bool {
		if s, ok := o.(wincomp.CompositionShape); ok {
			out = append(out, s)
		}
		return true
	})
	return out
}

// containerShapes returns a snapshot of every container shape.
func (g *GraphState) containerShapes() []*wincomp.ContainerShape {
	var out []*wincomp.ContainerShape
	wincomp.Walk(g.Root, func(o wincomp.Object) bool {
		if c, ok := o.(*wincomp.ContainerShape); ok {
			out = append(out, c)
		}
		return true
	})
	return out
}

// visualNodes returns a snapshot of every visual in the graph, preorder.
func (g *GraphState) visualNodes() []wincomp.Visual {
	var out []wincomp.Visual
	wincomp.Walk(g.Root, func(o wincomp.Object) bool {
		if v, ok := o.(wincomp.Visual); ok {
			out = append(out, v)
		}
		return true
	})
	return out
}
