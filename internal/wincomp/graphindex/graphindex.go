// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

// Package graphindex builds a reverse index over a composition graph:
// from any node to its owning parent, and from any node to the nodes
// that reference it without owning it (expression-animation reference
// parameters and visual-surface sources).
//
// The index is a snapshot. It is rebuilt on demand after a batch of
// rewrites; the splice helpers in the optimizer update parent pointers
// incrementally for the nodes they touch so a run of splices can share
// one snapshot.
package graphindex

import (
	"github.com/karimalambert/Lottie-Windows/internal/wincomp"
)

// InRef records one non-owning edge: Referrer reads from the indexed
// node. Referrer is an *ExpressionAnimation or a *VisualSurface.
type InRef struct {
	Referrer wincomp.Object
}

// Index answers parent and in-reference queries for the graph it was
// built from. It holds only borrowed references and is discarded when
// the graph shape changes beyond what SetParent can track.
type Index struct {
	root    wincomp.Object
	parents map[wincomp.Object]wincomp.Object
	inRefs  map[wincomp.Object][]InRef
}

// Build walks the owned tree once and records every owning and
// non-owning edge.
func Build(root wincomp.Object) *Index {
	x := &Index{
		root:    root,
		parents: make(map[wincomp.Object]wincomp.Object),
		inRefs:  make(map[wincomp.Object][]InRef),
	}
	wincomp.Walk(root, func(o wincomp.Object) bool {
		for _, c := range wincomp.OwnedChildren(o) {
			x.parents[c] = o
		}
		switch n := o.(type) {
		case *wincomp.ExpressionAnimation:
			for _, ref := range n.References {
				if ref.Target != nil {
					x.inRefs[ref.Target] = append(x.inRefs[ref.Target], InRef{Referrer: n})
				}
			}
		case *wincomp.VisualSurface:
			if n.SourceVisual != nil {
				x.inRefs[n.SourceVisual] = append(x.inRefs[n.SourceVisual], InRef{Referrer: n})
			}
		}
		return true
	})
	return x
}

// Root returns the node the index was built from.
func (x *Index) Root() wincomp.Object { return x.root }

// Parent returns the owning parent of o, or nil for the root or for a
// node no longer reachable at build time.
func (x *Index) Parent(o wincomp.Object) wincomp.Object {
	return x.parents[o]
}

// SetParent records that child is now owned by parent. The splice
// helpers call this so later rewrites in the same pass see current
// ownership without a full rebuild.
func (x *Index) SetParent(child, parent wincomp.Object) {
	x.parents[child] = parent
}

// InRefs returns the non-owning references to o.
func (x *Index) InRefs(o wincomp.Object) []InRef {
	return x.inRefs[o]
}

// IsVisualSurfaceSource reports whether o is the source of some visual
// surface. The runtime ignores a surface source's own transform
// properties, so the optimizer must never hoist properties onto or off
// such a node.
func (x *Index) IsVisualSurfaceSource(o wincomp.Object) bool {
	for _, ref := range x.inRefs[o] {
		if ref.Referrer.Kind() == wincomp.KindVisualSurface {
			return true
		}
	}
	return false
}

// IsReferenced reports whether o has any non-owning in-reference.
func (x *Index) IsReferenced(o wincomp.Object) bool {
	return len(x.inRefs[o]) > 0
}
