// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package wincomp

import (
	"fmt"
	"sort"
)

// VisualChildrenPtr returns a pointer to the child-visual list of a
// visual variant, for in-place editing. Asking a non-visual for visual
// children is a programmer error.
func VisualChildrenPtr(o Object) *[]Visual {
	switch v := o.(type) {
	case *ContainerVisual:
		return &v.Children
	case *ShapeVisual:
		return &v.Children
	case *SpriteVisual:
		return &v.Children
	default:
		panic(fmt.Sprintf("wincomp: VisualChildrenPtr called on %s", o.Kind()))
	}
}

// ShapeListPtr returns a pointer to the child-shape list of a node that
// owns one: a container shape or a shape visual. Asking any other
// variant is a programmer error.
func ShapeListPtr(o Object) *[]CompositionShape {
	switch v := o.(type) {
	case *ContainerShape:
		return &v.Shapes
	case *ShapeVisual:
		return &v.Shapes
	default:
		panic(fmt.Sprintf("wincomp: ShapeListPtr called on %s", o.Kind()))
	}
}

// OwnedChildren returns o's owned child nodes in deterministic order.
// Non-owning edges (expression-animation references, the source visual
// of a VisualSurface) are not included; they belong to the graph index's
// in-reference overlay instead.
func OwnedChildren(o Object) []Object {
	var out []Object
	add := func(c Object) {
		if c != nil {
			out = append(out, c)
		}
	}

	switch n := o.(type) {
	case *ContainerVisual:
		for _, c := range n.Children {
			add(c)
		}
	case *ShapeVisual:
		for _, c := range n.Children {
			add(c)
		}
		for _, s := range n.Shapes {
			add(s)
		}
		if n.ViewBox != nil {
			add(n.ViewBox)
		}
	case *SpriteVisual:
		for _, c := range n.Children {
			add(c)
		}
		if n.Brush != nil {
			add(n.Brush)
		}
	case *ContainerShape:
		for _, s := range n.Shapes {
			add(s)
		}
	case *SpriteShape:
		if n.Geometry != nil {
			add(n.Geometry)
		}
		if n.FillBrush != nil {
			add(n.FillBrush)
		}
		if n.StrokeBrush != nil {
			add(n.StrokeBrush)
		}
	case *EffectBrush:
		names := make([]string, 0, len(n.Sources))
		for name := range n.Sources {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			add(n.Sources[name])
		}
	case *SurfaceBrush:
		if n.Surface != nil {
			add(n.Surface)
		}
	case *GeometricClip:
		if n.Geometry != nil {
			add(n.Geometry)
		}
	case *ScalarKeyFrameAnimation:
		addEasings(&out, n.KeyFrames)
	case *Vector2KeyFrameAnimation:
		addEasings(&out, n.KeyFrames)
	case *Vector3KeyFrameAnimation:
		addEasings(&out, n.KeyFrames)
	case *Vector4KeyFrameAnimation:
		addEasings(&out, n.KeyFrames)
	case *ColorKeyFrameAnimation:
		addEasings(&out, n.KeyFrames)
	case *PathKeyFrameAnimation:
		addEasings(&out, n.KeyFrames)
	}

	// Clips hang off the visual that owns them.
	if vb, ok := o.(Visual); ok {
		if clip := vb.VisualState().Clip; clip != nil {
			add(clip)
		}
	}

	// Animations and controllers are owned by the node whose animator
	// binds them.
	for _, a := range o.Base().Animators {
		if a.Animation != nil {
			add(a.Animation)
		}
		if a.Controller != nil {
			add(a.Controller)
		}
	}

	return out
}

func addEasings[V any](out *[]Object, frames []KeyFrame[V]) {
	for _, kf := range frames {
		if kf.Easing != nil {
			*out = append(*out, kf.Easing)
		}
	}
}

// Walk visits root and every owned descendant in depth-first preorder.
// Returning false from visit stops the walk.
func Walk(root Object, visit func(Object) bool) {
	var walk func(Object) bool
	walk = func(o Object) bool {
		if !visit(o) {
			return false
		}
		for _, c := range OwnedChildren(o) {
			if !walk(c) {
				return false
			}
		}
		return true
	}
	walk(root)
}

// CountNodes returns the number of nodes in the owned tree rooted at
// root. The optimizer's monotonicity invariant is stated over this
// count.
func CountNodes(root Object) int {
	n := 0
	Walk(root, func(Object) bool {
		n++
		return true
	})
	return n
}

// CountByKind tallies the owned tree per node kind.
func CountByKind(root Object) map[Kind]int {
	counts := make(map[Kind]int)
	Walk(root, func(o Object) bool {
		counts[o.Kind()]++
		return true
	})
	return counts
}
