// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package optimizer

import (
	"github.com/karimalambert/Lottie-Windows/internal/wincomp"
)

// RemoveRedundantInsetClipVisuals replaces a container that exists only
// to clip to its own bounds with its sole ShapeVisual child of the same
// size. A shape visual clips to its size anyway, so the zero-inset clip
// adds nothing.
type RemoveRedundantInsetClipVisuals struct{}

func (*RemoveRedundantInsetClipVisuals) Name() string { return "RemoveRedundantInsetClipVisuals" }

func (*RemoveRedundantInsetClipVisuals) Transform(g *GraphState) bool {
	progress := false
	for _, v := range g.visualNodes() {
		container, ok := v.(*wincomp.ContainerVisual)
		if !ok || len(container.Children) != 1 {
			continue
		}
		child, ok := container.Children[0].(*wincomp.ShapeVisual)
		if !ok {
			continue
		}
		if len(container.Animators) > 0 {
			continue
		}
		if visualPropertyMask(container) != maskOf(PropertyClip, PropertySize) {
			continue
		}
		clip, ok := container.Clip.(*wincomp.InsetClip)
		if !ok || !clip.IsZeroInset() {
			continue
		}
		if child.Size == nil || !container.Size.Equal(*child.Size) || child.IsPropertyAnimated("Size") {
			continue
		}
		if !container.Properties.IsEmpty() || g.Index.IsReferenced(container) {
			continue
		}
		parent := g.Index.Parent(container)
		if parent == nil || !parent.Kind().IsVisual() {
			continue
		}
		if !g.replaceVisualChild(parent, container, child) {
			continue
		}
		wincomp.PropagateDescriptions(container, child)
		container.Children = nil
		progress = true
	}
	return progress
}
