// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package optimizer

import (
	"github.com/karimalambert/Lottie-Windows/internal/wincomp"
)

// ElideTransparentSpriteShapes removes sprite shapes that can never
// produce a visible pixel: both brushes are absent or are non-animated
// fully transparent color brushes.
type ElideTransparentSpriteShapes struct{}

func (*ElideTransparentSpriteShapes) Name() string { return "ElideTransparentSpriteShapes" }

func (*ElideTransparentSpriteShapes) Transform(g *GraphState) bool {
	progress := false
	for _, s := range g.shapeNodes() {
		sprite, ok := s.(*wincomp.SpriteShape)
		if !ok {
			continue
		}
		if !wincomp.IsTransparentBrush(sprite.FillBrush) || !wincomp.IsTransparentBrush(sprite.StrokeBrush) {
			continue
		}
		parent := g.Index.Parent(sprite)
		if parent == nil {
			continue
		}
		if g.removeShapeChild(parent, sprite) {
			progress = true
		}
	}
	return progress
}
