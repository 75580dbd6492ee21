// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package wincomp

// CompositionBrush is implemented by the brush variants.
type CompositionBrush interface {
	Object
	brush()
}

// ColorBrush paints with a single color.
type ColorBrush struct {
	ObjectBase
	Color *Color
}

func (*ColorBrush) Kind() Kind { return KindColorBrush }
func (*ColorBrush) brush()     {}

// IsTransparentBrush reports whether b contributes no visible pixels: it
// is absent, or it is a color brush with a non-animated fully transparent
// color. An animated color brush is never transparent because its alpha
// may change over time.
func IsTransparentBrush(b CompositionBrush) bool {
	if b == nil {
		return true
	}
	cb, ok := b.(*ColorBrush)
	if !ok {
		return false
	}
	if len(cb.Animators) > 0 {
		return false
	}
	return cb.Color == nil || cb.Color.IsTransparent()
}

// EffectBrush paints with the output of an effect over source brushes.
type EffectBrush struct {
	ObjectBase
	Sources map[string]CompositionBrush
}

func (*EffectBrush) Kind() Kind { return KindEffectBrush }
func (*EffectBrush) brush()     {}

// SurfaceBrush paints with the contents of a visual surface.
type SurfaceBrush struct {
	ObjectBase
	Surface *VisualSurface
}

func (*SurfaceBrush) Kind() Kind { return KindSurfaceBrush }
func (*SurfaceBrush) brush()     {}
