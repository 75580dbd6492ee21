// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package wincomp

import "github.com/karimalambert/Lottie-Windows/internal/geometry"

// Path is immutable path data: a start point followed by cubic Bezier
// segments. It is a value carried by path geometries and path key
// frames, not a graph node.
type Path struct {
	Start  geometry.Vector2
	Cubics []CubicSegment
	Closed bool
}

// CubicSegment is one cubic Bezier segment of a path.
type CubicSegment struct {
	ControlPoint1 geometry.Vector2
	ControlPoint2 geometry.Vector2
	EndPoint      geometry.Vector2
}

// Equal reports structural equality of two paths.
func (p *Path) Equal(o *Path) bool {
	if p == nil || o == nil {
		return p == o
	}
	if p.Closed != o.Closed || !p.Start.Equal(o.Start) || len(p.Cubics) != len(o.Cubics) {
		return false
	}
	for i := range p.Cubics {
		a, b := p.Cubics[i], o.Cubics[i]
		if !a.ControlPoint1.Equal(b.ControlPoint1) || !a.ControlPoint2.Equal(b.ControlPoint2) || !a.EndPoint.Equal(b.EndPoint) {
			return false
		}
	}
	return true
}
