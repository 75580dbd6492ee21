// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package wincomp

import (
	"fmt"
	"sort"

	"github.com/karimalambert/Lottie-Windows/internal/geometry"
)

// Color is a non-premultiplied ARGB color with channels in [0,1].
type Color struct {
	A, R, G, B float64
}

// IsTransparent reports whether the alpha channel is zero.
func (c Color) IsTransparent() bool {
	return geometry.NearEqual(c.A, 0)
}

func (c Color) Equal(o Color) bool {
	return geometry.NearEqual(c.A, o.A) && geometry.NearEqual(c.R, o.R) &&
		geometry.NearEqual(c.G, o.G) && geometry.NearEqual(c.B, o.B)
}

// PropertyValueType tags the payload of a PropertyValue.
type PropertyValueType int

const (
	PropertyValueScalar PropertyValueType = iota
	PropertyValueVector2
	PropertyValueVector3
	PropertyValueVector4
	PropertyValueColor
)

// PropertyValue is one typed entry in a PropertySet.
type PropertyValue struct {
	Type    PropertyValueType
	Scalar  float64
	Vector2 geometry.Vector2
	Vector3 geometry.Vector3
	Vector4 geometry.Vector4
	Color   Color
}

// PropertySet maps property names to typed values. Expression animations
// reference these entries by name. The zero value is an empty set.
type PropertySet struct {
	values map[string]PropertyValue
}

// IsEmpty reports whether the set has no entries.
func (s *PropertySet) IsEmpty() bool {
	return len(s.values) == 0
}

// Names returns the entry names in sorted order.
func (s *PropertySet) Names() []string {
	names := make([]string, 0, len(s.values))
	for name := range s.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the named entry.
func (s *PropertySet) Get(name string) (PropertyValue, bool) {
	v, ok := s.values[name]
	return v, ok
}

func (s *PropertySet) set(name string, v PropertyValue) {
	if s.values == nil {
		s.values = make(map[string]PropertyValue)
	}
	s.values[name] = v
}

// InsertScalar adds or replaces a scalar entry.
func (s *PropertySet) InsertScalar(name string, value float64) {
	s.set(name, PropertyValue{Type: PropertyValueScalar, Scalar: value})
}

// InsertVector2 adds or replaces a Vector2 entry.
func (s *PropertySet) InsertVector2(name string, value geometry.Vector2) {
	s.set(name, PropertyValue{Type: PropertyValueVector2, Vector2: value})
}

// InsertVector3 adds or replaces a Vector3 entry.
func (s *PropertySet) InsertVector3(name string, value geometry.Vector3) {
	s.set(name, PropertyValue{Type: PropertyValueVector3, Vector3: value})
}

// InsertVector4 adds or replaces a Vector4 entry.
func (s *PropertySet) InsertVector4(name string, value geometry.Vector4) {
	s.set(name, PropertyValue{Type: PropertyValueVector4, Vector4: value})
}

// InsertColor adds or replaces a color entry.
func (s *PropertySet) InsertColor(name string, value Color) {
	s.set(name, PropertyValue{Type: PropertyValueColor, Color: value})
}

func (v PropertyValue) String() string {
	switch v.Type {
	case PropertyValueScalar:
		return fmt.Sprintf("%g", v.Scalar)
	case PropertyValueVector2:
		return fmt.Sprintf("(%g,%g)", v.Vector2.X, v.Vector2.Y)
	case PropertyValueVector3:
		return fmt.Sprintf("(%g,%g,%g)", v.Vector3.X, v.Vector3.Y, v.Vector3.Z)
	case PropertyValueVector4:
		return fmt.Sprintf("(%g,%g,%g,%g)", v.Vector4.X, v.Vector4.Y, v.Vector4.Z, v.Vector4.W)
	case PropertyValueColor:
		return fmt.Sprintf("argb(%g,%g,%g,%g)", v.Color.A, v.Color.R, v.Color.G, v.Color.B)
	default:
		panic(fmt.Sprintf("wincomp: PropertyValue.String: unexpected type %d", v.Type))
	}
}
