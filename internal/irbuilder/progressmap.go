// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package irbuilder

import (
	"sort"

	"github.com/karimalambert/Lottie-Windows/internal/lottie"
)

// ProgressRange is a half-open span of the progress timeline with a
// name attached, typically derived from a document marker.
type ProgressRange struct {
	Name  string
	Start float64
	End   float64
}

// ProgressMapFactory accumulates named progress ranges, keeping them
// ordered by start progress. Ranges are stored in a sorted slice; an
// insert that would duplicate an existing (name, start) pair is
// rejected so repeated markers collapse to one range.
type ProgressMapFactory struct {
	ranges []ProgressRange
}

// TryAddRange inserts a range, keeping the collection sorted by start
// progress (then by name). Reports whether the range was added.
func (f *ProgressMapFactory) TryAddRange(name string, start, end float64) bool {
	if end < start {
		start, end = end, start
	}
	i := sort.Search(len(f.ranges), func(i int) bool {
		r := f.ranges[i]
		if r.Start != start {
			return r.Start > start
		}
		return r.Name >= name
	})
	if i < len(f.ranges) && f.ranges[i].Start == start && f.ranges[i].Name == name {
		return false
	}
	f.ranges = append(f.ranges, ProgressRange{})
	copy(f.ranges[i+1:], f.ranges[i:])
	f.ranges[i] = ProgressRange{Name: name, Start: start, End: end}
	return true
}

// Ranges returns the accumulated ranges in start order.
func (f *ProgressMapFactory) Ranges() []ProgressRange {
	out := make([]ProgressRange, len(f.ranges))
	copy(out, f.ranges)
	return out
}

// MarkerRanges maps the document's markers onto the progress timeline.
// A zero-duration marker becomes a zero-length range at its position.
func MarkerRanges(comp *lottie.LottieComposition) []ProgressRange {
	var f ProgressMapFactory
	for _, m := range comp.Markers {
		start := comp.ProgressOfFrame(m.Frame)
		end := comp.ProgressOfFrame(m.Frame + m.Duration)
		f.TryAddRange(m.Name, start, end)
	}
	return f.Ranges()
}
