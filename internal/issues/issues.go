// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

// Package issues is a collect-only side-channel for conditions discovered
// while parsing or translating a Lottie document. Issues never affect
// control flow: the parser and translator record them and carry on, and a
// caller decides at the end whether and how to surface them.
package issues

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"
)

// Issue is one reportable condition, identified by a stable code so that
// tooling can group and suppress by code rather than by message text.
type Issue struct {
	Code        string
	Description string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Code, i.Description)
}

// Issues accumulates issues in order of discovery. The zero value is an
// empty collector ready for use.
type Issues struct {
	items []Issue
	seen  map[Issue]struct{}
}

// Report records an issue. Exact duplicates are recorded once; a document
// with a thousand unsupported gradient strokes produces one issue, not a
// thousand.
func (s *Issues) Report(code, format string, args ...interface{}) {
	issue := Issue{Code: code, Description: fmt.Sprintf(format, args...)}
	if s.seen == nil {
		s.seen = make(map[Issue]struct{})
	}
	if _, ok := s.seen[issue]; ok {
		return
	}
	s.seen[issue] = struct{}{}
	s.items = append(s.items, issue)
}

// HasIssues reports whether anything has been recorded.
func (s *Issues) HasIssues() bool {
	return len(s.items) > 0
}

// All returns the recorded issues in discovery order.
func (s *Issues) All() []Issue {
	out := make([]Issue, len(s.items))
	copy(out, s.items)
	return out
}

// ByCode returns the recorded issues sorted by code, then description.
func (s *Issues) ByCode() []Issue {
	out := s.All()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Code != out[j].Code {
			return out[i].Code < out[j].Code
		}
		return out[i].Description < out[j].Description
	})
	return out
}

// Err returns all recorded issues as a single error, or nil if none were
// recorded. Callers that treat issues as fatal use this at the boundary.
func (s *Issues) Err() error {
	var result *multierror.Error
	for _, issue := range s.items {
		result = multierror.Append(result, fmt.Errorf("%s", issue))
	}
	return result.ErrorOrNil()
}
