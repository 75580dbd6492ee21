// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package optimizer

import (
	"github.com/karimalambert/Lottie-Windows/internal/wincomp"
)

// animatorsEqual reports whether two animators on two prospective merge
// candidates drive their targets identically. Key-frame animations
// compare by reference: two containers animated by the same animation
// object stay in lockstep, while structurally equal but distinct
// animations could be retargeted independently later, so they do not
// count. Expression animations compare by expression string plus
// reference parameters; a parameter pair matches when both sides point
// at the same object, or each side points at its own owner (the
// expressions read the same property of "self").
func animatorsEqual(a, b *wincomp.Animator, aOwner, bOwner wincomp.Object) bool {
	if a.Target != b.Target {
		return false
	}
	if !controllersEqual(a.Controller, b.Controller) {
		return false
	}
	if a.Animation == nil || b.Animation == nil {
		return a.Animation == b.Animation
	}
	if a.Animation.Kind() != b.Animation.Kind() {
		return false
	}
	ea, ok := a.Animation.(*wincomp.ExpressionAnimation)
	if !ok {
		return a.Animation == b.Animation
	}
	eb := b.Animation.(*wincomp.ExpressionAnimation)
	return expressionsEqual(ea, eb, aOwner, bOwner)
}

func expressionsEqual(a, b *wincomp.ExpressionAnimation, aOwner, bOwner wincomp.Object) bool {
	if a.Expression != b.Expression {
		return false
	}
	if len(a.References) != len(b.References) {
		return false
	}
	for _, ra := range a.References {
		rb, ok := referenceByName(b.References, ra.Name)
		if !ok {
			return false
		}
		sameTarget := ra.Target == rb.Target
		bothOwners := ra.Target == aOwner && rb.Target == bOwner
		if !sameTarget && !bothOwners {
			return false
		}
	}
	return true
}

func referenceByName(refs []wincomp.ReferenceParameter, name string) (wincomp.ReferenceParameter, bool) {
	for _, r := range refs {
		if r.Name == name {
			return r, true
		}
	}
	return wincomp.ReferenceParameter{}, false
}

func controllersEqual(a, b *wincomp.AnimationController) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a == b {
		return true
	}
	if a.Paused != b.Paused {
		return false
	}
	if len(a.Animators) != len(b.Animators) {
		return false
	}
	for i := range a.Animators {
		if !animatorsEqual(a.Animators[i], b.Animators[i], a, b) {
			return false
		}
	}
	return true
}

// animatorListsEqual compares two owners' animator lists pairwise in
// order.
func animatorListsEqual(aOwner, bOwner wincomp.Object) bool {
	as, bs := aOwner.Base().Animators, bOwner.Base().Animators
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if !animatorsEqual(as[i], bs[i], aOwner, bOwner) {
			return false
		}
	}
	return true
}
