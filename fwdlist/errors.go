// SPDX-License-Identifier: MIT
// Package fwdlist: sentinel error set.
// Every failure in this package is a precondition violation. Operations never
// return these errors; they panic with them so callers that recover can match
// the value with errors.Is.

package fwdlist

import "errors"

var (
	// ErrEmptyList is raised by PopFront on a list with no elements.
	ErrEmptyList = errors.New("fwdlist: list is empty")

	// ErrEndPosition is raised when a past-the-end or singular position is
	// dereferenced, advanced, or used as an insert/erase anchor.
	ErrEndPosition = errors.New("fwdlist: past-the-end position")

	// ErrAnchorDereference is raised when the before-begin position is dereferenced.
	ErrAnchorDereference = errors.New("fwdlist: before-begin position holds no value")

	// ErrNoSuccessor is raised by EraseAfter when no element follows the position.
	ErrNoSuccessor = errors.New("fwdlist: no element after position")
)
