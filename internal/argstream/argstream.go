// This file is part of go-getflags.
//
// Copyright (C) 2025-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package argstream - iterator over the raw argument sequence that allows peeking at the
// next value before consuming it.
package argstream

// Iterator - iterator data
type Iterator struct {
	data []string
	idx  int
}

// New - builds an Iterator over the given arguments.
func New(args []string) *Iterator {
	return &Iterator{data: args, idx: -1}
}

// Size - returns Iterator size
func (a *Iterator) Size() int {
	return len(a.data)
}

// Index - return current index.
func (a *Iterator) Index() int {
	return a.idx
}

// Next - moves the index forward and returns a bool to indicate if there is another value.
func (a *Iterator) Next() bool {
	if a.idx < len(a.data) {
		a.idx++
	}
	return a.idx < len(a.data)
}

// ExistsNext - tells if there is more data to be read.
func (a *Iterator) ExistsNext() bool {
	return a.idx+1 < len(a.data)
}

// Value - returns the value at the current index or an empty string when reading before
// the first call to Next or after the list has been fully read.
func (a *Iterator) Value() string {
	if a.idx < 0 || a.idx >= len(a.data) {
		return ""
	}
	return a.data[a.idx]
}

// PeekNextValue - Returns the next value and indicates whether or not it is valid.
func (a *Iterator) PeekNextValue() (string, bool) {
	if a.idx+1 >= len(a.data) {
		return "", false
	}
	return a.data[a.idx+1], true
}
