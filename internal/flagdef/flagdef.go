// This file is part of go-getflags.
//
// Copyright (C) 2025-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package flagdef - internal flag struct and methods.
package flagdef

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"strconv"

	"github.com/DavidGamba/go-getflags/text"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// ErrorInvalidNumber - Indicates that the argument of a number flag failed numeric coercion.
var ErrorInvalidNumber = errors.New("")

// Kind - Indicates the kind of flag.
// The kind determines how many argument tokens the flag consumes (none for bool, one
// otherwise) and how the consumed token is coerced.
type Kind int

// Flag Kinds
const (
	BoolKind Kind = iota
	NumberKind
	StringKind
)

// Flag - main object, one declared flag and its value cell.
type Flag struct {
	Name  string // Long name, matched first during resolution
	Short string // Single character short form, empty when none is assigned
	Kind  Kind

	Called   bool   // Indicates if the flag was passed on the command line
	UsedName string // Name form used when the flag was called, long or short

	NoShort     bool // Short form assignment suppressed for this flag
	ShortDenied bool // Auto assignment wanted a short form but the letter was taken

	// Help
	DefaultStr  string // String representation of the default value
	Description string // Optional description used for help
	HelpArgName string // Optional arg name used for help

	// Pointer receivers, the caller reads through these after parsing:
	pBool   *bool    // receiver for bool pointer
	pNumber *float64 // receiver for number pointer
	pString *string  // receiver for string pointer
}

// New - Returns a new flag object.
func New(name string, kind Kind, data interface{}) *Flag {
	f := &Flag{
		Name: name,
		Kind: kind,
	}
	switch kind {
	case StringKind:
		f.HelpArgName = "string"
		f.pString = data.(*string)
		f.DefaultStr = fmt.Sprintf("\"%s\"", *data.(*string))
	case NumberKind:
		f.HelpArgName = "number"
		f.pNumber = data.(*float64)
		f.DefaultStr = fmt.Sprintf("%g", *data.(*float64))
	case BoolKind:
		f.pBool = data.(*bool)
		f.DefaultStr = fmt.Sprintf("%t", *data.(*bool))
	}
	return f
}

// ExpectsValue - Indicates whether the flag consumes a value token.
func (f *Flag) ExpectsValue() bool {
	return f.Kind != BoolKind
}

// SetCalled - Marks the flag as called and records the name form used.
func (f *Flag) SetCalled(usedName string) *Flag {
	f.Called = true
	f.UsedName = usedName
	return f
}

// SetDescription - Updates the Description.
func (f *Flag) SetDescription(s string) *Flag {
	f.Description = s
	return f
}

// SetHelpArgName - Updates the HelpArgName.
func (f *Flag) SetHelpArgName(s string) *Flag {
	f.HelpArgName = s
	return f
}

// SetBool - Sets the value cell to the given bool.
func (f *Flag) SetBool(b bool) *Flag {
	*f.pBool = b
	return f
}

// SetNumber - Sets the value cell to the given number.
func (f *Flag) SetNumber(n float64) *Flag {
	*f.pNumber = n
	return f
}

// SetString - Sets the value cell to the given string.
func (f *Flag) SetString(s string) *Flag {
	*f.pString = s
	return f
}

// Value - Get untyped flag value.
func (f *Flag) Value() interface{} {
	switch f.Kind {
	case StringKind:
		return *f.pString
	case NumberKind:
		return *f.pNumber
	default: // BoolKind
		return *f.pBool
	}
}

// Save - Saves the given argument into the flag's value cell, coercing it per the flag
// kind. Calling Save without arguments on a bool flag sets the cell to true.
func (f *Flag) Save(a ...string) error {
	Logger.Printf("name: %s, kind: %d\n", f.Name, f.Kind)
	if len(a) < 1 {
		if f.Kind == BoolKind {
			f.SetBool(true)
		}
		return nil
	}
	switch f.Kind {
	case StringKind:
		f.SetString(a[0])
		return nil
	case NumberKind:
		n, err := strconv.ParseFloat(a[0], 64)
		if err != nil {
			return fmt.Errorf(text.ErrorInvalidNumber+"%w", f.UsedName, a[0], ErrorInvalidNumber)
		}
		f.SetNumber(n)
		return nil
	default: // BoolKind
		f.SetBool(true)
		return nil
	}
}

// Sort - Sorts a list of flags by name.
func Sort(list []*Flag) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
}
