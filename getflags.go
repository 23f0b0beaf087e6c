// This file is part of go-getflags.
//
// Copyright (C) 2025-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package getflags - minimal CLI flag parser for programs that take flags only.

Flags are declared with a long name and a kind: bool, number or string. Every flag gets a
single character short form derived from the first character of its long name, unless the
letter is already taken or the assignment is disabled per flag or globally. Both forms
are matched after a single leading dash, there is no separate '--' long form syntax.
Bool flags take no argument, number and string flags read the following token.

A token prefixed with '-/' names a flag to skip: the parser consumes the name and, when
the flag kind expects one, the following value token, without binding anything.

Each declaration returns a pointer and a single Parse call binds the argument sequence
into the cells behind those pointers:

	opt := getflags.New()
	name := opt.String("name", opt.Description("Who to greet"))
	age := opt.Number("age")
	verbose := opt.Bool("verbose")
	err := opt.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
	fmt.Println(*name, *age, *verbose)

Declarations never fail: duplicate long names are not rejected and a flag whose derived
short form is taken silently gets none. Call Validate after all declarations to surface
both conditions as errors.
*/
package getflags

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/DavidGamba/go-getflags/internal/flagdef"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Writer - Used to print messages to the user, set to os.Stderr by default.
var Writer io.Writer = os.Stderr

// FlagSet - main object.
// It holds the declared flags in declaration order plus the short forms in use.
type FlagSet struct {
	name        string
	description string

	flags      []*flagdef.Flag
	shortInUse map[string]*flagdef.Flag

	noAutoShort  bool
	greedyIgnore bool
}

// New returns an empty flag set.
// The flag set is meant for one shot use: declare the flags, parse once, read the values
// through the declaration pointers.
func New() *FlagSet {
	fset := &FlagSet{
		name:       filepath.Base(os.Args[0]),
		shortInUse: map[string]*flagdef.Flag{},
	}
	return fset
}

// Self - Set a program name and description used in the help output.
// The name defaults to the base name of the running program.
func (fset *FlagSet) Self(name string, description string) *FlagSet {
	if name != "" {
		fset.name = name
	}
	fset.description = description
	return fset
}

// DisableAutoShort - Stop deriving short forms for the flags declared after this call.
func (fset *FlagSet) DisableAutoShort() {
	fset.noAutoShort = true
}

// SetGreedyIgnore - When an ignored flag can't be resolved, also consume one following
// token unless that token is a flag. The default is to consume the name token only: the
// kind of an undeclared flag, and with it whether a value follows, is unknown.
func (fset *FlagSet) SetGreedyIgnore() {
	fset.greedyIgnore = true
}

// Called - Indicates if the flag was passed on the command line.
// The name can be the long or the short form.
func (fset *FlagSet) Called(name string) bool {
	if f := fset.resolve(name); f != nil {
		return f.Called
	}
	return false
}

// CalledAs - Returns the name form used to call the flag, long or short.
// Empty string when the flag was not called or not declared.
func (fset *FlagSet) CalledAs(name string) string {
	if f := fset.resolve(name); f != nil {
		return f.UsedName
	}
	return ""
}

// Value - Returns the untyped value of the given flag, nil when not declared.
func (fset *FlagSet) Value(name string) interface{} {
	if f := fset.resolve(name); f != nil {
		return f.Value()
	}
	return nil
}
