// This file is part of go-getflags.
//
// Copyright (C) 2025-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package help - Functions to print help messages.
package help

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DavidGamba/go-getflags/internal/flagdef"
	"github.com/DavidGamba/go-getflags/text"
)

// Padding - Section content padding.
var Padding = 4

// SynopsisWidth - Column the synopsis wraps at.
var SynopsisWidth = 80

// Name - Return the name section.
func Name(scriptName, description string) string {
	out := scriptName
	if description != "" {
		out += fmt.Sprintf(" - %s", description)
	}
	return fmt.Sprintf("%s:\n%s%s\n", text.HelpNameHeader, strings.Repeat(" ", Padding), out)
}

// Synopsis - Return a default synopsis.
// The flag list should be sorted.
func Synopsis(scriptName string, flags []*flagdef.Flag) string {
	scriptName = strings.Repeat(" ", Padding) + scriptName
	var out string
	line := scriptName
	for _, f := range flags {
		syn := fmt.Sprintf("[%s]", flagUsage(f))
		if len(line)+len(syn) > SynopsisWidth {
			out += line + "\n"
			line = fmt.Sprintf("%s %s", strings.Repeat(" ", len(scriptName)), syn)
		} else {
			line += fmt.Sprintf(" %s", syn)
		}
	}
	out += line
	return fmt.Sprintf("%s:\n%s\n", text.HelpSynopsisHeader, out)
}

// OptionList - Return a formatted list of flags and their descriptions.
func OptionList(flags []*flagdef.Flag) string {
	if len(flags) == 0 {
		return ""
	}
	usage := []string{}
	for _, f := range flags {
		usage = append(usage, flagUsage(f))
	}
	factor := longestStringLen(usage) + Padding
	out := fmt.Sprintf("%s:\n", text.HelpOptionsHeader)
	for i, f := range flags {
		out += strings.Repeat(" ", Padding) + pad(usage[i], factor)
		if f.Description != "" {
			out += f.Description + " "
		}
		out += fmt.Sprintf("(default: %s)\n", f.DefaultStr)
	}
	return out
}

// flagUsage - Usage string for one flag: `-verbose|-v` or `-age <number>`.
func flagUsage(f *flagdef.Flag) string {
	names := "-" + f.Name
	if f.Short != "" && f.Short != f.Name {
		names += "|-" + f.Short
	}
	if f.ExpectsValue() {
		return fmt.Sprintf("%s <%s>", names, f.HelpArgName)
	}
	return names
}

// longestStringLen - Given a slice of strings it returns the length of the longest string in the slice
func longestStringLen(s []string) int {
	i := 0
	for _, e := range s {
		if len(e) > i {
			i = len(e)
		}
	}
	return i
}

// pad - Given a string and a padding factor it will return the string padded with spaces.
func pad(s string, factor int) string {
	return fmt.Sprintf("%-"+strconv.Itoa(factor)+"s", s)
}
