// This file is part of go-getflags.
//
// Copyright (C) 2025-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getflags

import (
	"regexp"
)

// 1: leading dash or ignore marker
// 2: name
var isFlagRegex = regexp.MustCompile(`^(-/?)(.+)$`)

// flagToken - a classified argument token.
// The name still has to be resolved against the declared flags.
type flagToken struct {
	Name   string
	Ignore bool
}

/*
isFlag - Check if the given string is a flag token: `-name` or the ignore form `-/name`.
Return the name without the leading marker and whether it is the ignore form.

A lone dash is not a flag, it conventionally names stdin and is reported like any other
bare argument. There is no single dash vs double dash distinction, resolution order
against the declared flags disambiguates long and short names.
*/
func isFlag(s string) (flagToken, bool) {
	match := isFlagRegex.FindStringSubmatch(s)
	if len(match) < 3 {
		return flagToken{}, false
	}
	return flagToken{Name: match[2], Ignore: match[1] == "-/"}, true
}
