// This file is part of go-getflags.
//
// Copyright (C) 2025-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getflags

import (
	"errors"

	"github.com/DavidGamba/go-getflags/internal/flagdef"
)

// ErrorUnknownFlag - Indicates that a dash prefixed token doesn't resolve to a declared flag.
var ErrorUnknownFlag = errors.New("")

// ErrorMissingValue - Indicates that a flag that expects a value was the last token or
// was immediately followed by another flag token.
var ErrorMissingValue = errors.New("")

// ErrorInvalidNumber - Indicates that the argument of a number flag failed numeric coercion.
var ErrorInvalidNumber = flagdef.ErrorInvalidNumber

// ErrorUnexpectedPositional - Indicates a token with no flag prefix.
// The parser binds flags only, there are no positional arguments.
var ErrorUnexpectedPositional = errors.New("")

// ErrorFlagDeclaredTwice - Validate error for a long name declared more than once.
var ErrorFlagDeclaredTwice = errors.New("")

// ErrorShortCollision - Validate error for a flag that lost its short form to an earlier
// declaration.
var ErrorShortCollision = errors.New("")
