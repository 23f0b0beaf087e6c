// This file is part of go-getflags.
//
// Copyright (C) 2025-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
//
// Strings are exposed as vars so they can be overridden, for example for internationalization.
package text

// ErrorUnknownFlag - Error message for an undeclared flag.
var ErrorUnknownFlag = "Unknown flag '%s'"

// ErrorMissingValue - Error message for a flag that expects a value when no value is given.
var ErrorMissingValue = "Missing argument for flag '%s'!"

// ErrorValueWithDash - Error message for a flag that expects a value when the following
// token is itself a flag.
var ErrorValueWithDash = "Missing argument for flag '%s'!\nAn argument starting with '-' is read as a flag"

// ErrorInvalidNumber - Error message for a number flag argument that fails coercion.
var ErrorInvalidNumber = "Argument error for flag '%s': Can't convert string to number: '%s'"

// ErrorUnexpectedPositional - Error message for a token with no flag prefix.
var ErrorUnexpectedPositional = "Unexpected argument '%s'"

// ErrorFlagDeclaredTwice - Strict mode error message for duplicate long name declarations.
var ErrorFlagDeclaredTwice = "Flag '%s' declared more than once"

// ErrorShortCollision - Strict mode error message for a flag that lost its short form to
// an earlier declaration.
var ErrorShortCollision = "Short form '%s' of flag '%s' already taken by flag '%s'"

// MessageOnInterrupt - Message for when an interrupt signal is received.
var MessageOnInterrupt = "Interrupt signal received"

// HelpNameHeader - Help name header.
var HelpNameHeader = "NAME"

// HelpSynopsisHeader - Help synopsis header.
var HelpSynopsisHeader = "SYNOPSIS"

// HelpOptionsHeader - Help options header.
var HelpOptionsHeader = "OPTIONS"
