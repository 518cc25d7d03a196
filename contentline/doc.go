/*
Package contentline tokenizes iCalendar content lines.

A content line, as defined by RFC 5545 section 3.1, has the form

   name *(";" param ) ":" value

Parse splits an already unfolded line into property name, parameters and the
raw (still escaped) value. Property names and parameter names are normalized
to upper case. Parameter values are upper-cased as well unless they have been
quoted, in which case the quotes are stripped and the case is preserved.
The property value is never touched.

Delimiters inside a quoted parameter value do not count:

   DESCRIPTION;ALTREP="http://example.com:8080;foo=bar,baz":Test

has a single parameter ALTREP and the value "Test". There is no escape
mechanism for quotes inside quoted spans; a double quote always toggles.

Parsing is a pure function. Failures are reported with one of the sentinel
errors of this package, wrapped with some context; use errors.Is to test for
them.

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package contentline

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
