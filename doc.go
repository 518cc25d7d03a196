/*
Package ics is about the lexical layer of iCalendar (RFC 5545) documents.

Description

From RFC 5545:

The iCalendar object is organized into individual lines of text, called
content lines. Content lines are delimited by a line break, which is a CRLF
sequence (CR character followed by LF character).

Lines of text SHOULD NOT be longer than 75 octets, excluding the line break.
Long content lines SHOULD be split into a multiple line representations using
a line "folding" technique.

[...]

All names of properties, property parameters, enumerated property values and
property parameter values are case-insensitive. However, all other property
values are case-sensitive, unless otherwise stated.

[...]

Getting these rules right is tedious rather than difficult. Errors do not
show up as failures, but as silently corrupted data: a title losing its
last glyph, a location with a stray backslash, a date with a space in it.
This module therefore restricts itself to the lowest layer of iCalendar
processing and tries to get it exactly right: folding, tokenizing content
lines and escaping TEXT values. Higher-level interpretation of property
values (dates, durations, recurrence rules), the component object model
and time zones are left to clients.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

Contents

The work is done in three sub-packages, which do not depend on each other:

▪︎ fold: splits a document into logical lines (unfolding) and folds long
lines into physical lines of at most 75 octets.

▪︎ contentline: tokenizes a logical line into property name, parameters
and raw value.

▪︎ textvalue: escapes and unescapes TEXT values.

Base package ics ties them together. A Decoder reads a document and produces
content lines; an Encoder writes content lines, folded and CRLF-terminated.

  dec := ics.NewDecoder(reader)
  for dec.Next() {
      cl := dec.ContentLine()
      if cl.Name() == "SUMMARY" {
          title := ics.Text(cl)
          …
      }
  }
  if err := dec.Err(); err != nil {
      …
  }

Malformed Lines

A line which does not tokenize is an error local to this line. By default
the Decoder stops at the first such line. Clients may choose to skip
malformed lines instead (Decoder.SkipMalformed) and inspect them later.
*/
package ics

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
