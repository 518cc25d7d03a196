/*
Package fold implements RFC 5545 line folding and unfolding.

From RFC 5545, section 3.1:

Lines of text SHOULD NOT be longer than 75 octets, excluding the line
break. Long content lines SHOULD be split into a multiple line
representations using a line "folding" technique. That is, a long
line can be split between any two characters by inserting a CRLF
immediately followed by a single linear white-space character (i.e.,
SPACE or HTAB). […] Unfolding is accomplished by removing the CRLF and the
linear white-space character that immediately follows.

Octets, not Characters

The 75 octet limit is a limit on encoded UTF-8 bytes. Fold counts bytes, but
moves a multi-byte code point to the next physical line as a whole if it would
not fit onto the current one. Splitting a code point would corrupt every
non-ASCII glyph sitting at a fold boundary.

Typical Usage

Scanner provides an interface similar to bufio.Scanner for reading a
calendar document. Successive calls to Next() will step through the
logical (unfolded) lines of the document.

  scanner := fold.NewScanner(reader)
  for scanner.Next() {
      line := scanner.Text()
      …
  }
  if err := scanner.Err(); err != nil {
      …
  }

For in-memory documents there is a shortcut SplitAndUnfold(s).
Unfold, Fold and the streaming Unfolder operate on single strings and
never fail.

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fold

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// MaxOctets is the maximum length of a physical line in octets, excluding the
// line break.
const MaxOctets = 75
