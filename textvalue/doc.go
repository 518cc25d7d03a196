/*
Package textvalue escapes and unescapes iCalendar TEXT values (RFC 5545,
section 3.3.11).

   logical   escaped
   \         \\
   newline   \n
   ,         \,
   ;         \;

Colons are never escaped. Unescape accepts \N as well as \n. A backslash
followed by any other character, or a backslash at the end of the input, is
left alone together with its successor. Neither direction ever fails.

For streaming use there are transformers (see golang.org/x/text/transform)
with identical semantics:

  r := transform.NewReader(input, textvalue.NewUnescaper())

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package textvalue
