package fold

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

const foldBreak = "\r\n " // CRLF followed by a single SPACE

// Unfold removes every CRLF which is immediately followed by a SPACE or HTAB,
// dropping the whitespace character as well. Hard line breaks (CRLF not
// followed by whitespace) are preserved, as is any malformed line ending.
//
// Removal is repeated until no folding sequence is left, i.e.
// Unfold(Unfold(s)) == Unfold(s) for every s.
func Unfold(s string) string {
	if !strings.Contains(s, "\r\n") {
		return s
	}
	out, _, err := transform.String(NewUnfolder(), s)
	if err != nil { // cannot happen: the unfolder never reports an error of its own
		CT().Errorf("fold: unfolding failed: %v", err)
		return s
	}
	return out
}

// Fold breaks a logical line into physical lines of at most MaxOctets octets
// each. A fold is a CRLF followed by a single SPACE; the SPACE counts towards
// the length of the continuation line.
//
// Fold will never split a UTF-8 encoded code point. Bytes which are not part
// of a valid UTF-8 sequence are treated as code points of length 1.
// Strings of at most MaxOctets bytes are returned unchanged.
func Fold(s string) string {
	if len(s) <= MaxOctets {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + len(s)/(MaxOctets-1)*len(foldBreak))
	octets := 0
	for i := 0; i < len(s); {
		_, size := utf8.DecodeRuneInString(s[i:])
		if octets+size > MaxOctets {
			sb.WriteString(foldBreak)
			octets = 1
		}
		sb.WriteString(s[i : i+size])
		octets += size
		i += size
	}
	return sb.String()
}
