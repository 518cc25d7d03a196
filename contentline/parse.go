package contentline

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Errors reported by Parse. Apart from ErrEmptyOrBlankInput they are wrapped
// with the offending part of the line.
var (
	ErrEmptyOrBlankInput     = errors.New("content line is empty or blank")
	ErrMissingValueSeparator = errors.New("content line has no unquoted ':' separating the value")
	ErrMissingPropertyName   = errors.New("content line has no property name")
	ErrInvalidPropertyName   = errors.New("property name contains whitespace")
	ErrMalformedParameter    = errors.New("parameter is not of the form NAME=VALUE")
)

// Parse tokenizes a single logical (unfolded) content line.
//
// The property name is trimmed and converted to upper case. Every parameter
// has to be of the form NAME=VALUE, split at the first '='. Parameter names are
// trimmed and upper-cased. Parameter values are trimmed; a value enclosed in
// double quotes is stripped of the quotes, otherwise it is upper-cased.
// A parameter given more than once keeps the last value.
//
// The value is everything after the first colon which is not inside a quoted
// span. It is returned unchanged, apart from a single trailing line terminator
// (CRLF or LF) being removed.
func Parse(line string) (ContentLine, error) {
	if strings.TrimSpace(line) == "" {
		return ContentLine{}, ErrEmptyOrBlankInput
	}
	line = trimTerminator(line)
	colon := indexUnquoted(line, ':')
	if colon < 0 {
		return ContentLine{}, parseError(ErrMissingValueSeparator, line)
	}
	cl := ContentLine{value: line[colon+1:]}
	pieces := splitUnquoted(line[:colon], ';')
	cl.name = strings.ToUpper(strings.TrimSpace(pieces[0]))
	if err := checkName(cl.name); err != nil {
		return ContentLine{}, parseError(err, line)
	}
	if len(pieces) > 1 {
		cl.params = NewParameters()
	}
	for _, piece := range pieces[1:] {
		name, value, err := parseParameter(piece)
		if err != nil {
			return ContentLine{}, parseError(err, piece)
		}
		cl.params.Set(name, value)
	}
	return cl, nil
}

func trimTerminator(line string) string {
	if strings.HasSuffix(line, "\r\n") {
		return line[:len(line)-2]
	}
	return strings.TrimSuffix(line, "\n")
}

func parseParameter(piece string) (name, value string, err error) {
	eq := strings.IndexByte(piece, '=')
	if eq < 0 {
		return "", "", ErrMalformedParameter
	}
	name = strings.ToUpper(strings.TrimSpace(piece[:eq]))
	if name == "" {
		return "", "", ErrMalformedParameter
	}
	value = strings.TrimSpace(piece[eq+1:])
	if l := len(value); l >= 2 && value[0] == '"' && value[l-1] == '"' {
		value = value[1 : l-1]
	} else {
		value = strings.ToUpper(value)
	}
	return name, value, nil
}

func parseError(err error, context string) error {
	const maxContext = 40
	if len(context) > maxContext {
		cut := maxContext
		for cut > 0 && !utf8.RuneStart(context[cut]) {
			cut--
		}
		context = context[:cut] + "…"
	}
	CT().Debugf("contentline: %v in %q", err, context)
	return fmt.Errorf("%w: %q", err, context)
}

// --- Quote-aware scanning --------------------------------------------------

// indexUnquoted returns the index of the first delim in s which is not within a
// quoted span, or -1. Every double quote toggles the in-quotes state.
//
// All delimiters are ASCII, so scanning bytes is safe for UTF-8 input.
func indexUnquoted(s string, delim byte) int {
	inQuotes := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			inQuotes = !inQuotes
		case delim:
			if !inQuotes {
				return i
			}
		}
	}
	return -1
}

// splitUnquoted splits s at every delim not within a quoted span. The result
// always has at least one element.
func splitUnquoted(s string, delim byte) []string {
	var pieces []string
	for {
		i := indexUnquoted(s, delim)
		if i < 0 {
			return append(pieces, s)
		}
		pieces = append(pieces, s[:i])
		s = s[i+1:]
	}
}
