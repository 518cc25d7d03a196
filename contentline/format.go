package contentline

import (
	"errors"
	"strings"
)

// ErrUnrepresentableParameter is returned by Format for a parameter value
// containing a double quote. RFC 5545 has no way to express it.
var ErrUnrepresentableParameter = errors.New("parameter value contains a double quote")

// Format renders a content line in wire syntax, without folding and without
// a line terminator:
//
//   NAME;PARAM=VALUE;PARAM="quoted value":value
//
// Parameter values are quoted if they contain one of ':', ';' or ',', have
// leading or trailing whitespace, or are not all upper case. Thus
// Parse(Format(cl)) reproduces cl.
func Format(cl ContentLine) (string, error) {
	if err := checkName(cl.name); err != nil {
		return "", err
	}
	var err error
	cl.params.Each(func(name, value string) {
		if err == nil && strings.IndexByte(value, '"') >= 0 {
			err = parseError(ErrUnrepresentableParameter, name+"="+value)
		}
	})
	if err != nil {
		return "", err
	}
	return render(cl), nil
}

func render(cl ContentLine) string {
	var sb strings.Builder
	sb.Grow(len(cl.name) + len(cl.value) + 16*cl.params.Len() + 1)
	sb.WriteString(cl.name)
	cl.params.Each(func(name, value string) {
		sb.WriteByte(';')
		sb.WriteString(name)
		sb.WriteByte('=')
		if needsQuotes(value) {
			sb.WriteByte('"')
			sb.WriteString(value)
			sb.WriteByte('"')
		} else {
			sb.WriteString(value)
		}
	})
	sb.WriteByte(':')
	sb.WriteString(cl.value)
	return sb.String()
}

func needsQuotes(value string) bool {
	return strings.ContainsAny(value, ":;,") ||
		value != strings.TrimSpace(value) ||
		value != strings.ToUpper(value)
}
