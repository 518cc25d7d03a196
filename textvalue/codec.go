package textvalue

import "strings"

// Escape converts a logical text into its escaped wire form.
func Escape(s string) string {
	if !strings.ContainsAny(s, "\\\n,;") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + len(s)/8)
	for i := 0; i < len(s); i++ {
		if esc := escaped(s[i]); esc != "" {
			sb.WriteString(esc)
		} else {
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

// Unescape converts an escaped TEXT value into its logical form.
// Unknown escape sequences are copied unchanged.
func Unescape(s string) string {
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			sb.WriteByte(s[i])
			continue
		}
		i++
		if c, ok := unescaped(s[i]); ok {
			sb.WriteByte(c)
		} else {
			sb.WriteByte('\\')
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

// escaped returns the escape sequence for c, or "" if c is not escaped.
func escaped(c byte) string {
	switch c {
	case '\\':
		return `\\`
	case '\n':
		return `\n`
	case ',':
		return `\,`
	case ';':
		return `\;`
	}
	return ""
}

// unescaped returns the character an escape sequence `\c` stands for.
func unescaped(c byte) (byte, bool) {
	switch c {
	case '\\', ',', ';':
		return c, true
	case 'n', 'N':
		return '\n', true
	}
	return 0, false
}
