package textvalue

import (
	"golang.org/x/text/transform"
)

// Escaper is a transform.Transformer performing Escape.
type Escaper struct{ transform.NopResetter }

// Unescaper is a transform.Transformer performing Unescape.
type Unescaper struct{ transform.NopResetter }

var (
	_ transform.Transformer = Escaper{}
	_ transform.Transformer = Unescaper{}
)

// NewEscaper returns a transformer which escapes TEXT values.
func NewEscaper() Escaper {
	return Escaper{}
}

// NewUnescaper returns a transformer which unescapes TEXT values.
func NewUnescaper() Unescaper {
	return Unescaper{}
}

// Transform is part of interface transform.Transformer.
func (Escaper) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		if esc := escaped(c); esc != "" {
			if nDst+len(esc) > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], esc)
		} else {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
		}
		nSrc++
	}
	return nDst, nSrc, nil
}

// Transform is part of interface transform.Transformer.
//
// A backslash at the end of src is only consumed if atEOF is set; otherwise
// the transformer asks for more input.
func (Unescaper) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		if c != '\\' {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			nSrc++
			continue
		}
		if nSrc+1 == len(src) {
			if !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c // lone trailing backslash
			nDst++
			nSrc++
			continue
		}
		next := src[nSrc+1]
		if u, ok := unescaped(next); ok {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = u
			nDst++
		} else {
			if nDst+2 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst], dst[nDst+1] = c, next
			nDst += 2
		}
		nSrc += 2
	}
	return nDst, nSrc, nil
}
