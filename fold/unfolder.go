package fold

import (
	"golang.org/x/text/transform"
)

// Unfolder is a transform.Transformer which unfolds content lines while they
// stream by. It produces the same output as Unfold, independent of how the
// input is chunked.
//
// Removing a fold may expose a CR or a CRLF which had been held back earlier,
// and this in turn may start another fold. An Unfolder therefore keeps a stack
// of pending CRs and CRLFs. They are written out only when a byte arrives
// which can neither extend nor complete a folding sequence; at that point
// nothing after them can remove them any more.
type Unfolder struct {
	pending []byte // only CR and CRLF, never two LFs in a row
}

var _ transform.Transformer = (*Unfolder)(nil)

// NewUnfolder creates a streaming unfolder. Use it with transform.NewReader or
// transform.NewWriter.
func NewUnfolder() *Unfolder {
	return &Unfolder{}
}

// Reset is part of interface transform.Transformer.
func (u *Unfolder) Reset() {
	u.pending = u.pending[:0]
}

// Transform is part of interface transform.Transformer.
func (u *Unfolder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		switch {
		case c == '\r':
			u.pending = append(u.pending, c)
			nSrc++
			continue
		case c == '\n' && u.top() == '\r':
			u.pending = append(u.pending, c)
			nSrc++
			continue
		case isWSP(c) && u.top() == '\n': // CRLF WSP: drop all three
			u.pending = u.pending[:len(u.pending)-2]
			nSrc++
			continue
		}
		// c does not continue a folding sequence
		if nDst, err = u.flush(dst, nDst); err != nil {
			return
		}
		if nDst >= len(dst) {
			err = transform.ErrShortDst
			return
		}
		dst[nDst] = c
		nDst++
		nSrc++
	}
	if atEOF {
		nDst, err = u.flush(dst, nDst)
	}
	return
}

func (u *Unfolder) top() byte {
	if len(u.pending) == 0 {
		return 0
	}
	return u.pending[len(u.pending)-1]
}

// flush writes pending bytes to dst, as far as dst will take them.
func (u *Unfolder) flush(dst []byte, nDst int) (int, error) {
	n := copy(dst[nDst:], u.pending)
	nDst += n
	if n < len(u.pending) {
		u.pending = u.pending[n:]
		return nDst, transform.ErrShortDst
	}
	u.pending = u.pending[:0]
	return nDst, nil
}

func isWSP(c byte) bool {
	return c == ' ' || c == '\t'
}
