package fold

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
)

// A Scanner reads a calendar document and splits it into logical, i.e.
// unfolded, content lines.
//
// A logical line consists of a physical line terminated by CRLF, followed by
// all the physical lines starting with SPACE or HTAB (continuation lines).
// The leading whitespace character of a continuation line is dropped. A final
// line without a line terminator is still reported. Empty logical lines are
// skipped.
//
// The Scanner works on physical lines. For well-formed documents it yields the
// same lines as splitting the output of Unfold at CRLF. Unfold, however, keeps
// removing folds which appear only after other folds have been removed, e.g.
// a CR at the end of one physical line and an LF plus SPACE at the start of a
// continuation line. The Scanner leaves such bytes in the logical line.
//
// Scanning is a single forward pass; a Scanner cannot be rewound. Scanners
// are not safe for concurrent use.
type Scanner struct {
	reader      *bufio.Reader // where we get the physical lines from
	buffer      *bytes.Buffer // where we collect the current logical line
	activeLine  []byte        // the most recent logical line
	maxLineSize int           // maximum length allowed for a logical line
	lenient     bool          // accept bare LF as line terminator?
	physLines   int           // number of physical lines read so far
	lineNo      int           // physical line number where activeLine starts
	err         error
	atEOF       bool
	inUse       bool // Next() has been called; buffer is in use.
}

// MaxLineSize is the maximum size of a logical line unless the client
// provides an explicit buffer with Scanner.Buffer().
const MaxLineSize = 1024 * 1024
const startBufSize = 4096 // Size of initial allocation for buffer.

// ErrLineTooLong flags a buffer overflow.
// ErrNotInitialized is returned if a scanner's Next-function is called without
// first setting an input source.
var (
	ErrLineTooLong    = errors.New("fold scanner: logical line too long for buffer")
	ErrNotInitialized = errors.New("fold scanner not initialized; must call Init(...) first")
)

// NewScanner creates a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	s := &Scanner{}
	s.Init(r)
	return s
}

// SplitAndUnfold returns a Scanner over the logical lines of an in-memory
// document. An empty document yields no lines at all.
//
//   sc := fold.SplitAndUnfold(doc)
//   for sc.Next() {
//       line := sc.Text()
//       …
//   }
func SplitAndUnfold(doc string) *Scanner {
	return NewScanner(strings.NewReader(doc))
}

// Init initializes a Scanner with an io.Reader to read from.
// s is either a newly created scanner to be initialized, or we may
// re-initialize a scanner already in use.
func (s *Scanner) Init(r io.Reader) {
	if r == nil {
		r = strings.NewReader("")
	}
	if s.reader == nil {
		s.reader = bufio.NewReader(r)
	} else {
		s.reader.Reset(r)
	}
	if s.buffer == nil {
		s.buffer = bytes.NewBuffer(make([]byte, 0, startBufSize))
		s.maxLineSize = MaxLineSize
	} else {
		s.buffer.Reset()
	}
	s.activeLine = nil
	s.physLines, s.lineNo = 0, 0
	s.err = nil
	s.atEOF = false
	s.inUse = false
}

// Buffer sets the initial buffer to use when scanning and the maximum size of
// a logical line.
//
// Buffer panics if it is called after scanning has started. Clients will have
// to call Init(...) again to permit re-setting the buffer.
func (s *Scanner) Buffer(buf []byte, max int) {
	if s.inUse {
		panic("fold.Buffer: buffer already in use; cannot be re-set")
	}
	s.buffer = bytes.NewBuffer(buf[:0])
	s.maxLineSize = max
}

// Lenient tells the scanner to accept a bare LF as a line terminator, in
// addition to CRLF. Many calendar files found in the wild are written with
// Unix line endings. By default only CRLF terminates a physical line, and
// a bare LF is part of the line's content.
func (s *Scanner) Lenient(on bool) {
	s.lenient = on
}

// Next advances the Scanner to the next logical line, which will then be
// available through the Bytes() or Text() method. It returns false when the
// scan stops, either by reaching the end of the input or an error.
// After Next() returns false, the Err() method will return any error
// that occurred during scanning, except for io.EOF.
func (s *Scanner) Next() bool {
	if s.reader == nil {
		s.setErr(ErrNotInitialized)
		return false
	}
	s.inUse = true
	s.activeLine = nil
	for s.err == nil {
		if s.atEOF {
			return false
		}
		s.buffer.Reset()
		s.lineNo = s.physLines + 1
		if err := s.readPhysicalLine(); err != nil {
			s.setErr(err)
			return false
		}
		for !s.atEOF {
			if cont, err := s.continues(); err != nil {
				s.setErr(err)
				return false
			} else if !cont {
				break
			}
			if err := s.readPhysicalLine(); err != nil {
				s.setErr(err)
				return false
			}
		}
		if s.buffer.Len() == 0 {
			continue
		}
		s.activeLine = s.buffer.Bytes()
		CT().Debugf("fold: logical line %d = %q", s.lineNo, s.activeLine)
		return true
	}
	return false
}

// Bytes returns the most recent logical line generated by a call to Next().
// The underlying array may point to data that will be overwritten by a
// subsequent call to Next(). No allocation is performed.
func (s *Scanner) Bytes() []byte {
	return s.activeLine
}

// Text returns the most recent logical line generated by a call to Next()
// as a newly allocated string holding its bytes.
func (s *Scanner) Text() string {
	return string(s.activeLine)
}

// LineNo returns the number (1…n) of the physical line the current logical
// line starts at.
func (s *Scanner) LineNo() int {
	return s.lineNo
}

// Err returns the first non-EOF error that was encountered by the Scanner.
func (s *Scanner) Err() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}

// setErr() records the first error encountered.
func (s *Scanner) setErr(err error) {
	if s.err == nil || s.err == io.EOF {
		s.err = err
	}
}

// continues checks if the next physical line is a continuation line. If it
// is, the leading whitespace character is consumed.
func (s *Scanner) continues() (bool, error) {
	b, err := s.reader.Peek(1)
	if err == io.EOF {
		s.atEOF = true
		return false, nil
	} else if err != nil {
		CT().Errorf("fold: peek failed: %v", err)
		return false, err
	}
	if !isWSP(b[0]) {
		return false, nil
	}
	_, _ = s.reader.ReadByte()
	return true, nil
}

// readPhysicalLine appends the content of the next physical line to the
// buffer, omitting the line terminator.
func (s *Scanner) readPhysicalLine() error {
	start := s.buffer.Len()
	for {
		chunk, err := s.reader.ReadSlice('\n')
		if s.buffer.Len()+len(chunk) > s.maxLineSize {
			return ErrLineTooLong
		}
		s.buffer.Write(chunk)
		switch err {
		case nil: // chunk ends with LF
			phys := s.buffer.Bytes()[start:]
			if n := len(phys); n >= 2 && phys[n-2] == '\r' {
				s.buffer.Truncate(s.buffer.Len() - 2)
				s.physLines++
				return nil
			} else if s.lenient {
				s.buffer.Truncate(s.buffer.Len() - 1)
				s.physLines++
				return nil
			}
			// bare LF is content, physical line continues
		case bufio.ErrBufferFull:
			// keep on reading
		case io.EOF:
			s.atEOF = true
			if s.buffer.Len() > start {
				s.physLines++
			}
			return nil
		default:
			CT().Errorf("fold: read failed: %v", err)
			return err
		}
	}
}
