package ics

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/ics/contentline"
	"github.com/npillmayer/ics/fold"
	"github.com/npillmayer/ics/textvalue"
)

// LineError reports a logical line which could not be tokenized.
type LineError struct {
	Line int    // physical line number (1…n) where the logical line starts
	Text string // the unfolded line
	Err  error  // one of the errors of package contentline
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// --- Decoder ---------------------------------------------------------------

// A Decoder reads content lines from a calendar document.
//
// Its interface is similar to bufio.Scanner: successive calls to Next() step
// through the content lines of the input, which are available through
// ContentLine(). Decoders are not safe for concurrent use.
type Decoder struct {
	scanner *fold.Scanner
	current contentline.ContentLine
	skip    bool
	skipped []error
	err     error
}

// NewDecoder creates a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{scanner: fold.NewScanner(r)}
}

// SkipMalformed tells the decoder what to do with a line which cannot be
// tokenized. If on is false (the default), decoding stops and Err() will
// report the line. Otherwise the line is skipped, and its error is available
// from Skipped().
func (d *Decoder) SkipMalformed(on bool) {
	d.skip = on
}

// Lenient tells the decoder to accept bare LF as a line terminator.
// See fold.Scanner.Lenient.
func (d *Decoder) Lenient(on bool) {
	d.scanner.Lenient(on)
}

// Next advances to the next content line. It returns false at the end of the
// input or after an error.
func (d *Decoder) Next() bool {
	for d.err == nil && d.scanner.Next() {
		cl, err := contentline.Parse(d.scanner.Text())
		if err == nil {
			d.current = cl
			return true
		}
		lerr := &LineError{Line: d.scanner.LineNo(), Text: d.scanner.Text(), Err: err}
		if !d.skip {
			CT().Errorf("ics: %v", lerr)
			d.err = lerr
			break
		}
		CT().Infof("ics: skipping %v", lerr)
		d.skipped = append(d.skipped, lerr)
	}
	if d.err == nil {
		d.err = d.scanner.Err()
	}
	d.current = contentline.ContentLine{}
	return false
}

// ContentLine returns the most recent content line produced by Next().
func (d *Decoder) ContentLine() contentline.ContentLine {
	return d.current
}

// LineNo returns the physical line number (1…n) the current content line
// starts at.
func (d *Decoder) LineNo() int {
	return d.scanner.LineNo()
}

// Err returns the first error encountered, if any. Errors for malformed lines
// are of type *LineError.
func (d *Decoder) Err() error {
	return d.err
}

// Skipped returns the errors for all malformed lines skipped so far.
func (d *Decoder) Skipped() []error {
	return d.skipped
}

// DecodeString tokenizes all content lines of an in-memory document. It stops
// at the first malformed line.
func DecodeString(doc string) ([]contentline.ContentLine, error) {
	dec := NewDecoder(strings.NewReader(doc))
	var lines []contentline.ContentLine
	for dec.Next() {
		lines = append(lines, dec.ContentLine())
	}
	return lines, dec.Err()
}

// Text returns the unescaped value of a content line with a value of type
// TEXT.
func Text(cl contentline.ContentLine) string {
	return textvalue.Unescape(cl.Value())
}

// --- Encoder ---------------------------------------------------------------

// An Encoder writes content lines in wire format: folded to at most 75 octets
// per physical line and terminated by CRLF.
type Encoder struct {
	w io.Writer
}

// NewEncoder creates an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes a single content line.
func (e *Encoder) Encode(cl contentline.ContentLine) error {
	s, err := contentline.Format(cl)
	if err != nil {
		return err
	}
	_, err = io.WriteString(e.w, fold.Fold(s)+"\r\n")
	return err
}

// EncodeText writes a content line with a value of type TEXT. text is the
// logical text and will be escaped. params may be nil.
func (e *Encoder) EncodeText(name, text string, params *contentline.Parameters) error {
	cl, err := contentline.New(name, textvalue.Escape(text), params)
	if err != nil {
		return err
	}
	return e.Encode(cl)
}
