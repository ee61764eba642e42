package analyzers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// LineReason says why a line was skipped.
type LineReason string

const (
	ReasonNoMatch     LineReason = "no_match"
	ReasonBadEncoding LineReason = "bad_encoding"
	ReasonTooLong     LineReason = "too_long"
)

// LineError is a recoverable failure of a single line. The pass skips the
// line and continues.
type LineError struct {
	Line   int64
	Reason LineReason
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// lineReader yields the lines of r one at a time without their terminator.
// Lines longer than maxLineBytes are consumed and reported as too long
// instead of being buffered. maxLineBytes <= 0 disables the limit.
type lineReader struct {
	r            *bufio.Reader
	maxLineBytes int
	lineNumber   int64
}

func newLineReader(r io.Reader, maxLineBytes int) *lineReader {
	return &lineReader{r: bufio.NewReader(r), maxLineBytes: maxLineBytes}
}

// Next returns the next line. It returns io.EOF once the input is exhausted,
// a *LineError for a line that must be skipped, and any other error as is.
func (lr *lineReader) Next() (string, error) {
	var (
		buf     []byte
		size    int
		tooLong bool
		started bool
	)

	for {
		chunk, isPrefix, err := lr.r.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && started {
				break
			}
			return "", err
		}
		started = true

		size += len(chunk)
		switch {
		case tooLong:
		case lr.maxLineBytes > 0 && size > lr.maxLineBytes:
			tooLong = true
			buf = nil
		default:
			// ReadLine reuses its buffer; append copies.
			buf = append(buf, chunk...)
		}

		if !isPrefix {
			break
		}
	}

	lr.lineNumber++
	if tooLong {
		return "", &LineError{Line: lr.lineNumber, Reason: ReasonTooLong}
	}
	if !utf8.Valid(buf) {
		return "", &LineError{Line: lr.lineNumber, Reason: ReasonBadEncoding}
	}

	return strings.TrimSuffix(string(buf), "\r"), nil
}

// LineNumber is the number of lines returned so far, skipped ones included.
func (lr *lineReader) LineNumber() int64 {
	return lr.lineNumber
}
