package request

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

// MaxLineLength bounds a single request or header line, terminator
// included.
const MaxLineLength = 8192

var (
	// ErrTruncatedInput is returned when the stream ends before any
	// byte of a new request arrived. Sessions treat it as a clean close.
	ErrTruncatedInput = errors.New("truncated input")
	ErrLineTooLong    = errors.New("line too long")
)

// A Reader pulls request lines off a connection. Bytes read past the
// current line stay buffered in the Reader for the next request.
type Reader struct {
	buf *bufio.Reader

	// The header block of the last request has not been consumed yet.
	pendingHeaders bool
}

func NewReader(rd io.Reader) *Reader {
	return &Reader{
		buf: bufio.NewReaderSize(rd, 4096),
	}
}

// readLine returns the next line with its terminator removed. At the
// end of the stream it returns whatever partial line is left together
// with io.EOF.
func (r *Reader) readLine() ([]byte, error) {
	var line []byte
	for {
		frag, err := r.buf.ReadSlice('\n')
		if len(line)+len(frag) > MaxLineLength {
			if err == bufio.ErrBufferFull {
				r.discardLine()
			}
			return nil, ErrLineTooLong
		}
		line = append(line, frag...)
		switch err {
		case nil:
			return trimEOL(line), nil
		case bufio.ErrBufferFull:
			continue
		default:
			return trimEOL(line), err
		}
	}
}

func (r *Reader) discardLine() {
	for {
		_, err := r.buf.ReadSlice('\n')
		if err != bufio.ErrBufferFull {
			return
		}
	}
}

func trimEOL(line []byte) []byte {
	line = bytes.TrimSuffix(line, []byte("\n"))
	return bytes.TrimSuffix(line, []byte("\r"))
}

// skipHeaders consumes lines up to and including the empty line that
// ends a header block.
func (r *Reader) skipHeaders() error {
	for {
		line, err := r.readLine()
		if err == ErrLineTooLong {
			continue
		}
		if err != nil {
			return err
		}
		if len(line) == 0 {
			return nil
		}
	}
}

// ReadRequest returns the next request line. The header block that
// follows it is consumed on the next call, so a response can be sent
// as soon as the request line is known.
func (r *Reader) ReadRequest() (string, error) {
	if r.pendingHeaders {
		r.pendingHeaders = false
		err := r.skipHeaders()
		if err == io.EOF {
			return "", ErrTruncatedInput
		}
		if err != nil {
			return "", err
		}
	}
	for {
		line, err := r.readLine()
		switch {
		case err == io.EOF:
			if len(line) == 0 {
				return "", ErrTruncatedInput
			}
			return string(line), nil
		case err == ErrLineTooLong:
			r.pendingHeaders = true
			return "", err
		case err != nil:
			return "", err
		}
		// Empty lines ahead of a request line are ignored.
		if len(line) == 0 {
			continue
		}
		r.pendingHeaders = true
		return string(line), nil
	}
}
