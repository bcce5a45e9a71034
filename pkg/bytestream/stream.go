package bytestream

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"sync"
)

// A Stream is a single writer, single reader byte stream of request
// text. Reads
// block until data is written or the stream is closed; after Close
// the remaining data is drained and then io.EOF is returned.
type Stream struct {
	buf *bytes.Buffer

	isClosed bool

	mu *sync.Mutex
	cv *sync.Cond
}

func New() *Stream {
	var st Stream
	st.buf = new(bytes.Buffer)
	st.mu = new(sync.Mutex)
	st.cv = sync.NewCond(st.mu)
	return &st
}

func (st *Stream) Close() error {
	st.mu.Lock()
	st.isClosed = true
	st.mu.Unlock()
	st.cv.Broadcast()
	return nil
}

func (st *Stream) Read(data []byte) (int, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for !st.isClosed && st.buf.Len() == 0 {
		st.cv.Wait()
	}
	if st.buf.Len() > 0 {
		return st.buf.Read(data)
	}
	return 0, io.EOF
}

func (st *Stream) Write(data []byte) (int, error) {
	st.mu.Lock()
	if st.isClosed {
		st.mu.Unlock()
		return 0, io.ErrClosedPipe
	}
	n, err := st.buf.Write(data)
	st.mu.Unlock()
	st.cv.Broadcast()
	return n, err
}

// Len is the number of octets written but not yet read.
func (st *Stream) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.buf.Len()
}

// WriteLine writes line with its end-of-line marker, bare LF or CRLF,
// replaced by CRLF. The line becomes readable all at once.
func (st *Stream) WriteLine(line string) error {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	_, err := st.Write([]byte(line + "\r\n"))
	return err
}

// CopyLines frames every line of rd with WriteLine and closes the
// stream when rd is exhausted. A final line without a terminator is
// framed too.
func (st *Stream) CopyLines(rd io.Reader) error {
	defer st.Close()
	sc := bufio.NewScanner(rd)
	for sc.Scan() {
		if err := st.WriteLine(sc.Text()); err != nil {
			return err
		}
	}
	return sc.Err()
}
