package response

import (
	"bytes"
	"io"
)

// A Message is one complete HTTP response.
type Message struct {
	StatusLine string
	Header     Header
	Body       []byte
}

// Head returns the status line and header block, including the empty
// line that terminates it.
func (msg *Message) Head() []byte {
	var buf bytes.Buffer
	msg.head(&buf)
	return buf.Bytes()
}

func (msg *Message) head(buf *bytes.Buffer) {
	buf.WriteString(msg.StatusLine)
	buf.WriteString("\r\n")
	msg.Header.dump(buf)
	buf.WriteString("\r\n")
}

func (msg *Message) Bytes() []byte {
	var buf bytes.Buffer
	buf.Grow(256 + len(msg.Body))
	msg.head(&buf)
	buf.Write(msg.Body)
	return buf.Bytes()
}

// WriteTo writes the serialized message to w with a single Write.
func (msg *Message) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(msg.Bytes())
	return int64(n), err
}

// StripBody drops the body but keeps Content-Length as it was, which
// is how a HEAD response describes the entity it omits.
func (msg *Message) StripBody() {
	msg.Body = nil
}
