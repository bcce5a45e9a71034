package request

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
)

func TestReader_Sequence(t *testing.T) {
	stream := "GET /index.html HTTP/1.1\r\nHost: localhost\r\nAccept: */*\r\n\r\n" +
		"GET /missing.gif HTTP/1.0\r\n\r\n"

	rd := NewReader(strings.NewReader(stream))

	line, err := rd.ReadRequest()
	assert.NoError(t, err)
	assert.Equal(t, "GET /index.html HTTP/1.1", line)

	line, err = rd.ReadRequest()
	assert.NoError(t, err)
	assert.Equal(t, "GET /missing.gif HTTP/1.0", line)

	_, err = rd.ReadRequest()
	assert.Equal(t, ErrTruncatedInput, err)
}

func TestReader_OneByteAtATime(t *testing.T) {
	stream := "GET /a.html HTTP/1.1\r\nHost: x\r\n\r\nGET /b.html HTTP/1.1\r\n\r\n"
	rd := NewReader(iotest.OneByteReader(strings.NewReader(stream)))

	line, err := rd.ReadRequest()
	assert.NoError(t, err)
	assert.Equal(t, "GET /a.html HTTP/1.1", line)

	line, err = rd.ReadRequest()
	assert.NoError(t, err)
	assert.Equal(t, "GET /b.html HTTP/1.1", line)
}

func TestReader_EmptyStream(t *testing.T) {
	rd := NewReader(strings.NewReader(""))
	_, err := rd.ReadRequest()
	assert.Equal(t, ErrTruncatedInput, err)
}

func TestReader_BareNewlines(t *testing.T) {
	rd := NewReader(strings.NewReader("\r\n\nGET /x.jpg HTTP/1.0\nHost: y\n\n"))
	line, err := rd.ReadRequest()
	assert.NoError(t, err)
	assert.Equal(t, "GET /x.jpg HTTP/1.0", line)

	_, err = rd.ReadRequest()
	assert.Equal(t, ErrTruncatedInput, err)
}

func TestReader_PartialFinalLine(t *testing.T) {
	rd := NewReader(strings.NewReader("GET /x.html HTTP/1.1"))
	line, err := rd.ReadRequest()
	assert.NoError(t, err)
	assert.Equal(t, "GET /x.html HTTP/1.1", line)

	_, err = rd.ReadRequest()
	assert.Equal(t, ErrTruncatedInput, err)
}

func TestReader_EOFInsideHeaders(t *testing.T) {
	rd := NewReader(strings.NewReader("GET /x.html HTTP/1.1\r\nHost: y\r\n"))
	line, err := rd.ReadRequest()
	assert.NoError(t, err)
	assert.Equal(t, "GET /x.html HTTP/1.1", line)

	_, err = rd.ReadRequest()
	assert.Equal(t, ErrTruncatedInput, err)
}

func TestReader_LineTooLong(t *testing.T) {
	long := "GET /" + strings.Repeat("a", MaxLineLength) + ".html HTTP/1.1\r\n\r\n"
	rd := NewReader(strings.NewReader(long + "GET /ok.html HTTP/1.1\r\n\r\n"))

	_, err := rd.ReadRequest()
	assert.Equal(t, ErrLineTooLong, err)

	line, err := rd.ReadRequest()
	assert.NoError(t, err)
	assert.Equal(t, "GET /ok.html HTTP/1.1", line)
}

func TestReader_ReadError(t *testing.T) {
	boom := errors.New("boom")
	rd := NewReader(io.MultiReader(strings.NewReader("GET /x"), iotest.ErrReader(boom)))
	_, err := rd.ReadRequest()
	assert.ErrorIs(t, err, boom)
}
