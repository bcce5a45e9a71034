//go:build linux

package transport

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUringConn(t *testing.T) {
	server, client := setupTcpPair(t)
	conn, err := NewUringConn(server)
	var te *Error
	if errors.As(err, &te) && te.Kind == UringInitFailure {
		t.Skipf("io_uring unavailable: %v", err)
	}
	require.NoError(t, err)
	defer conn.Close()

	go client.Write([]byte("GET /a.gif HTTP/1.0\r\n\r\n"))
	buf := make([]byte, 64)
	n, err := io.ReadAtLeast(conn, buf, 23)
	assert.NoError(t, err)
	assert.Equal(t, "GET /a.gif HTTP/1.0\r\n\r\n", string(buf[:n]))

	_, err = conn.Write([]byte("HTTP/1.0 200 OK\r\n"))
	assert.NoError(t, err)
	reply := make([]byte, 17)
	_, err = io.ReadFull(client, reply)
	assert.NoError(t, err)
	assert.Equal(t, "HTTP/1.0 200 OK\r\n", string(reply))

	client.Close()
	_, err = conn.Read(buf)
	assert.Equal(t, io.EOF, err)
}
