//go:build linux

package transport

import (
	"io"
	"net"
	"os"

	"github.com/iceber/iouring-go"
)

// A UringConn drives a TCP socket through io_uring submissions instead
// of the runtime netpoller. Read deadlines are not supported.
type UringConn struct {
	iour   *iouring.IOURing
	file   *os.File
	fd     int
	remote net.Addr
}

// NewUringConn takes ownership of conn. The socket is duplicated and
// the original net.TCPConn closed.
func NewUringConn(conn *net.TCPConn) (*UringConn, error) {
	iour, err := iouring.New(8)
	if err != nil {
		return nil, newError(UringInitFailure, err)
	}
	file, err := conn.File()
	if err != nil {
		iour.Close()
		return nil, newError(UringInitFailure, err)
	}
	remote := conn.RemoteAddr()
	conn.Close()
	return &UringConn{
		iour:   iour,
		file:   file,
		fd:     int(file.Fd()),
		remote: remote,
	}, nil
}

func (c *UringConn) Read(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	ch := make(chan iouring.Result, 1)
	if _, err := c.iour.SubmitRequest(iouring.Recv(c.fd, buf, 0), ch); err != nil {
		return 0, newError(UringSubmitFailure, err)
	}
	result := <-ch
	n, err := result.ReturnInt()
	if err != nil {
		return 0, classify(err, SocketReadFailure)
	}
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

func (c *UringConn) Write(buf []byte) (int, error) {
	written := 0
	for written < len(buf) {
		ch := make(chan iouring.Result, 1)
		if _, err := c.iour.SubmitRequest(iouring.Send(c.fd, buf[written:], 0), ch); err != nil {
			return written, newError(UringSubmitFailure, err)
		}
		result := <-ch
		n, err := result.ReturnInt()
		if err != nil {
			return written, classify(err, SocketWriteFailure)
		}
		if n <= 0 {
			return written, newError(ConnectionClosed, nil)
		}
		written += n
	}
	return written, nil
}

func (c *UringConn) Close() error {
	c.iour.Close()
	if err := c.file.Close(); err != nil {
		return newError(SocketCloseFailure, err)
	}
	return nil
}

func (c *UringConn) RemoteAddr() net.Addr {
	return c.remote
}
