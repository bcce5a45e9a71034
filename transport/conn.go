package transport

import (
	"errors"
	"io"
	"net"
	"os"
	"syscall"
	"time"
)

// Conn is the duplex stream a session runs on.
type Conn interface {
	io.ReadWriteCloser
}

// NetConn adapts a net.Conn, classifying its errors. A clean close
// by the peer is still reported as a bare io.EOF.
type NetConn struct {
	conn net.Conn
}

func Wrap(conn net.Conn) *NetConn {
	return &NetConn{conn: conn}
}

func classify(err error, fallback ErrorKind) *Error {
	var ne net.Error
	switch {
	case errors.Is(err, os.ErrDeadlineExceeded), errors.As(err, &ne) && ne.Timeout():
		return newError(Timeout, err)
	case errors.Is(err, syscall.EPIPE), errors.Is(err, syscall.ECONNRESET), errors.Is(err, net.ErrClosed), errors.Is(err, io.ErrClosedPipe):
		return newError(ConnectionClosed, err)
	}
	return newError(fallback, err)
}

func (c *NetConn) Read(buf []byte) (int, error) {
	n, err := c.conn.Read(buf)
	if err != nil && err != io.EOF {
		return n, classify(err, SocketReadFailure)
	}
	return n, err
}

func (c *NetConn) Write(buf []byte) (int, error) {
	n, err := c.conn.Write(buf)
	if err != nil {
		return n, classify(err, SocketWriteFailure)
	}
	return n, nil
}

func (c *NetConn) Close() error {
	if err := c.conn.Close(); err != nil {
		return newError(SocketCloseFailure, err)
	}
	return nil
}

func (c *NetConn) SetReadDeadline(t time.Time) error {
	return c.conn.SetReadDeadline(t)
}

func (c *NetConn) RemoteAddr() net.Addr {
	return c.conn.RemoteAddr()
}
