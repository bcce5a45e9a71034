//go:build !linux

package transport

import (
	"errors"
	"net"
)

var errNoUring = errors.New("io_uring is only available on linux")

// UringConn is unavailable outside linux; NewUringConn always fails.
type UringConn struct {
	NetConn
}

func NewUringConn(conn *net.TCPConn) (*UringConn, error) {
	return nil, newError(UringInitFailure, errNoUring)
}
