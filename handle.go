package main

import (
	"errors"
	"net"

	"httpd/session"
	"httpd/transport"
)

// A Server runs one session per accepted connection.
type Server struct {
	Config   session.Config
	MaxConns int

	// Use io_uring for socket I/O where available.
	Uring bool
}

var (
	ErrMaxConns          = errors.New("-max-conns must be at least 1")
	ErrUringIdleDeadline = errors.New("-idle-timeout is not supported with -uring")
)

// Check rejects settings the server cannot honour. io_uring
// connections have no read deadline, so an idle timeout would never
// fire on them.
func (srv *Server) Check() error {
	if srv.MaxConns < 1 {
		return ErrMaxConns
	}
	if srv.Uring && srv.Config.IdleTimeout > 0 {
		return ErrUringIdleDeadline
	}
	return nil
}

func (srv *Server) wrap(conn net.Conn) transport.Conn {
	if tc, ok := conn.(*net.TCPConn); ok && srv.Uring {
		uc, err := transport.NewUringConn(tc)
		if err == nil {
			return uc
		}
		srv.Config.Log.Error(conn.RemoteAddr().String(), err)
	}
	return transport.Wrap(conn)
}

// HandleConnection serves conn until the client goes away and closes
// it. The error is nil when the client closed the connection cleanly.
func (srv *Server) HandleConnection(conn net.Conn) error {
	peer := conn.RemoteAddr().String()
	c := srv.wrap(conn)
	defer c.Close()

	sess := session.NewSession(c, c, srv.Config)
	sess.Peer = peer
	return sess.Serve()
}

// Serve accepts connections until the listener is closed. At most
// MaxConns sessions run at once; further connections wait in the
// listen backlog.
func (srv *Server) Serve(listener net.Listener) error {
	maxConns := srv.MaxConns
	if maxConns < 1 {
		maxConns = 1
	}
	semaphore := make(chan struct{}, maxConns)

	for {
		semaphore <- struct{}{}
		conn, err := listener.Accept()
		if err != nil {
			<-semaphore
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				continue
			}
			return err
		}
		go func() {
			defer func() { <-semaphore }()
			srv.HandleConnection(conn)
		}()
	}
}
