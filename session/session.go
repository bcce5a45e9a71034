package session

import (
	"errors"
	"io"
	"time"

	"httpd/content"
	"httpd/histReader"
	"httpd/request"
	"httpd/resource"
	"httpd/response"
)

// Config holds what a session needs beyond its connection. It can be
// shared by any number of sessions.
type Config struct {
	Resolver *resource.Resolver
	Composer *response.Composer
	Classify content.Classifier
	Log      *Logger

	// Read deadline armed before each request when the incoming
	// stream supports one; zero waits forever.
	IdleTimeout time.Duration
}

// Most raw octets kept per request for the echo.
const transcriptLimit = 4 * request.MaxLineLength

type deadliner interface {
	SetReadDeadline(time.Time) error
}

// A Session serves the sequence of requests arriving on one
// connection. It does not close the connection.
type Session struct {
	Incoming io.Reader
	Outgoing io.Writer

	// Peer names the client in diagnostics.
	Peer string

	cfg    Config
	hist   *histReader.HistReader
	reader *request.Reader
	state  State
}

func NewSession(rd io.Reader, wr io.Writer, cfg Config) *Session {
	if cfg.Classify == nil {
		cfg.Classify = content.Classify
	}
	limit := 0
	if cfg.Log != nil && cfg.Log.Echo {
		limit = transcriptLimit
	}
	hist := histReader.NewHistReader(rd, limit)
	return &Session{
		Incoming: rd,
		Outgoing: wr,
		Peer:     "-",
		cfg:      cfg,
		hist:     hist,
		reader:   request.NewReader(hist),
		state:    StateReading,
	}
}

func (sess *Session) State() State {
	return sess.state
}

// Serve answers requests until the client closes the connection,
// which returns nil, or until the connection fails, which returns
// the transport error.
func (sess *Session) Serve() error {
	for sess.state == StateReading {
		if err := sess.Next(); err != nil {
			sess.cfg.Log.Error(sess.Peer, err)
			return err
		}
	}
	return nil
}

// Next reads and answers a single request.
func (sess *Session) Next() error {
	if sess.cfg.IdleTimeout > 0 {
		if d, ok := sess.Incoming.(deadliner); ok {
			d.SetReadDeadline(time.Now().Add(sess.cfg.IdleTimeout))
		}
	}

	line, err := sess.reader.ReadRequest()
	if line != "" || sess.hist.Len() > 0 {
		raw := ""
		if sess.hist.Len() > 0 {
			raw = sess.hist.Dump()
		}
		sess.cfg.Log.Request(sess.Peer, line, raw)
	}
	sess.hist.Clear()
	switch {
	case errors.Is(err, request.ErrTruncatedInput):
		sess.state = sess.state.Closed()
		return nil
	case errors.Is(err, request.ErrLineTooLong):
		return sess.send(sess.refuse(request.Version11, refuse(KindBadRequest, err)))
	case err != nil:
		sess.state = sess.state.Closed()
		return err
	}
	return sess.send(sess.answer(line))
}

func (sess *Session) answer(line string) *response.Message {
	req, err := request.Parse(line)
	if err != nil {
		// No version token can be trusted on a malformed line.
		return sess.refuse(request.Version11, refuse(KindBadRequest, err))
	}

	var msg *response.Message
	kind, res, rerr := sess.lookup(req)
	if rerr != nil {
		msg = sess.refuse(req.Version, rerr)
	} else {
		msg = sess.cfg.Composer.Success(req.Version, kind, res)
	}
	if req.Method == request.MethodHead {
		msg.StripBody()
	}
	return msg
}

// lookup runs the per-request checks in order: version, method,
// name, content type and finally the file itself.
func (sess *Session) lookup(req *request.Request) (content.Kind, *resource.Resource, *RequestError) {
	if err := req.CheckVersion(); err != nil {
		return content.Unsupported, nil, refuse(KindUnsupportedVersion, err)
	}
	if !req.Retrieval() {
		return content.Unsupported, nil, &RequestError{KindNotImplemented, req.Method}
	}
	name, err := req.LocalName()
	if err != nil {
		return content.Unsupported, nil, refuse(KindBadRequest, err)
	}
	kind := sess.cfg.Classify(name)
	if kind == content.Unsupported {
		return kind, nil, &RequestError{KindUnsupportedContentType, name}
	}
	res, err := sess.cfg.Resolver.Resolve(name)
	switch {
	case errors.Is(err, resource.ErrNotFound):
		return kind, nil, refuse(KindNotFound, err)
	case err != nil:
		return kind, nil, refuse(KindInternal, err)
	}
	return kind, res, nil
}

func (sess *Session) refuse(version string, rerr *RequestError) *response.Message {
	sess.cfg.Log.Error(sess.Peer, rerr)
	return sess.cfg.Composer.Error(version, rerr.Kind.Status())
}

func (sess *Session) send(msg *response.Message) error {
	sess.cfg.Log.Response(sess.Peer, msg)
	if _, err := msg.WriteTo(sess.Outgoing); err != nil {
		sess.state = sess.state.Closed()
		return err
	}
	sess.state = sess.state.Answered()
	return nil
}
