package session

import (
	"fmt"
	"io"
	"sync"

	"httpd/response"
)

// A Logger writes the diagnostic transcript: every request and
// response when Echo is set, and one line per error regardless.
// It may be shared by concurrent sessions. A nil *Logger is silent.
type Logger struct {
	mu   sync.Mutex
	out  io.Writer
	Echo bool
}

func NewLogger(out io.Writer, echo bool) *Logger {
	return &Logger{out: out, Echo: echo}
}

func (l *Logger) Printf(format string, args ...any) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, format, args...)
}

// Request echoes one request line, followed by the raw octets read
// while waiting for it, if any.
func (l *Logger) Request(peer, line, raw string) {
	if l == nil || !l.Echo {
		return
	}
	if raw == "" {
		l.Printf("\x1b[33mReceive Request\x1b[0m %s %s\n", peer, line)
		return
	}
	l.Printf("\x1b[33mReceive Request\x1b[0m %s %s\n%s\n", peer, line, raw)
}

func (l *Logger) Response(peer string, msg *response.Message) {
	if l == nil || !l.Echo {
		return
	}
	l.Printf("\x1b[31mSend Response\x1b[0m %s\n%s(%d body octets)\n", peer, msg.Head(), len(msg.Body))
}

func (l *Logger) Error(peer string, err error) {
	l.Printf("\x1b[32mERROR\x1b[0m %s %s\n", peer, err)
}
