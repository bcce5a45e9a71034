package response

import (
	"net/http"
	"strconv"
	"time"

	"httpd/content"
	"httpd/resource"
)

// A Composer builds response messages. Now is called once per message
// for the Date header.
type Composer struct {
	Server string
	Now    func() time.Time
}

func NewComposer(server string) *Composer {
	return &Composer{
		Server: server,
		Now:    time.Now,
	}
}

// HTTPDate formats t as an RFC 1123 date in GMT.
func HTTPDate(t time.Time) string {
	return t.UTC().Format(http.TimeFormat)
}

func statusLine(version string, st Status) string {
	return version + " " + st.String()
}

// Success builds a 200 response carrying res verbatim.
func (c *Composer) Success(version string, kind content.Kind, res *resource.Resource) *Message {
	msg := &Message{
		StatusLine: statusLine(version, StatusOK),
		Body:       res.Data,
	}
	msg.Header.Put("Date", HTTPDate(c.Now()))
	msg.Header.Put("Server", c.Server)
	msg.Header.Put("Last-Modified", HTTPDate(res.ModTime))
	msg.Header.Put("Content-Length", strconv.Itoa(len(res.Data)))
	msg.Header.Put("Content-Type", kind.ContentType())
	msg.Header.Put("Connection", "keep-alive")
	return msg
}

// Error builds an error response whose body is the status text.
func (c *Composer) Error(version string, st Status) *Message {
	body := []byte(st.String())
	msg := &Message{
		StatusLine: statusLine(version, st),
		Body:       body,
	}
	msg.Header.Put("Date", HTTPDate(c.Now()))
	msg.Header.Put("Server", c.Server)
	msg.Header.Put("Content-Length", strconv.Itoa(len(body)))
	msg.Header.Put("Connection", "keep-alive")
	return msg
}
