package request

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const (
	Version10 = "HTTP/1.0"
	Version11 = "HTTP/1.1"

	MethodGet  = "GET"
	MethodHead = "HEAD"

	// Served when the target names the root itself.
	DefaultName = "index.html"
)

var (
	ErrBadRequest         = errors.New("malformed request line")
	ErrUnsupportedVersion = errors.New("unsupported protocol version")
)

// A Request is the parsed request line of one HTTP request.
// Headers and bodies are never examined.
type Request struct {
	Method  string
	Target  string
	Version string
}

func isSeparator(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

// Parse splits a raw request line into its method, target and
// version tokens. Anything other than exactly three tokens is
// reported as ErrBadRequest.
func Parse(line string) (*Request, error) {
	fields := strings.FieldsFunc(line, isSeparator)
	if len(fields) != 3 {
		return nil, fmt.Errorf("%w: expected 3 tokens, got %d", ErrBadRequest, len(fields))
	}
	return &Request{
		Method:  fields[0],
		Target:  fields[1],
		Version: fields[2],
	}, nil
}

// CheckVersion returns ErrUnsupportedVersion unless the request
// speaks HTTP/1.0 or HTTP/1.1.
func (req *Request) CheckVersion() error {
	switch req.Version {
	case Version10, Version11:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedVersion, req.Version)
}

// Retrieval reports whether the method is one this server answers.
func (req *Request) Retrieval() bool {
	return req.Method == MethodGet || req.Method == MethodHead
}

// LocalName maps the target to a file name relative to the served
// directory: the query is dropped, one leading '/' is stripped and
// percent-escapes are decoded.
func (req *Request) LocalName() (string, error) {
	name := req.Target
	if i := strings.IndexByte(name, '?'); i >= 0 {
		name = name[:i]
	}
	name = strings.TrimPrefix(name, "/")
	name, err := url.PathUnescape(name)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	if name == "" {
		return DefaultName, nil
	}
	return name, nil
}

func (req *Request) String() string {
	return fmt.Sprintf("%s %s %s", req.Method, req.Target, req.Version)
}
