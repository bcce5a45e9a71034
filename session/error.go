package session

import (
	"fmt"

	"httpd/response"
)

// ErrorKind classifies why a request was refused. Every kind is
// answered with an error response and the session carries on.
type ErrorKind int

const (
	KindUnset ErrorKind = iota - 1
	KindBadRequest
	KindUnsupportedVersion
	KindNotImplemented
	KindUnsupportedContentType
	KindNotFound
	KindInternal
)

func (k ErrorKind) String() string {
	switch k {
	case KindBadRequest:
		return "Bad request"
	case KindUnsupportedVersion:
		return "Unsupported HTTP Type"
	case KindNotImplemented:
		return "Unsupported method"
	case KindUnsupportedContentType:
		return "Unsupported Media Type"
	case KindNotFound:
		return "Unable to open file"
	case KindInternal:
		return "Unable to read file"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

func (k ErrorKind) Status() response.Status {
	switch k {
	case KindBadRequest:
		return response.StatusBadRequest
	case KindUnsupportedVersion:
		return response.StatusHTTPVersionNotSupported
	case KindNotImplemented:
		return response.StatusNotImplemented
	case KindUnsupportedContentType:
		return response.StatusUnsupportedMediaType
	case KindNotFound:
		return response.StatusNotFound
	}
	return response.StatusInternalServerError
}

// A RequestError describes one refused request.
type RequestError struct {
	Kind   ErrorKind
	Reason string
}

func (re *RequestError) Error() string {
	return fmt.Sprintf("%s: %s", re.Kind, re.Reason)
}

func refuse(kind ErrorKind, err error) *RequestError {
	return &RequestError{Kind: kind, Reason: err.Error()}
}
