package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	cases := []struct {
		Line string
		Exp  Request
	}{
		{"GET /index.html HTTP/1.1", Request{"GET", "/index.html", "HTTP/1.1"}},
		{"GET /index.html HTTP/1.0\r\n", Request{"GET", "/index.html", "HTTP/1.0"}},
		{"HEAD  /a.gif\tHTTP/1.1", Request{"HEAD", "/a.gif", "HTTP/1.1"}},
		{"GET /page.html HTTP/0.9", Request{"GET", "/page.html", "HTTP/0.9"}},
	}
	for _, c := range cases {
		t.Run(c.Line, func(t *testing.T) {
			req, err := Parse(c.Line)
			assert.NoError(t, err)
			assert.Equal(t, c.Exp, *req)
		})
	}
}

func TestParse_Error(t *testing.T) {
	cases := []string{
		"",
		"GET",
		"GET /index.html",
		"GET /index.html HTTP/1.1 extra",
		" \r\n",
	}
	for _, c := range cases {
		t.Run(c, func(t *testing.T) {
			req, err := Parse(c)
			assert.ErrorIs(t, err, ErrBadRequest)
			assert.Nil(t, req)
		})
	}
}

func TestCheckVersion(t *testing.T) {
	cases := []struct {
		Version string
		Ok      bool
	}{
		{"HTTP/1.0", true},
		{"HTTP/1.1", true},
		{"HTTP/0.9", false},
		{"HTTP/2.0", false},
		{"http/1.1", false},
	}
	for _, c := range cases {
		t.Run(c.Version, func(t *testing.T) {
			req := Request{Method: "GET", Target: "/", Version: c.Version}
			err := req.CheckVersion()
			if c.Ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrUnsupportedVersion)
			}
		})
	}
}

func TestLocalName(t *testing.T) {
	cases := []struct {
		Target string
		Exp    string
	}{
		{"/index.html", "index.html"},
		{"index.html", "index.html"},
		{"/", DefaultName},
		{"", DefaultName},
		{"/img/cat.gif", "img/cat.gif"},
		{"//double.html", "/double.html"},
		{"/my%20page.html", "my page.html"},
		{"/search.html?q=go", "search.html"},
	}
	for _, c := range cases {
		t.Run(c.Target, func(t *testing.T) {
			req := Request{Method: "GET", Target: c.Target, Version: Version11}
			name, err := req.LocalName()
			assert.NoError(t, err)
			assert.Equal(t, c.Exp, name)
		})
	}
}

func TestLocalName_BadEscape(t *testing.T) {
	req := Request{Method: "GET", Target: "/bad%zz.html", Version: Version11}
	_, err := req.LocalName()
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestRetrieval(t *testing.T) {
	assert.True(t, (&Request{Method: "GET"}).Retrieval())
	assert.True(t, (&Request{Method: "HEAD"}).Retrieval())
	assert.False(t, (&Request{Method: "POST"}).Retrieval())
	assert.False(t, (&Request{Method: "get"}).Retrieval())
}
