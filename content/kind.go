package content

import (
	"path"
	"strings"
)

//go:generate stringer -type=Kind -linecomment

type Kind uint8

const (
	Unsupported Kind = iota // UNSUPPORTED
	HTML                    // HTML
	GIF                     // GIF
	JPEG                    // JPEG
)

// ContentType returns the media type sent in the Content-Type header,
// or "" for Unsupported.
func (k Kind) ContentType() string {
	switch k {
	case HTML:
		return "text/html"
	case GIF:
		return "image/gif"
	case JPEG:
		return "image/jpeg"
	}
	return ""
}

// A Classifier maps a file name to the Kind it is served as.
type Classifier func(name string) Kind

// Checked in order; the first match wins.
var extensions = []struct {
	ext  string
	kind Kind
}{
	{".html", HTML},
	{".gif", GIF},
	{".jpeg", JPEG},
	{".jpg", JPEG},
}

// Classify looks for each known extension anywhere in name, so
// "a.html.gif" is HTML and "x.gif/y" is GIF.
func Classify(name string) Kind {
	for _, e := range extensions {
		if strings.Contains(name, e.ext) {
			return e.kind
		}
	}
	return Unsupported
}

// ClassifySuffix only considers the final extension of name,
// ignoring case.
func ClassifySuffix(name string) Kind {
	ext := strings.ToLower(path.Ext(name))
	for _, e := range extensions {
		if ext == e.ext {
			return e.kind
		}
	}
	return Unsupported
}
