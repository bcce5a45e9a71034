package response

import (
	"bytes"
	"strings"
)

type field struct {
	k string
	v string
}

// A Header is an ordered list of header fields. Fields are written in
// the order they were put.
type Header struct {
	fields []field
}

func (h *Header) Put(k, v string) {
	h.fields = append(h.fields, field{k, v})
}

// Get returns the value of the first field named k, ignoring case.
func (h *Header) Get(k string) string {
	for _, f := range h.fields {
		if strings.EqualFold(f.k, k) {
			return f.v
		}
	}
	return ""
}

func (h *Header) Names() []string {
	names := make([]string, len(h.fields))
	for i, f := range h.fields {
		names[i] = f.k
	}
	return names
}

func (h *Header) Len() int {
	return len(h.fields)
}

func (h *Header) dump(buf *bytes.Buffer) {
	for _, f := range h.fields {
		buf.WriteString(f.k)
		buf.WriteString(": ")
		buf.WriteString(f.v)
		buf.WriteString("\r\n")
	}
}
