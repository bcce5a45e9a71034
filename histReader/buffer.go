package histReader

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"unicode/utf8"
)

// A HistReader keeps a transcript of what is read through it until
// the transcript is cleared. At most limit octets are kept; the rest
// are only counted. A limit of zero records nothing.
type HistReader struct {
	rd      io.Reader
	hist    bytes.Buffer
	limit   int
	dropped int
}

func NewHistReader(rd io.Reader, limit int) *HistReader {
	return &HistReader{rd: rd, limit: limit}
}

func (hr *HistReader) Read(b []byte) (int, error) {
	n, err := hr.rd.Read(b)
	keep := min(n, hr.limit-hr.hist.Len())
	if keep > 0 {
		hr.hist.Write(b[:keep])
	} else {
		keep = 0
	}
	hr.dropped += n - keep
	return n, err
}

// Len is the number of octets kept.
func (hr *HistReader) Len() int {
	return hr.hist.Len()
}

// Dropped is the number of octets read past the limit.
func (hr *HistReader) Dropped() int {
	return hr.dropped
}

// Dump returns the transcript as text, or as a hex dump when it is
// not valid UTF-8, followed by a note of any octets past the limit.
func (hr *HistReader) Dump() string {
	data := hr.hist.Bytes()
	var out string
	if utf8.Valid(data) {
		out = string(data)
	} else {
		out = hex.Dump(data)
	}
	if hr.dropped > 0 {
		out += fmt.Sprintf("\n... (%d more octets)", hr.dropped)
	}
	return out
}

func (hr *HistReader) Clear() {
	hr.hist.Reset()
	hr.dropped = 0
}
