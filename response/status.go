package response

import "strconv"

type Status struct {
	Code   int
	Reason string
}

var (
	StatusOK                      = Status{200, "OK"}
	StatusBadRequest              = Status{400, "Bad Request"}
	StatusNotFound                = Status{404, "Not Found"}
	StatusUnsupportedMediaType    = Status{415, "Unsupported Media Type"}
	StatusInternalServerError     = Status{500, "Internal Server Error"}
	StatusNotImplemented          = Status{501, "Not Implemented"}
	StatusHTTPVersionNotSupported = Status{505, "HTTP Version Not Supported"}
)

// String returns the code and reason phrase, e.g. "404 Not Found".
// Error responses use it as their body too.
func (st Status) String() string {
	return strconv.Itoa(st.Code) + " " + st.Reason
}
