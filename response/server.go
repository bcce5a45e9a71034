package response

import (
	"os"
	"runtime"
)

func fallbackServerName() string {
	host, err := os.Hostname()
	if err != nil {
		host = "localhost"
	}
	return host + " (" + runtime.GOOS + ")"
}
