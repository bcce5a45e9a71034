//go:build unix

package response

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// ServerName identifies this host as "nodename/release (sysname)".
func ServerName() string {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return fallbackServerName()
	}
	return fmt.Sprintf("%s/%s (%s)",
		unix.ByteSliceToString(u.Nodename[:]),
		unix.ByteSliceToString(u.Release[:]),
		unix.ByteSliceToString(u.Sysname[:]))
}
