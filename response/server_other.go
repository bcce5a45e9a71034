//go:build !unix

package response

// ServerName identifies this host as "hostname (GOOS)" where uname(2)
// is unavailable.
func ServerName() string {
	return fallbackServerName()
}
