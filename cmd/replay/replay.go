// Command replay feeds request text from stdin through a session and
// prints the raw responses on stdout. Each input line is sent with a
// CRLF terminator, so
//
//	printf 'GET /index.html HTTP/1.1\n\n' | replay -root public
//
// shows exactly what a client would receive.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"httpd/content"
	"httpd/pkg/bytestream"
	"httpd/resource"
	"httpd/response"
	"httpd/session"
)

func main() {
	root := flag.String("root", ".", "directory to serve files from")
	strict := flag.Bool("strict-ext", false, "classify content by the final extension only")
	quiet := flag.Bool("quiet", false, "only print error diagnostics")
	flag.Parse()

	rs, err := resource.Open(*root)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: ", err)
		os.Exit(1)
	}
	defer rs.Close()

	cfg := session.Config{
		Resolver: rs,
		Composer: response.NewComposer(response.ServerName()),
		Classify: content.Classify,
		Log:      session.NewLogger(os.Stderr, !*quiet),
	}
	if *strict {
		cfg.Classify = content.ClassifySuffix
	}

	in := bytestream.New()
	out := bufio.NewWriter(os.Stdout)
	doneC := make(chan error)
	go func() {
		doneC <- session.NewSession(in, out, cfg).Serve()
	}()

	if err := in.CopyLines(os.Stdin); err != nil {
		fmt.Fprintln(os.Stderr, "Error: ", err)
	}

	err = <-doneC
	out.Flush()
	if err != nil {
		os.Exit(1)
	}
}
