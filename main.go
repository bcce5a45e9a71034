package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"

	"httpd/content"
	"httpd/resource"
	"httpd/response"
	"httpd/session"
)

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR, "+format+"\n", args...)
	os.Exit(1)
}

func main() {
	root := flag.String("root", ".", "directory to serve files from")
	maxConns := flag.Int("max-conns", 10, "connections served at once")
	once := flag.Bool("once", false, "serve a single connection, then exit")
	strict := flag.Bool("strict-ext", false, "classify content by the final extension only")
	idle := flag.Duration("idle-timeout", 0, "close connections idle this long (0 waits forever)")
	uring := flag.Bool("uring", false, "drive connections through io_uring (linux only)")
	quiet := flag.Bool("quiet", false, "only print error diagnostics")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] PORT\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "ERROR, no port provided")
		flag.Usage()
		os.Exit(1)
	}
	port, err := strconv.ParseUint(flag.Arg(0), 10, 16)
	if err != nil {
		fatalf("invalid port %q", flag.Arg(0))
	}
	rs, err := resource.Open(*root)
	if err != nil {
		fatalf("opening root: %v", err)
	}
	defer rs.Close()

	classify := content.Classify
	if *strict {
		classify = content.ClassifySuffix
	}
	srv := &Server{
		Config: session.Config{
			Resolver:    rs,
			Composer:    response.NewComposer(response.ServerName()),
			Classify:    classify,
			Log:         session.NewLogger(os.Stderr, !*quiet),
			IdleTimeout: *idle,
		},
		MaxConns: *maxConns,
		Uring:    *uring,
	}
	if err := srv.Check(); err != nil {
		fatalf("%v", err)
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		fatalf("on binding: %v", err)
	}
	defer listener.Close()
	fmt.Fprintf(os.Stderr, "serving %s at http://%s\n", rs.Dir(), listener.Addr())

	if *once {
		conn, err := listener.Accept()
		if err != nil {
			fatalf("on accept: %v", err)
		}
		if err := srv.HandleConnection(conn); err != nil {
			os.Exit(1)
		}
		return
	}
	if err := srv.Serve(listener); err != nil {
		fatalf("%v", err)
	}
}
