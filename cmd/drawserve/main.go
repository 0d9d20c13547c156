// Drawserve listens for 9P2000 connections and exposes a single
// draw compositor of the requested size under /data, /ctl and
// /refresh.
//
// Usage:
//
//	drawserve [-a addr] [-size WxH]
package main

import (
	"flag"
	"fmt"
	"log"
	"net"

	"github.com/elizafairlady/drawcompositor/transport"
)

var (
	addr = flag.String("a", ":5640", "listen address")
	size = flag.String("size", "800x600", "display size as WxH")
)

func main() {
	flag.Parse()
	var w, h int
	if _, err := fmt.Sscanf(*size, "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
		log.Fatalf("invalid -size %q", *size)
	}

	ln, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("drawserve: listening on %s, display %dx%d", *addr, w, h)

	srv := transport.NewServer(w, h)
	if err := srv.Serve(ln); err != nil {
		log.Fatal(err)
	}
}
