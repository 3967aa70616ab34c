package main

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"syscall"

	"github.com/davecgh/go-spew/spew"

	"github.com/hailystevens/unresolver"
	"github.com/hailystevens/unresolver/config"
)

func must(comment string, err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, comment, err)
		os.Exit(1)
	}
}

func main() {
	flagAddr := flag.String("addr", "", "listen address (default :8000)")
	flagDir := flag.String("dir", ".", "directory with the web interface files")
	flagConfig := flag.String("config", "", "path to a yaml config file")
	flag.Parse()

	conf := config.Default()
	if *flagConfig != "" {
		loaded, errConf := config.Get(*flagConfig)
		must("config error:", errConf)
		conf = loaded
	}
	if *flagAddr != "" {
		conf.Addr = *flagAddr
	}
	spew.Dump(conf)

	s, errService := unresolver.NewService(conf)
	must("could not start service:", errService)

	listener, errListen := net.Listen("tcp", conf.Addr)
	if errListen != nil {
		if errors.Is(errListen, syscall.EADDRINUSE) {
			fmt.Fprintln(os.Stderr, "Error: address", conf.Addr, "is already in use.")
			fmt.Fprintln(os.Stderr, "Try a different address or stop the other server.")
			os.Exit(1)
		}
		must("could not listen:", errListen)
	}

	fmt.Printf("Server running at http://localhost%s/\n", conf.Addr)
	fmt.Println("Serving from:", *flagDir)
	fmt.Println("Press Ctrl+C to stop the server")
	must("server error:", http.Serve(listener, s.Handler(*flagDir)))
}
