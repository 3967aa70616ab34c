package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hailystevens/unresolver"
	"github.com/hailystevens/unresolver/config"
	"github.com/hailystevens/unresolver/reports"
)

func must(comment string, err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, comment, err)
		os.Exit(1)
	}
}

func main() {
	flagNoExternal := flag.Bool("no-external", false, "skip checking external URLs")
	flagTimeout := flag.Int("timeout", 0, "timeout for external URL checks in seconds (default 5)")
	flagShowValid := flag.Bool("show-valid", false, "show valid links in addition to broken ones")
	flagJSON := flag.Bool("json", false, "output results as JSON")
	flagSiteRoot := flag.String("site-root", "", "root directory for absolute local references")
	flagIndexFiles := flag.String("index-files", "", "comma separated index file names (default index.html,index.htm)")
	flagConcurrency := flag.Int("concurrency", 0, "parallel external probes (default 8)")
	flagConfig := flag.String("config", "", "path to a yaml config file")
	flagRespectRobots := flag.Bool("respect-robots", false, "skip external URLs disallowed by robots.txt")
	flagAgent := flag.String("agent", "", "user agent for external probes")
	flag.Parse()

	if len(flag.Args()) != 1 {
		fmt.Fprintln(os.Stderr, "usage:", os.Args[0], "[flags] path/to/html/or/dir")
		flag.PrintDefaults()
		os.Exit(1)
	}
	scanPath := flag.Arg(0)

	conf := config.Default()
	if *flagConfig != "" {
		loaded, errConf := config.Get(*flagConfig)
		must("config error:", errConf)
		conf = loaded
	}
	if *flagNoExternal {
		conf.CheckExternal = false
	}
	if *flagTimeout != 0 {
		conf.Timeout = *flagTimeout
	}
	if *flagSiteRoot != "" {
		conf.SiteRoot = *flagSiteRoot
	}
	if *flagIndexFiles != "" {
		conf.SetIndexFiles(*flagIndexFiles)
	}
	if *flagConcurrency != 0 {
		conf.Concurrency = *flagConcurrency
	}
	if *flagRespectRobots {
		conf.RespectRobots = true
	}
	if *flagAgent != "" {
		conf.Agent = *flagAgent
	}
	must("config error:", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	checker := unresolver.NewChecker(conf)
	run, errRun := checker.Scan(ctx, scanPath)
	if errRun != nil {
		if errors.Is(errRun, unresolver.ErrNoDocuments) {
			fmt.Fprintln(os.Stderr, "No HTML files found in:", scanPath)
		} else {
			fmt.Fprintln(os.Stderr, "error:", errRun)
		}
		os.Exit(1)
	}

	if *flagJSON {
		must("write error:", reports.WriteJSON(os.Stdout, run))
	} else {
		reports.WriteText(os.Stdout, run, *flagShowValid)
	}

	if run.HasBroken() {
		os.Exit(1)
	}
}
