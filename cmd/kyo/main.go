// Package main is the entry point for the kyo editor.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/avadine/kyo/internal/app"
	"github.com/avadine/kyo/internal/config"
	"github.com/avadine/kyo/internal/store"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		logPath     string
		logLevel    string
		showVersion bool
	)
	flag.StringVar(&configPath, "config", "", "path to configuration file")
	flag.StringVar(&logPath, "log", "", "append logs to this file")
	flag.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "show version information")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: kyo [flags] [file]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("kyo %s\n", version)
		return 0
	}
	if flag.NArg() > 1 {
		flag.Usage()
		return 2
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		fmt.Fprintln(os.Stderr, "kyo: standard input is not a terminal")
		return 1
	}

	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "kyo: %v\n", err)
		return 1
	}

	logger := app.NullLogger
	if logPath != "" {
		f, err := app.OpenLogFile(logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "kyo: %v\n", err)
			return 1
		}
		defer f.Close()
		logger = app.NewLogger(f, app.ParseLogLevel(logLevel))
	}

	var hist *store.Store
	if cfg.HistoryFile != "" {
		hist, err = store.Open(cfg.HistoryFile)
		if err != nil {
			// History is a convenience; run without it.
			logger.Warn("history disabled: %v", err)
		} else {
			defer hist.Close()
		}
	}

	session, err := app.New(app.Options{
		Path:   flag.Arg(0),
		Config: cfg,
		Store:  hist,
		Logger: logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "kyo: %v\n", err)
		return 1
	}
	if err := session.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "kyo: %v\n", err)
		return 1
	}
	return 0
}
