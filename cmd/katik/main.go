// Copyright 2025 The Katik Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the katik completion server and CLI [DBG] application.

katik completes partially typed Klingon words. It reads a dictionary in the
zrajm text format, decomposes the input into morphemes along the grammar
tracks of the language (prefix, stem and ordered suffix classes) and suggests
the dictionary entries that could come next.

# Usage

Start the msgpack IPC server with the dictionary next to the binary:

	katik

Use a custom dictionary and enable debug mode:

	katik -dict /path/to/dict.zdb -d

Run in CLI mode for interactive testing:

	katik -c -limit 10

Serve completions over HTTP on the configured address, or on another one:

	katik -http
	katik -http -addr :9000

# Configuration

Runtime configuration is read from ~/.config/katik/config.toml, created with
defaults when missing:

	[server]
	max_limit = 64
	min_prefix = 1
	max_prefix = 60
	enable_filter = true

	[dict]
	path = "dict.zdb"
	cache_size = 4096

	[http]
	addr = ":8000"

Flags given on the command line override the file.

# IPC Protocol

The server reads msgpack requests from stdin and writes one msgpack response
per request to stdout:

	{"id": "req1", "p": "Qapla'", "l": 20}
	{"id": "s1", "action": "stats"}

See package server for the message layouts.

# Command Line Flags

	-dict string
	    Dictionary source file (default from config)
	-config string
	    Config file path
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-http
	    Serve HTTP instead of IPC
	-addr string
	    HTTP listen address (default from config)
	-limit int
	    Number of suggestions to return
	-prmin int
	    Minimum prefix length for suggestions
	-prmax int
	    Maximum prefix length for suggestions
	-no-filter
	    Disable input filtering for debugging
	-rebuild-config
	    Overwrite the default config file with builtin defaults
*/
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/katik/internal/cli"
	"github.com/bastiangx/katik/internal/utils"
	"github.com/bastiangx/katik/pkg/config"
	"github.com/bastiangx/katik/pkg/dictionary"
	"github.com/bastiangx/katik/pkg/grammar"
	"github.com/bastiangx/katik/pkg/server"
	"github.com/bastiangx/katik/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

const (
	Version = "0.3.0"
	AppName = "katik"
	gh      = "https://github.com/bastiangx/katik"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires the dictionary, the completer and the selected front end.
func main() {
	sigHandler()
	opts, fs := parseFlags(os.Args[1:], config.DefaultConfig())

	if opts.showVersion {
		printVersion()
		os.Exit(0)
	}

	if opts.debug {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	if opts.rebuildConfig {
		if err := config.RebuildConfigFile(); err != nil {
			log.Fatalf("Failed to rebuild config: %v", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", config.GetActiveConfigPath(""))
		os.Exit(0)
	}

	appConfig, activeConfig, err := config.LoadConfigWithPriority(opts.configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activeConfig))
	opts.apply(fs, appConfig)

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}
	resolvedDict := pathResolver.ResolveDictionary(appConfig.Dict.Path)
	log.Debugf("Using dictionary at: %s", resolvedDict)

	dict, err := dictionary.LoadFile(resolvedDict)
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}
	completer := suggest.NewCompleter(dict, grammar.Tracks(), appConfig.Dict.CacheSize)
	log.Debug("Completer init done")

	if opts.cli {
		log.SetReportTimestamp(false)
		showStartupInfo(resolvedDict, dict.Len())
		inputHandler := cli.NewInputHandler(completer,
			appConfig.CLI.DefaultMinLen, appConfig.CLI.DefaultMaxLen,
			appConfig.CLI.DefaultLimit, appConfig.CLI.DefaultNoFilter)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	if opts.http {
		if !opts.debug {
			gin.SetMode(gin.ReleaseMode)
		}
		showStartupInfo(resolvedDict, dict.Len())
		if err := server.NewHTTPServer(completer, appConfig).Run(appConfig.HTTP.Addr); err != nil {
			log.Fatalf("HTTP server error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	showStartupInfo(resolvedDict, dict.Len())
	ipc := server.NewServer(completer, appConfig)
	ipc.SetConfigPath(activeConfig)
	if err := ipc.Start(); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ katik ] Klingon word completion")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process on stderr.
func showStartupInfo(dictPath string, words int) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	fmt.Fprintln(os.Stderr, "=======")
	fmt.Fprintln(os.Stderr, " katik ")
	fmt.Fprintln(os.Stderr, "=======")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("dictionary: ( %s )", dictPath)
	log.Infof("Loaded %d words.", words)
	log.Info("status: ready")
	fmt.Fprintln(os.Stderr, "=======")

	log.SetLevel(currentLevel)
}
