package main

import (
	"flag"
	"os"

	"github.com/bastiangx/katik/pkg/config"
)

// options holds the parsed command line.
type options struct {
	showVersion   bool
	debug         bool
	cli           bool
	http          bool
	noFilter      bool
	rebuildConfig bool
	dictPath      string
	configPath    string
	addr          string
	limit         int
	minPrefix     int
	maxPrefix     int
}

// parseFlags parses args with defaults taken from cfg. It exits on a bad
// command line, like the flag package does for os.Args.
func parseFlags(args []string, cfg *config.Config) (*options, *flag.FlagSet) {
	o := &options{}
	fs := flag.NewFlagSet(AppName, flag.ExitOnError)
	fs.SetOutput(os.Stderr)

	fs.BoolVar(&o.showVersion, "version", false, "Show current version")
	fs.StringVar(&o.dictPath, "dict", "", "Dictionary source file (default from config)")
	fs.StringVar(&o.configPath, "config", "", "Path to config.toml")
	fs.BoolVar(&o.debug, "d", false, "Toggle debug mode")
	fs.BoolVar(&o.cli, "c", false, "Run CLI -- useful for testing and debugging")
	fs.BoolVar(&o.http, "http", false, "Serve HTTP instead of IPC")
	fs.StringVar(&o.addr, "addr", cfg.HTTP.Addr, "HTTP listen address (default from config)")
	fs.IntVar(&o.limit, "limit", cfg.CLI.DefaultLimit, "Number of suggestions to return")
	fs.IntVar(&o.minPrefix, "prmin", cfg.CLI.DefaultMinLen, "Minimum prefix length for suggestions (1 < n <= prmax)")
	fs.IntVar(&o.maxPrefix, "prmax", cfg.CLI.DefaultMaxLen, "Maximum prefix length for suggestions")
	fs.BoolVar(&o.noFilter, "no-filter", cfg.CLI.DefaultNoFilter, "Disable input filtering (DBG only)")
	fs.BoolVar(&o.rebuildConfig, "rebuild-config", false, "Overwrite the default config.toml with builtin defaults and exit")

	_ = fs.Parse(args)
	return o, fs
}

// apply copies the flags that were set explicitly onto cfg, so they win over
// the config file.
func (o *options) apply(fs *flag.FlagSet, cfg *config.Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "limit":
			cfg.CLI.DefaultLimit = o.limit
		case "prmin":
			cfg.CLI.DefaultMinLen = o.minPrefix
			cfg.Server.MinPrefix = o.minPrefix
		case "prmax":
			cfg.CLI.DefaultMaxLen = o.maxPrefix
			cfg.Server.MaxPrefix = o.maxPrefix
		case "no-filter":
			cfg.CLI.DefaultNoFilter = o.noFilter
			cfg.Server.EnableFilter = !o.noFilter
		case "dict":
			cfg.Dict.Path = o.dictPath
		case "addr":
			cfg.HTTP.Addr = o.addr
		}
	})
}
