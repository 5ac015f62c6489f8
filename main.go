package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/llehouerou/movements/internal/config"
	"github.com/llehouerou/movements/internal/errmsg"
	"github.com/llehouerou/movements/internal/logging"
)

const usage = `Usage:
  movements [flags] [scan] [SOURCE...]
  movements parse [-composer NAME]... TITLE...

Flags:
`

// options are the global flags; zero values defer to the config file.
type options struct {
	configPath string
	dbPath     string
	workers    int
	writeTags  bool
	verbose    bool
	width      int
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var opts options
	fs := flag.NewFlagSet("movements", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "config file (default: XDG config dir, then ./config.toml)")
	fs.StringVar(&opts.dbPath, "db", "", "results database path")
	fs.IntVar(&opts.workers, "workers", 0, "albums segmented in parallel")
	fs.BoolVar(&opts.writeTags, "write-tags", false, "write work/movement tags to files")
	fs.BoolVar(&opts.verbose, "v", false, "debug logging to stderr")
	fs.IntVar(&opts.width, "width", 0, "report width in columns")
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cmd, rest := "scan", fs.Args()
	if len(rest) > 0 && (rest[0] == "scan" || rest[0] == "parse") {
		cmd, rest = rest[0], rest[1:]
	}

	if cmd == "parse" {
		level := zerolog.WarnLevel
		if opts.verbose {
			level = zerolog.DebugLevel
		}
		closer, err := logging.Init(logging.Options{Level: level, Console: stderr})
		if err != nil {
			fmt.Fprintln(stderr, errmsg.Format(errmsg.OpLoggingInit, err))
			return 1
		}
		defer closer.Close()

		if err := runParse(rest, opts, stdout, stderr); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return 0
			}
			fmt.Fprintln(stderr, errmsg.Format(errmsg.OpTitlesParse, err))
			return 1
		}
		return 0
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintln(stderr, errmsg.Format(errmsg.OpConfigLoad, err))
		return 1
	}
	applyFlags(cfg, opts)
	if len(rest) > 0 {
		cfg.LibrarySources = rest
	}

	closer, err := initLogging(cfg, opts, stderr)
	if err != nil {
		fmt.Fprintln(stderr, errmsg.Format(errmsg.OpLoggingInit, err))
		return 1
	}
	defer closer.Close()

	if err := runScan(ctx, cfg, opts, stdout, stderr); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

// applyFlags overrides config values with explicitly set flags.
func applyFlags(cfg *config.Config, opts options) {
	if opts.dbPath != "" {
		cfg.Database = opts.dbPath
	}
	if opts.workers > 0 {
		cfg.Workers = opts.workers
	}
	if opts.writeTags {
		cfg.WriteTags = true
	}
	if opts.verbose {
		cfg.Log.Level = zerolog.DebugLevel.String()
		cfg.Log.Console = true
	}
}

func initLogging(cfg *config.Config, opts options, stderr io.Writer) (io.Closer, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	file, err := cfg.LogPath()
	if err != nil {
		return nil, err
	}
	logOpts := logging.Options{File: file, Level: level}
	if cfg.Log.Console || opts.verbose {
		logOpts.Console = stderr
	}
	return logging.Init(logOpts)
}
