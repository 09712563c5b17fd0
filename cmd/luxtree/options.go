package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/appengine-ltd/luxtree/internal/config"
	"github.com/appengine-ltd/luxtree/internal/session"
	"github.com/appengine-ltd/luxtree/internal/tree"
)

// version, commit, date are injected at build time with -ldflags -X.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type options struct {
	showVersion bool
	configPath  string
	writeConfig bool
	seed        int64
	seedSet     bool
	state       string
	topper      string
	terminal    bool
	logLevel    string
	logFile     string
}

// launcher starts a client for an initialised session.
type launcher func(o options, sess *session.Session, log *slog.Logger) error

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("luxtree", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&o.showVersion, "version", false, "print version and exit")
	fs.StringVar(&o.configPath, "config", "", "config file (default: user config dir)/luxtree/config.toml")
	fs.BoolVar(&o.writeConfig, "write-config", false, "write the effective config file and exit")
	fs.Int64Var(&o.seed, "seed", 0, "scene seed, overrides the config file")
	fs.StringVar(&o.state, "state", "", "initial state: chaos or formed")
	fs.StringVar(&o.topper, "topper", "", "star visibility: discrete or progress")
	fs.BoolVar(&o.terminal, "terminal", false, "render in the terminal instead of a window")
	fs.StringVar(&o.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	fs.StringVar(&o.logFile, "log-file", "", "append logs to this file")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			o.seedSet = true
		}
	})
	return o, nil
}

// newLogger writes text logs to the log file, or to stderr for the window
// client. The terminal client owns the screen, so without a file it logs
// nowhere.
func newLogger(o options, stderr io.Writer) (*slog.Logger, func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	out := stderr
	closer := func() {}
	switch {
	case o.logFile != "":
		f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		out = f
		closer = func() { _ = f.Close() }
	case o.terminal:
		out = io.Discard
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})), closer, nil
}

// resolveClient settles which client will run before anything logs. Without
// a window client the terminal one always runs.
func resolveClient(o options, hasWindow bool) (options, bool) {
	if hasWindow || o.terminal {
		return o, false
	}
	o.terminal = true
	return o, true
}

func configPath(o options) (string, error) {
	if o.configPath != "" {
		return o.configPath, nil
	}
	return config.DefaultPath()
}

// loadFile applies the command-line overrides on top of the file and the
// environment.
func loadFile(o options) (config.File, error) {
	path, err := configPath(o)
	if err != nil {
		return config.File{}, err
	}
	f, err := config.Load(path)
	if err != nil {
		return config.File{}, err
	}
	if o.seedSet {
		f.Seed = o.seed
	}
	if o.state != "" {
		f.State = o.state
	}
	if o.topper != "" {
		f.Topper = o.topper
	}
	return f, nil
}

func loadConfig(o options) (tree.Config, error) {
	f, err := loadFile(o)
	if err != nil {
		return tree.Config{}, err
	}
	return f.Tree()
}

// pipeCommands feeds one command per line from r into the session until
// r is exhausted.
func pipeCommands(r io.Reader, sess *session.Session, log *slog.Logger) {
	p := sess.Parser()
	sink := sess.Commands()
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		sink.EnqueueIntent(p.Parse(line))
	}
	if err := sc.Err(); err != nil {
		log.Warn("command pipe closed", "err", err)
	}
}

func stdinIsPipe() bool {
	return !term.IsTerminal(int(os.Stdin.Fd()))
}

func run(args []string, launch launcher) int {
	o, err := parseFlags(args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}
	if o.showVersion {
		fmt.Printf("luxtree %s (%s) %s\n", version, commit, date)
		return 0
	}

	if o.writeConfig {
		if err := writeConfig(o); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}

	o, forced := resolveClient(o, windowClient)
	log, closeLog, err := newLogger(o, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	defer closeLog()
	if forced {
		log.Info("built without cgo, using the terminal client")
	}

	cfg, err := loadConfig(o)
	if err != nil {
		log.Error("load config", "err", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	sess, err := session.New(cfg, log)
	if err != nil {
		log.Error("generate scene", "err", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := launch(o, sess, log); err != nil {
		log.Error("client exited", "err", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func writeConfig(o options) error {
	f, err := loadFile(o)
	if err != nil {
		return err
	}
	if _, err := f.Tree(); err != nil {
		return err
	}
	path, err := configPath(o)
	if err != nil {
		return err
	}
	if err := config.Save(path, f); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
