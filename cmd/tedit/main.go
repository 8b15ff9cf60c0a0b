package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/muesli/termenv"

	"github.com/iw2rmb/tedit"
	"github.com/iw2rmb/tedit/buffer"
	"github.com/iw2rmb/tedit/editor"
	"github.com/iw2rmb/tedit/internal/clipboard"
	"github.com/iw2rmb/tedit/internal/config"
	"github.com/iw2rmb/tedit/internal/fileio"
	"github.com/iw2rmb/tedit/internal/session"
	"github.com/iw2rmb/tedit/internal/terminal"
	"github.com/iw2rmb/tedit/screen"
)

var errUsage = errors.New("usage: tedit [-config path] [-log path] FILE")

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "tedit:", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("tedit", flag.ContinueOnError)
	configPath := fs.String("config", "", "config file (default $XDG_CONFIG_HOME/tedit/config.toml)")
	logPath := fs.String("log", "", "append debug log to this file")
	showVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *showVersion {
		fmt.Println(tedit.Banner())
		return nil
	}
	if fs.NArg() != 1 {
		return errUsage
	}
	path := fs.Arg(0)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLog(*logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	content, err := fileio.Load(path)
	if err != nil {
		return err
	}
	logger.Printf("load %s: %d rows, delimiter %q", path, content.Len(), content.Delimiter())

	edCfg := cfg.Editor()
	edCfg.Clipboard = clipboard.New(logger)
	state := editor.New(content, edCfg)

	return edit(path, cfg, state, logger)
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Default(), nil
		}
		path = p
	}
	return config.Load(path)
}

func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return log.New(f, "tedit ", log.LstdFlags|log.Lmicroseconds), func() { _ = f.Close() }, nil
}

// edit owns the terminal for the lifetime of the session. The terminal is
// restored on every exit path, panics included.
func edit(path string, cfg config.Config, state *editor.State, logger *log.Logger) (err error) {
	w := screen.NewWriter(os.Stdout, termenv.EnvColorProfile(), cfg.Theme)
	guard, err := terminal.Enter(int(os.Stdin.Fd()), w.Output(), terminal.Options{
		Mouse: cfg.Mouse,
		Title: "tedit - " + filepath.Base(path),
	})
	if err != nil {
		return err
	}
	defer func() {
		rerr := guard.Restore()
		ferr := w.Flush()
		if r := recover(); r != nil {
			logger.Printf("panic: %v", r)
			panic(r)
		}
		if err == nil {
			err = errors.Join(rerr, ferr)
		}
	}()

	outFD := int(os.Stdout.Fd())
	sess := session.New(state, session.Options{
		Input: os.Stdin,
		Sink:  w,
		Size:  func() (int, int, error) { return terminal.Size(outFD) },
		Save: func(c *buffer.Content) error {
			if err := fileio.Save(path, c); err != nil {
				return err
			}
			logger.Printf("save %s", path)
			return nil
		},
		Logger: logger,
	})
	return sess.Run()
}
