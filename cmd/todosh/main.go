// Package main is the entry point for the todosh CLI.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todosh/internal/backend/gtasks"
	"todosh/internal/backend/sqlite"
	"todosh/internal/cli"
	"todosh/internal/config"
	"todosh/internal/exitcode"
	"todosh/internal/logging"
	"todosh/internal/store"

	// Import the command implementations to register them via init()
	_ "todosh/internal/commands"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configDir string
		backend   string
		listName  string
		dbPath    string
		quiet     bool
		debug     bool
	)

	fs := flag.NewFlagSet("todosh", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.StringVar(&configDir, "config", "", "config directory (default: XDG config dir)")
	fs.StringVar(&backend, "backend", "", "storage backend: sqlite or gtasks")
	fs.StringVar(&listName, "list", "", "Google Tasks list title")
	fs.StringVar(&dbPath, "db", "", "SQLite database path")
	fs.BoolVar(&quiet, "quiet", false, "suppress the startup banner")
	fs.BoolVar(&debug, "debug", false, "print debug logs to stderr")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitcode.Success
		}
		return exitcode.UserError
	}

	cfg, err := config.Load(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitcode.AuthError
	}

	cfg.Apply(config.Overrides{
		Backend: backend,
		List:    listName,
		DB:      dbPath,
		Quiet:   quiet,
		Debug:   debug,
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitcode.AuthError
	}
	if err := logging.Setup(cfg.LogLevel, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitcode.AuthError
	}

	// Cancel on interrupt so a hung network call cannot trap the shell.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	var st store.Store
	switch cfg.Backend {
	case config.BackendGTasks:
		creds, err := gtasks.Authorize(ctx, cfg.OAuthClientPath(), cfg.TokenPath(), os.Stderr)
		if err != nil {
			if errors.Is(err, gtasks.ErrNoOAuthClient) {
				fmt.Fprintf(os.Stderr, "error: %v\n\n%s\n", err, gtasks.SetupInstructions(cfg.Dir))
			} else {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
			return exitcode.AuthError
		}
		st, err = gtasks.New(ctx, creds, gtasks.Config{
			ListName: cfg.List,
			Policy:   cfg.EmptyPolicy(),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return exitcode.BackendError
		}
	default:
		if err := cfg.EnsureDir(); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return exitcode.AuthError
		}
		st, err = sqlite.Open(cfg.DB, cfg.EmptyPolicy())
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return exitcode.BackendError
		}
	}
	defer st.Close()

	sh := cli.New(st, cfg.Quiet)
	if err := sh.Run(ctx, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitcode.UserError
	}
	return exitcode.Success
}
