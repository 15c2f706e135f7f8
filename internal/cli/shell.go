// Package cli implements the interactive todo shell.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/shlex"
	"github.com/rs/zerolog"

	"todosh/internal/commands"
	"todosh/internal/logging"
	"todosh/internal/store"
)

// Banner is printed once at startup unless quiet mode is on.
const Banner = "TODO CLI"

// Shell reads commands line by line and dispatches them against the
// store until quit or end of input.
type Shell struct {
	registry *commands.Registry
	store    store.Store
	quiet    bool
	log      zerolog.Logger
}

// New creates a shell over the given store using the default command
// registry.
func New(st store.Store, quiet bool) *Shell {
	return NewWithRegistry(commands.DefaultRegistry, st, quiet)
}

// NewWithRegistry creates a shell with an explicit registry.
func NewWithRegistry(registry *commands.Registry, st store.Store, quiet bool) *Shell {
	return &Shell{
		registry: registry,
		store:    st,
		quiet:    quiet,
		log:      logging.Component("shell"),
	}
}

// Run reads lines from in until quit, end of input, or a read failure.
// Lines are tokenized with shell-style quoting, so titles with spaces
// work when quoted. Command dialogue goes to out, error messages to
// errOut; a failed command never ends the loop.
func (s *Shell) Run(ctx context.Context, in io.Reader, out, errOut io.Writer) error {
	if !s.quiet {
		fmt.Fprintln(out, Banner)
	}

	env := &commands.Env{Store: s.store, Out: out, Err: errOut}

	// Todo content is unbounded, so lines are read without a length cap.
	reader := bufio.NewReader(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return readErr
		}

		if quit := s.eval(ctx, env, line, out, errOut); quit {
			return nil
		}
		if readErr != nil {
			return nil
		}
	}
}

// eval tokenizes and dispatches a single input line, reporting whether
// the shell should stop.
func (s *Shell) eval(ctx context.Context, env *commands.Env, line string, out, errOut io.Writer) bool {
	args, err := shlex.Split(strings.TrimRight(line, "\r\n"))
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return false
	}
	if len(args) == 0 {
		return false
	}

	cmd, ok := s.registry.Find(args[0])
	if !ok {
		fmt.Fprintln(out, "Unknown command")
		return false
	}

	err = cmd.Run(ctx, env, args[1:])
	switch {
	case errors.Is(err, commands.ErrExit):
		return true
	case errors.Is(err, commands.ErrUsage):
		fmt.Fprintf(out, "Usage: %s\n", cmd.Usage())
	case err != nil:
		s.log.Debug().Err(err).Str("command", cmd.Name()).Msg("command failed")
		fmt.Fprintf(errOut, "error: %v\n", err)
	}
	return false
}
