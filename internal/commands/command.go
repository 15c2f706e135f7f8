// Package commands provides the shell command interface and implementations.
package commands

import (
	"context"
	"errors"
	"io"

	"todosh/internal/store"
)

// ErrExit signals that the shell should stop reading input.
var ErrExit = errors.New("exit requested")

// ErrUsage signals that a command was invoked with bad arguments. The
// shell prints the command's usage line and keeps reading.
var ErrUsage = errors.New("bad usage")

// Env is what a command can reach during a run. Out carries the command
// dialogue; Err carries error messages.
type Env struct {
	Store store.Store
	Out   io.Writer
	Err   io.Writer
}

// Command defines the interface for shell commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// Run executes the command with the already-tokenized arguments.
	// Returning ErrExit ends the shell, ErrUsage prints the usage line;
	// any other error is printed and the shell keeps going.
	Run(ctx context.Context, env *Env, args []string) error
}
