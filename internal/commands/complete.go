package commands

import (
	"context"
	"fmt"
	"strings"
)

func init() {
	Register(&CompleteCmd{})
}

// CompleteCmd implements the complete command.
type CompleteCmd struct{}

func (c *CompleteCmd) Name() string      { return "complete" }
func (c *CompleteCmd) Aliases() []string { return nil }
func (c *CompleteCmd) Synopsis() string  { return "Mark a todo done" }
func (c *CompleteCmd) Usage() string     { return "complete <title>" }

// Run marks the first todo with the given title as done. Completing an
// already-done todo is a no-op.
func (c *CompleteCmd) Run(ctx context.Context, env *Env, args []string) error {
	if len(args) < 1 || strings.TrimSpace(args[0]) == "" {
		return ErrUsage
	}

	if err := env.Store.CompleteItem(ctx, args[0]); err != nil {
		return err
	}

	fmt.Fprintln(env.Out, "Completed task.")
	return nil
}
