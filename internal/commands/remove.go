package commands

import (
	"context"
	"fmt"
	"strings"
)

func init() {
	Register(&RemoveCmd{})
}

// RemoveCmd implements the remove command.
type RemoveCmd struct{}

func (c *RemoveCmd) Name() string      { return "remove" }
func (c *RemoveCmd) Aliases() []string { return []string{"delete"} }
func (c *RemoveCmd) Synopsis() string  { return "Remove a todo" }
func (c *RemoveCmd) Usage() string     { return "remove <title>" }

// Run deletes the first todo with the given title.
func (c *RemoveCmd) Run(ctx context.Context, env *Env, args []string) error {
	if len(args) < 1 || strings.TrimSpace(args[0]) == "" {
		return ErrUsage
	}

	if err := env.Store.RemoveItem(ctx, args[0]); err != nil {
		return err
	}

	fmt.Fprintln(env.Out, "Deleted task.")
	return nil
}
