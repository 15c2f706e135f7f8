package commands

import (
	"context"

	"todosh/internal/output"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return nil }
func (c *ListCmd) Synopsis() string  { return "Show all todos" }
func (c *ListCmd) Usage() string     { return "list" }

// Run prints every todo inside the list frame, completed ones included.
// Whether an empty store prints an empty frame or an error depends on
// the store's empty-list policy.
func (c *ListCmd) Run(ctx context.Context, env *Env, args []string) error {
	items, err := env.Store.ListItems(ctx)
	if err != nil {
		return err
	}

	output.FormatList(env.Out, items)
	return nil
}
