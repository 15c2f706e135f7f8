package commands

import (
	"context"
	"fmt"
	"strings"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return nil }
func (c *AddCmd) Synopsis() string  { return "Add a todo" }
func (c *AddCmd) Usage() string     { return "add <title> <content>" }

// Run creates a new todo. The first argument is the title; everything
// after it joins into the content, so quoting the title keeps multiword
// titles intact.
func (c *AddCmd) Run(ctx context.Context, env *Env, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}

	title := args[0]
	if strings.TrimSpace(title) == "" {
		return ErrUsage
	}
	content := strings.Join(args[1:], " ")

	if err := env.Store.AddItem(ctx, title, content); err != nil {
		return err
	}

	fmt.Fprintln(env.Out, "Added task.")
	return nil
}
