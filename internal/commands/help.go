package commands

import (
	"context"
	"fmt"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "help" }

func (c *HelpCmd) Run(ctx context.Context, env *Env, args []string) error {
	fmt.Fprint(env.Out, helpText)
	return nil
}

const helpText = `Commands:
  add <title> <content>   Add a todo (quote the title if it has spaces)
  complete <title>        Mark a todo done
  remove <title>          Remove a todo (alias: delete)
  list                    Show all todos
  help                    Print usage
  quit                    Leave the shell (alias: exit)
`
