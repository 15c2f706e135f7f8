package commands

import "context"

func init() {
	Register(&QuitCmd{})
}

// QuitCmd implements the quit command.
type QuitCmd struct{}

func (c *QuitCmd) Name() string      { return "quit" }
func (c *QuitCmd) Aliases() []string { return []string{"exit"} }
func (c *QuitCmd) Synopsis() string  { return "Leave the shell" }
func (c *QuitCmd) Usage() string     { return "quit" }

func (c *QuitCmd) Run(ctx context.Context, env *Env, args []string) error {
	return ErrExit
}
