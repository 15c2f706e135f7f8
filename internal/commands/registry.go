package commands

import (
	"fmt"
	"sync"
)

// Registry maps command names and aliases to their implementations. The
// shell resolves the first token of every input line against it.
type Registry struct {
	mu   sync.RWMutex
	cmds map[string]Command
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]Command)}
}

// Register adds a command under its name and every alias. A name or
// alias that is already taken is an error.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := append([]string{c.Name()}, c.Aliases()...)
	for _, name := range names {
		if _, taken := r.cmds[name]; taken {
			return fmt.Errorf("command %q already registered", name)
		}
	}
	for _, name := range names {
		r.cmds[name] = c
	}
	return nil
}

// Find resolves a name or alias to its command.
func (r *Registry) Find(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.cmds[name]
	return cmd, ok
}

// DefaultRegistry holds the commands registered at package init.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry and panics on
// conflict; command names are fixed at compile time.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
