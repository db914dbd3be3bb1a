package keybinds

// Registry manages key-to-command mappings and matching.
type Registry struct {
	// bindings maps context -> key -> command
	bindings map[Context]map[string]Command
}

// NewRegistry creates an empty keybinding registry.
func NewRegistry() *Registry {
	return &Registry{
		bindings: make(map[Context]map[string]Command),
	}
}

// Register adds a keybinding to the registry.
func (r *Registry) Register(context Context, key string, cmd Command) {
	if r.bindings[context] == nil {
		r.bindings[context] = make(map[string]Command)
	}
	r.bindings[context][key] = cmd
}

// RegisterMultiple registers several keys for the same command.
func (r *Registry) RegisterMultiple(context Context, keys []string, cmd Command) {
	for _, key := range keys {
		r.Register(context, key, cmd)
	}
}

// Match resolves a key to a command in the given context. The specific
// context is checked first, then the global context.
func (r *Registry) Match(context Context, key string) (Command, bool) {
	if contextBindings, ok := r.bindings[context]; ok {
		if cmd, ok := contextBindings[key]; ok {
			return cmd, true
		}
	}
	if globalBindings, ok := r.bindings[ContextGlobal]; ok {
		if cmd, ok := globalBindings[key]; ok {
			return cmd, true
		}
	}
	return "", false
}
