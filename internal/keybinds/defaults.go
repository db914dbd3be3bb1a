package keybinds

// NewDefaultRegistry creates a registry with the default keybindings.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerNormalBindings(r)
	registerDropdownBindings(r)
	registerHelpBindings(r)
	registerEditBindings(r)

	return r
}

func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", CmdQuit)
}

func registerNormalBindings(r *Registry) {
	r.Register(ContextNormal, "q", CmdQuit)
	r.Register(ContextNormal, "?", CmdHelpToggle)

	r.Register(ContextNormal, "ctrl+j", CmdSectionNext)
	r.Register(ContextNormal, "ctrl+k", CmdSectionPrev)
	r.RegisterMultiple(ContextNormal, []string{"h", "left"}, CmdSubViewPrev)
	r.RegisterMultiple(ContextNormal, []string{"l", "right"}, CmdSubViewNext)

	r.Register(ContextNormal, "i", CmdEnterEdit)
	r.Register(ContextNormal, "u", CmdEditURL)
	r.Register(ContextNormal, "m", CmdDropdownOpen)
	r.Register(ContextNormal, "enter", CmdSend)
	r.Register(ContextNormal, "y", CmdCopyBody)

	r.Register(ContextNormal, "t", CmdNewTab)
	r.Register(ContextNormal, "x", CmdCloseTab)
	r.Register(ContextNormal, "tab", CmdNextTab)
	r.Register(ContextNormal, "shift+tab", CmdPrevTab)

	r.RegisterMultiple(ContextNormal, []string{"j", "down"}, CmdScrollDown)
	r.RegisterMultiple(ContextNormal, []string{"k", "up"}, CmdScrollUp)
}

func registerDropdownBindings(r *Registry) {
	r.RegisterMultiple(ContextDropdown, []string{"up", "k"}, CmdDropdownUp)
	r.RegisterMultiple(ContextDropdown, []string{"down", "j"}, CmdDropdownDown)
	r.Register(ContextDropdown, "enter", CmdConfirm)
	r.Register(ContextDropdown, "esc", CmdCancel)
}

func registerHelpBindings(r *Registry) {
	r.RegisterMultiple(ContextHelp, []string{"?", "esc", "q"}, CmdHelpToggle)
	r.RegisterMultiple(ContextHelp, []string{"j", "down"}, CmdScrollDown)
	r.RegisterMultiple(ContextHelp, []string{"k", "up"}, CmdScrollUp)
}

func registerEditBindings(r *Registry) {
	r.Register(ContextEdit, "enter", CmdConfirm)
	r.Register(ContextEdit, "esc", CmdCancel)
	r.Register(ContextEdit, "tab", CmdSwitchField)
}
