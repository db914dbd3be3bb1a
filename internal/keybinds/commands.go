package keybinds

// Command is a discrete user intent produced by the key decoder. The
// rest of the application consumes commands only and stays agnostic to
// physical key bindings.
type Command string

// Context represents the input context in which bindings are active.
type Context string

const (
	ContextGlobal   Context = "global"   // available everywhere
	ContextNormal   Context = "normal"   // navigating, not editing
	ContextDropdown Context = "dropdown" // method dropdown overlay
	ContextHelp     Context = "help"     // help overlay
	ContextEdit     Context = "edit"     // any text-editing mode
)

const (
	// Global commands
	CmdQuit       Command = "quit"
	CmdHelpToggle Command = "help_toggle"

	// Cross-section navigation
	CmdSectionNext Command = "section_next"
	CmdSectionPrev Command = "section_prev"
	CmdSubViewPrev Command = "sub_view_prev"
	CmdSubViewNext Command = "sub_view_next"

	// Editing
	CmdEnterEdit   Command = "enter_edit"   // edit the focused sub-view
	CmdEditURL     Command = "edit_url"     // jump straight to URL editing
	CmdSwitchField Command = "switch_field" // key <-> value in the entry form
	CmdConfirm     Command = "confirm"
	CmdCancel      Command = "cancel"

	// Method dropdown
	CmdDropdownOpen Command = "dropdown_open"
	CmdDropdownUp   Command = "dropdown_up"
	CmdDropdownDown Command = "dropdown_down"

	// Requests
	CmdSend     Command = "send"
	CmdCopyBody Command = "copy_body"

	// Tabs
	CmdNewTab   Command = "new_tab"
	CmdCloseTab Command = "close_tab"
	CmdNextTab  Command = "next_tab"
	CmdPrevTab  Command = "prev_tab"

	// Scrolling
	CmdScrollUp   Command = "scroll_up"
	CmdScrollDown Command = "scroll_down"
)
