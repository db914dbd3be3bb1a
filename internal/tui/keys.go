package tui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"restless/internal/keybinds"
	"restless/internal/types"
)

// handleKeyPress routes key presses based on the current mode. The
// decoder in internal/keybinds translates physical keys into commands;
// anything that does not decode in an edit mode is treated as text.
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	// An inline error banner is dismissed by the next keypress. In
	// navigation and overlay modes that keypress is swallowed; in edit
	// modes it still reaches the editor, so a background failure landing
	// mid-edit never eats typed text. Quit always works.
	if m.errorMsg != "" {
		m.errorMsg = ""
		if cmd, ok := m.keys.Match(keybinds.ContextGlobal, key); ok && cmd == keybinds.CmdQuit {
			m.quitting = true
			return tea.Quit
		}
		switch m.mode {
		case ModeEditURL, ModeEditBody, ModeEditKV:
		default:
			return nil
		}
	}

	switch m.mode {
	case ModeNormal:
		return m.handleNormalKeys(key)
	case ModeMethodSelect:
		return m.handleDropdownKeys(key)
	case ModeHelp:
		return m.handleHelpKeys(key)
	case ModeEditURL:
		return m.handleEditURLKeys(msg)
	case ModeEditBody:
		return m.handleEditBodyKeys(msg)
	case ModeEditKV:
		return m.handleEditKVKeys(msg)
	}
	return nil
}

func (m *Model) handleNormalKeys(key string) tea.Cmd {
	cmd, ok := m.keys.Match(keybinds.ContextNormal, key)
	if !ok {
		return nil
	}

	switch cmd {
	case keybinds.CmdQuit:
		m.quitting = true
		return tea.Quit

	case keybinds.CmdHelpToggle:
		m.toggleHelp()

	case keybinds.CmdSectionNext:
		m.sectionNext()
	case keybinds.CmdSectionPrev:
		m.sectionPrev()
	case keybinds.CmdSubViewNext:
		m.subViewNext()
	case keybinds.CmdSubViewPrev:
		m.subViewPrev()

	case keybinds.CmdEnterEdit:
		switch m.section {
		case SectionURL:
			m.enterEditURL()
		case SectionValues:
			m.enterEditValues()
		}
	case keybinds.CmdEditURL:
		m.enterEditURL()

	case keybinds.CmdDropdownOpen:
		m.openMethodDropdown()

	case keybinds.CmdSend:
		return m.sendActive()

	case keybinds.CmdCopyBody:
		m.copyResponseBody()

	case keybinds.CmdNewTab:
		m.addTab()
	case keybinds.CmdCloseTab:
		if err := m.closeTab(m.activeTab); err != nil {
			m.setError(err.Error())
		}
	case keybinds.CmdNextTab:
		m.nextTabCycle()
	case keybinds.CmdPrevTab:
		m.prevTabCycle()

	case keybinds.CmdScrollDown:
		m.scrollResponse(1)
	case keybinds.CmdScrollUp:
		m.scrollResponse(-1)
	}
	return nil
}

func (m *Model) handleDropdownKeys(key string) tea.Cmd {
	cmd, ok := m.keys.Match(keybinds.ContextDropdown, key)
	if !ok {
		// The overlay is modal: unbound keys are suppressed.
		return nil
	}
	switch cmd {
	case keybinds.CmdQuit:
		m.quitting = true
		return tea.Quit
	case keybinds.CmdDropdownUp:
		m.dropdownMove(-1)
	case keybinds.CmdDropdownDown:
		m.dropdownMove(1)
	case keybinds.CmdConfirm:
		m.dropdownConfirm()
	case keybinds.CmdCancel:
		m.dropdownCancel()
	}
	return nil
}

func (m *Model) handleHelpKeys(key string) tea.Cmd {
	cmd, ok := m.keys.Match(keybinds.ContextHelp, key)
	if !ok {
		return nil
	}
	switch cmd {
	case keybinds.CmdQuit:
		m.quitting = true
		return tea.Quit
	case keybinds.CmdHelpToggle:
		m.toggleHelp()
	case keybinds.CmdScrollDown:
		m.helpView.ScrollDown(1)
	case keybinds.CmdScrollUp:
		m.helpView.ScrollUp(1)
	}
	return nil
}

func (m *Model) handleEditURLKeys(msg tea.KeyMsg) tea.Cmd {
	if cmd, ok := m.keys.Match(keybinds.ContextEdit, msg.String()); ok {
		switch cmd {
		case keybinds.CmdQuit:
			m.quitting = true
			return tea.Quit
		case keybinds.CmdConfirm:
			m.commitURL()
			return nil
		case keybinds.CmdCancel:
			m.cancelURL()
			return nil
		case keybinds.CmdSwitchField:
			// Single-field editor; nothing to switch to.
			return nil
		}
	}
	var cmd tea.Cmd
	m.urlInput, cmd = m.urlInput.Update(msg)
	return cmd
}

func (m *Model) handleEditBodyKeys(msg tea.KeyMsg) tea.Cmd {
	// Enter inserts a newline in the body editor, so only escape and
	// quit decode as commands here.
	switch msg.String() {
	case "esc":
		m.commitBody()
		return nil
	case "ctrl+c":
		m.quitting = true
		return tea.Quit
	}
	var cmd tea.Cmd
	m.bodyInput, cmd = m.bodyInput.Update(msg)
	return cmd
}

func (m *Model) handleEditKVKeys(msg tea.KeyMsg) tea.Cmd {
	if cmd, ok := m.keys.Match(keybinds.ContextEdit, msg.String()); ok {
		switch cmd {
		case keybinds.CmdQuit:
			m.quitting = true
			return tea.Quit
		case keybinds.CmdConfirm:
			m.commitKVEntry()
			return nil
		case keybinds.CmdCancel:
			m.cancelKVEntry()
			return nil
		case keybinds.CmdSwitchField:
			m.switchKVField()
			return nil
		}
	}
	var cmd tea.Cmd
	if m.kvField == 0 {
		m.keyInput, cmd = m.keyInput.Update(msg)
	} else {
		m.valueInput, cmd = m.valueInput.Update(msg)
	}
	return cmd
}

// scrollResponse scrolls the response body viewport. Only meaningful
// when the response section's body sub-view is focused.
func (m *Model) scrollResponse(delta int) {
	tab := m.currentTab()
	if tab == nil || m.section != SectionResponse || tab.responseTab != ResponseBody {
		return
	}
	if delta > 0 {
		m.responseView.ScrollDown(delta)
	} else {
		m.responseView.ScrollUp(-delta)
	}
}

// copyResponseBody puts the raw body of the active tab's response on
// the system clipboard.
func (m *Model) copyResponseBody() {
	tab := m.currentTab()
	if tab == nil || tab.Response.Phase != types.PhaseSucceeded {
		m.setError("no response body to copy")
		return
	}
	if err := clipboard.WriteAll(tab.Response.Result.Body); err != nil {
		m.setError("failed to copy response body: " + err.Error())
		return
	}
	m.setStatus("response body copied to clipboard")
}
