package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/log"

	"restless/internal/config"
	"restless/internal/executor"
	"restless/internal/keybinds"
	"restless/internal/types"
)

// Mode is the modal input state: exactly one mode owns the keyboard at
// any time. Edit modes consume keys as text; overlay modes suppress all
// other navigation.
type Mode int

const (
	ModeNormal Mode = iota
	ModeEditURL
	ModeEditBody
	ModeEditKV
	ModeMethodSelect
	ModeHelp
)

// Section is the focused UI region while in ModeNormal.
type Section int

const (
	SectionURL Section = iota
	SectionValues
	SectionResponse
)

// ValuesTab selects the request-side sub-view.
type ValuesTab int

const (
	ValuesBody ValuesTab = iota
	ValuesHeaders
	ValuesParams
)

// ResponseTab selects the response-side sub-view.
type ResponseTab int

const (
	ResponseHeaders ResponseTab = iota
	ResponseBody
)

// focusSnapshot remembers where the user was before the help overlay
// opened, so dismissing it restores the exact prior state. One slot is
// enough: help cannot stack on top of itself.
type focusSnapshot struct {
	mode    Mode
	section Section
}

// Model is the top-level application state driving the event loop.
// All tab and focus mutation happens inside Update on the program
// goroutine; in-flight requests only re-enter through requestDoneMsg.
type Model struct {
	cfg  *config.Config
	keys *keybinds.Registry

	// Tab registry
	tabs      []*Tab
	activeTab int
	nextTabID int64
	tabSeq    int // monotonic counter feeding "Tab N" names

	// Focus state
	mode       Mode
	section    Section
	helpReturn *focusSnapshot

	// Method dropdown state
	methodIndex int

	// Edit buffers; seeded from the active tab on entering an edit mode
	// and committed back on confirm, so they never outlive a tab switch.
	urlInput   textinput.Model
	keyInput   textinput.Model
	valueInput textinput.Model
	kvField    int // 0 = key field focused, 1 = value field
	bodyInput  textarea.Model

	responseView viewport.Model
	helpView     viewport.Model

	width  int
	height int

	statusMsg string
	errorMsg  string

	quitting bool
}

// requestDoneMsg re-enters the event loop when an outbound call
// completes. tabID and generation identify which send this result
// belongs to; both are immutable after issue.
type requestDoneMsg struct {
	tabID      int64
	generation uint64
	response   *types.Response
	err        error
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if msg.Width < m.cfg.Terminal.MinWidth || msg.Height < m.cfg.Terminal.MinHeight {
			log.Warn("terminal below minimum size",
				"width", msg.Width, "height", msg.Height,
				"min_width", m.cfg.Terminal.MinWidth, "min_height", m.cfg.Terminal.MinHeight)
		}
		m.resizeViews()
		m.updateResponseView()

	case requestDoneMsg:
		m.applyRequestResult(msg)
	}

	return m, nil
}

// setError records a transient inline message. The next keypress
// dismisses it.
func (m *Model) setError(msg string) {
	m.errorMsg = msg
}

func (m *Model) setStatus(format string, args ...any) {
	m.statusMsg = fmt.Sprintf(format, args...)
}

// applyRequestResult routes a completed call back onto the tab that
// issued it. Results for closed tabs or superseded sends are discarded.
func (m *Model) applyRequestResult(msg requestDoneMsg) {
	tab := m.findTab(msg.tabID)
	if tab == nil {
		log.Debug("discarding result for closed tab", "tab", msg.tabID)
		return
	}
	if tab.generation != msg.generation {
		log.Debug("discarding stale result",
			"tab", msg.tabID, "generation", msg.generation, "current", tab.generation)
		return
	}

	if msg.err != nil {
		if executor.IsTimeout(msg.err) {
			tab.Response = types.Failed(fmt.Sprintf("request timed out after %s", m.cfg.Timeout()))
		} else {
			tab.Response = types.Failed(msg.err.Error())
		}
		log.Info("request failed", "tab", msg.tabID, "err", msg.err)
	} else {
		tab.Response = types.Succeeded(msg.response)
		log.Info("request completed",
			"tab", msg.tabID, "status", msg.response.Status, "elapsed", msg.response.Elapsed)
	}

	if tab == m.currentTab() {
		m.updateResponseView()
		switch tab.Response.Phase {
		case types.PhaseSucceeded:
			m.setStatus("%s in %s", tab.Response.Result.StatusText,
				executor.FormatDuration(tab.Response.Result.Elapsed))
		case types.PhaseFailed:
			m.setError(tab.Response.Err)
		}
	}
}
