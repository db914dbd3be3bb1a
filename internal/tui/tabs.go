package tui

import (
	"errors"
	"fmt"

	"restless/internal/types"
)

// Tab registry errors. Both are recoverable: they surface as inline
// messages and never abort the session.
var (
	errInvalidIndex = errors.New("invalid tab index")
	errLastTab      = errors.New("cannot close the last tab")
)

// Tab is one isolated session: an editable request, its most recent
// response, and the sub-view state the user left it in. Tab data is
// only ever touched from the event loop.
type Tab struct {
	ID   int64
	Name string

	Request  types.RequestSpec
	Response types.ResponseState

	// generation identifies the most recent send from this tab. It only
	// grows, so a result carrying an older value is recognizably stale.
	generation uint64

	valuesTab      ValuesTab
	responseTab    ResponseTab
	responseScroll int
}

// addTab appends a new default tab and makes it active.
func (m *Model) addTab() {
	m.tabSeq++
	tab := &Tab{
		ID:   m.nextTabID,
		Name: fmt.Sprintf("Tab %d", m.tabSeq),
		Request: types.RequestSpec{
			Method: types.MethodGet,
			URL:    m.cfg.Tabs.DefaultURL,
		},
	}
	m.nextTabID++
	m.tabs = append(m.tabs, tab)

	m.saveViewState()
	m.activeTab = len(m.tabs) - 1
	m.resetFocus()
}

// closeTab removes the tab at index and re-clamps the active index.
// Closing the last remaining tab is blocked. An in-flight request for
// the closed tab keeps running; its result is discarded on arrival
// because the tab ID no longer resolves.
func (m *Model) closeTab(index int) error {
	if index < 0 || index >= len(m.tabs) {
		return errInvalidIndex
	}
	if len(m.tabs) == 1 {
		return errLastTab
	}

	m.tabs = append(m.tabs[:index], m.tabs[index+1:]...)
	if m.activeTab >= len(m.tabs) {
		m.activeTab = len(m.tabs) - 1
	} else if m.activeTab > index {
		m.activeTab--
	}
	m.resetFocus()
	return nil
}

// activateTab switches the active tab and resets focus to the default
// navigational state. The previous tab's data survives verbatim; only
// its editing state is cleared.
func (m *Model) activateTab(index int) error {
	if index < 0 || index >= len(m.tabs) {
		return errInvalidIndex
	}
	if index == m.activeTab {
		return nil
	}
	m.saveViewState()
	m.activeTab = index
	m.resetFocus()
	return nil
}

func (m *Model) nextTabCycle() {
	if len(m.tabs) < 2 {
		return
	}
	m.activateTab((m.activeTab + 1) % len(m.tabs))
}

func (m *Model) prevTabCycle() {
	if len(m.tabs) < 2 {
		return
	}
	m.activateTab((m.activeTab - 1 + len(m.tabs)) % len(m.tabs))
}

// currentTab returns the active tab. The reference is only valid for
// the duration of the current event-processing step; it is never
// retained across asynchronous boundaries.
func (m *Model) currentTab() *Tab {
	if len(m.tabs) == 0 {
		return nil
	}
	if m.activeTab < 0 || m.activeTab >= len(m.tabs) {
		// Invariant violation: clamp instead of panicking.
		m.activeTab = len(m.tabs) - 1
	}
	return m.tabs[m.activeTab]
}

// findTab resolves a tab by identity. Returns nil when the tab has been
// closed, which callers treat as "discard silently".
func (m *Model) findTab(id int64) *Tab {
	for _, t := range m.tabs {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// saveViewState stashes the response scroll position on the outgoing tab.
func (m *Model) saveViewState() {
	if tab := m.currentTab(); tab != nil {
		tab.responseScroll = m.responseView.YOffset
	}
}

// resetFocus returns the focus machine to its default state (URL
// section, not editing), clears any stale edit buffers, and refreshes
// the response view for the newly active tab.
func (m *Model) resetFocus() {
	m.mode = ModeNormal
	m.section = SectionURL
	m.helpReturn = nil
	m.resetEditors()

	m.updateResponseView()
	if tab := m.currentTab(); tab != nil {
		m.responseView.SetYOffset(tab.responseScroll)
	}
}
