package tui

import "restless/internal/types"

// sectionNext moves focus one section down (URL → Values → Response).
// Movement saturates at the edges.
func (m *Model) sectionNext() {
	switch m.section {
	case SectionURL:
		m.section = SectionValues
	case SectionValues:
		m.section = SectionResponse
	}
}

// sectionPrev moves focus one section up (Response → Values → URL).
func (m *Model) sectionPrev() {
	switch m.section {
	case SectionResponse:
		m.section = SectionValues
	case SectionValues:
		m.section = SectionURL
	}
}

// subViewNext rotates the focused section's sub-view forward, wrapping
// around. Body → Headers → Params → Body on the request side,
// Headers → Body → Headers on the response side.
func (m *Model) subViewNext() {
	tab := m.currentTab()
	if tab == nil {
		return
	}
	switch m.section {
	case SectionValues:
		tab.valuesTab = (tab.valuesTab + 1) % 3
	case SectionResponse:
		tab.responseTab = (tab.responseTab + 1) % 2
		m.updateResponseView()
	}
}

// subViewPrev rotates the focused section's sub-view backward.
func (m *Model) subViewPrev() {
	tab := m.currentTab()
	if tab == nil {
		return
	}
	switch m.section {
	case SectionValues:
		tab.valuesTab = (tab.valuesTab + 2) % 3
	case SectionResponse:
		tab.responseTab = (tab.responseTab + 1) % 2
		m.updateResponseView()
	}
}

// openMethodDropdown opens the method overlay, seeded with the current
// method. Only reachable from the URL section.
func (m *Model) openMethodDropdown() {
	if m.section != SectionURL {
		return
	}
	tab := m.currentTab()
	if tab == nil {
		return
	}
	m.methodIndex = int(tab.Request.Method)
	m.mode = ModeMethodSelect
}

// dropdownMove moves the dropdown cursor with wrap-around.
func (m *Model) dropdownMove(delta int) {
	n := len(types.Methods())
	m.methodIndex = (m.methodIndex + delta + n) % n
}

// dropdownConfirm commits the selected method and closes the overlay.
func (m *Model) dropdownConfirm() {
	if tab := m.currentTab(); tab != nil {
		tab.Request.Method = types.MethodFromIndex(m.methodIndex)
	}
	m.mode = ModeNormal
}

// dropdownCancel closes the overlay without changing the method.
func (m *Model) dropdownCancel() {
	m.mode = ModeNormal
}

// toggleHelp opens or closes the help overlay. On open, the current
// mode and section are snapshotted; on dismiss they are restored
// exactly, so help is transparent to the focus machine.
func (m *Model) toggleHelp() {
	if m.mode == ModeHelp {
		if m.helpReturn != nil {
			m.mode = m.helpReturn.mode
			m.section = m.helpReturn.section
			m.helpReturn = nil
		} else {
			m.mode = ModeNormal
		}
		return
	}
	m.helpReturn = &focusSnapshot{mode: m.mode, section: m.section}
	m.updateHelpView()
	m.mode = ModeHelp
}
