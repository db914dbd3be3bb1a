package tui

import (
	"errors"
	"strings"

	"restless/internal/types"
)

// resetEditors clears every edit buffer and blurs the inputs. Called on
// tab switches so no buffer ever carries over between tabs.
func (m *Model) resetEditors() {
	m.urlInput.SetValue("")
	m.urlInput.Blur()
	m.keyInput.SetValue("")
	m.keyInput.Blur()
	m.valueInput.SetValue("")
	m.valueInput.Blur()
	m.kvField = 0
	m.bodyInput.SetValue("")
	m.bodyInput.Blur()
}

// enterEditURL switches to URL editing, seeding the buffer from the
// active tab.
func (m *Model) enterEditURL() {
	tab := m.currentTab()
	if tab == nil {
		return
	}
	m.section = SectionURL
	m.urlInput.SetValue(tab.Request.URL)
	m.urlInput.CursorEnd()
	m.urlInput.Focus()
	m.mode = ModeEditURL
}

// commitURL stores the edited URL on the tab and leaves edit mode.
// Validation happens at send time, not here: a half-typed URL is fine
// to keep.
func (m *Model) commitURL() {
	if tab := m.currentTab(); tab != nil {
		tab.Request.URL = strings.TrimSpace(m.urlInput.Value())
	}
	m.urlInput.Blur()
	m.mode = ModeNormal
}

// cancelURL discards the edit buffer and leaves edit mode.
func (m *Model) cancelURL() {
	m.urlInput.SetValue("")
	m.urlInput.Blur()
	m.mode = ModeNormal
}

// enterEditValues opens the editor matching the active values sub-view:
// a free-form textarea for the body, the key/value form for headers and
// parameters.
func (m *Model) enterEditValues() {
	tab := m.currentTab()
	if tab == nil {
		return
	}
	switch tab.valuesTab {
	case ValuesBody:
		m.bodyInput.SetValue(tab.Request.Body)
		m.bodyInput.Focus()
		m.mode = ModeEditBody
	default:
		m.keyInput.SetValue("")
		m.valueInput.SetValue("")
		m.kvField = 0
		m.keyInput.Focus()
		m.valueInput.Blur()
		m.mode = ModeEditKV
	}
}

// commitBody stores the textarea contents on the tab and exits the
// editor. The body keeps whatever the user typed; no schema is imposed.
func (m *Model) commitBody() {
	if tab := m.currentTab(); tab != nil {
		tab.Request.Body = m.bodyInput.Value()
	}
	m.bodyInput.Blur()
	m.mode = ModeNormal
}

// switchKVField alternates focus between the key and value fields.
func (m *Model) switchKVField() {
	if m.kvField == 0 {
		m.kvField = 1
		m.keyInput.Blur()
		m.valueInput.Focus()
	} else {
		m.kvField = 0
		m.valueInput.Blur()
		m.keyInput.Focus()
	}
}

// commitKVEntry appends the form's (key, value) pair to the active
// sub-view's collection. Both fields must be non-empty; a rejected
// commit surfaces a validation message and leaves the collection
// untouched. On success the form clears and stays open for rapid
// consecutive entry.
func (m *Model) commitKVEntry() {
	tab := m.currentTab()
	if tab == nil {
		return
	}

	key := m.keyInput.Value()
	value := m.valueInput.Value()
	if strings.TrimSpace(value) == "" {
		m.setError("value cannot be empty")
		return
	}

	var err error
	switch tab.valuesTab {
	case ValuesHeaders:
		err = tab.Request.Headers.Add(key, value)
	case ValuesParams:
		err = tab.Request.Params.Add(key, value)
	default:
		// The form is unreachable from the body sub-view; recover to a
		// sane state instead of guessing a collection.
		m.mode = ModeNormal
		return
	}
	if err != nil {
		if errors.Is(err, types.ErrEmptyKey) {
			m.setError("key cannot be empty")
		} else {
			m.setError(err.Error())
		}
		return
	}

	m.keyInput.SetValue("")
	m.valueInput.SetValue("")
	m.kvField = 0
	m.valueInput.Blur()
	m.keyInput.Focus()
}

// cancelKVEntry abandons the form and returns to navigation.
func (m *Model) cancelKVEntry() {
	m.keyInput.SetValue("")
	m.valueInput.SetValue("")
	m.kvField = 0
	m.keyInput.Blur()
	m.valueInput.Blur()
	m.mode = ModeNormal
}
