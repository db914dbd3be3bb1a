package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"restless/internal/executor"
	"restless/internal/types"
)

// sendActive validates and dispatches the active tab's request. The
// tab's state flips to pending synchronously, before the network call
// starts, so the next redraw already shows the in-flight state. The
// returned command runs concurrently with the event loop; it carries
// only an immutable snapshot (tab ID, generation, cloned spec) and
// re-enters through requestDoneMsg.
//
// Re-sending while a prior call is still in flight is allowed: the
// bumped generation makes the older result stale, and it is discarded
// on arrival rather than cancelled.
func (m *Model) sendActive() tea.Cmd {
	tab := m.currentTab()
	if tab == nil {
		return nil
	}

	if err := tab.Request.Validate(); err != nil {
		// Validation short-circuits the send without touching the
		// response state.
		m.setError(err.Error())
		return nil
	}

	tab.generation++
	generation := tab.generation
	tabID := tab.ID
	spec := tab.Request.Clone()
	timeout := m.cfg.Timeout()

	tab.Response = types.Pending()
	m.updateResponseView()
	m.setStatus("%s %s ...", spec.Method, spec.URL)
	log.Info("sending request", "tab", tabID, "generation", generation,
		"method", spec.Method.String(), "url", spec.URL)

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := executor.Execute(ctx, spec)
		return requestDoneMsg{
			tabID:      tabID,
			generation: generation,
			response:   resp,
			err:        err,
		}
	}
}
