package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"restless/internal/types"
)

func doneMsg(tab *Tab, generation uint64, status int) requestDoneMsg {
	return requestDoneMsg{
		tabID:      tab.ID,
		generation: generation,
		response: &types.Response{
			Status:     status,
			StatusText: "200 OK",
			Elapsed:    12 * time.Millisecond,
		},
	}
}

func TestSendActive_ValidationShortCircuits(t *testing.T) {
	m := CreateTestModel(t)
	tab := m.currentTab()

	cases := []struct {
		name string
		url  string
	}{
		{"empty URL", ""},
		{"missing scheme", "example.com"},
		{"unsupported scheme", "ftp://example.com"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tab.Request.URL = tc.url
			m.errorMsg = ""

			cmd := m.sendActive()

			if cmd != nil {
				t.Error("expected no command for invalid request")
			}
			if m.errorMsg == "" {
				t.Error("expected a validation message")
			}
			AssertModelField(t, "phase untouched", tab.Response.Phase, types.PhaseEmpty)
			AssertModelField(t, "generation untouched", tab.generation, uint64(0))
		})
	}
}

func TestSendActive_FlipsToPendingSynchronously(t *testing.T) {
	m := CreateTestModel(t)
	tab := m.currentTab()
	tab.Request.URL = "https://example.com"

	cmd := m.sendActive()

	if cmd == nil {
		t.Fatal("expected a command for a valid request")
	}
	AssertModelField(t, "phase", tab.Response.Phase, types.PhasePending)
	AssertModelField(t, "generation bumped", tab.generation, uint64(1))
}

func TestApplyRequestResult_Success(t *testing.T) {
	m := CreateTestModel(t)
	tab := m.currentTab()
	tab.Request.URL = "https://example.com"
	m.sendActive()

	m.applyRequestResult(doneMsg(tab, tab.generation, 200))

	AssertModelField(t, "phase", tab.Response.Phase, types.PhaseSucceeded)
	AssertModelField(t, "status", tab.Response.Result.Status, 200)
}

func TestApplyRequestResult_Failure(t *testing.T) {
	m := CreateTestModel(t)
	tab := m.currentTab()
	tab.Request.URL = "https://example.com"
	m.sendActive()

	m.applyRequestResult(requestDoneMsg{
		tabID:      tab.ID,
		generation: tab.generation,
		err:        errors.New("connection refused"),
	})

	AssertModelField(t, "phase", tab.Response.Phase, types.PhaseFailed)
	AssertModelField(t, "message", tab.Response.Err, "connection refused")
	AssertModelField(t, "banner shown", m.errorMsg, "connection refused")
}

func TestApplyRequestResult_LastSendWins(t *testing.T) {
	m := CreateTestModel(t)
	tab := m.currentTab()
	tab.Request.URL = "https://example.com"

	m.sendActive()
	first := tab.generation
	m.sendActive()
	second := tab.generation

	// The second send completes first; the first one straggles in later.
	m.applyRequestResult(doneMsg(tab, second, 201))
	m.applyRequestResult(doneMsg(tab, first, 500))

	AssertModelField(t, "phase", tab.Response.Phase, types.PhaseSucceeded)
	AssertModelField(t, "newest result kept", tab.Response.Result.Status, 201)
}

func TestApplyRequestResult_StaleResultCannotRevivePending(t *testing.T) {
	m := CreateTestModel(t)
	tab := m.currentTab()
	tab.Request.URL = "https://example.com"

	m.sendActive()
	first := tab.generation
	m.sendActive() // still pending

	m.applyRequestResult(doneMsg(tab, first, 200))

	AssertModelField(t, "still pending", tab.Response.Phase, types.PhasePending)
}

func TestApplyRequestResult_ClosedTabIsDiscarded(t *testing.T) {
	m := CreateTestModel(t)
	m.addTab()
	tab := m.currentTab()
	tab.Request.URL = "https://example.com"
	m.sendActive()
	msg := doneMsg(tab, tab.generation, 200)

	if err := m.closeTab(m.activeTab); err != nil {
		t.Fatalf("closeTab: %v", err)
	}

	m.applyRequestResult(msg) // must not panic or touch surviving tabs

	AssertModelField(t, "surviving tab phase", m.currentTab().Response.Phase, types.PhaseEmpty)
}

func TestApplyRequestResult_InactiveTabKeepsResult(t *testing.T) {
	m := CreateTestModel(t)
	tab := m.currentTab()
	tab.Request.URL = "https://example.com"
	m.sendActive()
	msg := doneMsg(tab, tab.generation, 200)

	m.addTab() // switch away before the result lands
	m.applyRequestResult(msg)

	AssertModelField(t, "background tab phase", tab.Response.Phase, types.PhaseSucceeded)
	AssertModelField(t, "active tab unaffected", m.currentTab().Response.Phase, types.PhaseEmpty)
}

func TestApplyRequestResult_TwoTabsInFlightIndependently(t *testing.T) {
	m := CreateTestModel(t)
	slow := m.currentTab()
	slow.Request.URL = "https://slow.example.com"
	m.sendActive()

	m.addTab()
	fast := m.currentTab()
	fast.Request.URL = "https://fast.example.com"
	m.sendActive()

	// The fast tab's call completes while the slow one is still out.
	m.applyRequestResult(doneMsg(fast, fast.generation, 200))
	AssertModelField(t, "fast tab phase", fast.Response.Phase, types.PhaseSucceeded)
	AssertModelField(t, "slow tab still pending", slow.Response.Phase, types.PhasePending)

	// The slow tab's call eventually times out; the fast tab keeps its result.
	m.applyRequestResult(requestDoneMsg{
		tabID:      slow.ID,
		generation: slow.generation,
		err:        context.DeadlineExceeded,
	})
	AssertModelField(t, "slow tab phase", slow.Response.Phase, types.PhaseFailed)
	AssertModelField(t, "slow tab message", slow.Response.Err, "request timed out after 5s")
	AssertModelField(t, "fast tab untouched", fast.Response.Phase, types.PhaseSucceeded)
	AssertModelField(t, "fast tab result kept", fast.Response.Result.Status, 200)
}

func TestSendActive_TimeoutMessageNamesDuration(t *testing.T) {
	m := CreateTestModel(t)
	tab := m.currentTab()
	tab.Request.URL = "https://example.com"
	m.sendActive()

	m.applyRequestResult(requestDoneMsg{
		tabID:      tab.ID,
		generation: tab.generation,
		err:        context.DeadlineExceeded,
	})

	AssertModelField(t, "phase", tab.Response.Phase, types.PhaseFailed)
	AssertModelField(t, "message", tab.Response.Err, "request timed out after 5s")
}
