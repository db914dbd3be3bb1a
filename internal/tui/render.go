package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"restless/internal/executor"
	"restless/internal/format"
	"restless/internal/types"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"}
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff5555"}
	colorYellow = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"}
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"}
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleActiveTab = lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Padding(0, 1)

	styleInactiveTab = lipgloss.NewStyle().
				Foreground(colorGray).
				Padding(0, 1)

	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleSubtle  = lipgloss.NewStyle().Foreground(colorGray)
)

const (
	tabTitleMaxWidth = 18
	urlBoxHeight     = 1
	footerHeight     = 2
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	if m.quitting {
		return ""
	}

	switch m.mode {
	case ModeHelp:
		return m.renderHelp()
	case ModeMethodSelect:
		return m.renderMethodDropdown()
	default:
		return m.renderMain()
	}
}

func (m *Model) renderMain() string {
	tab := m.currentTab()
	if tab == nil {
		return ""
	}

	tabBar := m.renderTabBar()
	urlBox := m.renderURLSection(tab)
	valuesBox := m.renderValuesSection(tab)
	responseBox := m.renderResponseSection(tab)
	footer := m.renderFooter()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		tabBar,
		urlBox,
		valuesBox,
		responseBox,
		footer,
	)
}

func (m *Model) renderTabBar() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		title := runewidth.Truncate(tab.Name, tabTitleMaxWidth, "…")
		if tab.Response.Phase == types.PhasePending {
			title += " ◌"
		}
		if i == m.activeTab {
			parts = append(parts, styleActiveTab.Render(title))
		} else {
			parts = append(parts, styleInactiveTab.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderURLSection(tab *Tab) string {
	var line string
	method := styleTitle.Render(tab.Request.Method.String())
	if m.mode == ModeEditURL {
		line = fmt.Sprintf("%s %s", method, m.urlInput.View())
	} else {
		url := tab.Request.URL
		if url == "" {
			url = styleSubtle.Render("press 'u' to enter a URL")
		} else {
			url = runewidth.Truncate(url, m.width-12, "…")
		}
		line = fmt.Sprintf("%s %s", method, url)
	}

	return m.sectionBox(SectionURL).
		Width(m.width - 2).
		Height(urlBoxHeight).
		Render(line)
}

func (m *Model) renderValuesSection(tab *Tab) string {
	header := m.renderSubTabs(
		[]string{"Body", "Headers", "Params"},
		int(tab.valuesTab),
	)

	var content string
	switch m.mode {
	case ModeEditBody:
		content = m.bodyInput.View()
	case ModeEditKV:
		content = m.renderKVForm(tab)
	default:
		content = m.renderValuesContent(tab)
	}

	return m.sectionBox(SectionValues).
		Width(m.width - 2).
		Height(m.valuesHeight()).
		Render(header + "\n" + content)
}

func (m *Model) renderValuesContent(tab *Tab) string {
	switch tab.valuesTab {
	case ValuesBody:
		if tab.Request.Body == "" {
			return styleSubtle.Render("no body; press 'i' to edit")
		}
		return tab.Request.Body
	case ValuesHeaders:
		return m.renderPairs(tab.Request.Headers, "no headers; press 'i' to add")
	default:
		return m.renderPairs(tab.Request.Params, "no query parameters; press 'i' to add")
	}
}

func (m *Model) renderPairs(pairs types.PairList, emptyHint string) string {
	if len(pairs) == 0 {
		return styleSubtle.Render(emptyHint)
	}
	lines := make([]string, 0, len(pairs))
	for _, p := range pairs {
		lines = append(lines, fmt.Sprintf("%s: %s", styleTitle.Render(p.Key), p.Value))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderKVForm(tab *Tab) string {
	noun := "header"
	if tab.valuesTab == ValuesParams {
		noun = "parameter"
	}
	keyLabel := "key"
	valueLabel := "value"
	if m.kvField == 0 {
		keyLabel = styleTitle.Render("key")
	} else {
		valueLabel = styleTitle.Render("value")
	}
	return fmt.Sprintf(
		"new %s  (tab: switch field, enter: add, esc: done)\n%s   %s\n%s %s",
		noun, keyLabel, m.keyInput.View(), valueLabel, m.valueInput.View(),
	)
}

func (m *Model) renderResponseSection(tab *Tab) string {
	header := m.renderSubTabs(
		[]string{"Headers", "Body"},
		int(tab.responseTab),
	)

	status := m.renderResponseStatus(tab)
	body := m.responseView.View()

	return m.sectionBox(SectionResponse).
		Width(m.width - 2).
		Height(m.responseHeight()).
		Render(header + "  " + status + "\n" + body)
}

func (m *Model) renderResponseStatus(tab *Tab) string {
	switch tab.Response.Phase {
	case types.PhasePending:
		return styleWarning.Render("… in flight")
	case types.PhaseFailed:
		return styleError.Render("failed")
	case types.PhaseSucceeded:
		r := tab.Response.Result
		line := fmt.Sprintf("%s  %s", r.StatusText, executor.FormatDuration(r.Elapsed))
		if label := contentLabel(r.ContentType()); label != "" {
			line += "  " + label
		}
		switch {
		case executor.IsSuccessStatus(r.Status):
			return styleSuccess.Render(line)
		case executor.IsServerErrorStatus(r.Status) || executor.IsClientErrorStatus(r.Status):
			return styleError.Render(line)
		default:
			return styleWarning.Render(line)
		}
	default:
		return styleSubtle.Render("no response")
	}
}

// contentLabel names the response payload kind for the status line.
func contentLabel(contentType string) string {
	switch {
	case format.IsJSON(contentType):
		return "json"
	case format.IsXML(contentType):
		return "xml"
	default:
		return ""
	}
}

func (m *Model) renderSubTabs(names []string, active int) string {
	parts := make([]string, len(names))
	for i, name := range names {
		if i == active {
			parts[i] = styleTitle.Underline(true).Render(name)
		} else {
			parts[i] = styleSubtle.Render(name)
		}
	}
	return strings.Join(parts, " │ ")
}

func (m *Model) renderFooter() string {
	if m.errorMsg != "" {
		return styleError.Render("✗ " + m.errorMsg)
	}

	hints := "?: help  enter: send  t/x: tabs  q: quit"
	if m.statusMsg != "" {
		return styleSubtle.Render(hints) + "\n" + m.statusMsg
	}
	return styleSubtle.Render(hints)
}

// renderMethodDropdown draws the modal method selector.
func (m *Model) renderMethodDropdown() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Method") + "\n\n")
	for i, method := range types.Methods() {
		cursor := "  "
		line := method.String()
		if i == m.methodIndex {
			cursor = "> "
			line = styleTitle.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}
	b.WriteString("\n" + styleSubtle.Render("↑/↓: select  enter: confirm  esc: cancel"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCyan).
		Padding(1, 3).
		Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// sectionBox returns the border style for a section, highlighted when
// that section has focus.
func (m *Model) sectionBox(section Section) lipgloss.Style {
	border := colorGray
	if m.section == section && m.mode != ModeHelp {
		border = colorGreen
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

// valuesHeight and responseHeight split the vertical space left after
// the tab bar, URL box, and footer.
func (m *Model) valuesHeight() int {
	return max(3, (m.contentHeight()*2)/5)
}

func (m *Model) responseHeight() int {
	return max(3, m.contentHeight()-m.valuesHeight())
}

// contentHeight is the room available for the values and response
// boxes, borders excluded.
func (m *Model) contentHeight() int {
	// tab bar (1) + url box with borders (3) + footer (2) + box borders (4)
	return max(6, m.height-1-(urlBoxHeight+2)-footerHeight-4)
}

// resizeViews propagates the window size into the embedded components.
func (m *Model) resizeViews() {
	innerWidth := max(20, m.width-6)

	m.urlInput.Width = max(10, m.width-16)
	m.keyInput.Width = max(10, m.width/3)
	m.valueInput.Width = max(10, m.width/3)

	m.bodyInput.SetWidth(innerWidth)
	m.bodyInput.SetHeight(max(1, m.valuesHeight()-1))

	m.responseView.Width = innerWidth
	m.responseView.Height = max(1, m.responseHeight()-1)

	m.helpView.Width = innerWidth
	m.helpView.Height = max(1, m.height-6)
}

// updateResponseView refreshes the response viewport from the active
// tab. Formatting is applied here, at display time; the stored body
// stays raw.
func (m *Model) updateResponseView() {
	tab := m.currentTab()
	if tab == nil {
		return
	}
	m.responseView.SetContent(m.responseContent(tab))
}

func (m *Model) responseContent(tab *Tab) string {
	switch tab.Response.Phase {
	case types.PhaseEmpty:
		return styleSubtle.Render("No response yet. Press enter to send the request.")
	case types.PhasePending:
		return styleWarning.Render("Sending request ...")
	case types.PhaseFailed:
		return styleError.Render(tab.Response.Err)
	}

	r := tab.Response.Result
	if tab.responseTab == ResponseHeaders {
		lines := make([]string, 0, len(r.Headers))
		for _, h := range r.Headers {
			lines = append(lines, fmt.Sprintf("%s: %s", styleTitle.Render(h.Key), h.Value))
		}
		return strings.Join(lines, "\n")
	}
	return format.Body(r.ContentType(), r.Body)
}
