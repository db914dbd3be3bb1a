package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpEntry struct {
	keys string
	desc string
}

type helpGroup struct {
	title   string
	entries []helpEntry
}

var helpGroups = []helpGroup{
	{
		title: "Navigation",
		entries: []helpEntry{
			{"ctrl+j / ctrl+k", "move between sections"},
			{"h / l", "cycle sub-views within a section"},
			{"j / k", "scroll the response body"},
		},
	},
	{
		title: "Request",
		entries: []helpEntry{
			{"u", "edit the URL"},
			{"m", "choose the HTTP method"},
			{"i", "edit the focused values view"},
			{"enter", "send the request"},
			{"y", "copy the response body"},
		},
	},
	{
		title: "Editing",
		entries: []helpEntry{
			{"enter", "confirm input / add entry"},
			{"tab", "switch between key and value"},
			{"esc", "leave the editor"},
		},
	},
	{
		title: "Tabs",
		entries: []helpEntry{
			{"t", "open a new tab"},
			{"x", "close the current tab"},
			{"tab / shift+tab", "next / previous tab"},
		},
	},
	{
		title: "General",
		entries: []helpEntry{
			{"?", "toggle this help"},
			{"q / ctrl+c", "quit"},
		},
	},
}

func (m *Model) updateHelpView() {
	m.helpView.SetContent(helpContent())
	m.helpView.SetYOffset(0)
}

func helpContent() string {
	var b strings.Builder
	for i, group := range helpGroups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styleTitle.Render(group.title) + "\n")
		for _, e := range group.entries {
			b.WriteString(fmt.Sprintf("  %-18s %s\n", e.keys, e.desc))
		}
	}
	return b.String()
}

func (m *Model) renderHelp() string {
	body := styleTitle.Render("Keybindings") + "\n\n" +
		m.helpView.View() + "\n" +
		styleSubtle.Render("j/k: scroll  esc/?/q: close")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCyan).
		Padding(1, 2).
		Render(body)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
