package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/log"

	"restless/internal/config"
	"restless/internal/keybinds"
)

// New builds the initial model with a single default tab.
func New(cfg *config.Config) *Model {
	urlInput := textinput.New()
	urlInput.Placeholder = "https://example.com"
	urlInput.CharLimit = 0

	keyInput := textinput.New()
	keyInput.Placeholder = "key"

	valueInput := textinput.New()
	valueInput.Placeholder = "value"

	bodyInput := textarea.New()
	bodyInput.Placeholder = "request body"
	bodyInput.CharLimit = 0

	m := &Model{
		cfg:          cfg,
		keys:         keybinds.NewDefaultRegistry(),
		urlInput:     urlInput,
		keyInput:     keyInput,
		valueInput:   valueInput,
		bodyInput:    bodyInput,
		responseView: viewport.New(0, 0),
		helpView:     viewport.New(0, 0),
	}
	m.addTab()
	return m
}

// Run starts the event loop and blocks until the user quits.
func Run(cfg *config.Config) error {
	m := New(cfg)
	log.Info("starting session", "timeout", cfg.Timeout())

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
