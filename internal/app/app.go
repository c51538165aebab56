// Package app wires the screen stack into the root Bubble Tea model.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Khoiidayy/linguabot/internal/auth"
	"github.com/Khoiidayy/linguabot/internal/llm"
	"github.com/Khoiidayy/linguabot/internal/router"
	"github.com/Khoiidayy/linguabot/internal/screen"
	"github.com/Khoiidayy/linguabot/internal/screens/login"
	"github.com/Khoiidayy/linguabot/internal/screens/mainmenu"
	"github.com/Khoiidayy/linguabot/internal/screens/profile"
	"github.com/Khoiidayy/linguabot/internal/ui/layout"
)

// Options carries the services the screens depend on.
type Options struct {
	Auth *auth.Service

	// Provider is nil when no LLM API key is configured. The app still
	// works; only the tutor chat is degraded.
	Provider llm.Provider
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts     Options
	router   *router.Router
	username string
	width    int
	height   int
}

// newAppModel picks the initial screen from the persisted session: a live
// session resumes at the main menu, otherwise login.
func newAppModel(opts Options) AppModel {
	var bottom screen.Screen
	var username string
	if user, err := opts.Auth.Current(context.Background()); err == nil && user != nil {
		bottom = mainmenu.New(user, opts.Auth, opts.Provider)
		username = user.Username
	} else {
		bottom = login.New(opts.Auth, opts.Provider)
	}

	return AppModel{
		opts:     opts,
		router:   router.New(bottom),
		username: username,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case profile.LoggedOutMsg:
		m.username = ""
		cmd := m.router.Reset(login.New(m.opts.Auth, m.opts.Provider))
		return m, cmd

	case router.ResetScreenMsg:
		// Stack resets come from login and logout; refresh the header name.
		m.username = ""
		if user, err := m.opts.Auth.Current(context.Background()); err == nil && user != nil {
			m.username = user.Username
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscapeHandler); ok && h.HandlesEscape() {
				break // let the screen consume it
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.username, m.width)

	var footerHints []layout.KeyHint
	if hinter, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hinter.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
