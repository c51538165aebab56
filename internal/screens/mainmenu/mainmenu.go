// Package mainmenu is the hub screen shown after login. Every other screen
// is reached from here, directly or through the practice menu.
package mainmenu

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Khoiidayy/linguabot/internal/auth"
	"github.com/Khoiidayy/linguabot/internal/llm"
	"github.com/Khoiidayy/linguabot/internal/router"
	"github.com/Khoiidayy/linguabot/internal/screen"
	"github.com/Khoiidayy/linguabot/internal/screens/practicemenu"
	"github.com/Khoiidayy/linguabot/internal/screens/profile"
	"github.com/Khoiidayy/linguabot/internal/screens/vocabsets"
	"github.com/Khoiidayy/linguabot/internal/ui/components"
	"github.com/Khoiidayy/linguabot/internal/ui/theme"
	"github.com/Khoiidayy/linguabot/internal/vocab"
)

// MainMenuScreen is the post-login hub.
type MainMenuScreen struct {
	user *vocab.User
	menu components.Menu
}

var _ screen.Screen = (*MainMenuScreen)(nil)

// New creates the main menu for the logged-in user.
func New(user *vocab.User, svc *auth.Service, provider llm.Provider) *MainMenuScreen {
	items := []components.MenuItem{
		{Label: "Save Vocab", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: vocabsets.NewList(user, svc)}
			}
		}},
		{Label: "Practice", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: practicemenu.New(user, provider)}
			}
		}},
		{Label: "Profile", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: profile.New(user, svc)}
			}
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &MainMenuScreen{
		user: user,
		menu: components.NewMenu(items),
	}
}

func (m *MainMenuScreen) Init() tea.Cmd {
	return nil
}

func (m *MainMenuScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m *MainMenuScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render(fmt.Sprintf("Hello, %s!", m.user.Username)))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf(
		"%d sets · %d words", len(m.user.VocabSets), m.user.TotalWords())))
	b.WriteString("\n\n")
	b.WriteString(m.menu.View())

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (m *MainMenuScreen) Title() string {
	return "Main Menu"
}
