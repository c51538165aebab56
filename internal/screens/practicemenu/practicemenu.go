// Package practicemenu lists the three practice modes.
package practicemenu

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Khoiidayy/linguabot/internal/llm"
	"github.com/Khoiidayy/linguabot/internal/router"
	"github.com/Khoiidayy/linguabot/internal/screen"
	"github.com/Khoiidayy/linguabot/internal/screens/chat"
	"github.com/Khoiidayy/linguabot/internal/screens/flashcards"
	"github.com/Khoiidayy/linguabot/internal/screens/quiz"
	"github.com/Khoiidayy/linguabot/internal/ui/components"
	"github.com/Khoiidayy/linguabot/internal/ui/theme"
	"github.com/Khoiidayy/linguabot/internal/vocab"
)

// PracticeMenuScreen lets the user pick a practice mode.
type PracticeMenuScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*PracticeMenuScreen)(nil)

// New creates the practice menu.
func New(user *vocab.User, provider llm.Provider) *PracticeMenuScreen {
	items := []components.MenuItem{
		{Label: "Flashcards", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: flashcards.New(user)}
			}
		}},
		{Label: "Multiple Choice Quiz", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quiz.New(user)}
			}
		}},
		{Label: "AI Tutor Chat", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: chat.New(user, provider)}
			}
		}},
	}

	return &PracticeMenuScreen{menu: components.NewMenu(items)}
}

func (p *PracticeMenuScreen) Init() tea.Cmd {
	return nil
}

func (p *PracticeMenuScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	p.menu, cmd = p.menu.Update(msg)
	return p, cmd
}

func (p *PracticeMenuScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Practice"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Pick a mode"))
	b.WriteString("\n\n")
	b.WriteString(p.menu.View())

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (p *PracticeMenuScreen) Title() string {
	return "Practice"
}
