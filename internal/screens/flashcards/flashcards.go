// Package flashcards implements the flashcard practice screen: pick a set,
// then cycle through its cards front/back.
package flashcards

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Khoiidayy/linguabot/internal/practice"
	"github.com/Khoiidayy/linguabot/internal/screen"
	"github.com/Khoiidayy/linguabot/internal/ui/components"
	"github.com/Khoiidayy/linguabot/internal/ui/layout"
	"github.com/Khoiidayy/linguabot/internal/ui/theme"
	"github.com/Khoiidayy/linguabot/internal/vocab"
)

// FlashcardsScreen drives one flashcard study session.
type FlashcardsScreen struct {
	user *vocab.User

	picker  components.Menu
	deck    *practice.Deck
	picking bool
}

var _ screen.Screen = (*FlashcardsScreen)(nil)

// New creates the flashcards screen in its set-picking phase.
func New(user *vocab.User) *FlashcardsScreen {
	s := &FlashcardsScreen{user: user, picking: true}
	s.picker = newSetPicker(user, func(set vocab.VocabSet) tea.Cmd {
		s.deck = practice.NewDeck(set)
		s.picking = false
		return nil
	})
	return s
}

// newSetPicker builds a menu over the user's sets. onPick runs when a set
// is chosen.
func newSetPicker(user *vocab.User, onPick func(vocab.VocabSet) tea.Cmd) components.Menu {
	items := make([]components.MenuItem, len(user.VocabSets))
	for i := range user.VocabSets {
		set := user.VocabSets[i]
		items[i] = components.MenuItem{
			Label: fmt.Sprintf("%s (%d words)", set.Name, len(set.Words)),
			Action: func() tea.Cmd {
				return onPick(set)
			},
		}
	}
	return components.NewMenu(items)
}

func (s *FlashcardsScreen) Init() tea.Cmd {
	return nil
}

func (s *FlashcardsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.picking {
		var cmd tea.Cmd
		s.picker, cmd = s.picker.Update(msg)
		return s, cmd
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "enter", " ", "f":
		s.deck.Flip()
	case "right", "l", "n":
		s.deck.Next()
	case "left", "h", "p":
		s.deck.Prev()
	case "s":
		s.picking = true
		s.deck = nil
	}

	return s, nil
}

func (s *FlashcardsScreen) View(width, height int) string {
	if s.picking {
		return renderPicker("Flashcards", s.user, s.picker, width, height)
	}

	if s.deck.Empty() {
		msg := theme.Subtitle.Render("This set has no words yet.\n\nPress s to pick another set.")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	var b strings.Builder

	pos, total := s.deck.Position()
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%s · card %d of %d", s.deck.SetName(), pos, total)))
	b.WriteString("\n\n")

	card := s.deck.Current()
	if s.deck.Face() == practice.FaceFront {
		b.WriteString(theme.Title.Render(card.Word))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("enter to reveal the definition"))
	} else {
		b.WriteString(theme.Subtitle.Render(card.Word))
		b.WriteString("\n\n")
		b.WriteString(theme.Correct.Render(card.Definition))
	}

	face := theme.Card.Width(48).Align(lipgloss.Center).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, face)
}

func renderPicker(title string, user *vocab.User, picker components.Menu, width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Choose a set to practice"))
	b.WriteString("\n\n")

	if len(user.VocabSets) == 0 {
		b.WriteString(theme.Subtitle.Render("No sets yet. Add vocabulary first."))
		b.WriteString("\n")
	} else {
		b.WriteString(picker.View())
	}

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *FlashcardsScreen) Title() string {
	return "Flashcards"
}

func (s *FlashcardsScreen) KeyHints() []layout.KeyHint {
	if s.picking {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Flip"},
		{Key: "←→", Description: "Prev/Next"},
		{Key: "s", Description: "Change set"},
		{Key: "Esc", Description: "Back"},
	}
}
