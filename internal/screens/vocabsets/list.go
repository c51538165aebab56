// Package vocabsets implements vocabulary management: the set list with
// create/delete, and the per-set word editor.
package vocabsets

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Khoiidayy/linguabot/internal/auth"
	"github.com/Khoiidayy/linguabot/internal/router"
	"github.com/Khoiidayy/linguabot/internal/screen"
	"github.com/Khoiidayy/linguabot/internal/ui/components"
	"github.com/Khoiidayy/linguabot/internal/ui/layout"
	"github.com/Khoiidayy/linguabot/internal/ui/theme"
	"github.com/Khoiidayy/linguabot/internal/vocab"
)

// ListScreen shows the user's sets and lets them create, open, and delete.
type ListScreen struct {
	user *vocab.User
	svc  *auth.Service

	selected   int
	creating   bool
	nameInput  components.TextInput
	confirming bool // pending delete confirmation for the selected set
	errMsg     string
}

var _ screen.Screen = (*ListScreen)(nil)

// NewList creates the set list screen.
func NewList(user *vocab.User, svc *auth.Service) *ListScreen {
	return &ListScreen{
		user:      user,
		svc:       svc,
		nameInput: components.NewTextInput("set name", 64),
	}
}

func (s *ListScreen) Init() tea.Cmd {
	return nil
}

func (s *ListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.creating {
		return s.updateCreating(kmsg)
	}
	if s.confirming {
		return s.updateConfirming(kmsg)
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.user.VocabSets)-1 {
			s.selected++
		}
	case "n":
		s.creating = true
		s.errMsg = ""
		s.nameInput.Reset()
		return s, s.nameInput.Focus()
	case "d":
		if len(s.user.VocabSets) > 0 {
			s.confirming = true
		}
	case "enter":
		if s.selected < len(s.user.VocabSets) {
			id := s.user.VocabSets[s.selected].ID
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: NewEditor(s.user, s.svc, id)}
			}
		}
	}

	return s, nil
}

func (s *ListScreen) updateCreating(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "enter":
		name := strings.TrimSpace(s.nameInput.Value())
		if name == "" {
			s.errMsg = "Set name must not be empty."
			return s, nil
		}
		s.user.AddSet(vocab.NewSet(name))
		if err := s.svc.Save(context.Background(), s.user); err != nil {
			s.errMsg = "Could not save. Please try again."
			return s, nil
		}
		s.creating = false
		s.errMsg = ""
		s.selected = len(s.user.VocabSets) - 1
		return s, nil
	case "esc":
		// Handled here so the global Esc does not pop the whole screen
		// while the inline form is open.
		s.creating = false
		s.errMsg = ""
		return s, nil
	}

	var cmd tea.Cmd
	s.nameInput, cmd = s.nameInput.Update(kmsg)
	return s, cmd
}

func (s *ListScreen) updateConfirming(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "y":
		if s.selected < len(s.user.VocabSets) {
			s.user.DeleteSet(s.user.VocabSets[s.selected].ID)
			if err := s.svc.Save(context.Background(), s.user); err != nil {
				s.errMsg = "Could not save. Please try again."
			}
			if s.selected >= len(s.user.VocabSets) && s.selected > 0 {
				s.selected--
			}
		}
		s.confirming = false
	case "n", "esc":
		s.confirming = false
	}
	return s, nil
}

func (s *ListScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Your Vocabulary Sets"))
	b.WriteString("\n\n")

	if len(s.user.VocabSets) == 0 && !s.creating {
		b.WriteString(theme.Subtitle.Render("No sets yet. Press n to create one."))
		b.WriteString("\n")
	}

	for i, set := range s.user.VocabSets {
		line := fmt.Sprintf("%s  (%d words)", set.Name, len(set.Words))
		if i == s.selected && !s.creating {
			b.WriteString(theme.Selected.Render("  ▸ " + line))
		} else {
			b.WriteString(theme.Unselected.Render("    " + line))
		}
		b.WriteString("\n")
	}

	if s.creating {
		b.WriteString("\n")
		b.WriteString(theme.Body.Render("New set name:"))
		b.WriteString("\n")
		b.WriteString(s.nameInput.View())
		b.WriteString("\n")
	}

	if s.confirming && s.selected < len(s.user.VocabSets) {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render(fmt.Sprintf(
			"Delete %q and all its words? (y/n)", s.user.VocabSets[s.selected].Name)))
		b.WriteString("\n")
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render(s.errMsg))
		b.WriteString("\n")
	}

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *ListScreen) Title() string {
	return "Save Vocab"
}

// HandlesEscape claims Esc while the inline form or confirmation is open.
func (s *ListScreen) HandlesEscape() bool {
	return s.creating || s.confirming
}

func (s *ListScreen) KeyHints() []layout.KeyHint {
	if s.creating {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Create"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "n", Description: "New set"},
		{Key: "d", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}
