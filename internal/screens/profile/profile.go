// Package profile shows account details and owns logout and avatar import.
package profile

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Khoiidayy/linguabot/internal/auth"
	"github.com/Khoiidayy/linguabot/internal/avatar"
	"github.com/Khoiidayy/linguabot/internal/screen"
	"github.com/Khoiidayy/linguabot/internal/ui/components"
	"github.com/Khoiidayy/linguabot/internal/ui/layout"
	"github.com/Khoiidayy/linguabot/internal/ui/theme"
	"github.com/Khoiidayy/linguabot/internal/vocab"
)

// LoggedOutMsg tells the app model to clear the session UI and return to
// the login screen. Emitted after the session record is already cleared.
type LoggedOutMsg struct{}

// ProfileScreen shows the account summary.
type ProfileScreen struct {
	user *vocab.User
	svc  *auth.Service

	importing bool
	pathInput components.TextInput
	statusMsg string
	isErr     bool
}

var _ screen.Screen = (*ProfileScreen)(nil)

// New creates the profile screen.
func New(user *vocab.User, svc *auth.Service) *ProfileScreen {
	return &ProfileScreen{
		user:      user,
		svc:       svc,
		pathInput: components.NewTextInput("path to an image file", 512),
	}
}

func (p *ProfileScreen) Init() tea.Cmd {
	return nil
}

func (p *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	if p.importing {
		switch kmsg.String() {
		case "enter":
			p.importAvatar()
			return p, nil
		case "esc":
			p.importing = false
			p.statusMsg = ""
			return p, nil
		}
		var cmd tea.Cmd
		p.pathInput, cmd = p.pathInput.Update(kmsg)
		return p, cmd
	}

	switch kmsg.String() {
	case "a":
		p.importing = true
		p.statusMsg = ""
		p.pathInput.Reset()
		return p, p.pathInput.Focus()
	case "l":
		return p, p.logout()
	}

	return p, nil
}

func (p *ProfileScreen) importAvatar() {
	path := strings.TrimSpace(p.pathInput.Value())
	if path == "" {
		p.statusMsg = "Please enter a file path."
		p.isErr = true
		return
	}

	dataURL, err := avatar.FromFile(path)
	if err != nil {
		p.statusMsg = "Could not read that image file."
		p.isErr = true
		return
	}

	p.user.ProfileImage = dataURL
	if err := p.svc.Save(context.Background(), p.user); err != nil {
		p.statusMsg = "Could not save. Please try again."
		p.isErr = true
		return
	}

	p.importing = false
	p.statusMsg = "Avatar updated."
	p.isErr = false
}

func (p *ProfileScreen) logout() tea.Cmd {
	if err := p.svc.Logout(context.Background()); err != nil {
		p.statusMsg = "Could not log out. Please try again."
		p.isErr = true
		return nil
	}
	return func() tea.Msg {
		return LoggedOutMsg{}
	}
}

func (p *ProfileScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render(p.user.Username))
	b.WriteString("\n\n")

	avatarLine := p.user.ProfileImage
	if avatarLine == "" {
		avatarLine = avatar.DefaultURL(p.user.Username)
	}
	if len(avatarLine) > 60 {
		avatarLine = avatarLine[:57] + "..."
	}

	b.WriteString(theme.Body.Render(fmt.Sprintf("Sets:   %d", len(p.user.VocabSets))))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Words:  %d", p.user.TotalWords())))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render("Avatar: ") + theme.Hint.Render(avatarLine))
	b.WriteString("\n")

	if p.importing {
		b.WriteString("\n")
		b.WriteString(theme.Body.Render("Image file path:"))
		b.WriteString("\n")
		b.WriteString(p.pathInput.View())
		b.WriteString("\n")
	}

	if p.statusMsg != "" {
		b.WriteString("\n")
		if p.isErr {
			b.WriteString(theme.Incorrect.Render(p.statusMsg))
		} else {
			b.WriteString(theme.Correct.Render(p.statusMsg))
		}
		b.WriteString("\n")
	}

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (p *ProfileScreen) Title() string {
	return "Profile"
}

// HandlesEscape claims Esc while the avatar path form is open.
func (p *ProfileScreen) HandlesEscape() bool {
	return p.importing
}

func (p *ProfileScreen) KeyHints() []layout.KeyHint {
	if p.importing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Import"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "a", Description: "Set avatar"},
		{Key: "l", Description: "Log out"},
		{Key: "Esc", Description: "Back"},
	}
}
