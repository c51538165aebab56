// Package login implements the sign-in / registration screen shown when no
// session is active.
package login

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Khoiidayy/linguabot/internal/auth"
	"github.com/Khoiidayy/linguabot/internal/llm"
	"github.com/Khoiidayy/linguabot/internal/router"
	"github.com/Khoiidayy/linguabot/internal/screen"
	"github.com/Khoiidayy/linguabot/internal/screens/mainmenu"
	"github.com/Khoiidayy/linguabot/internal/ui/components"
	"github.com/Khoiidayy/linguabot/internal/ui/layout"
	"github.com/Khoiidayy/linguabot/internal/ui/theme"
	"github.com/Khoiidayy/linguabot/internal/vocab"
)

type mode int

const (
	modeLogin mode = iota
	modeRegister
)

// LoginScreen collects credentials and establishes a session.
type LoginScreen struct {
	svc      *auth.Service
	provider llm.Provider

	mode     mode
	username components.TextInput
	password components.TextInput
	confirm  components.TextInput
	focus    int
	errMsg   string
}

var _ screen.Screen = (*LoginScreen)(nil)

// New creates the login screen. provider may be nil when no LLM API key is
// configured; it is only threaded through to the main menu.
func New(svc *auth.Service, provider llm.Provider) *LoginScreen {
	s := &LoginScreen{
		svc:      svc,
		provider: provider,
		username: components.NewTextInput("username", 64),
		password: components.NewPasswordInput("password", 128),
		confirm:  components.NewPasswordInput("confirm password", 128),
	}
	return s
}

func (s *LoginScreen) Init() tea.Cmd {
	return s.username.Focus()
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			return s, s.cycleFocus(1)
		case "shift+tab", "up":
			return s, s.cycleFocus(-1)
		case "ctrl+r":
			s.toggleMode()
			return s, nil
		case "enter":
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case 0:
		s.username, cmd = s.username.Update(msg)
	case 1:
		s.password, cmd = s.password.Update(msg)
	case 2:
		s.confirm, cmd = s.confirm.Update(msg)
	}
	return s, cmd
}

func (s *LoginScreen) fieldCount() int {
	if s.mode == modeRegister {
		return 3
	}
	return 2
}

func (s *LoginScreen) cycleFocus(dir int) tea.Cmd {
	n := s.fieldCount()
	s.focus = (s.focus + dir + n) % n

	s.username.Blur()
	s.password.Blur()
	s.confirm.Blur()

	switch s.focus {
	case 0:
		return s.username.Focus()
	case 1:
		return s.password.Focus()
	default:
		return s.confirm.Focus()
	}
}

func (s *LoginScreen) toggleMode() {
	if s.mode == modeLogin {
		s.mode = modeRegister
	} else {
		s.mode = modeLogin
		if s.focus > 1 {
			s.focus = 1
		}
	}
	s.errMsg = ""
}

func (s *LoginScreen) submit() tea.Cmd {
	ctx := context.Background()

	var user *vocab.User
	var err error
	if s.mode == modeRegister {
		user, err = s.svc.Register(ctx, s.username.Value(), s.password.Value(), s.confirm.Value())
	} else {
		user, err = s.svc.Login(ctx, s.username.Value(), s.password.Value())
	}
	if err != nil {
		s.errMsg = loginErrorText(err)
		return nil
	}

	home := mainmenu.New(user, s.svc, s.provider)
	return func() tea.Msg {
		return router.ResetScreenMsg{Screen: home}
	}
}

// loginErrorText maps service errors to the message shown under the form.
func loginErrorText(err error) string {
	for _, known := range []error{
		auth.ErrEmptyFields,
		auth.ErrPasswordMismatch,
		auth.ErrUsernameWhitespace,
		auth.ErrDuplicateUsername,
		auth.ErrInvalidCredentials,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return "Something went wrong. Please try again."
}

func (s *LoginScreen) View(width, height int) string {
	var b strings.Builder

	heading := "Welcome back"
	action := "Sign in"
	toggle := "Ctrl+R to create an account"
	if s.mode == modeRegister {
		heading = "Create your account"
		action = "Register"
		toggle = "Ctrl+R to sign in instead"
	}

	b.WriteString(theme.Title.Render(heading))
	b.WriteString("\n\n")

	b.WriteString(fieldLabel("Username", s.focus == 0))
	b.WriteString("\n")
	b.WriteString(s.username.View())
	b.WriteString("\n\n")

	b.WriteString(fieldLabel("Password", s.focus == 1))
	b.WriteString("\n")
	b.WriteString(s.password.View())
	b.WriteString("\n")

	if s.mode == modeRegister {
		b.WriteString("\n")
		b.WriteString(fieldLabel("Confirm password", s.focus == 2))
		b.WriteString("\n")
		b.WriteString(s.confirm.View())
		b.WriteString("\n")
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render(s.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("Enter to " + strings.ToLower(action) + " · " + toggle))

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func fieldLabel(label string, focused bool) string {
	if focused {
		return theme.Selected.Render("▸ " + label)
	}
	return theme.Subtitle.Render("  " + label)
}

func (s *LoginScreen) Title() string {
	if s.mode == modeRegister {
		return "Register"
	}
	return "Login"
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+R", Description: "Switch mode"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
