// Package chat implements the AI tutor conversation screen.
package chat

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Khoiidayy/linguabot/internal/llm"
	"github.com/Khoiidayy/linguabot/internal/screen"
	"github.com/Khoiidayy/linguabot/internal/tutor"
	"github.com/Khoiidayy/linguabot/internal/ui/components"
	"github.com/Khoiidayy/linguabot/internal/ui/layout"
	"github.com/Khoiidayy/linguabot/internal/ui/theme"
	"github.com/Khoiidayy/linguabot/internal/vocab"
)

const (
	tickInterval = 300 * time.Millisecond

	startErrText = "Error connecting to AI Tutor. Check API Key."
	sendErrText  = "Connection error. Please try again."
)

type replyMsg struct {
	Text string
	Err  error
}

type tickMsg time.Time

// ChatScreen runs one tutor session. The session's vocabulary is captured
// when the screen is created.
type ChatScreen struct {
	session  *tutor.Session
	input    components.TextInput
	messages []vocab.ChatMessage
	waiting  bool
	starting bool
	ticks    int
}

var _ screen.Screen = (*ChatScreen)(nil)

// New creates the chat screen. provider may be nil when no API key is
// configured; the screen then shows a hint instead of a conversation.
func New(user *vocab.User, provider llm.Provider) *ChatScreen {
	s := &ChatScreen{
		input: components.NewTextInput("type a message", 512),
	}
	if provider != nil {
		s.session = tutor.NewSession(provider, user.VocabSets)
	}
	return s
}

func (s *ChatScreen) Init() tea.Cmd {
	if s.session == nil {
		return nil
	}
	s.waiting = true
	s.starting = true
	return tea.Batch(
		s.input.Focus(),
		s.startCmd(),
		s.tick(),
	)
}

// The commands run with a background context; the provider itself bounds
// each request with the configured timeout.
func (s *ChatScreen) startCmd() tea.Cmd {
	session := s.session
	return func() tea.Msg {
		text, err := session.Start(context.Background())
		return replyMsg{Text: text, Err: err}
	}
}

func (s *ChatScreen) sendCmd(text string) tea.Cmd {
	session := s.session
	return func() tea.Msg {
		reply, err := session.Send(context.Background(), text)
		return replyMsg{Text: reply, Err: err}
	}
}

func (s *ChatScreen) tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !s.waiting {
			return s, nil
		}
		s.ticks++
		return s, s.tick()

	case replyMsg:
		s.waiting = false
		text := msg.Text
		if msg.Err != nil {
			// Failures show up in the conversation as a tutor turn; the
			// user can simply send again.
			if s.starting {
				text = startErrText
			} else {
				text = sendErrText
			}
		}
		s.starting = false
		s.messages = append(s.messages, vocab.ChatMessage{
			Role: vocab.RoleModel,
			Text: text,
		})
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return s, s.submit()
		}
	}

	if s.waiting {
		// Input is disabled while a request is in flight.
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ChatScreen) submit() tea.Cmd {
	if s.session == nil || s.waiting {
		return nil
	}
	text := strings.TrimSpace(s.input.Value())
	if text == "" {
		return nil
	}

	s.messages = append(s.messages, vocab.ChatMessage{
		Role: vocab.RoleUser,
		Text: text,
	})
	s.input.Reset()
	s.waiting = true

	return tea.Batch(s.sendCmd(text), s.tick())
}

func (s *ChatScreen) View(width, height int) string {
	if s.session == nil {
		msg := theme.Subtitle.Render(
			"The AI Tutor needs an API key.\n\nSet GEMINI_API_KEY (or another provider's key)\nand restart LinguaBot.")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	contentWidth := width - 8
	if contentWidth < 20 {
		contentWidth = 20
	}

	userStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	botStyle := lipgloss.NewStyle().Foreground(theme.Text)
	wrap := lipgloss.NewStyle().Width(contentWidth)

	var lines []string
	for _, m := range s.messages {
		if m.Role == vocab.RoleUser {
			lines = append(lines, userStyle.Render("You: ")+wrap.Render(m.Text))
		} else {
			lines = append(lines, botStyle.Render("Tutor: ")+wrap.Render(m.Text))
		}
		lines = append(lines, "")
	}

	if s.waiting {
		dots := strings.Repeat(".", s.ticks%4)
		lines = append(lines, theme.Hint.Render("Tutor is thinking"+dots))
	}

	// Keep only what fits above the input row.
	transcript := strings.Join(lines, "\n")
	avail := height - 3
	if avail < 1 {
		avail = 1
	}
	split := strings.Split(transcript, "\n")
	if len(split) > avail {
		split = split[len(split)-avail:]
	}
	transcript = strings.Join(split, "\n")

	input := s.input.View()
	if s.waiting {
		input = theme.Hint.Render("waiting for the tutor…")
	}

	body := transcript + "\n\n" + input
	return lipgloss.NewStyle().Padding(1, 4).Width(width).Render(body)
}

func (s *ChatScreen) Title() string {
	return "AI Tutor"
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "Back"},
	}
}
