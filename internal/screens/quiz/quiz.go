// Package quiz implements the multiple-choice quiz screen: pick a set,
// answer an endless stream of questions with a short reveal between them.
package quiz

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Khoiidayy/linguabot/internal/practice"
	"github.com/Khoiidayy/linguabot/internal/screen"
	"github.com/Khoiidayy/linguabot/internal/ui/components"
	"github.com/Khoiidayy/linguabot/internal/ui/layout"
	"github.com/Khoiidayy/linguabot/internal/ui/theme"
	"github.com/Khoiidayy/linguabot/internal/vocab"
)

type feedbackDoneMsg struct{}

// QuizScreen drives one quiz session.
type QuizScreen struct {
	user *vocab.User

	picker   components.Menu
	quiz     *practice.Quiz
	choice   components.MultiChoice
	question practice.Question
	picking  bool
	revealed bool
	alertMsg string
}

var _ screen.Screen = (*QuizScreen)(nil)

// New creates the quiz screen in its set-picking phase.
func New(user *vocab.User) *QuizScreen {
	s := &QuizScreen{user: user, picking: true}
	s.picker = newSetPicker(user, s.startQuiz)
	return s
}

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

func (s *QuizScreen) startQuiz(set vocab.VocabSet) tea.Cmd {
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	q, err := practice.NewQuiz(set, rng)
	if err != nil {
		// Too few words: stay on the picker and force another choice.
		s.alertMsg = fmt.Sprintf(
			"%q needs at least %d words for a quiz.", set.Name, practice.MinQuizWords)
		return nil
	}

	s.quiz = q
	s.picking = false
	s.alertMsg = ""
	s.nextQuestion()
	return nil
}

func (s *QuizScreen) nextQuestion() {
	s.question = s.quiz.Next()
	s.revealed = false

	correct := 0
	for i, opt := range s.question.Options {
		if opt == s.question.Target.Definition {
			correct = i
			break
		}
	}
	prompt := fmt.Sprintf("What does %q mean?", s.question.Target.Word)
	s.choice = components.NewMultiChoice(prompt, s.question.Options, correct)
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(feedbackDoneMsg); ok {
		if !s.picking {
			s.nextQuestion()
		}
		return s, nil
	}

	if s.picking {
		var cmd tea.Cmd
		s.picker, cmd = s.picker.Update(msg)
		return s, cmd
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "s" && !s.revealed {
		s.picking = true
		s.quiz = nil
		return s, nil
	}

	if s.revealed {
		// Input is frozen during the reveal window.
		return s, nil
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	if s.choice.Submitted {
		s.revealed = true
		return s, tea.Tick(practice.FeedbackDuration, func(time.Time) tea.Msg {
			return feedbackDoneMsg{}
		})
	}
	return s, cmd
}

func (s *QuizScreen) View(width, height int) string {
	if s.picking {
		return s.renderPicker(width, height)
	}

	var b strings.Builder

	b.WriteString(theme.Subtitle.Render(s.quiz.SetName()))
	b.WriteString("\n\n")
	b.WriteString(s.choice.View())

	if s.revealed {
		b.WriteString("\n")
		if s.choice.IsCorrect() {
			b.WriteString(theme.Correct.Render("Correct!"))
		} else {
			b.WriteString(theme.Incorrect.Render(
				fmt.Sprintf("Incorrect. The answer was %q.", s.question.Target.Definition)))
		}
	}

	card := theme.Card.Width(56).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *QuizScreen) renderPicker(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Multiple Choice Quiz"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Choose a set to practice"))
	b.WriteString("\n\n")

	if len(s.user.VocabSets) == 0 {
		b.WriteString(theme.Subtitle.Render("No sets yet. Add vocabulary first."))
		b.WriteString("\n")
	} else {
		b.WriteString(s.picker.View())
	}

	if s.alertMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render(s.alertMsg))
		b.WriteString("\n")
	}

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.picking {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Answer"},
		{Key: "s", Description: "Change set"},
		{Key: "Esc", Description: "Back"},
	}
}
