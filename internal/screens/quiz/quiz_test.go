package quiz

import (
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Khoiidayy/linguabot/internal/practice"
	"github.com/Khoiidayy/linguabot/internal/vocab"
)

func testUser(words int) *vocab.User {
	u := vocab.NewUser("amy", "pw")
	set := vocab.NewSet("Animals")
	for i := 0; i < words; i++ {
		set.AddWord(vocab.NewWord(
			fmt.Sprintf("word%d", i), fmt.Sprintf("definition%d", i)))
	}
	u.AddSet(set)
	return &u
}

func TestSmallSetBlocksQuizStart(t *testing.T) {
	user := testUser(practice.MinQuizWords - 1)
	s := New(user)

	s.startQuiz(user.VocabSets[0])

	if !s.picking {
		t.Fatal("screen must stay on the picker")
	}
	if s.alertMsg == "" {
		t.Fatal("expected an alert about the set size")
	}
	if !strings.Contains(s.View(80, 24), s.alertMsg) {
		t.Error("alert must be rendered on the picker")
	}
}

func TestStartQuizBuildsFirstQuestion(t *testing.T) {
	user := testUser(6)
	s := New(user)

	s.startQuiz(user.VocabSets[0])

	if s.picking {
		t.Fatal("screen should leave the picker")
	}
	if len(s.choice.Options) != 4 {
		t.Fatalf("question has %d options, want 4", len(s.choice.Options))
	}
	if s.choice.Options[s.choice.CorrectIndex] != s.question.Target.Definition {
		t.Error("CorrectIndex must point at the target definition")
	}
}

func TestAnswerFreezesUntilFeedbackDone(t *testing.T) {
	user := testUser(6)
	s := New(user)
	s.startQuiz(user.VocabSets[0])

	first := s.question.Target.ID

	// Answer the current question.
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !s.revealed {
		t.Fatal("answer should enter the reveal state")
	}
	if cmd == nil {
		t.Fatal("answer should schedule the feedback timer")
	}

	// Keys during the reveal window are ignored.
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.question.Target.ID != first {
		t.Fatal("question must not change during feedback")
	}

	// The timer message advances to a fresh question.
	s.Update(feedbackDoneMsg{})
	if s.revealed {
		t.Error("reveal state should clear on the next question")
	}
	if s.choice.Submitted {
		t.Error("next question must start unanswered")
	}
}

func TestTwinDefinitionsBothAccepted(t *testing.T) {
	u := vocab.NewUser("amy", "pw")
	set := vocab.NewSet("Vehicles")
	set.AddWord(vocab.NewWord("coche", "car"))
	set.AddWord(vocab.NewWord("carro", "car"))
	set.AddWord(vocab.NewWord("perro", "dog"))
	set.AddWord(vocab.NewWord("gato", "cat"))
	u.AddSet(set)

	s := New(&u)
	s.startQuiz(u.VocabSets[0])

	// Draw until one of the twins is the target. With four words both "car"
	// entries always appear among the options.
	for i := 0; s.question.Target.Definition != "car"; i++ {
		if i > 100 {
			t.Fatal("never drew a twin-definition question")
		}
		s.nextQuestion()
	}

	twin := -1
	for i, opt := range s.choice.Options {
		if opt == "car" && i != s.choice.CorrectIndex {
			twin = i
			break
		}
	}
	if twin == -1 {
		t.Fatal("expected both twin definitions among the options")
	}

	s.choice.Selected = twin
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if !s.choice.IsCorrect() {
		t.Fatal("an option matching the target definition must count as correct")
	}
	if !strings.Contains(s.View(80, 24), "Correct!") {
		t.Error("view should confirm the answer")
	}
}

func TestFeedbackTextMatchesOutcome(t *testing.T) {
	user := testUser(6)
	s := New(user)
	s.startQuiz(user.VocabSets[0])

	// Force a wrong answer: select an index other than the correct one.
	wrong := (s.choice.CorrectIndex + 1) % len(s.choice.Options)
	s.choice.Selected = wrong
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	view := s.View(80, 24)
	want := fmt.Sprintf("Incorrect. The answer was %q.", s.question.Target.Definition)
	if !strings.Contains(view, want) {
		t.Errorf("view missing %q", want)
	}
}
