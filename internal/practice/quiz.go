package practice

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/Khoiidayy/linguabot/internal/vocab"
)

// MinQuizWords is the smallest set a multiple-choice quiz can run on: one
// target plus three distractors.
const MinQuizWords = 4

// FeedbackDuration is how long correct/incorrect feedback is shown with
// input disabled before the next question appears.
const FeedbackDuration = 1500 * time.Millisecond

// ErrTooFewWords is returned when a set cannot supply enough distractors.
var ErrTooFewWords = errors.New("need at least 4 words in a set for multiple choice")

// Question is a single multiple-choice round: identify the target word's
// definition among four options.
type Question struct {
	Target  vocab.WordItem
	Options []string
}

// Correct reports whether the chosen option text is the target's
// definition. Judged by exact string equality: when two words share one
// definition, either option counts (known ambiguity, kept as-is).
func (q Question) Correct(option string) bool {
	return option == q.Target.Definition
}

// Quiz generates an endless stream of questions over one set. No score is
// kept; feedback is per-question only.
type Quiz struct {
	set vocab.VocabSet
	rng *rand.Rand
}

// NewQuiz validates the set size and returns a quiz using the given random
// source.
func NewQuiz(set vocab.VocabSet, rng *rand.Rand) (*Quiz, error) {
	if len(set.Words) < MinQuizWords {
		return nil, ErrTooFewWords
	}
	return &Quiz{set: set, rng: rng}, nil
}

// Next builds a fresh question: a uniformly random target, three distinct
// distractor words sampled without replacement from the rest, and the four
// definitions in shuffled order.
func (q *Quiz) Next() Question {
	target := q.set.Words[q.rng.IntN(len(q.set.Words))]

	others := make([]vocab.WordItem, 0, len(q.set.Words)-1)
	for _, w := range q.set.Words {
		if w.ID != target.ID {
			others = append(others, w)
		}
	}

	options := []string{target.Definition}
	for _, w := range Sample(q.rng, others, MinQuizWords-1) {
		options = append(options, w.Definition)
	}
	Shuffle(q.rng, options)

	return Question{Target: target, Options: options}
}

// SetName returns the name of the set being quizzed.
func (q *Quiz) SetName() string {
	return q.set.Name
}
