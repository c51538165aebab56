package practice

import (
	"math/rand/v2"
	"testing"

	"github.com/Khoiidayy/linguabot/internal/vocab"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestNewQuizRequiresFourWords(t *testing.T) {
	rng := testRNG()

	for n := 0; n < MinQuizWords; n++ {
		if _, err := NewQuiz(testSet(n), rng); err != ErrTooFewWords {
			t.Errorf("n=%d: err = %v, want ErrTooFewWords", n, err)
		}
	}
	if _, err := NewQuiz(testSet(MinQuizWords), rng); err != nil {
		t.Errorf("n=4: err = %v, want nil", err)
	}
}

func TestQuestionShape(t *testing.T) {
	q, err := NewQuiz(testSet(6), testRNG())
	if err != nil {
		t.Fatalf("new quiz: %v", err)
	}

	for i := 0; i < 50; i++ {
		question := q.Next()

		if len(question.Options) != 4 {
			t.Fatalf("len(Options) = %d, want 4", len(question.Options))
		}

		// Exactly one option is the target's definition (the test set has
		// all-distinct definitions).
		matches := 0
		seen := make(map[string]bool)
		for _, opt := range question.Options {
			if opt == question.Target.Definition {
				matches++
			}
			if seen[opt] {
				t.Fatalf("duplicate option %q with distinct definitions", opt)
			}
			seen[opt] = true
		}
		if matches != 1 {
			t.Fatalf("target definition appears %d times, want 1", matches)
		}

		if !question.Correct(question.Target.Definition) {
			t.Fatal("choosing the target definition must be correct")
		}
		for _, opt := range question.Options {
			if opt != question.Target.Definition && question.Correct(opt) {
				t.Fatalf("distractor %q judged correct", opt)
			}
		}
	}
}

// Every word should eventually show up as the target.
func TestTargetSelectionCoversSet(t *testing.T) {
	set := testSet(5)
	q, err := NewQuiz(set, testRNG())
	if err != nil {
		t.Fatalf("new quiz: %v", err)
	}

	hit := make(map[string]bool)
	for i := 0; i < 200; i++ {
		hit[q.Next().Target.ID] = true
	}
	if len(hit) != len(set.Words) {
		t.Errorf("targets drawn from %d of %d words", len(hit), len(set.Words))
	}
}

// Duplicate definitions make a question ambiguous; correctness stays plain
// string equality, so the twin option also passes. Documented behavior.
func TestDuplicateDefinitionsStayAmbiguous(t *testing.T) {
	s := vocab.NewSet("Twins")
	s.AddWord(vocab.NewWord("coche", "car"))
	s.AddWord(vocab.NewWord("carro", "car"))
	s.AddWord(vocab.NewWord("gato", "cat"))
	s.AddWord(vocab.NewWord("perro", "dog"))

	q, err := NewQuiz(s, testRNG())
	if err != nil {
		t.Fatalf("new quiz: %v", err)
	}

	for i := 0; i < 20; i++ {
		question := q.Next()
		if question.Target.Word == "coche" || question.Target.Word == "carro" {
			if !question.Correct("car") {
				t.Fatal(`Correct("car") = false for a car target`)
			}
		}
	}
}

func TestSampleProperties(t *testing.T) {
	rng := testRNG()
	src := []int{1, 2, 3, 4, 5, 6, 7}

	for i := 0; i < 100; i++ {
		got := Sample(rng, src, 3)
		if len(got) != 3 {
			t.Fatalf("len = %d, want 3", len(got))
		}
		seen := make(map[int]bool)
		for _, v := range got {
			if seen[v] {
				t.Fatalf("sample %v drew %d twice", got, v)
			}
			seen[v] = true
		}
	}

	// The source slice must be untouched.
	for i, v := range src {
		if v != i+1 {
			t.Fatalf("source mutated: %v", src)
		}
	}
}

func TestSamplePanicsWhenOversized(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for k > len(s)")
		}
	}()
	Sample(testRNG(), []int{1, 2}, 3)
}

func TestShufflePermutes(t *testing.T) {
	rng := testRNG()
	s := []string{"a", "b", "c", "d"}
	Shuffle(rng, s)

	want := map[string]bool{"a": true, "b": true, "c": true, "d": true}
	for _, v := range s {
		if !want[v] {
			t.Fatalf("shuffle lost or duplicated elements: %v", s)
		}
		delete(want, v)
	}
}
