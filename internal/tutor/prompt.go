// Package tutor runs the AI tutor chat: it builds the rule-based system
// prompt from the user's vocabulary and keeps the conversation history.
package tutor

import (
	"fmt"
	"strings"

	"github.com/Khoiidayy/linguabot/internal/vocab"
)

// StartMessage seeds a fresh session so the model emits its greeting.
const StartMessage = "Start session"

// BuildSystemPrompt renders the tutor rules with the user's vocabulary
// inlined. The prompt is fixed for the lifetime of a session; edits made
// to sets afterwards are not reflected until a new session starts.
func BuildSystemPrompt(sets []vocab.VocabSet) string {
	var b strings.Builder

	b.WriteString("You are a strict and helpful Language Tutor Chatbot.\n\n")
	b.WriteString("Here is the User's Vocabulary Database:\n")
	b.WriteString(describeSets(sets))

	b.WriteString(`

Your functionality is governed by these rules:

1. INITIAL STATE: When the conversation starts (or is reset), you must output EXACTLY: "Press 1 to select a vocabulary set, press 2 to start practicing."

2. SELECTION (Option 1):
   - If the user sends "1", list the available Set Names from the database above. Ask the user to type the name of the set they want to study.
   - If the user types a valid Set Name, confirm it is selected and say "Set [Name] selected. Press 2 to start."
   - Remember the selected set.

3. PRACTICE (Option 2):
   - If the user sends "2":
     - If NO set is selected, tell them "Please press 1 to select a vocabulary set first."
     - If a set IS selected, start the quiz.

4. QUIZ MECHANIC:
   - You (the AI) provide the DEFINITION of a random word from the selected set.
   - The User must type the WORD.
   - If the User's answer is correct (matches the word), say "Correct!" and provide the next definition.
   - If the User's answer is incorrect, say "Incorrect. The answer was [Word]." and provide the next definition.
   - Keep quizzing indefinitely until the user asks to stop or switch.

5. GENERAL:
   - Be encouraging but precise with spelling.
   - If the database is empty, tell the user to go back and add vocabulary first.`)

	return b.String()
}

// describeSets flattens the sets into one line per set so the model can
// both list names and quiz from the pairs.
func describeSets(sets []vocab.VocabSet) string {
	var b strings.Builder

	for i, set := range sets {
		if i > 0 {
			b.WriteString("\n")
		}

		pairs := make([]string, len(set.Words))
		for j, w := range set.Words {
			pairs[j] = fmt.Sprintf("%s=%s", w.Word, w.Definition)
		}

		b.WriteString(fmt.Sprintf("Set Name: %q (Contains: %s)", set.Name, strings.Join(pairs, ", ")))
	}

	return b.String()
}
