// Package practice implements the local study engines: the flashcard pager
// and the multiple-choice question generator. All engine state is per
// session and volatile; nothing here persists.
package practice

import "github.com/Khoiidayy/linguabot/internal/vocab"

// Face identifies which side of a flashcard is up.
type Face int

const (
	FaceFront Face = iota // the word
	FaceBack              // the definition
)

// Deck pages through a set's words cyclically. Next and Prev wrap at both
// ends and always reset the card to its front; Flip only toggles the face.
type Deck struct {
	set   vocab.VocabSet
	index int
	face  Face
}

// NewDeck creates a deck positioned on the first card, front up.
func NewDeck(set vocab.VocabSet) *Deck {
	return &Deck{set: set}
}

// Empty reports whether the set has no words. An empty deck supports no
// operation other than returning to set selection.
func (d *Deck) Empty() bool {
	return len(d.set.Words) == 0
}

// Current returns the word under the cursor. Call only on non-empty decks.
func (d *Deck) Current() vocab.WordItem {
	return d.set.Words[d.index]
}

// Next advances cyclically and resets the face to front.
func (d *Deck) Next() {
	if d.Empty() {
		return
	}
	d.index = (d.index + 1) % len(d.set.Words)
	d.face = FaceFront
}

// Prev steps back cyclically and resets the face to front.
func (d *Deck) Prev() {
	if d.Empty() {
		return
	}
	n := len(d.set.Words)
	d.index = (d.index - 1 + n) % n
	d.face = FaceFront
}

// Flip toggles the face without moving the cursor.
func (d *Deck) Flip() {
	if d.face == FaceFront {
		d.face = FaceBack
	} else {
		d.face = FaceFront
	}
}

// Face returns the side currently up.
func (d *Deck) Face() Face {
	return d.face
}

// Position returns the 1-based cursor position and the deck size.
func (d *Deck) Position() (int, int) {
	return d.index + 1, len(d.set.Words)
}

// SetName returns the name of the set being studied.
func (d *Deck) SetName() string {
	return d.set.Name
}
