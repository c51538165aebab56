// Package vocab holds the domain model: users, vocabulary sets, and the
// word/definition pairs inside them. The JSON field names match the record
// shape persisted by the store.
package vocab

import (
	"strings"

	"github.com/google/uuid"
)

// WordItem is a single word/definition pair. Items are immutable once
// created; there is no edit-in-place, only add and delete.
type WordItem struct {
	ID         string `json:"id"`
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

// VocabSet is a named, ordered collection of words. Order is insertion
// order and only matters for display.
type VocabSet struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Words []WordItem `json:"words"`
}

// User owns a sequence of vocabulary sets. The password is stored in plain
// text; all data is local to this machine.
type User struct {
	Username     string     `json:"username"`
	Password     string     `json:"password,omitempty"`
	ProfileImage string     `json:"profileImage,omitempty"`
	VocabSets    []VocabSet `json:"vocabSets"`
}

// ChatRole identifies the author of a chat transcript entry.
type ChatRole string

const (
	RoleUser  ChatRole = "user"
	RoleModel ChatRole = "model"
)

// ChatMessage is one entry in a tutor chat transcript. Transcripts live
// only in the active chat session's memory and are never persisted.
type ChatMessage struct {
	Role ChatRole
	Text string
}

// NewSet creates an empty set with a fresh id. The name is stored as given;
// callers validate and trim before constructing.
func NewSet(name string) VocabSet {
	return VocabSet{
		ID:    uuid.New().String(),
		Name:  name,
		Words: []WordItem{},
	}
}

// NewWord creates a word item with a fresh id.
func NewWord(word, definition string) WordItem {
	return WordItem{
		ID:         uuid.New().String(),
		Word:       word,
		Definition: definition,
	}
}

// NewUser creates a user with no sets.
func NewUser(username, password string) User {
	return User{
		Username:  username,
		Password:  password,
		VocabSets: []VocabSet{},
	}
}

// SetByID returns the set with the given id, or nil. A missing set is a
// recoverable state, not an error: dangling ids render as "not found".
func (u *User) SetByID(id string) *VocabSet {
	for i := range u.VocabSets {
		if u.VocabSets[i].ID == id {
			return &u.VocabSets[i]
		}
	}
	return nil
}

// AddSet appends a set to the user's sequence.
func (u *User) AddSet(s VocabSet) {
	u.VocabSets = append(u.VocabSets, s)
}

// DeleteSet removes the set with the given id, cascading its words.
// Returns false if no set matched.
func (u *User) DeleteSet(id string) bool {
	for i := range u.VocabSets {
		if u.VocabSets[i].ID == id {
			u.VocabSets = append(u.VocabSets[:i], u.VocabSets[i+1:]...)
			return true
		}
	}
	return false
}

// TotalWords counts words across all of the user's sets.
func (u *User) TotalWords() int {
	n := 0
	for i := range u.VocabSets {
		n += len(u.VocabSets[i].Words)
	}
	return n
}

// WordByID returns the word with the given id, or nil.
func (s *VocabSet) WordByID(id string) *WordItem {
	for i := range s.Words {
		if s.Words[i].ID == id {
			return &s.Words[i]
		}
	}
	return nil
}

// AddWord appends a word to the set.
func (s *VocabSet) AddWord(w WordItem) {
	s.Words = append(s.Words, w)
}

// DeleteWord removes the word with the given id. Returns false if no word
// matched.
func (s *VocabSet) DeleteWord(id string) bool {
	for i := range s.Words {
		if s.Words[i].ID == id {
			s.Words = append(s.Words[:i], s.Words[i+1:]...)
			return true
		}
	}
	return false
}

// ValidUsername reports whether a username is acceptable for registration:
// non-empty with no embedded whitespace.
func ValidUsername(name string) bool {
	if name == "" {
		return false
	}
	return !strings.ContainsAny(name, " \t\n\r")
}
