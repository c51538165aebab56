package vocab

import "testing"

func TestSetByID(t *testing.T) {
	u := NewUser("amy", "pw1")
	s := NewSet("Chapter 1")
	u.AddSet(s)

	if got := u.SetByID(s.ID); got == nil || got.Name != "Chapter 1" {
		t.Fatalf("SetByID(%q) = %v, want Chapter 1", s.ID, got)
	}
	if got := u.SetByID("missing"); got != nil {
		t.Errorf("SetByID(missing) = %v, want nil", got)
	}
}

func TestDeleteSetCascades(t *testing.T) {
	u := NewUser("amy", "pw1")
	keep := NewSet("Keep")
	keep.AddWord(NewWord("perro", "dog"))
	gone := NewSet("Gone")
	gone.AddWord(NewWord("gato", "cat"))
	gone.AddWord(NewWord("pez", "fish"))
	u.AddSet(keep)
	u.AddSet(gone)

	if !u.DeleteSet(gone.ID) {
		t.Fatal("DeleteSet returned false for existing set")
	}
	if len(u.VocabSets) != 1 {
		t.Fatalf("len(VocabSets) = %d, want 1", len(u.VocabSets))
	}
	if u.VocabSets[0].Name != "Keep" || len(u.VocabSets[0].Words) != 1 {
		t.Errorf("surviving set altered: %+v", u.VocabSets[0])
	}
	if u.DeleteSet(gone.ID) {
		t.Error("DeleteSet returned true for already-deleted set")
	}
}

func TestDeleteWord(t *testing.T) {
	s := NewSet("Animals")
	w1 := NewWord("gato", "cat")
	w2 := NewWord("perro", "dog")
	s.AddWord(w1)
	s.AddWord(w2)

	if !s.DeleteWord(w1.ID) {
		t.Fatal("DeleteWord returned false for existing word")
	}
	if len(s.Words) != 1 || s.Words[0].Word != "perro" {
		t.Errorf("remaining words = %+v, want only perro", s.Words)
	}
	if s.DeleteWord("missing") {
		t.Error("DeleteWord returned true for unknown id")
	}
}

func TestTotalWords(t *testing.T) {
	u := NewUser("amy", "pw1")
	a := NewSet("A")
	a.AddWord(NewWord("uno", "one"))
	a.AddWord(NewWord("dos", "two"))
	b := NewSet("B")
	b.AddWord(NewWord("tres", "three"))
	u.AddSet(a)
	u.AddSet(b)

	if got := u.TotalWords(); got != 3 {
		t.Errorf("TotalWords() = %d, want 3", got)
	}
}

func TestValidUsername(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"amy", true},
		{"amy_2", true},
		{"", false},
		{"a b", false},
		{"a\tb", false},
		{"a\nb", false},
	}
	for _, tt := range tests {
		if got := ValidUsername(tt.name); got != tt.want {
			t.Errorf("ValidUsername(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFreshIDsAreUnique(t *testing.T) {
	a := NewWord("gato", "cat")
	b := NewWord("gato", "cat")
	if a.ID == b.ID {
		t.Error("two words created with identical content share an id")
	}
}
