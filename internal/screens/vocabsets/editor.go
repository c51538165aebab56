package vocabsets

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Khoiidayy/linguabot/internal/auth"
	"github.com/Khoiidayy/linguabot/internal/screen"
	"github.com/Khoiidayy/linguabot/internal/ui/components"
	"github.com/Khoiidayy/linguabot/internal/ui/layout"
	"github.com/Khoiidayy/linguabot/internal/ui/theme"
	"github.com/Khoiidayy/linguabot/internal/vocab"
)

// EditorScreen edits the words of one set. It holds the set ID, not the
// set itself; if the set disappears underneath it (deleted elsewhere) the
// screen degrades to a placeholder instead of crashing.
type EditorScreen struct {
	user  *vocab.User
	svc   *auth.Service
	setID string

	word       components.TextInput
	definition components.TextInput
	focus      int // 0 = word, 1 = definition
	selected   int // highlighted word in the list
	errMsg     string
}

var _ screen.Screen = (*EditorScreen)(nil)

// NewEditor creates the word editor for the given set.
func NewEditor(user *vocab.User, svc *auth.Service, setID string) *EditorScreen {
	return &EditorScreen{
		user:       user,
		svc:        svc,
		setID:      setID,
		word:       components.NewTextInput("word", 128),
		definition: components.NewTextInput("definition", 256),
	}
}

func (e *EditorScreen) set() *vocab.VocabSet {
	return e.user.SetByID(e.setID)
}

func (e *EditorScreen) Init() tea.Cmd {
	return e.word.Focus()
}

func (e *EditorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	set := e.set()
	if set == nil {
		return e, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab":
			return e, e.toggleFocus()
		case "enter":
			e.addWord(set)
			return e, nil
		case "up":
			if e.selected > 0 {
				e.selected--
			}
			return e, nil
		case "down":
			if e.selected < len(set.Words)-1 {
				e.selected++
			}
			return e, nil
		case "ctrl+d":
			e.deleteSelected(set)
			return e, nil
		}
	}

	var cmd tea.Cmd
	if e.focus == 0 {
		e.word, cmd = e.word.Update(msg)
	} else {
		e.definition, cmd = e.definition.Update(msg)
	}
	return e, cmd
}

func (e *EditorScreen) toggleFocus() tea.Cmd {
	if e.focus == 0 {
		e.focus = 1
		e.word.Blur()
		return e.definition.Focus()
	}
	e.focus = 0
	e.definition.Blur()
	return e.word.Focus()
}

func (e *EditorScreen) addWord(set *vocab.VocabSet) {
	word := strings.TrimSpace(e.word.Value())
	def := strings.TrimSpace(e.definition.Value())
	if word == "" || def == "" {
		e.errMsg = "Both word and definition are required."
		return
	}

	set.AddWord(vocab.NewWord(word, def))
	if err := e.svc.Save(context.Background(), e.user); err != nil {
		e.errMsg = "Could not save. Please try again."
		return
	}

	e.word.Reset()
	e.definition.Reset()
	e.errMsg = ""
	if e.focus == 1 {
		e.toggleFocus()
	}
}

func (e *EditorScreen) deleteSelected(set *vocab.VocabSet) {
	if e.selected >= len(set.Words) {
		return
	}
	set.DeleteWord(set.Words[e.selected].ID)
	if err := e.svc.Save(context.Background(), e.user); err != nil {
		e.errMsg = "Could not save. Please try again."
	}
	if e.selected >= len(set.Words) && e.selected > 0 {
		e.selected--
	}
}

func (e *EditorScreen) View(width, height int) string {
	set := e.set()
	if set == nil {
		msg := theme.Subtitle.Render("Set not found.\n\nPress Esc to go back.")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	var b strings.Builder

	b.WriteString(theme.Title.Render(set.Name))
	b.WriteString("\n\n")

	b.WriteString(fieldLabel("Word", e.focus == 0))
	b.WriteString("\n")
	b.WriteString(e.word.View())
	b.WriteString("\n\n")
	b.WriteString(fieldLabel("Definition", e.focus == 1))
	b.WriteString("\n")
	b.WriteString(e.definition.View())
	b.WriteString("\n")

	if e.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render(e.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if len(set.Words) == 0 {
		b.WriteString(theme.Subtitle.Render("No words yet."))
		b.WriteString("\n")
	}
	for i, w := range set.Words {
		line := fmt.Sprintf("%s — %s", w.Word, w.Definition)
		if i == e.selected {
			b.WriteString(theme.Selected.Render("  ▸ " + line))
		} else {
			b.WriteString(theme.Unselected.Render("    " + line))
		}
		b.WriteString("\n")
	}

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func fieldLabel(label string, focused bool) string {
	if focused {
		return theme.Selected.Render("▸ " + label)
	}
	return theme.Subtitle.Render("  " + label)
}

func (e *EditorScreen) Title() string {
	if set := e.set(); set != nil {
		return "Edit: " + set.Name
	}
	return "Edit Set"
}

func (e *EditorScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch field"},
		{Key: "Enter", Description: "Add word"},
		{Key: "↑↓", Description: "Select word"},
		{Key: "Ctrl+D", Description: "Delete word"},
		{Key: "Esc", Description: "Back"},
	}
}
