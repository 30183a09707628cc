package state

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/items-tui/internal/api"
)

// FormField constants for focus management
const (
	FormFieldTitle = iota
	FormFieldStatus
	FormFieldNotes
	FormFieldSubmit
)

const formFieldCount = 4

// FieldChange is a draft field edited through the form widgets.
type FieldChange struct {
	Name  string
	Value string
}

// ItemForm holds the input widgets bound to the draft.
type ItemForm struct {
	Title      textinput.Model
	Notes      textarea.Model
	Status     api.Status
	FocusIndex int
}

// NewItemForm creates an empty form focused on the title.
func NewItemForm() *ItemForm {
	title := textinput.New()
	title.Placeholder = "e.g., Create API contract"
	// No limits: an edit must not cut off what the server stored.
	title.CharLimit = 0
	title.Width = 50

	notes := textarea.New()
	notes.Placeholder = "Optional"
	notes.ShowLineNumbers = false
	notes.CharLimit = 0
	notes.MaxHeight = 0
	notes.SetWidth(50)
	notes.SetHeight(3)

	f := &ItemForm{
		Title:  title,
		Notes:  notes,
		Status: api.StatusTodo,
	}
	f.Focus(FormFieldTitle)
	return f
}

// Load replaces the widget contents with d and focuses the title.
func (f *ItemForm) Load(d api.Draft) {
	f.Title.SetValue(d.Title)
	f.Title.CursorEnd()
	f.Notes.SetValue(d.Notes)
	f.Status = d.Status
	f.Focus(FormFieldTitle)
}

// Update routes a message to the focused widget and reports the draft
// fields it changed.
func (f *ItemForm) Update(msg tea.Msg) (tea.Cmd, []FieldChange) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab":
			f.NextField()
			return nil, nil
		case "shift+tab":
			f.PrevField()
			return nil, nil
		}

		switch f.FocusIndex {
		case FormFieldTitle:
			if key.String() == "enter" {
				f.NextField()
				return nil, nil
			}
		case FormFieldStatus:
			return nil, f.updateStatus(key)
		case FormFieldSubmit:
			return nil, nil
		}
	}

	var cmd tea.Cmd
	var changes []FieldChange

	switch f.FocusIndex {
	case FormFieldTitle:
		before := f.Title.Value()
		f.Title, cmd = f.Title.Update(msg)
		if after := f.Title.Value(); after != before {
			changes = append(changes, FieldChange{Name: api.FieldTitle, Value: after})
		}
	case FormFieldNotes:
		before := f.Notes.Value()
		f.Notes, cmd = f.Notes.Update(msg)
		if after := f.Notes.Value(); after != before {
			changes = append(changes, FieldChange{Name: api.FieldNotes, Value: after})
		}
	}

	return cmd, changes
}

func (f *ItemForm) updateStatus(key tea.KeyMsg) []FieldChange {
	switch key.String() {
	case "h", "left", "k", "up":
		f.Status = f.Status.Prev()
	case "l", "right", "j", "down", " ", "space":
		f.Status = f.Status.Next()
	case "enter":
		f.NextField()
		return nil
	default:
		return nil
	}
	return []FieldChange{{Name: api.FieldStatus, Value: string(f.Status)}}
}

// NextField moves focus to the next field.
func (f *ItemForm) NextField() {
	f.Focus((f.FocusIndex + 1) % formFieldCount)
}

// PrevField moves focus to the previous field.
func (f *ItemForm) PrevField() {
	f.Focus((f.FocusIndex - 1 + formFieldCount) % formFieldCount)
}

// Focus moves focus to the field at index.
func (f *ItemForm) Focus(index int) {
	f.FocusIndex = index
	f.Title.Blur()
	f.Notes.Blur()

	switch index {
	case FormFieldTitle:
		f.Title.Focus()
	case FormFieldNotes:
		f.Notes.Focus()
	}
}

// SetWidth sets width of inputs
func (f *ItemForm) SetWidth(width int) {
	if width < 10 {
		width = 10
	}
	f.Title.Width = width
	f.Notes.SetWidth(width)
}

// Blur removes focus from the text widgets, keeping FocusIndex.
func (f *ItemForm) Blur() {
	f.Title.Blur()
	f.Notes.Blur()
}
