package state

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/hy4ri/items-tui/internal/api"
	"github.com/hy4ri/items-tui/internal/config"
)

// Focus represents which panel receives key presses.
type Focus int

const (
	FocusForm Focus = iota
	FocusList
)

// State holds the application state.
// All fields are exported to allow access from logic and ui packages.
type State struct {
	// Dependencies
	Client *api.Client
	Config *config.Config
	Logger *log.Logger

	// Remote collection, replaced wholesale on every applied load.
	Items []api.Item

	// Draft bound to the form. EditingID is nil in create-mode.
	Form      api.Draft
	EditingID *api.ID

	// Status flags
	Loading   bool
	Err       string
	FormHint  string
	StatusMsg string

	// Item awaiting delete confirmation, nil when no prompt is open.
	PendingDelete *api.ID

	// UI state
	Focus        Focus
	Cursor       int
	ScrollOffset int
	Width        int
	Height       int
	ShowHelp     bool

	// Components
	ItemForm *ItemForm
	Spinner  spinner.Model
	Keymap   KeymapData
	KeyState *KeyState

	loadSeq LoadToken
}

// New creates the initial create-mode state.
func New(client *api.Client, cfg *config.Config) *State {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot

	st := &State{
		Client:   client,
		Config:   cfg,
		Items:    []api.Item{},
		Form:     api.EmptyDraft(),
		Focus:    FocusForm,
		ItemForm: NewItemForm(),
		Spinner:  s,
		Keymap:   DefaultKeymap(),
		KeyState: &KeyState{},
	}
	st.ItemForm.Load(st.Form)
	return st
}

// Logf writes to the debug log when one is configured.
func (s *State) Logf(format string, args ...interface{}) {
	if s.Logger != nil {
		s.Logger.Printf(format, args...)
	}
}

// SelectedItem returns the item under the list cursor.
func (s *State) SelectedItem() *api.Item {
	if s.Cursor < 0 || s.Cursor >= len(s.Items) {
		return nil
	}
	return &s.Items[s.Cursor]
}

// MoveCursor moves the list cursor by delta, clamped to the list.
func (s *State) MoveCursor(delta int) {
	s.Cursor += delta
	s.clampCursor()
}

// CursorTo places the list cursor at index, clamped to the list.
func (s *State) CursorTo(index int) {
	s.Cursor = index
	s.clampCursor()
}

func (s *State) clampCursor() {
	if s.Cursor >= len(s.Items) {
		s.Cursor = len(s.Items) - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}

// MaxNoteLines caps how many lines of notes an entry shows.
const MaxNoteLines = 3

// EntryLines is the most terminal lines item takes up in the list.
func EntryLines(item api.Item) int {
	if strings.TrimSpace(item.Notes) == "" {
		return 1
	}
	return 1 + MaxNoteLines
}

// EnsureCursorVisible adjusts ScrollOffset so every entry from the offset
// through the cursor fits in lines terminal lines.
func (s *State) EnsureCursorVisible(lines int) {
	if s.Cursor < s.ScrollOffset {
		s.ScrollOffset = s.Cursor
	}
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
	if lines <= 0 || s.Cursor >= len(s.Items) {
		return
	}
	for s.ScrollOffset < s.Cursor && s.linesBetween(s.ScrollOffset, s.Cursor) > lines {
		s.ScrollOffset++
	}
}

func (s *State) linesBetween(from, to int) int {
	n := 0
	for i := from; i <= to && i < len(s.Items); i++ {
		n += EntryLines(s.Items[i])
	}
	return n
}

// VisibleEntries returns how many entries starting at ScrollOffset fit in
// lines terminal lines. It is never below one.
func (s *State) VisibleEntries(lines int) int {
	n, used := 0, 0
	for i := s.ScrollOffset; i < len(s.Items); i++ {
		h := EntryLines(s.Items[i])
		if n > 0 && used+h > lines {
			break
		}
		used += h
		n++
	}
	if n == 0 {
		return 1
	}
	return n
}

// listChrome is the number of terminal rows used by everything but the
// list entries: app padding, header, form panel with hint and error
// line, list frame and heading, scroll indicators and footer.
const listChrome = 28

// deleteDialogLines is the height of the delete confirmation box.
const deleteDialogLines = 6

// ListLines returns how many terminal lines the list entries may use.
func (s *State) ListLines() int {
	if s.Height == 0 {
		return 20
	}
	lines := s.Height - listChrome
	if s.PendingDelete != nil {
		lines -= deleteDialogLines
	}
	if lines < 1+MaxNoteLines {
		lines = 1 + MaxNoteLines
	}
	return lines
}
