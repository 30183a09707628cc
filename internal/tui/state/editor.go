package state

import (
	"net/http"

	"github.com/hy4ri/items-tui/internal/api"
)

// User-facing messages. Every failure collapses to one of these.
const (
	ErrLoadFailed   = "Failed to load items"
	ErrSaveFailed   = "Save failed"
	ErrDeleteFailed = "Delete failed"

	HintTitleRequired = "Title is required"
)

// LoadToken identifies one collection load. Tokens increase with every
// load issued; only the latest one may change the list.
type LoadToken uint64

// Submission is the request chosen by BeginSubmit.
type Submission struct {
	// Update is true in edit-mode. ID is only set for updates.
	Update bool
	ID     api.ID
	Draft  api.Draft
}

// Method returns the HTTP method the submission uses.
func (sub Submission) Method() string {
	if sub.Update {
		return http.MethodPut
	}
	return http.MethodPost
}

// Path returns the resource path the submission targets.
func (sub Submission) Path() string {
	if sub.Update {
		return api.ItemPath(sub.ID)
	}
	return api.ItemsPath
}

// IsEditing reports edit-mode. It depends on EditingID alone.
func (s *State) IsEditing() bool {
	return s.EditingID != nil
}

// BeginLoad marks a collection load as in flight and returns its token.
func (s *State) BeginLoad() LoadToken {
	s.loadSeq++
	s.Loading = true
	s.Err = ""
	return s.loadSeq
}

// IsLatestLoad reports whether token belongs to the most recent load.
func (s *State) IsLatestLoad(token LoadToken) bool {
	return token == s.loadSeq
}

// LoadSucceeded replaces the list with items. Responses to superseded
// loads are discarded and false is returned.
func (s *State) LoadSucceeded(token LoadToken, items []api.Item) bool {
	if !s.IsLatestLoad(token) {
		return false
	}
	if items == nil {
		items = []api.Item{}
	}
	s.Items = items
	s.Loading = false
	s.clampCursor()
	return true
}

// LoadFailed records a failed load and keeps the previous list. Failures
// of superseded loads are discarded and false is returned.
func (s *State) LoadFailed(token LoadToken) bool {
	if !s.IsLatestLoad(token) {
		return false
	}
	s.Err = ErrLoadFailed
	s.Loading = false
	return true
}

// BeginEdit copies the item into the draft and switches to edit-mode.
// The list scrolls back to the top and the form takes focus.
func (s *State) BeginEdit(item api.Item) {
	d := item.Draft()
	if d.Status == "" {
		d.Status = api.StatusTodo
	}
	id := item.ID
	s.Form = d
	s.EditingID = &id
	s.FormHint = ""
	s.ScrollOffset = 0
	s.Focus = FocusForm
	s.syncForm()
}

// SetField merges a single field into the draft, leaving the others intact.
func (s *State) SetField(name, value string) error {
	d, err := s.Form.Set(name, value)
	if err != nil {
		return err
	}
	s.Form = d
	if name == api.FieldTitle {
		s.FormHint = ""
	}
	return nil
}

// CancelEdit resets the draft and returns to create-mode. Calling it
// again leaves the state unchanged.
func (s *State) CancelEdit() {
	s.resetForm()
}

// BeginSubmit clears the error and picks create or update for the
// current draft. It returns false, with a form hint, when the draft may
// not be sent.
func (s *State) BeginSubmit() (Submission, bool) {
	s.Err = ""
	if err := s.Form.Validate(); err != nil {
		s.FormHint = HintTitleRequired
		return Submission{}, false
	}
	s.FormHint = ""

	sub := Submission{Draft: s.Form}
	if s.EditingID != nil {
		sub.Update = true
		sub.ID = *s.EditingID
	}
	return sub, true
}

// SubmitSucceeded resets the draft and leaves edit-mode. The caller
// reloads the collection afterwards.
func (s *State) SubmitSucceeded() {
	s.resetForm()
}

// SubmitFailed records a failed save. Draft and edit marker are kept so
// the user can retry.
func (s *State) SubmitFailed() {
	s.Err = ErrSaveFailed
}

// RequestDelete opens the confirmation prompt for id.
func (s *State) RequestDelete(id api.ID) {
	s.PendingDelete = &id
}

// ConfirmDelete closes the prompt and returns the id to delete.
func (s *State) ConfirmDelete() (api.ID, bool) {
	if s.PendingDelete == nil {
		return "", false
	}
	id := *s.PendingDelete
	s.PendingDelete = nil
	return id, true
}

// DeclineDelete closes the prompt without side effects.
func (s *State) DeclineDelete() {
	s.PendingDelete = nil
}

// DeleteFailed records a failed delete.
func (s *State) DeleteFailed() {
	s.Err = ErrDeleteFailed
}

func (s *State) resetForm() {
	s.Form = api.EmptyDraft()
	s.EditingID = nil
	s.FormHint = ""
	s.syncForm()
}

func (s *State) syncForm() {
	if s.ItemForm != nil {
		s.ItemForm.Load(s.Form)
	}
}
