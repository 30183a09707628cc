package ui

import (
	"strings"

	"github.com/hy4ri/items-tui/internal/api"
	"github.com/hy4ri/items-tui/internal/tui/state"
	"github.com/hy4ri/items-tui/internal/tui/styles"
)

// Form labels. Edit-mode swaps the heading and the submit label.
const (
	formTitleCreate = "New Item"
	formTitleEdit   = "Edit Item"
	submitCreate    = "Add Item"
	submitEdit      = "Save Changes"
	cancelHint      = "Cancel"
)

// renderForm renders the create/edit form panel.
func (r *Renderer) renderForm() string {
	f := r.ItemForm
	focused := r.Focus == state.FocusForm

	var b strings.Builder

	title, submit := formTitleCreate, submitCreate
	if r.IsEditing() {
		title, submit = formTitleEdit, submitEdit
	}
	b.WriteString(styles.Title.Render(title) + "\n\n")

	b.WriteString(r.fieldLabel("Title", state.FormFieldTitle) + "\n")
	b.WriteString(f.Title.View() + "\n")
	if r.FormHint != "" {
		b.WriteString(styles.FormHint.Render(r.FormHint) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(r.fieldLabel("Status", state.FormFieldStatus) + "\n")
	b.WriteString(r.renderStatusPicker() + "\n\n")

	b.WriteString(r.fieldLabel("Notes", state.FormFieldNotes) + "\n")
	b.WriteString(f.Notes.View() + "\n\n")

	button := styles.Button
	if focused && f.FocusIndex == state.FormFieldSubmit {
		button = styles.ButtonFocused
	}
	b.WriteString(button.Render(submit))
	if r.IsEditing() {
		b.WriteString("  " + styles.HelpDesc.Render(r.Keymap.Back.Key+": "+cancelHint))
	}

	panel := styles.Panel
	if focused {
		panel = styles.PanelFocused
	}
	return panel.Width(r.contentWidth()).Render(b.String())
}

func (r *Renderer) fieldLabel(label string, field int) string {
	if r.Focus == state.FocusForm && r.ItemForm.FocusIndex == field {
		return styles.InputLabelFocused.Render(label)
	}
	return styles.InputLabel.Render(label)
}

// renderStatusPicker shows every status with the chosen one highlighted.
func (r *Renderer) renderStatusPicker() string {
	current := r.ItemForm.Status

	var opts []string
	for _, s := range api.Statuses {
		if s == current {
			opts = append(opts, styles.GetStatusStyle(s).Bold(true).Render("["+s.Label()+"]"))
		} else {
			opts = append(opts, styles.HelpDesc.Render(" "+s.Label()+" "))
		}
	}
	if !current.Valid() {
		opts = append(opts, styles.StatusUnknown.Render("["+current.Label()+"]"))
	}
	return strings.Join(opts, " ")
}
