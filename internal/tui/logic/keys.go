package logic

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/items-tui/internal/tui/state"
)

func (h *Handler) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	// The delete prompt swallows every key
	if h.PendingDelete != nil {
		return h.handleConfirmKey(msg)
	}

	if h.ShowHelp {
		switch msg.String() {
		case h.Keymap.Help.Key, h.Keymap.Back.Key:
			h.ShowHelp = false
		case h.Keymap.Quit.Key:
			return tea.Quit
		}
		return nil
	}

	if h.Focus == state.FocusForm {
		return h.handleFormKey(msg)
	}
	return h.handleListKey(msg)
}

func (h *Handler) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		id, ok := h.ConfirmDelete()
		if !ok {
			return nil
		}
		return h.deleteItem(id)
	default:
		h.DeclineDelete()
		h.StatusMsg = "Delete cancelled"
		return nil
	}
}

func (h *Handler) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case h.Keymap.Submit.Key:
		return h.submit()

	case h.Keymap.Back.Key:
		if h.IsEditing() {
			h.CancelEdit()
			h.StatusMsg = "Edit cancelled"
			return nil
		}
		h.focusList()
		return nil

	case "enter":
		if h.ItemForm.FocusIndex == state.FormFieldSubmit {
			return h.submit()
		}
	}

	cmd, changes := h.ItemForm.Update(msg)
	for _, c := range changes {
		if err := h.SetField(c.Name, c.Value); err != nil {
			h.Logf("form change %s rejected: %v", c.Name, err)
		}
	}
	return cmd
}

func (h *Handler) handleListKey(msg tea.KeyMsg) tea.Cmd {
	action, ok := h.KeyState.HandleKey(msg, h.Keymap)
	if !ok || action == "" {
		return nil
	}

	lines := h.ListLines()
	page := h.VisibleEntries(lines) / 2
	if page < 1 {
		page = 1
	}

	switch action {
	case "up":
		h.MoveCursor(-1)
	case "down":
		h.MoveCursor(1)
	case "top":
		h.CursorTo(0)
	case "bottom":
		h.CursorTo(len(h.Items) - 1)
	case "half_up":
		h.MoveCursor(-page)
	case "half_down":
		h.MoveCursor(page)

	case "edit":
		item := h.SelectedItem()
		if item == nil {
			return nil
		}
		h.BeginEdit(*item)
		return textinput.Blink

	case "delete":
		item := h.SelectedItem()
		if item == nil {
			return nil
		}
		h.RequestDelete(item.ID)
		return nil

	case "new":
		h.CancelEdit()
		return h.focusForm()

	case "refresh":
		h.StatusMsg = ""
		return h.LoadItems()

	case "cancel":
		if h.IsEditing() {
			h.CancelEdit()
			h.StatusMsg = "Edit cancelled"
		}
		return nil

	case "switch_pane":
		return h.focusForm()

	case "copy_health":
		return h.copyHealthURL()

	case "help":
		h.ShowHelp = true
		return nil

	case "quit":
		return tea.Quit
	}

	h.EnsureCursorVisible(lines)
	return nil
}

func (h *Handler) focusForm() tea.Cmd {
	h.Focus = state.FocusForm
	h.KeyState.Reset()
	h.ItemForm.Focus(h.ItemForm.FocusIndex)
	return textinput.Blink
}

func (h *Handler) focusList() {
	h.Focus = state.FocusList
	h.ItemForm.Blur()
	h.EnsureCursorVisible(h.ListLines())
}
