package logic

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/items-tui/internal/tui/state"
)

type Handler struct {
	*state.State

	// Notify sends a desktop notification. Nil disables notifications.
	Notify func(title, message string) error
	// Clipboard writes text to the system clipboard.
	Clipboard func(text string) error
}

func NewHandler(s *state.State) *Handler {
	h := &Handler{
		State:     s,
		Clipboard: clipboard.WriteAll,
	}
	if s.Config != nil && s.Config.UI.Notifications {
		h.Notify = desktopNotify
	}
	return h
}

// Init implements tea.Model.
func (h *Handler) Init() tea.Cmd {
	return h.LoadItems()
}

func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return h.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		h.Width = msg.Width
		h.Height = msg.Height
		h.ItemForm.SetWidth(msg.Width - 12)
		h.EnsureCursorVisible(h.ListLines())
		return nil

	case spinner.TickMsg:
		// The tick loop ends with the load; LoadItems restarts it.
		if !h.Loading {
			return nil
		}
		var cmd tea.Cmd
		h.Spinner, cmd = h.Spinner.Update(msg)
		return cmd

	case RefreshMsg:
		return h.LoadItems()

	case itemsLoadedMsg:
		if !h.LoadSucceeded(msg.token, msg.items) {
			h.Logf("discarding stale load %d", msg.token)
			return nil
		}
		h.Logf("loaded %d items", len(msg.items))
		h.EnsureCursorVisible(h.ListLines())
		return nil

	case itemsLoadFailedMsg:
		if !h.LoadFailed(msg.token) {
			h.Logf("discarding stale load failure %d: %v", msg.token, msg.err)
			return nil
		}
		h.Logf("load failed: %v", msg.err)
		return nil

	case itemSavedMsg:
		h.SubmitSucceeded()
		if msg.sub.Update {
			h.StatusMsg = "Changes saved"
		} else {
			h.StatusMsg = "Item added"
		}
		return h.LoadItems()

	case saveFailedMsg:
		h.SubmitFailed()
		h.StatusMsg = ""
		h.Logf("%s %s failed: %v", msg.sub.Method(), msg.sub.Path(), msg.err)
		return h.notifyFailure(h.Err, msg.sub.Draft.Title)

	case itemDeletedMsg:
		h.StatusMsg = "Item deleted"
		h.Logf("deleted %s", msg.id)
		return h.LoadItems()

	case deleteFailedMsg:
		h.DeleteFailed()
		h.StatusMsg = ""
		h.Logf("delete %s failed: %v", msg.id, msg.err)
		return h.notifyFailure(h.Err, "Item "+msg.id.String())

	case statusMsg:
		h.StatusMsg = msg.msg
		return nil
	}

	// Forward non-key messages (like blink) to the form
	if h.Focus == state.FocusForm && h.ItemForm != nil {
		cmd, _ := h.ItemForm.Update(msg)
		return cmd
	}
	return nil
}
