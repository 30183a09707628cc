package logic

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/items-tui/internal/api"
)

// LoadItems starts a full collection reload. Only the response to the
// most recently issued load is applied. The spinner is started when no
// load was already running.
func (h *Handler) LoadItems() tea.Cmd {
	wasLoading := h.Loading
	token := h.BeginLoad()
	client := h.Client

	fetch := func() tea.Msg {
		items, err := client.ListItems()
		if err != nil {
			return itemsLoadFailedMsg{token: token, err: err}
		}
		return itemsLoadedMsg{token: token, items: items}
	}
	if wasLoading {
		return fetch
	}
	return tea.Batch(h.Spinner.Tick, fetch)
}

// submit sends the draft as a create or update. The reload is issued
// only once the mutation has resolved.
func (h *Handler) submit() tea.Cmd {
	sub, ok := h.BeginSubmit()
	if !ok {
		return nil
	}

	client := h.Client
	h.StatusMsg = "Saving..."

	return func() tea.Msg {
		var (
			item *api.Item
			err  error
		)
		if sub.Update {
			item, err = client.UpdateItem(sub.ID, sub.Draft)
		} else {
			item, err = client.CreateItem(sub.Draft)
		}
		if err != nil {
			return saveFailedMsg{sub: sub, err: err}
		}
		return itemSavedMsg{sub: sub, item: item}
	}
}

// deleteItem removes an item after the user confirmed it.
func (h *Handler) deleteItem(id api.ID) tea.Cmd {
	client := h.Client
	h.StatusMsg = "Deleting..."

	return func() tea.Msg {
		if err := client.DeleteItem(id); err != nil {
			return deleteFailedMsg{id: id, err: err}
		}
		return itemDeletedMsg{id: id}
	}
}

// copyHealthURL puts the API health link on the clipboard.
func (h *Handler) copyHealthURL() tea.Cmd {
	url := h.Client.HealthURL()
	write := h.Clipboard

	return func() tea.Msg {
		if write == nil {
			return statusMsg{msg: "API health: " + url}
		}
		if err := write(url); err != nil {
			return statusMsg{msg: "API health: " + url}
		}
		return statusMsg{msg: "Copied " + url}
	}
}
