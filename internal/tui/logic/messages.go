package logic

import (
	"github.com/hy4ri/items-tui/internal/api"
	"github.com/hy4ri/items-tui/internal/tui/state"
)

// Message types
type itemsLoadedMsg struct {
	token state.LoadToken
	items []api.Item
}

type itemsLoadFailedMsg struct {
	token state.LoadToken
	err   error
}

type itemSavedMsg struct {
	sub  state.Submission
	item *api.Item
}

type saveFailedMsg struct {
	sub state.Submission
	err error
}

type itemDeletedMsg struct{ id api.ID }

type deleteFailedMsg struct {
	id  api.ID
	err error
}

type statusMsg struct{ msg string }

// RefreshMsg asks the handler to reload the collection.
type RefreshMsg struct{}
