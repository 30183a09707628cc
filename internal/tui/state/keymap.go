package state

import tea "github.com/charmbracelet/bubbletea"

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// KeymapData contains all key bindings for the application.
type KeymapData struct {
	// Navigation
	Up       Key
	Down     Key
	Top      Key
	Bottom   Key
	HalfUp   Key
	HalfDown Key

	// Actions
	Select  Key
	Back    Key
	Quit    Key
	Help    Key
	Refresh Key

	// Item actions
	NewItem    Key
	EditItem   Key
	DeleteItem Key
	Submit     Key

	// Focus
	SwitchPane Key

	// Misc
	CopyHealth Key
}

// DefaultKeymap returns the default Vim-style key bindings.
func DefaultKeymap() KeymapData {
	return KeymapData{
		Up:       Key{Key: "k", Help: "up"},
		Down:     Key{Key: "j", Help: "down"},
		Top:      Key{Key: "g", Help: "top (gg)"},
		Bottom:   Key{Key: "G", Help: "bottom"},
		HalfUp:   Key{Key: "ctrl+u", Help: "half page up"},
		HalfDown: Key{Key: "ctrl+d", Help: "half page down"},

		Select:  Key{Key: "enter", Help: "edit"},
		Back:    Key{Key: "esc", Help: "cancel edit"},
		Quit:    Key{Key: "q", Help: "quit"},
		Help:    Key{Key: "?", Help: "help"},
		Refresh: Key{Key: "r", Help: "refresh"},

		NewItem:    Key{Key: "n", Help: "new item"},
		EditItem:   Key{Key: "e", Help: "edit item"},
		DeleteItem: Key{Key: "d", Help: "delete item"},
		Submit:     Key{Key: "ctrl+s", Help: "save"},

		SwitchPane: Key{Key: "tab", Help: "switch pane"},

		CopyHealth: Key{Key: "H", Help: "copy API health URL"},
	}
}

// KeyState tracks multi-key sequences (like 'gg').
type KeyState struct {
	LastKey  string
	WaitingG bool // Waiting for second 'g' in 'gg'
}

// HandleKey maps a list-pane key press to an action name.
// Returns the action name and whether the key was consumed.
func (ks *KeyState) HandleKey(msg tea.KeyMsg, keymap KeymapData) (string, bool) {
	key := msg.String()

	if ks.WaitingG {
		ks.WaitingG = false
		if key == "g" {
			return "top", true
		}
		// If not 'g', reset and process normally
	}

	if key == keymap.Top.Key {
		ks.WaitingG = true
		ks.LastKey = key
		return "", true // Key consumed, waiting for next
	}

	switch key {
	case keymap.Up.Key, "up":
		return "up", true
	case keymap.Down.Key, "down":
		return "down", true
	case keymap.Bottom.Key:
		return "bottom", true
	case keymap.HalfUp.Key:
		return "half_up", true
	case keymap.HalfDown.Key:
		return "half_down", true
	case keymap.Select.Key, keymap.EditItem.Key:
		return "edit", true
	case keymap.DeleteItem.Key, "delete":
		return "delete", true
	case keymap.NewItem.Key:
		return "new", true
	case keymap.Refresh.Key:
		return "refresh", true
	case keymap.Back.Key:
		return "cancel", true
	case keymap.Quit.Key, "ctrl+c":
		return "quit", true
	case keymap.Help.Key:
		return "help", true
	case keymap.SwitchPane.Key, "shift+tab":
		return "switch_pane", true
	case keymap.CopyHealth.Key:
		return "copy_health", true
	}

	return "", false
}

// Reset clears any pending multi-key sequences.
func (ks *KeyState) Reset() {
	ks.WaitingG = false
	ks.LastKey = ""
}

// HelpItems returns a slice of key-description pairs for the help view.
func (k KeymapData) HelpItems() [][]string {
	return [][]string{
		{"Navigation", ""},
		{k.Up.Key + "/" + k.Down.Key, "Move up/down"},
		{"gg/" + k.Bottom.Key, "Go to top/bottom"},
		{k.HalfUp.Key + "/" + k.HalfDown.Key, "Half page up/down"},
		{k.SwitchPane.Key, "Switch between form and list"},
		{"", ""},
		{"Item Actions", ""},
		{k.Select.Key + "/" + k.EditItem.Key, "Edit selected item"},
		{k.DeleteItem.Key, "Delete selected item (asks first)"},
		{k.NewItem.Key, "New item"},
		{k.Submit.Key, "Add item / save changes"},
		{k.Back.Key, "Cancel edit"},
		{"", ""},
		{"Form", ""},
		{"tab/shift+tab", "Next/previous field"},
		{"h/l", "Change status"},
		{"", ""},
		{"General", ""},
		{k.Refresh.Key, "Refresh items"},
		{k.CopyHealth.Key, "Copy API health URL"},
		{k.Help.Key, "Toggle help"},
		{k.Quit.Key, "Quit"},
	}
}
