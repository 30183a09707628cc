// Package styles provides Lip Gloss styles for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/items-tui/internal/api"
)

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for selected items
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	// Special colors
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFCC66"}
)

// Status colors
var (
	TodoColor       = lipgloss.AdaptiveColor{Light: "#296FDF", Dark: "#6FA0F0"}
	InProgressColor = WarningColor
	DoneColor       = SuccessColor
)

// Base styles
var (
	// App is the base style for the entire application
	App = lipgloss.NewStyle().
		Padding(1, 2)

	// Title is the style for section titles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// Subtitle is for secondary headings
	Subtitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle)

	// Link is for the API health link in the header
	Link = lipgloss.NewStyle().
		Foreground(Subtle).
		Underline(true)
)

// Panel styles
var (
	Panel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Subtle).
		Padding(0, 1)

	PanelFocused = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(0, 1)
)

// Item styles
var (
	// Item is the base style for a list entry
	Item = lipgloss.NewStyle().
		PaddingLeft(2)

	// ItemSelected is the style for the entry under the cursor
	ItemSelected = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderLeft(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeftForeground(Highlight).
			Bold(true).
			Background(lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: "#2A2A2A"})

	// ItemEditing marks the entry currently loaded in the form
	ItemEditing = lipgloss.NewStyle().
			Foreground(Highlight).
			Italic(true)

	// ItemNotes is for notes under the selected entry
	ItemNotes = lipgloss.NewStyle().
			Foreground(Subtle).
			PaddingLeft(4)

	StatusTodo       = lipgloss.NewStyle().Foreground(TodoColor)
	StatusInProgress = lipgloss.NewStyle().Foreground(InProgressColor)
	StatusDone       = lipgloss.NewStyle().Foreground(DoneColor)
	StatusUnknown    = lipgloss.NewStyle().Foreground(Subtle).Italic(true)
)

// GetStatusStyle returns the badge style for an item status.
func GetStatusStyle(s api.Status) lipgloss.Style {
	switch s {
	case api.StatusTodo:
		return StatusTodo
	case api.StatusInProgress:
		return StatusInProgress
	case api.StatusDone:
		return StatusDone
	default:
		return StatusUnknown
	}
}

// Form styles
var (
	// InputLabel is for field labels
	InputLabel = lipgloss.NewStyle().
			Bold(true)

	// InputLabelFocused is for the label of the focused field
	InputLabelFocused = lipgloss.NewStyle().
				Bold(true).
				Foreground(Highlight)

	// Button is the submit button
	Button = lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}).
		Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#333333"})

	// ButtonFocused is the submit button with focus
	ButtonFocused = lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Highlight)

	// FormHint is for inline validation hints
	FormHint = lipgloss.NewStyle().
			Foreground(WarningColor).
			Italic(true)
)

// StatusBar styles
var (
	// StatusBar is the base style for the status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
			Padding(0, 1)

	// StatusBarKey is for keyboard shortcut hints
	StatusBarKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"})

	// StatusBarText is for status bar descriptions
	StatusBarText = lipgloss.NewStyle().
			Foreground(Subtle).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"})

	// StatusBarSuccess is for success messages
	StatusBarSuccess = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
				Bold(true)

	// ErrorLine is for the error shown above the list
	ErrorLine = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)
)

// Help styles
var (
	// HelpKey is for key bindings in help
	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// HelpDesc is for key binding descriptions
	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)
)

// Dialog styles
var (
	// Dialog is the base style for dialog boxes
	Dialog = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Highlight).
		Padding(1, 2)

	// DialogTitle is for dialog titles
	DialogTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight).
			MarginBottom(1)
)

// Spinner style
var (
	Spinner = lipgloss.NewStyle().
		Foreground(Highlight)
)

// Scroll indicator styles
var (
	// ScrollIndicator shows there's more content above or below
	ScrollIndicator = lipgloss.NewStyle().
			Foreground(Subtle).
			Italic(true).
			PaddingLeft(2)
)
