package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/items-tui/internal/tui/styles"
)

// ConfirmDeletePrompt is shown before an item is deleted.
const ConfirmDeletePrompt = "Delete this item? (y/n)"

// renderDeleteDialog renders the delete confirmation.
func (r *Renderer) renderDeleteDialog() string {
	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render(ConfirmDeletePrompt))

	for _, item := range r.Items {
		if r.PendingDelete != nil && item.ID == *r.PendingDelete {
			b.WriteString("\n" + truncateString(item.Title, r.contentWidth()-8))
			break
		}
	}

	return styles.Dialog.Render(b.String())
}

// renderHelp renders the key binding reference.
func (r *Renderer) renderHelp() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Keyboard Shortcuts") + "\n\n")

	keyWidth := 0
	items := r.Keymap.HelpItems()
	for _, item := range items {
		if w := lipgloss.Width(item[0]); item[1] != "" && w > keyWidth {
			keyWidth = w
		}
	}

	for _, item := range items {
		switch {
		case item[0] == "" && item[1] == "":
			b.WriteString("\n")
		case item[1] == "":
			b.WriteString(styles.Subtitle.Render(item[0]) + "\n")
		default:
			key := styles.HelpKey.Width(keyWidth + 2).Render(item[0])
			b.WriteString("  " + key + styles.HelpDesc.Render(item[1]) + "\n")
		}
	}

	b.WriteString("\n" + styles.HelpDesc.Render("Press ? or esc to close"))
	return b.String()
}
