package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/items-tui/internal/api"
	"github.com/hy4ri/items-tui/internal/tui/state"
	"github.com/hy4ri/items-tui/internal/tui/styles"
)

// renderList renders the item list panel with entries filling at most
// budget lines.
func (r *Renderer) renderList(budget int) string {
	width := r.contentWidth()

	var b strings.Builder
	b.WriteString(styles.Title.Render(fmt.Sprintf("Items (%d)", len(r.Items))) + "\n\n")

	switch {
	case r.Loading:
		b.WriteString(styles.Spinner.Render(r.Spinner.View()) + " Loading...")
	case len(r.Items) == 0:
		b.WriteString(styles.HelpDesc.Render("No items yet."))
	default:
		b.WriteString(r.renderRows(width-4, budget))
	}

	panel := styles.Panel
	if r.Focus == state.FocusList {
		panel = styles.PanelFocused
	}
	return panel.Width(width).Render(b.String())
}

// renderRows renders the window of entries that fits in budget lines.
// While the list has focus the window moves to keep the cursor on screen.
func (r *Renderer) renderRows(width, budget int) string {
	rendered := make(map[int]string)
	entry := func(i int) string {
		if out, ok := rendered[i]; ok {
			return out
		}
		out := r.renderItem(r.Items[i], i == r.Cursor, width)
		rendered[i] = out
		return out
	}

	start := r.ScrollOffset
	if start > len(r.Items) {
		start = len(r.Items)
	}
	if r.Focus == state.FocusList && r.Cursor < len(r.Items) {
		if r.Cursor < start {
			start = r.Cursor
		}
		for start < r.Cursor {
			used := 0
			for i := start; i <= r.Cursor; i++ {
				used += lipgloss.Height(entry(i))
			}
			if used <= budget {
				break
			}
			start++
		}
	}

	end, used := start, 0
	for end < len(r.Items) {
		h := lipgloss.Height(entry(end))
		if end > start && used+h > budget {
			break
		}
		used += h
		end++
	}

	var lines []string
	if start > 0 {
		lines = append(lines, styles.ScrollIndicator.Render(fmt.Sprintf("▲ %d more", start)))
	}
	for i := start; i < end; i++ {
		lines = append(lines, entry(i))
	}
	if end < len(r.Items) {
		lines = append(lines, styles.ScrollIndicator.Render(fmt.Sprintf("▼ %d more", len(r.Items)-end)))
	}
	return strings.Join(lines, "\n")
}

// renderItem renders one entry: title, status badge and notes.
func (r *Renderer) renderItem(item api.Item, selected bool, width int) string {
	label := item.Status.Label()
	if label == "" {
		label = "no status"
	}
	badge := styles.GetStatusStyle(item.Status).Render(label)

	titleWidth := width - lipgloss.Width(badge) - 6
	title := truncateString(item.Title, titleWidth)
	if r.EditingID != nil && *r.EditingID == item.ID {
		title += " " + styles.ItemEditing.Render("(editing)")
	}

	line := title + "  " + badge
	if selected && r.Focus == state.FocusList {
		line = styles.ItemSelected.Render(line)
	} else {
		line = styles.Item.Render(line)
	}

	notes := r.renderNotes(item.Notes, width-4)
	if notes == "" {
		return line
	}
	return line + "\n" + styles.ItemNotes.Render(notes)
}

// renderNotes formats notes as markdown or wrapped plain text.
func (r *Renderer) renderNotes(notes string, width int) string {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return ""
	}

	var out string
	if r.Config != nil && r.Config.UI.MarkdownNotes {
		out = renderMarkdown(notes, width)
	} else {
		out = wrapText(notes, width)
	}
	return clampLines(out, state.MaxNoteLines)
}
