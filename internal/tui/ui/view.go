package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/items-tui/internal/tui/state"
	"github.com/hy4ri/items-tui/internal/tui/styles"
)

type Renderer struct {
	*state.State
}

func NewRenderer(s *state.State) *Renderer {
	return &Renderer{State: s}
}

func (r *Renderer) View() string {
	if r.ShowHelp {
		return styles.App.Render(r.renderHelp())
	}

	above := []string{
		r.renderHeader(),
		r.renderForm(),
	}
	if r.Err != "" {
		above = append(above, styles.ErrorLine.Render(r.Err))
	}
	below := []string{r.renderStatusBar()}
	if r.PendingDelete != nil {
		below = append(below, r.renderDeleteDialog())
	}

	budget := r.listBudget(strings.Join(above, "\n"), strings.Join(below, "\n"))
	parts := append(above, r.renderList(budget))
	parts = append(parts, below...)

	return styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// listFrameLines is the list panel border, heading and scroll indicators.
const listFrameLines = 6

// listBudget returns the terminal lines left for list entries once blocks,
// the list frame and the app padding are drawn.
func (r *Renderer) listBudget(blocks ...string) int {
	if r.Height == 0 {
		return r.ListLines()
	}
	used := styles.App.GetVerticalFrameSize() + listFrameLines
	for _, b := range blocks {
		used += lipgloss.Height(b)
	}
	if budget := r.Height - used; budget > 0 {
		return budget
	}
	return 1
}

// contentWidth is the usable width inside the app padding.
func (r *Renderer) contentWidth() int {
	w := r.Width - 4
	if r.Width == 0 || w < 20 {
		w = 76
	}
	return w
}

// renderHeader renders the title and the API health link.
func (r *Renderer) renderHeader() string {
	title := styles.Title.Render("Items")
	if r.Client == nil {
		return title
	}
	return title + "  " + styles.Link.Render(r.Client.HealthURL())
}

// renderStatusBar renders the last status message and key hints.
func (r *Renderer) renderStatusBar() string {
	var hints []string
	if r.Focus == state.FocusForm {
		hints = []string{
			styles.StatusBarKey.Render(r.Keymap.Submit.Key) + styles.StatusBarText.Render(" save"),
			styles.StatusBarKey.Render("tab") + styles.StatusBarText.Render(" next field"),
			styles.StatusBarKey.Render(r.Keymap.Back.Key) + styles.StatusBarText.Render(" list"),
		}
	} else {
		hints = []string{
			styles.StatusBarKey.Render(r.Keymap.EditItem.Key) + styles.StatusBarText.Render(" edit"),
			styles.StatusBarKey.Render(r.Keymap.DeleteItem.Key) + styles.StatusBarText.Render(" delete"),
			styles.StatusBarKey.Render(r.Keymap.Refresh.Key) + styles.StatusBarText.Render(" refresh"),
			styles.StatusBarKey.Render(r.Keymap.Help.Key) + styles.StatusBarText.Render(" help"),
			styles.StatusBarKey.Render(r.Keymap.Quit.Key) + styles.StatusBarText.Render(" quit"),
		}
	}

	line := strings.Join(hints, styles.StatusBarText.Render("  "))
	if r.StatusMsg != "" {
		line = styles.StatusBarSuccess.Render(r.StatusMsg) + styles.StatusBarText.Render("  ") + line
	}
	return styles.StatusBar.Width(r.contentWidth()).Render(line)
}
