package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// truncateString truncates a string to the given width, appending "…" if truncated.
// It handles wide characters correctly using runewidth.
func truncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	if runewidth.StringWidth(s) <= maxLen {
		return s
	}

	w := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > maxLen-1 { // -1 for ellipsis
			return s[:i] + "…"
		}
		w += rw
	}

	return s
}

// wrapText hard-wraps plain text at width display columns, breaking on
// spaces where possible. Existing line breaks are kept.
func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}

	var out []string
	for _, para := range strings.Split(s, "\n") {
		line, lineW := "", 0
		for _, word := range strings.Fields(para) {
			ww := runewidth.StringWidth(word)
			for ww > width {
				// Split words longer than a line
				head := runewidth.Truncate(word, width, "")
				if head == "" {
					break
				}
				if line != "" {
					out = append(out, line)
					line, lineW = "", 0
				}
				out = append(out, head)
				word = word[len(head):]
				ww = runewidth.StringWidth(word)
			}
			switch {
			case line == "":
				line, lineW = word, ww
			case lineW+1+ww <= width:
				line += " " + word
				lineW += 1 + ww
			default:
				out = append(out, line)
				line, lineW = word, ww
			}
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// clampLines keeps the first max lines of s, marking the cut with "…".
func clampLines(s string, max int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= max {
		return s
	}
	lines = lines[:max]
	lines[max-1] = strings.TrimRight(lines[max-1], " ") + " …"
	return strings.Join(lines, "\n")
}
