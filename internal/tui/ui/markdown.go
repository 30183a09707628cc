package ui

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
)

// EnvMarkdownStyle forces the notes palette to "light" or "dark".
const EnvMarkdownStyle = "ITEMS_TUI_MD_STYLE"

var (
	mdRendererMu sync.Mutex
	// Renderers keyed by style and wrap width. WithAutoStyle may block on
	// terminal queries, so a fixed style is picked up front.
	mdRenderers = map[string]*glamour.TermRenderer{}
	// Rendered notes keyed by renderer key and source.
	mdOutput = map[string]string{}
)

// mdOutputLimit bounds mdOutput; the cache is dropped when it fills up.
const mdOutputLimit = 512

// renderMarkdown renders notes without block margins so they sit flush
// under the entry title. On any renderer error the source is returned.
func renderMarkdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	styleName := markdownStyle()
	key := styleName + ":" + strconv.Itoa(width)

	mdRendererMu.Lock()
	r := mdRenderers[key]
	cached, ok := mdOutput[key+"\x00"+md]
	mdRendererMu.Unlock()
	if ok {
		return cached
	}

	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStyles(markdownStyleConfig(styleName)),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mdRendererMu.Lock()
		if existing := mdRenderers[key]; existing != nil {
			r = existing
		} else {
			mdRenderers[key] = rr
			r = rr
		}
		mdRendererMu.Unlock()
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	out = strings.Trim(out, "\n")

	mdRendererMu.Lock()
	if len(mdOutput) >= mdOutputLimit {
		mdOutput = map[string]string{}
	}
	mdOutput[key+"\x00"+md] = out
	mdRendererMu.Unlock()
	return out
}

func markdownStyleConfig(styleName string) ansi.StyleConfig {
	cfg := styles.DarkStyleConfig
	if styleName == "light" {
		cfg = styles.LightStyleConfig
	}

	zero := uint(0)
	cfg.Document.Margin = &zero
	cfg.Paragraph.Margin = &zero
	cfg.List.Margin = &zero
	cfg.Heading.Margin = &zero
	cfg.CodeBlock.Margin = &zero
	cfg.BlockQuote.Margin = &zero
	return cfg
}

func markdownStyle() string {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(EnvMarkdownStyle))) {
	case "light":
		return "light"
	case "dark":
		return "dark"
	}
	// COLORFGBG is often "fg;bg", e.g. "15;0" for a dark background.
	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			if bg >= 7 {
				return "light"
			}
			return "dark"
		}
	}
	return "dark"
}
