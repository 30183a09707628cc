package logic

import (
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
)

const notifyTitle = "Items"

func desktopNotify(title, message string) error {
	return beeep.Notify(title, message, "")
}

// notifyFailure raises a desktop notification for a failed mutation when
// notifications are enabled.
func (h *Handler) notifyFailure(summary, subject string) tea.Cmd {
	notify := h.Notify
	if notify == nil {
		return nil
	}
	logf := h.Logf

	return func() tea.Msg {
		if err := notify(notifyTitle, summary+": "+subject); err != nil {
			logf("Failed to send notification: %v", err)
		}
		return nil
	}
}

// OpenDebugLog opens path for appending and returns a logger writing to it.
// An empty path yields a nil logger.
func OpenDebugLog(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return nil, nopCloser{}, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, err
	}
	return log.New(f, "items-tui: ", log.Ltime|log.Lshortfile), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
