package logic

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/items-tui/internal/api"
	"github.com/hy4ri/items-tui/internal/api/apitest"
	"github.com/hy4ri/items-tui/internal/config"
	"github.com/hy4ri/items-tui/internal/tui/state"
)

func newTestHandler(t *testing.T, seed ...api.Item) (*Handler, *apitest.Server) {
	t.Helper()
	srv := apitest.NewServer(seed...)
	t.Cleanup(srv.Close)

	client := api.NewClient(srv.URL, "")
	h := NewHandler(state.New(client, nil))
	h.Clipboard = nil
	// A blinking cursor turns every keystroke into a timer wait.
	h.ItemForm.Title.Cursor.SetMode(cursor.CursorStatic)
	h.ItemForm.Notes.Cursor.SetMode(cursor.CursorStatic)
	return h, srv
}

// drain runs cmd and feeds every resulting handler message back into
// Update until no work is left. Timer driven messages are dropped.
func drain(h *Handler, cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}

		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case itemsLoadedMsg, itemsLoadFailedMsg,
			itemSavedMsg, saveFailedMsg,
			itemDeletedMsg, deleteFailedMsg,
			statusMsg, RefreshMsg:
			queue = append(queue, h.Update(msg))
		}
	}
}

func press(h *Handler, keys ...tea.KeyMsg) {
	for _, k := range keys {
		drain(h, h.Update(k))
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	ctrlS = tea.KeyMsg{Type: tea.KeyCtrlS}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
)

func methods(reqs []apitest.Request) string {
	var parts []string
	for _, r := range reqs {
		parts = append(parts, r.Method+" "+r.Path)
	}
	return strings.Join(parts, ", ")
}

func TestInitLoadsItems(t *testing.T) {
	h, _ := newTestHandler(t,
		api.Item{ID: "1", Title: "a", Status: api.StatusTodo},
		api.Item{ID: "2", Title: "b", Status: api.StatusDone},
	)

	drain(h, h.Init())

	if len(h.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(h.Items))
	}
	if h.Loading {
		t.Error("loading flag should be cleared")
	}
	if h.Err != "" {
		t.Errorf("unexpected error %q", h.Err)
	}
}

func TestInitLoadFailure(t *testing.T) {
	h, srv := newTestHandler(t, api.Item{ID: "1", Title: "a", Status: api.StatusTodo})
	srv.FailNext(http.MethodGet, http.StatusInternalServerError)

	drain(h, h.Init())

	if h.Err != state.ErrLoadFailed {
		t.Errorf("expected %q, got %q", state.ErrLoadFailed, h.Err)
	}
	if h.Loading {
		t.Error("loading flag should be cleared after a failure")
	}
	if len(h.Items) != 0 {
		t.Errorf("expected empty list, got %v", h.Items)
	}

	h.focusList()
	press(h, runes("r"))

	if h.Err != "" || len(h.Items) != 1 {
		t.Errorf("refresh should recover: err=%q items=%v", h.Err, h.Items)
	}
}

func TestSpinnerRunsOnlyWhileLoading(t *testing.T) {
	h, _ := newTestHandler(t)

	cmd := h.LoadItems()
	if _, ok := cmd().(tea.BatchMsg); !ok {
		t.Fatal("the first load should start the spinner")
	}
	if _, ok := h.LoadItems()().(tea.BatchMsg); ok {
		t.Error("a load issued while loading must not start a second spinner")
	}
	if h.Update(h.Spinner.Tick()) == nil {
		t.Error("spinner should keep ticking while loading")
	}

	drain(h, h.LoadItems())
	if h.Loading {
		t.Fatal("load should have finished")
	}
	if cmd := h.Update(h.Spinner.Tick()); cmd != nil {
		t.Error("spinner should stop once nothing is loading")
	}
}

func TestMalformedListIsLoadFailure(t *testing.T) {
	h, srv := newTestHandler(t)
	srv.SetListBody(`{"not":"a list"}`)

	drain(h, h.Init())

	if h.Err != state.ErrLoadFailed {
		t.Errorf("expected %q, got %q", state.ErrLoadFailed, h.Err)
	}
}

func TestEditAndSave(t *testing.T) {
	h, srv := newTestHandler(t, api.Item{ID: "7", Title: "A", Status: api.StatusTodo, Notes: ""})
	drain(h, h.Init())

	h.focusList()
	press(h, runes("e"))

	if !h.IsEditing() || *h.EditingID != "7" {
		t.Fatalf("expected edit-mode for 7, got %v", h.EditingID)
	}
	if h.Focus != state.FocusForm {
		t.Fatal("edit should focus the form")
	}

	// title -> status, then todo -> in_progress -> done
	press(h, tab, runes("l"), runes("l"))
	if h.Form.Status != api.StatusDone {
		t.Fatalf("expected draft status done, got %q", h.Form.Status)
	}

	press(h, ctrlS)

	puts := srv.RequestsFor(http.MethodPut)
	if len(puts) != 1 {
		t.Fatalf("expected one PUT, got %s", methods(srv.Requests()))
	}
	if puts[0].Path != "/api/items/7" {
		t.Errorf("unexpected path %s", puts[0].Path)
	}
	if want := `{"title":"A","status":"done","notes":""}`; puts[0].Body != want {
		t.Errorf("expected body %s, got %s", want, puts[0].Body)
	}

	reqs := srv.Requests()
	if last := reqs[len(reqs)-1]; last.Method != http.MethodGet || last.Path != api.ItemsPath {
		t.Errorf("expected a reload after the update, got %s", methods(reqs))
	}

	if h.IsEditing() || h.Form != api.EmptyDraft() {
		t.Errorf("form should reset after save, got %+v", h.Form)
	}
	if h.Items[0].Status != api.StatusDone {
		t.Errorf("reloaded list should show done, got %q", h.Items[0].Status)
	}
	if h.StatusMsg != "Changes saved" {
		t.Errorf("unexpected status message %q", h.StatusMsg)
	}
}

func TestEditKeepsLongItemIntact(t *testing.T) {
	title := strings.Repeat("T", 300)
	var lines []string
	for i := 0; i < 150; i++ {
		lines = append(lines, fmt.Sprintf("note line %03d", i))
	}
	notes := strings.Join(lines, "\n") + strings.Repeat("n", 2500)

	h, srv := newTestHandler(t, api.Item{ID: "9", Title: title, Status: api.StatusTodo, Notes: notes})
	drain(h, h.Init())

	h.focusList()
	press(h, runes("e"), tea.KeyMsg{Type: tea.KeyBackspace})
	// title -> status -> notes, then type at the end of the notes
	press(h, tab, tab, runes("!"), ctrlS)

	puts := srv.RequestsFor(http.MethodPut)
	if len(puts) != 1 {
		t.Fatalf("expected one PUT, got %s", methods(srv.Requests()))
	}
	var sent api.Draft
	if err := json.Unmarshal([]byte(puts[0].Body), &sent); err != nil {
		t.Fatalf("PUT body is not a draft: %v", err)
	}
	if want := title[:len(title)-1]; sent.Title != want {
		t.Errorf("expected title of %d chars, got %d", len(want), len(sent.Title))
	}
	if want := notes + "!"; sent.Notes != want {
		t.Errorf("expected notes of %d chars, got %d (%d lines)",
			len(want), len(sent.Notes), strings.Count(sent.Notes, "\n")+1)
	}
	if sent.Status != api.StatusTodo {
		t.Errorf("status changed to %q", sent.Status)
	}
}

func TestDeleteReservedCharacterID(t *testing.T) {
	h, srv := newTestHandler(t,
		api.Item{ID: "k", Title: "plain", Status: api.StatusTodo},
		api.Item{ID: "k#1", Title: "reserved", Status: api.StatusTodo},
	)
	drain(h, h.Init())

	h.focusList()
	press(h, runes("j"), runes("d"), runes("y"))

	if h.Err != "" {
		t.Fatalf("delete failed: %q", h.Err)
	}
	remaining := srv.Items()
	if len(remaining) != 1 || remaining[0].ID != "k" {
		t.Errorf("wrong item deleted, left %+v", remaining)
	}
}

func TestCreateRoundTrip(t *testing.T) {
	h, srv := newTestHandler(t)
	drain(h, h.Init())

	press(h, runes("New"), ctrlS)

	posts := srv.RequestsFor(http.MethodPost)
	if len(posts) != 1 {
		t.Fatalf("expected one POST, got %s", methods(srv.Requests()))
	}
	if want := `{"title":"New","status":"todo","notes":""}`; posts[0].Body != want {
		t.Errorf("expected body %s, got %s", want, posts[0].Body)
	}

	if len(h.Items) != 1 || h.Items[0].ID == "" || h.Items[0].Title != "New" {
		t.Fatalf("expected the created item with a server id, got %+v", h.Items)
	}
	if h.Form != api.EmptyDraft() {
		t.Errorf("form should reset, got %+v", h.Form)
	}
	if h.StatusMsg != "Item added" {
		t.Errorf("unexpected status message %q", h.StatusMsg)
	}
}

func TestEmptyTitleSendsNothing(t *testing.T) {
	h, srv := newTestHandler(t)
	drain(h, h.Init())

	press(h, runes("   "))
	if cmd := h.Update(ctrlS); cmd != nil {
		t.Error("blank title should not produce a command")
	}

	if n := len(srv.RequestsFor(http.MethodPost)); n != 0 {
		t.Errorf("expected no POST, got %d", n)
	}
	if h.FormHint != state.HintTitleRequired {
		t.Errorf("expected hint %q, got %q", state.HintTitleRequired, h.FormHint)
	}
}

func TestSaveFailureKeepsDraft(t *testing.T) {
	h, srv := newTestHandler(t)
	drain(h, h.Init())
	srv.FailNext(http.MethodPost, http.StatusInternalServerError)

	press(h, runes("X"), ctrlS)

	if h.Err != state.ErrSaveFailed {
		t.Errorf("expected %q, got %q", state.ErrSaveFailed, h.Err)
	}
	if h.Form.Title != "X" {
		t.Errorf("draft should survive a failed save, got %+v", h.Form)
	}
	if n := len(srv.RequestsFor(http.MethodGet)); n != 1 {
		t.Errorf("failed save must not reload, got %s", methods(srv.Requests()))
	}

	// retry succeeds
	press(h, ctrlS)
	if h.Err != "" || len(h.Items) != 1 {
		t.Errorf("retry should succeed: err=%q items=%v", h.Err, h.Items)
	}
}

func TestSubmitFromSubmitField(t *testing.T) {
	h, srv := newTestHandler(t)
	drain(h, h.Init())

	press(h, runes("Via enter"))
	h.ItemForm.Focus(state.FormFieldSubmit)
	press(h, tea.KeyMsg{Type: tea.KeyEnter})

	if n := len(srv.RequestsFor(http.MethodPost)); n != 1 {
		t.Errorf("expected one POST, got %d", n)
	}
}

func TestEscapeCancelsEdit(t *testing.T) {
	h, _ := newTestHandler(t, api.Item{ID: "3", Title: "B", Status: api.StatusInProgress, Notes: "x"})
	drain(h, h.Init())

	h.focusList()
	press(h, runes("e"), esc)

	if h.IsEditing() || h.Form != api.EmptyDraft() {
		t.Errorf("esc should cancel edit, got %+v", h.Form)
	}
	if h.Focus != state.FocusForm {
		t.Error("cancel should keep the form focused")
	}

	press(h, esc)
	if h.Focus != state.FocusList {
		t.Error("esc in create-mode should focus the list")
	}
}

func TestDeleteDeclined(t *testing.T) {
	h, srv := newTestHandler(t, api.Item{ID: "7", Title: "A", Status: api.StatusTodo})
	drain(h, h.Init())

	h.focusList()
	press(h, runes("d"))
	if h.PendingDelete == nil || *h.PendingDelete != "7" {
		t.Fatalf("expected confirmation prompt for 7, got %v", h.PendingDelete)
	}

	press(h, runes("n"))

	if h.PendingDelete != nil {
		t.Error("prompt should close")
	}
	if n := len(srv.RequestsFor(http.MethodDelete)); n != 0 {
		t.Errorf("declined delete sent %d requests", n)
	}
	if len(h.Items) != 1 {
		t.Error("list should be unchanged")
	}
	if h.StatusMsg != "Delete cancelled" {
		t.Errorf("unexpected status message %q", h.StatusMsg)
	}
}

func TestDeleteConfirmed(t *testing.T) {
	h, srv := newTestHandler(t, api.Item{ID: "7", Title: "A", Status: api.StatusTodo})
	drain(h, h.Init())

	h.focusList()
	press(h, runes("d"), runes("y"))

	dels := srv.RequestsFor(http.MethodDelete)
	if len(dels) != 1 || dels[0].Path != "/api/items/7" {
		t.Fatalf("expected DELETE /api/items/7, got %s", methods(srv.Requests()))
	}
	if n := len(srv.RequestsFor(http.MethodGet)); n != 2 {
		t.Errorf("expected a reload after delete, got %s", methods(srv.Requests()))
	}
	if len(h.Items) != 0 {
		t.Errorf("expected empty list, got %v", h.Items)
	}
	if h.StatusMsg != "Item deleted" {
		t.Errorf("unexpected status message %q", h.StatusMsg)
	}
}

func TestDeleteRejectedByServer(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError} {
		h, srv := newTestHandler(t, api.Item{ID: "7", Title: "A", Status: api.StatusTodo})
		drain(h, h.Init())
		srv.FailNext(http.MethodDelete, status)

		var notified []string
		h.Notify = func(title, message string) error {
			notified = append(notified, title+"|"+message)
			return nil
		}

		h.focusList()
		press(h, runes("d"), runes("y"))

		if h.Err != state.ErrDeleteFailed {
			t.Errorf("status %d: expected %q, got %q", status, state.ErrDeleteFailed, h.Err)
		}
		if n := len(srv.RequestsFor(http.MethodGet)); n != 1 {
			t.Errorf("status %d: failed delete must not reload, got %s", status, methods(srv.Requests()))
		}
		if len(notified) != 1 || notified[0] != "Items|Delete failed: Item 7" {
			t.Errorf("status %d: unexpected notifications %v", status, notified)
		}
	}
}

func TestNotificationsOffByDefault(t *testing.T) {
	h := NewHandler(state.New(nil, nil))
	if h.Notify != nil {
		t.Error("notifications should be disabled by default")
	}

	cfg := config.DefaultConfig()
	cfg.UI.Notifications = true
	h = NewHandler(state.New(nil, cfg))
	if h.Notify == nil {
		t.Error("notifications should follow the config")
	}
}

func TestCopyHealthURL(t *testing.T) {
	h, srv := newTestHandler(t)
	drain(h, h.Init())

	var copied string
	h.Clipboard = func(text string) error {
		copied = text
		return nil
	}

	h.focusList()
	press(h, runes("H"))

	want := srv.URL + api.HealthPath
	if copied != want {
		t.Errorf("expected %q on the clipboard, got %q", want, copied)
	}
	if h.StatusMsg != "Copied "+want {
		t.Errorf("unexpected status message %q", h.StatusMsg)
	}
}

func TestListNavigation(t *testing.T) {
	h, _ := newTestHandler(t,
		api.Item{ID: "1", Title: "a"},
		api.Item{ID: "2", Title: "b"},
		api.Item{ID: "3", Title: "c"},
	)
	drain(h, h.Init())
	h.focusList()

	press(h, runes("j"), runes("j"), runes("j"))
	if h.Cursor != 2 {
		t.Errorf("expected cursor 2, got %d", h.Cursor)
	}
	press(h, runes("g"), runes("g"))
	if h.Cursor != 0 {
		t.Errorf("expected gg to jump to top, got %d", h.Cursor)
	}
	press(h, runes("G"))
	if h.Cursor != 2 {
		t.Errorf("expected G to jump to bottom, got %d", h.Cursor)
	}

	press(h, tab)
	if h.Focus != state.FocusForm {
		t.Error("tab should move focus to the form")
	}
}

func TestReturningToListShowsCursor(t *testing.T) {
	var seed []api.Item
	for i := 0; i < 40; i++ {
		seed = append(seed, api.Item{ID: api.ID(fmt.Sprint(i + 1)), Title: "row", Status: api.StatusTodo})
	}
	h, _ := newTestHandler(t, seed...)
	drain(h, h.Init())
	h.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	h.focusList()

	press(h, runes("G"), runes("e"))
	if h.ScrollOffset != 0 {
		t.Fatalf("edit should scroll the list to the top, got offset %d", h.ScrollOffset)
	}

	press(h, esc, esc)
	if h.Focus != state.FocusList {
		t.Fatal("expected list focus")
	}
	lines := h.ListLines()
	if h.Cursor != 39 || h.Cursor < h.ScrollOffset || h.Cursor >= h.ScrollOffset+lines {
		t.Errorf("cursor %d outside window %d+%d", h.Cursor, h.ScrollOffset, lines)
	}
}

func TestHelpToggle(t *testing.T) {
	h, _ := newTestHandler(t)
	h.focusList()

	press(h, runes("?"))
	if !h.ShowHelp {
		t.Fatal("expected help to open")
	}
	press(h, runes("j"))
	if !h.ShowHelp {
		t.Error("other keys should not close help")
	}
	press(h, runes("?"))
	if h.ShowHelp {
		t.Error("expected help to close")
	}
}

func TestOpenDebugLog(t *testing.T) {
	logger, closer, err := OpenDebugLog("")
	if err != nil || logger != nil {
		t.Fatalf("empty path should disable logging, got %v %v", logger, err)
	}
	closer.Close()

	path := filepath.Join(t.TempDir(), "logs", "debug.log")
	logger, closer, err = OpenDebugLog(path)
	if err != nil {
		t.Fatalf("OpenDebugLog: %v", err)
	}
	logger.Printf("hello %d", 1)
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello 1") {
		t.Errorf("log missing entry: %q", data)
	}
}
