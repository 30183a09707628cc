// Package apitest provides an in-memory item collection server for tests.
package apitest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"

	"github.com/gorilla/mux"
	"github.com/hy4ri/items-tui/internal/api"
)

// Request is a request received by the server.
type Request struct {
	Method string
	Path   string
	Body   string
}

// Server is a fake collection server backed by a slice. Ids are assigned
// as increasing numbers.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	items    []api.Item
	nextID   int
	requests []Request
	failures map[string][]int
	listBody *string
	holds    []*Hold
}

// NewServer starts a server seeded with items.
func NewServer(seed ...api.Item) *Server {
	s := &Server{
		items:    append([]api.Item(nil), seed...),
		nextID:   1,
		failures: map[string][]int{},
	}
	for _, item := range seed {
		if n, err := strconv.Atoi(item.ID.String()); err == nil && n >= s.nextID {
			s.nextID = n + 1
		}
	}

	router := mux.NewRouter().UseEncodedPath()
	router.Use(s.record)
	router.HandleFunc(api.ItemsPath, s.listItems).Methods(http.MethodGet)
	router.HandleFunc(api.ItemsPath, s.createItem).Methods(http.MethodPost)
	router.HandleFunc(api.ItemsPath+"/{id}", s.updateItem).Methods(http.MethodPut)
	router.HandleFunc(api.ItemsPath+"/{id}", s.deleteItem).Methods(http.MethodDelete)
	router.HandleFunc(api.HealthPath, s.health).Methods(http.MethodGet)

	s.Server = httptest.NewServer(router)
	return s
}

// FailNext makes the next request with method answer with status.
// Calls queue up.
func (s *Server) FailNext(method string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method] = append(s.failures[method], status)
}

// SetListBody makes every list request answer with body verbatim.
func (s *Server) SetListBody(body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listBody = &body
}

// Hold parks one list request until Release is called.
type Hold struct {
	arrived chan struct{}
	release chan struct{}
	once    sync.Once
}

// Arrived is closed once the held request has taken its snapshot of the
// collection.
func (h *Hold) Arrived() <-chan struct{} { return h.arrived }

// Release lets the held request answer. It is safe to call more than once.
func (h *Hold) Release() {
	h.once.Do(func() { close(h.release) })
}

// HoldNextList makes the next list request wait until the hold is
// released. The response carries the collection as it was when the
// request arrived.
func (s *Server) HoldNextList() *Hold {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := &Hold{arrived: make(chan struct{}), release: make(chan struct{})}
	s.holds = append(s.holds, h)
	return h
}

// Requests returns every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// RequestsFor returns the requests received with method.
func (s *Server) RequestsFor(method string) []Request {
	var out []Request
	for _, r := range s.Requests() {
		if r.Method == method {
			out = append(out, r)
		}
	}
	return out
}

// Items returns a snapshot of the collection.
func (s *Server) Items() []api.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]api.Item(nil), s.items...)
}

// SetItems replaces the collection.
func (s *Server) SetItems(items ...api.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]api.Item(nil), items...)
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(body))

		s.mu.Lock()
		s.requests = append(s.requests, Request{Method: r.Method, Path: r.URL.Path, Body: string(body)})
		var status int
		if queued := s.failures[r.Method]; len(queued) > 0 {
			status = queued[0]
			s.failures[r.Method] = queued[1:]
		}
		s.mu.Unlock()

		if status != 0 {
			http.Error(w, http.StatusText(status), status)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) listItems(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	var hold *Hold
	if len(s.holds) > 0 {
		hold = s.holds[0]
		s.holds = s.holds[1:]
	}
	var body []byte
	if s.listBody != nil {
		body = []byte(*s.listBody)
	} else {
		items := s.items
		if items == nil {
			items = []api.Item{}
		}
		body, _ = json.Marshal(items)
	}
	s.mu.Unlock()

	if hold != nil {
		close(hold.arrived)
		<-hold.release
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

func (s *Server) createItem(w http.ResponseWriter, r *http.Request) {
	var d api.Draft
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if d.Validate() != nil {
		http.Error(w, "title is required", http.StatusUnprocessableEntity)
		return
	}

	s.mu.Lock()
	item := api.Item{
		ID:     api.ID(strconv.Itoa(s.nextID)),
		Title:  d.Title,
		Status: d.Status,
		Notes:  d.Notes,
	}
	s.nextID++
	s.items = append(s.items, item)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(item)
}

func (s *Server) updateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	var d api.Draft
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Title = d.Title
			s.items[i].Status = d.Status
			s.items[i].Notes = d.Notes
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(s.items[i])
			return
		}
	}
	http.Error(w, "Item not found", http.StatusNotFound)
}

func (s *Server) deleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	http.Error(w, "Item not found", http.StatusNotFound)
}

// itemID decodes the {id} segment, which is matched in escaped form.
func itemID(w http.ResponseWriter, r *http.Request) (api.ID, bool) {
	raw, err := url.PathUnescape(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid item id", http.StatusBadRequest)
		return "", false
	}
	return api.ID(raw), true
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok"))
}
