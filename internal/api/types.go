// Package api provides a client for the item collection REST API.
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ID is an opaque item identifier assigned by the server.
// The wire form may be a JSON string or a JSON number.
type ID string

// String returns the identifier as it appears in resource paths.
func (id ID) String() string {
	return string(id)
}

// UnmarshalJSON accepts both string and numeric identifiers.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid id %s: %w", data, err)
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid id %s: %w", data, err)
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON emits identifiers that read as JSON numbers as numbers and
// everything else as strings. The wire form is not kept, so "42" and 42
// both come back out as 42. Requests only carry ids in paths, where the
// two forms are the same.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.isNumeric() {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id ID) isNumeric() bool {
	if id == "" {
		return false
	}
	c := id[0]
	if c != '-' && (c < '0' || c > '9') {
		return false
	}
	return json.Valid([]byte(id))
}

// Status is the workflow state of an item.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// Statuses lists the known statuses in display order.
var Statuses = []Status{StatusTodo, StatusInProgress, StatusDone}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Label returns the human readable form, e.g. "in progress".
func (s Status) Label() string {
	return strings.ReplaceAll(string(s), "_", " ")
}

// Next returns the status after s, wrapping around. Unknown values map to todo.
func (s Status) Next() Status {
	for i, known := range Statuses {
		if s == known {
			return Statuses[(i+1)%len(Statuses)]
		}
	}
	return StatusTodo
}

// Prev returns the status before s, wrapping around. Unknown values map to todo.
func (s Status) Prev() Status {
	for i, known := range Statuses {
		if s == known {
			return Statuses[(i-1+len(Statuses))%len(Statuses)]
		}
	}
	return StatusTodo
}

// Item is a single entry of the remote collection.
type Item struct {
	ID     ID     `json:"id"`
	Title  string `json:"title"`
	Status Status `json:"status"`
	Notes  string `json:"notes"`
}

// Draft returns the editable fields of the item.
func (i Item) Draft() Draft {
	return Draft{
		Title:  i.Title,
		Status: i.Status,
		Notes:  i.Notes,
	}
}

// Draft is an item without an identifier. It is the request body of
// create and update calls.
type Draft struct {
	Title  string `json:"title"`
	Status Status `json:"status"`
	Notes  string `json:"notes"`
}

// Draft field names accepted by Set.
const (
	FieldTitle  = "title"
	FieldStatus = "status"
	FieldNotes  = "notes"
)

var (
	// ErrTitleRequired is returned by Validate when the title is blank.
	ErrTitleRequired = errors.New("title is required")

	// ErrUnknownField is returned by Set for names other than title, status and notes.
	ErrUnknownField = errors.New("unknown draft field")

	// ErrUnknownStatus is returned by Set for status values outside Statuses.
	ErrUnknownStatus = errors.New("unknown status")
)

// EmptyDraft returns the blank form state.
func EmptyDraft() Draft {
	return Draft{Status: StatusTodo}
}

// Set returns a copy of d with a single field replaced.
func (d Draft) Set(name, value string) (Draft, error) {
	switch name {
	case FieldTitle:
		d.Title = value
	case FieldStatus:
		s := Status(value)
		if !s.Valid() {
			return d, fmt.Errorf("%w: %q", ErrUnknownStatus, value)
		}
		d.Status = s
	case FieldNotes:
		d.Notes = value
	default:
		return d, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return d, nil
}

// Validate checks the draft can be sent to the server.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrTitleRequired
	}
	return nil
}
