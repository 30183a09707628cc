package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
)

// ErrEmptyBody is returned when a response that must carry JSON has no body.
var ErrEmptyBody = errors.New("empty response body")

// ItemPath returns the resource path of a single item. The id is escaped
// as one path segment.
func ItemPath(id ID) string {
	return ItemsPath + "/" + url.PathEscape(id.String())
}

// ListItems returns the full item collection.
func (c *Client) ListItems() ([]Item, error) {
	body, err := c.Get(ItemsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, fmt.Errorf("failed to list items: %w", ErrEmptyBody)
	}

	var items []Item
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}

// CreateItem inserts a new item. The returned item is nil when the server
// answers with a status only.
func (c *Client) CreateItem(d Draft) (*Item, error) {
	body, err := c.Post(ItemsPath, d)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	return decodeItem(body), nil
}

// UpdateItem replaces the editable fields of an existing item. The returned
// item is nil when the server answers with a status only.
func (c *Client) UpdateItem(id ID, d Draft) (*Item, error) {
	body, err := c.Put(ItemPath(id), d)
	if err != nil {
		return nil, fmt.Errorf("failed to update item %s: %w", id, err)
	}
	return decodeItem(body), nil
}

// DeleteItem removes an item.
func (c *Client) DeleteItem(id ID) error {
	if err := c.Delete(ItemPath(id)); err != nil {
		return fmt.Errorf("failed to delete item %s: %w", id, err)
	}
	return nil
}

// Health checks the server health endpoint. Only the status is inspected.
func (c *Client) Health() error {
	if _, err := c.Get(HealthPath); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	return nil
}

// HealthURL returns the absolute URL of the health endpoint.
func (c *Client) HealthURL() string {
	return c.URL(HealthPath)
}

// decodeItem parses a mutation response. Bodies that are not an item
// object yield nil.
func decodeItem(body []byte) *Item {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return nil
	}
	var item Item
	if err := json.Unmarshal(body, &item); err != nil {
		return nil
	}
	return &item
}
