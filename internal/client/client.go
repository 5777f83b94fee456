// Package client provides the user-facing AnyList handle.
//
// A Client owns one authenticated session and exposes the full
// operation catalog over lists, items, recipes, categories, stores,
// favourites, meal plans and recipe collections. Every method is a thin
// facade: convert inputs, invoke the backend service, convert outputs.
// Nothing is retried, cached or recovered locally; every failure
// surfaces as a ServiceError carrying the service's diagnostic.
//
// A Client is safe for concurrent use. Operations issued concurrently
// on the same handle may complete in any order; await one before
// issuing the next if ordering matters.
package client

import (
	"context"

	"anylist/internal/backend/anylistapi"
	"anylist/internal/service"
)

// Client is a handle on one authenticated AnyList session.
type Client struct {
	svc service.Service
}

// New wraps an existing Service in a Client. Used by tests and by
// callers that construct their own backend.
func New(svc service.Service) *Client {
	return &Client{svc: svc}
}

// Login authenticates with email and password and returns a Client
// holding a fresh session.
func Login(ctx context.Context, email, password string) (*Client, error) {
	svc, err := anylistapi.Login(ctx, email, password)
	if err != nil {
		return nil, wrapErr("login", err)
	}
	return New(svc), nil
}

// FromTokens builds a Client from previously saved tokens. No network
// I/O happens here; token validity is checked on the first operation.
func FromTokens(tokens service.SavedTokens) (*Client, error) {
	svc, err := anylistapi.FromTokens(tokens)
	if err != nil {
		return nil, wrapErr("restore session", err)
	}
	return New(svc), nil
}

// Tokens returns a snapshot of the session credentials, reflecting any
// refresh that has occurred.
func (c *Client) Tokens() service.SavedTokens {
	return c.svc.ExportTokens()
}

// UserID returns the authenticated user id.
func (c *Client) UserID() string { return c.svc.UserID() }

// IsPremiumUser reports whether the account has a premium subscription.
func (c *Client) IsPremiumUser() bool { return c.svc.IsPremiumUser() }

// ClientIdentifier returns the stable per-session client id.
func (c *Client) ClientIdentifier() string { return c.svc.ClientIdentifier() }

// GetLists returns all lists visible to the user, items embedded.
func (c *Client) GetLists(ctx context.Context) ([]service.List, error) {
	lists, err := c.svc.GetLists(ctx)
	if err != nil {
		return nil, wrapErr("get lists", err)
	}
	return lists, nil
}

// GetListByID returns a single list by id.
func (c *Client) GetListByID(ctx context.Context, listID string) (service.List, error) {
	list, err := c.svc.GetListByID(ctx, listID)
	if err != nil {
		return service.List{}, wrapErr("get list", err)
	}
	return list, nil
}

// GetListByName returns the first list with the exact name.
// The lookup is case-sensitive.
func (c *Client) GetListByName(ctx context.Context, name string) (service.List, error) {
	list, err := c.svc.GetListByName(ctx, name)
	if err != nil {
		return service.List{}, wrapErr("get list", err)
	}
	return list, nil
}

// CreateList creates a new empty list and returns it.
func (c *Client) CreateList(ctx context.Context, name string) (service.List, error) {
	list, err := c.svc.CreateList(ctx, name)
	if err != nil {
		return service.List{}, wrapErr("create list", err)
	}
	return list, nil
}

// RenameList changes a list's name.
func (c *Client) RenameList(ctx context.Context, listID, newName string) error {
	return wrapErr("rename list", c.svc.RenameList(ctx, listID, newName))
}

// DeleteList deletes a list. Deleting an unknown list fails.
func (c *Client) DeleteList(ctx context.Context, listID string) error {
	return wrapErr("delete list", c.svc.DeleteList(ctx, listID))
}

// AddItem adds an item to a list and returns the created item.
func (c *Client) AddItem(ctx context.Context, listID, name string) (service.ListItem, error) {
	item, err := c.svc.AddItem(ctx, listID, name)
	if err != nil {
		return service.ListItem{}, wrapErr("add item", err)
	}
	return item, nil
}

// AddItemWithDetails adds an item with optional quantity, note and
// category. Nil optionals are absent, not empty strings.
func (c *Client) AddItemWithDetails(ctx context.Context, listID, name string, quantity, note, category *string) (service.ListItem, error) {
	item, err := c.svc.AddItemWithDetails(ctx, listID, name, quantity, note, category)
	if err != nil {
		return service.ListItem{}, wrapErr("add item", err)
	}
	return item, nil
}

// UpdateItem replaces an item's name, quantity, note and category.
// Passing nil for an optional clears it.
func (c *Client) UpdateItem(ctx context.Context, listID, itemID, name string, quantity, note, category *string) error {
	return wrapErr("update item", c.svc.UpdateItem(ctx, listID, itemID, name, quantity, note, category))
}

// DeleteItem removes a single item from a list.
func (c *Client) DeleteItem(ctx context.Context, listID, itemID string) error {
	return wrapErr("delete item", c.svc.DeleteItem(ctx, listID, itemID))
}

// BulkDeleteItems removes several items in one call. The result
// reports the first failure.
func (c *Client) BulkDeleteItems(ctx context.Context, listID string, itemIDs []string) error {
	return wrapErr("delete items", c.svc.BulkDeleteItems(ctx, listID, itemIDs))
}

// CrossOffItem marks an item checked. Idempotent.
func (c *Client) CrossOffItem(ctx context.Context, listID, itemID string) error {
	return wrapErr("cross off item", c.svc.SetItemChecked(ctx, listID, itemID, true))
}

// UncheckItem marks an item unchecked. Idempotent.
func (c *Client) UncheckItem(ctx context.Context, listID, itemID string) error {
	return wrapErr("uncheck item", c.svc.SetItemChecked(ctx, listID, itemID, false))
}

// DeleteAllCrossedOffItems removes every item in the list that is
// checked server-side at invocation time.
func (c *Client) DeleteAllCrossedOffItems(ctx context.Context, listID string) error {
	return wrapErr("delete crossed off items", c.svc.DeleteAllCrossedOffItems(ctx, listID))
}
