package anylistapi

import (
	"context"
	"fmt"
	"net/http"

	"anylist/internal/service"
)

// GetLists implements service.Service.
func (c *Client) GetLists(ctx context.Context) ([]service.List, error) {
	var lists []service.List
	if err := c.do(ctx, http.MethodGet, "/lists", nil, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

// GetListByID implements service.Service.
func (c *Client) GetListByID(ctx context.Context, listID string) (service.List, error) {
	var list service.List
	err := c.do(ctx, http.MethodGet, "/lists/"+pathEscape(listID), nil, &list)
	return list, err
}

// GetListByName implements service.Service. The lookup is performed
// over the full list set; matching is exact and case-sensitive, first
// match wins.
func (c *Client) GetListByName(ctx context.Context, name string) (service.List, error) {
	lists, err := c.GetLists(ctx)
	if err != nil {
		return service.List{}, err
	}
	for _, list := range lists {
		if list.Name == name {
			return list, nil
		}
	}
	return service.List{}, fmt.Errorf("list not found: %s", name)
}

// CreateList implements service.Service.
func (c *Client) CreateList(ctx context.Context, name string) (service.List, error) {
	var list service.List
	err := c.do(ctx, http.MethodPost, "/lists", map[string]string{"name": name}, &list)
	return list, err
}

// RenameList implements service.Service.
func (c *Client) RenameList(ctx context.Context, listID, newName string) error {
	return c.do(ctx, http.MethodPatch, "/lists/"+pathEscape(listID), map[string]string{"name": newName}, nil)
}

// DeleteList implements service.Service.
func (c *Client) DeleteList(ctx context.Context, listID string) error {
	return c.do(ctx, http.MethodDelete, "/lists/"+pathEscape(listID), nil, nil)
}

// itemPayload is the write shape for items. Optionals are omitted when
// absent so the service can distinguish missing from empty.
type itemPayload struct {
	Name     string  `json:"name"`
	Quantity *string `json:"quantity,omitempty"`
	Details  *string `json:"details,omitempty"`
	Category *string `json:"category,omitempty"`
}

// AddItem implements service.Service.
func (c *Client) AddItem(ctx context.Context, listID, name string) (service.ListItem, error) {
	return c.addItem(ctx, listID, itemPayload{Name: name})
}

// AddItemWithDetails implements service.Service.
func (c *Client) AddItemWithDetails(ctx context.Context, listID, name string, quantity, note, category *string) (service.ListItem, error) {
	return c.addItem(ctx, listID, itemPayload{
		Name:     name,
		Quantity: quantity,
		Details:  note,
		Category: category,
	})
}

func (c *Client) addItem(ctx context.Context, listID string, payload itemPayload) (service.ListItem, error) {
	var item service.ListItem
	err := c.do(ctx, http.MethodPost, "/lists/"+pathEscape(listID)+"/items", payload, &item)
	return item, err
}

// UpdateItem implements service.Service. The four mutable fields are
// replaced wholesale; nil optionals clear.
func (c *Client) UpdateItem(ctx context.Context, listID, itemID, name string, quantity, note, category *string) error {
	payload := struct {
		Name     string  `json:"name"`
		Quantity *string `json:"quantity"`
		Details  *string `json:"details"`
		Category *string `json:"category"`
	}{name, quantity, note, category}
	return c.do(ctx, http.MethodPut, "/lists/"+pathEscape(listID)+"/items/"+pathEscape(itemID), payload, nil)
}

// DeleteItem implements service.Service.
func (c *Client) DeleteItem(ctx context.Context, listID, itemID string) error {
	return c.do(ctx, http.MethodDelete, "/lists/"+pathEscape(listID)+"/items/"+pathEscape(itemID), nil, nil)
}

// BulkDeleteItems implements service.Service.
func (c *Client) BulkDeleteItems(ctx context.Context, listID string, itemIDs []string) error {
	payload := map[string][]string{"item_ids": itemIDs}
	return c.do(ctx, http.MethodPost, "/lists/"+pathEscape(listID)+"/items/batch-delete", payload, nil)
}

// SetItemChecked implements service.Service.
func (c *Client) SetItemChecked(ctx context.Context, listID, itemID string, checked bool) error {
	payload := map[string]bool{"is_checked": checked}
	return c.do(ctx, http.MethodPost, "/lists/"+pathEscape(listID)+"/items/"+pathEscape(itemID)+"/check", payload, nil)
}

// DeleteAllCrossedOffItems implements service.Service.
func (c *Client) DeleteAllCrossedOffItems(ctx context.Context, listID string) error {
	return c.do(ctx, http.MethodPost, "/lists/"+pathEscape(listID)+"/items/delete-crossed-off", nil, nil)
}
