package anylistapi

import (
	"context"
	"net/http"

	"anylist/internal/service"
)

// CreateCategory implements service.Service.
func (c *Client) CreateCategory(ctx context.Context, listID, categoryGroupID, name string) (service.Category, error) {
	payload := struct {
		CategoryGroupID string `json:"category_group_id"`
		Name            string `json:"name"`
	}{categoryGroupID, name}
	var category service.Category
	err := c.do(ctx, http.MethodPost, "/lists/"+pathEscape(listID)+"/categories", payload, &category)
	return category, err
}

// RenameCategory implements service.Service.
func (c *Client) RenameCategory(ctx context.Context, listID, categoryGroupID, categoryID, newName string) error {
	payload := struct {
		CategoryGroupID string `json:"category_group_id"`
		Name            string `json:"name"`
	}{categoryGroupID, newName}
	return c.do(ctx, http.MethodPatch, "/lists/"+pathEscape(listID)+"/categories/"+pathEscape(categoryID), payload, nil)
}

// DeleteCategory implements service.Service.
func (c *Client) DeleteCategory(ctx context.Context, listID, categoryID string) error {
	return c.do(ctx, http.MethodDelete, "/lists/"+pathEscape(listID)+"/categories/"+pathEscape(categoryID), nil, nil)
}

// GetStoresForList implements service.Service.
func (c *Client) GetStoresForList(ctx context.Context, listID string) ([]service.Store, error) {
	var stores []service.Store
	if err := c.do(ctx, http.MethodGet, "/lists/"+pathEscape(listID)+"/stores", nil, &stores); err != nil {
		return nil, err
	}
	return stores, nil
}

// CreateStore implements service.Service.
func (c *Client) CreateStore(ctx context.Context, listID, name string) (service.Store, error) {
	var store service.Store
	err := c.do(ctx, http.MethodPost, "/lists/"+pathEscape(listID)+"/stores", map[string]string{"name": name}, &store)
	return store, err
}

// UpdateStore implements service.Service.
func (c *Client) UpdateStore(ctx context.Context, listID, storeID, newName string) error {
	return c.do(ctx, http.MethodPatch, "/lists/"+pathEscape(listID)+"/stores/"+pathEscape(storeID), map[string]string{"name": newName}, nil)
}

// DeleteStore implements service.Service.
func (c *Client) DeleteStore(ctx context.Context, listID, storeID string) error {
	return c.do(ctx, http.MethodDelete, "/lists/"+pathEscape(listID)+"/stores/"+pathEscape(storeID), nil, nil)
}

// GetStoreFiltersForList implements service.Service.
func (c *Client) GetStoreFiltersForList(ctx context.Context, listID string) ([]service.StoreFilter, error) {
	var filters []service.StoreFilter
	if err := c.do(ctx, http.MethodGet, "/lists/"+pathEscape(listID)+"/store-filters", nil, &filters); err != nil {
		return nil, err
	}
	return filters, nil
}
