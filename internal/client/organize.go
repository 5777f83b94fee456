package client

import (
	"context"

	"anylist/internal/service"
)

// CreateCategory adds a category to a category group on a list and
// returns it.
func (c *Client) CreateCategory(ctx context.Context, listID, categoryGroupID, name string) (service.Category, error) {
	category, err := c.svc.CreateCategory(ctx, listID, categoryGroupID, name)
	if err != nil {
		return service.Category{}, wrapErr("create category", err)
	}
	return category, nil
}

// RenameCategory changes a category's name.
func (c *Client) RenameCategory(ctx context.Context, listID, categoryGroupID, categoryID, newName string) error {
	return wrapErr("rename category", c.svc.RenameCategory(ctx, listID, categoryGroupID, categoryID, newName))
}

// DeleteCategory removes a category from a list.
func (c *Client) DeleteCategory(ctx context.Context, listID, categoryID string) error {
	return wrapErr("delete category", c.svc.DeleteCategory(ctx, listID, categoryID))
}

// GetStoresForList returns the stores defined on a list.
func (c *Client) GetStoresForList(ctx context.Context, listID string) ([]service.Store, error) {
	stores, err := c.svc.GetStoresForList(ctx, listID)
	if err != nil {
		return nil, wrapErr("get stores", err)
	}
	return stores, nil
}

// CreateStore adds a store to a list and returns it.
func (c *Client) CreateStore(ctx context.Context, listID, name string) (service.Store, error) {
	store, err := c.svc.CreateStore(ctx, listID, name)
	if err != nil {
		return service.Store{}, wrapErr("create store", err)
	}
	return store, nil
}

// UpdateStore changes a store's name.
func (c *Client) UpdateStore(ctx context.Context, listID, storeID, newName string) error {
	return wrapErr("update store", c.svc.UpdateStore(ctx, listID, storeID, newName))
}

// DeleteStore removes a store from a list.
func (c *Client) DeleteStore(ctx context.Context, listID, storeID string) error {
	return wrapErr("delete store", c.svc.DeleteStore(ctx, listID, storeID))
}

// GetStoreFiltersForList returns the store filters on a list. Every
// filter's store ids are a subset of the list's stores.
func (c *Client) GetStoreFiltersForList(ctx context.Context, listID string) ([]service.StoreFilter, error) {
	filters, err := c.svc.GetStoreFiltersForList(ctx, listID)
	if err != nil {
		return nil, wrapErr("get store filters", err)
	}
	return filters, nil
}
