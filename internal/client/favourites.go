package client

import (
	"context"

	"anylist/internal/service"
)

// GetFavourites returns every favourite item across all favourites
// lists, flattened.
func (c *Client) GetFavourites(ctx context.Context) ([]service.FavouriteItem, error) {
	favourites, err := c.svc.GetFavourites(ctx)
	if err != nil {
		return nil, wrapErr("get favourites", err)
	}
	return favourites, nil
}

// GetFavouritesLists returns all favourites (starter) lists.
func (c *Client) GetFavouritesLists(ctx context.Context) ([]service.FavouritesList, error) {
	lists, err := c.svc.GetFavouritesLists(ctx)
	if err != nil {
		return nil, wrapErr("get favourites lists", err)
	}
	return lists, nil
}

// GetFavouritesForList returns the favourites list associated with a
// shopping list.
func (c *Client) GetFavouritesForList(ctx context.Context, shoppingListID string) (service.FavouritesList, error) {
	list, err := c.svc.GetFavouritesForList(ctx, shoppingListID)
	if err != nil {
		return service.FavouritesList{}, wrapErr("get favourites", err)
	}
	return list, nil
}

// AddFavourite adds a favourite item to the default favourites list.
func (c *Client) AddFavourite(ctx context.Context, name string, category *string) (service.FavouriteItem, error) {
	item, err := c.svc.AddFavourite(ctx, name, category)
	if err != nil {
		return service.FavouriteItem{}, wrapErr("add favourite", err)
	}
	return item, nil
}

// AddFavouriteToList adds a favourite item to a specific favourites
// list.
func (c *Client) AddFavouriteToList(ctx context.Context, listID, name string, category *string) (service.FavouriteItem, error) {
	item, err := c.svc.AddFavouriteToList(ctx, listID, name, category)
	if err != nil {
		return service.FavouriteItem{}, wrapErr("add favourite", err)
	}
	return item, nil
}

// RemoveFavourite removes a favourite item from a favourites list.
func (c *Client) RemoveFavourite(ctx context.Context, listID, itemID string) error {
	return wrapErr("remove favourite", c.svc.RemoveFavourite(ctx, listID, itemID))
}

// AddFavouriteToShoppingList promotes a favourite item onto a shopping
// list and returns the created list item. The favourite is looked up in
// the named favourites list by the facade itself; when favouriteID is
// not present there the call fails with a NotFoundError.
func (c *Client) AddFavouriteToShoppingList(ctx context.Context, favouriteListID, favouriteID, shoppingListID string) (service.ListItem, error) {
	favouritesList, err := c.svc.GetFavouritesForList(ctx, favouriteListID)
	if err != nil {
		return service.ListItem{}, wrapErr("get favourites", err)
	}

	var favourite *service.FavouriteItem
	for i := range favouritesList.Items {
		if favouritesList.Items[i].ID == favouriteID {
			favourite = &favouritesList.Items[i]
			break
		}
	}
	if favourite == nil {
		return service.ListItem{}, &NotFoundError{Message: "Favourite item not found"}
	}

	item, err := c.svc.AddFavouriteToShoppingList(ctx, *favourite, shoppingListID)
	if err != nil {
		return service.ListItem{}, wrapErr("add favourite to shopping list", err)
	}
	return item, nil
}
