package anylistapi

import (
	"context"
	"net/http"

	"anylist/internal/service"
)

// GetFavourites implements service.Service.
func (c *Client) GetFavourites(ctx context.Context) ([]service.FavouriteItem, error) {
	var favourites []service.FavouriteItem
	if err := c.do(ctx, http.MethodGet, "/favourites", nil, &favourites); err != nil {
		return nil, err
	}
	return favourites, nil
}

// GetFavouritesLists implements service.Service.
func (c *Client) GetFavouritesLists(ctx context.Context) ([]service.FavouritesList, error) {
	var lists []service.FavouritesList
	if err := c.do(ctx, http.MethodGet, "/favourites/lists", nil, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

// GetFavouritesForList implements service.Service.
func (c *Client) GetFavouritesForList(ctx context.Context, shoppingListID string) (service.FavouritesList, error) {
	var list service.FavouritesList
	err := c.do(ctx, http.MethodGet, "/lists/"+pathEscape(shoppingListID)+"/favourites", nil, &list)
	return list, err
}

// favouritePayload is the write shape for favourite items.
type favouritePayload struct {
	Name     string  `json:"name"`
	Category *string `json:"category,omitempty"`
}

// AddFavourite implements service.Service.
func (c *Client) AddFavourite(ctx context.Context, name string, category *string) (service.FavouriteItem, error) {
	var item service.FavouriteItem
	err := c.do(ctx, http.MethodPost, "/favourites", favouritePayload{name, category}, &item)
	return item, err
}

// AddFavouriteToList implements service.Service.
func (c *Client) AddFavouriteToList(ctx context.Context, listID, name string, category *string) (service.FavouriteItem, error) {
	var item service.FavouriteItem
	err := c.do(ctx, http.MethodPost, "/favourites/lists/"+pathEscape(listID)+"/items", favouritePayload{name, category}, &item)
	return item, err
}

// RemoveFavourite implements service.Service.
func (c *Client) RemoveFavourite(ctx context.Context, listID, itemID string) error {
	return c.do(ctx, http.MethodDelete, "/favourites/lists/"+pathEscape(listID)+"/items/"+pathEscape(itemID), nil, nil)
}

// AddFavouriteToShoppingList implements service.Service.
func (c *Client) AddFavouriteToShoppingList(ctx context.Context, favourite service.FavouriteItem, shoppingListID string) (service.ListItem, error) {
	payload := struct {
		FavouriteListID string `json:"favourite_list_id"`
		FavouriteID     string `json:"favourite_id"`
	}{favourite.ListID, favourite.ID}
	var item service.ListItem
	err := c.do(ctx, http.MethodPost, "/lists/"+pathEscape(shoppingListID)+"/items/from-favourite", payload, &item)
	return item, err
}
