package client

import (
	"context"

	"anylist/internal/service"
)

// GetRecipeCollections returns all recipe collections.
func (c *Client) GetRecipeCollections(ctx context.Context) ([]service.RecipeCollection, error) {
	collections, err := c.svc.GetRecipeCollections(ctx)
	if err != nil {
		return nil, wrapErr("get recipe collections", err)
	}
	return collections, nil
}

// CreateRecipeCollection creates an empty collection and returns it.
func (c *Client) CreateRecipeCollection(ctx context.Context, name string) (service.RecipeCollection, error) {
	collection, err := c.svc.CreateRecipeCollection(ctx, name)
	if err != nil {
		return service.RecipeCollection{}, wrapErr("create recipe collection", err)
	}
	return collection, nil
}

// DeleteRecipeCollection deletes a collection. The member recipes are
// untouched.
func (c *Client) DeleteRecipeCollection(ctx context.Context, collectionID string) error {
	return wrapErr("delete recipe collection", c.svc.DeleteRecipeCollection(ctx, collectionID))
}

// AddRecipeToCollection adds a recipe to a collection.
func (c *Client) AddRecipeToCollection(ctx context.Context, collectionID, recipeID string) error {
	return wrapErr("add recipe to collection", c.svc.AddRecipeToCollection(ctx, collectionID, recipeID))
}

// RemoveRecipeFromCollection removes a recipe from a collection.
func (c *Client) RemoveRecipeFromCollection(ctx context.Context, collectionID, recipeID string) error {
	return wrapErr("remove recipe from collection", c.svc.RemoveRecipeFromCollection(ctx, collectionID, recipeID))
}
