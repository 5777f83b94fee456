package anylistapi

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"anylist/internal/service"
)

// GetRecipes implements service.Service.
func (c *Client) GetRecipes(ctx context.Context) ([]service.Recipe, error) {
	var recipes []service.Recipe
	if err := c.do(ctx, http.MethodGet, "/recipes", nil, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetRecipeByID implements service.Service.
func (c *Client) GetRecipeByID(ctx context.Context, recipeID string) (service.Recipe, error) {
	var recipe service.Recipe
	err := c.do(ctx, http.MethodGet, "/recipes/"+pathEscape(recipeID), nil, &recipe)
	return recipe, err
}

// GetRecipeByName implements service.Service. Exact, case-sensitive,
// first match wins.
func (c *Client) GetRecipeByName(ctx context.Context, name string) (service.Recipe, error) {
	recipes, err := c.GetRecipes(ctx)
	if err != nil {
		return service.Recipe{}, err
	}
	for _, recipe := range recipes {
		if recipe.Name == name {
			return recipe, nil
		}
	}
	return service.Recipe{}, fmt.Errorf("recipe not found: %s", name)
}

// SaveRecipe implements service.Service. An empty ID creates; a
// non-empty ID replaces.
func (c *Client) SaveRecipe(ctx context.Context, recipe service.Recipe) (service.Recipe, error) {
	var stored service.Recipe
	if recipe.ID == "" {
		err := c.do(ctx, http.MethodPost, "/recipes", recipe, &stored)
		return stored, err
	}
	err := c.do(ctx, http.MethodPut, "/recipes/"+pathEscape(recipe.ID), recipe, &stored)
	return stored, err
}

// DeleteRecipe implements service.Service.
func (c *Client) DeleteRecipe(ctx context.Context, recipeID string) error {
	return c.do(ctx, http.MethodDelete, "/recipes/"+pathEscape(recipeID), nil, nil)
}

// AddRecipeToList implements service.Service. Scaling is done
// server-side; the factor is passed through unchanged.
func (c *Client) AddRecipeToList(ctx context.Context, recipeID, listID string, scaleFactor *float64) error {
	payload := struct {
		RecipeID    string   `json:"recipe_id"`
		ScaleFactor *float64 `json:"scale_factor,omitempty"`
	}{recipeID, scaleFactor}
	return c.do(ctx, http.MethodPost, "/lists/"+pathEscape(listID)+"/recipes", payload, nil)
}

// UploadPhoto implements service.Service. The photo travels as a
// multipart form; the filename's extension drives content-type
// inference on the server.
func (c *Client) UploadPhoto(ctx context.Context, data []byte, filename string) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("photo", filename)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	tok, err := c.tokens.Token()
	if err != nil {
		return "", wrapError(err)
	}

	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/photos", &buf)
	if err != nil {
		return "", err
	}
	tok.SetAuthHeader(req)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	var out struct {
		PhotoID string `json:"photo_id"`
	}
	if err := wrapError(c.send(req, &out)); err != nil {
		return "", err
	}
	return out.PhotoID, nil
}

// GetRecipeCollections implements service.Service.
func (c *Client) GetRecipeCollections(ctx context.Context) ([]service.RecipeCollection, error) {
	var collections []service.RecipeCollection
	if err := c.do(ctx, http.MethodGet, "/recipe-collections", nil, &collections); err != nil {
		return nil, err
	}
	return collections, nil
}

// CreateRecipeCollection implements service.Service.
func (c *Client) CreateRecipeCollection(ctx context.Context, name string) (service.RecipeCollection, error) {
	var collection service.RecipeCollection
	err := c.do(ctx, http.MethodPost, "/recipe-collections", map[string]string{"name": name}, &collection)
	return collection, err
}

// DeleteRecipeCollection implements service.Service.
func (c *Client) DeleteRecipeCollection(ctx context.Context, collectionID string) error {
	return c.do(ctx, http.MethodDelete, "/recipe-collections/"+pathEscape(collectionID), nil, nil)
}

// AddRecipeToCollection implements service.Service.
func (c *Client) AddRecipeToCollection(ctx context.Context, collectionID, recipeID string) error {
	return c.do(ctx, http.MethodPut, "/recipe-collections/"+pathEscape(collectionID)+"/recipes/"+pathEscape(recipeID), nil, nil)
}

// RemoveRecipeFromCollection implements service.Service.
func (c *Client) RemoveRecipeFromCollection(ctx context.Context, collectionID, recipeID string) error {
	return c.do(ctx, http.MethodDelete, "/recipe-collections/"+pathEscape(collectionID)+"/recipes/"+pathEscape(recipeID), nil, nil)
}
