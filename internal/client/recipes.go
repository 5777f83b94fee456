package client

import (
	"context"

	"anylist/internal/service"
)

// IngredientInput describes one ingredient of a recipe being created or
// updated. It has no id; the service does not give ingredients identity.
type IngredientInput struct {
	Name     string
	Quantity *string
	Note     *string
}

// RecipeOptions gathers every recipe-mutating field for CreateRecipe
// and UpdateRecipe. Nil optionals are absent; on update they clear the
// corresponding field.
type RecipeOptions struct {
	// Name is the required display name. UpdateRecipe ignores it: a
	// recipe's name cannot be changed.
	Name string

	// Ingredients in order.
	Ingredients []IngredientInput

	// PreparationSteps in order.
	PreparationSteps []string

	Note       *string
	SourceName *string
	SourceURL  *string
	Servings   *string

	// PrepTime and CookTime are minutes.
	PrepTime *int
	CookTime *int

	// Rating is 1..5.
	Rating *int

	NutritionalInfo *string

	// PhotoID is an id previously returned by UploadPhoto.
	PhotoID *string
}

// recipe builds the wire recipe from the options. id and name come from
// the caller so update can preserve both.
func (o RecipeOptions) recipe(id, name string) service.Recipe {
	ingredients := make([]service.Ingredient, len(o.Ingredients))
	for i, in := range o.Ingredients {
		ingredients[i] = service.Ingredient{
			Name:     in.Name,
			Quantity: in.Quantity,
			Note:     in.Note,
		}
	}
	return service.Recipe{
		ID:               id,
		Name:             name,
		Ingredients:      ingredients,
		PreparationSteps: o.PreparationSteps,
		Note:             o.Note,
		SourceName:       o.SourceName,
		SourceURL:        o.SourceURL,
		Servings:         o.Servings,
		PrepTime:         o.PrepTime,
		CookTime:         o.CookTime,
		Rating:           o.Rating,
		NutritionalInfo:  o.NutritionalInfo,
		PhotoID:          o.PhotoID,
	}
}

// GetRecipes returns all recipes.
func (c *Client) GetRecipes(ctx context.Context) ([]service.Recipe, error) {
	recipes, err := c.svc.GetRecipes(ctx)
	if err != nil {
		return nil, wrapErr("get recipes", err)
	}
	return recipes, nil
}

// GetRecipeByID returns a single recipe by id.
func (c *Client) GetRecipeByID(ctx context.Context, recipeID string) (service.Recipe, error) {
	recipe, err := c.svc.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return service.Recipe{}, wrapErr("get recipe", err)
	}
	return recipe, nil
}

// GetRecipeByName returns the first recipe with the exact name.
func (c *Client) GetRecipeByName(ctx context.Context, name string) (service.Recipe, error) {
	recipe, err := c.svc.GetRecipeByName(ctx, name)
	if err != nil {
		return service.Recipe{}, wrapErr("get recipe", err)
	}
	return recipe, nil
}

// CreateRecipe creates a new recipe from the options. The service
// assigns the id.
func (c *Client) CreateRecipe(ctx context.Context, opts RecipeOptions) (service.Recipe, error) {
	recipe, err := c.svc.SaveRecipe(ctx, opts.recipe("", opts.Name))
	if err != nil {
		return service.Recipe{}, wrapErr("create recipe", err)
	}
	return recipe, nil
}

// UpdateRecipe rewrites an existing recipe from the options. The
// existing recipe is fetched first so its id and name are preserved;
// the name cannot be changed. Every other field is replaced by the
// options, and nil optionals clear the field.
func (c *Client) UpdateRecipe(ctx context.Context, recipeID string, opts RecipeOptions) (service.Recipe, error) {
	existing, err := c.svc.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return service.Recipe{}, wrapErr("update recipe", err)
	}
	recipe, err := c.svc.SaveRecipe(ctx, opts.recipe(existing.ID, existing.Name))
	if err != nil {
		return service.Recipe{}, wrapErr("update recipe", err)
	}
	return recipe, nil
}

// DeleteRecipe deletes a recipe.
func (c *Client) DeleteRecipe(ctx context.Context, recipeID string) error {
	return wrapErr("delete recipe", c.svc.DeleteRecipe(ctx, recipeID))
}

// AddRecipeToList expands the recipe's ingredients into items on the
// list. A non-nil scaleFactor multiplies quantities per service rules
// and is passed through unchanged.
func (c *Client) AddRecipeToList(ctx context.Context, recipeID, listID string, scaleFactor *float64) error {
	return wrapErr("add recipe to list", c.svc.AddRecipeToList(ctx, recipeID, listID, scaleFactor))
}

// UploadPhoto uploads photo bytes and returns a photo id usable as
// RecipeOptions.PhotoID. The filename extension drives the service's
// content-type inference.
func (c *Client) UploadPhoto(ctx context.Context, data []byte, filename string) (string, error) {
	photoID, err := c.svc.UploadPhoto(ctx, data, filename)
	if err != nil {
		return "", wrapErr("upload photo", err)
	}
	return photoID, nil
}
