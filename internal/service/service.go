// Package service defines the backend-agnostic interface for AnyList operations.
package service

import "context"

// Service defines the interface for AnyList backend operations.
// All wire traffic goes through this interface; the client facade and
// the CLI commands never talk to the network directly.
//
// Implementations must be safe for concurrent use: multiple operations
// may be in flight on the same Service at once, sharing one session.
type Service interface {
	// UserID returns the authenticated user id. Local, no I/O.
	UserID() string

	// IsPremiumUser reports whether the account has a premium
	// subscription. Local, no I/O.
	IsPremiumUser() bool

	// ClientIdentifier returns the stable per-session client id.
	ClientIdentifier() string

	// ExportTokens returns a snapshot of the session credentials,
	// reflecting any token refresh that has occurred.
	ExportTokens() SavedTokens

	// GetLists returns every list visible to the user, items embedded.
	GetLists(ctx context.Context) ([]List, error)

	// GetListByID returns a single list with its items.
	GetListByID(ctx context.Context, listID string) (List, error)

	// GetListByName returns the first list whose name matches exactly
	// (case-sensitive).
	GetListByName(ctx context.Context, name string) (List, error)

	// CreateList creates a new empty list and returns it.
	CreateList(ctx context.Context, name string) (List, error)

	// RenameList changes a list's name.
	RenameList(ctx context.Context, listID, newName string) error

	// DeleteList deletes a list. Deleting an unknown list fails.
	DeleteList(ctx context.Context, listID string) error

	// AddItem adds a bare item to a list and returns it.
	AddItem(ctx context.Context, listID, name string) (ListItem, error)

	// AddItemWithDetails adds an item with optional quantity, note and
	// category. Nil means absent, not empty.
	AddItemWithDetails(ctx context.Context, listID, name string, quantity, note, category *string) (ListItem, error)

	// UpdateItem replaces the four mutable fields of an item.
	// A nil optional clears the field.
	UpdateItem(ctx context.Context, listID, itemID, name string, quantity, note, category *string) error

	// DeleteItem removes a single item.
	DeleteItem(ctx context.Context, listID, itemID string) error

	// BulkDeleteItems removes several items in one call; the first
	// failure is reported.
	BulkDeleteItems(ctx context.Context, listID string, itemIDs []string) error

	// SetItemChecked marks an item crossed off or unchecked.
	// Idempotent.
	SetItemChecked(ctx context.Context, listID, itemID string, checked bool) error

	// DeleteAllCrossedOffItems removes every item that is checked
	// server-side at invocation time.
	DeleteAllCrossedOffItems(ctx context.Context, listID string) error

	// GetRecipes returns every recipe.
	GetRecipes(ctx context.Context) ([]Recipe, error)

	// GetRecipeByID returns a single recipe.
	GetRecipeByID(ctx context.Context, recipeID string) (Recipe, error)

	// GetRecipeByName returns the first recipe whose name matches
	// exactly (case-sensitive).
	GetRecipeByName(ctx context.Context, name string) (Recipe, error)

	// SaveRecipe writes a recipe. An empty ID creates a new recipe and
	// the service assigns one; a non-empty ID fully replaces the
	// existing recipe. Returns the stored recipe.
	SaveRecipe(ctx context.Context, recipe Recipe) (Recipe, error)

	// DeleteRecipe deletes a recipe.
	DeleteRecipe(ctx context.Context, recipeID string) error

	// AddRecipeToList expands a recipe's ingredients into list items.
	// scaleFactor, when non-nil, multiplies quantities per service
	// rules; it is passed through unchanged.
	AddRecipeToList(ctx context.Context, recipeID, listID string, scaleFactor *float64) error

	// UploadPhoto uploads photo bytes and returns a photo id usable in
	// a recipe. The filename extension drives content-type inference.
	UploadPhoto(ctx context.Context, data []byte, filename string) (string, error)

	// CreateCategory adds a category to a category group on a list.
	CreateCategory(ctx context.Context, listID, categoryGroupID, name string) (Category, error)

	// RenameCategory changes a category's name.
	RenameCategory(ctx context.Context, listID, categoryGroupID, categoryID, newName string) error

	// DeleteCategory removes a category from a list.
	DeleteCategory(ctx context.Context, listID, categoryID string) error

	// GetStoresForList returns the stores defined on a list.
	GetStoresForList(ctx context.Context, listID string) ([]Store, error)

	// CreateStore adds a store to a list and returns it.
	CreateStore(ctx context.Context, listID, name string) (Store, error)

	// UpdateStore changes a store's name.
	UpdateStore(ctx context.Context, listID, storeID, newName string) error

	// DeleteStore removes a store from a list.
	DeleteStore(ctx context.Context, listID, storeID string) error

	// GetStoreFiltersForList returns the store filters on a list.
	GetStoreFiltersForList(ctx context.Context, listID string) ([]StoreFilter, error)

	// GetFavourites returns every favourite item across all
	// favourites lists.
	GetFavourites(ctx context.Context) ([]FavouriteItem, error)

	// GetFavouritesLists returns all favourites (starter) lists.
	GetFavouritesLists(ctx context.Context) ([]FavouritesList, error)

	// GetFavouritesForList returns the favourites list associated with
	// a shopping list.
	GetFavouritesForList(ctx context.Context, shoppingListID string) (FavouritesList, error)

	// AddFavourite adds a favourite item to the default favourites
	// list.
	AddFavourite(ctx context.Context, name string, category *string) (FavouriteItem, error)

	// AddFavouriteToList adds a favourite item to a specific
	// favourites list.
	AddFavouriteToList(ctx context.Context, listID, name string, category *string) (FavouriteItem, error)

	// RemoveFavourite removes a favourite item from a favourites list.
	RemoveFavourite(ctx context.Context, listID, itemID string) error

	// AddFavouriteToShoppingList promotes a favourite item to a
	// shopping list and returns the created list item.
	AddFavouriteToShoppingList(ctx context.Context, favourite FavouriteItem, shoppingListID string) (ListItem, error)

	// GetMealPlanEvents returns the events in the inclusive date range.
	// Dates are ISO-8601 YYYY-MM-DD strings.
	GetMealPlanEvents(ctx context.Context, startDate, endDate string) ([]MealPlanEvent, error)

	// CreateMealPlanEvent creates an event in a calendar. The service
	// requires at least one of recipeID or title.
	CreateMealPlanEvent(ctx context.Context, calendarID, date string, recipeID, title, labelID *string) (MealPlanEvent, error)

	// UpdateMealPlanEvent rewrites an event.
	UpdateMealPlanEvent(ctx context.Context, calendarID, eventID, date string, recipeID, title, labelID *string) error

	// DeleteMealPlanEvent deletes an event from a calendar.
	DeleteMealPlanEvent(ctx context.Context, calendarID, eventID string) error

	// EnableICalendar turns on iCalendar sync and returns the feed
	// info, which carries a url and token.
	EnableICalendar(ctx context.Context) (ICalendarInfo, error)

	// DisableICalendar turns off iCalendar sync.
	DisableICalendar(ctx context.Context) error

	// GetICalendar returns the current iCalendar sync state.
	GetICalendar(ctx context.Context) (ICalendarInfo, error)

	// GetRecipeCollections returns all recipe collections.
	GetRecipeCollections(ctx context.Context) ([]RecipeCollection, error)

	// CreateRecipeCollection creates an empty collection.
	CreateRecipeCollection(ctx context.Context, name string) (RecipeCollection, error)

	// DeleteRecipeCollection deletes a collection.
	DeleteRecipeCollection(ctx context.Context, collectionID string) error

	// AddRecipeToCollection adds a recipe id to a collection.
	AddRecipeToCollection(ctx context.Context, collectionID, recipeID string) error

	// RemoveRecipeFromCollection removes a recipe id from a
	// collection.
	RemoveRecipeFromCollection(ctx context.Context, collectionID, recipeID string) error
}
