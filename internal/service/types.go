// Package service defines the backend-agnostic interface for AnyList operations.
package service

// SavedTokens holds the credentials of an authenticated session.
// The four fields round-trip through any serialization that preserves
// them exactly; feeding them back via the client's FromTokens yields a
// functionally identical session.
type SavedTokens struct {
	AccessToken   string `json:"access_token"`
	RefreshToken  string `json:"refresh_token"`
	UserID        string `json:"user_id"`
	IsPremiumUser bool   `json:"is_premium_user"`
}

// List is a shopping list with its items embedded as a snapshot.
// Mutating a returned List locally has no effect on the service;
// re-read to observe changes.
type List struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Items []ListItem `json:"items"`
}

// ListItem is a single entry in a shopping list.
// The wire calls the free-text field "details"; it is exposed as Note here.
type ListItem struct {
	ID         string  `json:"id"`
	ListID     string  `json:"list_id"`
	Name       string  `json:"name"`
	Note       string  `json:"details"`
	IsChecked  bool    `json:"is_checked"`
	Quantity   *string `json:"quantity,omitempty"`
	Category   *string `json:"category,omitempty"`
	UserID     *string `json:"user_id,omitempty"`
	ProductUPC *string `json:"product_upc,omitempty"`
}

// Ingredient is one line of a recipe. It has no identity of its own.
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity *string `json:"quantity,omitempty"`
	Note     *string `json:"note,omitempty"`
}

// Recipe is a recipe with its ingredients and preparation steps embedded.
// PrepTime and CookTime are minutes; Rating is 1..5 when present.
type Recipe struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Ingredients      []Ingredient `json:"ingredients"`
	PreparationSteps []string     `json:"preparation_steps"`
	Note             *string      `json:"note,omitempty"`
	SourceName       *string      `json:"source_name,omitempty"`
	SourceURL        *string      `json:"source_url,omitempty"`
	Servings         *string      `json:"servings,omitempty"`
	PrepTime         *int         `json:"prep_time,omitempty"`
	CookTime         *int         `json:"cook_time,omitempty"`
	Rating           *int         `json:"rating,omitempty"`
	NutritionalInfo  *string      `json:"nutritional_info,omitempty"`
	PhotoID          *string      `json:"photo_id,omitempty"`
}

// Category organizes items within a list.
type Category struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Icon      *string `json:"icon,omitempty"`
	SortIndex int     `json:"sort_index"`
}

// CategoryGroup is a per-list grouping of categories.
type CategoryGroup struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Categories []Category `json:"categories"`
}

// Store is a shop associated with a list.
type Store struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SortIndex int    `json:"sort_index"`
}

// StoreFilter selects a subset of a list's stores by id.
type StoreFilter struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	StoreIDs []string `json:"store_ids"`
}

// FavouriteItem is a quick-add template entry in a favourites list.
// ListID is the id of the favourites list that owns it.
type FavouriteItem struct {
	ID       string  `json:"id"`
	ListID   string  `json:"list_id"`
	Name     string  `json:"name"`
	Quantity *string `json:"quantity,omitempty"`
	Details  *string `json:"details,omitempty"`
	Category *string `json:"category,omitempty"`
}

// FavouritesList is a named set of favourite items, optionally associated
// with a shopping list.
type FavouritesList struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Items          []FavouriteItem `json:"items"`
	ShoppingListID *string         `json:"shopping_list_id,omitempty"`
}

// MealPlanEvent is an entry in a meal-plan calendar.
// Date is an ISO-8601 YYYY-MM-DD string.
type MealPlanEvent struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	Title    *string `json:"title,omitempty"`
	RecipeID *string `json:"recipe_id,omitempty"`
	LabelID  *string `json:"label_id,omitempty"`
	Details  *string `json:"details,omitempty"`
}

// ICalendarInfo is the per-user iCalendar sync state.
// URL and Token are both present exactly when Enabled is true.
type ICalendarInfo struct {
	Enabled bool    `json:"enabled"`
	URL     *string `json:"url,omitempty"`
	Token   *string `json:"token,omitempty"`
}

// RecipeCollection is a membership list of recipes.
type RecipeCollection struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	RecipeIDs []string `json:"recipe_ids"`
}
