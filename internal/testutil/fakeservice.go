// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"anylist/internal/service"
)

// ErrNotFound is returned when a resource is not found.
var ErrNotFound = errors.New("not found")

// FakeService is an in-memory implementation of service.Service for
// testing the client facade and the CLI commands.
type FakeService struct {
	mu sync.RWMutex

	tokens   service.SavedTokens
	clientID string

	lists       []service.List
	recipes     []service.Recipe
	favLists    []service.FavouritesList
	groups      map[string][]service.CategoryGroup // listID -> groups
	stores      map[string][]service.Store         // listID -> stores
	filters     map[string][]service.StoreFilter   // listID -> filters
	events      map[string][]service.MealPlanEvent // calendarID -> events
	collections []service.RecipeCollection
	ical        service.ICalendarInfo
	photos      map[string]string // photoID -> filename

	nextID int

	// Errs maps a Service method name (e.g. "GetLists") to an error
	// that method returns unconditionally. Used for error injection.
	Errs map[string]error
}

// NewFakeService creates a FakeService with a fixed session.
func NewFakeService() *FakeService {
	return &FakeService{
		tokens: service.SavedTokens{
			AccessToken:   "access-1",
			RefreshToken:  "refresh-1",
			UserID:        "user-1",
			IsPremiumUser: true,
		},
		clientID: "fake-client-1",
		groups:   make(map[string][]service.CategoryGroup),
		stores:   make(map[string][]service.Store),
		filters:  make(map[string][]service.StoreFilter),
		events:   make(map[string][]service.MealPlanEvent),
		photos:   make(map[string]string),
		Errs:     make(map[string]error),
	}
}

func (f *FakeService) failure(method string) error {
	return f.Errs[method]
}

// genID returns a fresh id with the given prefix. Caller must hold the
// write lock.
func (f *FakeService) genID(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s-%d", prefix, f.nextID)
}

// SetTokens replaces the session tokens, simulating a refresh.
func (f *FakeService) SetTokens(tokens service.SavedTokens) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens = tokens
}

// UserID implements service.Service.
func (f *FakeService) UserID() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.tokens.UserID
}

// IsPremiumUser implements service.Service.
func (f *FakeService) IsPremiumUser() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.tokens.IsPremiumUser
}

// ClientIdentifier implements service.Service.
func (f *FakeService) ClientIdentifier() string {
	return f.clientID
}

// ExportTokens implements service.Service.
func (f *FakeService) ExportTokens() service.SavedTokens {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.tokens
}

// findList returns a pointer into f.lists. Caller must hold the lock.
func (f *FakeService) findList(listID string) (*service.List, error) {
	for i := range f.lists {
		if f.lists[i].ID == listID {
			return &f.lists[i], nil
		}
	}
	return nil, ErrNotFound
}

func copyList(l service.List) service.List {
	out := l
	out.Items = make([]service.ListItem, len(l.Items))
	copy(out.Items, l.Items)
	return out
}

// GetLists implements service.Service.
func (f *FakeService) GetLists(ctx context.Context) ([]service.List, error) {
	if err := f.failure("GetLists"); err != nil {
		return nil, err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.List, len(f.lists))
	for i, l := range f.lists {
		result[i] = copyList(l)
	}
	return result, nil
}

// GetListByID implements service.Service.
func (f *FakeService) GetListByID(ctx context.Context, listID string) (service.List, error) {
	if err := f.failure("GetListByID"); err != nil {
		return service.List{}, err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	list, err := f.findList(listID)
	if err != nil {
		return service.List{}, err
	}
	return copyList(*list), nil
}

// GetListByName implements service.Service. Exact, case-sensitive.
func (f *FakeService) GetListByName(ctx context.Context, name string) (service.List, error) {
	if err := f.failure("GetListByName"); err != nil {
		return service.List{}, err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, l := range f.lists {
		if l.Name == name {
			return copyList(l), nil
		}
	}
	return service.List{}, fmt.Errorf("list not found: %s", name)
}

// CreateList implements service.Service.
func (f *FakeService) CreateList(ctx context.Context, name string) (service.List, error) {
	if err := f.failure("CreateList"); err != nil {
		return service.List{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	list := service.List{ID: f.genID("list"), Name: name, Items: []service.ListItem{}}
	f.lists = append(f.lists, list)
	return copyList(list), nil
}

// RenameList implements service.Service.
func (f *FakeService) RenameList(ctx context.Context, listID, newName string) error {
	if err := f.failure("RenameList"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	list, err := f.findList(listID)
	if err != nil {
		return err
	}
	list.Name = newName
	return nil
}

// DeleteList implements service.Service.
func (f *FakeService) DeleteList(ctx context.Context, listID string) error {
	if err := f.failure("DeleteList"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, l := range f.lists {
		if l.ID == listID {
			f.lists = append(f.lists[:i], f.lists[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// AddItem implements service.Service.
func (f *FakeService) AddItem(ctx context.Context, listID, name string) (service.ListItem, error) {
	if err := f.failure("AddItem"); err != nil {
		return service.ListItem{}, err
	}
	return f.addItem(listID, name, nil, nil, nil)
}

// AddItemWithDetails implements service.Service.
func (f *FakeService) AddItemWithDetails(ctx context.Context, listID, name string, quantity, note, category *string) (service.ListItem, error) {
	if err := f.failure("AddItemWithDetails"); err != nil {
		return service.ListItem{}, err
	}
	return f.addItem(listID, name, quantity, note, category)
}

func (f *FakeService) addItem(listID, name string, quantity, note, category *string) (service.ListItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list, err := f.findList(listID)
	if err != nil {
		return service.ListItem{}, err
	}
	item := service.ListItem{
		ID:       f.genID("item"),
		ListID:   listID,
		Name:     name,
		Quantity: quantity,
		Category: category,
	}
	if note != nil {
		item.Note = *note
	}
	list.Items = append(list.Items, item)
	return item, nil
}

// UpdateItem implements service.Service.
func (f *FakeService) UpdateItem(ctx context.Context, listID, itemID, name string, quantity, note, category *string) error {
	if err := f.failure("UpdateItem"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	list, err := f.findList(listID)
	if err != nil {
		return err
	}
	for i := range list.Items {
		if list.Items[i].ID == itemID {
			list.Items[i].Name = name
			list.Items[i].Quantity = quantity
			list.Items[i].Category = category
			list.Items[i].Note = ""
			if note != nil {
				list.Items[i].Note = *note
			}
			return nil
		}
	}
	return ErrNotFound
}

// DeleteItem implements service.Service.
func (f *FakeService) DeleteItem(ctx context.Context, listID, itemID string) error {
	if err := f.failure("DeleteItem"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.deleteItem(listID, itemID)
}

func (f *FakeService) deleteItem(listID, itemID string) error {
	list, err := f.findList(listID)
	if err != nil {
		return err
	}
	for i := range list.Items {
		if list.Items[i].ID == itemID {
			list.Items = append(list.Items[:i], list.Items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// BulkDeleteItems implements service.Service. The first failure is
// reported.
func (f *FakeService) BulkDeleteItems(ctx context.Context, listID string, itemIDs []string) error {
	if err := f.failure("BulkDeleteItems"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, itemID := range itemIDs {
		if err := f.deleteItem(listID, itemID); err != nil {
			return err
		}
	}
	return nil
}

// SetItemChecked implements service.Service. Idempotent.
func (f *FakeService) SetItemChecked(ctx context.Context, listID, itemID string, checked bool) error {
	if err := f.failure("SetItemChecked"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	list, err := f.findList(listID)
	if err != nil {
		return err
	}
	for i := range list.Items {
		if list.Items[i].ID == itemID {
			list.Items[i].IsChecked = checked
			return nil
		}
	}
	return ErrNotFound
}

// DeleteAllCrossedOffItems implements service.Service.
func (f *FakeService) DeleteAllCrossedOffItems(ctx context.Context, listID string) error {
	if err := f.failure("DeleteAllCrossedOffItems"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	list, err := f.findList(listID)
	if err != nil {
		return err
	}
	kept := list.Items[:0]
	for _, item := range list.Items {
		if !item.IsChecked {
			kept = append(kept, item)
		}
	}
	list.Items = kept
	return nil
}

// GetRecipes implements service.Service.
func (f *FakeService) GetRecipes(ctx context.Context) ([]service.Recipe, error) {
	if err := f.failure("GetRecipes"); err != nil {
		return nil, err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.Recipe, len(f.recipes))
	copy(result, f.recipes)
	return result, nil
}

// GetRecipeByID implements service.Service.
func (f *FakeService) GetRecipeByID(ctx context.Context, recipeID string) (service.Recipe, error) {
	if err := f.failure("GetRecipeByID"); err != nil {
		return service.Recipe{}, err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, r := range f.recipes {
		if r.ID == recipeID {
			return r, nil
		}
	}
	return service.Recipe{}, ErrNotFound
}

// GetRecipeByName implements service.Service. Exact, case-sensitive.
func (f *FakeService) GetRecipeByName(ctx context.Context, name string) (service.Recipe, error) {
	if err := f.failure("GetRecipeByName"); err != nil {
		return service.Recipe{}, err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, r := range f.recipes {
		if r.Name == name {
			return r, nil
		}
	}
	return service.Recipe{}, fmt.Errorf("recipe not found: %s", name)
}

// SaveRecipe implements service.Service.
func (f *FakeService) SaveRecipe(ctx context.Context, recipe service.Recipe) (service.Recipe, error) {
	if err := f.failure("SaveRecipe"); err != nil {
		return service.Recipe{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if recipe.ID == "" {
		recipe.ID = f.genID("recipe")
		f.recipes = append(f.recipes, recipe)
		return recipe, nil
	}
	for i := range f.recipes {
		if f.recipes[i].ID == recipe.ID {
			f.recipes[i] = recipe
			return recipe, nil
		}
	}
	return service.Recipe{}, ErrNotFound
}

// DeleteRecipe implements service.Service.
func (f *FakeService) DeleteRecipe(ctx context.Context, recipeID string) error {
	if err := f.failure("DeleteRecipe"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.recipes {
		if r.ID == recipeID {
			f.recipes = append(f.recipes[:i], f.recipes[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// AddRecipeToList implements service.Service. Quantities with a
// leading number are scaled; others pass through unchanged.
func (f *FakeService) AddRecipeToList(ctx context.Context, recipeID, listID string, scaleFactor *float64) error {
	if err := f.failure("AddRecipeToList"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var recipe *service.Recipe
	for i := range f.recipes {
		if f.recipes[i].ID == recipeID {
			recipe = &f.recipes[i]
			break
		}
	}
	if recipe == nil {
		return ErrNotFound
	}
	list, err := f.findList(listID)
	if err != nil {
		return err
	}
	for _, ing := range recipe.Ingredients {
		quantity := ing.Quantity
		if scaleFactor != nil {
			quantity = scaleQuantity(ing.Quantity, *scaleFactor)
		}
		item := service.ListItem{
			ID:       f.genID("item"),
			ListID:   listID,
			Name:     ing.Name,
			Quantity: quantity,
		}
		if ing.Note != nil {
			item.Note = *ing.Note
		}
		list.Items = append(list.Items, item)
	}
	return nil
}

// scaleQuantity multiplies a leading number in the quantity string,
// e.g. "2 cups" scaled by 2 becomes "4 cups". Quantities without a
// leading number are returned unchanged.
func scaleQuantity(quantity *string, factor float64) *string {
	if quantity == nil {
		return nil
	}
	fields := strings.SplitN(*quantity, " ", 2)
	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return quantity
	}
	scaled := strconv.FormatFloat(value*factor, 'f', -1, 64)
	if len(fields) == 2 {
		scaled += " " + fields[1]
	}
	return &scaled
}

// UploadPhoto implements service.Service.
func (f *FakeService) UploadPhoto(ctx context.Context, data []byte, filename string) (string, error) {
	if err := f.failure("UploadPhoto"); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", errors.New("empty photo")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	photoID := f.genID("photo")
	f.photos[photoID] = filename
	return photoID, nil
}

// CreateCategory implements service.Service. The group is created on
// first use.
func (f *FakeService) CreateCategory(ctx context.Context, listID, categoryGroupID, name string) (service.Category, error) {
	if err := f.failure("CreateCategory"); err != nil {
		return service.Category{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, err := f.findList(listID); err != nil {
		return service.Category{}, err
	}
	groups := f.groups[listID]
	var group *service.CategoryGroup
	for i := range groups {
		if groups[i].ID == categoryGroupID {
			group = &groups[i]
			break
		}
	}
	if group == nil {
		f.groups[listID] = append(groups, service.CategoryGroup{ID: categoryGroupID, Name: "Categories"})
		group = &f.groups[listID][len(f.groups[listID])-1]
	}
	category := service.Category{
		ID:        f.genID("category"),
		Name:      name,
		SortIndex: len(group.Categories),
	}
	group.Categories = append(group.Categories, category)
	return category, nil
}

// RenameCategory implements service.Service.
func (f *FakeService) RenameCategory(ctx context.Context, listID, categoryGroupID, categoryID, newName string) error {
	if err := f.failure("RenameCategory"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.groups[listID] {
		group := &f.groups[listID][i]
		if group.ID != categoryGroupID {
			continue
		}
		for j := range group.Categories {
			if group.Categories[j].ID == categoryID {
				group.Categories[j].Name = newName
				return nil
			}
		}
	}
	return ErrNotFound
}

// DeleteCategory implements service.Service.
func (f *FakeService) DeleteCategory(ctx context.Context, listID, categoryID string) error {
	if err := f.failure("DeleteCategory"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.groups[listID] {
		group := &f.groups[listID][i]
		for j := range group.Categories {
			if group.Categories[j].ID == categoryID {
				group.Categories = append(group.Categories[:j], group.Categories[j+1:]...)
				return nil
			}
		}
	}
	return ErrNotFound
}

// GetStoresForList implements service.Service.
func (f *FakeService) GetStoresForList(ctx context.Context, listID string) ([]service.Store, error) {
	if err := f.failure("GetStoresForList"); err != nil {
		return nil, err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.Store, len(f.stores[listID]))
	copy(result, f.stores[listID])
	return result, nil
}

// CreateStore implements service.Service.
func (f *FakeService) CreateStore(ctx context.Context, listID, name string) (service.Store, error) {
	if err := f.failure("CreateStore"); err != nil {
		return service.Store{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, err := f.findList(listID); err != nil {
		return service.Store{}, err
	}
	store := service.Store{
		ID:        f.genID("store"),
		Name:      name,
		SortIndex: len(f.stores[listID]),
	}
	f.stores[listID] = append(f.stores[listID], store)
	return store, nil
}

// UpdateStore implements service.Service.
func (f *FakeService) UpdateStore(ctx context.Context, listID, storeID, newName string) error {
	if err := f.failure("UpdateStore"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.stores[listID] {
		if f.stores[listID][i].ID == storeID {
			f.stores[listID][i].Name = newName
			return nil
		}
	}
	return ErrNotFound
}

// DeleteStore implements service.Service. Filters referencing the
// store drop its id, keeping the subset invariant.
func (f *FakeService) DeleteStore(ctx context.Context, listID, storeID string) error {
	if err := f.failure("DeleteStore"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.stores[listID] {
		if f.stores[listID][i].ID == storeID {
			f.stores[listID] = append(f.stores[listID][:i], f.stores[listID][i+1:]...)
			for j := range f.filters[listID] {
				filter := &f.filters[listID][j]
				for k := range filter.StoreIDs {
					if filter.StoreIDs[k] == storeID {
						filter.StoreIDs = append(filter.StoreIDs[:k], filter.StoreIDs[k+1:]...)
						break
					}
				}
			}
			return nil
		}
	}
	return ErrNotFound
}

// GetStoreFiltersForList implements service.Service.
func (f *FakeService) GetStoreFiltersForList(ctx context.Context, listID string) ([]service.StoreFilter, error) {
	if err := f.failure("GetStoreFiltersForList"); err != nil {
		return nil, err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.StoreFilter, len(f.filters[listID]))
	copy(result, f.filters[listID])
	return result, nil
}

// AddStoreFilter seeds a store filter for a list.
func (f *FakeService) AddStoreFilter(listID, name string, storeIDs []string) service.StoreFilter {
	f.mu.Lock()
	defer f.mu.Unlock()
	filter := service.StoreFilter{
		ID:       f.genID("filter"),
		Name:     name,
		StoreIDs: storeIDs,
	}
	f.filters[listID] = append(f.filters[listID], filter)
	return filter
}

// AddFavouritesList seeds a favourites list, optionally associated
// with a shopping list.
func (f *FakeService) AddFavouritesList(name string, shoppingListID *string) service.FavouritesList {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := service.FavouritesList{
		ID:             f.genID("favlist"),
		Name:           name,
		Items:          []service.FavouriteItem{},
		ShoppingListID: shoppingListID,
	}
	f.favLists = append(f.favLists, list)
	return list
}

// GetFavourites implements service.Service.
func (f *FakeService) GetFavourites(ctx context.Context) ([]service.FavouriteItem, error) {
	if err := f.failure("GetFavourites"); err != nil {
		return nil, err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	var result []service.FavouriteItem
	for _, l := range f.favLists {
		result = append(result, l.Items...)
	}
	return result, nil
}

// GetFavouritesLists implements service.Service.
func (f *FakeService) GetFavouritesLists(ctx context.Context) ([]service.FavouritesList, error) {
	if err := f.failure("GetFavouritesLists"); err != nil {
		return nil, err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.FavouritesList, len(f.favLists))
	copy(result, f.favLists)
	return result, nil
}

// GetFavouritesForList implements service.Service. Matches either the
// favourites list's own id or its associated shopping list id.
func (f *FakeService) GetFavouritesForList(ctx context.Context, shoppingListID string) (service.FavouritesList, error) {
	if err := f.failure("GetFavouritesForList"); err != nil {
		return service.FavouritesList{}, err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, l := range f.favLists {
		if l.ID == shoppingListID {
			return l, nil
		}
		if l.ShoppingListID != nil && *l.ShoppingListID == shoppingListID {
			return l, nil
		}
	}
	return service.FavouritesList{}, ErrNotFound
}

// AddFavourite implements service.Service. The default favourites
// list is created on first use.
func (f *FakeService) AddFavourite(ctx context.Context, name string, category *string) (service.FavouriteItem, error) {
	if err := f.failure("AddFavourite"); err != nil {
		return service.FavouriteItem{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.favLists) == 0 {
		f.favLists = append(f.favLists, service.FavouritesList{
			ID:   f.genID("favlist"),
			Name: "Favorites",
		})
	}
	return f.addFavourite(&f.favLists[0], name, category), nil
}

// AddFavouriteToList implements service.Service.
func (f *FakeService) AddFavouriteToList(ctx context.Context, listID, name string, category *string) (service.FavouriteItem, error) {
	if err := f.failure("AddFavouriteToList"); err != nil {
		return service.FavouriteItem{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.favLists {
		if f.favLists[i].ID == listID {
			return f.addFavourite(&f.favLists[i], name, category), nil
		}
	}
	return service.FavouriteItem{}, ErrNotFound
}

func (f *FakeService) addFavourite(list *service.FavouritesList, name string, category *string) service.FavouriteItem {
	item := service.FavouriteItem{
		ID:       f.genID("fav"),
		ListID:   list.ID,
		Name:     name,
		Category: category,
	}
	list.Items = append(list.Items, item)
	return item
}

// RemoveFavourite implements service.Service.
func (f *FakeService) RemoveFavourite(ctx context.Context, listID, itemID string) error {
	if err := f.failure("RemoveFavourite"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.favLists {
		if f.favLists[i].ID != listID {
			continue
		}
		items := f.favLists[i].Items
		for j := range items {
			if items[j].ID == itemID {
				f.favLists[i].Items = append(items[:j], items[j+1:]...)
				return nil
			}
		}
	}
	return ErrNotFound
}

// AddFavouriteToShoppingList implements service.Service.
func (f *FakeService) AddFavouriteToShoppingList(ctx context.Context, favourite service.FavouriteItem, shoppingListID string) (service.ListItem, error) {
	if err := f.failure("AddFavouriteToShoppingList"); err != nil {
		return service.ListItem{}, err
	}
	return f.addItem(shoppingListID, favourite.Name, favourite.Quantity, favourite.Details, favourite.Category)
}

// GetMealPlanEvents implements service.Service. ISO dates compare
// lexically, so the inclusive range check is a string compare.
func (f *FakeService) GetMealPlanEvents(ctx context.Context, startDate, endDate string) ([]service.MealPlanEvent, error) {
	if err := f.failure("GetMealPlanEvents"); err != nil {
		return nil, err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	var result []service.MealPlanEvent
	for _, events := range f.events {
		for _, ev := range events {
			if ev.Date >= startDate && ev.Date <= endDate {
				result = append(result, ev)
			}
		}
	}
	return result, nil
}

// CreateMealPlanEvent implements service.Service. The service rule
// that at least one of recipeID or title is present is enforced here.
func (f *FakeService) CreateMealPlanEvent(ctx context.Context, calendarID, date string, recipeID, title, labelID *string) (service.MealPlanEvent, error) {
	if err := f.failure("CreateMealPlanEvent"); err != nil {
		return service.MealPlanEvent{}, err
	}
	if recipeID == nil && title == nil {
		return service.MealPlanEvent{}, errors.New("event requires a recipe or a title")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	event := service.MealPlanEvent{
		ID:       f.genID("event"),
		Date:     date,
		Title:    title,
		RecipeID: recipeID,
		LabelID:  labelID,
	}
	f.events[calendarID] = append(f.events[calendarID], event)
	return event, nil
}

// UpdateMealPlanEvent implements service.Service.
func (f *FakeService) UpdateMealPlanEvent(ctx context.Context, calendarID, eventID, date string, recipeID, title, labelID *string) error {
	if err := f.failure("UpdateMealPlanEvent"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	events := f.events[calendarID]
	for i := range events {
		if events[i].ID == eventID {
			events[i].Date = date
			events[i].RecipeID = recipeID
			events[i].Title = title
			events[i].LabelID = labelID
			return nil
		}
	}
	return ErrNotFound
}

// DeleteMealPlanEvent implements service.Service.
func (f *FakeService) DeleteMealPlanEvent(ctx context.Context, calendarID, eventID string) error {
	if err := f.failure("DeleteMealPlanEvent"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	events := f.events[calendarID]
	for i := range events {
		if events[i].ID == eventID {
			f.events[calendarID] = append(events[:i], events[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// EnableICalendar implements service.Service.
func (f *FakeService) EnableICalendar(ctx context.Context) (service.ICalendarInfo, error) {
	if err := f.failure("EnableICalendar"); err != nil {
		return service.ICalendarInfo{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	url := "https://www.anylist.com/icalendar/" + f.tokens.UserID
	token := f.genID("ical")
	f.ical = service.ICalendarInfo{Enabled: true, URL: &url, Token: &token}
	return f.ical, nil
}

// DisableICalendar implements service.Service.
func (f *FakeService) DisableICalendar(ctx context.Context) error {
	if err := f.failure("DisableICalendar"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ical = service.ICalendarInfo{}
	return nil
}

// GetICalendar implements service.Service.
func (f *FakeService) GetICalendar(ctx context.Context) (service.ICalendarInfo, error) {
	if err := f.failure("GetICalendar"); err != nil {
		return service.ICalendarInfo{}, err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.ical, nil
}

// GetRecipeCollections implements service.Service.
func (f *FakeService) GetRecipeCollections(ctx context.Context) ([]service.RecipeCollection, error) {
	if err := f.failure("GetRecipeCollections"); err != nil {
		return nil, err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.RecipeCollection, len(f.collections))
	copy(result, f.collections)
	return result, nil
}

// CreateRecipeCollection implements service.Service.
func (f *FakeService) CreateRecipeCollection(ctx context.Context, name string) (service.RecipeCollection, error) {
	if err := f.failure("CreateRecipeCollection"); err != nil {
		return service.RecipeCollection{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	collection := service.RecipeCollection{
		ID:        f.genID("collection"),
		Name:      name,
		RecipeIDs: []string{},
	}
	f.collections = append(f.collections, collection)
	return collection, nil
}

// DeleteRecipeCollection implements service.Service.
func (f *FakeService) DeleteRecipeCollection(ctx context.Context, collectionID string) error {
	if err := f.failure("DeleteRecipeCollection"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, c := range f.collections {
		if c.ID == collectionID {
			f.collections = append(f.collections[:i], f.collections[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// AddRecipeToCollection implements service.Service.
func (f *FakeService) AddRecipeToCollection(ctx context.Context, collectionID, recipeID string) error {
	if err := f.failure("AddRecipeToCollection"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.collections {
		if f.collections[i].ID == collectionID {
			f.collections[i].RecipeIDs = append(f.collections[i].RecipeIDs, recipeID)
			return nil
		}
	}
	return ErrNotFound
}

// RemoveRecipeFromCollection implements service.Service.
func (f *FakeService) RemoveRecipeFromCollection(ctx context.Context, collectionID, recipeID string) error {
	if err := f.failure("RemoveRecipeFromCollection"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.collections {
		if f.collections[i].ID != collectionID {
			continue
		}
		ids := f.collections[i].RecipeIDs
		for j, id := range ids {
			if id == recipeID {
				f.collections[i].RecipeIDs = append(ids[:j], ids[j+1:]...)
				return nil
			}
		}
	}
	return ErrNotFound
}
