package state

import (
	"context"

	coreerrors "github.com/frontdash/partner-desktop/core/errors"
	"github.com/frontdash/partner-desktop/core/model"
	"github.com/frontdash/partner-desktop/core/validate"
)

// ErrNoMenuItem is returned when an item-level action lacks an item id.
var ErrNoMenuItem = coreerrors.New(coreerrors.ErrCodeInvalidArgument, "state: menu item not selected")

// Menu returns the menu slice snapshot.
func (s *Store) Menu() Snapshot[[]model.MenuItem] {
	return s.menu.Snapshot()
}

// Categories returns the categories slice snapshot.
func (s *Store) Categories() Snapshot[[]model.MenuCategory] {
	return s.categories.Snapshot()
}

// LoadMenu fetches the whole menu into its slice.
func (s *Store) LoadMenu(ctx context.Context) ([]model.MenuItem, error) {
	token, restaurantID, err := s.requireIdentity()
	if err != nil {
		return nil, err
	}
	s.menu.beginLoad()
	items, err := s.api.ListMenu(ctx, token, restaurantID)
	if err != nil {
		s.menu.settle(nil, err)
		return nil, err
	}
	s.menu.settle(items, nil)
	return items, nil
}

// AddMenuItem creates a dish and appends the server's copy to the list.
func (s *Store) AddMenuItem(ctx context.Context, item model.MenuItem) (model.MenuItem, error) {
	token, restaurantID, err := s.requireIdentity()
	if err != nil {
		return model.MenuItem{}, err
	}
	if err := validate.MenuItem(item); err != nil {
		return model.MenuItem{}, err
	}
	s.menu.beginSave()
	created, err := s.api.CreateMenuItem(ctx, token, restaurantID, item)
	if err != nil {
		s.menu.settle(nil, err)
		return model.MenuItem{}, err
	}
	current, _ := s.menu.Value()
	s.menu.settle(upsertItem(current, *created), nil)
	return *created, nil
}

// UpdateMenuItem replaces a dish and swaps the server's copy into the list.
func (s *Store) UpdateMenuItem(ctx context.Context, itemID string, item model.MenuItem) (model.MenuItem, error) {
	token, restaurantID, err := s.requireIdentity()
	if err != nil {
		return model.MenuItem{}, err
	}
	if itemID == "" {
		return model.MenuItem{}, ErrNoMenuItem
	}
	if err := validate.MenuItem(item); err != nil {
		return model.MenuItem{}, err
	}
	s.menu.beginSave()
	updated, err := s.api.UpdateMenuItem(ctx, token, restaurantID, itemID, item)
	if err != nil {
		s.menu.settle(nil, err)
		return model.MenuItem{}, err
	}
	current, _ := s.menu.Value()
	s.menu.settle(upsertItem(current, *updated), nil)
	return *updated, nil
}

// RemoveMenuItem deletes a dish and filters it out of the list.
func (s *Store) RemoveMenuItem(ctx context.Context, itemID string) error {
	token, restaurantID, err := s.requireIdentity()
	if err != nil {
		return err
	}
	if itemID == "" {
		return ErrNoMenuItem
	}
	s.menu.beginSave()
	if err := s.api.DeleteMenuItem(ctx, token, restaurantID, itemID); err != nil {
		s.menu.settle(nil, err)
		return err
	}
	current, _ := s.menu.Value()
	s.menu.settle(removeItem(current, itemID), nil)
	return nil
}

// ToggleAvailability flips a dish's availability. The flip is applied
// optimistically and rolled back if the server rejects it, so the list never
// ends in a state the backend did not confirm.
func (s *Store) ToggleAvailability(ctx context.Context, itemID string) error {
	token, restaurantID, err := s.requireIdentity()
	if err != nil {
		return err
	}
	if itemID == "" {
		return ErrNoMenuItem
	}
	current, ok := s.menu.Value()
	idx := indexOfItem(current, itemID)
	if !ok || idx < 0 {
		return ErrNoMenuItem
	}
	target := !current[idx].Available

	flipped := cloneItems(current)
	flipped[idx].Available = target
	s.menu.replace(flipped)

	s.menu.beginSave()
	if err := s.api.SetMenuItemAvailability(ctx, token, restaurantID, itemID, target); err != nil {
		// roll back the optimistic flip
		rolled := cloneItems(flipped)
		rolled[idx].Available = !target
		s.menu.replace(rolled)
		s.menu.settleKeep(err)
		return err
	}
	s.menu.settleKeep(nil)
	return nil
}

// LoadCategories fetches the menu categories.
func (s *Store) LoadCategories(ctx context.Context) ([]model.MenuCategory, error) {
	token, restaurantID, err := s.requireIdentity()
	if err != nil {
		return nil, err
	}
	s.categories.beginLoad()
	categories, err := s.api.ListCategories(ctx, token, restaurantID)
	if err != nil {
		s.categories.settle(nil, err)
		return nil, err
	}
	s.categories.settle(categories, nil)
	return categories, nil
}

// upsertItem replaces the entry with a matching id or appends.
func upsertItem(items []model.MenuItem, item model.MenuItem) []model.MenuItem {
	out := cloneItems(items)
	for i := range out {
		if out[i].ID == item.ID {
			out[i] = item
			return out
		}
	}
	return append(out, item)
}

func removeItem(items []model.MenuItem, itemID string) []model.MenuItem {
	out := make([]model.MenuItem, 0, len(items))
	for _, it := range items {
		if it.ID != itemID {
			out = append(out, it)
		}
	}
	return out
}

func indexOfItem(items []model.MenuItem, itemID string) int {
	for i := range items {
		if items[i].ID == itemID {
			return i
		}
	}
	return -1
}

func cloneItems(items []model.MenuItem) []model.MenuItem {
	out := make([]model.MenuItem, len(items))
	copy(out, items)
	return out
}
