package frontdash

import (
	"context"
	"fmt"
	"net/http"

	"github.com/frontdash/partner-desktop/core/model"
)

type menuItemWire struct {
	MenuItemID  FlexString `json:"menuItemId"`
	ItemName    string     `json:"itemName"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Category    string     `json:"category"`
	ImageURL    string     `json:"imageUrl"`
	Available   bool       `json:"availability"`
}

func (w menuItemWire) toModel() model.MenuItem {
	return model.MenuItem{
		ID:          w.MenuItemID.String(),
		Name:        w.ItemName,
		Description: w.Description,
		Price:       w.Price,
		Category:    w.Category,
		ImageURL:    w.ImageURL,
		Available:   w.Available,
	}
}

type menuItemPayload struct {
	ItemName    string  `json:"itemName"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Available   bool    `json:"availability"`
}

func menuItemToPayload(item model.MenuItem) menuItemPayload {
	return menuItemPayload{
		ItemName:    item.Name,
		Description: item.Description,
		Price:       item.Price,
		Category:    item.Category,
		ImageURL:    item.ImageURL,
		Available:   item.Available,
	}
}

type categoryWire struct {
	CategoryID FlexString `json:"categoryId"`
	Name       string     `json:"categoryName"`
	SortOrder  int        `json:"sortOrder"`
}

// ListMenu fetches the full menu.
func (c *Client) ListMenu(ctx context.Context, token, restaurantID string) ([]model.MenuItem, error) {
	path := fmt.Sprintf("/restaurant/%s/menu", restaurantID)
	req, err := jsonRequest(ctx, http.MethodGet, c.baseURL, path, token, nil)
	if err != nil {
		return nil, err
	}
	var wire []menuItemWire
	if err := c.http.Do(req, &wire); err != nil {
		return nil, wrapErr("failed to load menu", err)
	}
	items := make([]model.MenuItem, 0, len(wire))
	for _, w := range wire {
		items = append(items, w.toModel())
	}
	return items, nil
}

// CreateMenuItem adds a dish; the server assigns the id.
func (c *Client) CreateMenuItem(ctx context.Context, token, restaurantID string, item model.MenuItem) (*model.MenuItem, error) {
	path := fmt.Sprintf("/restaurant/%s/menu", restaurantID)
	req, err := jsonRequest(ctx, http.MethodPost, c.baseURL, path, token, menuItemToPayload(item))
	if err != nil {
		return nil, err
	}
	var wire menuItemWire
	if err := c.http.Do(req, &wire); err != nil {
		return nil, wrapErr("failed to create menu item", err)
	}
	created := wire.toModel()
	return &created, nil
}

// UpdateMenuItem replaces a dish.
func (c *Client) UpdateMenuItem(ctx context.Context, token, restaurantID, itemID string, item model.MenuItem) (*model.MenuItem, error) {
	path := fmt.Sprintf("/restaurant/%s/menu/%s", restaurantID, itemID)
	req, err := jsonRequest(ctx, http.MethodPut, c.baseURL, path, token, menuItemToPayload(item))
	if err != nil {
		return nil, err
	}
	var wire menuItemWire
	if err := c.http.Do(req, &wire); err != nil {
		return nil, wrapErr("failed to update menu item", err)
	}
	updated := wire.toModel()
	if updated.ID == "" {
		updated.ID = itemID
	}
	return &updated, nil
}

// DeleteMenuItem removes a dish.
func (c *Client) DeleteMenuItem(ctx context.Context, token, restaurantID, itemID string) error {
	path := fmt.Sprintf("/restaurant/%s/menu/%s", restaurantID, itemID)
	req, err := jsonRequest(ctx, http.MethodDelete, c.baseURL, path, token, nil)
	if err != nil {
		return err
	}
	if err := c.http.Do(req, nil); err != nil {
		return wrapErr("failed to delete menu item", err)
	}
	return nil
}

// SetMenuItemAvailability flips the availability flag server-side.
func (c *Client) SetMenuItemAvailability(ctx context.Context, token, restaurantID, itemID string, available bool) error {
	payload := map[string]bool{"availability": available}
	path := fmt.Sprintf("/restaurant/%s/menu/%s/availability", restaurantID, itemID)
	req, err := jsonRequest(ctx, http.MethodPatch, c.baseURL, path, token, payload)
	if err != nil {
		return err
	}
	if err := c.http.Do(req, nil); err != nil {
		return wrapErr("failed to update availability", err)
	}
	return nil
}

// ListCategories fetches the menu categories.
func (c *Client) ListCategories(ctx context.Context, token, restaurantID string) ([]model.MenuCategory, error) {
	path := fmt.Sprintf("/restaurant/%s/menu/categories", restaurantID)
	req, err := jsonRequest(ctx, http.MethodGet, c.baseURL, path, token, nil)
	if err != nil {
		return nil, err
	}
	var wire []categoryWire
	if err := c.http.Do(req, &wire); err != nil {
		return nil, wrapErr("failed to load categories", err)
	}
	categories := make([]model.MenuCategory, 0, len(wire))
	for _, w := range wire {
		categories = append(categories, model.MenuCategory{
			ID:        w.CategoryID.String(),
			Name:      w.Name,
			SortOrder: w.SortOrder,
		})
	}
	return categories, nil
}
