package frontdash

import (
	"context"
	"net/http"

	"github.com/frontdash/partner-desktop/core/model"
)

// LoginResult is what a successful owner login yields.
type LoginResult struct {
	Token      string
	Restaurant model.Restaurant
}

type loginWire struct {
	Token      string         `json:"token"`
	Restaurant restaurantWire `json:"restaurant"`
}

type restaurantWire struct {
	RestaurantID FlexString `json:"restaurantId"`
	Name         string     `json:"restaurantName"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	Status       string     `json:"status"`
}

func (w restaurantWire) toModel() model.Restaurant {
	return model.Restaurant{
		ID:       w.RestaurantID.String(),
		Name:     w.Name,
		Username: w.Username,
		Email:    w.Email,
		Status:   w.Status,
	}
}

// Login authenticates the restaurant owner. No token is attached; this is
// one of the unauthenticated endpoints.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	payload := map[string]string{"username": username, "password": password}
	req, err := jsonRequest(ctx, http.MethodPost, c.baseURL, "/auth/owner/login", "", payload)
	if err != nil {
		return nil, err
	}
	var wire loginWire
	if err := c.http.Do(req, &wire); err != nil {
		return nil, wrapErr("login failed", err)
	}
	result := &LoginResult{
		Token:      wire.Token,
		Restaurant: wire.Restaurant.toModel(),
	}
	return result, nil
}

// Logout notifies the backend that the session is over.
func (c *Client) Logout(ctx context.Context, token string) error {
	req, err := jsonRequest(ctx, http.MethodPost, c.baseURL, "/auth/owner/logout", token, nil)
	if err != nil {
		return err
	}
	if err := c.http.Do(req, nil); err != nil {
		return wrapErr("logout failed", err)
	}
	return nil
}

// ChangePassword swaps the account password.
func (c *Client) ChangePassword(ctx context.Context, token, currentPassword, newPassword string) error {
	payload := map[string]string{
		"currentPassword": currentPassword,
		"newPassword":     newPassword,
	}
	req, err := jsonRequest(ctx, http.MethodPost, c.baseURL, "/restaurant/change-password", token, payload)
	if err != nil {
		return err
	}
	if err := c.http.Do(req, nil); err != nil {
		return wrapErr("password change failed", err)
	}
	return nil
}
