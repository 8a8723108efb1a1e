package api

import (
	"context"
	"fmt"

	"github.com/Dat0801/jarvis-cli/internal/model"
)

// ProfileParams are the updatable account fields. Empty fields are
// omitted so the backend treats the request as a partial update.
type ProfileParams struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Currency string `json:"currency,omitempty"`
	Language string `json:"language,omitempty"`
}

// Profile fetches the authenticated user's account record.
func (c *Client) Profile(ctx context.Context) (*model.Profile, error) {
	var profile model.Profile
	if err := c.getJSON(ctx, "account/profile", nil, &profile); err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return &profile, nil
}

// UpdateProfile applies a partial profile update.
func (c *Client) UpdateProfile(ctx context.Context, params ProfileParams) (*model.Profile, error) {
	var profile model.Profile
	if err := c.patchJSON(ctx, "account/profile", params, &profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return &profile, nil
}

// ChangePassword replaces the account password.
func (c *Client) ChangePassword(ctx context.Context, current, next string) error {
	payload := map[string]string{
		"current_password": current,
		"new_password":     next,
	}
	if err := c.patchJSON(ctx, "account/password", payload, nil); err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}
	return nil
}

// ResetData wipes all of the account's wallets, entries, and budgets on
// the backend. There is no undo.
func (c *Client) ResetData(ctx context.Context) error {
	if err := c.postJSON(ctx, "account/reset-data", nil, nil); err != nil {
		return fmt.Errorf("failed to reset account data: %w", err)
	}
	return nil
}
