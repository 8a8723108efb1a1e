package api

import (
	"context"
	"fmt"

	"github.com/Dat0801/jarvis-cli/internal/model"
	"github.com/shopspring/decimal"
)

// WalletParams create or update a wallet. Pointer fields distinguish
// "leave unchanged" from explicit zero values on PATCH.
type WalletParams struct {
	Name         string           `json:"name,omitempty"`
	Balance      *decimal.Decimal `json:"balance,omitempty"`
	CurrencyUnit string           `json:"currency_unit,omitempty"`
	WalletType   string           `json:"wallet_type,omitempty"`
	Notification *bool            `json:"notification,omitempty"`
}

// ListWallets fetches all wallets.
func (c *Client) ListWallets(ctx context.Context) ([]model.Wallet, error) {
	wallets, err := getList[model.Wallet](ctx, c, "wallets", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	return wallets, nil
}

// GetWallet fetches a single wallet.
func (c *Client) GetWallet(ctx context.Context, id int64) (*model.Wallet, error) {
	var wallet model.Wallet
	if err := c.getJSON(ctx, fmt.Sprintf("wallets/%d", id), nil, &wallet); err != nil {
		return nil, fmt.Errorf("failed to fetch wallet %d: %w", id, err)
	}
	return &wallet, nil
}

// CreateWallet creates a wallet.
func (c *Client) CreateWallet(ctx context.Context, params WalletParams) (*model.Wallet, error) {
	var wallet model.Wallet
	if err := c.postJSON(ctx, "wallets", params, &wallet); err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}
	return &wallet, nil
}

// UpdateWallet applies a partial wallet update.
func (c *Client) UpdateWallet(ctx context.Context, id int64, params WalletParams) (*model.Wallet, error) {
	var wallet model.Wallet
	if err := c.patchJSON(ctx, fmt.Sprintf("wallets/%d", id), params, &wallet); err != nil {
		return nil, fmt.Errorf("failed to update wallet %d: %w", id, err)
	}
	return &wallet, nil
}

// DeleteWallet removes a wallet.
func (c *Client) DeleteWallet(ctx context.Context, id int64) error {
	if err := c.delete(ctx, fmt.Sprintf("wallets/%d", id)); err != nil {
		return fmt.Errorf("failed to delete wallet %d: %w", id, err)
	}
	return nil
}

// WalletCategories fetches the categories associated with a wallet.
func (c *Client) WalletCategories(ctx context.Context, id int64) ([]model.Category, error) {
	categories, err := getList[model.Category](ctx, c, fmt.Sprintf("wallets/%d/categories", id), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories for wallet %d: %w", id, err)
	}
	return categories, nil
}
