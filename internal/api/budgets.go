package api

import (
	"context"
	"fmt"

	"github.com/Dat0801/jarvis-cli/internal/model"
	"github.com/shopspring/decimal"
)

// The backend exposes the same resource under two path families: "jars"
// on the original routes and "budgets" on the newer ones. Budgets is the
// client for either family, selected by base path.
type Budgets struct {
	client *Client
	base   string
}

// Jars returns the resource client for the legacy jar paths.
func (c *Client) Jars() *Budgets {
	return &Budgets{client: c, base: "jars"}
}

// Budgets returns the resource client for the budget paths.
func (c *Client) Budgets() *Budgets {
	return &Budgets{client: c, base: "budgets"}
}

// BudgetParams create or update a budget.
type BudgetParams struct {
	Name        string           `json:"name,omitempty"`
	Category    string           `json:"category,omitempty"`
	Target      *decimal.Decimal `json:"target,omitempty"`
	Description string           `json:"description,omitempty"`
}

// BudgetTransaction is one movement against a budget, either spending
// drawn from it or money added to it.
type BudgetTransaction struct {
	ID        int64           `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Kind      string          `json:"type"`
	Note      string          `json:"note"`
	CreatedAt model.FlexTime  `json:"created_at"`
}

// List fetches all budgets.
func (b *Budgets) List(ctx context.Context) ([]model.Budget, error) {
	budgets, err := getList[model.Budget](ctx, b.client, b.base, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", b.base, err)
	}
	return budgets, nil
}

// Get fetches a single budget.
func (b *Budgets) Get(ctx context.Context, id int64) (*model.Budget, error) {
	var budget model.Budget
	if err := b.client.getJSON(ctx, fmt.Sprintf("%s/%d", b.base, id), nil, &budget); err != nil {
		return nil, fmt.Errorf("failed to fetch %s %d: %w", b.singular(), id, err)
	}
	return &budget, nil
}

// Create creates a budget.
func (b *Budgets) Create(ctx context.Context, params BudgetParams) (*model.Budget, error) {
	var budget model.Budget
	if err := b.client.postJSON(ctx, b.base, params, &budget); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", b.singular(), err)
	}
	return &budget, nil
}

// Update applies a partial budget update.
func (b *Budgets) Update(ctx context.Context, id int64, params BudgetParams) (*model.Budget, error) {
	var budget model.Budget
	if err := b.client.patchJSON(ctx, fmt.Sprintf("%s/%d", b.base, id), params, &budget); err != nil {
		return nil, fmt.Errorf("failed to update %s %d: %w", b.singular(), id, err)
	}
	return &budget, nil
}

// Delete removes a budget.
func (b *Budgets) Delete(ctx context.Context, id int64) error {
	if err := b.client.delete(ctx, fmt.Sprintf("%s/%d", b.base, id)); err != nil {
		return fmt.Errorf("failed to delete %s %d: %w", b.singular(), id, err)
	}
	return nil
}

// Transactions fetches the movements recorded against a budget.
func (b *Budgets) Transactions(ctx context.Context, id int64) ([]BudgetTransaction, error) {
	txns, err := getList[BudgetTransaction](ctx, b.client, fmt.Sprintf("%s/%d/transactions", b.base, id), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for %s %d: %w", b.singular(), id, err)
	}
	return txns, nil
}

// AddMoney tops up a budget's balance.
func (b *Budgets) AddMoney(ctx context.Context, id int64, amount decimal.Decimal) error {
	payload := map[string]decimal.Decimal{"amount": amount}
	if err := b.client.postJSON(ctx, fmt.Sprintf("%s/%d/add-money", b.base, id), payload, nil); err != nil {
		return fmt.Errorf("failed to add money to %s %d: %w", b.singular(), id, err)
	}
	return nil
}

func (b *Budgets) singular() string {
	if b.base == "jars" {
		return "jar"
	}
	return "budget"
}
