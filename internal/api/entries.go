package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/Dat0801/jarvis-cli/internal/model"
	"github.com/shopspring/decimal"
)

// EntryFilter narrows an entry list request. Zero values are omitted.
type EntryFilter struct {
	WalletID int64
	From     time.Time
	To       time.Time
}

func (f EntryFilter) query() url.Values {
	q := url.Values{}
	if f.WalletID != 0 {
		q.Set("wallet_id", strconv.FormatInt(f.WalletID, 10))
	}
	if !f.From.IsZero() {
		q.Set("from", f.From.Format("2006-01-02"))
	}
	if !f.To.IsZero() {
		q.Set("to", f.To.Format("2006-01-02"))
	}
	return q
}

// ExpenseParams create or update an expense.
type ExpenseParams struct {
	WalletID int64            `json:"wallet_id,omitempty"`
	Amount   *decimal.Decimal `json:"amount,omitempty"`
	Category string           `json:"category,omitempty"`
	Note     string           `json:"note,omitempty"`
	SpentAt  string           `json:"spent_at,omitempty"`
}

// IncomeParams create or update an income.
type IncomeParams struct {
	WalletID   int64            `json:"wallet_id,omitempty"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Source     string           `json:"source,omitempty"`
	Note       string           `json:"note,omitempty"`
	ReceivedAt string           `json:"received_at,omitempty"`
}

// ListExpenses fetches expenses matching the filter.
func (c *Client) ListExpenses(ctx context.Context, filter EntryFilter) ([]model.Expense, error) {
	expenses, err := getList[model.Expense](ctx, c, "expenses", filter.query())
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

// GetExpense fetches a single expense.
func (c *Client) GetExpense(ctx context.Context, id int64) (*model.Expense, error) {
	var expense model.Expense
	if err := c.getJSON(ctx, fmt.Sprintf("expenses/%d", id), nil, &expense); err != nil {
		return nil, fmt.Errorf("failed to fetch expense %d: %w", id, err)
	}
	return &expense, nil
}

// CreateExpense records a new expense.
func (c *Client) CreateExpense(ctx context.Context, params ExpenseParams) (*model.Expense, error) {
	var expense model.Expense
	if err := c.postJSON(ctx, "expenses", params, &expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	return &expense, nil
}

// UpdateExpense applies a partial expense update.
func (c *Client) UpdateExpense(ctx context.Context, id int64, params ExpenseParams) (*model.Expense, error) {
	var expense model.Expense
	if err := c.patchJSON(ctx, fmt.Sprintf("expenses/%d", id), params, &expense); err != nil {
		return nil, fmt.Errorf("failed to update expense %d: %w", id, err)
	}
	return &expense, nil
}

// DeleteExpense removes an expense.
func (c *Client) DeleteExpense(ctx context.Context, id int64) error {
	if err := c.delete(ctx, fmt.Sprintf("expenses/%d", id)); err != nil {
		return fmt.Errorf("failed to delete expense %d: %w", id, err)
	}
	return nil
}

// ListIncomes fetches incomes matching the filter.
func (c *Client) ListIncomes(ctx context.Context, filter EntryFilter) ([]model.Income, error) {
	incomes, err := getList[model.Income](ctx, c, "incomes", filter.query())
	if err != nil {
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}
	return incomes, nil
}

// GetIncome fetches a single income.
func (c *Client) GetIncome(ctx context.Context, id int64) (*model.Income, error) {
	var income model.Income
	if err := c.getJSON(ctx, fmt.Sprintf("incomes/%d", id), nil, &income); err != nil {
		return nil, fmt.Errorf("failed to fetch income %d: %w", id, err)
	}
	return &income, nil
}

// CreateIncome records a new income.
func (c *Client) CreateIncome(ctx context.Context, params IncomeParams) (*model.Income, error) {
	var income model.Income
	if err := c.postJSON(ctx, "incomes", params, &income); err != nil {
		return nil, fmt.Errorf("failed to create income: %w", err)
	}
	return &income, nil
}

// UpdateIncome applies a partial income update.
func (c *Client) UpdateIncome(ctx context.Context, id int64, params IncomeParams) (*model.Income, error) {
	var income model.Income
	if err := c.patchJSON(ctx, fmt.Sprintf("incomes/%d", id), params, &income); err != nil {
		return nil, fmt.Errorf("failed to update income %d: %w", id, err)
	}
	return &income, nil
}

// DeleteIncome removes an income.
func (c *Client) DeleteIncome(ctx context.Context, id int64) error {
	if err := c.delete(ctx, fmt.Sprintf("incomes/%d", id)); err != nil {
		return fmt.Errorf("failed to delete income %d: %w", id, err)
	}
	return nil
}
