package api

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// CategorySpending is one row of the backend's spending breakdown.
type CategorySpending struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// IncomeVsExpenses is the backend's monthly series triple. The three
// slices are parallel; Months holds display labels like "Jan".
type IncomeVsExpenses struct {
	Months   []string  `json:"months"`
	Income   []float64 `json:"income"`
	Expenses []float64 `json:"expenses"`
}

// Summary is the backend's headline totals.
type Summary struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
}

// MonthlyReport is one month of the backend's report listing.
type MonthlyReport struct {
	Month    string          `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// SpendingStats fetches the per-category spending breakdown.
func (c *Client) SpendingStats(ctx context.Context) ([]CategorySpending, error) {
	stats, err := getList[CategorySpending](ctx, c, "stats/spending", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch spending stats: %w", err)
	}
	return stats, nil
}

// IncomeVsExpensesStats fetches the monthly income/expense series.
func (c *Client) IncomeVsExpensesStats(ctx context.Context) (*IncomeVsExpenses, error) {
	var stats IncomeVsExpenses
	if err := c.getJSON(ctx, "stats/income-vs-expenses", nil, &stats); err != nil {
		return nil, fmt.Errorf("failed to fetch income-vs-expenses stats: %w", err)
	}
	return &stats, nil
}

// SummaryStats fetches the headline totals.
func (c *Client) SummaryStats(ctx context.Context) (*Summary, error) {
	var summary Summary
	if err := c.getJSON(ctx, "stats/summary", nil, &summary); err != nil {
		return nil, fmt.Errorf("failed to fetch summary stats: %w", err)
	}
	return &summary, nil
}

// MonthlyReports fetches the month-by-month report rows.
func (c *Client) MonthlyReports(ctx context.Context) ([]MonthlyReport, error) {
	reports, err := getList[MonthlyReport](ctx, c, "stats/monthly-reports", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch monthly reports: %w", err)
	}
	return reports, nil
}
