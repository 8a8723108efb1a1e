// Package dashboard fetches and derives everything the aggregate views
// need: the dashboard itself, the merged transactions page, and the
// budget progress list. Reads fan out in parallel and each branch
// degrades to empty data on failure so one dead endpoint never blanks
// the whole view.
package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/Dat0801/jarvis-cli/internal/api"
	"github.com/Dat0801/jarvis-cli/internal/ledger"
	"github.com/Dat0801/jarvis-cli/internal/model"
	"golang.org/x/sync/errgroup"
)

// Data is one consistent snapshot of everything the aggregate views
// render. Fields left empty mean that branch failed or had nothing.
type Data struct {
	FetchedAt     time.Time
	Wallets       []model.Wallet
	Expenses      []model.Expense
	Incomes       []model.Income
	CategoryTree  []model.Category
	Budgets       []model.Budget
	Stats         *api.IncomeVsExpenses
	ReminderCount int
}

// Load issues all dashboard reads concurrently and joins them. Branch
// failures are logged and replaced with empty defaults; Load itself only
// fails if the context is cancelled.
func Load(ctx context.Context, client *api.Client) (*Data, error) {
	data := &Data{FetchedAt: time.Now()}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		wallets, err := client.ListWallets(gctx)
		if err != nil {
			slog.Warn("Dashboard wallet fetch failed", "error", err)
			wallets = []model.Wallet{}
		}
		data.Wallets = wallets
		return nil
	})

	g.Go(func() error {
		expenses, err := client.ListExpenses(gctx, api.EntryFilter{})
		if err != nil {
			slog.Warn("Dashboard expense fetch failed", "error", err)
			expenses = []model.Expense{}
		}
		data.Expenses = expenses
		return nil
	})

	g.Go(func() error {
		incomes, err := client.ListIncomes(gctx, api.EntryFilter{})
		if err != nil {
			slog.Warn("Dashboard income fetch failed", "error", err)
			incomes = []model.Income{}
		}
		data.Incomes = incomes
		return nil
	})

	g.Go(func() error {
		tree, err := client.CategoryTree(gctx, model.CategoryTypeExpense)
		if err != nil {
			slog.Warn("Dashboard category tree fetch failed", "error", err)
			tree = []model.Category{}
		}
		data.CategoryTree = tree
		return nil
	})

	g.Go(func() error {
		budgets, err := client.Budgets().List(gctx)
		if err != nil {
			slog.Warn("Dashboard budget fetch failed", "error", err)
			budgets = []model.Budget{}
		}
		data.Budgets = budgets
		return nil
	})

	g.Go(func() error {
		stats, err := client.IncomeVsExpensesStats(gctx)
		if err != nil {
			slog.Warn("Dashboard stats fetch failed", "error", err)
			stats = nil
		}
		data.Stats = stats
		return nil
	})

	g.Go(func() error {
		count, err := client.ReminderCount(gctx)
		if err != nil {
			slog.Warn("Dashboard reminder count fetch failed", "error", err)
			count = 0
		}
		data.ReminderCount = count
		return nil
	})

	// Branches never return errors, so Wait only reflects cancellation.
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return data, nil
}

// Transactions returns the merged, date-sorted view of the snapshot.
func (d *Data) Transactions() []ledger.Transaction {
	return ledger.Merge(d.Expenses, d.Incomes, d.FetchedAt)
}
