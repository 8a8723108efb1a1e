package dashboard

import (
	"github.com/Dat0801/jarvis-cli/internal/budget"
	"github.com/Dat0801/jarvis-cli/internal/charts"
	"github.com/Dat0801/jarvis-cli/internal/ledger"
	"github.com/Dat0801/jarvis-cli/internal/model"
	"github.com/shopspring/decimal"
)

// View is the fully derived dashboard: the snapshot reshaped into the
// widgets the renderers draw.
type View struct {
	TotalBalance     decimal.Decimal
	MonthTotals      ledger.Totals
	RecentDays       []ledger.DayGroup
	TopSpendingWeek  []ledger.SpendingGroup
	TopSpendingMonth []ledger.SpendingGroup
	MonthlySeries    charts.Series
	WeeklySeries     charts.Series
	Budgets          []BudgetRow
	ReminderCount    int
}

// BudgetRow pairs a budget with its derived progress.
type BudgetRow struct {
	Budget   model.Budget
	Progress budget.Progress
}

// recentDayLimit caps how many transactions the recent list shows.
const recentDayLimit = 10

// Derive computes every dashboard widget from one snapshot.
func Derive(data *Data) View {
	now := data.FetchedAt
	txns := data.Transactions()
	parents := model.ParentLookup(data.CategoryTree)

	weekFrom, weekTo := ledger.TrailingWindow(now, 7)
	monthFrom, monthTo := ledger.MonthWindow(now)

	monthTxns := ledger.Filter(txns, ledger.PeriodMonth, ledger.PeriodKey(now, ledger.PeriodMonth))
	monthTotals := ledger.Sum(monthTxns)

	recent := txns
	if len(recent) > recentDayLimit {
		recent = recent[:recentDayLimit]
	}

	spentByLabel := ledger.SpentByLabel(txns, monthFrom, monthTo)
	rows := make([]BudgetRow, 0, len(data.Budgets))
	for _, b := range data.Budgets {
		rows = append(rows, BudgetRow{
			Budget:   b,
			Progress: budget.ComputeProgress(b, spentByLabel),
		})
	}

	return View{
		TotalBalance:     model.TotalBalance(data.Wallets),
		MonthTotals:      monthTotals,
		RecentDays:       ledger.GroupByDay(recent, now),
		TopSpendingWeek:  ledger.TopSpending(txns, parents, weekFrom, weekTo),
		TopSpendingMonth: ledger.TopSpending(txns, parents, monthFrom, monthTo),
		MonthlySeries:    charts.MonthlySeries(data.Stats, now, monthTotals),
		WeeklySeries:     charts.WeeklySeries(txns, now),
		Budgets:          rows,
		ReminderCount:    data.ReminderCount,
	}
}
