// Package charts builds the income/expense chart series and maps them to
// coordinates for rendering, either as SVG or as terminal sparklines.
package charts

import (
	"fmt"
	"time"

	"github.com/Dat0801/jarvis-cli/internal/api"
	"github.com/Dat0801/jarvis-cli/internal/ledger"
)

// Series is a labeled pair of parallel value runs. Labels, Income, and
// Expenses always have equal length after construction.
type Series struct {
	Labels   []string
	Income   []float64
	Expenses []float64
}

// monthlyPoints caps how much backend history a chart shows.
const monthlyPoints = 6

// NormalizeLen fits vals to length n: short runs are left-padded by
// repeating the first value, long runs keep only the trailing n entries.
// Empty input yields n zeros.
func NormalizeLen(vals []float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, 0, n)
	switch {
	case len(vals) == 0:
		return make([]float64, n)
	case len(vals) >= n:
		return append(out, vals[len(vals)-n:]...)
	default:
		for i := 0; i < n-len(vals); i++ {
			out = append(out, vals[0])
		}
		return append(out, vals...)
	}
}

// MonthlySeries builds the dashboard's month-over-month series from the
// backend stats, keeping the trailing six months. When the backend has
// nothing usable the series degrades to a single point seeded from the
// current month's locally computed totals.
func MonthlySeries(stats *api.IncomeVsExpenses, now time.Time, current ledger.Totals) Series {
	if stats == nil || len(stats.Months) == 0 {
		income, _ := current.Inflow.Float64()
		expenses, _ := current.Outflow.Float64()
		return Series{
			Labels:   []string{now.Format("Jan")},
			Income:   []float64{income},
			Expenses: []float64{expenses},
		}
	}

	labels := stats.Months
	if len(labels) > monthlyPoints {
		labels = labels[len(labels)-monthlyPoints:]
	}
	return Series{
		Labels:   labels,
		Income:   NormalizeLen(stats.Income, len(labels)),
		Expenses: NormalizeLen(stats.Expenses, len(labels)),
	}
}

// WeeklySeries partitions now's calendar month into week-starting chunks
// (day 1, 8, 15, 22, 29) and sums income and expense magnitude per chunk.
func WeeklySeries(txns []ledger.Transaction, now time.Time) Series {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	daysInMonth := monthStart.AddDate(0, 1, -1).Day()

	var labels []string
	var starts []int
	for day := 1; day <= daysInMonth; day += 7 {
		starts = append(starts, day)
		labels = append(labels, fmt.Sprintf("%d", day))
	}

	income := make([]float64, len(starts))
	expenses := make([]float64, len(starts))
	for _, txn := range txns {
		if txn.Date.Year() != now.Year() || txn.Date.Month() != now.Month() {
			continue
		}
		chunk := (txn.Date.Day() - 1) / 7
		if chunk >= len(starts) {
			chunk = len(starts) - 1
		}
		value, _ := txn.Amount.Abs().Float64()
		if txn.Kind == ledger.KindIncome {
			income[chunk] += value
		} else {
			expenses[chunk] += value
		}
	}

	return Series{Labels: labels, Income: income, Expenses: expenses}
}
