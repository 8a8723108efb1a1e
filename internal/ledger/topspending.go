package ledger

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SpendingGroup is one row of a top-spending widget: a parent-category
// label, its summed spending magnitude, and its share of the total.
type SpendingGroup struct {
	Label   string
	Amount  decimal.Decimal
	Percent float64
}

// TrailingWindow returns the [from, to] pair covering the trailing n
// days up to now, inclusive of today.
func TrailingWindow(now time.Time, days int) (time.Time, time.Time) {
	return now.AddDate(0, 0, -days), now
}

// MonthWindow returns the bounds of now's calendar month.
func MonthWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// TopSpending groups the expenses inside [from, to] by parent category
// and ranks them by summed magnitude. Child categories resolve to their
// parent's display name through the lookup built from the category tree;
// names missing from the tree keep their raw label. Empty input yields a
// single zero-value placeholder so the widget always has a row.
func TopSpending(txns []Transaction, parents map[string]string, from, to time.Time) []SpendingGroup {
	sums := make(map[string]decimal.Decimal)
	var order []string
	total := decimal.Zero

	for _, txn := range txns {
		if txn.Kind != KindExpense {
			continue
		}
		if txn.Date.Before(from) || txn.Date.After(to) {
			continue
		}

		label := txn.Label
		if parent, ok := parents[label]; ok {
			label = parent
		}
		if label == "" {
			label = "Other"
		}

		amount := txn.Amount.Abs()
		if _, seen := sums[label]; !seen {
			order = append(order, label)
		}
		sums[label] = sums[label].Add(amount)
		total = total.Add(amount)
	}

	if len(order) == 0 {
		return []SpendingGroup{{Label: "Other", Amount: decimal.Zero, Percent: 0}}
	}

	groups := make([]SpendingGroup, 0, len(order))
	for _, label := range order {
		amount := sums[label]
		percent := 0.0
		if total.IsPositive() {
			percent, _ = amount.Div(total).Mul(decimal.NewFromInt(100)).Float64()
		}
		groups = append(groups, SpendingGroup{Label: label, Amount: amount, Percent: percent})
	}

	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].Amount.GreaterThan(groups[b].Amount)
	})
	return groups
}

// SpentByLabel sums expense magnitudes per lower-cased label. Budget
// progress joins against this map by exact, case-insensitive match.
func SpentByLabel(txns []Transaction, from, to time.Time) map[string]decimal.Decimal {
	sums := make(map[string]decimal.Decimal)
	for _, txn := range txns {
		if txn.Kind != KindExpense {
			continue
		}
		if txn.Date.Before(from) || txn.Date.After(to) {
			continue
		}
		key := strings.ToLower(txn.Label)
		sums[key] = sums[key].Add(txn.Amount.Abs())
	}
	return sums
}
