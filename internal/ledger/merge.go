// Package ledger turns the backend's flat expense and income lists into
// the unified, time-bucketed transaction view the client renders. All of
// it is arithmetic over data already fetched; nothing here talks to the
// network.
package ledger

import (
	"sort"
	"time"

	"github.com/Dat0801/jarvis-cli/internal/model"
	"github.com/shopspring/decimal"
)

// Kind distinguishes the two entry flavors in the merged view.
type Kind string

const (
	// KindExpense marks outgoing money.
	KindExpense Kind = "expense"
	// KindIncome marks incoming money.
	KindIncome Kind = "income"
)

// Transaction is one row of the unified view. Amount is signed: expenses
// are always <= 0, incomes always >= 0, whatever the backend sent.
type Transaction struct {
	Date     time.Time
	Label    string
	Note     string
	Kind     Kind
	Amount   decimal.Decimal
	ID       int64
	WalletID int64
}

// FromExpense normalizes an expense record. The date prefers spent_at,
// then created_at, then now for records with no usable date at all.
func FromExpense(e model.Expense, now time.Time) Transaction {
	label := e.Category
	if label == "" {
		label = "Other"
	}
	return Transaction{
		ID:       e.ID,
		WalletID: e.WalletID,
		Kind:     KindExpense,
		Label:    label,
		Note:     e.Note,
		Amount:   e.Amount.Abs().Neg(),
		Date:     e.SpentAt.Or(e.CreatedAt.Or(now)),
	}
}

// FromIncome normalizes an income record, preferring received_at.
func FromIncome(i model.Income, now time.Time) Transaction {
	label := i.Source
	if label == "" {
		label = "Other"
	}
	return Transaction{
		ID:       i.ID,
		WalletID: i.WalletID,
		Kind:     KindIncome,
		Label:    label,
		Note:     i.Note,
		Amount:   i.Amount.Abs(),
		Date:     i.ReceivedAt.Or(i.CreatedAt.Or(now)),
	}
}

// Merge normalizes both lists and returns them as one view, sorted
// descending by date. The sort is stable, so same-date rows keep their
// input order (expenses first, in fetch order).
func Merge(expenses []model.Expense, incomes []model.Income, now time.Time) []Transaction {
	merged := make([]Transaction, 0, len(expenses)+len(incomes))
	for _, e := range expenses {
		merged = append(merged, FromExpense(e, now))
	}
	for _, i := range incomes {
		merged = append(merged, FromIncome(i, now))
	}

	sort.SliceStable(merged, func(a, b int) bool {
		return merged[a].Date.After(merged[b].Date)
	})
	return merged
}
