package ledger

import (
	"testing"
	"time"

	"github.com/Dat0801/jarvis-cli/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) model.FlexTime {
	return model.FlexTime{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func TestMerge_SignNormalization(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		amount string
		kind   Kind
	}{
		{name: "positive expense flips negative", amount: "50", kind: KindExpense},
		{name: "negative expense stays negative", amount: "-50", kind: KindExpense},
		{name: "positive income stays positive", amount: "1000", kind: KindIncome},
		{name: "negative income flips positive", amount: "-1000", kind: KindIncome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			var txn Transaction
			if tt.kind == KindExpense {
				txn = FromExpense(model.Expense{Amount: amount, SpentAt: date(2024, 6, 1)}, now)
				assert.True(t, txn.Amount.LessThanOrEqual(decimal.Zero))
			} else {
				txn = FromIncome(model.Income{Amount: amount, ReceivedAt: date(2024, 6, 1)}, now)
				assert.True(t, txn.Amount.GreaterThanOrEqual(decimal.Zero))
			}
		})
	}
}

func TestMerge_DateFallbackChain(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	withSpentAt := FromExpense(model.Expense{
		SpentAt:   date(2024, 6, 1),
		CreatedAt: date(2024, 6, 5),
	}, now)
	assert.Equal(t, date(2024, 6, 1).Time, withSpentAt.Date)

	createdOnly := FromExpense(model.Expense{CreatedAt: date(2024, 6, 5)}, now)
	assert.Equal(t, date(2024, 6, 5).Time, createdOnly.Date)

	noDates := FromExpense(model.Expense{}, now)
	assert.Equal(t, now, noDates.Date)
}

func TestMerge_SortedDescendingRegardlessOfInputOrder(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	expenses := []model.Expense{
		{ID: 1, Amount: decimal.NewFromInt(5), SpentAt: date(2024, 6, 3)},
		{ID: 2, Amount: decimal.NewFromInt(7), SpentAt: date(2024, 6, 10)},
		{ID: 3, Amount: decimal.NewFromInt(9), SpentAt: date(2024, 6, 1)},
	}
	incomes := []model.Income{
		{ID: 4, Amount: decimal.NewFromInt(100), ReceivedAt: date(2024, 6, 7)},
		{ID: 5, Amount: decimal.NewFromInt(200), ReceivedAt: date(2024, 6, 12)},
	}

	merged := Merge(expenses, incomes, now)
	require.Len(t, merged, 5)
	for i := 1; i < len(merged); i++ {
		assert.False(t, merged[i].Date.After(merged[i-1].Date),
			"transactions must be non-increasing by date")
	}
}

func TestMerge_EndToEndScenario(t *testing.T) {
	// One June expense and one June income, as the backend would send them.
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	expenses := []model.Expense{
		{ID: 1, Amount: decimal.RequireFromString("50"), Category: "Food", SpentAt: date(2024, 6, 1)},
	}
	incomes := []model.Income{
		{ID: 2, Amount: decimal.RequireFromString("1000"), Source: "Salary", ReceivedAt: date(2024, 6, 2)},
	}

	merged := Merge(expenses, incomes, now)
	require.Len(t, merged, 2)

	assert.Equal(t, KindIncome, merged[0].Kind)
	assert.Equal(t, "Salary", merged[0].Label)
	assert.True(t, merged[0].Amount.Equal(decimal.NewFromInt(1000)))

	assert.Equal(t, KindExpense, merged[1].Kind)
	assert.Equal(t, "Food", merged[1].Label)
	assert.True(t, merged[1].Amount.Equal(decimal.NewFromInt(-50)))

	june := Filter(merged, PeriodMonth, "2024-06")
	totals := Sum(june)
	assert.True(t, totals.Inflow.Equal(decimal.NewFromInt(1000)))
	assert.True(t, totals.Outflow.Equal(decimal.NewFromInt(50)))
	assert.True(t, totals.Balance.Equal(decimal.NewFromInt(950)))
}

func TestMerge_EmptyLists(t *testing.T) {
	merged := Merge(nil, nil, time.Now())
	assert.NotNil(t, merged)
	assert.Empty(t, merged)
}
