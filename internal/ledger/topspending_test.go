package ledger

import (
	"testing"
	"time"

	"github.com/Dat0801/jarvis-cli/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expenseTxn(label, amount string, day int) Transaction {
	return Transaction{
		Kind:   KindExpense,
		Label:  label,
		Amount: decimal.RequireFromString(amount).Neg(),
		Date:   time.Date(2024, 6, day, 0, 0, 0, 0, time.UTC),
	}
}

func TestTopSpending_GroupsByParentCategory(t *testing.T) {
	parentID := int64(1)
	tree := []model.Category{
		{
			ID:   parentID,
			Name: "Food & Drink",
			Children: []model.Category{
				{ID: 2, Name: "Restaurants", ParentID: &parentID},
				{ID: 3, Name: "Groceries", ParentID: &parentID},
			},
		},
		{ID: 4, Name: "Transport"},
	}
	parents := model.ParentLookup(tree)

	txns := []Transaction{
		expenseTxn("Restaurants", "30", 10),
		expenseTxn("Groceries", "70", 11),
		expenseTxn("Transport", "50", 12),
		expenseTxn("Mystery Fees", "50", 13), // not in the tree, raw label kept
		{Kind: KindIncome, Label: "Salary", Amount: decimal.NewFromInt(1000), Date: time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)},
	}

	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	groups := TopSpending(txns, parents, from, to)

	require.Len(t, groups, 3)
	assert.Equal(t, "Food & Drink", groups[0].Label)
	assert.True(t, groups[0].Amount.Equal(decimal.NewFromInt(100)))

	// Percentages must cover the whole pie.
	var totalPercent float64
	for _, g := range groups {
		totalPercent += g.Percent
	}
	assert.InDelta(t, 100.0, totalPercent, 1e-9)
}

func TestTopSpending_WindowExcludesOutsideDates(t *testing.T) {
	txns := []Transaction{
		expenseTxn("Food", "10", 5),
		expenseTxn("Food", "99", 25),
	}

	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	groups := TopSpending(txns, nil, from, to)

	require.Len(t, groups, 1)
	assert.True(t, groups[0].Amount.Equal(decimal.NewFromInt(10)))
	assert.InDelta(t, 100.0, groups[0].Percent, 1e-9)
}

func TestTopSpending_EmptyInputYieldsPlaceholder(t *testing.T) {
	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	groups := TopSpending(nil, nil, from, to)
	require.Len(t, groups, 1)
	assert.Equal(t, "Other", groups[0].Label)
	assert.True(t, groups[0].Amount.IsZero())
	assert.Zero(t, groups[0].Percent)
}

func TestTopSpending_MissingLabelFallsBackToOther(t *testing.T) {
	txns := []Transaction{expenseTxn("", "25", 10)}
	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	groups := TopSpending(txns, map[string]string{}, from, to)
	require.Len(t, groups, 1)
	assert.Equal(t, "Other", groups[0].Label)
}

func TestSpentByLabel_CaseInsensitiveJoin(t *testing.T) {
	txns := []Transaction{
		expenseTxn("Food", "30", 5),
		expenseTxn("FOOD", "20", 6),
		expenseTxn("Rent", "500", 7),
	}
	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	sums := SpentByLabel(txns, from, to)
	assert.True(t, sums["food"].Equal(decimal.NewFromInt(50)))
	assert.True(t, sums["rent"].Equal(decimal.NewFromInt(500)))
}

func TestWindows(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	from, to := TrailingWindow(now, 7)
	assert.Equal(t, now.AddDate(0, 0, -7), from)
	assert.Equal(t, now, to)

	monthFrom, monthTo := MonthWindow(now)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), monthFrom)
	assert.Equal(t, time.Month(6), monthTo.Month())
	assert.Equal(t, 30, monthTo.Day())
}
