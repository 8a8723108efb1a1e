package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayLabel(t *testing.T) {
	now := time.Date(2024, 6, 15, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{name: "same day", date: time.Date(2024, 6, 15, 2, 0, 0, 0, time.UTC), want: "TODAY"},
		{name: "previous day", date: time.Date(2024, 6, 14, 23, 0, 0, 0, time.UTC), want: "YESTERDAY"},
		{name: "older date", date: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), want: "JUN 1"},
		{name: "other month", date: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), want: "MAR 20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DayLabel(tt.date, now))
		})
	}
}

func TestPeriodKey_ISOWeeks(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{
			name: "first of 2024 is week 1",
			date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			want: "2024-W01",
		},
		{
			name: "end of 2024 rolls into following ISO year",
			date: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
			want: "2025-W01",
		},
		{
			name: "jan 2021 belongs to ISO week 53 of 2020",
			date: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
			want: "2020-W53",
		},
		{
			name: "mid-year week",
			date: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
			want: "2024-W24",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PeriodKey(tt.date, PeriodWeek))
		})
	}
}

func TestPeriodKey_MonthQuarterYear(t *testing.T) {
	date := time.Date(2024, 8, 20, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-08", PeriodKey(date, PeriodMonth))
	assert.Equal(t, "2024-Q3", PeriodKey(date, PeriodQuarter))
	assert.Equal(t, "2024", PeriodKey(date, PeriodYear))

	january := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-Q1", PeriodKey(january, PeriodQuarter))
	december := time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-Q4", PeriodKey(december, PeriodQuarter))
}

func TestFilterAndKeys(t *testing.T) {
	txns := []Transaction{
		{Date: time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(100)},
		{Date: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(-40)},
		{Date: time.Date(2024, 5, 28, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(-10)},
	}

	keys := Keys(txns, PeriodMonth)
	assert.Equal(t, []string{"2024-06", "2024-05"}, keys)

	june := Filter(txns, PeriodMonth, "2024-06")
	require.Len(t, june, 2)

	totals := Sum(june)
	assert.True(t, totals.Inflow.Equal(decimal.NewFromInt(100)))
	assert.True(t, totals.Outflow.Equal(decimal.NewFromInt(40)))
	assert.True(t, totals.Balance.Equal(decimal.NewFromInt(60)))
}

func TestGroupByDay(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	txns := []Transaction{
		{ID: 1, Date: now.Add(-time.Hour)},
		{ID: 2, Date: now.Add(-2 * time.Hour)},
		{ID: 3, Date: now.AddDate(0, 0, -1)},
		{ID: 4, Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
	}

	groups := GroupByDay(txns, now)
	require.Len(t, groups, 3)
	assert.Equal(t, "TODAY", groups[0].Label)
	assert.Len(t, groups[0].Transactions, 2)
	assert.Equal(t, "YESTERDAY", groups[1].Label)
	assert.Equal(t, "JUN 1", groups[2].Label)
}
