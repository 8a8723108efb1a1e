package charts

import (
	"testing"
	"time"

	"github.com/Dat0801/jarvis-cli/internal/api"
	"github.com/Dat0801/jarvis-cli/internal/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLen(t *testing.T) {
	tests := []struct {
		name string
		vals []float64
		n    int
		want []float64
	}{
		{
			name: "short run left-padded with first value",
			vals: []float64{10, 20},
			n:    5,
			want: []float64{10, 10, 10, 10, 20},
		},
		{
			name: "long run keeps trailing entries",
			vals: []float64{1, 2, 3, 4, 5, 6, 7},
			n:    5,
			want: []float64{3, 4, 5, 6, 7},
		},
		{
			name: "exact length unchanged",
			vals: []float64{1, 2, 3},
			n:    3,
			want: []float64{1, 2, 3},
		},
		{
			name: "empty input becomes zeros",
			vals: nil,
			n:    3,
			want: []float64{0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeLen(tt.vals, tt.n)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, tt.n)
		})
	}
}

func TestMonthlySeries_BackendData(t *testing.T) {
	stats := &api.IncomeVsExpenses{
		Months:   []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug"},
		Income:   []float64{1, 2, 3, 4, 5, 6, 7, 8},
		Expenses: []float64{8, 7, 6, 5, 4, 3, 2, 1},
	}

	s := MonthlySeries(stats, time.Now(), ledger.Totals{})
	assert.Equal(t, []string{"Mar", "Apr", "May", "Jun", "Jul", "Aug"}, s.Labels)
	assert.Equal(t, []float64{3, 4, 5, 6, 7, 8}, s.Income)
	assert.Equal(t, []float64{6, 5, 4, 3, 2, 1}, s.Expenses)
}

func TestMonthlySeries_FallbackSinglePoint(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	totals := ledger.Totals{
		Inflow:  decimal.NewFromInt(1000),
		Outflow: decimal.NewFromInt(250),
	}

	for _, stats := range []*api.IncomeVsExpenses{nil, {}} {
		s := MonthlySeries(stats, now, totals)
		require.Len(t, s.Labels, 1)
		assert.Equal(t, "Jun", s.Labels[0])
		assert.Equal(t, []float64{1000}, s.Income)
		assert.Equal(t, []float64{250}, s.Expenses)
	}
}

func TestMonthlySeries_RaggedBackendSeries(t *testing.T) {
	// Backend sent fewer values than labels; series stretch to match.
	stats := &api.IncomeVsExpenses{
		Months:   []string{"Apr", "May", "Jun"},
		Income:   []float64{100},
		Expenses: []float64{40, 50},
	}

	s := MonthlySeries(stats, time.Now(), ledger.Totals{})
	assert.Equal(t, []float64{100, 100, 100}, s.Income)
	assert.Equal(t, []float64{40, 40, 50}, s.Expenses)
}

func TestWeeklySeries_ChunksByWeekStart(t *testing.T) {
	now := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)
	txns := []ledger.Transaction{
		{Kind: ledger.KindExpense, Amount: decimal.NewFromInt(-30), Date: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)},
		{Kind: ledger.KindExpense, Amount: decimal.NewFromInt(-20), Date: time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC)},
		{Kind: ledger.KindIncome, Amount: decimal.NewFromInt(500), Date: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)},
		{Kind: ledger.KindExpense, Amount: decimal.NewFromInt(-15), Date: time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)},
		// Other months are ignored.
		{Kind: ledger.KindExpense, Amount: decimal.NewFromInt(-99), Date: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)},
	}

	s := WeeklySeries(txns, now)
	require.Equal(t, []string{"1", "8", "15", "22", "29"}, s.Labels)
	assert.Equal(t, []float64{50, 0, 0, 0, 15}, s.Expenses)
	assert.Equal(t, []float64{0, 500, 0, 0, 0}, s.Income)
}

func TestWeeklySeries_FebruaryHasFourChunks(t *testing.T) {
	now := time.Date(2023, 2, 10, 0, 0, 0, 0, time.UTC)
	s := WeeklySeries(nil, now)
	assert.Equal(t, []string{"1", "8", "15", "22"}, s.Labels)
}
