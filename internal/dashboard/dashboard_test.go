package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Dat0801/jarvis-cli/internal/api"
	"github.com/Dat0801/jarvis-cli/internal/budget"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backendStub answers each dashboard endpoint from a canned body, or
// with a 500 when listed in failing.
func backendStub(t *testing.T, failing map[string]bool) *api.Client {
	t.Helper()

	bodies := map[string]string{
		"/wallets":                 `{"data":[{"id":1,"name":"Cash","balance":"300"},{"id":2,"name":"Bank","balance":"700"}]}`,
		"/expenses":                `[{"id":1,"amount":"50","category":"Food","spent_at":"2024-06-01"}]`,
		"/incomes":                 `[{"id":2,"amount":"1000","source":"Salary","received_at":"2024-06-02"}]`,
		"/categories/tree":         `[{"id":1,"name":"Food","children":[]}]`,
		"/budgets":                 `[{"id":1,"name":"Food","balance":"100","description":"[target=400]"}]`,
		"/stats/income-vs-expenses": `{"months":["May","Jun"],"income":[900,1000],"expenses":[300,50]}`,
		"/notes/reminder-count":    `{"count":2}`,
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failing[r.URL.Path] {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"message":"boom"}`))
			return
		}
		body, ok := bodies[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	client, err := api.NewClient(api.Config{BaseURL: server.URL, Token: "t"})
	require.NoError(t, err)
	return client
}

func TestLoad_AllBranchesHealthy(t *testing.T) {
	client := backendStub(t, nil)

	data, err := Load(context.Background(), client)
	require.NoError(t, err)

	assert.Len(t, data.Wallets, 2)
	assert.Len(t, data.Expenses, 1)
	assert.Len(t, data.Incomes, 1)
	assert.Len(t, data.Budgets, 1)
	require.NotNil(t, data.Stats)
	assert.Equal(t, 2, data.ReminderCount)
}

func TestLoad_FailedBranchesDegradeToEmpty(t *testing.T) {
	client := backendStub(t, map[string]bool{
		"/wallets":                  true,
		"/stats/income-vs-expenses": true,
	})

	data, err := Load(context.Background(), client)
	require.NoError(t, err, "a failed read branch must not fail the load")

	assert.Empty(t, data.Wallets)
	assert.Nil(t, data.Stats)
	// Healthy branches are unaffected.
	assert.Len(t, data.Expenses, 1)
	assert.Len(t, data.Incomes, 1)
}

func TestLoad_CancelledContext(t *testing.T) {
	client := backendStub(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, client)
	assert.Error(t, err)
}

func TestDerive_FullView(t *testing.T) {
	client := backendStub(t, nil)
	data, err := Load(context.Background(), client)
	require.NoError(t, err)

	view := Derive(data)

	assert.True(t, view.TotalBalance.Equal(decimal.NewFromInt(1000)))

	// The merged list is income-first: it carries the later date.
	txns := data.Transactions()
	require.Len(t, txns, 2)
	assert.True(t, txns[0].Amount.Equal(decimal.NewFromInt(1000)))
	assert.True(t, txns[1].Amount.Equal(decimal.NewFromInt(-50)))

	// Backend stats flow into the monthly series untouched.
	assert.Equal(t, []string{"May", "Jun"}, view.MonthlySeries.Labels)

	// The budget target comes from the description tag.
	require.Len(t, view.Budgets, 1)
	assert.True(t, view.Budgets[0].Progress.Limit.Equal(decimal.NewFromInt(400)))
	assert.Equal(t, budget.StateCanSpend, view.Budgets[0].Progress.State)
}

func TestDerive_EmptySnapshot(t *testing.T) {
	client := backendStub(t, map[string]bool{
		"/wallets": true, "/expenses": true, "/incomes": true,
		"/categories/tree": true, "/budgets": true,
		"/stats/income-vs-expenses": true, "/notes/reminder-count": true,
	})
	data, err := Load(context.Background(), client)
	require.NoError(t, err)

	view := Derive(data)
	assert.True(t, view.TotalBalance.IsZero())
	assert.Empty(t, view.RecentDays)

	// Top spending still shows its zero placeholder row.
	require.Len(t, view.TopSpendingMonth, 1)
	assert.True(t, view.TopSpendingMonth[0].Amount.IsZero())

	// The chart degrades to a single locally seeded point.
	assert.Len(t, view.MonthlySeries.Labels, 1)
}
