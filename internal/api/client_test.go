package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Dat0801/jarvis-cli/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL, Token: "test-token"})
	require.NoError(t, err)
	return client
}

func TestDecodeList_AllShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "bare array", body: `[{"id":1},{"id":2}]`, want: 2},
		{name: "data envelope", body: `{"data":[{"id":1}]}`, want: 1},
		{name: "empty envelope", body: `{"data":[]}`, want: 0},
		{name: "null data", body: `{"data":null}`, want: 0},
		{name: "null body", body: `null`, want: 0},
		{name: "empty body", body: ``, want: 0},
		{name: "unexpected object", body: `{"message":"ok"}`, want: 0},
		{name: "unexpected scalar", body: `42`, want: 0},
		{name: "malformed json", body: `{"data":[`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := decodeList[model.Wallet]([]byte(tt.body))
			require.NotNil(t, items, "decodeList must always return a slice")
			assert.Len(t, items, tt.want)
		})
	}
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := client.ListWallets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
}

func TestClient_ListWallets_Envelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"id":1,"name":"Cash","balance":"120.50","currency_unit":"USD"}]}`))
	})

	wallets, err := client.ListWallets(context.Background())
	require.NoError(t, err)
	require.Len(t, wallets, 1)
	assert.Equal(t, "Cash", wallets[0].Name)
	assert.Equal(t, "120.5", wallets[0].Balance.String())
}

func TestClient_ErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{
			name:    "message field",
			status:  http.StatusUnprocessableEntity,
			body:    `{"message":"amount must be positive"}`,
			wantMsg: "amount must be positive",
		},
		{
			name:    "error field",
			status:  http.StatusBadRequest,
			body:    `{"error":"invalid wallet"}`,
			wantMsg: "invalid wallet",
		},
		{
			name:    "unparseable body",
			status:  http.StatusInternalServerError,
			body:    `<html>boom</html>`,
			wantMsg: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.GetWallet(context.Background(), 1)
			require.Error(t, err)

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
		})
	}
}

func TestIsAuthError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"unauthenticated"}`))
	})

	_, err := client.Profile(context.Background())
	require.Error(t, err)
	assert.True(t, IsAuthError(err))

	_, err = NewClient(Config{})
	assert.False(t, IsAuthError(err))
}

func TestClient_SingleResourceEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"id":7,"name":"Groceries","balance":200}}`))
	})

	budget, err := client.Budgets().Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), budget.ID)
	assert.Equal(t, "Groceries", budget.Name)
}

func TestClient_ReminderCount(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/notes/reminder-count", r.URL.Path)
		_, _ = w.Write([]byte(`{"count":3}`))
	})

	count, err := client.ReminderCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestClient_EntryFilterQuery(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := client.ListExpenses(context.Background(), EntryFilter{WalletID: 4})
	require.NoError(t, err)
	assert.Equal(t, "wallet_id=4", gotQuery)
}
