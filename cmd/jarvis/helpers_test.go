package main

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/Dat0801/jarvis-cli/internal/common"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseErrorsCarryUserMessage(t *testing.T) {
	// The friendly text goes to the user; the wrapped error keeps the
	// detail for logs.
	_, err := parseAmount("lots")
	var userErr *common.UserError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, "'lots' is not a valid amount. Use a plain number like 12.50.", userErr.UserMessage)
	assert.Contains(t, userErr.Err.Error(), `invalid amount "lots"`)

	_, err = parseID("abc")
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, "'abc' is not a valid ID.", userErr.UserMessage)

	_, err = parseDate("15/08/2026")
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, "'15/08/2026' is not a valid date. Use YYYY-MM-DD.", userErr.UserMessage)
}

func TestOpenStoreMigratesFreshDatabase(t *testing.T) {
	viper.Set("storage.database", filepath.Join(t.TempDir(), "jarvis.db"))
	defer viper.Set("storage.database", "")

	ctx := context.Background()
	store, err := openStore(ctx)
	require.NoError(t, err)
	defer store.Close()

	// A fresh database must be usable immediately: the schema exists
	// and the token round-trips.
	require.NoError(t, store.SetToken(ctx, "tok-123"))
	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
}

func TestRequireAuthWithoutToken(t *testing.T) {
	viper.Set("storage.database", filepath.Join(t.TempDir(), "jarvis.db"))
	defer viper.Set("storage.database", "")

	ctx := context.Background()
	store, err := openStore(ctx)
	require.NoError(t, err)
	defer store.Close()

	_, err = requireAuth(ctx, store)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotLoggedIn))

	var userErr *common.UserError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, "You are not logged in. Run 'jarvis auth login' first.", userErr.UserMessage)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "integer", input: "42", want: "42"},
		{name: "decimal", input: "12.50", want: "12.5"},
		{name: "negative", input: "-3.25", want: "-3.25"},
		{name: "not a number", input: "lots", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAmount(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)))
		})
	}
}

func TestParseID(t *testing.T) {
	id, err := parseID("17")
	require.NoError(t, err)
	assert.Equal(t, int64(17), id)

	for _, input := range []string{"0", "-1", "abc", ""} {
		_, err := parseID(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParseDate(t *testing.T) {
	date, err := parseDate("2026-08-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), date)

	_, err = parseDate("15/08/2026")
	require.Error(t, err)

	// Empty means now.
	date, err = parseDate("")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), date, time.Minute)
}

func TestEntryListFlagsFilter(t *testing.T) {
	flags := entryListFlags{walletID: 3, from: "2026-01-01", to: "2026-01-31"}

	filter, err := flags.filter()
	require.NoError(t, err)
	assert.Equal(t, int64(3), filter.WalletID)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), filter.From)
	assert.Equal(t, time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), filter.To)

	flags = entryListFlags{from: "bad"}
	_, err = flags.filter()
	require.Error(t, err)
}
