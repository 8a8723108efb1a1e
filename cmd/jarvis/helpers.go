package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Dat0801/jarvis-cli/internal/api"
	"github.com/Dat0801/jarvis-cli/internal/cli"
	"github.com/Dat0801/jarvis-cli/internal/common"
	"github.com/Dat0801/jarvis-cli/internal/storage"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// openStore opens the local settings database and brings its schema up
// to date. Callers own the Close.
func openStore(ctx context.Context) (*storage.Store, error) {
	dbPath := viper.GetString("storage.database")

	store, err := storage.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// newClient builds an API client carrying the stored bearer token.
// Commands that require authentication should check the token is
// non-empty via requireAuth instead of calling this directly.
func newClient(ctx context.Context, store *storage.Store) (*api.Client, error) {
	token, err := store.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read stored token: %w", err)
	}

	client, err := api.NewClient(api.Config{
		BaseURL: viper.GetString("api.base_url"),
		Token:   token,
	})
	if err != nil {
		return nil, err
	}

	return client, nil
}

// requireAuth builds an authenticated client, failing with a friendly
// message when no token has been stored yet.
func requireAuth(ctx context.Context, store *storage.Store) (*api.Client, error) {
	token, err := store.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read stored token: %w", err)
	}
	if token == "" {
		return nil, common.NewUserError(
			"You are not logged in. Run 'jarvis auth login' first.",
			common.ErrNotLoggedIn)
	}

	client, err := api.NewClient(api.Config{
		BaseURL: viper.GetString("api.base_url"),
		Token:   token,
	})
	if err != nil {
		return nil, err
	}

	return client, nil
}

// writeError prints an error the way users should see it: the backend's
// own message when we have one, a friendly override when a UserError
// carries one, and the raw error otherwise.
func writeError(err error) {
	var userErr *common.UserError
	if errors.As(err, &userErr) {
		fmt.Fprintln(os.Stderr, cli.FormatError(userErr.UserMessage))
		return
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		fmt.Fprintln(os.Stderr, cli.FormatError(apiErr.Message))
		return
	}

	fmt.Fprintln(os.Stderr, cli.FormatError(err.Error()))
}

// parseAmount parses a user-supplied money amount.
func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, common.NewUserError(
			fmt.Sprintf("'%s' is not a valid amount. Use a plain number like 12.50.", s),
			fmt.Errorf("invalid amount %q: %w", s, err))
	}

	return amount, nil
}

// parseID parses a positive integer resource ID from a command argument.
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, common.NewUserError(
			fmt.Sprintf("'%s' is not a valid ID.", s),
			fmt.Errorf("invalid id %q", s))
	}

	return id, nil
}

// parseDate parses a YYYY-MM-DD date from a flag, defaulting to now
// when empty.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}

	date, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, common.NewUserError(
			fmt.Sprintf("'%s' is not a valid date. Use YYYY-MM-DD.", s),
			fmt.Errorf("invalid date %q: %w", s, err))
	}

	return date, nil
}

// currencyUnit returns the preferred display currency.
func currencyUnit(ctx context.Context, store *storage.Store) string {
	prefs, err := store.Preferences(ctx)
	if err != nil {
		return "USD"
	}

	return prefs.Currency
}
