package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexTime_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     time.Time
		wantZero bool
	}{
		{
			name:  "RFC3339",
			input: `"2024-06-01T10:30:00Z"`,
			want:  time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "bare date",
			input: `"2024-06-01"`,
			want:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "space separated datetime",
			input: `"2024-06-01 10:30:00"`,
			want:  time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			name:     "null",
			input:    `null`,
			wantZero: true,
		},
		{
			name:     "empty string",
			input:    `""`,
			wantZero: true,
		},
		{
			name:     "garbage",
			input:    `"not a date"`,
			wantZero: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ft FlexTime
			require.NoError(t, json.Unmarshal([]byte(tt.input), &ft))
			if tt.wantZero {
				assert.True(t, ft.IsZero())
				return
			}
			assert.True(t, ft.Equal(tt.want), "got %v want %v", ft.Time, tt.want)
		})
	}
}

func TestFlexTime_Or(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	var zero FlexTime
	assert.Equal(t, now, zero.Or(now))

	set := FlexTime{Time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, set.Time, set.Or(now))
}

func TestExpense_AmountDecodesStringsAndNumbers(t *testing.T) {
	var fromString Expense
	require.NoError(t, json.Unmarshal([]byte(`{"amount": "50.25"}`), &fromString))

	var fromNumber Expense
	require.NoError(t, json.Unmarshal([]byte(`{"amount": 50.25}`), &fromNumber))

	assert.True(t, fromString.Amount.Equal(fromNumber.Amount))
	assert.True(t, fromString.Amount.Equal(decimal.RequireFromString("50.25")))
}
