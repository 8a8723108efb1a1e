package model

import "github.com/shopspring/decimal"

// Budget is a category-scoped spending limit. The backend calls the same
// resource "jar" on its older paths; both decode into this struct.
//
// Target may arrive two ways: as the typed field below, or embedded in
// Description as a "[target=NNNN]" tag left over from an older client.
// The budget package resolves the effective limit.
type Budget struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Balance     decimal.Decimal `json:"balance"`
	Target      decimal.Decimal `json:"target"`
	Description string          `json:"description"`
}

// Label is the string a budget is matched and displayed by: its category
// when set, otherwise its name.
func (b Budget) Label() string {
	if b.Category != "" {
		return b.Category
	}
	return b.Name
}
