package model

import "github.com/shopspring/decimal"

// Expense is a single spending entry. Amount is stored as the backend
// sends it; sign normalization happens in the ledger package.
type Expense struct {
	ID        int64           `json:"id"`
	WalletID  int64           `json:"wallet_id"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Note      string          `json:"note"`
	SpentAt   FlexTime        `json:"spent_at"`
	CreatedAt FlexTime        `json:"created_at"`
}

// Income is a single earning entry.
type Income struct {
	ID         int64           `json:"id"`
	WalletID   int64           `json:"wallet_id"`
	Amount     decimal.Decimal `json:"amount"`
	Source     string          `json:"source"`
	Note       string          `json:"note"`
	ReceivedAt FlexTime        `json:"received_at"`
	CreatedAt  FlexTime        `json:"created_at"`
}
