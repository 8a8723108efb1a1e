package model

import "github.com/shopspring/decimal"

// Wallet is a balance-holding account.
type Wallet struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Balance      decimal.Decimal `json:"balance"`
	CurrencyUnit string          `json:"currency_unit"`
	WalletType   string          `json:"wallet_type"`
	Notification bool            `json:"notification"`
}

// TotalBalance sums wallet balances for the dashboard header.
func TotalBalance(wallets []Wallet) decimal.Decimal {
	total := decimal.Zero
	for _, w := range wallets {
		total = total.Add(w.Balance)
	}
	return total
}
