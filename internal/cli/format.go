package cli

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount with its currency code, e.g. "120.50 USD".
func FormatMoney(amount decimal.Decimal, currency string) string {
	if currency == "" {
		return amount.StringFixed(2)
	}
	return amount.StringFixed(2) + " " + currency
}

// FormatSignedMoney renders a signed amount tinted by direction and with
// an explicit plus sign on inflows.
func FormatSignedMoney(amount decimal.Decimal, currency string) string {
	if amount.IsNegative() {
		return ExpenseStyle.Render(FormatMoney(amount, currency))
	}
	return IncomeStyle.Render("+" + FormatMoney(amount, currency))
}

// FormatPercent renders a percentage with one decimal place.
func FormatPercent(percent float64) string {
	return fmt.Sprintf("%.1f%%", percent)
}

// ProgressBar renders a fixed-width bar filled to percent, clamped at
// 100. Overspent budgets render the fill in the expense color.
func ProgressBar(percent float64, width int, overspent bool) string {
	if width <= 0 {
		width = 20
	}
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	if overspent {
		return ExpenseStyle.Render(bar)
	}
	return SuccessStyle.Render(bar)
}

// Table renders rows as aligned columns with a styled header.
func Table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	// The header style underlines via a bottom border, so the whole row
	// must be rendered as one block or every cell grows its own border.
	headerCells := make([]string, len(headers))
	for i, h := range headers {
		headerCells[i] = pad(h, widths[i])
	}

	var b strings.Builder
	b.WriteString(TableHeaderStyle.Render(strings.Join(headerCells, "  ")))
	b.WriteString("\n")
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				b.WriteString(pad(cell, widths[i]))
			}
			if i < len(row)-1 {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
