package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Period is a time-bucket granularity for the transactions view.
type Period string

const (
	// PeriodWeek buckets by ISO 8601 week of year.
	PeriodWeek Period = "week"
	// PeriodMonth buckets by calendar month.
	PeriodMonth Period = "month"
	// PeriodQuarter buckets by calendar quarter.
	PeriodQuarter Period = "quarter"
	// PeriodYear buckets by calendar year.
	PeriodYear Period = "year"
)

// DayLabel renders a date for the grouped list: TODAY, YESTERDAY, or an
// uppercase "MONTH DAY" like "JUN 1".
func DayLabel(date, now time.Time) string {
	switch {
	case sameDay(date, now):
		return "TODAY"
	case sameDay(date, now.AddDate(0, 0, -1)):
		return "YESTERDAY"
	default:
		return strings.ToUpper(date.Format("Jan 2"))
	}
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// DayGroup is a run of same-day transactions under one label.
type DayGroup struct {
	Label        string
	Transactions []Transaction
}

// GroupByDay splits an already-sorted transaction list into labeled
// day groups, preserving order.
func GroupByDay(txns []Transaction, now time.Time) []DayGroup {
	var groups []DayGroup
	for _, txn := range txns {
		label := DayLabel(txn.Date, now)
		if len(groups) == 0 || groups[len(groups)-1].Label != label {
			groups = append(groups, DayGroup{Label: label})
		}
		last := len(groups) - 1
		groups[last].Transactions = append(groups[last].Transactions, txn)
	}
	return groups
}

// PeriodKey returns the bucket key a date falls into for the given
// granularity. Week keys use ISO 8601 week numbering in UTC, so the last
// days of December can land in week 1 of the following ISO year.
func PeriodKey(date time.Time, period Period) string {
	switch period {
	case PeriodWeek:
		year, week := date.UTC().ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case PeriodQuarter:
		quarter := (int(date.Month())-1)/3 + 1
		return fmt.Sprintf("%04d-Q%d", date.Year(), quarter)
	case PeriodYear:
		return date.Format("2006")
	default:
		return date.Format("2006-01")
	}
}

// Filter returns the transactions whose date falls into the given bucket.
func Filter(txns []Transaction, period Period, key string) []Transaction {
	filtered := make([]Transaction, 0, len(txns))
	for _, txn := range txns {
		if PeriodKey(txn.Date, period) == key {
			filtered = append(filtered, txn)
		}
	}
	return filtered
}

// Keys returns the distinct bucket keys present in txns, in list order.
// With a date-sorted input that yields newest-first tabs.
func Keys(txns []Transaction, period Period) []string {
	var keys []string
	seen := make(map[string]bool)
	for _, txn := range txns {
		key := PeriodKey(txn.Date, period)
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	return keys
}

// Totals are the summary numbers for one bucket of transactions.
type Totals struct {
	Inflow  decimal.Decimal
	Outflow decimal.Decimal
	Balance decimal.Decimal
}

// Sum computes inflow, outflow, and balance over a transaction set.
// Outflow is reported as a positive magnitude.
func Sum(txns []Transaction) Totals {
	inflow, outflow := decimal.Zero, decimal.Zero
	for _, txn := range txns {
		if txn.Amount.IsNegative() {
			outflow = outflow.Add(txn.Amount.Abs())
		} else {
			inflow = inflow.Add(txn.Amount)
		}
	}
	return Totals{
		Inflow:  inflow,
		Outflow: outflow,
		Balance: inflow.Sub(outflow),
	}
}
