package budget

import (
	"strings"

	"github.com/Dat0801/jarvis-cli/internal/model"
	"github.com/shopspring/decimal"
)

// State classifies a budget's progress for display styling.
type State string

const (
	// StateOverspent means spending exceeded the limit.
	StateOverspent State = "overspent"
	// StateUsed means most of the limit is gone but not exceeded.
	StateUsed State = "used"
	// StateCanSpend means there is comfortable room left.
	StateCanSpend State = "can-spend"
)

// A budget flips from can-spend to used at this share of its limit.
const usedThreshold = 80.0

// Progress is the derived spending position of one budget.
type Progress struct {
	Limit     decimal.Decimal
	Spent     decimal.Decimal
	Remaining decimal.Decimal
	Overspend decimal.Decimal
	Percent   float64
	State     State
}

// ComputeProgress joins a budget against summed expense magnitudes by
// lower-cased label. The join is exact and case-insensitive; a label with
// no expenses simply shows zero spent.
func ComputeProgress(b model.Budget, spentByLabel map[string]decimal.Decimal) Progress {
	limit := ResolveTarget(b)
	spent := spentByLabel[strings.ToLower(b.Label())]

	progress := Progress{
		Limit:     limit,
		Spent:     spent,
		Remaining: decimal.Zero,
		Overspend: decimal.Zero,
	}

	if spent.GreaterThan(limit) {
		progress.Overspend = spent.Sub(limit)
	} else {
		progress.Remaining = limit.Sub(spent)
	}

	if limit.IsPositive() {
		progress.Percent, _ = spent.Div(limit).Mul(decimal.NewFromInt(100)).Float64()
	} else if spent.IsPositive() {
		progress.Percent = 100
	}

	switch {
	case spent.GreaterThan(limit):
		progress.State = StateOverspent
	case progress.Percent >= usedThreshold:
		progress.State = StateUsed
	default:
		progress.State = StateCanSpend
	}
	return progress
}
