// Package budget derives spending limits and progress for budget views.
// The backend does not model targets first-class everywhere, so the
// effective limit is resolved through a fallback chain over several
// places older clients stashed it.
package budget

import (
	"regexp"
	"strings"

	"github.com/Dat0801/jarvis-cli/internal/model"
	"github.com/shopspring/decimal"
)

// targetTag matches the "[target=NNNN]" tag an older client embedded in
// budget descriptions. Kept as a compatibility shim.
var targetTag = regexp.MustCompile(`\[target=(\d+(?:\.\d+)?)\]`)

// nameOverride pairs a name substring with a default limit. Evaluated in
// order, first match wins.
type nameOverride struct {
	substring string
	limit     decimal.Decimal
}

var nameOverrides = []nameOverride{
	{substring: "emergency", limit: decimal.NewFromInt(10000)},
	{substring: "car", limit: decimal.NewFromInt(45000)},
	{substring: "trip", limit: decimal.NewFromInt(5000)},
}

// ResolveTarget returns a budget's effective spending limit. Precedence,
// strict: the description tag, then the name-substring overrides, then
// the typed target field, then the current balance as a last resort.
func ResolveTarget(b model.Budget) decimal.Decimal {
	if tagged, ok := taggedTarget(b.Description); ok {
		return tagged
	}

	name := strings.ToLower(b.Name)
	for _, override := range nameOverrides {
		if strings.Contains(name, override.substring) {
			return override.limit
		}
	}

	if b.Target.IsPositive() {
		return b.Target
	}
	return b.Balance
}

func taggedTarget(description string) (decimal.Decimal, bool) {
	match := targetTag.FindStringSubmatch(description)
	if match == nil {
		return decimal.Zero, false
	}
	value, err := decimal.NewFromString(match[1])
	if err != nil {
		return decimal.Zero, false
	}
	return value, true
}

// StripTargetTag removes the embedded tag from a description for display.
func StripTargetTag(description string) string {
	return strings.TrimSpace(targetTag.ReplaceAllString(description, ""))
}
