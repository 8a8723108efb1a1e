// Package ofximport parses OFX/QFX bank exports into entry drafts that
// the import command uploads through the backend API. This is the one
// spot where the client reads financial data from somewhere other than
// the backend.
package ofximport

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/aclindsa/ofxgo"
	"github.com/Dat0801/jarvis-cli/internal/ledger"
	"github.com/shopspring/decimal"
)

// Draft is one parsed bank transaction, ready to be posted as an
// expense or income. Amount is a positive magnitude; Kind carries the
// direction.
type Draft struct {
	Date   time.Time
	Label  string
	Note   string
	Hash   string
	Kind   ledger.Kind
	Amount decimal.Decimal
}

// Parser implements OFX/QFX file parsing.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

var (
	// SGML-style exports leave the closing tag off, so match the bare
	// value too.
	severityRegex = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)\b`)
	openTagRegex  = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// preprocess fixes common formatting issues in real-world OFX files:
// leading whitespace before the header, mixed-case SEVERITY values, and
// SGML-style tags missing their closing bracket.
func (p *Parser) preprocess(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)
	content = openTagRegex.ReplaceAllString(content, "$1>")
	return content
}

// ParseFile parses an OFX/QFX file into entry drafts.
func (p *Parser) ParseFile(_ context.Context, reader io.Reader) ([]Draft, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocess(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var drafts []Draft
	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok && stmt.BankTranList != nil {
			for _, txn := range stmt.BankTranList.Transactions {
				drafts = append(drafts, p.convert(txn))
			}
		}
	}
	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok && stmt.BankTranList != nil {
			for _, txn := range stmt.BankTranList.Transactions {
				drafts = append(drafts, p.convert(txn))
			}
		}
	}

	slog.Debug("Parsed OFX file", "draft_count", len(drafts))
	return drafts, nil
}

// convert maps one OFX transaction to a draft. OFX amounts are negative
// for debits, so the sign picks the entry kind.
func (p *Parser) convert(txn ofxgo.Transaction) Draft {
	amount, _ := txn.TrnAmt.Float64()
	kind := ledger.KindIncome
	if amount < 0 {
		kind = ledger.KindExpense
		amount = -amount
	}

	draft := Draft{
		Date:   txn.DtPosted.Time,
		Label:  labelFor(txn),
		Note:   strings.TrimSpace(string(txn.Memo)),
		Kind:   kind,
		Amount: decimal.NewFromFloat(amount),
	}
	draft.Hash = draft.hash()
	return draft
}

// labelFor picks the cleanest available description for the entry's
// category or source field.
func labelFor(txn ofxgo.Transaction) string {
	if txn.Payee != nil && txn.Payee.Name != "" {
		return strings.TrimSpace(string(txn.Payee.Name))
	}
	name := strings.TrimSpace(string(txn.Name))
	if name == "" {
		name = strings.TrimSpace(string(txn.Memo))
	}
	if name == "" {
		return "Other"
	}
	return name
}

// hash identifies a draft for duplicate suppression across files.
func (d *Draft) hash() string {
	data := fmt.Sprintf("%s:%s:%s:%s",
		d.Date.Format("2006-01-02"),
		d.Amount.StringFixed(2),
		d.Kind,
		d.Label)
	sum := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", sum)
}

// Dedupe drops drafts whose hash was already seen, preserving order.
func Dedupe(drafts []Draft) []Draft {
	seen := make(map[string]bool, len(drafts))
	unique := make([]Draft, 0, len(drafts))
	for _, d := range drafts {
		if seen[d.Hash] {
			continue
		}
		seen[d.Hash] = true
		unique = append(unique, d)
	}
	return unique
}
