package ofximport

import (
	"context"
	"strings"
	"testing"

	"github.com/Dat0801/jarvis-cli/internal/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBankOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>USD
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>987654321
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20240301000000[0:GMT]
<DTEND>20240315000000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240310120000[0:GMT]
<TRNAMT>-42.50
<FITID>TXN001
<NAME>COFFEE SHOP
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20240314120000[0:GMT]
<TRNAMT>1500.00
<FITID>TXN002
<NAME>PAYROLL DEPOSIT
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>2000.00
<DTASOF>20240315000000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

func TestParseFile_BankStatement(t *testing.T) {
	parser := NewParser()
	drafts, err := parser.ParseFile(context.Background(), strings.NewReader(sampleBankOFX))
	require.NoError(t, err)
	require.Len(t, drafts, 2)

	debit := drafts[0]
	assert.Equal(t, ledger.KindExpense, debit.Kind)
	assert.True(t, debit.Amount.Equal(decimal.RequireFromString("42.5")))
	assert.Equal(t, "COFFEE SHOP", debit.Label)
	assert.Equal(t, 2024, debit.Date.Year())
	assert.NotEmpty(t, debit.Hash)

	credit := drafts[1]
	assert.Equal(t, ledger.KindIncome, credit.Kind)
	assert.True(t, credit.Amount.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, "PAYROLL DEPOSIT", credit.Label)
}

func TestParseFile_PreprocessesSloppyFiles(t *testing.T) {
	// Leading blank lines and mixed-case SEVERITY show up in real bank
	// exports; the preprocessor must fix both.
	sloppy := "\n\n  " + strings.ReplaceAll(sampleBankOFX, "<SEVERITY>INFO", "<SEVERITY>Info")

	parser := NewParser()
	drafts, err := parser.ParseFile(context.Background(), strings.NewReader(sloppy))
	require.NoError(t, err)
	assert.Len(t, drafts, 2)
}

func TestPreprocessSeverity(t *testing.T) {
	parser := NewParser()

	// SGML exports carry no closing tag; XML-flavored ones do. Both
	// mixed-case forms must be normalized.
	assert.Equal(t, "<SEVERITY>INFO", parser.preprocess("<SEVERITY>Info"))
	assert.Equal(t, "<SEVERITY>INFO</SEVERITY>", parser.preprocess("<SEVERITY>Info</SEVERITY>"))
	assert.Equal(t, "<SEVERITY>ERROR", parser.preprocess("<SEVERITY>error"))
}

func TestParseFile_Garbage(t *testing.T) {
	parser := NewParser()
	_, err := parser.ParseFile(context.Background(), strings.NewReader("not ofx at all"))
	assert.Error(t, err)
}

func TestDedupe(t *testing.T) {
	parser := NewParser()
	first, err := parser.ParseFile(context.Background(), strings.NewReader(sampleBankOFX))
	require.NoError(t, err)
	second, err := parser.ParseFile(context.Background(), strings.NewReader(sampleBankOFX))
	require.NoError(t, err)

	unique := Dedupe(append(first, second...))
	assert.Len(t, unique, 2)
}
