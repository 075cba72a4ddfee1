package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocumentType(t *testing.T) {
	dt, err := ParseDocumentType(" Receipt ")
	require.NoError(t, err)
	assert.Equal(t, TypeReceipt, dt)
	assert.Equal(t, "MLR", dt.Prefix())
	assert.NotEmpty(t, dt.Title())

	_, err = ParseDocumentType("lease")
	assert.True(t, errors.Is(err, ErrUnknownDocumentType))
}

func TestDecodeFieldsReceipt(t *testing.T) {
	f, err := DecodeFields(TypeReceipt, FieldRecord{
		"buyerName":   " <b>ராமன்</b> ",
		"loanAmount":  float64(50000),
		"receiptDate": "01/01/2025",
		"village":     nil,
	})
	require.NoError(t, err)

	receipt, ok := f.(ReceiptFields)
	require.True(t, ok)
	assert.Equal(t, "ராமன்", receipt.BuyerName)
	assert.Equal(t, "50000", receipt.LoanAmount)
	assert.Equal(t, "01/01/2025", receipt.ReceiptDate)
	assert.Empty(t, receipt.Village)
}

func TestDecodeFieldsRejectsUnknownKeys(t *testing.T) {
	_, err := DecodeFields(TypeSale, FieldRecord{"buyerNmae": "x"})
	assert.True(t, errors.Is(err, ErrInvalidFields))
}

func TestDecodeFieldsRejectsNestedValues(t *testing.T) {
	_, err := DecodeFields(TypeSale, FieldRecord{"buyerName": map[string]any{"a": 1}})
	assert.True(t, errors.Is(err, ErrInvalidFields))
}

func TestDecodeFieldsUnknownType(t *testing.T) {
	_, err := DecodeFields(DocumentType("will"), FieldRecord{})
	assert.True(t, errors.Is(err, ErrUnknownDocumentType))
}

func TestCleanValue(t *testing.T) {
	assert.Equal(t, "A & B", CleanValue("A & B"))
	assert.Equal(t, "O'Neil", CleanValue("O'Neil"))
	assert.Equal(t, "", CleanValue("<script>alert(1)</script>"))
	assert.Equal(t, "\u00e9", CleanValue("e\u0301"))
}

func TestValidate(t *testing.T) {
	err := ReceiptFields{}.Validate()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"receiptDate", "buyerName", "loanAmount"}, verr.Missing)

	ok := ReceiptFields{ReceiptDate: "01/01/2025", BuyerName: "ராமன்", LoanAmount: "1"}
	assert.NoError(t, ok.Validate())

	err = ReleaseFields{DeedDate: "01/01/2025"}.Validate()
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"releasorName", "releaseeName"}, verr.Missing)
}

func TestDeriveOverwritesComputedFields(t *testing.T) {
	f := ReceiptFields{LoanAmount: "50000", LoanAmountWords: "junk"}.Derive().(ReceiptFields)
	assert.Equal(t, "ஐம்பது ஆயிரம்", f.LoanAmountWords)

	f = ReceiptFields{LoanAmount: "fifty", LoanAmountWords: "junk"}.Derive().(ReceiptFields)
	assert.Equal(t, "", f.LoanAmountWords)
}

func TestDeriveAgreementBalance(t *testing.T) {
	f := AgreementFields{SaleAmount: "500000", AdvanceAmount: "100000"}.Derive().(AgreementFields)
	assert.Equal(t, "400000", f.BalanceAmount)
	assert.Equal(t, "நான்கு இலட்சம்", f.BalanceAmountWords)
	assert.Equal(t, "ஐந்து இலட்சம்", f.SaleAmountWords)

	f = AgreementFields{SaleAmount: "1000", AdvanceAmount: "5000"}.Derive().(AgreementFields)
	assert.Empty(t, f.BalanceAmount)
	assert.Empty(t, f.BalanceAmountWords)
}

func TestToRecordIsFlat(t *testing.T) {
	record := ToRecord(SaleFields{
		BuyerName:     "ராமன்",
		WitnessFields: WitnessFields{Witness1Name: "முருகன்"},
	})
	assert.Equal(t, "ராமன்", record["buyerName"])
	assert.Equal(t, "முருகன்", record["witness1Name"])
	assert.Contains(t, record.Keys(), "surveyNumber")

	back, err := DecodeFields(TypeSale, record)
	require.NoError(t, err)
	assert.Equal(t, "முருகன்", back.(SaleFields).Witness1Name)
}
