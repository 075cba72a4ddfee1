package model

import (
	"strconv"

	"github.com/pathiram/backend/internal/pkg/numwords"
)

// Fields is the typed field record of one document type.
type Fields interface {
	DocumentType() DocumentType
	// Validate reports missing required fields as *ValidationError.
	Validate() error
	// Derive returns a copy with every computed field recomputed from its source.
	Derive() Fields
	// PartyLabels returns the two party names used in headers and search.
	PartyLabels() (string, string)
}

// PropertyFields describes the scheduled property. Shared by all types.
type PropertyFields struct {
	State               string `json:"state"`
	District            string `json:"district"`
	Taluk               string `json:"taluk"`
	Village             string `json:"village"`
	SubRegistrarOffice  string `json:"subRegistrarOffice"`
	SurveyNumber        string `json:"surveyNumber"`
	SubDivision         string `json:"subDivision"`
	Extent              string `json:"extent"`
	EastBoundary        string `json:"eastBoundary"`
	WestBoundary        string `json:"westBoundary"`
	NorthBoundary       string `json:"northBoundary"`
	SouthBoundary       string `json:"southBoundary"`
	PropertyDescription string `json:"propertyDescription"`
}

type WitnessFields struct {
	Witness1Name         string `json:"witness1Name"`
	Witness1RelationName string `json:"witness1RelationName"`
	Witness1Address      string `json:"witness1Address"`
	Witness2Name         string `json:"witness2Name"`
	Witness2RelationName string `json:"witness2RelationName"`
	Witness2Address      string `json:"witness2Address"`
}

type TypistFields struct {
	TypistName   string `json:"typistName"`
	TypistOffice string `json:"typistOffice"`
}

// ReceiptFields is a mortgage loan receipt: the mortgagee (buyer) acknowledges
// repayment by the mortgagor (seller) of the loan secured by a prior deed.
type ReceiptFields struct {
	ReceiptDate  string `json:"receiptDate"`
	ReceiptPlace string `json:"receiptPlace"`

	BuyerName         string `json:"buyerName"`
	BuyerRelationType string `json:"buyerRelationType"`
	BuyerRelationName string `json:"buyerRelationName"`
	BuyerAge          string `json:"buyerAge"`
	BuyerAddress      string `json:"buyerAddress"`

	SellerName         string `json:"sellerName"`
	SellerRelationType string `json:"sellerRelationType"`
	SellerRelationName string `json:"sellerRelationName"`
	SellerAge          string `json:"sellerAge"`
	SellerAddress      string `json:"sellerAddress"`

	PriorDocNumber string `json:"priorDocNumber"`
	PriorDocYear   string `json:"priorDocYear"`
	PriorDocDate   string `json:"priorDocDate"`
	PriorDocOffice string `json:"priorDocOffice"`

	LoanAmount      string `json:"loanAmount"`
	LoanAmountWords string `json:"loanAmountWords"`
	SettlementDate  string `json:"settlementDate"`
	PaymentMode     string `json:"paymentMode"`

	PropertyFields
	WitnessFields
	TypistFields
}

func (ReceiptFields) DocumentType() DocumentType { return TypeReceipt }

func (f ReceiptFields) Validate() error {
	return requireFields(
		"receiptDate", f.ReceiptDate,
		"buyerName", f.BuyerName,
		"loanAmount", f.LoanAmount,
	)
}

func (f ReceiptFields) Derive() Fields {
	f.LoanAmountWords = numwords.FromString(f.LoanAmount)
	return f
}

func (f ReceiptFields) PartyLabels() (string, string) { return f.BuyerName, f.SellerName }

// AgreementFields is a sale agreement between seller and buyer with an
// advance paid now and the balance due within the agreed period.
type AgreementFields struct {
	AgreementDate  string `json:"agreementDate"`
	AgreementPlace string `json:"agreementPlace"`

	SellerName         string `json:"sellerName"`
	SellerRelationType string `json:"sellerRelationType"`
	SellerRelationName string `json:"sellerRelationName"`
	SellerAge          string `json:"sellerAge"`
	SellerAddress      string `json:"sellerAddress"`

	BuyerName         string `json:"buyerName"`
	BuyerRelationType string `json:"buyerRelationType"`
	BuyerRelationName string `json:"buyerRelationName"`
	BuyerAge          string `json:"buyerAge"`
	BuyerAddress      string `json:"buyerAddress"`

	PriorDocNumber string `json:"priorDocNumber"`
	PriorDocYear   string `json:"priorDocYear"`
	PriorDocOffice string `json:"priorDocOffice"`

	SaleAmount         string `json:"saleAmount"`
	SaleAmountWords    string `json:"saleAmountWords"`
	AdvanceAmount      string `json:"advanceAmount"`
	AdvanceAmountWords string `json:"advanceAmountWords"`
	AdvanceDate        string `json:"advanceDate"`
	BalanceAmount      string `json:"balanceAmount"`
	BalanceAmountWords string `json:"balanceAmountWords"`
	AgreementPeriod    string `json:"agreementPeriod"` // months

	PropertyFields
	WitnessFields
	TypistFields
}

func (AgreementFields) DocumentType() DocumentType { return TypeAgreement }

func (f AgreementFields) Validate() error {
	return requireFields(
		"agreementDate", f.AgreementDate,
		"sellerName", f.SellerName,
		"buyerName", f.BuyerName,
		"saleAmount", f.SaleAmount,
	)
}

func (f AgreementFields) Derive() Fields {
	f.SaleAmountWords = numwords.FromString(f.SaleAmount)
	f.AdvanceAmountWords = numwords.FromString(f.AdvanceAmount)
	f.BalanceAmount = balance(f.SaleAmount, f.AdvanceAmount)
	f.BalanceAmountWords = numwords.FromString(f.BalanceAmount)
	return f
}

func (f AgreementFields) PartyLabels() (string, string) { return f.SellerName, f.BuyerName }

// ReleaseFields is a partition release deed: the releasor gives up a share in
// family property in favour of the releasee.
type ReleaseFields struct {
	DeedDate  string `json:"deedDate"`
	DeedPlace string `json:"deedPlace"`

	ReleasorName         string `json:"releasorName"`
	ReleasorRelationType string `json:"releasorRelationType"`
	ReleasorRelationName string `json:"releasorRelationName"`
	ReleasorAge          string `json:"releasorAge"`
	ReleasorAddress      string `json:"releasorAddress"`

	ReleaseeName         string `json:"releaseeName"`
	ReleaseeRelationType string `json:"releaseeRelationType"`
	ReleaseeRelationName string `json:"releaseeRelationName"`
	ReleaseeAge          string `json:"releaseeAge"`
	ReleaseeAddress      string `json:"releaseeAddress"`

	FamilyRelation string `json:"familyRelation"` // releasee's relation to the releasor
	AncestorName   string `json:"ancestorName"`

	PriorDocNumber string `json:"priorDocNumber"`
	PriorDocYear   string `json:"priorDocYear"`
	PriorDocOffice string `json:"priorDocOffice"`

	ConsiderationAmount      string `json:"considerationAmount"`
	ConsiderationAmountWords string `json:"considerationAmountWords"`

	PropertyFields
	WitnessFields
	TypistFields
}

func (ReleaseFields) DocumentType() DocumentType { return TypeRelease }

func (f ReleaseFields) Validate() error {
	return requireFields(
		"deedDate", f.DeedDate,
		"releasorName", f.ReleasorName,
		"releaseeName", f.ReleaseeName,
	)
}

func (f ReleaseFields) Derive() Fields {
	f.ConsiderationAmountWords = numwords.FromString(f.ConsiderationAmount)
	return f
}

func (f ReleaseFields) PartyLabels() (string, string) { return f.ReleasorName, f.ReleaseeName }

// SaleFields is an absolute sale deed.
type SaleFields struct {
	DeedDate  string `json:"deedDate"`
	DeedPlace string `json:"deedPlace"`

	SellerName         string `json:"sellerName"`
	SellerRelationType string `json:"sellerRelationType"`
	SellerRelationName string `json:"sellerRelationName"`
	SellerAge          string `json:"sellerAge"`
	SellerAddress      string `json:"sellerAddress"`

	BuyerName         string `json:"buyerName"`
	BuyerRelationType string `json:"buyerRelationType"`
	BuyerRelationName string `json:"buyerRelationName"`
	BuyerAge          string `json:"buyerAge"`
	BuyerAddress      string `json:"buyerAddress"`

	PriorDocNumber string `json:"priorDocNumber"`
	PriorDocYear   string `json:"priorDocYear"`
	PriorDocOffice string `json:"priorDocOffice"`

	SaleAmount      string `json:"saleAmount"`
	SaleAmountWords string `json:"saleAmountWords"`
	PaymentMode     string `json:"paymentMode"`

	PropertyFields
	WitnessFields
	TypistFields
}

func (SaleFields) DocumentType() DocumentType { return TypeSale }

func (f SaleFields) Validate() error {
	return requireFields(
		"deedDate", f.DeedDate,
		"sellerName", f.SellerName,
		"buyerName", f.BuyerName,
		"saleAmount", f.SaleAmount,
	)
}

func (f SaleFields) Derive() Fields {
	f.SaleAmountWords = numwords.FromString(f.SaleAmount)
	return f
}

func (f SaleFields) PartyLabels() (string, string) { return f.SellerName, f.BuyerName }

// balance is sale minus advance, or "" when either is not a number or the
// advance exceeds the sale amount.
func balance(sale, advance string) string {
	s, ok := numwords.ParseAmount(sale)
	if !ok {
		return ""
	}
	a, ok := numwords.ParseAmount(advance)
	if !ok || a > s {
		return ""
	}
	return strconv.FormatInt(s-a, 10)
}
