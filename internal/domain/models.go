package domain

import (
	"strings"
	"time"
)

type (
	LoanAmount      int
	AssetValue      int
	CreditScore     int
	LoanToValueRate int
)

const (
	minCreditScore CreditScore = 1
	maxCreditScore CreditScore = 999
)

type LoanApplicationRequest struct {
	LoanAmount  LoanAmount
	AssetValue  AssetValue
	CreditScore CreditScore
}

// NewLoanApplicationRequest builds a request from wire values. Amounts are
// bounded to 32 bits and the credit score to 16 bits.
func NewLoanApplicationRequest(loanAmount, assetValue int32, creditScore int16) LoanApplicationRequest {
	return LoanApplicationRequest{
		LoanAmount:  LoanAmount(loanAmount),
		AssetValue:  AssetValue(assetValue),
		CreditScore: CreditScore(creditScore),
	}
}

func (r LoanApplicationRequest) IsValid() bool {
	return r.LoanAmount > 0 &&
		r.AssetValue > 0 &&
		r.CreditScore >= minCreditScore && r.CreditScore <= maxCreditScore
}

const (
	// StatusApproved and StatusDeclined are the canonical labels of Status.
	StatusApproved = "Approved"
	StatusDeclined = "Declined"
)

// Status is either Approved or Declined.
type Status interface {
	String() string
	isStatus()
}

type Approved struct{}

func (Approved) String() string { return StatusApproved }
func (Approved) isStatus()      {}

type Declined struct {
	Reason string
}

func (Declined) String() string { return StatusDeclined }
func (Declined) isStatus()      {}

// StatusLabelEqual reports whether two status labels match ignoring case.
func StatusLabelEqual(a, b string) bool {
	return strings.EqualFold(a, b)
}

// Response is either Processed or UnableToProcess.
type Response interface {
	isResponse()
}

type Processed struct {
	LoanAmount      LoanAmount
	AssetValue      AssetValue
	CreditScore     CreditScore
	LoanToValueRate LoanToValueRate
	Status          Status
}

func (Processed) isResponse() {}

type UnableToProcess struct {
	Reason string
}

func (UnableToProcess) isResponse() {}

type Record struct {
	ID              string
	LoanAmount      LoanAmount
	AssetValue      AssetValue
	CreditScore     CreditScore
	LoanToValueRate LoanToValueRate
	Status          Status
	CreatedAt       time.Time
}

type StatusSummary struct {
	Status string
	Count  int
}

type MetricsSnapshot struct {
	Summary                []StatusSummary
	ApprovedLoanTotalValue int
	// MeanLoanToValueRate is nil while no application has been stored.
	MeanLoanToValueRate *int
}
