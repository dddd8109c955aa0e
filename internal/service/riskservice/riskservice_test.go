package riskservice

import (
	"testing"

	"github.com/GlebRadaev/loanapp/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	service := New()
	tests := []struct {
		name        string
		loanAmount  domain.LoanAmount
		ltv         domain.LoanToValueRate
		creditScore domain.CreditScore
		expected    domain.Status
	}{
		{name: "Amount too high", loanAmount: 1_500_001, ltv: 60, creditScore: 950, expected: domain.Declined{Reason: ReasonLoanAmountNotAllowed}},
		{name: "Amount too high with perfect score", loanAmount: 1_500_001, ltv: 1, creditScore: 999, expected: domain.Declined{Reason: ReasonLoanAmountNotAllowed}},
		{name: "Amount too low", loanAmount: 99_999, ltv: 59, creditScore: 750, expected: domain.Declined{Reason: ReasonLoanAmountNotAllowed}},
		{name: "Amount too low with perfect score", loanAmount: 99_999, ltv: 1, creditScore: 999, expected: domain.Declined{Reason: ReasonLoanAmountNotAllowed}},

		{name: "Max amount at LTV 60 and score 950", loanAmount: 1_500_000, ltv: 60, creditScore: 950, expected: domain.Approved{}},
		{name: "Max amount at LTV 60 and score 951", loanAmount: 1_500_000, ltv: 60, creditScore: 951, expected: domain.Approved{}},
		{name: "Max amount at LTV 59 and score 950", loanAmount: 1_500_000, ltv: 59, creditScore: 950, expected: domain.Approved{}},
		{name: "One million at LTV 60 and score 950", loanAmount: 1_000_000, ltv: 60, creditScore: 950, expected: domain.Approved{}},
		{name: "One million at LTV 60 and score 951", loanAmount: 1_000_000, ltv: 60, creditScore: 951, expected: domain.Approved{}},
		{name: "One million at LTV 59 and score 950", loanAmount: 1_000_000, ltv: 59, creditScore: 950, expected: domain.Approved{}},

		{name: "Max amount at LTV 61", loanAmount: 1_500_000, ltv: 61, creditScore: 950, expected: domain.Declined{Reason: ReasonHighRisk}},
		{name: "Max amount with score 949", loanAmount: 1_500_000, ltv: 60, creditScore: 949, expected: domain.Declined{Reason: ReasonHighRisk}},
		{name: "Max amount at LTV 61 with score 949", loanAmount: 1_500_000, ltv: 61, creditScore: 949, expected: domain.Declined{Reason: ReasonHighRisk}},
		{name: "One million at LTV 61", loanAmount: 1_000_000, ltv: 61, creditScore: 950, expected: domain.Declined{Reason: ReasonHighRisk}},
		{name: "One million with score 949", loanAmount: 1_000_000, ltv: 60, creditScore: 949, expected: domain.Declined{Reason: ReasonHighRisk}},
		{name: "One million at LTV 61 with perfect score", loanAmount: 1_000_000, ltv: 61, creditScore: 999, expected: domain.Declined{Reason: ReasonHighRisk}},

		{name: "Below one million at LTV 59 and score 750", loanAmount: 999_999, ltv: 59, creditScore: 750, expected: domain.Approved{}},
		{name: "Below one million at LTV 60 and score 800", loanAmount: 999_999, ltv: 60, creditScore: 800, expected: domain.Approved{}},
		{name: "Below one million at LTV 79 and score 800", loanAmount: 999_999, ltv: 79, creditScore: 800, expected: domain.Approved{}},
		{name: "Below one million at LTV 80 and score 900", loanAmount: 999_999, ltv: 80, creditScore: 900, expected: domain.Approved{}},
		{name: "Below one million at LTV 89 and score 900", loanAmount: 999_999, ltv: 89, creditScore: 900, expected: domain.Approved{}},
		{name: "Min amount at LTV 0 and score 750", loanAmount: 100_000, ltv: 0, creditScore: 750, expected: domain.Approved{}},

		{name: "Below one million at LTV 59 and score 749", loanAmount: 999_999, ltv: 59, creditScore: 749, expected: domain.Declined{Reason: ReasonHighRisk}},
		{name: "Below one million at LTV 79 and score 799", loanAmount: 999_999, ltv: 79, creditScore: 799, expected: domain.Declined{Reason: ReasonHighRisk}},
		{name: "Below one million at LTV 89 and score 899", loanAmount: 999_999, ltv: 89, creditScore: 899, expected: domain.Declined{Reason: ReasonHighRisk}},
		{name: "Below one million at LTV 90", loanAmount: 999_999, ltv: 90, creditScore: 999, expected: domain.Declined{Reason: ReasonHighRisk}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := service.Decide(tt.loanAmount, tt.ltv, tt.creditScore)
			assert.Equal(t, tt.expected, status)
		})
	}
}

func TestDecide_Deterministic(t *testing.T) {
	service := New()
	first := service.Decide(500_000, 70, 820)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, service.Decide(500_000, 70, 820))
	}
}
