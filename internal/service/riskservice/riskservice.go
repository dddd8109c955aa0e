package riskservice

import (
	"github.com/GlebRadaev/loanapp/internal/domain"
)

const (
	minLoanAmount domain.LoanAmount = 100_000
	maxLoanAmount domain.LoanAmount = 1_500_000

	largeLoanAmount domain.LoanAmount = 1_000_000
)

const (
	ReasonLoanAmountNotAllowed = "Loan amount requested is not allowed."
	ReasonHighRisk             = "LTV is too high and/or Credit Score is too low for the Loan amount requested."
)

// tier is a risk bucket: the first tier whose predicate matches sets the minimum
// credit score needed for approval.
type tier struct {
	matches        func(domain.LoanAmount, domain.LoanToValueRate) bool
	minCreditScore domain.CreditScore
}

var tiers = []tier{
	{
		matches: func(a domain.LoanAmount, ltv domain.LoanToValueRate) bool {
			return a >= largeLoanAmount && ltv <= 60
		},
		minCreditScore: 950,
	},
	{
		matches: func(a domain.LoanAmount, ltv domain.LoanToValueRate) bool {
			return a < largeLoanAmount && ltv < 60
		},
		minCreditScore: 750,
	},
	{
		matches: func(a domain.LoanAmount, ltv domain.LoanToValueRate) bool {
			return a < largeLoanAmount && ltv < 80
		},
		minCreditScore: 800,
	},
	{
		matches: func(a domain.LoanAmount, ltv domain.LoanToValueRate) bool {
			return a < largeLoanAmount && ltv < 90
		},
		minCreditScore: 900,
	},
}

type Service struct{}

func New() *Service {
	return &Service{}
}

func (s *Service) Decide(loanAmount domain.LoanAmount, ltv domain.LoanToValueRate, creditScore domain.CreditScore) domain.Status {
	if loanAmount < minLoanAmount || loanAmount > maxLoanAmount {
		return domain.Declined{Reason: ReasonLoanAmountNotAllowed}
	}
	if isHighRisk(loanAmount, ltv, creditScore) {
		return domain.Declined{Reason: ReasonHighRisk}
	}
	return domain.Approved{}
}

func isHighRisk(loanAmount domain.LoanAmount, ltv domain.LoanToValueRate, creditScore domain.CreditScore) bool {
	for _, t := range tiers {
		if t.matches(loanAmount, ltv) {
			return creditScore < t.minCreditScore
		}
	}
	return true
}
