package models

import "github.com/shopspring/decimal"

// Loan is a tracked debt obligation with a periodic repayment (EMI).
type Loan struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	EMI                 decimal.Decimal `json:"emi"`
	RemainingBalance    decimal.Decimal `json:"remainingBalance"`
	InterestRate        decimal.Decimal `json:"interestRate"`
	TotalDurationMonths int             `json:"totalDurationMonths"`
	PaidMonths          int             `json:"paidMonths"`
}

// Progress returns the repayment progress as a percentage clamped to
// [0, 100]. A zero total duration yields 0.
func (l Loan) Progress() float64 {
	if l.TotalDurationMonths <= 0 {
		return 0
	}
	pct := float64(l.PaidMonths) / float64(l.TotalDurationMonths) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// RemainingMonths returns the periods still to pay, never negative.
func (l Loan) RemainingMonths() int {
	if remaining := l.TotalDurationMonths - l.PaidMonths; remaining > 0 {
		return remaining
	}
	return 0
}

// DebtTotals returns the summed remaining balance and summed periodic
// payment across all loans.
func DebtTotals(loans []Loan) (debt, emi decimal.Decimal) {
	debt, emi = decimal.Zero, decimal.Zero
	for _, l := range loans {
		debt = debt.Add(l.RemainingBalance)
		emi = emi.Add(l.EMI)
	}
	return debt, emi
}
