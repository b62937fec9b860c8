package models

import "github.com/shopspring/decimal"

// Investment is a single holding: stock, crypto, or fund.
type Investment struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	InvestedAmount decimal.Decimal `json:"investedAmount"`
	CurrentValue   decimal.Decimal `json:"currentValue"`
	ChangePercent  decimal.Decimal `json:"changePercent"`
}

var hundred = decimal.NewFromInt(100)

// ComputeChangePercent returns (current - invested) / invested * 100.
// A zero invested amount yields zero rather than a division error.
func ComputeChangePercent(invested, current decimal.Decimal) decimal.Decimal {
	if invested.IsZero() {
		return decimal.Zero
	}
	return current.Sub(invested).Div(invested).Mul(hundred)
}

// PortfolioTotals returns the summed current value, summed invested amount,
// and the gain (value minus invested) across all holdings.
func PortfolioTotals(investments []Investment) (value, invested, gain decimal.Decimal) {
	value, invested = decimal.Zero, decimal.Zero
	for _, inv := range investments {
		value = value.Add(inv.CurrentValue)
		invested = invested.Add(inv.InvestedAmount)
	}
	return value, invested, value.Sub(invested)
}
