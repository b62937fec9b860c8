// Package models defines client-side projections of ZenMoney backend records.
// The backend owns canonical state; these types only mirror what it returns.
package models

import "github.com/shopspring/decimal"

func init() {
	// The backend expects plain JSON numbers for money fields, matching what
	// the web client sends.
	decimal.MarshalJSONWithoutQuotes = true
}

// AccountType classifies a bank account.
type AccountType string

const (
	AccountChecking AccountType = "checking"
	AccountSavings  AccountType = "savings"
)

// Bank is a linked bank account. Balance is signed: a negative balance is a
// legal overdraft state, not an error.
type Bank struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"account_type"`
	Balance     decimal.Decimal `json:"balance"`
}

// Overdrawn reports whether the account balance is negative.
func (b Bank) Overdrawn() bool {
	return b.Balance.IsNegative()
}

// TotalBalance sums the balances of all accounts.
func TotalBalance(banks []Bank) decimal.Decimal {
	total := decimal.Zero
	for _, b := range banks {
		total = total.Add(b.Balance)
	}
	return total
}
