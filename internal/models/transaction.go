package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the signed kind of a transaction. Amount stays
// non-negative; the sign is implied by the type.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Transaction is a single income or expense record.
type Transaction struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"user_id"`
	CategoryID  int64           `json:"category_id"`
	BankID      int64           `json:"bank_id"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
}

// MonthlyTotals returns the income and expense sums for transactions falling
// in the same month and year as ref.
func MonthlyTotals(txs []Transaction, ref time.Time) (income, expense decimal.Decimal) {
	income, expense = decimal.Zero, decimal.Zero
	for _, tx := range txs {
		if tx.Date.Year() != ref.Year() || tx.Date.Month() != ref.Month() {
			continue
		}
		switch tx.Type {
		case TransactionIncome:
			income = income.Add(tx.Amount)
		case TransactionExpense:
			expense = expense.Add(tx.Amount)
		}
	}
	return income, expense
}
