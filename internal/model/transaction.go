package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bank identifies which statement reader produced a transaction.
type Bank string

const (
	BankMBank Bank = "MBANK"
	BankPkoSA Bank = "PKO_SA"
)

// TransactionType is derived from the sign of the amount.
type TransactionType string

const (
	TypeExpense TransactionType = "EXPENSE"
	TypeIncome  TransactionType = "INCOME"
)

// TypeFor returns the transaction type for an amount: negative is an
// expense, everything else (including zero) is income.
func TypeFor(amount decimal.Decimal) TransactionType {
	if amount.IsNegative() {
		return TypeExpense
	}
	return TypeIncome
}

// Transaction is one normalized statement row. A reader constructs it
// exactly once per source row; nothing mutates it afterwards.
type Transaction struct {
	Title       string          `json:"title"`
	Amount      decimal.Decimal `json:"amount"` // negative = expense, positive = income
	Type        TransactionType `json:"type"`
	Category    Category        `json:"category"`
	Account     string          `json:"account,omitempty"` // may be absent
	Date        time.Time       `json:"date"`              // start of day, UTC
	Description string          `json:"description"`       // "|"-joined dialect-specific parts
	Bank        Bank            `json:"bank"`
}
