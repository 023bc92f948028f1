package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind classifies a ledger transaction.
type TransactionKind string

const (
	KindDeposit    TransactionKind = "deposit"
	KindWithdrawal TransactionKind = "withdrawal"
)

// Transaction is one row in an account's history, append-only and kept in
// insertion order.
type Transaction struct {
	ID     uuid.UUID
	Amount decimal.Decimal
	Date   time.Time
	Kind   TransactionKind
}
