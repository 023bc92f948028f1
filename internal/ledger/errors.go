// Package ledger implements the account ledger and lending core: balances,
// transaction history, the shared daily withdrawal registry, and loans.
// All state is in-memory for the life of the process.
package ledger

import "errors"

// Domain errors. Every operation reports exactly one of these (or succeeds);
// none of them is fatal and the caller decides whether to re-prompt or retry.
var (
	ErrInvalidAmount              = errors.New("amount must be greater than zero")
	ErrAccountFrozen              = errors.New("account is frozen")
	ErrInsufficientFunds          = errors.New("insufficient funds")
	ErrLimitExceeded              = errors.New("daily withdrawal limit exceeded")
	ErrBelowMinimumBalance        = errors.New("balance would fall below the minimum")
	ErrMonthlyWithdrawalCap       = errors.New("monthly withdrawal cap reached")
	ErrExceedsOverdraftLimit      = errors.New("withdrawal exceeds the overdraft limit")
	ErrBelowMinimumOpeningBalance = errors.New("opening balance below the required minimum")
	ErrBelowOverdraftFloor        = errors.New("opening balance at or below the overdraft floor")
	ErrNoActiveLoan               = errors.New("no active loan")
	ErrLoanAlreadyActive          = errors.New("an active loan already exists")
	ErrLoanLimitExceeded          = errors.New("requested loan exceeds the loan limit")
	ErrUnauthorized               = errors.New("unauthorized")
	ErrInvalidLimit               = errors.New("new daily limit must be greater than the minimum")
	ErrIdentityMismatch           = errors.New("account number does not match")
	ErrCancelled                  = errors.New("transaction cancelled")
	ErrEmptyName                  = errors.New("account name must not be empty")
)
