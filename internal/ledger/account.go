package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tilldesk/tilldesk/internal/model"
)

// Account is the capability set every account kind offers. The withdrawal
// policy differs per kind; everything else is shared.
type Account interface {
	Number() int
	Name() string
	Kind() model.AccountKind
	Balance() decimal.Decimal
	Frozen() bool
	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error
	Freeze()
	Unfreeze() bool
	ApplyForLoan(amount decimal.Decimal) error
	RepayLoan(amount decimal.Decimal) (remaining decimal.Decimal, closed bool, err error)
	ActiveLoan() *Loan
	Transactions() []model.Transaction
}

// account holds the state and behavior common to all account kinds.
type account struct {
	ledger  *Ledger
	number  int
	name    string
	kind    model.AccountKind
	balance decimal.Decimal
	frozen  bool
	loan    *Loan
	history []model.Transaction
}

// Number returns the account number.
func (a *account) Number() int { return a.number }

// Name returns the display name.
func (a *account) Name() string { return a.name }

// Kind returns the account kind.
func (a *account) Kind() model.AccountKind { return a.kind }

// Balance returns the current balance.
func (a *account) Balance() decimal.Decimal { return a.balance }

// Frozen reports whether the account is frozen.
func (a *account) Frozen() bool { return a.frozen }

// Deposit credits the balance and records a deposit transaction.
func (a *account) Deposit(amount decimal.Decimal) error {
	if a.frozen {
		return ErrAccountFrozen
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	a.record(model.KindDeposit, amount)
	return nil
}

// Freeze blocks deposits and withdrawals until Unfreeze is called.
func (a *account) Freeze() { a.frozen = true }

// Unfreeze reactivates the account. It reports false when the account was
// already unfrozen, which is a no-op rather than an error.
func (a *account) Unfreeze() bool {
	if !a.frozen {
		return false
	}
	a.frozen = false
	return true
}

// ApplyForLoan opens a loan and disburses the proceeds to the balance.
// Only one loan may be active at a time.
func (a *account) ApplyForLoan(amount decimal.Decimal) error {
	if amount.GreaterThan(a.ledger.settings.MaxLoan) {
		return ErrLoanLimitExceeded
	}
	if a.loan != nil {
		return ErrLoanAlreadyActive
	}
	a.balance = a.balance.Add(amount)
	a.loan = newLoan(amount, a.ledger.settings.LoanInterestRate)
	return nil
}

// RepayLoan forwards an installment to the active loan and clears the loan
// reference once it is fully repaid.
func (a *account) RepayLoan(amount decimal.Decimal) (decimal.Decimal, bool, error) {
	if a.loan == nil {
		return decimal.Zero, false, ErrNoActiveLoan
	}
	remaining, closed, err := a.loan.PayInstallment(amount)
	if closed {
		a.loan = nil
	}
	return remaining, closed, err
}

// ActiveLoan returns the active loan, or nil.
func (a *account) ActiveLoan() *Loan { return a.loan }

// Transactions returns the history in insertion order.
func (a *account) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(a.history))
	copy(out, a.history)
	return out
}

func (a *account) record(kind model.TransactionKind, amount decimal.Decimal) {
	a.history = append(a.history, model.Transaction{
		ID:     uuid.New(),
		Amount: amount,
		Date:   a.ledger.clock.Today(),
		Kind:   kind,
	})
}

// checkDailyLimit reserves amount against today's shared registry.
func (a *account) checkDailyLimit(amount decimal.Decimal) error {
	if !a.ledger.limits.CheckAndReserve(amount, a.number, a.ledger.clock.Today()) {
		return ErrLimitExceeded
	}
	return nil
}

// confirmAndDebit runs the identity and yes/no confirmation steps, then
// debits amount and records the withdrawal. A "no" answer aborts with
// ErrCancelled and no state change; invalid answers are re-asked.
func (a *account) confirmAndDebit(amount decimal.Decimal) error {
	if !a.ledger.identity.Confirm(a.number) {
		return ErrIdentityMismatch
	}
	for {
		switch a.ledger.decider.Decide("Do you wish to proceed and withdraw from this account?") {
		case AnswerYes:
			a.balance = a.balance.Sub(amount)
			a.record(model.KindWithdrawal, amount)
			return nil
		case AnswerNo:
			return ErrCancelled
		default:
			// re-ask
		}
	}
}

// GeneralAccount applies the default withdrawal policy.
type GeneralAccount struct {
	account
}

// Withdraw debits the balance after the daily-limit, funds, identity, and
// confirmation checks pass.
func (g *GeneralAccount) Withdraw(amount decimal.Decimal) error {
	if g.frozen {
		return ErrAccountFrozen
	}
	if err := g.checkDailyLimit(amount); err != nil {
		return err
	}
	if amount.GreaterThan(g.balance) {
		return ErrInsufficientFunds
	}
	return g.confirmAndDebit(amount)
}
