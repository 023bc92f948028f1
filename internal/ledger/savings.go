package ledger

import (
	"sync"

	"github.com/shopspring/decimal"
)

// savingsShared holds the interest marker and monthly withdrawal counter.
// Both are shared across every savings account opened through the same
// Ledger, not tracked per account. That mirrors the established behavior:
// applying interest for one account advances the marker for all of them.
type savingsShared struct {
	mu            sync.Mutex
	interestMonth int
	counterMonth  int
	withdrawals   int
}

// SavingsAccount enforces a minimum balance floor, accrues monthly interest,
// and caps withdrawals per month.
type SavingsAccount struct {
	account
}

// ApplyInterest grows the balance by the savings rate, at most once per
// distinct calendar month as seen by the shared marker.
func (s *SavingsAccount) ApplyInterest() {
	shared := s.ledger.savings
	shared.mu.Lock()
	defer shared.mu.Unlock()

	month := int(s.ledger.clock.Today().Month())
	if month == shared.interestMonth {
		return
	}
	one := decimal.NewFromInt(1)
	s.balance = s.balance.Mul(one.Add(s.ledger.settings.SavingsInterestRate))
	shared.interestMonth = month
}

// Withdraw debits the balance if the daily limit, the minimum-balance floor,
// the shared monthly cap, the funds check, and both confirmations allow it.
// The monthly counter only advances on a committed debit.
func (s *SavingsAccount) Withdraw(amount decimal.Decimal) error {
	if s.frozen {
		return ErrAccountFrozen
	}
	if err := s.checkDailyLimit(amount); err != nil {
		return err
	}
	if s.balance.Sub(amount).LessThan(s.ledger.settings.SavingsMinimumBalance) {
		return ErrBelowMinimumBalance
	}

	shared := s.ledger.savings
	shared.mu.Lock()
	month := int(s.ledger.clock.Today().Month())
	if shared.counterMonth != month {
		// The marker steps by one per observed change rather than jumping to
		// the current month.
		shared.counterMonth++
		shared.withdrawals = 0
	}
	if shared.counterMonth == month && shared.withdrawals >= s.ledger.settings.MonthlyWithdrawalCap {
		shared.mu.Unlock()
		return ErrMonthlyWithdrawalCap
	}
	shared.mu.Unlock()

	if amount.GreaterThan(s.balance) {
		return ErrInsufficientFunds
	}
	if err := s.confirmAndDebit(amount); err != nil {
		return err
	}

	shared.mu.Lock()
	shared.withdrawals++
	shared.mu.Unlock()
	return nil
}
