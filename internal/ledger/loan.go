package ledger

import "github.com/shopspring/decimal"

// Loan tracks a single outstanding loan. An account owns at most one at a
// time; the owning account clears its reference when the loan closes.
type Loan struct {
	remaining decimal.Decimal
	rate      decimal.Decimal
	payments  []decimal.Decimal
}

// newLoan opens a loan for amount. The opening charge adds (1 + rate) as a
// flat amount, not a multiplier.
func newLoan(amount, rate decimal.Decimal) *Loan {
	one := decimal.NewFromInt(1)
	return &Loan{
		remaining: amount.Add(one.Add(rate)),
		rate:      rate,
	}
}

// PayInstallment applies a partial or full repayment. On full repayment the
// remaining due clamps to zero and closed is true. While the loan stays open,
// interest compounds on the remainder after every installment.
func (l *Loan) PayInstallment(amount decimal.Decimal) (remaining decimal.Decimal, closed bool, err error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return l.remaining, false, ErrInvalidAmount
	}

	l.remaining = l.remaining.Sub(amount)
	l.payments = append(l.payments, amount)

	if l.remaining.LessThanOrEqual(decimal.Zero) {
		l.remaining = decimal.Zero
		return l.remaining, true, nil
	}

	one := decimal.NewFromInt(1)
	l.remaining = l.remaining.Mul(one.Add(l.rate))
	return l.remaining, false, nil
}

// RemainingDue returns the amount still owed.
func (l *Loan) RemainingDue() decimal.Decimal { return l.remaining }

// Payments returns a copy of the repayment history in order.
func (l *Loan) Payments() []decimal.Decimal {
	out := make([]decimal.Decimal, len(l.payments))
	copy(out, l.payments)
	return out
}

// Summary is a read-only view of a loan's state.
type Summary struct {
	RemainingDue decimal.Decimal
	Payments     []decimal.Decimal
}

// Summary reports the remaining due and full payment history.
func (l *Loan) Summary() Summary {
	return Summary{RemainingDue: l.remaining, Payments: l.Payments()}
}
