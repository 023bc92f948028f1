package ledger

import "github.com/shopspring/decimal"

// CheckingAccount allows overdrafts down to a floor, charging a flat fee
// whenever a withdrawal leaves the balance negative.
type CheckingAccount struct {
	account
}

// Withdraw debits the balance, applying the overdraft fee when the balance
// would go negative. A withdrawal that would land past the overdraft floor
// after the fee is rejected with no state change. A withdrawal that lands
// exactly on zero falls through both branches and changes nothing.
func (c *CheckingAccount) Withdraw(amount decimal.Decimal) error {
	if c.frozen {
		return ErrAccountFrozen
	}
	if err := c.checkDailyLimit(amount); err != nil {
		return err
	}

	post := c.balance.Sub(amount)

	if post.LessThan(decimal.Zero) {
		postCharge := post.Sub(c.ledger.settings.OverdraftFee)
		if postCharge.LessThan(c.ledger.settings.OverdraftFloor) {
			return ErrExceedsOverdraftLimit
		}
		return c.confirmAndDebit(amount.Add(c.ledger.settings.OverdraftFee))
	}

	if post.GreaterThan(decimal.Zero) {
		return c.confirmAndDebit(amount)
	}

	return nil
}
