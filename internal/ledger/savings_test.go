package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSavings_MinimumOpeningBalance(t *testing.T) {
	led := newTestLedger(&fakeClock{now: date(2025, 1, 10)}, identityStub(true), answerYes())

	_, err := led.OpenSavings("Bob", dec("20"))
	require.ErrorIs(t, err, ErrBelowMinimumOpeningBalance)

	acct, err := led.OpenSavings("Bob", dec("25"))
	require.NoError(t, err)
	assert.True(t, dec("25").Equal(acct.Balance()))
}

func TestSavingsApplyInterest_OncePerMonth(t *testing.T) {
	clock := &fakeClock{now: date(2025, 5, 10)}
	led := newTestLedger(clock, identityStub(true), answerYes())
	acct, err := led.OpenSavings("Bob", dec("100"))
	require.NoError(t, err)

	acct.ApplyInterest()
	assert.True(t, dec("101").Equal(acct.Balance()))

	acct.ApplyInterest()
	assert.True(t, dec("101").Equal(acct.Balance()), "same month applies only once")

	clock.now = date(2025, 6, 1)
	acct.ApplyInterest()
	assert.True(t, dec("102.01").Equal(acct.Balance()))
}

func TestSavingsApplyInterest_MarkerIsSharedAcrossAccounts(t *testing.T) {
	clock := &fakeClock{now: date(2025, 5, 10)}
	led := newTestLedger(clock, identityStub(true), answerYes())

	first, err := led.OpenSavings("Bob", dec("100"))
	require.NoError(t, err)
	second, err := led.OpenSavings("Cara", dec("100"))
	require.NoError(t, err)

	first.ApplyInterest()
	second.ApplyInterest()

	assert.True(t, dec("101").Equal(first.Balance()))
	// One marker serves every savings account, so the second account misses
	// out for the month.
	assert.True(t, dec("100").Equal(second.Balance()))
}

func TestSavingsWithdraw_MinimumBalanceFloor(t *testing.T) {
	led := newTestLedger(&fakeClock{now: date(2025, 1, 10)}, identityStub(true), answerYes())
	acct, err := led.OpenSavings("Bob", dec("100"))
	require.NoError(t, err)

	require.ErrorIs(t, acct.Withdraw(dec("80")), ErrBelowMinimumBalance)
	assert.True(t, dec("100").Equal(acct.Balance()))
	assert.Empty(t, acct.Transactions())

	require.NoError(t, acct.Withdraw(dec("75")), "landing exactly on the floor is allowed")
	assert.True(t, dec("25").Equal(acct.Balance()))
}

func TestSavingsWithdraw_MonthlyCap(t *testing.T) {
	// January makes the stepped month marker line up with the calendar
	// month on the first withdrawal, so the cap is enforceable.
	led := newTestLedger(&fakeClock{now: date(2025, 1, 10)}, identityStub(true), answerYes())
	acct, err := led.OpenSavings("Bob", dec("1000"))
	require.NoError(t, err)

	for i := 0; i < 6; i++ {
		require.NoError(t, acct.Withdraw(dec("10")), "withdrawal %d", i+1)
	}
	require.ErrorIs(t, acct.Withdraw(dec("10")), ErrMonthlyWithdrawalCap)
	assert.True(t, dec("940").Equal(acct.Balance()))
}

func TestSavingsWithdraw_CapIsSharedAcrossAccounts(t *testing.T) {
	led := newTestLedger(&fakeClock{now: date(2025, 1, 10)}, identityStub(true), answerYes())

	first, err := led.OpenSavings("Bob", dec("1000"))
	require.NoError(t, err)
	second, err := led.OpenSavings("Cara", dec("1000"))
	require.NoError(t, err)

	for i := 0; i < 6; i++ {
		require.NoError(t, first.Withdraw(dec("10")))
	}
	// The counter is ledger-wide, so the second account is already capped.
	require.ErrorIs(t, second.Withdraw(dec("10")), ErrMonthlyWithdrawalCap)
}

func TestSavingsWithdraw_CancelDoesNotCountAgainstCap(t *testing.T) {
	decider := &deciderStub{answers: []Answer{AnswerNo}}
	led := newTestLedger(&fakeClock{now: date(2025, 1, 10)}, identityStub(true), decider)
	acct, err := led.OpenSavings("Bob", dec("1000"))
	require.NoError(t, err)

	require.ErrorIs(t, acct.Withdraw(dec("10")), ErrCancelled)

	for i := 0; i < 6; i++ {
		require.NoError(t, acct.Withdraw(dec("10")), "cancelled withdrawal must not consume the cap")
	}
}

func TestSavingsWithdraw_DailyLimitStillApplies(t *testing.T) {
	led := newTestLedger(&fakeClock{now: date(2025, 1, 10)}, identityStub(true), answerYes())
	acct, err := led.OpenSavings("Bob", dec("5000"))
	require.NoError(t, err)

	require.ErrorIs(t, acct.Withdraw(dec("2500")), ErrLimitExceeded)
}
