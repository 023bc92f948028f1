package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilldesk/tilldesk/internal/model"
)

func TestOpenChecking_OverdraftFloor(t *testing.T) {
	led := newTestLedger(&fakeClock{now: date(2025, 3, 24)}, identityStub(true), answerYes())

	_, err := led.OpenChecking("Cara", dec("-3000"))
	require.ErrorIs(t, err, ErrBelowOverdraftFloor)

	acct, err := led.OpenChecking("Cara", dec("-2999"))
	require.NoError(t, err)
	assert.True(t, dec("-2999").Equal(acct.Balance()))
}

func TestCheckingWithdraw_NoFeeWhenPositive(t *testing.T) {
	led := newTestLedger(&fakeClock{now: date(2025, 3, 24)}, identityStub(true), answerYes())
	acct, err := led.OpenChecking("Cara", dec("500"))
	require.NoError(t, err)

	require.NoError(t, acct.Withdraw(dec("200")))
	assert.True(t, dec("300").Equal(acct.Balance()))

	txs := acct.Transactions()
	require.Len(t, txs, 1)
	assert.True(t, dec("200").Equal(txs[0].Amount))
}

func TestCheckingWithdraw_OverdraftFee(t *testing.T) {
	led := newTestLedger(&fakeClock{now: date(2025, 3, 24)}, identityStub(true), answerYes())
	acct, err := led.OpenChecking("Cara", dec("100")) // post = -100 for a 200 withdrawal
	require.NoError(t, err)

	require.NoError(t, acct.Withdraw(dec("200")))
	assert.True(t, dec("-150").Equal(acct.Balance()), "fee of 50 is debited with the withdrawal")

	txs := acct.Transactions()
	require.Len(t, txs, 1, "amount plus fee is a single withdrawal record")
	assert.Equal(t, model.KindWithdrawal, txs[0].Kind)
	assert.True(t, dec("250").Equal(txs[0].Amount))
}

func TestCheckingWithdraw_RejectsPastFloorAfterFee(t *testing.T) {
	led := newTestLedger(&fakeClock{now: date(2025, 3, 24)}, identityStub(true), answerYes())
	acct, err := led.OpenChecking("Cara", dec("-2000"))
	require.NoError(t, err)

	// post = -3000, post-fee = -3050 which is past the -3000 floor.
	require.ErrorIs(t, acct.Withdraw(dec("1000")), ErrExceedsOverdraftLimit)
	assert.True(t, dec("-2000").Equal(acct.Balance()))
	assert.Empty(t, acct.Transactions())
}

func TestCheckingWithdraw_AtFloorAfterFee(t *testing.T) {
	led := newTestLedger(&fakeClock{now: date(2025, 3, 24)}, identityStub(true), answerYes())
	acct, err := led.OpenChecking("Cara", dec("-1000"))
	require.NoError(t, err)

	// post = -2950, post-fee = -3000 exactly, which is allowed.
	require.NoError(t, acct.Withdraw(dec("1950")))
	assert.True(t, dec("-3000").Equal(acct.Balance()))
}

func TestCheckingWithdraw_ExactZeroIsNoOp(t *testing.T) {
	led := newTestLedger(&fakeClock{now: date(2025, 3, 24)}, identityStub(true), answerYes())
	acct, err := led.OpenChecking("Cara", dec("100"))
	require.NoError(t, err)

	// A withdrawal landing exactly on zero matches neither the fee branch
	// nor the fee-free branch and changes nothing.
	require.NoError(t, acct.Withdraw(dec("100")))
	assert.True(t, dec("100").Equal(acct.Balance()))
	assert.Empty(t, acct.Transactions())
}

func TestCheckingWithdraw_IdentityAndConfirmation(t *testing.T) {
	led := newTestLedger(&fakeClock{now: date(2025, 3, 24)}, identityStub(false), answerYes())
	acct, err := led.OpenChecking("Cara", dec("100"))
	require.NoError(t, err)

	require.ErrorIs(t, acct.Withdraw(dec("200")), ErrIdentityMismatch)
	assert.True(t, dec("100").Equal(acct.Balance()))
}
