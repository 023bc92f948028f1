package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAndReserve_UnderLimit(t *testing.T) {
	limits := NewDailyLimits("secret", dec("2000"))
	today := date(2025, 3, 24)

	assert.True(t, limits.CheckAndReserve(dec("1500"), 1001, today))
	assert.True(t, limits.CheckAndReserve(dec("500"), 1001, today), "exactly at the limit is allowed")
	assert.True(t, dec("2000").Equal(limits.Reserved()[1001]))
}

func TestCheckAndReserve_RefusalMutatesNothing(t *testing.T) {
	limits := NewDailyLimits("secret", dec("2000"))
	today := date(2025, 3, 24)

	require.True(t, limits.CheckAndReserve(dec("1500"), 1001, today))
	assert.False(t, limits.CheckAndReserve(dec("600"), 1001, today))
	assert.True(t, dec("1500").Equal(limits.Reserved()[1001]), "refused amount must not be recorded")
}

func TestCheckAndReserve_PerAccount(t *testing.T) {
	limits := NewDailyLimits("secret", dec("2000"))
	today := date(2025, 3, 24)

	require.True(t, limits.CheckAndReserve(dec("2000"), 1001, today))
	assert.True(t, limits.CheckAndReserve(dec("2000"), 1002, today), "limits are tracked per account")
}

func TestCheckAndReserve_DateBoundaryResets(t *testing.T) {
	limits := NewDailyLimits("secret", dec("2000"))

	require.True(t, limits.CheckAndReserve(dec("2000"), 1001, date(2025, 3, 24)))
	require.False(t, limits.CheckAndReserve(dec("1"), 1001, date(2025, 3, 24)))

	assert.True(t, limits.CheckAndReserve(dec("2000"), 1001, date(2025, 3, 25)), "new day clears all reservations")
	assert.Len(t, limits.Reserved(), 1)
}

func TestSetMax(t *testing.T) {
	limits := NewDailyLimits("secret", dec("2000"))

	err := limits.SetMax(dec("3000"), "wrong")
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.True(t, dec("2000").Equal(limits.Max()))

	err = limits.SetMax(dec("2000"), "secret")
	require.ErrorIs(t, err, ErrInvalidLimit, "new limit must be strictly greater than 2000")

	require.NoError(t, limits.SetMax(dec("2500"), "secret"))
	assert.True(t, dec("2500").Equal(limits.Max()))
}
