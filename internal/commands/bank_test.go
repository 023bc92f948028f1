package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tilldesk/tilldesk/internal/config"
)

// runBankScript feeds a scripted session to runBank and returns everything
// it printed.
func runBankScript(t *testing.T, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	require.NoError(t, runBank(in, &out, config.Default(), zap.NewNop().Sugar()))
	return out.String()
}

func TestRunBank_DepositWithdrawBalance(t *testing.T) {
	out := runBankScript(t,
		"1", "general", "Alice", "100",
		"2", "1001", "50",
		"3", "1001", "30", "1001", "yes",
		"4", "1001",
		"q",
	)

	assert.Contains(t, out, "Account opened. Number: 1001")
	assert.Contains(t, out, "$50.00 deposited")
	assert.Contains(t, out, "Transaction successful. Current balance: 120.00")
}

func TestRunBank_CancelledWithdrawal(t *testing.T) {
	out := runBankScript(t,
		"1", "general", "Bob", "100",
		"3", "1001", "30", "1001", "no",
		"4", "1001",
		"q",
	)

	assert.Contains(t, out, "Transaction cancelled.")
	assert.Contains(t, out, "Current balance: 100.00")
}

func TestRunBank_InsufficientFunds(t *testing.T) {
	out := runBankScript(t,
		"1", "general", "Bob", "100",
		"3", "1001", "500",
		"q",
	)

	assert.Contains(t, out, "Denied: insufficient funds")
}

func TestRunBank_LoanLifecycle(t *testing.T) {
	out := runBankScript(t,
		"1", "general", "Carol", "100",
		"8", "1001", "2000",
		"4", "1001",
		"10", "1001",
		"9", "1001", "2001.05",
		"q",
	)

	assert.Contains(t, out, "Loan approved. $2000.00 added to your balance.")
	assert.Contains(t, out, "Current balance: 2100.00")
	assert.Contains(t, out, "Remaining loan due: $2001.05")
	assert.Contains(t, out, "Loan fully paid!")
}

func TestRunBank_SetDailyLimit(t *testing.T) {
	out := runBankScript(t,
		"12", "2500", "secure_admin_pass",
		"q",
	)
	assert.Contains(t, out, "New withdrawal limit set to $2500.00")

	out = runBankScript(t,
		"12", "2500", "wrong_pass",
		"q",
	)
	assert.Contains(t, out, "Denied:")
}

func TestRunBank_ApplyInterest(t *testing.T) {
	out := runBankScript(t,
		"1", "savings", "Dana", "100",
		"13", "1001",
		"q",
	)
	assert.Contains(t, out, "Current balance: 101.00")

	out = runBankScript(t,
		"1", "general", "Eve", "100",
		"13", "1001",
		"q",
	)
	assert.Contains(t, out, "Interest only applies to savings accounts.")
}

func TestRunBank_UnknownAccount(t *testing.T) {
	out := runBankScript(t, "4", "9999", "q")
	assert.Contains(t, out, "Account not found.")
}

func TestRunBank_InvalidOption(t *testing.T) {
	out := runBankScript(t, "x", "q")
	assert.Contains(t, out, "Please choose a valid option.")
}

func TestRunBank_ExitsOnEOF(t *testing.T) {
	var out bytes.Buffer
	err := runBank(strings.NewReader(""), &out, config.Default(), zap.NewNop().Sugar())
	require.NoError(t, err)
}
