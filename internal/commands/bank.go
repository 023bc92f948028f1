package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tilldesk/tilldesk/internal/bank"
	"github.com/tilldesk/tilldesk/internal/config"
	"github.com/tilldesk/tilldesk/internal/ledger"
	"github.com/tilldesk/tilldesk/internal/prompt"
)

func newBankCommand(verbose *bool) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "bank",
		Short: "Run the interactive bank account session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			log, err := newLogger(*verbose)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck // best-effort flush on exit

			return runBank(cmd.InOrStdin(), cmd.OutOrStdout(), cfg, log)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to tilldesk.yaml")

	return cmd
}

const bankMenu = `
--------- TILLDESK BANK ---------
 1. Open account
 2. Deposit
 3. Withdraw
 4. Check balance
 5. Transaction history
 6. Freeze account
 7. Unfreeze account
 8. Apply for a loan
 9. Repay loan
10. Loan summary
11. List accounts
12. Set daily withdrawal limit (admin)
13. Apply savings interest
 q. Quit
`

// bankSession wires the ledger core to the console collaborators.
type bankSession struct {
	console *prompt.Console
	ledger  *ledger.Ledger
	dir     *bank.Directory
	out     io.Writer
	log     *zap.SugaredLogger
}

func runBank(in io.Reader, out io.Writer, cfg *config.Config, log *zap.SugaredLogger) error {
	console := prompt.NewConsole(in, out)
	s := &bankSession{
		console: console,
		ledger:  ledger.New(cfg.Settings(), ledger.SystemClock(), console, console),
		dir:     bank.NewDirectory(),
		out:     out,
		log:     log,
	}

	for !console.EOF() {
		fmt.Fprint(out, bankMenu)
		switch choice := console.Line("Choose an option: "); choice {
		case "1":
			s.openAccount()
		case "2":
			s.deposit()
		case "3":
			s.withdraw()
		case "4":
			s.checkBalance()
		case "5":
			s.history()
		case "6":
			s.freeze()
		case "7":
			s.unfreeze()
		case "8":
			s.applyForLoan()
		case "9":
			s.repayLoan()
		case "10":
			s.loanSummary()
		case "11":
			s.listAccounts()
		case "12":
			s.setDailyLimit()
		case "13":
			s.applyInterest()
		case "q", "quit":
			return nil
		case "":
			// fall through to the EOF check
		default:
			fmt.Fprintln(out, "Please choose a valid option.")
		}
	}
	return nil
}

func (s *bankSession) openAccount() {
	kind := strings.ToLower(s.console.Line("Account type (general/savings/checking): "))
	name := s.console.Line("Account holder name: ")
	opening := s.console.Amount("Opening balance: ")

	var (
		acct ledger.Account
		err  error
	)
	switch kind {
	case "general":
		acct, err = s.ledger.OpenGeneral(name, opening)
	case "savings":
		acct, err = s.ledger.OpenSavings(name, opening)
	case "checking":
		acct, err = s.ledger.OpenChecking(name, opening)
	default:
		fmt.Fprintln(s.out, "Unknown account type.")
		return
	}
	if err != nil {
		s.reject("open", err)
		return
	}

	s.dir.Add(acct)
	s.log.Infow("account opened", "number", acct.Number(), "kind", acct.Kind())
	fmt.Fprintf(s.out, "Account opened. Number: %d\n", acct.Number())
}

func (s *bankSession) deposit() {
	acct, ok := s.lookup()
	if !ok {
		return
	}
	amount := s.console.Amount("Deposit amount: ")
	if err := acct.Deposit(amount); err != nil {
		s.reject("deposit", err)
		return
	}
	s.log.Infow("deposit", "account", acct.Number(), "amount", amount.String())
	fmt.Fprintf(s.out, "$%s deposited. Current balance: %s\n", amount.StringFixed(2), acct.Balance().StringFixed(2))
}

func (s *bankSession) withdraw() {
	acct, ok := s.lookup()
	if !ok {
		return
	}
	amount := s.console.Amount("Withdrawal amount: ")
	if err := acct.Withdraw(amount); err != nil {
		s.reject("withdraw", err)
		return
	}
	s.log.Infow("withdrawal", "account", acct.Number(), "amount", amount.String())
	fmt.Fprintf(s.out, "Transaction successful. Current balance: %s\n", acct.Balance().StringFixed(2))
}

func (s *bankSession) checkBalance() {
	acct, ok := s.lookup()
	if !ok {
		return
	}
	fmt.Fprintf(s.out, "Current balance: %s\n", acct.Balance().StringFixed(2))
}

func (s *bankSession) history() {
	acct, ok := s.lookup()
	if !ok {
		return
	}
	txs := acct.Transactions()
	if len(txs) == 0 {
		fmt.Fprintln(s.out, "No transactions yet.")
		return
	}
	fmt.Fprintln(s.out, "---------- TRANSACTION HISTORY ----------")
	for i, tx := range txs {
		fmt.Fprintf(s.out, "%d. Amount: %s, Date: %s, Type: %s\n",
			i+1, tx.Amount.StringFixed(2), tx.Date.Format("2006-01-02"), tx.Kind)
	}
}

func (s *bankSession) freeze() {
	acct, ok := s.lookup()
	if !ok {
		return
	}
	acct.Freeze()
	s.log.Infow("account frozen", "account", acct.Number())
	fmt.Fprintln(s.out, "The account is frozen.")
}

func (s *bankSession) unfreeze() {
	acct, ok := s.lookup()
	if !ok {
		return
	}
	if acct.Unfreeze() {
		fmt.Fprintln(s.out, "The account is unfrozen.")
	} else {
		fmt.Fprintln(s.out, "The account is already unfrozen.")
	}
}

func (s *bankSession) applyForLoan() {
	acct, ok := s.lookup()
	if !ok {
		return
	}
	amount := s.console.Amount("Loan amount: ")
	if err := acct.ApplyForLoan(amount); err != nil {
		s.reject("loan", err)
		return
	}
	s.log.Infow("loan approved", "account", acct.Number(), "amount", amount.String())
	fmt.Fprintf(s.out, "Loan approved. $%s added to your balance.\n", amount.StringFixed(2))
}

func (s *bankSession) repayLoan() {
	acct, ok := s.lookup()
	if !ok {
		return
	}
	amount := s.console.Amount("Installment amount: ")
	remaining, closed, err := acct.RepayLoan(amount)
	if err != nil {
		s.reject("repay", err)
		return
	}
	if closed {
		fmt.Fprintln(s.out, "Loan fully paid!")
		return
	}
	fmt.Fprintf(s.out, "Remaining loan due: %s (interest applied)\n", remaining.StringFixed(2))
}

func (s *bankSession) loanSummary() {
	acct, ok := s.lookup()
	if !ok {
		return
	}
	loan := acct.ActiveLoan()
	if loan == nil {
		fmt.Fprintln(s.out, "No active loan.")
		return
	}
	sum := loan.Summary()
	fmt.Fprintf(s.out, "Remaining loan due: $%s\n", sum.RemainingDue.StringFixed(2))
	fmt.Fprint(s.out, "Payment history:")
	for _, p := range sum.Payments {
		fmt.Fprintf(s.out, " %s", p.StringFixed(2))
	}
	fmt.Fprintln(s.out)
}

func (s *bankSession) listAccounts() {
	accounts := s.dir.All()
	if len(accounts) == 0 {
		fmt.Fprintln(s.out, "No accounts open.")
		return
	}
	for _, a := range accounts {
		fmt.Fprintf(s.out, "%d  %-10s %-8s balance: %s\n",
			a.Number(), a.Name(), a.Kind(), a.Balance().StringFixed(2))
	}
}

func (s *bankSession) setDailyLimit() {
	newLimit := s.console.Amount("New daily withdrawal limit: ")
	credential := s.console.Line("Admin credential: ")
	if err := s.ledger.Limits().SetMax(newLimit, credential); err != nil {
		s.reject("set-limit", err)
		return
	}
	s.log.Infow("daily limit updated", "limit", newLimit.String())
	fmt.Fprintf(s.out, "New withdrawal limit set to $%s\n", s.ledger.Limits().Max().StringFixed(2))
}

func (s *bankSession) applyInterest() {
	acct, ok := s.lookup()
	if !ok {
		return
	}
	savings, ok := acct.(*ledger.SavingsAccount)
	if !ok {
		fmt.Fprintln(s.out, "Interest only applies to savings accounts.")
		return
	}
	savings.ApplyInterest()
	s.log.Infow("interest applied", "account", savings.Number())
	fmt.Fprintf(s.out, "Current balance: %s\n", savings.Balance().StringFixed(2))
}

func (s *bankSession) lookup() (ledger.Account, bool) {
	number := s.console.Int("Account number: ")
	acct, err := s.dir.Get(number)
	if err != nil {
		fmt.Fprintln(s.out, "Account not found.")
		return nil, false
	}
	return acct, true
}

// reject reports a business-rule rejection to the caller. Cancellations are
// not failures, just an aborted confirmation.
func (s *bankSession) reject(op string, err error) {
	if errors.Is(err, ledger.ErrCancelled) {
		fmt.Fprintln(s.out, "Transaction cancelled.")
		return
	}
	s.log.Debugw("operation rejected", "op", op, "reason", err)
	fmt.Fprintf(s.out, "Denied: %v\n", err)
}
