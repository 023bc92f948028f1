package ledger

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tilldesk/tilldesk/internal/model"
)

// Settings collects the business rules a Ledger enforces.
type Settings struct {
	AdminCredential       string
	MaxDailyWithdrawal    decimal.Decimal
	MaxLoan               decimal.Decimal
	LoanInterestRate      decimal.Decimal
	SavingsMinimumBalance decimal.Decimal
	SavingsInterestRate   decimal.Decimal
	MonthlyWithdrawalCap  int
	OverdraftFee          decimal.Decimal
	OverdraftFloor        decimal.Decimal
}

// DefaultSettings returns the stock teller rules. The admin credential is a
// placeholder, not a security boundary.
func DefaultSettings() Settings {
	return Settings{
		AdminCredential:       "secure_admin_pass",
		MaxDailyWithdrawal:    decimal.NewFromInt(2000),
		MaxLoan:               decimal.NewFromInt(5000),
		LoanInterestRate:      decimal.RequireFromString("0.05"),
		SavingsMinimumBalance: decimal.NewFromInt(25),
		SavingsInterestRate:   decimal.RequireFromString("0.01"),
		MonthlyWithdrawalCap:  6,
		OverdraftFee:          decimal.NewFromInt(50),
		OverdraftFloor:        decimal.NewFromInt(-3000),
	}
}

// Ledger owns the state shared by every account it opens: the number issuer,
// the daily withdrawal registry, and the savings markers. It also carries the
// injected collaborators so accounts stay free of console I/O.
type Ledger struct {
	settings Settings
	issuer   *NumberIssuer
	limits   *DailyLimits
	savings  *savingsShared
	clock    Clock
	identity IdentityConfirmer
	decider  Decider
}

// New creates a Ledger with isolated shared state.
func New(settings Settings, clock Clock, identity IdentityConfirmer, decider Decider) *Ledger {
	return &Ledger{
		settings: settings,
		issuer:   NewNumberIssuer(),
		limits:   NewDailyLimits(settings.AdminCredential, settings.MaxDailyWithdrawal),
		savings:  &savingsShared{},
		clock:    clock,
		identity: identity,
		decider:  decider,
	}
}

// Limits exposes the shared daily withdrawal registry.
func (l *Ledger) Limits() *DailyLimits { return l.limits }

// Issuer exposes the shared account number issuer.
func (l *Ledger) Issuer() *NumberIssuer { return l.issuer }

// OpenGeneral opens a general account. Any opening balance is accepted.
func (l *Ledger) OpenGeneral(name string, opening decimal.Decimal) (*GeneralAccount, error) {
	base, err := l.newAccount(name, opening, model.AccountGeneral)
	if err != nil {
		return nil, err
	}
	return &GeneralAccount{account: base}, nil
}

// OpenSavings opens a savings account. The opening balance must meet the
// savings minimum.
func (l *Ledger) OpenSavings(name string, opening decimal.Decimal) (*SavingsAccount, error) {
	if opening.LessThan(l.settings.SavingsMinimumBalance) {
		return nil, ErrBelowMinimumOpeningBalance
	}
	base, err := l.newAccount(name, opening, model.AccountSavings)
	if err != nil {
		return nil, err
	}
	return &SavingsAccount{account: base}, nil
}

// OpenChecking opens a checking account. The opening balance must be above
// the overdraft floor.
func (l *Ledger) OpenChecking(name string, opening decimal.Decimal) (*CheckingAccount, error) {
	if opening.LessThanOrEqual(l.settings.OverdraftFloor) {
		return nil, ErrBelowOverdraftFloor
	}
	base, err := l.newAccount(name, opening, model.AccountChecking)
	if err != nil {
		return nil, err
	}
	return &CheckingAccount{account: base}, nil
}

func (l *Ledger) newAccount(name string, opening decimal.Decimal, kind model.AccountKind) (account, error) {
	if strings.TrimSpace(name) == "" {
		return account{}, ErrEmptyName
	}
	return account{
		ledger:  l,
		number:  l.issuer.Next(),
		name:    name,
		kind:    kind,
		balance: opening,
	}, nil
}
