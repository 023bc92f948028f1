package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/tilldesk/tilldesk/internal/ledger"
)

// Config represents the top-level tilldesk.yaml configuration.
type Config struct {
	Admin    AdminConfig    `yaml:"admin"`
	Limits   LimitsConfig   `yaml:"limits"`
	Loans    LoansConfig    `yaml:"loans"`
	Savings  SavingsConfig  `yaml:"savings"`
	Checking CheckingConfig `yaml:"checking"`
}

// AdminConfig holds the administrative credential. It is a placeholder for
// demos, not a security boundary.
type AdminConfig struct {
	Credential string `yaml:"credential"`
}

// LimitsConfig controls the shared daily withdrawal registry.
type LimitsConfig struct {
	MaxDailyWithdrawal float64 `yaml:"max_daily_withdrawal"`
}

// LoansConfig controls loan issuance.
type LoansConfig struct {
	MaxAmount    float64 `yaml:"max_amount"`
	InterestRate float64 `yaml:"interest_rate"`
}

// SavingsConfig controls savings accounts.
type SavingsConfig struct {
	MinimumBalance       float64 `yaml:"minimum_balance"`
	InterestRate         float64 `yaml:"interest_rate"`
	MonthlyWithdrawalCap int     `yaml:"monthly_withdrawal_cap"`
}

// CheckingConfig controls checking accounts.
type CheckingConfig struct {
	OverdraftFee   float64 `yaml:"overdraft_fee"`
	OverdraftFloor float64 `yaml:"overdraft_floor"`
}

// Load reads a tilldesk.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		Admin:  AdminConfig{Credential: "secure_admin_pass"},
		Limits: LimitsConfig{MaxDailyWithdrawal: 2000},
		Loans:  LoansConfig{MaxAmount: 5000, InterestRate: 0.05},
		Savings: SavingsConfig{
			MinimumBalance:       25,
			InterestRate:         0.01,
			MonthlyWithdrawalCap: 6,
		},
		Checking: CheckingConfig{OverdraftFee: 50, OverdraftFloor: -3000},
	}
}

// Settings converts the configuration into ledger rules.
func (c *Config) Settings() ledger.Settings {
	return ledger.Settings{
		AdminCredential:       c.Admin.Credential,
		MaxDailyWithdrawal:    decimal.NewFromFloat(c.Limits.MaxDailyWithdrawal),
		MaxLoan:               decimal.NewFromFloat(c.Loans.MaxAmount),
		LoanInterestRate:      decimal.NewFromFloat(c.Loans.InterestRate),
		SavingsMinimumBalance: decimal.NewFromFloat(c.Savings.MinimumBalance),
		SavingsInterestRate:   decimal.NewFromFloat(c.Savings.InterestRate),
		MonthlyWithdrawalCap:  c.Savings.MonthlyWithdrawalCap,
		OverdraftFee:          decimal.NewFromFloat(c.Checking.OverdraftFee),
		OverdraftFloor:        decimal.NewFromFloat(c.Checking.OverdraftFloor),
	}
}
