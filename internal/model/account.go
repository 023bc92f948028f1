package model

// AccountKind classifies the account types the teller console offers.
type AccountKind string

const (
	AccountGeneral  AccountKind = "general"
	AccountSavings  AccountKind = "savings"
	AccountChecking AccountKind = "checking"
)
