package ledger

// Answer is the outcome of a yes/no confirmation prompt.
type Answer int

const (
	AnswerInvalid Answer = iota
	AnswerYes
	AnswerNo
)

// IdentityConfirmer checks that the caller knows the account number before a
// withdrawal is committed.
type IdentityConfirmer interface {
	Confirm(accountNumber int) bool
}

// Decider asks the caller a yes/no question. The ledger re-asks while the
// answer is AnswerInvalid, so implementations may return it freely.
type Decider interface {
	Decide(prompt string) Answer
}
