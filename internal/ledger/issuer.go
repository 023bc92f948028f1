package ledger

import (
	"fmt"
	"sync"
)

const firstAccountNumber = 1001

// NumberIssuer hands out unique, monotonically increasing account numbers.
// One issuer is shared by every account opened through the same Ledger.
type NumberIssuer struct {
	mu   sync.Mutex
	last int
}

// NewNumberIssuer returns an issuer whose first number is 1001.
func NewNumberIssuer() *NumberIssuer {
	return &NumberIssuer{last: firstAccountNumber - 1}
}

// Next returns the next account number.
func (n *NumberIssuer) Next() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.last++
	return n.last
}

// Last returns the most recently issued number.
func (n *NumberIssuer) Last() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.last
}

// SetLast moves the issuer forward. Values at or below the current position
// are rejected so numbers stay unique.
func (n *NumberIssuer) SetLast(v int) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if v <= n.last {
		return fmt.Errorf("last account number must be greater than %d", n.last)
	}
	n.last = v
	return nil
}
