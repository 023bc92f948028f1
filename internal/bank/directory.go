// Package bank provides the in-memory directory of open accounts used by the
// interactive teller session.
package bank

import (
	"errors"
	"sort"
	"sync"

	"github.com/tilldesk/tilldesk/internal/ledger"
)

// ErrNotFound means no account with that number is open.
var ErrNotFound = errors.New("account not found")

// Directory indexes open accounts by account number. Accounts live for the
// process lifetime; there is no persistence.
type Directory struct {
	mu       sync.Mutex
	accounts map[int]ledger.Account
}

// NewDirectory returns an empty directory.
func NewDirectory() *Directory {
	return &Directory{accounts: make(map[int]ledger.Account)}
}

// Add registers an account under its number.
func (d *Directory) Add(a ledger.Account) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.accounts[a.Number()] = a
}

// Get returns the account with the given number.
func (d *Directory) Get(number int) (ledger.Account, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	a, ok := d.accounts[number]
	if !ok {
		return nil, ErrNotFound
	}
	return a, nil
}

// Exists reports whether an account number is registered.
func (d *Directory) Exists(number int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.accounts[number]
	return ok
}

// All returns every account ordered by account number.
func (d *Directory) All() []ledger.Account {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]ledger.Account, 0, len(d.accounts))
	for _, a := range d.accounts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number() < out[j].Number() })
	return out
}
