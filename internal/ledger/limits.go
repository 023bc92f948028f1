package ledger

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

const dayFormat = "2006-01-02"

// minDailyLimit is the floor for administrative limit updates.
var minDailyLimit = decimal.NewFromInt(2000)

// DailyLimits caps how much each account may withdraw per calendar day.
// A single registry is shared by every account in a Ledger; reservations
// reset whenever the observed date changes.
type DailyLimits struct {
	mu         sync.Mutex
	day        string
	used       map[int]decimal.Decimal
	max        decimal.Decimal
	credential string
}

// NewDailyLimits creates a registry with the given admin credential and
// maximum daily withdrawal amount.
func NewDailyLimits(credential string, max decimal.Decimal) *DailyLimits {
	return &DailyLimits{
		used:       make(map[int]decimal.Decimal),
		max:        max,
		credential: credential,
	}
}

// CheckAndReserve records amount against the account's total for today and
// reports whether it fits under the limit. On refusal nothing is recorded.
func (d *DailyLimits) CheckAndReserve(amount decimal.Decimal, accountNumber int, today time.Time) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	day := today.Format(dayFormat)
	if d.day != day {
		d.day = day
		d.used = make(map[int]decimal.Decimal)
	}

	used := d.used[accountNumber]
	if used.Add(amount).GreaterThan(d.max) {
		return false
	}
	d.used[accountNumber] = used.Add(amount)
	return true
}

// Max returns the current daily withdrawal limit.
func (d *DailyLimits) Max() decimal.Decimal {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.max
}

// Reserved returns a copy of today's per-account reservations.
func (d *DailyLimits) Reserved() map[int]decimal.Decimal {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make(map[int]decimal.Decimal, len(d.used))
	for k, v := range d.used {
		out[k] = v
	}
	return out
}

// SetMax updates the daily limit. Only the admin credential may change it,
// and the new limit must be greater than 2000.
func (d *DailyLimits) SetMax(newLimit decimal.Decimal, credential string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if credential != d.credential {
		return ErrUnauthorized
	}
	if !newLimit.GreaterThan(minDailyLimit) {
		return ErrInvalidLimit
	}
	d.max = newLimit
	return nil
}
