package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// fakeClock is a settable calendar source.
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Today() time.Time { return f.now }

// identityStub always answers the same way.
type identityStub bool

func (i identityStub) Confirm(int) bool { return bool(i) }

// deciderStub replays scripted answers, then keeps answering yes.
type deciderStub struct {
	answers []Answer
	next    int
}

func (d *deciderStub) Decide(string) Answer {
	if d.next < len(d.answers) {
		a := d.answers[d.next]
		d.next++
		return a
	}
	return AnswerYes
}

func answerYes() *deciderStub { return &deciderStub{} }

func newTestLedger(clock Clock, identity IdentityConfirmer, decider Decider) *Ledger {
	return New(DefaultSettings(), clock, identity, decider)
}
