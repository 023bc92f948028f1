// Package prompt implements the console collaborators the ledger consumes:
// identity confirmation and yes/no decisions, plus line-input helpers for the
// interactive sessions. Everything reads from an io.Reader and writes to an
// io.Writer so sessions run headlessly in tests.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tilldesk/tilldesk/internal/ledger"
)

// Console prompts for input line by line.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
	eof bool
}

// NewConsole wraps a reader/writer pair.
func NewConsole(r io.Reader, w io.Writer) *Console {
	return &Console{in: bufio.NewScanner(r), out: w}
}

// EOF reports whether the input has been exhausted.
func (c *Console) EOF() bool { return c.eof }

// Line prints the prompt and returns one trimmed input line. Returns the
// empty string once input is exhausted.
func (c *Console) Line(text string) string {
	fmt.Fprint(c.out, text)
	if !c.in.Scan() {
		c.eof = true
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

// Int re-asks until the caller enters a valid integer.
func (c *Console) Int(text string) int {
	for {
		line := c.Line(text)
		n, err := strconv.Atoi(line)
		if err != nil {
			if c.eof {
				return 0
			}
			fmt.Fprintln(c.out, "Please enter a whole number.")
			continue
		}
		return n
	}
}

// Amount re-asks until the caller enters a valid decimal amount.
func (c *Console) Amount(text string) decimal.Decimal {
	for {
		line := c.Line(text)
		d, err := decimal.NewFromString(line)
		if err != nil {
			if c.eof {
				return decimal.Zero
			}
			fmt.Fprintln(c.out, "Please enter an amount, e.g. 125.50.")
			continue
		}
		return d
	}
}

// Confirm asks for the account number and reports whether it matches.
// A non-numeric or wrong entry fails the confirmation; it does not re-ask.
func (c *Console) Confirm(accountNumber int) bool {
	line := c.Line("Please enter the account number to confirm: ")
	n, err := strconv.Atoi(line)
	if err != nil {
		fmt.Fprintln(c.out, "Invalid input. Please enter a valid account number.")
		return false
	}
	if n != accountNumber {
		fmt.Fprintln(c.out, "Account number does not match.")
		return false
	}
	return true
}

// Decide asks a yes/no question and maps anything else to AnswerInvalid.
// Exhausted input answers "no" so confirmation loops terminate.
func (c *Console) Decide(text string) ledger.Answer {
	switch strings.ToLower(c.Line(text + ` ("Yes"/"No"): `)) {
	case "yes":
		return ledger.AnswerYes
	case "no":
		return ledger.AnswerNo
	default:
		if c.eof {
			return ledger.AnswerNo
		}
		fmt.Fprintln(c.out, `Invalid response. Answer either "Yes" or "No".`)
		return ledger.AnswerInvalid
	}
}
