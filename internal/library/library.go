// Package library tracks books, members, and lending for the library demo.
// Borrowed books get a 21-day due date; late returns are charged $1 per day.
package library

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Domain errors for catalog and lending operations.
var (
	ErrDuplicateISBN   = errors.New("a book with that ISBN already exists")
	ErrInvalidBook     = errors.New("title, author, and ISBN must not be empty")
	ErrInvalidCategory = errors.New(`category must be "fiction" or "non-fiction"`)
	ErrDuplicateMember = errors.New("a member with that ID already exists")
	ErrInvalidMember   = errors.New("member name and ID must not be empty")
	ErrUnknownBook     = errors.New("book not found")
	ErrUnknownMember   = errors.New("member not found")
	ErrAlreadyBorrowed = errors.New("book is already borrowed")
	ErrNotBorrowed     = errors.New("member has not borrowed this book")
)

const loanPeriodDays = 21

var lateFeePerDay = decimal.NewFromInt(1)

// Category classifies a book.
type Category string

const (
	CategoryFiction    Category = "FICTION"
	CategoryNonFiction Category = "NON-FICTION"
)

// ParseCategory normalizes user input into a Category.
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToUpper(strings.TrimSpace(s))) {
	case CategoryFiction:
		return CategoryFiction, nil
	case CategoryNonFiction:
		return CategoryNonFiction, nil
	default:
		return "", ErrInvalidCategory
	}
}

// Book is a catalog entry.
type Book struct {
	Title    string
	Author   string
	ISBN     string
	Category Category
	Borrowed bool
}

// Member is a registered borrower.
type Member struct {
	Name string
	ID   string
}

// BorrowedBook pairs a borrowed book with its due date.
type BorrowedBook struct {
	Book Book
	Due  time.Time
}

// ReturnReceipt reports the outcome of a return.
type ReturnReceipt struct {
	LateDays int
	LateFee  decimal.Decimal
}

// Clock supplies the calendar date for due-date math.
type Clock interface {
	Today() time.Time
}

// Library holds the catalog, the member register, and active loans.
type Library struct {
	clock   Clock
	books   map[string]*Book
	order   []string // ISBNs in catalog insertion order
	members map[string]*Member
	loans   map[string]map[string]time.Time // memberID -> ISBN -> due date
}

// New returns an empty library.
func New(clock Clock) *Library {
	return &Library{
		clock:   clock,
		books:   make(map[string]*Book),
		members: make(map[string]*Member),
		loans:   make(map[string]map[string]time.Time),
	}
}

// AddBook adds a book to the catalog.
func (l *Library) AddBook(b Book) error {
	if _, ok := l.books[b.ISBN]; ok {
		return ErrDuplicateISBN
	}
	if b.Title == "" || b.Author == "" || b.ISBN == "" {
		return ErrInvalidBook
	}
	if b.Category != CategoryFiction && b.Category != CategoryNonFiction {
		return ErrInvalidCategory
	}
	b.Borrowed = false
	l.books[b.ISBN] = &b
	l.order = append(l.order, b.ISBN)
	return nil
}

// RegisterMember registers a borrower with a unique ID.
func (l *Library) RegisterMember(name, id string) error {
	if _, ok := l.members[id]; ok {
		return ErrDuplicateMember
	}
	if name == "" || id == "" {
		return ErrInvalidMember
	}
	l.members[id] = &Member{Name: name, ID: id}
	return nil
}

// Borrow lends a book to a member and returns the due date.
func (l *Library) Borrow(isbn, memberID string) (time.Time, error) {
	b, ok := l.books[isbn]
	if !ok {
		return time.Time{}, ErrUnknownBook
	}
	if _, ok := l.members[memberID]; !ok {
		return time.Time{}, ErrUnknownMember
	}
	if b.Borrowed {
		return time.Time{}, ErrAlreadyBorrowed
	}

	due := l.clock.Today().AddDate(0, 0, loanPeriodDays)
	b.Borrowed = true
	if l.loans[memberID] == nil {
		l.loans[memberID] = make(map[string]time.Time)
	}
	l.loans[memberID][isbn] = due
	return due, nil
}

// Return takes a book back and charges $1 per day past the due date.
func (l *Library) Return(isbn, memberID string) (ReturnReceipt, error) {
	b, ok := l.books[isbn]
	if !ok {
		return ReturnReceipt{}, ErrUnknownBook
	}
	if _, ok := l.members[memberID]; !ok {
		return ReturnReceipt{}, ErrUnknownMember
	}
	due, ok := l.loans[memberID][isbn]
	if !ok {
		return ReturnReceipt{}, ErrNotBorrowed
	}

	delete(l.loans[memberID], isbn)
	b.Borrowed = false

	lateDays := daysBetween(due, l.clock.Today())
	if lateDays <= 0 {
		return ReturnReceipt{}, nil
	}
	return ReturnReceipt{
		LateDays: lateDays,
		LateFee:  lateFeePerDay.Mul(decimal.NewFromInt(int64(lateDays))),
	}, nil
}

// Available returns the catalog entries not currently borrowed, in catalog order.
func (l *Library) Available() []Book {
	var out []Book
	for _, isbn := range l.order {
		if b := l.books[isbn]; !b.Borrowed {
			out = append(out, *b)
		}
	}
	return out
}

// BorrowedBy lists a member's borrowed books with due dates, sorted by ISBN.
func (l *Library) BorrowedBy(memberID string) ([]BorrowedBook, error) {
	if _, ok := l.members[memberID]; !ok {
		return nil, ErrUnknownMember
	}
	var out []BorrowedBook
	for isbn, due := range l.loans[memberID] {
		out = append(out, BorrowedBook{Book: *l.books[isbn], Due: due})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Book.ISBN < out[j].Book.ISBN })
	return out, nil
}

// SearchTitle returns books whose title contains q, case-insensitively.
func (l *Library) SearchTitle(q string) []Book {
	return l.search(func(b *Book) bool {
		return strings.Contains(strings.ToLower(b.Title), strings.ToLower(q))
	})
}

// SearchAuthor returns books whose author contains q, case-insensitively.
func (l *Library) SearchAuthor(q string) []Book {
	return l.search(func(b *Book) bool {
		return strings.Contains(strings.ToLower(b.Author), strings.ToLower(q))
	})
}

// FindISBN returns the book with the exact ISBN.
func (l *Library) FindISBN(isbn string) (Book, bool) {
	b, ok := l.books[isbn]
	if !ok {
		return Book{}, false
	}
	return *b, true
}

// ByCategory returns all books in the given category.
func (l *Library) ByCategory(c Category) []Book {
	return l.search(func(b *Book) bool { return b.Category == c })
}

func (l *Library) search(match func(*Book) bool) []Book {
	var out []Book
	for _, isbn := range l.order {
		if b := l.books[isbn]; match(b) {
			out = append(out, *b)
		}
	}
	return out
}

// daysBetween counts whole calendar days from a to b, ignoring time of day.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	at := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	bt := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(bt.Sub(at).Hours() / 24)
}
