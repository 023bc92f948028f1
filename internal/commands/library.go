package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tilldesk/tilldesk/internal/ledger"
	"github.com/tilldesk/tilldesk/internal/library"
	"github.com/tilldesk/tilldesk/internal/prompt"
)

func newLibraryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "library",
		Short: "Run the library lending session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLibrary(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

const libraryMenu = `
--------- TILLDESK LIBRARY ---------
 1. Add book
 2. Register member
 3. Borrow book
 4. Return book
 5. Available books
 6. Books borrowed by member
 7. Search
 q. Quit
`

func runLibrary(in io.Reader, out io.Writer) error {
	console := prompt.NewConsole(in, out)
	lib := library.New(ledger.SystemClock())

	for !console.EOF() {
		fmt.Fprint(out, libraryMenu)
		switch console.Line("Choose an option: ") {
		case "1":
			addBook(console, out, lib)
		case "2":
			registerMember(console, out, lib)
		case "3":
			borrowBook(console, out, lib)
		case "4":
			returnBook(console, out, lib)
		case "5":
			listAvailable(out, lib)
		case "6":
			listBorrowed(console, out, lib)
		case "7":
			searchBooks(console, out, lib)
		case "q", "quit":
			return nil
		case "":
			// fall through to the EOF check
		default:
			fmt.Fprintln(out, "Please choose a valid option.")
		}
	}
	return nil
}

func addBook(console *prompt.Console, out io.Writer, lib *library.Library) {
	title := console.Line("Title: ")
	author := console.Line("Author: ")
	isbn := console.Line("ISBN: ")
	category, err := library.ParseCategory(console.Line("Category (fiction/non-fiction): "))
	if err != nil {
		fmt.Fprintf(out, "Denied: %v\n", err)
		return
	}
	if err := lib.AddBook(library.Book{Title: title, Author: author, ISBN: isbn, Category: category}); err != nil {
		fmt.Fprintf(out, "Denied: %v\n", err)
		return
	}
	fmt.Fprintf(out, "Book %q added to the library.\n", title)
}

func registerMember(console *prompt.Console, out io.Writer, lib *library.Library) {
	name := console.Line("Member name: ")
	id := console.Line("Member ID: ")
	if err := lib.RegisterMember(name, id); err != nil {
		fmt.Fprintf(out, "Denied: %v\n", err)
		return
	}
	fmt.Fprintf(out, "Member %q registered.\n", name)
}

func borrowBook(console *prompt.Console, out io.Writer, lib *library.Library) {
	isbn := console.Line("ISBN: ")
	memberID := console.Line("Member ID: ")
	due, err := lib.Borrow(isbn, memberID)
	if err != nil {
		fmt.Fprintf(out, "Denied: %v\n", err)
		return
	}
	fmt.Fprintf(out, "Borrowed. Due date: %s\n", due.Format("2006-01-02"))
}

func returnBook(console *prompt.Console, out io.Writer, lib *library.Library) {
	isbn := console.Line("ISBN: ")
	memberID := console.Line("Member ID: ")
	receipt, err := lib.Return(isbn, memberID)
	if err != nil {
		fmt.Fprintf(out, "Denied: %v\n", err)
		return
	}
	if receipt.LateDays > 0 {
		fmt.Fprintf(out, "You were late by %d day(s). Late fee: $%s ($1 per day per overdue book).\n",
			receipt.LateDays, receipt.LateFee.StringFixed(2))
	}
	fmt.Fprintln(out, "Returned. Thank you!")
}

func listAvailable(out io.Writer, lib *library.Library) {
	books := lib.Available()
	if len(books) == 0 {
		fmt.Fprintln(out, "No books are currently available.")
		return
	}
	fmt.Fprintln(out, "----- Available Books -----")
	for i, b := range books {
		fmt.Fprintf(out, "%d. %s by %s\n", i+1, b.Title, b.Author)
	}
}

func listBorrowed(console *prompt.Console, out io.Writer, lib *library.Library) {
	memberID := console.Line("Member ID: ")
	borrowed, err := lib.BorrowedBy(memberID)
	if err != nil {
		fmt.Fprintf(out, "Denied: %v\n", err)
		return
	}
	if len(borrowed) == 0 {
		fmt.Fprintln(out, "This member has no borrowed books.")
		return
	}
	for i, bb := range borrowed {
		fmt.Fprintf(out, "%d. %s - due %s\n", i+1, bb.Book.Title, bb.Due.Format("2006-01-02"))
	}
}

func searchBooks(console *prompt.Console, out io.Writer, lib *library.Library) {
	var results []library.Book
	switch console.Line("Search by (title/author/isbn/category): ") {
	case "title":
		results = lib.SearchTitle(console.Line("Title: "))
	case "author":
		results = lib.SearchAuthor(console.Line("Author: "))
	case "isbn":
		b, ok := lib.FindISBN(console.Line("ISBN: "))
		if ok {
			results = []library.Book{b}
		}
	case "category":
		category, err := library.ParseCategory(console.Line("Category (fiction/non-fiction): "))
		if errors.Is(err, library.ErrInvalidCategory) {
			fmt.Fprintf(out, "Denied: %v\n", err)
			return
		}
		results = lib.ByCategory(category)
	default:
		fmt.Fprintln(out, "Please choose a valid search option.")
		return
	}

	if len(results) == 0 {
		fmt.Fprintln(out, "No matches found.")
		return
	}
	for i, b := range results {
		status := "Available"
		if b.Borrowed {
			status = "Borrowed"
		}
		fmt.Fprintf(out, "%d. %s by %s (ISBN %s, %s, %s)\n", i+1, b.Title, b.Author, b.ISBN, b.Category, status)
	}
}
