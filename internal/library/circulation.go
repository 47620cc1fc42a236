package library

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mrlokans/librarian/internal/database/loans"
	"github.com/mrlokans/librarian/internal/entities"
)

// Circulation issues books to students and takes them back.
type Circulation struct {
	loans LoanStore
	now   func() time.Time
	log   zerolog.Logger
}

func NewCirculation(loans LoanStore, log zerolog.Logger) *Circulation {
	return &Circulation{loans: loans, now: time.Now, log: log}
}

// SetClock replaces the source of issue dates.
func (c *Circulation) SetClock(now func() time.Time) {
	c.now = now
}

// Issue lends one copy of a book. A missing book or one with no copies left
// yields ErrNotAvailable and changes nothing.
func (c *Circulation) Issue(ctx context.Context, bookID int, studentName, studentClass string) (*entities.Loan, error) {
	loan, err := c.loans.Issue(ctx, bookID, studentName, studentClass, c.now())
	if err != nil {
		if errors.Is(err, loans.ErrBookUnavailable) {
			return nil, fmt.Errorf("book %d: %w", bookID, ErrNotAvailable)
		}
		return nil, fmt.Errorf("failed to issue book %d: %w", bookID, err)
	}

	c.log.Info().
		Int("book_id", bookID).
		Str("student", studentName).
		Str("class", studentClass).
		Msg("Book issued")
	return loan, nil
}

// Return closes a loan matched exactly on book, student name and class.
func (c *Circulation) Return(ctx context.Context, bookID int, studentName, studentClass string) (*entities.Loan, error) {
	loan, err := c.loans.Return(ctx, bookID, studentName, studentClass)
	if err != nil {
		if errors.Is(err, loans.ErrNoMatchingLoan) {
			return nil, fmt.Errorf("book %d for %s (%s): %w", bookID, studentName, studentClass, ErrNoRecord)
		}
		return nil, fmt.Errorf("failed to return book %d: %w", bookID, err)
	}

	c.log.Info().
		Int("book_id", bookID).
		Str("student", studentName).
		Str("class", studentClass).
		Msg("Book returned")
	return loan, nil
}

// IssuedCopies counts the outstanding loans of one book.
func (c *Circulation) IssuedCopies(ctx context.Context, bookID int) (int, error) {
	n, err := c.loans.CountForBook(ctx, bookID)
	if err != nil {
		return 0, fmt.Errorf("failed to count loans of book %d: %w", bookID, err)
	}
	return int(n), nil
}

// ListIssued returns every outstanding loan.
func (c *Circulation) ListIssued(ctx context.Context) ([]entities.Loan, error) {
	issued, err := c.loans.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list issued books: %w", err)
	}
	return issued, nil
}
