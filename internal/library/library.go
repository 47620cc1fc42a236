// Package library implements the catalog and circulation operations on top of
// the storage repositories.
package library

import (
	"context"
	"errors"
	"time"

	"github.com/mrlokans/librarian/internal/entities"
)

var (
	ErrBookNotFound = errors.New("book not found")
	ErrDuplicateID  = errors.New("ID already exists")
	ErrNotAvailable = errors.New("book not available")
	ErrNoRecord     = errors.New("no record found")
)

// BookStore is the catalog data access used by Catalog.
type BookStore interface {
	Create(ctx context.Context, book *entities.Book) error
	GetByID(ctx context.Context, id int) (*entities.Book, error)
	Delete(ctx context.Context, id int) error
	SearchByName(ctx context.Context, query string) ([]entities.Book, error)
	List(ctx context.Context) ([]entities.Book, error)
}

// LoanStore is the circulation data access used by Circulation.
type LoanStore interface {
	Issue(ctx context.Context, bookID int, studentName, studentClass string, issuedOn time.Time) (*entities.Loan, error)
	Return(ctx context.Context, bookID int, studentName, studentClass string) (*entities.Loan, error)
	List(ctx context.Context) ([]entities.Loan, error)
	CountForBook(ctx context.Context, bookID int) (int64, error)
}
