package library

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mrlokans/librarian/internal/database"
	"github.com/mrlokans/librarian/internal/entities"
)

// Catalog manages the set of available books.
type Catalog struct {
	books BookStore
	log   zerolog.Logger
}

func NewCatalog(books BookStore, log zerolog.Logger) *Catalog {
	return &Catalog{books: books, log: log}
}

// Add inserts a new book. Quantity is stored as given, negative values included.
func (c *Catalog) Add(ctx context.Context, id int, name, subject string, quantity int) (*entities.Book, error) {
	book := &entities.Book{ID: id, Name: name, Subject: subject, Quantity: quantity}

	if err := c.books.Create(ctx, book); err != nil {
		if database.IsDuplicateKey(err) {
			return nil, fmt.Errorf("book %d: %w", id, ErrDuplicateID)
		}
		return nil, fmt.Errorf("failed to add book %d: %w", id, err)
	}

	c.log.Info().Int("book_id", id).Str("name", name).Int("quantity", quantity).Msg("Book added")
	return book, nil
}

// Get returns a single book.
func (c *Catalog) Get(ctx context.Context, id int) (*entities.Book, error) {
	book, err := c.books.GetByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, fmt.Errorf("book %d: %w", id, ErrBookNotFound)
		}
		return nil, fmt.Errorf("failed to load book %d: %w", id, err)
	}
	return book, nil
}

// Remove deletes a book and every loan that references it.
func (c *Catalog) Remove(ctx context.Context, id int) error {
	if err := c.books.Delete(ctx, id); err != nil {
		if database.IsNotFound(err) {
			return fmt.Errorf("book %d: %w", id, ErrBookNotFound)
		}
		return fmt.Errorf("failed to remove book %d: %w", id, err)
	}

	c.log.Info().Int("book_id", id).Msg("Book removed")
	return nil
}

// Search returns books whose name contains the query, ignoring case.
// No matches is an empty slice, not an error.
func (c *Catalog) Search(ctx context.Context, name string) ([]entities.Book, error) {
	books, err := c.books.SearchByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to search books: %w", err)
	}
	return books, nil
}

// List returns the whole catalog.
func (c *Catalog) List(ctx context.Context) ([]entities.Book, error) {
	books, err := c.books.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return books, nil
}
