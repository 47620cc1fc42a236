// Package books provides database operations for the catalog of available books.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.GetByID(ctx, 42)
package books

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/mrlokans/librarian/internal/entities"
)

// Repository handles all catalog database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new book. A reused ID surfaces as a duplicate key error.
func (r *Repository) Create(ctx context.Context, book *entities.Book) error {
	return r.db.WithContext(ctx).Create(book).Error
}

// GetByID retrieves a book by its ID.
func (r *Repository) GetByID(ctx context.Context, id int) (*entities.Book, error) {
	var book entities.Book
	err := r.db.WithContext(ctx).First(&book, id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// Delete removes a book together with every loan that references it.
// Returns gorm.ErrRecordNotFound when no such book exists.
func (r *Repository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Explicit so the cascade holds even where foreign keys are not enforced
		if err := tx.Where("book_id = ?", id).Delete(&entities.Loan{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&entities.Book{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// SearchByName returns books whose name contains query, ignoring case.
// SQLite's LOWER folds ASCII only, so on SQLite the match runs in Go.
func (r *Repository) SearchByName(ctx context.Context, query string) ([]entities.Book, error) {
	if r.db.Dialector.Name() == "sqlite" {
		return r.searchFolded(ctx, query)
	}

	var books []entities.Book
	searchPattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE LOWER(?)", searchPattern).
		Order("id ASC").
		Find(&books).Error
	return books, err
}

func (r *Repository) searchFolded(ctx context.Context, query string) ([]entities.Book, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	var books []entities.Book
	for _, b := range all {
		if strings.Contains(strings.ToLower(b.Name), needle) {
			books = append(books, b)
		}
	}
	return books, nil
}

// List returns the whole catalog ordered by ID.
func (r *Repository) List(ctx context.Context) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.WithContext(ctx).Order("id ASC").Find(&books).Error
	return books, err
}
