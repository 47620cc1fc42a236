// Package loans provides database operations for issued books.
//
// Issue and Return touch both the issued and available_books tables and
// always run inside a single transaction.
package loans

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/librarian/internal/entities"
)

var (
	// ErrBookUnavailable is returned when the book does not exist or has no copies left.
	ErrBookUnavailable = errors.New("book not available")
	// ErrNoMatchingLoan is returned when no loan matches the book, student and class.
	ErrNoMatchingLoan = errors.New("no matching loan")
)

// Repository handles all loan database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new loans repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Issue records a loan of one copy of the book and decrements its quantity.
func (r *Repository) Issue(ctx context.Context, bookID int, studentName, studentClass string, issuedOn time.Time) (*entities.Loan, error) {
	var loan *entities.Loan

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var book entities.Book
		if err := tx.First(&book, bookID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookUnavailable
			}
			return err
		}
		if book.Quantity <= 0 {
			return ErrBookUnavailable
		}

		result := tx.Model(&entities.Book{}).
			Where("id = ? AND quantity > 0", bookID).
			UpdateColumn("quantity", gorm.Expr("quantity - ?", 1))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrBookUnavailable
		}

		loan = &entities.Loan{
			BookID:       book.ID,
			Name:         book.Name,
			Subject:      book.Subject,
			StudentName:  studentName,
			StudentClass: studentClass,
			IssueDate:    truncateToDay(issuedOn),
		}
		return tx.Omit("Book").Create(loan).Error
	})
	if err != nil {
		return nil, err
	}
	return loan, nil
}

// Return closes the earliest issued loan matching all three fields exactly and puts the copy back.
func (r *Repository) Return(ctx context.Context, bookID int, studentName, studentClass string) (*entities.Loan, error) {
	var loan entities.Loan

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("book_id = ? AND student_name = ? AND student_class = ?", bookID, studentName, studentClass).
			Order("issue_date ASC, created_at ASC").
			First(&loan).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoMatchingLoan
			}
			return err
		}

		if err := tx.Where("loan_id = ?", loan.LoanID).Delete(&entities.Loan{}).Error; err != nil {
			return err
		}

		return tx.Model(&entities.Book{}).
			Where("id = ?", bookID).
			UpdateColumn("quantity", gorm.Expr("quantity + ?", 1)).Error
	})
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

// List returns every outstanding loan, oldest first.
func (r *Repository) List(ctx context.Context) ([]entities.Loan, error) {
	var loans []entities.Loan
	err := r.db.WithContext(ctx).Order("issue_date ASC, created_at ASC").Find(&loans).Error
	return loans, err
}

// CountForBook returns how many copies of a book are currently out.
func (r *Repository) CountForBook(ctx context.Context, bookID int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Loan{}).Where("book_id = ?", bookID).Count(&count).Error
	return count, err
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
