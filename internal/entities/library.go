package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IssueDateLayout is how issue dates are rendered and compared.
const IssueDateLayout = "2006-01-02"

// Book is a catalog entry. ID is chosen by the librarian, not generated.
type Book struct {
	ID       int    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name     string `gorm:"size:255;index" json:"name"`
	Subject  string `gorm:"size:255" json:"subject"`
	Quantity int    `gorm:"not null;default:0" json:"quantity"`
}

func (Book) TableName() string {
	return "available_books"
}

// Loan is one copy of a book currently issued to a student.
// Name and Subject are copied from the book at issue time.
type Loan struct {
	LoanID       string    `gorm:"primaryKey;size:36" json:"loan_id"`
	BookID       int       `gorm:"index;not null" json:"book_id"`
	Name         string    `gorm:"size:255" json:"name"`
	Subject      string    `gorm:"size:255" json:"subject"`
	StudentName  string    `gorm:"size:255;index" json:"student_name"`
	StudentClass string    `gorm:"size:255" json:"student_class"`
	IssueDate    time.Time `gorm:"type:date" json:"issue_date"`
	CreatedAt    int64     `gorm:"autoCreateTime:nano;index" json:"-"` // orders same-day loans
	Book         Book      `gorm:"foreignKey:BookID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Loan) TableName() string {
	return "issued"
}

func (l *Loan) BeforeCreate(tx *gorm.DB) error {
	if l.LoanID == "" {
		l.LoanID = uuid.NewString()
	}
	return nil
}

// Credential is the admin login. Password holds a hex SHA-256 digest, never plaintext.
type Credential struct {
	Username string `gorm:"column:user;primaryKey;size:25"`
	Password string `gorm:"column:password;size:64;not null"`
}

func (Credential) TableName() string {
	return "login"
}
