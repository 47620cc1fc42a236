package menu

import (
	"context"
	"errors"

	"github.com/mrlokans/librarian/internal/entities"
	"github.com/mrlokans/librarian/internal/library"
)

func (s *Session) addBook(ctx context.Context) error {
	s.println("\nAdd a New Book")
	id, err := s.promptInt("Enter Book ID: ")
	if err != nil {
		return err
	}
	name, err := s.promptLine("Enter Book Name: ")
	if err != nil {
		return err
	}
	subject, err := s.promptLine("Enter Subject: ")
	if err != nil {
		return err
	}
	quantity, err := s.promptInt("Enter Quantity: ")
	if err != nil {
		return err
	}

	if _, err := s.catalog.Add(ctx, id, name, subject, quantity); err != nil {
		return err
	}

	s.loading(ctx, "Adding Book")
	s.println("Book Added Successfully!")
	return nil
}

func (s *Session) removeBook(ctx context.Context) error {
	s.println("\nRemove a Book")
	id, err := s.promptInt("Enter Book ID to Remove: ")
	if err != nil {
		return err
	}

	// Counted up front since removal clears the loans too
	outstanding, err := s.circulation.IssuedCopies(ctx, id)
	if err != nil {
		return err
	}

	if err := s.catalog.Remove(ctx, id); err != nil {
		return err
	}

	s.loading(ctx, "Removing Book")
	s.println("Book Removed Successfully!")
	if outstanding > 0 {
		s.printf("%d issued record(s) for this book were cleared.\n", outstanding)
	}
	return nil
}

func (s *Session) issueBook(ctx context.Context) error {
	s.println("\nIssue a Book")
	id, err := s.promptInt("Enter Book ID: ")
	if err != nil {
		return err
	}

	// Unavailable books are rejected before asking for student details
	book, err := s.catalog.Get(ctx, id)
	if err != nil {
		if errors.Is(err, library.ErrBookNotFound) {
			return library.ErrNotAvailable
		}
		return err
	}
	if book.Quantity <= 0 {
		return library.ErrNotAvailable
	}

	studentName, err := s.promptLine("Enter Student Name: ")
	if err != nil {
		return err
	}
	studentClass, err := s.promptLine("Enter Student Class: ")
	if err != nil {
		return err
	}

	loan, err := s.circulation.Issue(ctx, id, studentName, studentClass)
	if err != nil {
		return err
	}

	s.loading(ctx, "Issuing Book")
	s.printf("Book Issued to %s (Class: %s) on %s\n",
		loan.StudentName, loan.StudentClass, loan.IssueDate.Format(entities.IssueDateLayout))
	return nil
}

func (s *Session) returnBook(ctx context.Context) error {
	s.println("\nReturn a Book")
	id, err := s.promptInt("Enter Book ID: ")
	if err != nil {
		return err
	}
	studentName, err := s.promptLine("Enter Student Name: ")
	if err != nil {
		return err
	}
	studentClass, err := s.promptLine("Enter Student Class: ")
	if err != nil {
		return err
	}

	if _, err := s.circulation.Return(ctx, id, studentName, studentClass); err != nil {
		return err
	}

	s.loading(ctx, "Processing Return")
	s.println("Book Returned Successfully!")
	return nil
}

func (s *Session) listBooks(ctx context.Context) error {
	s.println("\nAvailable Books List")
	books, err := s.catalog.List(ctx)
	if err != nil {
		return err
	}
	if len(books) == 0 {
		s.println("No Books Available!")
		return nil
	}
	return writeBooks(s.out, books)
}

func (s *Session) listIssued(ctx context.Context) error {
	s.println("\nIssued Books List")
	issued, err := s.circulation.ListIssued(ctx)
	if err != nil {
		return err
	}
	if len(issued) == 0 {
		s.println("No Books Issued Yet!")
		return nil
	}
	return writeLoans(s.out, issued)
}

func (s *Session) searchBooks(ctx context.Context) error {
	s.println("\nSearch for a Book by Name")
	name, err := s.promptLine("Enter Book Name: ")
	if err != nil {
		return err
	}

	books, err := s.catalog.Search(ctx, name)
	if err != nil {
		return err
	}
	if len(books) == 0 {
		s.println("\nNo matching books found!")
		return nil
	}
	return writeBooks(s.out, books)
}

// report prints the outcome of a failed task. Storage failures are also logged.
func (s *Session) report(err error) {
	switch {
	case errors.Is(err, library.ErrDuplicateID):
		s.println("ID already exists!")
	case errors.Is(err, library.ErrBookNotFound):
		s.println("Book Not Found!")
	case errors.Is(err, library.ErrNotAvailable):
		s.println("Book Not Available!")
	case errors.Is(err, library.ErrNoRecord):
		s.println("No Record Found!")
	default:
		s.log.Error().Err(err).Msg("Task failed")
		s.printf("Error: %v\n", err)
	}
}
