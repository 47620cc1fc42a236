// Package menu runs the interactive terminal front end: a login prompt
// followed by the librarian's task menu.
//
// Both levels are plain loops. Operations report their outcome and fall back
// to the task menu; only Exit at the login prompt, or the end of input, ends
// the session. Logout returns to the login prompt.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/mrlokans/librarian/internal/auth"
	"github.com/mrlokans/librarian/internal/entities"
)

// errEndOfInput stops both loops when stdin is closed.
var errEndOfInput = errors.New("end of input")

// Catalog is the subset of library.Catalog the menu drives.
type Catalog interface {
	Add(ctx context.Context, id int, name, subject string, quantity int) (*entities.Book, error)
	Get(ctx context.Context, id int) (*entities.Book, error)
	Remove(ctx context.Context, id int) error
	Search(ctx context.Context, name string) ([]entities.Book, error)
	List(ctx context.Context) ([]entities.Book, error)
}

// Circulation is the subset of library.Circulation the menu drives.
type Circulation interface {
	Issue(ctx context.Context, bookID int, studentName, studentClass string) (*entities.Loan, error)
	Return(ctx context.Context, bookID int, studentName, studentClass string) (*entities.Loan, error)
	ListIssued(ctx context.Context) ([]entities.Loan, error)
	IssuedCopies(ctx context.Context, bookID int) (int, error)
}

// Authenticator checks the admin password.
type Authenticator interface {
	Login(ctx context.Context, password string) error
}

// PasswordReader reads a password, typically without echo.
type PasswordReader func() (string, error)

type task struct {
	key   string
	label string
	run   func(ctx context.Context) error
}

// Session is one interactive run of the program.
type Session struct {
	in           *bufio.Scanner
	out          io.Writer
	catalog      Catalog
	circulation  Circulation
	auth         Authenticator
	readPassword PasswordReader
	loadingDelay time.Duration
	log          zerolog.Logger
	tasks        []task
}

func NewSession(in io.Reader, out io.Writer, catalog Catalog, circulation Circulation, auth Authenticator, log zerolog.Logger) *Session {
	s := &Session{
		in:          bufio.NewScanner(in),
		out:         out,
		catalog:     catalog,
		circulation: circulation,
		auth:        auth,
		log:         log,
	}
	s.tasks = []task{
		{"1", "Add New Book", s.addBook},
		{"2", "Remove a Book", s.removeBook},
		{"3", "Issue a Book", s.issueBook},
		{"4", "Return a Book", s.returnBook},
		{"5", "View Available Books", s.listBooks},
		{"6", "View Issued Books", s.listIssued},
		{"7", "Search for Book", s.searchBooks},
	}
	return s
}

// SetPasswordReader replaces line input for the password prompt.
func (s *Session) SetPasswordReader(r PasswordReader) {
	s.readPassword = r
}

// SetLoadingDelay enables the cosmetic progress pause after write operations.
func (s *Session) SetLoadingDelay(d time.Duration) {
	s.loadingDelay = d
}

// Run shows the login prompt until the user exits or input ends.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.println("----------------WELCOME TO THE LIBRARY MANAGEMENT SYSTEM-----------------------")
		s.println("\n1. Login\n2. Exit")

		choice, err := s.promptLine("Enter Your Choice: ")
		if err != nil {
			return s.finish(err)
		}

		switch choice {
		case "1":
			ok, err := s.login(ctx)
			if err != nil {
				return s.finish(err)
			}
			if !ok {
				continue
			}
			if err := s.runTasks(ctx); err != nil {
				return s.finish(err)
			}
		case "2":
			s.println("Goodbye!")
			return nil
		default:
			s.println("Invalid Choice! Try Again.")
		}
	}
}

func (s *Session) login(ctx context.Context) (bool, error) {
	password, err := s.promptPassword("Enter Password: ")
	if err != nil {
		return false, err
	}

	if err := s.auth.Login(ctx, password); err != nil {
		if auth.IsInvalidPassword(err) {
			s.println("Incorrect Password!")
			return false, nil
		}
		s.log.Error().Err(err).Msg("Login failed")
		s.printf("Error: %v\n", err)
		return false, nil
	}

	s.println("Login Successful!")
	return true, nil
}

// runTasks returns nil on logout.
func (s *Session) runTasks(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.println("\n---------------LIBRARY MANAGEMENT SYSTEM---------------")
		s.println("Select Tasks")
		for _, t := range s.tasks {
			s.printf("%s. %s\n", t.key, t.label)
		}
		s.println("8. Logout")

		choice, err := s.promptLine("Enter Task Number: ")
		if err != nil {
			return err
		}

		if choice == "8" {
			s.println("Logged out.")
			return nil
		}

		t, ok := s.lookup(choice)
		if !ok {
			s.println("Invalid Choice! Try Again.")
			continue
		}

		if err := t.run(ctx); err != nil {
			if errors.Is(err, errEndOfInput) || errors.Is(err, context.Canceled) {
				return err
			}
			s.report(err)
		}
	}
}

func (s *Session) lookup(key string) (task, bool) {
	for _, t := range s.tasks {
		if t.key == key {
			return t, true
		}
	}
	return task{}, false
}

// finish turns the end of input into a clean exit.
func (s *Session) finish(err error) error {
	if errors.Is(err, errEndOfInput) {
		s.println("")
		return nil
	}
	return err
}

func (s *Session) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Session) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}
