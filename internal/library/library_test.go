package library

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/librarian/internal/config"
	"github.com/mrlokans/librarian/internal/database"
	"github.com/mrlokans/librarian/internal/database/books"
	"github.com/mrlokans/librarian/internal/database/loans"
	"github.com/mrlokans/librarian/internal/entities"
)

var fixedNow = time.Date(2025, time.January, 15, 9, 0, 0, 0, time.UTC)

func setupLibrary(t *testing.T) (*Catalog, *Circulation) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "library.db")
	db, err := database.NewDatabase(config.Database{Driver: config.DriverSQLite, Path: dbPath}, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	catalog := NewCatalog(books.NewRepository(db.DB), zerolog.Nop())
	circulation := NewCirculation(loans.NewRepository(db.DB), zerolog.Nop())
	circulation.SetClock(func() time.Time { return fixedNow })
	return catalog, circulation
}

func findBook(t *testing.T, all []entities.Book, id int) (entities.Book, int) {
	t.Helper()
	var found entities.Book
	occurrences := 0
	for _, b := range all {
		if b.ID == id {
			found = b
			occurrences++
		}
	}
	return found, occurrences
}

func TestCatalog_AddThenList(t *testing.T) {
	catalog, _ := setupLibrary(t)
	ctx := context.Background()

	added, err := catalog.Add(ctx, 10, "Harry Potter", "Fiction", 3)
	require.NoError(t, err)
	assert.Equal(t, 10, added.ID)

	all, err := catalog.List(ctx)
	require.NoError(t, err)

	book, occurrences := findBook(t, all, 10)
	assert.Equal(t, 1, occurrences)
	assert.Equal(t, entities.Book{ID: 10, Name: "Harry Potter", Subject: "Fiction", Quantity: 3}, book)
}

func TestCatalog_Add_DuplicateID(t *testing.T) {
	catalog, _ := setupLibrary(t)
	ctx := context.Background()

	_, err := catalog.Add(ctx, 1, "A", "Sci", 2)
	require.NoError(t, err)

	_, err = catalog.Add(ctx, 1, "B", "Art", 5)
	assert.ErrorIs(t, err, ErrDuplicateID)

	book, err := catalog.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "A", book.Name)
}

func TestCatalog_Add_NegativeQuantityAccepted(t *testing.T) {
	catalog, _ := setupLibrary(t)
	ctx := context.Background()

	book, err := catalog.Add(ctx, 1, "A", "Sci", -3)

	require.NoError(t, err)
	assert.Equal(t, -3, book.Quantity)
}

func TestCatalog_List_Empty(t *testing.T) {
	catalog, _ := setupLibrary(t)

	all, err := catalog.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCatalog_Get_NotFound(t *testing.T) {
	catalog, _ := setupLibrary(t)

	_, err := catalog.Get(context.Background(), 3)

	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestCatalog_Remove(t *testing.T) {
	t.Run("deletes book and its loans", func(t *testing.T) {
		catalog, circulation := setupLibrary(t)
		ctx := context.Background()

		_, err := catalog.Add(ctx, 1, "A", "Sci", 2)
		require.NoError(t, err)
		_, err = catalog.Add(ctx, 2, "B", "Art", 1)
		require.NoError(t, err)
		_, err = circulation.Issue(ctx, 1, "Sam", "5A")
		require.NoError(t, err)
		_, err = circulation.Issue(ctx, 2, "Ann", "6B")
		require.NoError(t, err)

		outstanding, err := circulation.IssuedCopies(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, outstanding)

		require.NoError(t, catalog.Remove(ctx, 1))

		outstanding, err = circulation.IssuedCopies(ctx, 1)
		require.NoError(t, err)
		assert.Zero(t, outstanding)

		all, err := catalog.List(ctx)
		require.NoError(t, err)
		_, occurrences := findBook(t, all, 1)
		assert.Zero(t, occurrences)

		issued, err := circulation.ListIssued(ctx)
		require.NoError(t, err)
		require.Len(t, issued, 1)
		assert.Equal(t, 2, issued[0].BookID)
	})

	t.Run("not found changes nothing", func(t *testing.T) {
		catalog, _ := setupLibrary(t)
		ctx := context.Background()
		_, err := catalog.Add(ctx, 1, "A", "Sci", 2)
		require.NoError(t, err)

		err = catalog.Remove(ctx, 2)

		assert.ErrorIs(t, err, ErrBookNotFound)
		all, err := catalog.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}

func TestCatalog_Search(t *testing.T) {
	catalog, _ := setupLibrary(t)
	ctx := context.Background()
	_, err := catalog.Add(ctx, 1, "Harry Potter", "Fiction", 1)
	require.NoError(t, err)
	_, err = catalog.Add(ctx, 2, "Math Basics", "Math", 1)
	require.NoError(t, err)

	found, err := catalog.Search(ctx, "Harry")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Harry Potter", found[0].Name)

	found, err = catalog.Search(ctx, "BASICS")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Math Basics", found[0].Name)

	found, err = catalog.Search(ctx, "Chemistry")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestCirculation_Issue(t *testing.T) {
	catalog, circulation := setupLibrary(t)
	ctx := context.Background()
	_, err := catalog.Add(ctx, 1, "A", "Sci", 3)
	require.NoError(t, err)

	loan, err := circulation.Issue(ctx, 1, "Sam", "5A")
	require.NoError(t, err)
	assert.Equal(t, "A", loan.Name)
	assert.Equal(t, "Sci", loan.Subject)
	assert.Equal(t, "2025-01-15", loan.IssueDate.Format(entities.IssueDateLayout))

	issued, err := circulation.ListIssued(ctx)
	require.NoError(t, err)
	assert.Len(t, issued, 1)

	book, err := catalog.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, book.Quantity)
}

func TestCirculation_Issue_NotAvailable(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		bookID   int
	}{
		{"zero quantity", 0, 1},
		{"absent id", 1, 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, circulation := setupLibrary(t)
			ctx := context.Background()
			_, err := catalog.Add(ctx, 1, "A", "Sci", tt.quantity)
			require.NoError(t, err)

			_, err = circulation.Issue(ctx, tt.bookID, "Sam", "5A")

			assert.ErrorIs(t, err, ErrNotAvailable)
			book, err := catalog.Get(ctx, 1)
			require.NoError(t, err)
			assert.Equal(t, tt.quantity, book.Quantity)
			issued, err := circulation.ListIssued(ctx)
			require.NoError(t, err)
			assert.Empty(t, issued)
		})
	}
}

func TestCirculation_Return(t *testing.T) {
	catalog, circulation := setupLibrary(t)
	ctx := context.Background()
	_, err := catalog.Add(ctx, 1, "A", "Sci", 2)
	require.NoError(t, err)
	_, err = circulation.Issue(ctx, 1, "Sam", "5A")
	require.NoError(t, err)
	_, err = circulation.Issue(ctx, 1, "Ann", "6B")
	require.NoError(t, err)

	returned, err := circulation.Return(ctx, 1, "Sam", "5A")
	require.NoError(t, err)
	assert.Equal(t, "Sam", returned.StudentName)

	book, err := catalog.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, book.Quantity)

	issued, err := circulation.ListIssued(ctx)
	require.NoError(t, err)
	require.Len(t, issued, 1)
	assert.Equal(t, "Ann", issued[0].StudentName)
}

func TestCirculation_Return_NoRecord(t *testing.T) {
	catalog, circulation := setupLibrary(t)
	ctx := context.Background()
	_, err := catalog.Add(ctx, 1, "A", "Sci", 1)
	require.NoError(t, err)
	_, err = circulation.Issue(ctx, 1, "Sam", "5A")
	require.NoError(t, err)

	_, err = circulation.Return(ctx, 1, "SAM", "5A")

	assert.ErrorIs(t, err, ErrNoRecord)
	book, err := catalog.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, book.Quantity)
}

func TestCirculation_RoundTrip(t *testing.T) {
	catalog, circulation := setupLibrary(t)
	ctx := context.Background()
	const original = 5
	_, err := catalog.Add(ctx, 1, "A", "Sci", original)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := circulation.Issue(ctx, 1, "Sam", "5A")
		require.NoError(t, err)
	}
	for i := 0; i < 3; i++ {
		_, err := circulation.Return(ctx, 1, "Sam", "5A")
		require.NoError(t, err)
	}

	book, err := catalog.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, original, book.Quantity)
	issued, err := circulation.ListIssued(ctx)
	require.NoError(t, err)
	assert.Empty(t, issued)
}

func TestScenario_IssueAndReturn(t *testing.T) {
	catalog, circulation := setupLibrary(t)
	ctx := context.Background()

	_, err := catalog.Add(ctx, 1, "A", "Sci", 2)
	require.NoError(t, err)

	_, err = circulation.Issue(ctx, 1, "Sam", "5A")
	require.NoError(t, err)

	all, err := catalog.List(ctx)
	require.NoError(t, err)
	book, _ := findBook(t, all, 1)
	assert.Equal(t, 1, book.Quantity)

	_, err = circulation.Return(ctx, 1, "Sam", "5A")
	require.NoError(t, err)

	all, err = catalog.List(ctx)
	require.NoError(t, err)
	book, _ = findBook(t, all, 1)
	assert.Equal(t, 2, book.Quantity)

	issued, err := circulation.ListIssued(ctx)
	require.NoError(t, err)
	assert.Empty(t, issued)
}

type brokenBooks struct{ err error }

func (b brokenBooks) Create(context.Context, *entities.Book) error { return b.err }
func (b brokenBooks) GetByID(context.Context, int) (*entities.Book, error) {
	return nil, b.err
}
func (b brokenBooks) Delete(context.Context, int) error { return b.err }
func (b brokenBooks) SearchByName(context.Context, string) ([]entities.Book, error) {
	return nil, b.err
}
func (b brokenBooks) List(context.Context) ([]entities.Book, error) { return nil, b.err }

func TestCatalog_StorageErrorsAreWrapped(t *testing.T) {
	boom := errors.New("connection reset")
	catalog := NewCatalog(brokenBooks{err: boom}, zerolog.Nop())
	ctx := context.Background()

	_, err := catalog.Add(ctx, 1, "A", "Sci", 1)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrDuplicateID)

	err = catalog.Remove(ctx, 1)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrBookNotFound)

	_, err = catalog.Search(ctx, "A")
	assert.ErrorIs(t, err, boom)

	_, err = catalog.List(ctx)
	assert.ErrorIs(t, err, boom)
}
