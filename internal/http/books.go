package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mrlokans/librarian/internal/entities"
	"github.com/mrlokans/librarian/internal/library"
)

// CatalogReader provides read-only access to the catalog.
type CatalogReader interface {
	Get(ctx context.Context, id int) (*entities.Book, error)
	Search(ctx context.Context, name string) ([]entities.Book, error)
	List(ctx context.Context) ([]entities.Book, error)
}

type BooksController struct {
	catalog CatalogReader
	log     zerolog.Logger
}

func NewBooksController(catalog CatalogReader, log zerolog.Logger) *BooksController {
	return &BooksController{catalog: catalog, log: log}
}

// GetAllBooks lists the catalog, or searches it by name when q is given.
func (controller *BooksController) GetAllBooks(c *gin.Context) {
	var (
		books []entities.Book
		err   error
	)
	if q, ok := c.GetQuery("q"); ok {
		books, err = controller.catalog.Search(c.Request.Context(), q)
	} else {
		books, err = controller.catalog.List(c.Request.Context())
	}
	if err != nil {
		respondInternalError(c, controller.log, err)
		return
	}
	if books == nil {
		books = []entities.Book{}
	}
	c.IndentedJSON(http.StatusOK, gin.H{"books": books, "count": len(books)})
}

func (controller *BooksController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := controller.catalog.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, library.ErrBookNotFound) {
			respondNotFound(c, "book not found")
			return
		}
		respondInternalError(c, controller.log, err)
		return
	}
	c.IndentedJSON(http.StatusOK, book)
}
