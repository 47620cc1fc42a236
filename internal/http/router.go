package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mrlokans/librarian/internal/auth"
)

// RouterConfig holds the dependencies of the read-only report.
type RouterConfig struct {
	Catalog       CatalogReader
	Loans         LoanReader
	Authenticator *auth.Authenticator
	DB            Pinger
	Driver        string
	Version       string
	Log           zerolog.Logger
}

// NewRouter creates the HTTP router. Everything except /health requires
// the admin credential over HTTP Basic auth.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(accessLog(cfg.Log))
	router.Use(gin.Recovery())
	router.Use(auth.SecurityHeadersMiddleware())
	router.Use(auth.BasicAuth(cfg.Authenticator, "/health"))

	healthController := NewHealthController(cfg)
	booksController := NewBooksController(cfg.Catalog, cfg.Log)
	loansController := NewLoansController(cfg.Loans, cfg.Log)

	router.GET("/health", healthController.Status)

	api := router.Group("/api")
	api.GET("/books", booksController.GetAllBooks)
	api.GET("/books/:id", booksController.GetBook)
	api.GET("/loans", loansController.GetAllLoans)

	return router
}

func accessLog(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("HTTP request")
	}
}
