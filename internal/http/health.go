package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Pinger reports whether the store is reachable.
type Pinger interface {
	Ping() error
}

// LibraryHealth is served unauthenticated, so it carries totals only.
type LibraryHealth struct {
	Status        string `json:"status"`
	Driver        string `json:"driver"`
	Version       string `json:"version,omitempty"`
	Titles        int    `json:"titles"`
	CopiesOnShelf int    `json:"copies_on_shelf"`
	CopiesIssued  int    `json:"copies_issued"`
	Problem       string `json:"problem,omitempty"`
}

type HealthController struct {
	db      Pinger
	catalog CatalogReader
	loans   LoanReader
	driver  string
	version string
	log     zerolog.Logger
}

func NewHealthController(cfg RouterConfig) *HealthController {
	return &HealthController{
		db:      cfg.DB,
		catalog: cfg.Catalog,
		loans:   cfg.Loans,
		driver:  cfg.Driver,
		version: cfg.Version,
		log:     cfg.Log,
	}
}

// Status pings the store and totals the catalog. Any failure is a 503.
func (h *HealthController) Status(c *gin.Context) {
	report := LibraryHealth{Status: "up", Driver: h.driver, Version: h.version}

	if err := h.db.Ping(); err != nil {
		h.unavailable(c, report, "database unreachable", err)
		return
	}

	ctx := c.Request.Context()
	books, err := h.catalog.List(ctx)
	if err != nil {
		h.unavailable(c, report, "catalog unreadable", err)
		return
	}
	issued, err := h.loans.ListIssued(ctx)
	if err != nil {
		h.unavailable(c, report, "issued books unreadable", err)
		return
	}

	report.Titles = len(books)
	for _, b := range books {
		if b.Quantity > 0 {
			report.CopiesOnShelf += b.Quantity
		}
	}
	report.CopiesIssued = len(issued)

	c.IndentedJSON(http.StatusOK, report)
}

func (h *HealthController) unavailable(c *gin.Context, report LibraryHealth, problem string, err error) {
	h.log.Warn().Err(err).Msg("Health check failed")
	report.Status = "down"
	report.Problem = problem
	c.IndentedJSON(http.StatusServiceUnavailable, report)
}
