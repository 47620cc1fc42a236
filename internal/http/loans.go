package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mrlokans/librarian/internal/entities"
)

// LoanReader provides read-only access to outstanding loans.
type LoanReader interface {
	ListIssued(ctx context.Context) ([]entities.Loan, error)
}

type LoansController struct {
	loans LoanReader
	log   zerolog.Logger
}

func NewLoansController(loans LoanReader, log zerolog.Logger) *LoansController {
	return &LoansController{loans: loans, log: log}
}

func (controller *LoansController) GetAllLoans(c *gin.Context) {
	issued, err := controller.loans.ListIssued(c.Request.Context())
	if err != nil {
		respondInternalError(c, controller.log, err)
		return
	}
	if issued == nil {
		issued = []entities.Loan{}
	}
	c.IndentedJSON(http.StatusOK, gin.H{"loans": issued, "count": len(issued)})
}
