package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"` // machine-readable error code
}

func respondBadRequest(c *gin.Context, message string) {
	c.IndentedJSON(http.StatusBadRequest, ErrorResponse{Error: message, Code: "bad_request"})
}

func respondNotFound(c *gin.Context, message string) {
	c.IndentedJSON(http.StatusNotFound, ErrorResponse{Error: message, Code: "not_found"})
}

// respondInternalError logs err and hides it from the client.
func respondInternalError(c *gin.Context, log zerolog.Logger, err error) {
	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	c.IndentedJSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error", Code: "internal"})
}

// parseIDParam reads an integer path parameter.
func parseIDParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		respondBadRequest(c, name+" must be an integer")
		return 0, false
	}
	return id, true
}
