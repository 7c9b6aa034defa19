package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"doctors/internal/domain"
)

type errorResponseBody struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Code    int         `json:"code,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

func okResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func createdResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func errorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, errorResponseBody{
		Status:  "error",
		Message: message,
		Code:    statusCode,
	})
}

func validationErrorResponse(c *gin.Context, message string, details interface{}) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponseBody{
		Status:  "error",
		Message: message,
		Code:    http.StatusBadRequest,
		Errors:  details,
	})
}

func notFoundResponse(c *gin.Context, message string) {
	errorResponse(c, http.StatusNotFound, message)
}

func internalServerErrorResponse(c *gin.Context) {
	errorResponse(c, http.StatusInternalServerError, "Internal server error.")
}

// handleServiceError maps the domain error taxonomy onto HTTP responses.
func (h *Handler) handleServiceError(c *gin.Context, err error) {
	var (
		validationErr *domain.ValidationError
		bulkErr       *domain.BulkValidationError
		queryErr      *domain.InvalidQueryError
		refErr        *domain.ReferentialIntegrityError
	)

	switch {
	case errors.As(err, &validationErr):
		validationErrorResponse(c, "Invalid input.", validationErr.Fields)
	case errors.As(err, &bulkErr):
		validationErrorResponse(c, "Invalid input.", bulkErr.Records)
	case errors.As(err, &queryErr):
		validationErrorResponse(c, queryErr.Error(), domain.FieldErrors{queryErr.Param: {queryErr.Reason}})
	case errors.Is(err, domain.ErrNotFound):
		notFoundResponse(c, "Not found.")
	case errors.As(err, &refErr):
		errorResponse(c, http.StatusConflict, refErr.Error())
	default:
		_ = c.Error(err)
		internalServerErrorResponse(c)
	}
}
