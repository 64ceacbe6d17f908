package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RohanKadam-7/boxgames/internal/common"
)

// ErrorResponse represents a standard error response format
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a standard success response format
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorJSON sends a JSON error response with the specified HTTP status code
func ErrorJSON(ctx *gin.Context, statusCode int, err error) {
	ctx.JSON(statusCode, ErrorResponse{Error: err.Error()})
}

// SuccessJSON sends a JSON success response
func SuccessJSON(ctx *gin.Context, statusCode int, message string) {
	ctx.JSON(statusCode, SuccessResponse{Message: message})
}

// BadRequestJSON sends a bad request error response
func BadRequestJSON(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// DomainErrorJSON maps the shared error taxonomy onto HTTP status codes.
// Anything outside the taxonomy is a store-level failure and reports 500
// without exposing the underlying error.
func DomainErrorJSON(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrNotFound):
		ctx.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, common.ErrForbidden):
		ctx.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, common.ErrAlreadyExists):
		ctx.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, common.ErrInvalidCredentials):
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case errors.Is(err, common.ErrSlotAlreadyBooked),
		errors.Is(err, common.ErrCancellationWindow):
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
