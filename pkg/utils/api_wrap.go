package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusCreated, data, message)
}

func respond(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// AbortWithError writes the error envelope and stops the handler chain.
func AbortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

type errorMapping struct {
	target  error
	code    int
	message string
}

var serviceErrors = []errorMapping{
	{ErrInvalidPage, http.StatusBadRequest, "Page must be greater than 0"},
	{ErrInvalidPageSize, http.StatusBadRequest, "Page size must be between 1 and 100"},
	{ErrInvalidInput, http.StatusBadRequest, "Missing required fields"},
	{ErrEmailAlreadyExists, http.StatusBadRequest, "Email already registered"},
	{ErrInvalidDateRange, http.StatusBadRequest, "End date must be after start date"},
	{ErrInvalidDate, http.StatusBadRequest, "Dates must use the YYYY-MM-DD format"},
	{ErrNegativeBudget, http.StatusBadRequest, "Budget must not be negative"},
	{ErrBudgetTooLarge, http.StatusBadRequest, "Budget must not exceed 99999999.99"},
	{ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{ErrInvalidToken, http.StatusUnauthorized, "Invalid or expired token"},
	{ErrTokenRevoked, http.StatusUnauthorized, "Token is logged out"},
	{ErrAccountNotFound, http.StatusNotFound, "User not found"},
	{ErrTripNotFound, http.StatusNotFound, "Trip not found"},
}

// HandleServiceError maps a service error to its HTTP status and envelope.
// Anything unmapped is logged and reported as a generic 500.
func HandleServiceError(c *gin.Context, err error) {
	code, message := resolveServiceError(c, err)
	RespondError(c, code, message)
}

// AbortWithServiceError is HandleServiceError for middleware: it also stops
// the handler chain.
func AbortWithServiceError(c *gin.Context, err error) {
	code, message := resolveServiceError(c, err)
	AbortWithError(c, code, message)
}

func resolveServiceError(c *gin.Context, err error) (int, string) {
	for _, m := range serviceErrors {
		if errors.Is(err, m.target) {
			return m.code, m.message
		}
	}

	if errors.Is(err, ErrDatabaseError) {
		zap.L().Error("database error",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
			zap.String("trace_id", traceID(c)))
	} else {
		zap.L().Error("unhandled service error",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
			zap.String("trace_id", traceID(c)))
	}
	return http.StatusInternalServerError, "Internal server error"
}
