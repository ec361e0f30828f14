package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(t *testing.T, err error) (int, APIResponse) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)
	c.Set("trace_id", "trace-1")

	HandleServiceError(c, err)

	var body APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestHandleServiceError(t *testing.T) {
	cases := []struct {
		err     error
		code    int
		message string
	}{
		{ErrEmailAlreadyExists, http.StatusBadRequest, "Email already registered"},
		{ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
		{ErrAccountNotFound, http.StatusNotFound, "User not found"},
		{ErrTripNotFound, http.StatusNotFound, "Trip not found"},
		{ErrInvalidDateRange, http.StatusBadRequest, "End date must be after start date"},
		{ErrBudgetTooLarge, http.StatusBadRequest, "Budget must not exceed 99999999.99"},
		{ErrTokenRevoked, http.StatusUnauthorized, "Token is logged out"},
		{fmt.Errorf("wrapped: %w", ErrTripNotFound), http.StatusNotFound, "Trip not found"},
		{fmt.Errorf("%w: connection reset", ErrDatabaseError), http.StatusInternalServerError, "Internal server error"},
		{fmt.Errorf("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range cases {
		code, body := serve(t, tc.err)
		assert.Equal(t, tc.code, code, tc.err.Error())
		assert.Equal(t, tc.code, body.Code)
		assert.Equal(t, "error", body.Status)
		assert.Equal(t, tc.message, body.Message)
		assert.Equal(t, "trace-1", body.TraceID)
	}
}

func TestAbortWithServiceError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

	AbortWithServiceError(c, fmt.Errorf("%w: token is expired", ErrInvalidToken))

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestRespondCreated(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondCreated(c, map[string]string{"id": "abc"}, "ok")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"status":"success","code":201,"message":"ok","data":{"id":"abc"}}`, w.Body.String())
}
