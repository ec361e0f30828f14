package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mem "globetrotter/pkg/memcache"
	"globetrotter/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthEngine(jwt *utils.JWTManager, store mem.Store) *gin.Engine {
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/me", JWTAuthMiddleware(jwt, store), func(c *gin.Context) {
		ctxID, _ := c.Request.Context().Value(ContextKeyUserID).(string)
		c.JSON(http.StatusOK, gin.H{"user_id": UserID(c), "ctx_user_id": ctxID})
	})
	r.GET("/admin", JWTAuthMiddleware(jwt, store), RoleMiddleware("admin"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func doGet(r http.Handler, path string, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddleware(t *testing.T) {
	jwt := utils.NewJWTManager("secret", time.Hour)
	store := mem.NewMemoryStore()
	r := newAuthEngine(jwt, store)

	userID := uuid.New()
	token, err := jwt.CreateToken(userID, "u@x.in", "user")
	require.NoError(t, err)

	t.Run("missing header", func(t *testing.T) {
		w := doGet(r, "/me", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "No token provided")
		assert.NotEmpty(t, w.Header().Get(HeaderTraceID))
	})

	t.Run("not a bearer header", func(t *testing.T) {
		w := doGet(r, "/me", "Basic abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := doGet(r, "/me", "Bearer not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid or expired token")
	})

	t.Run("valid token", func(t *testing.T) {
		w := doGet(r, "/me", "Bearer "+token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":"`+userID.String()+`"`)
		assert.Contains(t, w.Body.String(), `"ctx_user_id":"`+userID.String()+`"`)
	})

	t.Run("revoked token", func(t *testing.T) {
		claims, err := jwt.ValidateToken(token)
		require.NoError(t, err)
		require.NoError(t, store.Set(context.Background(), mem.RevokedTokenPrefix+claims.ID, "x", time.Hour))

		w := doGet(r, "/me", "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token is logged out")
	})
}

func TestRoleMiddleware(t *testing.T) {
	jwt := utils.NewJWTManager("secret", time.Hour)
	r := newAuthEngine(jwt, mem.NewMemoryStore())

	userToken, err := jwt.CreateToken(uuid.New(), "u@x.in", "user")
	require.NoError(t, err)
	adminToken, err := jwt.CreateToken(uuid.New(), "a@x.in", "admin")
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, doGet(r, "/admin", "Bearer "+userToken).Code)
	assert.Equal(t, http.StatusNoContent, doGet(r, "/admin", "Bearer "+adminToken).Code)
}

func TestTraceIDMiddleware_ReusesValidHeader(t *testing.T) {
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("trace_id")) })

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderTraceID, id)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, id, w.Body.String())
	assert.Equal(t, id, w.Header().Get(HeaderTraceID))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderTraceID, "<script>")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	_, err := uuid.Parse(w.Body.String())
	assert.NoError(t, err)
}
