package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminRouter(seed func(c *gin.Context)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	if seed != nil {
		r.Use(func(c *gin.Context) { seed(c); c.Next() })
	}
	r.GET("/admin/ping", RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRequireAdminAnonymous(t *testing.T) {
	r := adminRouter(nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/ping", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdminNonAdmin(t *testing.T) {
	r := adminRouter(func(c *gin.Context) {
		c.Set("user_id", "u1")
		c.Set("user_role", "staff")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/ping", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdminPassesAdmin(t *testing.T) {
	r := adminRouter(func(c *gin.Context) {
		c.Set("user_id", "u1")
		c.Set("user_role", "admin")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, w.Body.String())
	assert.Equal(t, w.Body.String(), w.Header().Get(HeaderRequestID))

	// a caller-provided id is kept
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "rid-42")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "rid-42", w.Body.String())
}
