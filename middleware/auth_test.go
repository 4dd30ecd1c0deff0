package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/e-campus-bff/config"
	"github.com/vnkhanh/e-campus-bff/services"
)

func gatedRouter(t *testing.T, upstreamCalls *atomic.Int64) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstreamCalls.Add(1)
		w.Write([]byte(`[]`))
	}))
	t.Cleanup(upstream.Close)
	services.Upstream = services.NewClient(upstream.URL, 0)

	r := gin.New()
	r.Use(AuthGate())
	r.GET("/api/courses", func(c *gin.Context) {
		res, apiErr := services.Upstream.Forward(c.Request.Context(), http.MethodGet, "/course", Token(c), nil)
		if apiErr != nil {
			c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
			return
		}
		c.Data(res.Status, "application/json", res.Body)
	})
	r.GET("/dashboard", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.POST("/api/auth/login", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	return r
}

func TestAuthGateMissingCookie(t *testing.T) {
	var calls atomic.Int64
	r := gatedRouter(t, &calls)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
	// The gate short-circuits before any upstream traffic.
	assert.Equal(t, int64(0), calls.Load())
}

func TestAuthGatePageRedirect(t *testing.T) {
	var calls atomic.Int64
	r := gatedRouter(t, &calls)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?from=%2Fdashboard", w.Header().Get("Location"))
	assert.Equal(t, int64(0), calls.Load())
}

func TestAuthGatePublicPathBypasses(t *testing.T) {
	var calls atomic.Int64
	r := gatedRouter(t, &calls)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthGateForwardsCookieToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotAuth string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer upstream.Close()
	services.Upstream = services.NewClient(upstream.URL, 0)

	r := gin.New()
	r.Use(AuthGate())
	r.GET("/api/courses", func(c *gin.Context) {
		res, apiErr := services.Upstream.Forward(c.Request.Context(), http.MethodGet, "/course", Token(c), nil)
		require.Nil(t, apiErr)
		c.Data(res.Status, "application/json", res.Body)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
	req.AddCookie(&http.Cookie{Name: config.CookieName, Value: "tok456"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	// The cookie value travels verbatim, the gate adds no interpretation.
	assert.Equal(t, "Bearer tok456", gotAuth)
}
