package controllers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/e-campus-bff/config"
	"github.com/vnkhanh/e-campus-bff/middleware"
	"github.com/vnkhanh/e-campus-bff/services"
)

// testToken builds a structurally valid JWT for the claims the gate decodes.
// The signature is irrelevant: the proxy never verifies it.
func testToken(t *testing.T, id, name, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  id,
		"name": name,
		"role": role,
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

// newTestRouter wires the auth gate plus the full route table against the
// given fake upstream.
func newTestRouter(t *testing.T, upstream http.Handler) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)
	services.Upstream = services.NewClient(srv.URL, 0)

	r := gin.New()
	r.Use(middleware.AuthGate())

	api := r.Group("/api")
	api.POST("/auth/login", Login)
	api.GET("/auth/session", Session)
	api.GET("/courses", GetCourses)
	api.GET("/courses/:id", GetCourseDetail)
	api.POST("/courses/:id/enrollments", RequestEnrollment)
	api.GET("/courses/:id/materials", GetMaterials)
	api.PUT("/enrollments/:id", DecideEnrollment)
	api.DELETE("/enrollments/:id", WithdrawEnrollment)
	api.POST("/donations", CreateDonation)
	api.POST("/donations/:id/verify", VerifyDonation)
	return r
}

func doRequest(r *gin.Engine, method, target, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req = httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: config.CookieName, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
