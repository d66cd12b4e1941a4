package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/airportadm/internal/domain"
	"github.com/Domenick1991/airportadm/internal/service/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubVerifier struct {
	claims *auth.Claims
	err    error
}

func (s *stubVerifier) VerifyToken(string) (*auth.Claims, error) {
	return s.claims, s.err
}

func newMiddlewareRouter(verifier TokenVerifier, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/", RequireAuth(verifier))
	if role != "" {
		group.Use(RequireRole(role))
	}
	group.GET("/ping", func(c *gin.Context) {
		claims := c.MustGet(claimsKey).(*auth.Claims)
		c.JSON(http.StatusOK, gin.H{"username": claims.Username})
	})
	return router
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	router := newMiddlewareRouter(&stubVerifier{}, "")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/ping", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing bearer token")
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	router := newMiddlewareRouter(&stubVerifier{err: errors.New("signature is invalid")}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid token")
}

func TestRequireAuth_ValidToken(t *testing.T) {
	verifier := &stubVerifier{claims: &auth.Claims{Username: "alice", Role: domain.RoleUser}}
	router := newMiddlewareRouter(verifier, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
}

func TestRequireRole_Forbidden(t *testing.T) {
	verifier := &stubVerifier{claims: &auth.Claims{Username: "alice", Role: domain.RoleUser}}
	router := newMiddlewareRouter(verifier, domain.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_Allowed(t *testing.T) {
	verifier := &stubVerifier{claims: &auth.Claims{Username: "root", Role: domain.RoleAdmin}}
	router := newMiddlewareRouter(verifier, domain.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/ping", nil))

	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestRequestID_PreservesIncoming(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Request-Id", "req-42")
	router.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get("X-Request-Id"))
}
